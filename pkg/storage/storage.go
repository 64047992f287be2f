package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/levenlabs/go-lflag"
	"github.com/suryakart/suryakart/pkg/types"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
)

// ProductFilter narrows ListProducts. Zero values match everything.
type ProductFilter struct {
	Category   string
	ActiveOnly bool
}

// Matches reports whether p passes the filter.
func (f ProductFilter) Matches(p types.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.ActiveOnly && !p.Active {
		return false
	}
	return true
}

// Database defines the interface for persisting the product catalog.
type Database interface {
	GetProduct(ctx context.Context, id string) (types.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]types.Product, error)
	CreateProduct(ctx context.Context, product types.Product) error
	UpdateProduct(ctx context.Context, product types.Product) error
	DeleteProduct(ctx context.Context, id string) error

	// Lifecycle
	Close() error
}

// Configured sets up the Storage provider based on flags.
func Configured() Database {
	provider := lflag.String("storage-provider", "firestore", "Storage provider to use (available: firestore, memory)")

	var p struct{ Database }

	fs := configuredFirestore()

	lflag.Do(func() {
		switch *provider {
		case "firestore":
			if err := fs.Validate(); err != nil {
				panic(fmt.Sprintf("firestore validation failed: %v", err))
			}
			if err := fs.Init(context.Background()); err != nil {
				panic(fmt.Sprintf("firestore init failed: %v", err))
			}
			p.Database = fs
		case "memory":
			p.Database = NewMemory()
		default:
			panic(fmt.Sprintf("unknown storage provider: %s", *provider))
		}
	})

	return &p
}
