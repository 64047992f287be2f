package storage

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/suryakart/suryakart/pkg/types"
)

// MemoryProvider keeps the catalog in process memory. It is used for local
// development and tests and loses everything on restart.
type MemoryProvider struct {
	mu       sync.RWMutex
	products map[string]types.Product
}

// NewMemory returns an empty MemoryProvider.
func NewMemory() *MemoryProvider {
	return &MemoryProvider{
		products: make(map[string]types.Product),
	}
}

func sortProducts(products []types.Product) {
	slices.SortFunc(products, func(a, b types.Product) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
	})
}

func (m *MemoryProvider) GetProduct(ctx context.Context, id string) (types.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.products[id]
	if !ok {
		return types.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (m *MemoryProvider) ListProducts(ctx context.Context, filter ProductFilter) ([]types.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var products []types.Product
	for _, p := range m.products {
		if filter.Matches(p) {
			products = append(products, p)
		}
	}
	sortProducts(products)
	return products, nil
}

func (m *MemoryProvider) CreateProduct(ctx context.Context, product types.Product) error {
	if product.ID == "" {
		return fmt.Errorf("product id cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; ok {
		return ErrProductExists
	}
	m.products[product.ID] = product
	return nil
}

func (m *MemoryProvider) UpdateProduct(ctx context.Context, product types.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *MemoryProvider) DeleteProduct(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *MemoryProvider) Close() error {
	return nil
}
