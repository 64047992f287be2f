package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/levenlabs/go-lflag"
	"github.com/suryakart/suryakart/pkg/catalog"
	"github.com/suryakart/suryakart/pkg/log"
	"github.com/suryakart/suryakart/pkg/storage"
	"github.com/suryakart/suryakart/pkg/types"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Products []types.Product `yaml:"products"`
}

// loadCatalog decodes a YAML catalog. Unknown keys are rejected so typos in
// field names don't silently drop data.
func loadCatalog(r io.Reader) ([]types.Product, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	seen := make(map[string]bool, len(f.Products))
	for i, p := range f.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %d (%s) has no id", i, p.Title)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = true
	}
	return f.Products, nil
}

func seed(ctx context.Context, svc *catalog.Service, products []types.Product) error {
	for _, p := range products {
		saved, err := svc.Import(ctx, p)
		if err != nil {
			return err
		}
		log.Ctx(ctx).InfoContext(ctx, "seeded product", slog.String("productID", saved.ID), slog.Float64("discountPrice", saved.DiscountPrice))
	}
	return nil
}

func main() {
	file := lflag.String("catalog-file", "cmd/seed/catalog.yaml", "YAML file with the products to seed")
	s := storage.Configured()
	svc := catalog.Configured(s)
	lflag.Configure()
	log.ConfigureFromLLog()

	ctx := context.Background()
	defer s.Close()

	f, err := os.Open(*file)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to open catalog", slog.String("file", *file), slog.Any("error", err))
		os.Exit(1)
	}
	defer f.Close()

	products, err := loadCatalog(f)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to load catalog", slog.String("file", *file), slog.Any("error", err))
		os.Exit(1)
	}

	log.Ctx(ctx).InfoContext(ctx, "seeding catalog", slog.Int("products", len(products)))
	if err := seed(ctx, svc, products); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to seed catalog", slog.Any("error", err))
		os.Exit(1)
	}
	log.Ctx(ctx).InfoContext(ctx, "seeding complete")
}
