// Package catalog manages the solar products sold in the shop: creating and
// merging product updates, paginated searching and shopper facing views.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/levenlabs/go-lflag"
	"github.com/shopspring/decimal"
	"github.com/suryakart/suryakart/pkg/log"
	"github.com/suryakart/suryakart/pkg/storage"
	"github.com/suryakart/suryakart/pkg/types"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrProductNotFound = storage.ErrProductNotFound
)

// Service is the product catalog backed by a storage.Database.
type Service struct {
	db        storage.Database
	pageSize  int
	emiMonths []int
}

// Configured returns a Service whose page size and EMI tenures come from flags.
func Configured(db storage.Database) *Service {
	s := New(db)
	pageSize := defaultPageSize
	lflag.JSON(&pageSize, "catalog-page-size", pageSize, "Default number of products per page")
	emiMonths := []int{3, 6, 12}
	lflag.JSON(&emiMonths, "catalog-emi-months", emiMonths, "JSON list of EMI tenures in months")

	lflag.Do(func() {
		if pageSize > 0 {
			s.pageSize = min(pageSize, maxPageSize)
		}
		var months []int
		for _, m := range emiMonths {
			if m > 0 {
				months = append(months, m)
			}
		}
		if len(months) > 0 {
			s.emiMonths = months
		}
	})
	return s
}

// New returns a Service with the default page size and 3, 6 and 12 month EMI
// tenures.
func New(db storage.Database) *Service {
	return &Service{
		db:        db,
		pageSize:  defaultPageSize,
		emiMonths: []int{3, 6, 12},
	}
}

// DiscountPrice returns price reduced by discount percent.
func DiscountPrice(price float64, discount int) float64 {
	p := decimal.NewFromFloat(price)
	off := p.Mul(decimal.NewFromInt(int64(discount))).Div(decimal.NewFromInt(100))
	return p.Sub(off).Round(2).InexactFloat64()
}

func validate(p types.Product) error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidProduct)
	case strings.TrimSpace(p.Category) == "":
		return fmt.Errorf("%w: category is required", ErrInvalidProduct)
	case p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0):
		return fmt.Errorf("%w: price must be a non-negative number", ErrInvalidProduct)
	case p.Discount < 0 || p.Discount > 100:
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrInvalidProduct)
	case p.Stock < 0:
		return fmt.Errorf("%w: stock cannot be negative", ErrInvalidProduct)
	}
	return nil
}

// Save creates a new product with a generated id and returns it.
func (s *Service) Save(ctx context.Context, p types.Product) (types.Product, error) {
	if err := validate(p); err != nil {
		return types.Product{}, err
	}
	p.ID = uuid.NewString()
	p.DiscountPrice = DiscountPrice(p.Price, p.Discount)
	if err := s.db.CreateProduct(ctx, p); err != nil {
		return types.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	log.Ctx(ctx).InfoContext(ctx, "created product", slog.String("productID", p.ID), slog.String("title", p.Title))
	return p, nil
}

// Import stores p under its own id, creating or replacing it. It is used to
// seed a catalog from a file where ids are stable.
func (s *Service) Import(ctx context.Context, p types.Product) (types.Product, error) {
	if err := validate(p); err != nil {
		return types.Product{}, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.DiscountPrice = DiscountPrice(p.Price, p.Discount)
	err := s.db.UpdateProduct(ctx, p)
	if errors.Is(err, storage.ErrProductNotFound) {
		err = s.db.CreateProduct(ctx, p)
	}
	if err != nil {
		return types.Product{}, fmt.Errorf("failed to import product %s: %w", p.ID, err)
	}
	return p, nil
}

// Get returns the product with the given id.
func (s *Service) Get(ctx context.Context, id string) (types.Product, error) {
	return s.db.GetProduct(ctx, id)
}

// Delete removes the product with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.db.DeleteProduct(ctx, id); err != nil {
		return err
	}
	log.Ctx(ctx).InfoContext(ctx, "deleted product", slog.String("productID", id))
	return nil
}

// Update merges upd into the stored product with the given id. The basic
// fields always overwrite. Optional fields only overwrite when set and an empty
// image keeps the stored one. The discount price is recomputed.
func (s *Service) Update(ctx context.Context, id string, upd types.Product) (types.Product, error) {
	current, err := s.db.GetProduct(ctx, id)
	if err != nil {
		return types.Product{}, err
	}
	merged := merge(current, upd)
	if err := validate(merged); err != nil {
		return types.Product{}, err
	}
	if err := s.db.UpdateProduct(ctx, merged); err != nil {
		return types.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	log.Ctx(ctx).InfoContext(ctx, "updated product", slog.String("productID", id))
	return merged, nil
}

func set[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func merge(current, upd types.Product) types.Product {
	out := current
	out.Title = upd.Title
	out.Description = upd.Description
	out.Category = upd.Category
	out.Price = upd.Price
	out.Discount = upd.Discount
	out.Stock = upd.Stock
	out.Active = upd.Active
	if upd.Image != "" {
		out.Image = upd.Image
	}
	out.DiscountPrice = DiscountPrice(out.Price, out.Discount)

	set(&out.AverageRating, upd.AverageRating)
	set(&out.TotalReviews, upd.TotalReviews)
	set(&out.StockQuantity, upd.StockQuantity)

	cs, us := &out.Specs, upd.Specs
	set(&cs.CellCount, us.CellCount)
	set(&cs.Efficiency, us.Efficiency)
	set(&cs.MaximumPowerCurrent, us.MaximumPowerCurrent)
	set(&cs.MaximumPowerVoltage, us.MaximumPowerVoltage)
	set(&cs.MaximumSystemVoltage, us.MaximumSystemVoltage)
	set(&cs.OpenCircuitVoltage, us.OpenCircuitVoltage)
	set(&cs.ShortCircuitCurrent, us.ShortCircuitCurrent)
	set(&cs.OperatingTemperature, us.OperatingTemperature)
	set(&cs.TemperatureCoefficient, us.TemperatureCoefficient)
	set(&cs.NominalOperatingCellTemperature, us.NominalOperatingCellTemperature)
	set(&cs.PeakPowerOutput, us.PeakPowerOutput)
	set(&cs.ModuleEfficiency, us.ModuleEfficiency)
	set(&cs.Wattage, us.Wattage)
	set(&cs.Weight, us.Weight)
	set(&cs.BacksheetMaterial, us.BacksheetMaterial)
	set(&cs.CableLength, us.CableLength)
	set(&cs.CellType, us.CellType)
	set(&cs.Certifications, us.Certifications)
	set(&cs.ConnectorType, us.ConnectorType)
	set(&cs.Dimensions, us.Dimensions)
	set(&cs.FrameType, us.FrameType)
	set(&cs.ImageURL, us.ImageURL)
	set(&cs.InstallationType, us.InstallationType)
	set(&cs.InverterCompatibility, us.InverterCompatibility)
	set(&cs.JunctionBoxType, us.JunctionBoxType)
	set(&cs.Manufacturer, us.Manufacturer)
	set(&cs.Warranty, us.Warranty)
	return out
}

// Query selects a page of products. Page is 0-based and a Size of 0 uses the
// configured page size.
type Query struct {
	Page       int
	Size       int
	Category   string
	Search     string
	ActiveOnly bool
}

// List returns one page of the products matching q ordered by title then id.
func (s *Service) List(ctx context.Context, q Query) (types.ProductPage, error) {
	size := q.Size
	if size <= 0 {
		size = s.pageSize
	}
	size = min(size, maxPageSize)
	page := max(q.Page, 0)

	products, err := s.db.ListProducts(ctx, storage.ProductFilter{
		Category:   q.Category,
		ActiveOnly: q.ActiveOnly,
	})
	if err != nil {
		return types.ProductPage{}, fmt.Errorf("failed to list products: %w", err)
	}

	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		matched := products[:0:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Title), search) || strings.Contains(strings.ToLower(p.Category), search) {
				matched = append(matched, p)
			}
		}
		products = matched
	}

	total := len(products)
	result := types.ProductPage{
		Items:      []types.Product{},
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
	}
	// compare before multiplying so huge pages can't overflow
	if page < result.TotalPages {
		start := page * size
		result.Items = products[start:min(start+size, total)]
	}
	return result, nil
}
