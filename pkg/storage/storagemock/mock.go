package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/suryakart/suryakart/pkg/storage"
	"github.com/suryakart/suryakart/pkg/types"
)

type MockDatabase struct {
	mock.Mock
}

var _ storage.Database = (*MockDatabase)(nil)

func (m *MockDatabase) GetProduct(ctx context.Context, id string) (types.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.Product), args.Error(1)
}

func (m *MockDatabase) ListProducts(ctx context.Context, filter storage.ProductFilter) ([]types.Product, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]types.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDatabase) CreateProduct(ctx context.Context, product types.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockDatabase) UpdateProduct(ctx context.Context, product types.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockDatabase) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDatabase) Close() error {
	return nil
}
