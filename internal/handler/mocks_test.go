package handler

import (
	"context"
	"time"

	"menu-board/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) ChangePrice(ctx context.Context, id uuid.UUID, req *model.PriceChangeRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

// MockMenuService is a mock implementation of service.MenuService.
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) Create(ctx context.Context, req *model.MenuRequest) (*model.Menu, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) Hide(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) Display(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) ChangePrice(ctx context.Context, id uuid.UUID, req *model.PriceChangeRequest) (*model.Menu, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuService) GetAll(ctx context.Context) ([]model.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

// MockMenuGroupService is a mock implementation of service.MenuGroupService.
type MockMenuGroupService struct {
	mock.Mock
}

func (m *MockMenuGroupService) Create(ctx context.Context, req *model.MenuGroupRequest) (*model.MenuGroup, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuGroup), args.Error(1)
}

func (m *MockMenuGroupService) GetAll(ctx context.Context) ([]model.MenuGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuGroup), args.Error(1)
}

// Test fixtures

func fixtureProduct(name string, price int64) *model.Product {
	now := time.Now()
	return &model.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     model.MustMoney(price),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func fixtureMenu(price int64, displayed bool) *model.Menu {
	now := time.Now()
	menuID := uuid.New()
	return &model.Menu{
		ID:        menuID,
		Name:      "chicken set",
		Price:     model.MustMoney(price),
		Displayed: displayed,
		LineItems: []model.MenuLineItem{
			{
				ID:        uuid.New(),
				MenuID:    menuID,
				ProductID: uuid.New(),
				Quantity:  2,
				Seq:       0,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func strPtr(s string) *string { return &s }

func decPtr(amount int64) *decimal.Decimal {
	d := decimal.NewFromInt(amount)
	return &d
}
