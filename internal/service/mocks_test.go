package service

import (
	"context"
	"time"

	"menu-board/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) UpdatePrice(ctx context.Context, id uuid.UUID, price model.Money) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}

// MockMenuRepository is a mock implementation of MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, menu *model.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Menu), args.Error(1)
}

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]model.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuRepository) GetAllContainingProduct(ctx context.Context, productID uuid.UUID) ([]model.Menu, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Menu), args.Error(1)
}

func (m *MockMenuRepository) UpdateDisplayed(ctx context.Context, id uuid.UUID, displayed bool) error {
	args := m.Called(ctx, id, displayed)
	return args.Error(0)
}

func (m *MockMenuRepository) UpdatePrice(ctx context.Context, id uuid.UUID, price model.Money) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}

// MockMenuGroupRepository is a mock implementation of MenuGroupRepository.
type MockMenuGroupRepository struct {
	mock.Mock
}

func (m *MockMenuGroupRepository) Create(ctx context.Context, group *model.MenuGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockMenuGroupRepository) GetAll(ctx context.Context) ([]model.MenuGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuGroup), args.Error(1)
}

func (m *MockMenuGroupRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockChecker is a mock implementation of profanity.Checker.
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	args := m.Called(ctx, text)
	return args.Bool(0), args.Error(1)
}

func (m *MockChecker) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Test fixtures

func testProduct(name string, price int64) *model.Product {
	now := time.Now()
	return &model.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     model.MustMoney(price),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testMenu(price int64, displayed bool, product *model.Product, quantity int) *model.Menu {
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
				ProductID: product.ID,
				Quantity:  quantity,
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
