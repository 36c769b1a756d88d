package service

import (
	"context"
	"errors"
	"testing"

	"menu-board/internal/model"
	"menu-board/internal/profanity"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newProductService wires a product service over mocks with a name validator
// whose checker never flags anything unless told otherwise.
func newProductService(productRepo *MockProductRepository, menuRepo *MockMenuRepository, checker *MockChecker) ProductService {
	logger := zerolog.Nop()
	validator := profanity.NewNameValidator(checker, logger)
	consistency := NewPriceConsistency(menuRepo, productRepo, logger)
	return NewProductService(productRepo, validator, consistency, logger)
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	checker := new(MockChecker)

	checker.On("ContainsProfanity", ctx, "fried chicken").Return(false, nil)
	productRepo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)

	service := newProductService(productRepo, menuRepo, checker)

	product, err := service.Create(ctx, &model.ProductRequest{
		Name:  strPtr("fried chicken"),
		Price: decPtr(16000),
	})

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "fried chicken", product.Name)
	assert.Equal(t, 0, product.Price.Cmp(model.MustMoney(16000)))

	checker.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestProductService_Create_InvalidPrice(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		price *decimal.Decimal
	}{
		{"Nil price", nil},
		{"Negative price", decPtr(-1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			menuRepo := new(MockMenuRepository)
			checker := new(MockChecker)

			checker.On("ContainsProfanity", ctx, "fried chicken").Return(false, nil)

			service := newProductService(productRepo, menuRepo, checker)

			_, err := service.Create(ctx, &model.ProductRequest{
				Name:  strPtr("fried chicken"),
				Price: tt.price,
			})

			assert.ErrorIs(t, err, model.ErrInvalidPrice)
			productRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestProductService_Create_InvalidName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		rawName *string
		profane bool
	}{
		{"Nil name", nil, false},
		{"Blank name", strPtr("  "), false},
		{"Profane name", strPtr("badword"), true},
		{"Name containing profanity", strPtr("name with badword inside"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			menuRepo := new(MockMenuRepository)
			checker := new(MockChecker)

			if tt.rawName != nil {
				checker.On("ContainsProfanity", ctx, *tt.rawName).Return(tt.profane, nil).Maybe()
			}

			service := newProductService(productRepo, menuRepo, checker)

			_, err := service.Create(ctx, &model.ProductRequest{
				Name:  tt.rawName,
				Price: decPtr(16000),
			})

			assert.ErrorIs(t, err, model.ErrInvalidName)
			productRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestProductService_Create_NameValidatedBeforePrice(t *testing.T) {
	ctx := context.Background()

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	checker := new(MockChecker)

	checker.On("ContainsProfanity", ctx, "badword").Return(true, nil)

	service := newProductService(productRepo, menuRepo, checker)

	// Both the name and the price are invalid; the name failure wins.
	_, err := service.Create(ctx, &model.ProductRequest{
		Name:  strPtr("badword"),
		Price: decPtr(-1000),
	})

	assert.ErrorIs(t, err, model.ErrInvalidName)
}

func TestProductService_ChangePrice(t *testing.T) {
	ctx := context.Background()

	product := testProduct("fried chicken", 16000)

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	checker := new(MockChecker)

	productRepo.On("GetByID", ctx, product.ID).Return(product, nil)
	productRepo.On("UpdatePrice", ctx, product.ID, model.MustMoney(15000)).Return(nil)
	menuRepo.On("GetAllContainingProduct", ctx, product.ID).Return([]model.Menu{}, nil)

	service := newProductService(productRepo, menuRepo, checker)

	updated, err := service.ChangePrice(ctx, product.ID, &model.PriceChangeRequest{Price: decPtr(15000)})

	require.NoError(t, err)
	assert.Equal(t, 0, updated.Price.Cmp(model.MustMoney(15000)))

	productRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
}

func TestProductService_ChangePrice_InvalidPrice(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		price *decimal.Decimal
	}{
		{"Nil price", nil},
		{"Negative price", decPtr(-1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := new(MockProductRepository)
			menuRepo := new(MockMenuRepository)
			checker := new(MockChecker)

			service := newProductService(productRepo, menuRepo, checker)

			_, err := service.ChangePrice(ctx, uuid.New(), &model.PriceChangeRequest{Price: tt.price})

			assert.ErrorIs(t, err, model.ErrInvalidPrice)
			productRepo.AssertNotCalled(t, "UpdatePrice")
		})
	}
}

func TestProductService_ChangePrice_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	checker := new(MockChecker)

	productRepo.On("GetByID", ctx, id).Return(nil, nil)

	service := newProductService(productRepo, menuRepo, checker)

	_, err := service.ChangePrice(ctx, id, &model.PriceChangeRequest{Price: decPtr(15000)})

	assert.ErrorIs(t, err, model.ErrProductNotFound)
	productRepo.AssertNotCalled(t, "UpdatePrice")
}

func TestProductService_ChangePrice_UpdatePersistedBeforeMenuScan(t *testing.T) {
	ctx := context.Background()
	product := testProduct("fried chicken", 16000)

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	checker := new(MockChecker)

	var priceUpdated bool
	productRepo.On("GetByID", ctx, product.ID).Return(product, nil)
	productRepo.On("UpdatePrice", ctx, product.ID, model.MustMoney(8000)).
		Run(func(args mock.Arguments) { priceUpdated = true }).
		Return(nil)
	menuRepo.On("GetAllContainingProduct", ctx, product.ID).
		Run(func(args mock.Arguments) { assert.True(t, priceUpdated, "menu scan ran before the price update") }).
		Return([]model.Menu{}, nil)

	service := newProductService(productRepo, menuRepo, checker)

	_, err := service.ChangePrice(ctx, product.ID, &model.PriceChangeRequest{Price: decPtr(8000)})
	require.NoError(t, err)

	menuRepo.AssertExpectations(t)
}

func TestProductService_GetAll(t *testing.T) {
	ctx := context.Background()

	products := []model.Product{
		*testProduct("fried chicken", 16000),
		*testProduct("seasoned chicken", 17000),
	}

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	checker := new(MockChecker)

	productRepo.On("GetAll", ctx).Return(products, nil)

	service := newProductService(productRepo, menuRepo, checker)

	actual, err := service.GetAll(ctx)

	require.NoError(t, err)
	assert.Len(t, actual, 2)
	productRepo.AssertExpectations(t)
}

func TestProductService_GetAll_RepositoryError(t *testing.T) {
	ctx := context.Background()

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	checker := new(MockChecker)

	productRepo.On("GetAll", ctx).Return(nil, errors.New("database error"))

	service := newProductService(productRepo, menuRepo, checker)

	_, err := service.GetAll(ctx)
	assert.Error(t, err)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	checker := new(MockChecker)

	productRepo.On("GetByID", ctx, id).Return(nil, nil)

	service := newProductService(productRepo, menuRepo, checker)

	_, err := service.GetByID(ctx, id)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}
