package service

import (
	"context"
	"fmt"
	"time"

	"menu-board/internal/model"
	"menu-board/internal/profanity"
	"menu-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo   repository.ProductRepository
	nameValidator *profanity.NameValidator
	consistency   *PriceConsistency
	logger        zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	nameValidator *profanity.NameValidator,
	consistency *PriceConsistency,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo:   productRepo,
		nameValidator: nameValidator,
		consistency:   consistency,
		logger:        logger.With().Str("service", "product").Logger(),
	}
}

// Create registers a new product. The name is gated before the price so
// callers always see the name failure first.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, model.ErrInvalidName
	}

	if err := s.nameValidator.Validate(ctx, req.Name); err != nil {
		s.logger.Warn().Err(err).Msg("product name rejected")
		return nil, err
	}

	price, err := model.NewMoneyFromPtr(req.Price)
	if err != nil {
		s.logger.Warn().Err(err).Msg("product price rejected")
		return nil, err
	}

	now := time.Now()
	product := &model.Product{
		ID:        uuid.New(),
		Name:      *req.Name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID.String()).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("name", product.Name).
		Str("price", product.Price.String()).
		Msg("product created")

	return product, nil
}

// ChangePrice updates a product's price. The price is durably updated before
// any menu is re-validated; the consistency pass then hides every menu whose
// price exceeds its recomputed line-item sum.
func (s *productService) ChangePrice(ctx context.Context, id uuid.UUID, req *model.PriceChangeRequest) (*model.Product, error) {
	if req == nil {
		return nil, model.ErrInvalidPrice
	}

	price, err := model.NewMoneyFromPtr(req.Price)
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", id.String()).Msg("new price rejected")
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	if err := s.productRepo.UpdatePrice(ctx, id, price); err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product price")
		return nil, err
	}

	product.Price = price
	product.UpdatedAt = time.Now()

	if err := s.consistency.OnProductPriceChanged(ctx, product); err != nil {
		// The product price is already durable; a failed pass leaves some
		// menus unchecked, which is a safe, resumable state.
		s.logger.Error().Err(err).
			Str("product_id", id.String()).
			Msg("price consistency pass failed")
		return nil, fmt.Errorf("failed to re-validate menus: %w", err)
	}

	s.logger.Info().
		Str("product_id", id.String()).
		Str("price", price.String()).
		Msg("product price changed")

	return product, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id.String()).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// GetAll retrieves all products.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}
