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

// menuService implements MenuService.
type menuService struct {
	menuRepo      repository.MenuRepository
	menuGroupRepo repository.MenuGroupRepository
	nameValidator *profanity.NameValidator
	consistency   *PriceConsistency
	logger        zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(
	menuRepo repository.MenuRepository,
	menuGroupRepo repository.MenuGroupRepository,
	nameValidator *profanity.NameValidator,
	consistency *PriceConsistency,
	logger zerolog.Logger,
) MenuService {
	return &menuService{
		menuRepo:      menuRepo,
		menuGroupRepo: menuGroupRepo,
		nameValidator: nameValidator,
		consistency:   consistency,
		logger:        logger.With().Str("service", "menu").Logger(),
	}
}

// Create registers a new menu. All invariant checks run before anything is
// persisted: a failed creation has no side effects.
func (s *menuService) Create(ctx context.Context, req *model.MenuRequest) (*model.Menu, error) {
	if req == nil {
		return nil, model.ErrInvalidName
	}

	if err := s.nameValidator.Validate(ctx, req.Name); err != nil {
		s.logger.Warn().Err(err).Msg("menu name rejected")
		return nil, err
	}

	price, err := model.NewMoneyFromPtr(req.Price)
	if err != nil {
		s.logger.Warn().Err(err).Msg("menu price rejected")
		return nil, err
	}

	if len(req.LineItems) == 0 {
		return nil, model.ErrEmptyLineItems
	}

	for _, item := range req.LineItems {
		if item.Quantity < 1 {
			s.logger.Warn().
				Str("product_id", item.ProductID.String()).
				Int("quantity", item.Quantity).
				Msg("invalid line item quantity")
			return nil, model.ErrInvalidQuantity
		}
	}

	if req.MenuGroupID != nil {
		exists, err := s.menuGroupRepo.Exists(ctx, *req.MenuGroupID)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to check menu group")
			return nil, fmt.Errorf("failed to check menu group: %w", err)
		}
		if !exists {
			return nil, model.ErrMenuGroupNotFound
		}
	}

	menuID := uuid.New()
	lineItems := make([]model.MenuLineItem, len(req.LineItems))
	for i, item := range req.LineItems {
		lineItems[i] = model.MenuLineItem{
			ID:        uuid.New(),
			MenuID:    menuID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Seq:       i,
		}
	}

	sum, err := s.consistency.LineItemSum(ctx, lineItems)
	if err != nil {
		return nil, err
	}

	// Equality is allowed: only a price strictly above the sum is rejected.
	if price.GreaterThan(sum) {
		s.logger.Warn().
			Str("price", price.String()).
			Str("line_item_sum", sum.String()).
			Msg("menu price exceeds line item sum")
		return nil, model.ErrPriceExceedsSum
	}

	now := time.Now()
	menu := &model.Menu{
		ID:          menuID,
		Name:        *req.Name,
		Price:       price,
		MenuGroupID: req.MenuGroupID,
		Displayed:   req.Displayed,
		LineItems:   lineItems,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.menuRepo.Create(ctx, menu); err != nil {
		s.logger.Error().Err(err).Str("menu_id", menu.ID.String()).Msg("failed to create menu")
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}

	s.logger.Info().
		Str("menu_id", menu.ID.String()).
		Str("name", menu.Name).
		Int("line_item_count", len(menu.LineItems)).
		Bool("displayed", menu.Displayed).
		Msg("menu created")

	return menu, nil
}

// Hide sets the menu's displayed flag to false. Hiding an already-hidden
// menu is a no-op success.
func (s *menuService) Hide(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	menu, err := s.getMenu(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.menuRepo.UpdateDisplayed(ctx, id, false); err != nil {
		s.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to hide menu")
		return nil, err
	}

	menu.Displayed = false

	s.logger.Info().Str("menu_id", id.String()).Msg("menu hidden")

	return menu, nil
}

// Display re-shows a menu. The price invariant is re-checked against current
// product prices first, so a stale menu cannot be re-shown at an
// inconsistent price.
func (s *menuService) Display(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	menu, err := s.getMenu(ctx, id)
	if err != nil {
		return nil, err
	}

	sum, err := s.consistency.LineItemSum(ctx, menu.LineItems)
	if err != nil {
		return nil, err
	}

	if menu.Price.GreaterThan(sum) {
		s.logger.Warn().
			Str("menu_id", id.String()).
			Str("price", menu.Price.String()).
			Str("line_item_sum", sum.String()).
			Msg("cannot display menu: price exceeds line item sum")
		return nil, model.ErrPriceExceedsSum
	}

	if err := s.menuRepo.UpdateDisplayed(ctx, id, true); err != nil {
		s.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to display menu")
		return nil, err
	}

	menu.Displayed = true

	s.logger.Info().Str("menu_id", id.String()).Msg("menu displayed")

	return menu, nil
}

// ChangePrice updates a menu's price. The new price must not exceed the
// current sum of its line items.
func (s *menuService) ChangePrice(ctx context.Context, id uuid.UUID, req *model.PriceChangeRequest) (*model.Menu, error) {
	if req == nil {
		return nil, model.ErrInvalidPrice
	}

	price, err := model.NewMoneyFromPtr(req.Price)
	if err != nil {
		s.logger.Warn().Err(err).Str("menu_id", id.String()).Msg("new menu price rejected")
		return nil, err
	}

	menu, err := s.getMenu(ctx, id)
	if err != nil {
		return nil, err
	}

	sum, err := s.consistency.LineItemSum(ctx, menu.LineItems)
	if err != nil {
		return nil, err
	}

	if price.GreaterThan(sum) {
		s.logger.Warn().
			Str("menu_id", id.String()).
			Str("price", price.String()).
			Str("line_item_sum", sum.String()).
			Msg("new menu price exceeds line item sum")
		return nil, model.ErrPriceExceedsSum
	}

	if err := s.menuRepo.UpdatePrice(ctx, id, price); err != nil {
		s.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to update menu price")
		return nil, err
	}

	menu.Price = price

	s.logger.Info().
		Str("menu_id", id.String()).
		Str("price", price.String()).
		Msg("menu price changed")

	return menu, nil
}

// GetByID retrieves a single menu by ID.
func (s *menuService) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	return s.getMenu(ctx, id)
}

// GetAll retrieves all menus.
func (s *menuService) GetAll(ctx context.Context) ([]model.Menu, error) {
	menus, err := s.menuRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all menus")
		return nil, fmt.Errorf("failed to get menus: %w", err)
	}

	s.logger.Debug().Int("count", len(menus)).Msg("retrieved menus")

	return menus, nil
}

// getMenu loads a menu or fails with ErrMenuNotFound.
func (s *menuService) getMenu(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to get menu")
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	if menu == nil {
		s.logger.Debug().Str("menu_id", id.String()).Msg("menu not found")
		return nil, model.ErrMenuNotFound
	}

	return menu, nil
}
