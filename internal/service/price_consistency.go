package service

import (
	"context"
	"fmt"
	"sync"

	"menu-board/internal/model"
	"menu-board/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PriceConsistency keeps menu prices consistent with constituent product
// prices. It validates the line-item sum at menu creation time and
// re-validates every affected menu when a product's price changes, hiding
// any menu whose price exceeds the recomputed sum. A hidden menu is never
// re-shown automatically.
type PriceConsistency struct {
	menuRepo    repository.MenuRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger

	// Per-menu locks serialize concurrent hide decisions for menus that
	// share a product. Cross-process races remain last-write-wins.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewPriceConsistency creates a new price consistency coordinator.
func NewPriceConsistency(
	menuRepo repository.MenuRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) *PriceConsistency {
	return &PriceConsistency{
		menuRepo:    menuRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "price-consistency").Logger(),
		locks:       make(map[uuid.UUID]*sync.Mutex),
	}
}

// LineItemSum computes the sum of (product price × quantity) over the given
// line items using current product prices. A line item referencing a
// nonexistent product fails with model.ErrProductNotFound.
func (e *PriceConsistency) LineItemSum(ctx context.Context, items []model.MenuLineItem) (model.Money, error) {
	return e.lineItemSum(ctx, items, nil)
}

// lineItemSum is LineItemSum with an optional price override map. The
// override carries the in-memory price of a product that was just updated,
// so the recomputation never races a stale read from the store.
func (e *PriceConsistency) lineItemSum(ctx context.Context, items []model.MenuLineItem, override map[uuid.UUID]model.Money) (model.Money, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := e.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return model.Money{}, fmt.Errorf("failed to load line item products: %w", err)
	}

	prices := make(map[uuid.UUID]model.Money, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}
	for id, price := range override {
		prices[id] = price
	}

	var sum model.Money
	for _, item := range items {
		price, ok := prices[item.ProductID]
		if !ok {
			e.logger.Warn().
				Str("product_id", item.ProductID.String()).
				Msg("line item references nonexistent product")
			return model.Money{}, model.ErrProductNotFound
		}
		sum = sum.Add(price.MultiplyQuantity(item.Quantity))
	}

	return sum, nil
}

// OnProductPriceChanged re-validates every menu containing the changed
// product and hides any whose price now exceeds the sum of its line items.
// Each menu's decision is independent and idempotent, so a failure on one
// menu does not stop the pass; the first error is reported after all menus
// have been attempted.
func (e *PriceConsistency) OnProductPriceChanged(ctx context.Context, product *model.Product) error {
	menus, err := e.menuRepo.GetAllContainingProduct(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("failed to find menus containing product: %w", err)
	}

	override := map[uuid.UUID]model.Money{product.ID: product.Price}

	var firstErr error
	hidden := 0
	for i := range menus {
		didHide, err := e.revalidateMenu(ctx, &menus[i], override)
		if err != nil {
			e.logger.Error().Err(err).
				Str("menu_id", menus[i].ID.String()).
				Msg("failed to re-validate menu")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if didHide {
			hidden++
		}
	}

	e.logger.Info().
		Str("product_id", product.ID.String()).
		Int("menus_checked", len(menus)).
		Int("menus_hidden", hidden).
		Msg("price consistency pass completed")

	return firstErr
}

// revalidateMenu recomputes a menu's line-item sum and hides the menu when
// its price exceeds the sum. A menu whose price is within the sum is left
// untouched: no forced re-display, no redundant re-hide.
func (e *PriceConsistency) revalidateMenu(ctx context.Context, menu *model.Menu, override map[uuid.UUID]model.Money) (bool, error) {
	lock := e.menuLock(menu.ID)
	lock.Lock()
	defer lock.Unlock()

	sum, err := e.lineItemSum(ctx, menu.LineItems, override)
	if err != nil {
		return false, err
	}

	if !menu.Price.GreaterThan(sum) {
		return false, nil
	}

	if err := e.menuRepo.UpdateDisplayed(ctx, menu.ID, false); err != nil {
		return false, err
	}

	e.logger.Info().
		Str("menu_id", menu.ID.String()).
		Str("menu_price", menu.Price.String()).
		Str("line_item_sum", sum.String()).
		Msg("menu hidden: price exceeds line item sum")

	return true, nil
}

// menuLock returns the mutex serializing decisions for one menu.
func (e *PriceConsistency) menuLock(id uuid.UUID) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()

	lock, ok := e.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[id] = lock
	}
	return lock
}
