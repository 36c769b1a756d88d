package service

import (
	"context"

	"menu-board/internal/model"

	"github.com/google/uuid"
)

// ProductService defines operations for product management.
type ProductService interface {
	// Create registers a new product after gating its name and price.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// ChangePrice updates a product's price and re-validates every menu
	// containing the product, hiding any whose price now exceeds the sum of
	// its line items.
	ChangePrice(ctx context.Context, id uuid.UUID, req *model.PriceChangeRequest) (*model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)
}

// MenuService defines operations for menu management.
type MenuService interface {
	// Create registers a new menu. The menu price must not exceed the sum
	// of its line-item values at creation time.
	Create(ctx context.Context, req *model.MenuRequest) (*model.Menu, error)

	// Hide sets the menu's displayed flag to false. Idempotent.
	Hide(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// Display re-shows a hidden menu after re-checking that its price does
	// not exceed the current sum of its line items.
	Display(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// ChangePrice updates a menu's price, rejecting any price above the
	// current sum of its line items.
	ChangePrice(ctx context.Context, id uuid.UUID, req *model.PriceChangeRequest) (*model.Menu, error)

	// GetByID retrieves a single menu by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// GetAll retrieves all menus.
	GetAll(ctx context.Context) ([]model.Menu, error)
}

// MenuGroupService defines operations for menu group management.
type MenuGroupService interface {
	// Create registers a new menu group.
	Create(ctx context.Context, req *model.MenuGroupRequest) (*model.MenuGroup, error)

	// GetAll retrieves all menu groups.
	GetAll(ctx context.Context) ([]model.MenuGroup, error)
}
