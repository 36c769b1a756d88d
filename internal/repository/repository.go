package repository

import (
	"context"

	"menu-board/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)

	// GetAll retrieves all products ordered by name.
	GetAll(ctx context.Context) ([]model.Product, error)

	// UpdatePrice persists a new price for an existing product.
	UpdatePrice(ctx context.Context, id uuid.UUID, price model.Money) error
}

// MenuRepository defines the interface for menu data access operations.
type MenuRepository interface {
	// Create inserts a new menu together with its line items in a single
	// transaction.
	Create(ctx context.Context, menu *model.Menu) error

	// GetByID retrieves a menu with its line items. Returns nil when the
	// menu does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// GetAll retrieves all menus with their line items.
	GetAll(ctx context.Context) ([]model.Menu, error)

	// GetAllContainingProduct retrieves every menu that has a line item
	// referencing the given product.
	GetAllContainingProduct(ctx context.Context, productID uuid.UUID) ([]model.Menu, error)

	// UpdateDisplayed persists the displayed flag for an existing menu.
	UpdateDisplayed(ctx context.Context, id uuid.UUID, displayed bool) error

	// UpdatePrice persists a new price for an existing menu.
	UpdatePrice(ctx context.Context, id uuid.UUID, price model.Money) error
}

// MenuGroupRepository defines the interface for menu group data access
// operations.
type MenuGroupRepository interface {
	// Create inserts a new menu group.
	Create(ctx context.Context, group *model.MenuGroup) error

	// GetAll retrieves all menu groups ordered by name.
	GetAll(ctx context.Context) ([]model.MenuGroup, error)

	// Exists reports whether a menu group with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
