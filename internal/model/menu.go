package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Menu represents a priced, named bundle of product line items with a
// displayed/hidden visibility flag. A menu whose price exceeds the sum of
// its line-item values is hidden and stays hidden until explicitly
// re-displayed.
type Menu struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Price       Money          `json:"price" db:"price"`
	MenuGroupID *uuid.UUID     `json:"menuGroupId,omitempty" db:"menu_group_id"`
	Displayed   bool           `json:"displayed" db:"displayed"`
	LineItems   []MenuLineItem `json:"lineItems"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

// MenuLineItem is a weak reference to a product plus a positive quantity.
// The menu never owns the product; affected menus are discovered by querying
// for this reference.
type MenuLineItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	MenuID    uuid.UUID `json:"-" db:"menu_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Seq       int       `json:"-" db:"seq"`
}

// MenuRequest represents the request payload for creating a menu.
type MenuRequest struct {
	Name        *string               `json:"name"`
	Price       *decimal.Decimal      `json:"price"`
	MenuGroupID *uuid.UUID            `json:"menuGroupId,omitempty"`
	Displayed   bool                  `json:"displayed"`
	LineItems   []MenuLineItemRequest `json:"lineItems"`
}

// MenuLineItemRequest represents a single line item in a menu request.
type MenuLineItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// MenuGroup is a named grouping that menus may belong to.
type MenuGroup struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// MenuGroupRequest represents the request payload for creating a menu group.
type MenuGroupRequest struct {
	Name *string `json:"name"`
}
