package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in the catalogue.
type Product struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     Money     `json:"price" db:"price"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductRequest represents the request payload for creating a product.
// Name and price are pointers so that absent fields can be told apart from
// zero values during validation.
type ProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// PriceChangeRequest represents the request payload for changing a price.
type PriceChangeRequest struct {
	Price *decimal.Decimal `json:"price"`
}
