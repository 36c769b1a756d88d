package model

import (
	"github.com/shopspring/decimal"
)

// Money is an immutable non-negative decimal amount. Exact decimal
// arithmetic is required so that menu price comparisons never drift from
// rounding; binary floating point is never used.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are rejected with ErrInvalidPrice.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrInvalidPrice
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromPtr creates a Money from an optional decimal amount.
// A nil amount is rejected with ErrInvalidPrice.
func NewMoneyFromPtr(amount *decimal.Decimal) (Money, error) {
	if amount == nil {
		return Money{}, ErrInvalidPrice
	}
	return NewMoney(*amount)
}

// MustMoney creates a Money from an integer amount, panicking on a negative
// value. Intended for fixtures and tests.
func MustMoney(amount int64) Money {
	m, err := NewMoney(decimal.NewFromInt(amount))
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MultiplyQuantity returns the amount multiplied by an integer quantity.
func (m Money) MultiplyQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// MarshalJSON encodes the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.amount.MarshalJSON()
}

// UnmarshalJSON decodes a JSON number into the amount. Negative values are
// rejected with ErrInvalidPrice.
func (m *Money) UnmarshalJSON(data []byte) error {
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(data); err != nil {
		return err
	}
	money, err := NewMoney(amount)
	if err != nil {
		return err
	}
	*m = money
	return nil
}
