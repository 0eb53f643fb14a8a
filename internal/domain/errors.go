package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrNotFound          = errors.New("not found")
	// ErrConflict means a second item for the same product was inserted into a cart.
	ErrConflict     = errors.New("conflict")
	ErrEmptyOwnerID = errors.New("ownerID is empty")
)

type InsufficientStockError struct {
	ProductID uuid.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product[%s]: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// CheckStock returns an *InsufficientStockError when quantity exceeds the product stock.
func CheckStock(p Product, quantity int) error {
	if quantity > p.Stock {
		return &InsufficientStockError{
			ProductID: p.ID,
			Requested: quantity,
			Available: p.Stock,
		}
	}

	return nil
}

func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	return nil
}
