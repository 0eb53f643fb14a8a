package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartstock/internal/domain"
)

// CartRepository is the cart store. Mutating methods are expected to run
// inside a Transactor scope when they depend on a prior read.
type CartRepository interface {
	GetOrCreateCart(ctx context.Context, ownerID string) (domain.Cart, error)
	FindItem(ctx context.Context, cartID, productID uuid.UUID) (domain.CartItem, bool, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (domain.CartItem, error)
	ListItems(ctx context.Context, cartID uuid.UUID) ([]domain.CartItem, error)
	InsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (domain.CartItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	ClearCart(ctx context.Context, ownerID string) error
}
