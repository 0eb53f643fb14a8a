package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartstock/internal/domain"
	"github.com/nikolayk812/cartstock/internal/port"
)

// CartService enforces stock constraints around every cart mutation.
// Each read-check-write sequence runs inside one transaction.
type CartService struct {
	tx      port.Transactor
	log     *slog.Logger
	timeout time.Duration
}

type Option func(*CartService)

// WithTimeout bounds every operation, including store and directory calls.
func WithTimeout(d time.Duration) Option {
	return func(s *CartService) {
		s.timeout = d
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *CartService) {
		s.log = log
	}
}

func NewCart(tx port.Transactor, opts ...Option) (*CartService, error) {
	if tx == nil {
		return nil, fmt.Errorf("transactor is nil")
	}

	s := &CartService{
		tx:  tx,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *CartService) ViewCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, domain.ErrEmptyOwnerID
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cart domain.Cart
	err := s.tx.WithinTx(ctx, func(carts port.CartRepository, _ port.ProductDirectory) error {
		var err error
		cart, err = carts.GetOrCreateCart(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("carts.GetOrCreateCart: %w", err)
		}

		cart.Items, err = carts.ListItems(ctx, cart.ID)
		if err != nil {
			return fmt.Errorf("carts.ListItems: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Cart{}, err
	}

	return cart, nil
}

// AddItem puts quantity units of a product into the owner's cart, merging into
// an existing line when the product is already there. The merged quantity is
// checked against stock, not just the added delta.
func (s *CartService) AddItem(ctx context.Context, ownerID string, productID uuid.UUID, quantity int) (domain.CartItem, error) {
	if ownerID == "" {
		return domain.CartItem{}, domain.ErrEmptyOwnerID
	}
	if err := domain.ValidateQuantity(quantity); err != nil {
		return domain.CartItem{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.CartItem
	err := s.tx.WithinTx(ctx, func(carts port.CartRepository, products port.ProductDirectory) error {
		product, err := products.GetProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("products.GetProduct: %w", err)
		}

		if err := domain.CheckStock(product, quantity); err != nil {
			return err
		}

		cart, err := carts.GetOrCreateCart(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("carts.GetOrCreateCart: %w", err)
		}

		existing, found, err := carts.FindItem(ctx, cart.ID, productID)
		if err != nil {
			return fmt.Errorf("carts.FindItem: %w", err)
		}

		if !found {
			result, err = carts.InsertItem(ctx, cart.ID, productID, quantity)
			if err != nil {
				return fmt.Errorf("carts.InsertItem: %w", err)
			}
			return nil
		}

		merged := existing.Quantity + quantity
		if err := domain.CheckStock(product, merged); err != nil {
			return err
		}

		result, err = carts.UpdateItemQuantity(ctx, existing.ID, merged)
		if err != nil {
			return fmt.Errorf("carts.UpdateItemQuantity: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logRejection(ctx, "add item rejected", err,
			slog.String("owner_id", ownerID),
			slog.String("product_id", productID.String()),
			slog.Int("quantity", quantity))
		return domain.CartItem{}, err
	}

	return result, nil
}

// UpdateItem replaces the quantity of an existing line. Zero is rejected:
// removal goes through RemoveItem.
func (s *CartService) UpdateItem(ctx context.Context, itemID uuid.UUID, quantity int) (domain.CartItem, error) {
	if err := domain.ValidateQuantity(quantity); err != nil {
		return domain.CartItem{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.CartItem
	err := s.tx.WithinTx(ctx, func(carts port.CartRepository, products port.ProductDirectory) error {
		item, err := carts.GetItem(ctx, itemID)
		if err != nil {
			return fmt.Errorf("carts.GetItem: %w", err)
		}

		product, err := products.GetProduct(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("products.GetProduct: %w", err)
		}

		if err := domain.CheckStock(product, quantity); err != nil {
			return err
		}

		result, err = carts.UpdateItemQuantity(ctx, itemID, quantity)
		if err != nil {
			return fmt.Errorf("carts.UpdateItemQuantity: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logRejection(ctx, "update item rejected", err,
			slog.String("item_id", itemID.String()),
			slog.Int("quantity", quantity))
		return domain.CartItem{}, err
	}

	return result, nil
}

func (s *CartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.tx.WithinTx(ctx, func(carts port.CartRepository, _ port.ProductDirectory) error {
		if err := carts.DeleteItem(ctx, itemID); err != nil {
			return fmt.Errorf("carts.DeleteItem: %w", err)
		}
		return nil
	})
}

// Clear empties the owner's cart. An owner without a cart is not an error.
func (s *CartService) Clear(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return domain.ErrEmptyOwnerID
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.tx.WithinTx(ctx, func(carts port.CartRepository, _ port.ProductDirectory) error {
		if err := carts.ClearCart(ctx, ownerID); err != nil {
			return fmt.Errorf("carts.ClearCart: %w", err)
		}
		return nil
	})
}

func (s *CartService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *CartService) logRejection(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if !isBusinessRule(err) {
		return
	}

	attrs = append(attrs, slog.String("reason", err.Error()))
	s.log.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func isBusinessRule(err error) bool {
	return errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrProductNotFound) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrNotFound)
}
