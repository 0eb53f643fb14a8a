package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartstock/internal/db"
	"github.com/nikolayk812/cartstock/internal/domain"
	"github.com/nikolayk812/cartstock/internal/port"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q *db.Queries
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q: db.New(pool),
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q: db.New(tx),
	}
}

func (r *cartRepository) GetOrCreateCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, domain.ErrEmptyOwnerID
	}

	dbCart, err := r.q.GetOrCreateCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetOrCreateCart: %w", mapError(err))
	}

	return domain.Cart{
		ID:        dbCart.ID,
		OwnerID:   dbCart.OwnerID,
		CreatedAt: dbCart.CreatedAt,
	}, nil
}

func (r *cartRepository) FindItem(ctx context.Context, cartID, productID uuid.UUID) (domain.CartItem, bool, error) {
	dbItem, err := r.q.FindCartItem(ctx, db.FindCartItemParams{
		CartID:    cartID,
		ProductID: productID,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CartItem{}, false, nil
	}
	if err != nil {
		return domain.CartItem{}, false, fmt.Errorf("q.FindCartItem: %w", err)
	}

	return mapCartItemToDomain(dbItem), true, nil
}

func (r *cartRepository) GetItem(ctx context.Context, itemID uuid.UUID) (domain.CartItem, error) {
	dbItem, err := r.q.GetCartItemForUpdate(ctx, itemID)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("q.GetCartItemForUpdate: %w", mapError(err))
	}

	return mapCartItemToDomain(dbItem), nil
}

func (r *cartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]domain.CartItem, error) {
	rows, err := r.q.ListCartItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("q.ListCartItems: %w", err)
	}

	items, err := mapListCartItemsRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapListCartItemsRowsToDomain: %w", err)
	}

	return items, nil
}

func (r *cartRepository) InsertItem(ctx context.Context, cartID, productID uuid.UUID, quantity int) (domain.CartItem, error) {
	q32, err := toQuantity(quantity)
	if err != nil {
		return domain.CartItem{}, err
	}

	dbItem, err := r.q.InsertCartItem(ctx, db.InsertCartItemParams{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  q32,
	})
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("q.InsertCartItem: %w", mapError(err))
	}

	return mapCartItemToDomain(dbItem), nil
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (domain.CartItem, error) {
	q32, err := toQuantity(quantity)
	if err != nil {
		return domain.CartItem{}, err
	}

	dbItem, err := r.q.UpdateCartItemQuantity(ctx, db.UpdateCartItemQuantityParams{
		ID:       itemID,
		Quantity: q32,
	})
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("q.UpdateCartItemQuantity: %w", mapError(err))
	}

	return mapCartItemToDomain(dbItem), nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	rowsAffected, err := r.q.DeleteCartItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("q.DeleteCartItem: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("item[%s]: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

func (r *cartRepository) ClearCart(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return domain.ErrEmptyOwnerID
	}

	if _, err := r.q.ClearCart(ctx, ownerID); err != nil {
		return fmt.Errorf("q.ClearCart: %w", err)
	}

	return nil
}

func toQuantity(quantity int) (int32, error) {
	if quantity < 1 || quantity > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}

	return int32(quantity), nil
}

func mapCartItemToDomain(item db.CartItem) domain.CartItem {
	return domain.CartItem{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  int(item.Quantity),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func mapListCartItemsRowToDomain(row db.ListCartItemsRow) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartItem{
		ID:        row.ID,
		CartID:    row.CartID,
		ProductID: row.ProductID,
		Quantity:  int(row.Quantity),
		Product: &domain.ProductSummary{
			Name:     row.Name,
			Price:    domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
			ImageURL: derefString(row.ImageUrl),
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func mapListCartItemsRowsToDomain(rows []db.ListCartItemsRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapListCartItemsRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapListCartItemsRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
