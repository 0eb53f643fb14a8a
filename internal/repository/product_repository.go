package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cartstock/internal/db"
	"github.com/nikolayk812/cartstock/internal/domain"
	"github.com/nikolayk812/cartstock/internal/port"
	"golang.org/x/text/currency"
)

type productRepository struct {
	q *db.Queries
	// forShare locks the product row until the surrounding transaction ends.
	forShare bool
}

func NewProduct(pool *pgxpool.Pool) port.ProductDirectory {
	return &productRepository{
		q: db.New(pool),
	}
}

func NewProductWithTx(tx pgx.Tx) port.ProductDirectory {
	return &productRepository{
		q:        db.New(tx),
		forShare: true,
	}
}

func (r *productRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	var (
		row db.GetProductRow
		err error
	)

	if r.forShare {
		var locked db.GetProductForShareRow
		locked, err = r.q.GetProductForShare(ctx, productID)
		row = db.GetProductRow(locked)
	} else {
		row, err = r.q.GetProduct(ctx, productID)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", productID, domain.ErrProductNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	return mapProductRowToDomain(row)
}

func mapProductRowToDomain(row db.GetProductRow) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.Product{
		ID:       row.ID,
		Name:     row.Name,
		Price:    domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Stock:    int(row.Stock),
		ImageURL: derefString(row.ImageUrl),
	}, nil
}
