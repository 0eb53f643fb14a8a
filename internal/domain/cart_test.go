package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartstock/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestCartTotal(t *testing.T) {
	usd := func(amount string) *domain.ProductSummary {
		return &domain.ProductSummary{
			Name:  "p",
			Price: domain.Money{Amount: decimal.RequireFromString(amount), Currency: currency.USD},
		}
	}

	tests := []struct {
		name      string
		items     []domain.CartItem
		wantTotal string
		wantOK    bool
	}{
		{
			name:   "empty cart: no total",
			wantOK: false,
		},
		{
			name: "single currency: ok",
			items: []domain.CartItem{
				{Quantity: 2, Product: usd("1.25")},
				{Quantity: 3, Product: usd("10.10")},
			},
			wantTotal: "32.8",
			wantOK:    true,
		},
		{
			name: "mixed currencies: no total",
			items: []domain.CartItem{
				{Quantity: 1, Product: usd("1")},
				{Quantity: 1, Product: &domain.ProductSummary{
					Price: domain.Money{Amount: decimal.NewFromInt(1), Currency: currency.EUR},
				}},
			},
			wantOK: false,
		},
		{
			name:   "item without product summary: no total",
			items:  []domain.CartItem{{Quantity: 1}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, ok := domain.Cart{Items: tt.items}.Total()
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}

			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(total.Amount), "got %s", total.Amount)
			assert.Equal(t, currency.USD, total.Currency)
		})
	}
}

func TestCheckStock(t *testing.T) {
	p := domain.Product{ID: uuid.New(), Stock: 5}

	require.NoError(t, domain.CheckStock(p, 5))

	err := domain.CheckStock(p, 6)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 6, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Available)
	assert.Equal(t, p.ID, stockErr.ProductID)
}

func TestValidateQuantity(t *testing.T) {
	require.NoError(t, domain.ValidateQuantity(1))
	require.ErrorIs(t, domain.ValidateQuantity(0), domain.ErrInvalidQuantity)
	require.ErrorIs(t, domain.ValidateQuantity(-3), domain.ErrInvalidQuantity)
}
