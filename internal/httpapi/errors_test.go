package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartstock/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "product not found -> 404",
			err:        fmt.Errorf("products.GetProduct: %w", domain.ErrProductNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "PRODUCT_NOT_FOUND",
		},
		{
			name:       "item not found -> 404",
			err:        fmt.Errorf("carts.GetItem: %w", domain.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "insufficient stock -> 400",
			err:        &domain.InsufficientStockError{ProductID: uuid.New(), Requested: 6, Available: 5},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INSUFFICIENT_STOCK",
		},
		{
			name:       "invalid quantity -> 400",
			err:        domain.ValidateQuantity(0),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_QUANTITY",
		},
		{
			name:       "empty owner -> 400",
			err:        domain.ErrEmptyOwnerID,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ARGUMENT",
		},
		{
			name:       "conflict -> 409",
			err:        fmt.Errorf("carts.InsertItem: %w", domain.ErrConflict),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "deadline -> 503",
			err:        fmt.Errorf("pool.Begin: %w", context.DeadlineExceeded),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "UNAVAILABLE",
		},
		{
			name:       "unknown -> 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStatus, gotCode, _ := httpStatusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, gotStatus)
			assert.Equal(t, tt.wantCode, gotCode)
		})
	}
}

func TestHTTPStatusFromError_HidesInternalDetails(t *testing.T) {
	_, _, msg := httpStatusFromError(errors.New("dial tcp 10.0.0.3:5432: connection refused"))
	assert.Equal(t, "internal error", msg)
}
