package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/nikolayk812/cartstock/internal/domain"
)

var errInvalidArgument = errors.New("invalid argument")

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// httpStatusFromError maps a service error to a status, a stable code and a client message.
func httpStatusFromError(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "PRODUCT_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, "INSUFFICIENT_STOCK", err.Error()
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, "INVALID_QUANTITY", err.Error()
	case errors.Is(err, domain.ErrEmptyOwnerID), errors.Is(err, errInvalidArgument):
		return http.StatusBadRequest, "INVALID_ARGUMENT", err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "CONFLICT", "conflicting cart update"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "UNAVAILABLE", "operation timed out"
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}
