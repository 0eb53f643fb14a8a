package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartstock/internal/domain"
)

type ProductDirectory interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
}
