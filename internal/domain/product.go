package domain

import "github.com/google/uuid"

// Product is the directory's view of a catalog entry. Stock is the only
// available-quantity signal; nothing here reserves or decrements it.
type Product struct {
	ID       uuid.UUID
	Name     string
	Price    Money
	Stock    int
	ImageURL string
}

func (p Product) Summary() ProductSummary {
	return ProductSummary{
		Name:     p.Name,
		Price:    p.Price,
		ImageURL: p.ImageURL,
	}
}

type ProductSummary struct {
	Name     string
	Price    Money
	ImageURL string
}
