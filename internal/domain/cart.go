package domain

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	ID      uuid.UUID
	OwnerID string
	Items   []CartItem

	CreatedAt time.Time
}

// Total sums line totals. ok is false when the cart is empty or its lines
// are priced in more than one currency.
func (c Cart) Total() (total Money, ok bool) {
	for i, item := range c.Items {
		line, lineOK := item.LineTotal()
		if !lineOK {
			return Money{}, false
		}

		if i == 0 {
			total = line
			continue
		}

		if line.Currency != total.Currency {
			return Money{}, false
		}
		total.Amount = total.Amount.Add(line.Amount)
	}

	return total, len(c.Items) > 0
}

type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int

	// Product is filled on read paths only.
	Product *ProductSummary

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i CartItem) LineTotal() (Money, bool) {
	if i.Product == nil {
		return Money{}, false
	}

	return i.Product.Price.Mul(i.Quantity), true
}
