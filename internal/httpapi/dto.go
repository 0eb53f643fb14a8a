package httpapi

import (
	"github.com/nikolayk812/cartstock/internal/domain"
)

type addItemRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

type updateItemRequest struct {
	Quantity *int `json:"quantity"`
}

type moneyResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type productInCart struct {
	Name     string        `json:"name"`
	Price    moneyResponse `json:"price"`
	ImageURL string        `json:"image_url,omitempty"`
}

type cartItemResponse struct {
	ID        string         `json:"id"`
	CartID    string         `json:"cart_id"`
	ProductID string         `json:"product_id"`
	Quantity  int            `json:"quantity"`
	Product   *productInCart `json:"product,omitempty"`
	LineTotal *moneyResponse `json:"line_total,omitempty"`
}

type cartResponse struct {
	ID     string             `json:"id"`
	UserID string             `json:"user_id"`
	Items  []cartItemResponse `json:"items"`
	Total  *moneyResponse     `json:"total,omitempty"`
}

func toMoneyResponse(m domain.Money) moneyResponse {
	return moneyResponse{
		Amount:   m.Amount.StringFixed(2),
		Currency: m.Currency.String(),
	}
}

func toCartItemResponse(item domain.CartItem) cartItemResponse {
	resp := cartItemResponse{
		ID:        item.ID.String(),
		CartID:    item.CartID.String(),
		ProductID: item.ProductID.String(),
		Quantity:  item.Quantity,
	}

	if item.Product != nil {
		resp.Product = &productInCart{
			Name:     item.Product.Name,
			Price:    toMoneyResponse(item.Product.Price),
			ImageURL: item.Product.ImageURL,
		}
	}

	if total, ok := item.LineTotal(); ok {
		m := toMoneyResponse(total)
		resp.LineTotal = &m
	}

	return resp
}

func toCartResponse(cart domain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, toCartItemResponse(item))
	}

	resp := cartResponse{
		ID:     cart.ID.String(),
		UserID: cart.OwnerID,
		Items:  items,
	}

	if total, ok := cart.Total(); ok {
		m := toMoneyResponse(total)
		resp.Total = &m
	}

	return resp
}
