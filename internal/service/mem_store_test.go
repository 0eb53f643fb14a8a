package service_test

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartstock/internal/domain"
	"github.com/nikolayk812/cartstock/internal/port"
)

// memStore is an in-memory Transactor. Transactions are fully serialized and
// a failed callback restores the state captured when it started.
type memStore struct {
	mu sync.Mutex

	products map[uuid.UUID]domain.Product
	carts    map[string]domain.Cart
	items    map[uuid.UUID]domain.CartItem
	clock    int64

	// failOn makes the named store method return failErr.
	failOn  string
	failErr error
}

func newMemStore(products ...domain.Product) *memStore {
	m := &memStore{
		products: make(map[uuid.UUID]domain.Product),
		carts:    make(map[string]domain.Cart),
		items:    make(map[uuid.UUID]domain.CartItem),
	}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memStore) WithinTx(ctx context.Context, fn func(carts port.CartRepository, products port.ProductDirectory) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	carts := maps.Clone(m.carts)
	items := maps.Clone(m.items)

	if err := fn(memCarts{m}, memProducts{m}); err != nil {
		m.carts = carts
		m.items = items
		return err
	}

	return nil
}

func (m *memStore) setStock(productID uuid.UUID, stock int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.products[productID]
	p.Stock = stock
	m.products[productID] = p
}

func (m *memStore) itemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.items)
}

func (m *memStore) hasCart(ownerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.carts[ownerID]
	return ok
}

func (m *memStore) fail(method string) error {
	if m.failOn == method {
		return m.failErr
	}
	return nil
}

func (m *memStore) now() time.Time {
	m.clock++
	return time.Unix(m.clock, 0)
}

type memProducts struct{ m *memStore }

func (p memProducts) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	if err := p.m.fail("GetProduct"); err != nil {
		return domain.Product{}, err
	}

	product, ok := p.m.products[productID]
	if !ok {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", productID, domain.ErrProductNotFound)
	}
	return product, nil
}

type memCarts struct{ m *memStore }

func (c memCarts) GetOrCreateCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if err := c.m.fail("GetOrCreateCart"); err != nil {
		return domain.Cart{}, err
	}

	if cart, ok := c.m.carts[ownerID]; ok {
		return cart, nil
	}

	cart := domain.Cart{ID: uuid.New(), OwnerID: ownerID, CreatedAt: c.m.now()}
	c.m.carts[ownerID] = cart
	return cart, nil
}

func (c memCarts) FindItem(_ context.Context, cartID, productID uuid.UUID) (domain.CartItem, bool, error) {
	for _, item := range c.m.items {
		if item.CartID == cartID && item.ProductID == productID {
			return item, true, nil
		}
	}
	return domain.CartItem{}, false, nil
}

func (c memCarts) GetItem(_ context.Context, itemID uuid.UUID) (domain.CartItem, error) {
	item, ok := c.m.items[itemID]
	if !ok {
		return domain.CartItem{}, fmt.Errorf("item[%s]: %w", itemID, domain.ErrNotFound)
	}
	return item, nil
}

func (c memCarts) ListItems(_ context.Context, cartID uuid.UUID) ([]domain.CartItem, error) {
	var items []domain.CartItem
	for _, item := range c.m.items {
		if item.CartID != cartID {
			continue
		}
		summary := c.m.products[item.ProductID].Summary()
		item.Product = &summary
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (c memCarts) InsertItem(_ context.Context, cartID, productID uuid.UUID, quantity int) (domain.CartItem, error) {
	if err := c.m.fail("InsertItem"); err != nil {
		return domain.CartItem{}, err
	}

	for _, item := range c.m.items {
		if item.CartID == cartID && item.ProductID == productID {
			return domain.CartItem{}, domain.ErrConflict
		}
	}

	now := c.m.now()
	item := domain.CartItem{
		ID:        uuid.New(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.m.items[item.ID] = item
	return item, nil
}

func (c memCarts) UpdateItemQuantity(_ context.Context, itemID uuid.UUID, quantity int) (domain.CartItem, error) {
	if err := c.m.fail("UpdateItemQuantity"); err != nil {
		return domain.CartItem{}, err
	}

	item, ok := c.m.items[itemID]
	if !ok {
		return domain.CartItem{}, fmt.Errorf("item[%s]: %w", itemID, domain.ErrNotFound)
	}

	item.Quantity = quantity
	item.UpdatedAt = c.m.now()
	c.m.items[itemID] = item
	return item, nil
}

func (c memCarts) DeleteItem(_ context.Context, itemID uuid.UUID) error {
	if _, ok := c.m.items[itemID]; !ok {
		return fmt.Errorf("item[%s]: %w", itemID, domain.ErrNotFound)
	}
	delete(c.m.items, itemID)
	return nil
}

func (c memCarts) ClearCart(_ context.Context, ownerID string) error {
	cart, ok := c.m.carts[ownerID]
	if !ok {
		return nil
	}

	for id, item := range c.m.items {
		if item.CartID == cart.ID {
			delete(c.m.items, id)
		}
	}
	return nil
}
