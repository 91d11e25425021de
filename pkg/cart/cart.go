// Package cart implements the session shopping cart: an ordered collection
// of menu items with quantities, mirrored to durable storage after every
// mutation so the cart survives a restart.
package cart

import (
	"log/slog"
	"sync"

	"github.com/sakura-sushi/backend/internal/models"
)

// Cart is an explicitly owned cart store. At most one line exists per
// product id; lines keep their insertion order.
//
// Storage failures never fail a cart operation: a load failure starts the
// session empty, a save failure keeps the in-memory state authoritative and
// only costs durability. Both are logged.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
	store Storage
	log   *slog.Logger
}

// New creates a cart backed by store, reloading the last saved snapshot
// verbatim.
func New(store Storage, log *slog.Logger) *Cart {
	c := &Cart{store: store, log: log}

	items, err := store.Load()
	if err != nil {
		log.Warn("cart snapshot unreadable, starting empty", "error", err)
		return c
	}
	c.items = items
	return c
}

// Add puts quantity units of the product in the cart. If a line for the
// product already exists its quantity is incremented, otherwise a new line
// is appended. Quantities below 1 are treated as 1.
func (c *Cart) Add(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity += quantity
			c.persistLocked()
			return
		}
	}

	c.items = append(c.items, models.CartItem{Product: p, Quantity: quantity})
	c.persistLocked()
}

// Remove deletes the line for the given product id. Removing an absent line
// is a no-op.
func (c *Cart) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

// UpdateQuantity sets the line's quantity to exactly quantity. A quantity of
// zero or less removes the line.
func (c *Cart) UpdateQuantity(id int64, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			c.persistLocked()
			return
		}
	}
}

// Clear empties the cart and erases the durable snapshot.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	if err := c.store.Erase(); err != nil {
		c.log.Warn("failed to erase cart snapshot", "error", err)
	}
}

// Items returns a snapshot copy of the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalPrice returns the sum of price*quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems returns the sum of quantities over all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) removeLocked(id int64) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persistLocked()
			return
		}
	}
}

// persistLocked mirrors the cart to durable storage. Must be called with
// c.mu held.
func (c *Cart) persistLocked() {
	if err := c.store.Save(c.items); err != nil {
		c.log.Warn("failed to save cart snapshot", "error", err)
	}
}
