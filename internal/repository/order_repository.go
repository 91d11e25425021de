package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/sakura-sushi/backend/internal/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order data access.
//
// Individual operations are atomic, but the store offers no cross-request
// coordination: a status update racing a delete resolves last-writer-wins.
// That is an accepted limitation at demo scale.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) error
	// List returns orders newest first. A limit <= 0 returns all orders.
	List(ctx context.Context, limit int) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Order, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	// Close flushes any pending state. Safe to call once at shutdown.
	Close() error
}

// InMemoryOrderRepository implements OrderRepository with an in-memory
// slice in insertion (chronological) order. Orders are lost on restart.
type InMemoryOrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

// Create appends the order to the collection.
func (r *InMemoryOrderRepository) Create(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
	return nil
}

// List returns orders newest first, up to limit when limit > 0.
func (r *InMemoryOrderRepository) List(ctx context.Context, limit int) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.orders)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]models.Order, 0, n)
	for i := len(r.orders) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.orders[i])
	}
	return out, nil
}

// GetByID returns the order with the given id.
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateStatus sets the matched order's status in place and returns the
// updated record. The caller is responsible for validating the status value.
func (r *InMemoryOrderRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Delete removes the matched order from the collection.
func (r *InMemoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}

// Count returns the number of stored orders.
func (r *InMemoryOrderRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders), nil
}

// Close is a no-op for the in-memory variant.
func (r *InMemoryOrderRepository) Close() error {
	return nil
}

// snapshot returns a copy of all orders in insertion order. Used by the
// file-backed variant to serialize the collection.
func (r *InMemoryOrderRepository) snapshot() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// seed replaces the collection. Used when loading a persisted snapshot.
func (r *InMemoryOrderRepository) seed(orders []models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = orders
}
