package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sakura-sushi/backend/internal/models"
	"github.com/sakura-sushi/backend/internal/repository"
)

var (
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrMissingCustomer = errors.New("customer name is required")
	ErrInvalidTotal    = errors.New("total must not be negative")
	ErrUnknownStatus   = errors.New("unknown order status")
)

// defaultListLimit caps the recent-orders listing when the caller does not
// ask for a specific limit.
const defaultListLimit = 10

const deliveryEstimate = 45 * time.Minute

// OrderService handles order business logic.
type OrderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// CreateOrder validates the request, assigns identifiers and stores the
// order with status confirmed. The submitted total is stored verbatim; it is
// not recomputed from the items.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	if strings.TrimSpace(req.Customer.Name) == "" {
		return nil, ErrMissingCustomer
	}

	if req.Total < 0 {
		return nil, ErrInvalidTotal
	}

	now := time.Now().UTC()

	order := models.Order{
		ID:                uuid.New().String(),
		OrderNumber:       newOrderNumber(now),
		Customer:          req.Customer,
		Items:             req.Items,
		Total:             req.Total,
		DeliveryAddress:   req.DeliveryAddress,
		Contact:           req.Contact,
		Status:            models.StatusConfirmed,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(deliveryEstimate),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListOrders returns recent orders newest first as dashboard summaries.
// A limit <= 0 falls back to the default of 10.
func (s *OrderService) ListOrders(ctx context.Context, limit int) ([]models.OrderSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	orders, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, orders[i].Summary())
	}
	return summaries, nil
}

// GetOrder returns the full order record by id.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus sets the order's status. The value must be a known status;
// transitions between known statuses are not restricted.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, ErrUnknownStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// DeleteOrder archives the order by removing it from the active list.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// OrdersCount reports the number of stored orders, used by the health check.
func (s *OrderService) OrdersCount(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newOrderNumber builds a human-readable order number, e.g.
// SUSHI-1718901234567-K3QF.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("SUSHI-%d-%s", now.UnixMilli(), randomString(4, orderNumberAlphabet))
}

func randomString(n int, alphabet string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
