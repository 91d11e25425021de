// Package checkout drives the order-submission round trip: it snapshots the
// cart, submits the order once, and clears the cart only after the API has
// confirmed it.
package checkout

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sakura-sushi/backend/internal/models"
	"github.com/sakura-sushi/backend/pkg/cart"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// Service submits the current cart as an order.
type Service struct {
	cart   *cart.Cart
	client *Client
	log    *slog.Logger
}

// NewService creates a checkout service over the given cart and API client.
func NewService(c *cart.Cart, client *Client, log *slog.Logger) *Service {
	return &Service{
		cart:   c,
		client: client,
		log:    log,
	}
}

// Checkout submits the cart once. There is no retry and no idempotency key:
// a resubmission after a reported failure creates a brand-new order on the
// backend. The cart is cleared strictly on confirmed success; on any failure
// it is preserved so the user can retry.
func (s *Service) Checkout(ctx context.Context, customer models.Customer, deliveryAddress, contact string) (*OrderConfirmation, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := models.CreateOrderRequest{
		Customer:        customer,
		Items:           items,
		Total:           s.cart.TotalPrice(),
		DeliveryAddress: deliveryAddress,
		Contact:         contact,
	}

	conf, err := s.client.SubmitOrder(ctx, req)
	if err != nil {
		s.log.Warn("order submission failed, cart preserved", "error", err)
		return nil, err
	}

	s.cart.Clear()
	s.log.Info("order confirmed",
		"order_number", conf.Order.OrderNumber,
		"total", conf.Order.Total,
	)
	return conf, nil
}
