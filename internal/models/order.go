package models

import "time"

// Order statuses in kitchen progression order. An order leaves the active
// list by deletion (archival), not by a terminal status.
const (
	StatusConfirmed = "confirmed"
	StatusCooking   = "cooking"
	StatusReady     = "ready"
)

// ValidStatus reports whether s is a known order status.
//
// Only the value is validated. The API deliberately does not restrict which
// transitions are allowed: the kitchen dashboard drives statuses forward,
// but a confirmed→ready jump or a ready→cooking step back is accepted.
func ValidStatus(s string) bool {
	switch s {
	case StatusConfirmed, StatusCooking, StatusReady:
		return true
	}
	return false
}

// Customer holds the checkout contact sub-record.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Customer        Customer   `json:"customer"`
	Items           []CartItem `json:"items"`
	Total           float64    `json:"total"`
	DeliveryAddress string     `json:"deliveryAddress"`
	Contact         string     `json:"contact,omitempty"`
}

// UpdateStatusRequest is the body of PATCH /api/orders/{orderId}/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Order is a stored order record. Items, total, customer and delivery
// details are immutable after creation; only Status changes afterwards.
type Order struct {
	ID                string     `json:"id"`
	OrderNumber       string     `json:"orderNumber"`
	Customer          Customer   `json:"customer"`
	Items             []CartItem `json:"items"`
	Total             float64    `json:"total"`
	DeliveryAddress   string     `json:"deliveryAddress"`
	Contact           string     `json:"contact,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	EstimatedDelivery time.Time  `json:"estimatedDelivery"`
}

// OrderProjection is the subset of an order returned on creation.
type OrderProjection struct {
	ID                string    `json:"id"`
	OrderNumber       string    `json:"orderNumber"`
	Total             float64   `json:"total"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	Status            string    `json:"status"`
}

// Projection returns the creation response view of the order.
func (o *Order) Projection() OrderProjection {
	return OrderProjection{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		Total:             o.Total,
		EstimatedDelivery: o.EstimatedDelivery,
		Status:            o.Status,
	}
}

// OrderSummary is one row of the recent-orders listing used by the kitchen
// dashboard.
type OrderSummary struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	CustomerName string    `json:"customerName"`
}

// Summary returns the listing view of the order.
func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		Total:        o.Total,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		CustomerName: o.Customer.Name,
	}
}
