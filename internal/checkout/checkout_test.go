package checkout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sakura-sushi/backend/internal/handlers"
	"github.com/sakura-sushi/backend/internal/models"
	"github.com/sakura-sushi/backend/internal/repository"
	"github.com/sakura-sushi/backend/internal/service"
	"github.com/sakura-sushi/backend/pkg/cart"
	"github.com/sakura-sushi/backend/pkg/logger"
)

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.New("error")
	menuHandler := handlers.NewMenuHandler(service.NewMenuService(repository.NewInMemoryMenuRepository()), log)
	orderHandler := handlers.NewOrderHandler(service.NewOrderService(repository.NewInMemoryOrderRepository()), log)

	r := chi.NewRouter()
	r.Get("/api/menu", menuHandler.ListItems)
	r.Get("/api/menu/{itemId}", menuHandler.GetItem)
	r.Post("/api/orders", orderHandler.CreateOrder)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestCart(t *testing.T) *cart.Cart {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.json")
	return cart.New(cart.NewFileStorage(path), logger.New("error"))
}

func fillCart(t *testing.T, c *cart.Cart) {
	t.Helper()
	c.Add(models.Product{ID: 1, Name: "Philadelphia", Price: 12}, 2)
	c.Add(models.Product{ID: 5, Name: "Spicy Tuna", Price: 10}, 1)
}

func TestClientMenu(t *testing.T) {
	srv := newBackend(t)
	client := NewClient(srv.URL)

	items, err := client.Menu(context.Background())
	if err != nil {
		t.Fatalf("Menu() error = %v", err)
	}
	if len(items) != 8 {
		t.Errorf("Menu() returned %d items, want 8", len(items))
	}

	item, err := client.MenuItem(context.Background(), 1)
	if err != nil {
		t.Fatalf("MenuItem(1) error = %v", err)
	}
	if item.Name != "Philadelphia" {
		t.Errorf("MenuItem(1).Name = %s, want Philadelphia", item.Name)
	}

	if _, err := client.MenuItem(context.Background(), 999); err == nil {
		t.Error("MenuItem(999) expected error, got nil")
	}
}

func TestCheckoutClearsCartOnSuccess(t *testing.T) {
	srv := newBackend(t)
	c := newTestCart(t)
	fillCart(t, c)

	svc := NewService(c, NewClient(srv.URL), logger.New("error"))

	conf, err := svc.Checkout(context.Background(), models.Customer{
		Name:  "Hanako Tanaka",
		Email: "hanako@example.com",
	}, "1 Sakura St, Berlin", "")
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}

	if !conf.Success {
		t.Error("expected success = true")
	}
	if conf.Order.OrderNumber == "" {
		t.Error("order number is empty")
	}
	if conf.Order.Total != 34 {
		t.Errorf("confirmed total = %v, want 34", conf.Order.Total)
	}
	if conf.Order.Status != models.StatusConfirmed {
		t.Errorf("status = %s, want %s", conf.Order.Status, models.StatusConfirmed)
	}

	if got := c.TotalItems(); got != 0 {
		t.Errorf("cart has %d items after confirmed checkout, want 0", got)
	}
}

func TestCheckoutPreservesCartOnRejection(t *testing.T) {
	srv := newBackend(t)
	c := newTestCart(t)
	fillCart(t, c)

	svc := NewService(c, NewClient(srv.URL), logger.New("error"))

	// Missing customer name → the API rejects with 400
	_, err := svc.Checkout(context.Background(), models.Customer{}, "1 Sakura St", "")
	if err == nil {
		t.Fatal("Checkout() expected error, got nil")
	}

	if got := c.TotalItems(); got != 3 {
		t.Errorf("cart has %d items after failed checkout, want 3 (preserved)", got)
	}
}

func TestCheckoutPreservesCartOnNetworkFailure(t *testing.T) {
	// A server that is already closed stands in for a network failure
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := newTestCart(t)
	fillCart(t, c)

	svc := NewService(c, NewClient(srv.URL), logger.New("error"))

	_, err := svc.Checkout(context.Background(), models.Customer{Name: "Hanako"}, "1 Sakura St", "")
	if err == nil {
		t.Fatal("Checkout() expected error, got nil")
	}

	if got := c.TotalItems(); got != 3 {
		t.Errorf("cart has %d items after network failure, want 3 (preserved)", got)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	srv := newBackend(t)
	c := newTestCart(t)

	svc := NewService(c, NewClient(srv.URL), logger.New("error"))

	if _, err := svc.Checkout(context.Background(), models.Customer{Name: "Hanako"}, "1 Sakura St", ""); err != ErrEmptyCart {
		t.Errorf("Checkout() error = %v, want ErrEmptyCart", err)
	}
}

func TestSubmittedOrderMatchesCartSnapshot(t *testing.T) {
	// Capture the raw request the client sends
	var captured models.CreateOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("backend failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(OrderConfirmation{Success: true})
	}))
	t.Cleanup(srv.Close)

	c := newTestCart(t)
	fillCart(t, c)

	svc := NewService(c, NewClient(srv.URL), logger.New("error"))
	if _, err := svc.Checkout(context.Background(), models.Customer{Name: "Hanako"}, "1 Sakura St", "ring twice"); err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}

	if len(captured.Items) != 2 {
		t.Fatalf("submitted %d items, want 2", len(captured.Items))
	}
	if captured.Items[0].ID != 1 || captured.Items[0].Quantity != 2 {
		t.Errorf("first line = id %d qty %d, want id 1 qty 2", captured.Items[0].ID, captured.Items[0].Quantity)
	}
	if captured.Total != 34 {
		t.Errorf("submitted total = %v, want 34", captured.Total)
	}
	if captured.Contact != "ring twice" {
		t.Errorf("contact = %q, want %q", captured.Contact, "ring twice")
	}
}
