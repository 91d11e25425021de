package cart

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sakura-sushi/backend/internal/models"
	"github.com/sakura-sushi/backend/pkg/logger"
)

func testProduct(id int64, price float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     fmt.Sprintf("item-%d", id),
		Price:    price,
		Category: models.CategoryRolls,
	}
}

func newTestCart(t *testing.T) (*Cart, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.json")
	return New(NewFileStorage(path), logger.New("error")), path
}

func TestAddAccumulatesQuantity(t *testing.T) {
	c, _ := newTestCart(t)
	p := testProduct(1, 12)

	c.Add(p, 1)
	c.Add(p, 2)
	c.Add(p, 3)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 6 {
		t.Errorf("quantity = %d, want 6", items[0].Quantity)
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	c, _ := newTestCart(t)

	c.Add(testProduct(3, 7), 1)
	c.Add(testProduct(1, 12), 1)
	c.Add(testProduct(2, 11), 1)
	c.Add(testProduct(1, 12), 1) // existing line must not move

	items := c.Items()
	wantIDs := []int64{3, 1, 2}
	if len(items) != len(wantIDs) {
		t.Fatalf("expected %d lines, got %d", len(wantIDs), len(items))
	}
	for i, want := range wantIDs {
		if items[i].ID != want {
			t.Errorf("items[%d].ID = %d, want %d", i, items[i].ID, want)
		}
	}
}

func TestTotals(t *testing.T) {
	c, _ := newTestCart(t)
	c.Add(testProduct(1, 12), 2)
	c.Add(testProduct(5, 10), 1)

	if got := c.TotalPrice(); got != 34 {
		t.Errorf("TotalPrice() = %v, want 34", got)
	}
	if got := c.TotalItems(); got != 3 {
		t.Errorf("TotalItems() = %d, want 3", got)
	}
}

func TestTotalsAfterMutations(t *testing.T) {
	c, _ := newTestCart(t)
	c.Add(testProduct(1, 12), 2)
	c.Add(testProduct(5, 10), 1)
	c.UpdateQuantity(5, 4)
	c.Remove(1)
	c.Add(testProduct(2, 11), 1)

	want := 10*4.0 + 11
	if got := c.TotalPrice(); got != want {
		t.Errorf("TotalPrice() = %v, want %v", got, want)
	}
	if got := c.TotalItems(); got != 5 {
		t.Errorf("TotalItems() = %d, want 5", got)
	}
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	build := func(t *testing.T) *Cart {
		c, _ := newTestCart(t)
		c.Add(testProduct(1, 12), 2)
		c.Add(testProduct(5, 10), 1)
		return c
	}

	removed := build(t)
	removed.Remove(1)

	updated := build(t)
	updated.UpdateQuantity(1, 0)

	if !reflect.DeepEqual(removed.Items(), updated.Items()) {
		t.Errorf("UpdateQuantity(1, 0) = %+v, Remove(1) = %+v; want identical carts",
			updated.Items(), removed.Items())
	}
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	c, _ := newTestCart(t)
	c.Add(testProduct(1, 12), 2)
	c.Add(testProduct(5, 10), 1)

	c.UpdateQuantity(1, -3)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].ID != 5 {
		t.Errorf("remaining line ID = %d, want 5", items[0].ID)
	}
}

func TestUpdateQuantityIsAbsolute(t *testing.T) {
	c, _ := newTestCart(t)
	c.Add(testProduct(1, 12), 5)

	c.UpdateQuantity(1, 2)

	if got := c.Items()[0].Quantity; got != 2 {
		t.Errorf("quantity = %d, want 2 (set, not added)", got)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c, _ := newTestCart(t)
	c.Add(testProduct(1, 12), 1)

	c.Remove(42)

	if len(c.Items()) != 1 {
		t.Errorf("expected cart unchanged, got %d lines", len(c.Items()))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	log := logger.New("error")

	c := New(NewFileStorage(path), log)
	c.Add(testProduct(3, 7), 2)
	c.Add(testProduct(1, 12), 1)
	want := c.Items()

	reloaded := New(NewFileStorage(path), log)
	if !reflect.DeepEqual(reloaded.Items(), want) {
		t.Errorf("reloaded cart = %+v, want %+v", reloaded.Items(), want)
	}
}

func TestClearThenReloadIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	log := logger.New("error")

	c := New(NewFileStorage(path), log)
	c.Add(testProduct(1, 12), 2)
	c.Clear()

	if len(c.Items()) != 0 {
		t.Fatalf("expected empty cart after Clear, got %d lines", len(c.Items()))
	}

	reloaded := New(NewFileStorage(path), log)
	if len(reloaded.Items()) != 0 {
		t.Errorf("expected empty cart after reload, got %d lines", len(reloaded.Items()))
	}
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt snapshot: %v", err)
	}

	c := New(NewFileStorage(path), logger.New("error"))
	if len(c.Items()) != 0 {
		t.Errorf("expected empty cart from corrupt snapshot, got %d lines", len(c.Items()))
	}

	// The cart must stay usable despite the bad snapshot
	c.Add(testProduct(1, 12), 1)
	if c.TotalItems() != 1 {
		t.Errorf("TotalItems() = %d, want 1", c.TotalItems())
	}
}
