package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/sakura-sushi/backend/internal/models"
)

// FileOrderRepository is the file-backed order store. It keeps the same
// in-memory semantics as InMemoryOrderRepository and rewrites the whole
// collection to a single JSON file after every mutation.
//
// Persistence failures are logged and swallowed: the in-memory state stays
// authoritative for the process lifetime, durability is simply lost. A
// missing or unparseable file at startup degrades to an empty store.
type FileOrderRepository struct {
	mem  *InMemoryOrderRepository
	path string
	log  *slog.Logger

	// writeMu serializes file rewrites; mem guards the collection itself.
	writeMu sync.Mutex
}

// NewFileOrderRepository creates an order repository persisted to path,
// loading any existing snapshot.
func NewFileOrderRepository(path string, log *slog.Logger) *FileOrderRepository {
	r := &FileOrderRepository{
		mem:  NewInMemoryOrderRepository(),
		path: path,
		log:  log,
	}
	r.load()
	return r
}

func (r *FileOrderRepository) load() {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		r.log.Warn("orders file unreadable, starting with empty store",
			"path", r.path,
			"error", err,
		)
		return
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		r.log.Warn("orders file corrupt, starting with empty store",
			"path", r.path,
			"error", err,
		)
		return
	}

	r.mem.seed(orders)
	r.log.Info("orders loaded from file", "path", r.path, "count", len(orders))
}

// persist rewrites the full collection. Errors are logged, not returned;
// callers observe the in-memory state as authoritative either way.
func (r *FileOrderRepository) persist() {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	orders := r.mem.snapshot()

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		r.log.Error("failed to serialize orders", "error", err)
		return
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.log.Error("failed to write orders file", "path", r.path, "error", err)
	}
}

// Create appends the order and rewrites the file.
func (r *FileOrderRepository) Create(ctx context.Context, order models.Order) error {
	if err := r.mem.Create(ctx, order); err != nil {
		return err
	}
	r.persist()
	return nil
}

// List returns orders newest first, up to limit when limit > 0.
func (r *FileOrderRepository) List(ctx context.Context, limit int) ([]models.Order, error) {
	return r.mem.List(ctx, limit)
}

// GetByID returns the order with the given id.
func (r *FileOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return r.mem.GetByID(ctx, id)
}

// UpdateStatus sets the matched order's status and rewrites the file.
func (r *FileOrderRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	order, err := r.mem.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	r.persist()
	return order, nil
}

// Delete removes the matched order and rewrites the file.
func (r *FileOrderRepository) Delete(ctx context.Context, id string) error {
	if err := r.mem.Delete(ctx, id); err != nil {
		return err
	}
	r.persist()
	return nil
}

// Count returns the number of stored orders.
func (r *FileOrderRepository) Count(ctx context.Context) (int, error) {
	return r.mem.Count(ctx)
}

// Close performs a final rewrite so the file reflects the last in-memory
// state at shutdown.
func (r *FileOrderRepository) Close() error {
	r.persist()
	return nil
}
