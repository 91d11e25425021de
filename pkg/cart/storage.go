package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sakura-sushi/backend/internal/models"
)

// Storage persists cart snapshots between sessions. The whole cart is
// serialized on every save; there is no partial update.
type Storage interface {
	Load() ([]models.CartItem, error)
	Save(items []models.CartItem) error
	Erase() error
}

// FileStorage keeps the snapshot as a single JSON array on disk under a
// fixed path, rewritten wholesale on every save.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed snapshot store at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the last saved snapshot. A missing file is an empty cart, not
// an error.
func (s *FileStorage) Load() ([]models.CartItem, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart snapshot: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse cart snapshot: %w", err)
	}
	return items, nil
}

// Save rewrites the full snapshot.
func (s *FileStorage) Save(items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serialize cart snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write cart snapshot: %w", err)
	}
	return nil
}

// Erase removes the snapshot. Erasing a snapshot that never existed is fine.
func (s *FileStorage) Erase() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
