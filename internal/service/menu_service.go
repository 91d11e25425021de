package service

import (
	"context"

	"github.com/sakura-sushi/backend/internal/models"
	"github.com/sakura-sushi/backend/internal/repository"
)

// MenuService handles business logic for the catalog.
type MenuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service.
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// ListItems returns the full menu.
func (s *MenuService) ListItems(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetItem returns a menu item by ID.
func (s *MenuService) GetItem(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}
