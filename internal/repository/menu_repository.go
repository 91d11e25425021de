package repository

import (
	"context"
	"errors"

	"github.com/sakura-sushi/backend/internal/models"
)

var (
	ErrProductNotFound = errors.New("menu item not found")
)

// MenuRepository defines read access to the product catalog.
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// InMemoryMenuRepository serves the static catalog. The catalog is seeded at
// construction and never mutated afterwards, so reads need no locking.
type InMemoryMenuRepository struct {
	items []models.Product
	byID  map[int64]int
}

// NewInMemoryMenuRepository creates the catalog with the standard menu.
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	items := []models.Product{
		{
			ID:          1,
			Name:        "Philadelphia",
			Description: "Classic roll with salmon, cream cheese and cucumber",
			Price:       12,
			Image:       "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400",
			Ingredients: []string{"salmon", "cream cheese", "cucumber", "nori", "rice"},
			Weight:      250,
			Calories:    320,
			Category:    models.CategoryRolls,
			Popular:     true,
		},
		{
			ID:          2,
			Name:        "California",
			Description: "Roll with crab, avocado and flying fish roe",
			Price:       11,
			Image:       "https://images.unsplash.com/photo-1553621042-f6e147245754?w=400",
			Ingredients: []string{"crab", "avocado", "tobiko", "mayonnaise", "nori", "rice"},
			Weight:      230,
			Calories:    280,
			Category:    models.CategoryRolls,
			Popular:     true,
		},
		{
			ID:          3,
			Name:        "Unagi",
			Description: "Nigiri with eel, glazed with unagi sauce",
			Price:       7,
			Image:       "https://images.unsplash.com/photo-1563245372-f21724e3856d?w=400",
			Ingredients: []string{"eel", "unagi sauce", "rice"},
			Weight:      80,
			Calories:    180,
			Category:    models.CategoryNigiri,
		},
		{
			ID:          4,
			Name:        "Sake Maki",
			Description: "Simple roll with salmon",
			Price:       8,
			Image:       "https://images.unsplash.com/photo-1617196034183-421b4917c92d?w=400",
			Ingredients: []string{"salmon", "nori", "rice"},
			Weight:      180,
			Calories:    210,
			Category:    models.CategoryMaki,
		},
		{
			ID:          5,
			Name:        "Spicy Tuna",
			Description: "Spicy roll with tuna and spicy sauce",
			Price:       10,
			Image:       "https://images.unsplash.com/photo-1617196035154-1e7b6cdf4e1c?w=400",
			Ingredients: []string{"tuna", "spicy sauce", "cucumber", "nori", "rice"},
			Weight:      240,
			Calories:    290,
			Category:    models.CategoryRolls,
			Spicy:       true,
			Popular:     true,
		},
		{
			ID:          6,
			Name:        "Avocado Maki",
			Description: "Vegetarian roll with avocado",
			Price:       7,
			Image:       "https://images.unsplash.com/photo-1556040220-4096d5223786?w=400",
			Ingredients: []string{"avocado", "nori", "rice"},
			Weight:      160,
			Calories:    190,
			Category:    models.CategoryMaki,
			Vegetarian:  true,
		},
		{
			ID:          7,
			Name:        "Salmon Sashimi",
			Description: "Slices of fresh salmon",
			Price:       9,
			Image:       "https://images.unsplash.com/photo-1563245372-f21724e3856d?w=400",
			Ingredients: []string{"salmon"},
			Weight:      120,
			Calories:    150,
			Category:    models.CategorySashimi,
			Popular:     true,
		},
		{
			ID:          8,
			Name:        "Sakura Set",
			Description: "Set of 24 pieces: Philadelphia, California, Sake Maki",
			Price:       32,
			Image:       "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400",
			Ingredients: []string{"salmon", "cream cheese", "crab", "avocado", "cucumber", "nori", "rice"},
			Weight:      600,
			Calories:    850,
			Category:    models.CategorySets,
			Popular:     true,
		},
	}

	byID := make(map[int64]int, len(items))
	for i, item := range items {
		byID[item.ID] = i
	}

	return &InMemoryMenuRepository{
		items: items,
		byID:  byID,
	}
}

// GetAll returns the full menu in catalog order.
func (r *InMemoryMenuRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	items := make([]models.Product, len(r.items))
	copy(items, r.items)
	return items, nil
}

// GetByID returns a menu item by its ID.
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	i, exists := r.byID[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	item := r.items[i]
	return &item, nil
}
