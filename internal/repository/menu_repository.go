package repository

import (
	"restaurant-admin/internal/domain"
)

// MenuFilter narrows a catalog listing. Zero-value fields impose no
// constraint; price bounds are inclusive.
type MenuFilter struct {
	Category     domain.MenuCategory
	Availability *bool
	MinPrice     *float64
	MaxPrice     *float64
}

type MenuRepository interface {
	Save(item *domain.MenuItem) error
	Update(item *domain.MenuItem) error
	FindByID(id uint64) (*domain.MenuItem, error)
	FindByIDs(ids []uint64) ([]domain.MenuItem, error)
	Find(filter MenuFilter) ([]domain.MenuItem, error)
	Search(query string) ([]domain.MenuItem, error)
	Delete(id uint64) error
}
