package mysql

import (
	"errors"
	"log"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/repository"

	"gorm.io/gorm"
)

type menuRepo struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) Save(item *domain.MenuItem) error {
	if err := r.db.Create(item).Error; err != nil {
		log.Printf("menu save error: %v", err)
		return err
	}
	return nil
}

func (r *menuRepo) Update(item *domain.MenuItem) error {
	if err := r.db.Save(item).Error; err != nil {
		log.Printf("menu update error: %v", err)
		return err
	}
	return nil
}

func (r *menuRepo) FindByID(id uint64) (*domain.MenuItem, error) {
	var m domain.MenuItem
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("menu FindByID error: %v", err)
		return nil, err
	}
	return &m, nil
}

func (r *menuRepo) FindByIDs(ids []uint64) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.MenuItem
	if err := r.db.Where("id IN ?", ids).Find(&out).Error; err != nil {
		log.Printf("menu FindByIDs error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) Find(filter repository.MenuFilter) ([]domain.MenuItem, error) {
	q := r.db.Model(&domain.MenuItem{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Availability != nil {
		q = q.Where("is_available = ?", *filter.Availability)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	var out []domain.MenuItem
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		log.Printf("menu Find error: %v", err)
		return nil, err
	}
	return out, nil
}

// Search matches the query as a case-insensitive substring of the name,
// the description, or any ingredient. Ingredients live in a JSON column,
// so a LIKE over its text covers every element. The column must be cast
// to CHAR first: MySQL's LOWER() is a no-op on JSON values, which would
// leave the comparison on the binary collation and so case-sensitive.
func (r *menuRepo) Search(query string) ([]domain.MenuItem, error) {
	pattern := "%" + query + "%"
	var out []domain.MenuItem
	err := r.db.
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(CAST(ingredients AS CHAR)) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("menu Search error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) Delete(id uint64) error {
	if err := r.db.Delete(&domain.MenuItem{}, id).Error; err != nil {
		log.Printf("menu Delete error: %v", err)
		return err
	}
	return nil
}
