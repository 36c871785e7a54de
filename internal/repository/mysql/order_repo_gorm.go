package mysql

import (
	"errors"
	"log"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(order *domain.Order) error {
	result := r.db.Create(order)
	if result.Error != nil {
		log.Printf("order save error: %v", result.Error)
		return result.Error
	}
	if order.ID == 0 {
		log.Printf("order saved but ID is still 0, rows affected: %d", result.RowsAffected)
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Preload("Items.MenuItem").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) Find(filter repository.OrderFilter, offset, limit int) ([]domain.Order, error) {
	q := r.db.Preload("Items.MenuItem")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var out []domain.Order
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&out).Error
	if err != nil {
		log.Printf("order Find error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) Count(filter repository.OrderFilter) (int64, error) {
	q := r.db.Model(&domain.Order{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		log.Printf("order Count error: %v", err)
		return 0, err
	}
	return n, nil
}

func (r *orderRepo) UpdateStatus(id uint64, status domain.OrderStatus) error {
	err := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		log.Printf("order UpdateStatus error: %v", err)
		return err
	}
	return nil
}

func (r *orderRepo) FindAllItems() ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	if err := r.db.Find(&items).Error; err != nil {
		log.Printf("order FindAllItems error: %v", err)
		return nil, err
	}
	return items, nil
}
