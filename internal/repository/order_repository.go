package repository

import (
	"restaurant-admin/internal/domain"
)

// OrderFilter narrows an order listing; an empty Status matches all.
type OrderFilter struct {
	Status domain.OrderStatus
}

type OrderRepository interface {
	Save(order *domain.Order) error
	FindByID(id uint64) (*domain.Order, error)
	Find(filter OrderFilter, offset, limit int) ([]domain.Order, error)
	Count(filter OrderFilter) (int64, error)
	UpdateStatus(id uint64, status domain.OrderStatus) error
	// FindAllItems returns every line item across all orders, regardless
	// of order status. Feeds the top-sellers aggregation.
	FindAllItems() ([]domain.OrderItem, error)
}
