package services

import (
	"time"

	"restaurant-admin/internal/domain"
)

func CreateMockMenuItem(id uint64, name string, category domain.MenuCategory, price float64) *domain.MenuItem {
	return &domain.MenuItem{
		ID:          id,
		Name:        name,
		Category:    category,
		Price:       price,
		IsAvailable: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func CreateMockOrder(id uint64, customerName string, status domain.OrderStatus, items ...domain.OrderItem) *domain.Order {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return &domain.Order{
		ID:           id,
		OrderNumber:  "ORD-1756600000000-1",
		Items:        items,
		TotalAmount:  total,
		Status:       status,
		CustomerName: customerName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func CreateMockOrderItem(menuItemID uint64, quantity int, price float64) domain.OrderItem {
	return domain.OrderItem{
		MenuItemID: menuItemID,
		Quantity:   quantity,
		Price:      price,
	}
}
