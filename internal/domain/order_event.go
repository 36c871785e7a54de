package domain

import "time"

type OrderCreatedEvent struct {
	OrderID      uint64    `json:"orderId"`
	OrderNumber  string    `json:"orderNumber"`
	TotalAmount  float64   `json:"totalAmount"`
	CustomerName string    `json:"customerName"`
	ItemCount    int       `json:"itemCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderStatusChangedEvent struct {
	OrderID     uint64      `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
	OldStatus   OrderStatus `json:"oldStatus"`
	NewStatus   OrderStatus `json:"newStatus"`
	ChangedAt   time.Time   `json:"changedAt"`
}
