package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber  string      `json:"orderNumber" gorm:"uniqueIndex;not null"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"totalAmount" gorm:"not null"`
	Status       OrderStatus `json:"status" gorm:"type:enum('Pending','Preparing','Ready','Delivered','Cancelled');default:'Pending';index"`
	CustomerName string      `json:"customerName" gorm:"not null"`
	TableNumber  *int        `json:"tableNumber,omitempty"`
	CreatedAt    time.Time   `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

// OrderItem records the menu item's price at the moment the order was
// placed. Later catalog edits never touch historical orders.
type OrderItem struct {
	ID         uint64    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID    uint64    `json:"-" gorm:"not null;index"`
	MenuItemID uint64    `json:"menuItemId" gorm:"not null;index"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	Price      float64   `json:"price" gorm:"not null"`
	MenuItem   *MenuItem `json:"menuItem,omitempty" gorm:"foreignKey:MenuItemID"`
}
