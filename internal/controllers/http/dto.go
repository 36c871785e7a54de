package http

import (
	"restaurant-admin/internal/domain"
)

// Price is a pointer so an omitted field is distinguishable from a free
// dish; the field is required.
type MenuItemRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Price           *float64 `json:"price"`
	Ingredients     []string `json:"ingredients"`
	IsAvailable     *bool    `json:"isAvailable"`
	PreparationTime int      `json:"preparationTime"`
	ImageURL        string   `json:"imageUrl"`
}

func (r *MenuItemRequest) ToDomain() (*domain.MenuItem, error) {
	if r.Price == nil {
		return nil, &domain.ValidationError{Message: "price is required"}
	}
	isAvailable := true
	if r.IsAvailable != nil {
		isAvailable = *r.IsAvailable
	}
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return &domain.MenuItem{
		Name:            r.Name,
		Description:     r.Description,
		Category:        domain.MenuCategory(r.Category),
		Price:           *r.Price,
		Ingredients:     ingredients,
		IsAvailable:     isAvailable,
		PreparationTime: r.PreparationTime,
		ImageURL:        r.ImageURL,
	}, nil
}

// OrderItemRequest's menuItem field carries the referenced item's id; price
// is the caller-supplied snapshot.
type OrderItemRequest struct {
	MenuItem uint64  `json:"menuItem"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type CreateOrderRequest struct {
	Items        []OrderItemRequest `json:"items"`
	TotalAmount  *float64           `json:"totalAmount"`
	CustomerName string             `json:"customerName"`
	TableNumber  *int               `json:"tableNumber"`
	Status       string             `json:"status"`
}

func (r *CreateOrderRequest) ToDomain() (*domain.Order, error) {
	if r.TotalAmount == nil {
		return nil, &domain.ValidationError{Message: "totalAmount is required"}
	}
	items := make([]domain.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.OrderItem{
			MenuItemID: item.MenuItem,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}
	return &domain.Order{
		Items:        items,
		TotalAmount:  *r.TotalAmount,
		Status:       domain.OrderStatus(r.Status),
		CustomerName: r.CustomerName,
		TableNumber:  r.TableNumber,
	}, nil
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
