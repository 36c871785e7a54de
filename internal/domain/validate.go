package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError carries the first violated rule's message. Rules run in
// declaration order and validation never touches storage, so a reject has
// no side effects.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func ValidateMenuItem(m *MenuItem) error {
	if strings.TrimSpace(m.Name) == "" {
		return invalid("name is required")
	}
	if !m.Category.Valid() {
		return invalid("category must be one of Appetizer, Main Course, Dessert, Beverage")
	}
	if m.Price < 0 {
		return invalid("price must be greater than or equal to 0")
	}
	if m.PreparationTime < 0 {
		return invalid("preparationTime must be greater than or equal to 0")
	}
	if m.ImageURL != "" {
		u, err := url.Parse(m.ImageURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return invalid("imageUrl must be a valid URI")
		}
	}
	return nil
}

func ValidateOrder(o *Order) error {
	if len(o.Items) == 0 {
		return invalid("items must contain at least 1 item")
	}
	for i, item := range o.Items {
		if item.MenuItemID == 0 {
			return invalid("items[%d].menuItem is required", i)
		}
		if item.Quantity < 1 {
			return invalid("items[%d].quantity must be greater than or equal to 1", i)
		}
		if item.Price < 0 {
			return invalid("items[%d].price must be greater than or equal to 0", i)
		}
	}
	if o.TotalAmount < 0 {
		return invalid("totalAmount must be greater than or equal to 0")
	}
	if strings.TrimSpace(o.CustomerName) == "" {
		return invalid("customerName is required")
	}
	if o.TableNumber != nil && *o.TableNumber < 1 {
		return invalid("tableNumber must be greater than or equal to 1")
	}
	if o.Status != "" && !o.Status.Valid() {
		return invalid("status must be one of Pending, Preparing, Ready, Delivered, Cancelled")
	}
	return nil
}
