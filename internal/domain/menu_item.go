package domain

import "time"

type MenuCategory string

const (
	CategoryAppetizer  MenuCategory = "Appetizer"
	CategoryMainCourse MenuCategory = "Main Course"
	CategoryDessert    MenuCategory = "Dessert"
	CategoryBeverage   MenuCategory = "Beverage"
)

func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage:
		return true
	}
	return false
}

type MenuItem struct {
	ID              uint64       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name            string       `json:"name" gorm:"not null;index"`
	Description     string       `json:"description"`
	Category        MenuCategory `json:"category" gorm:"type:enum('Appetizer','Main Course','Dessert','Beverage');not null;index"`
	Price           float64      `json:"price" gorm:"not null"`
	Ingredients     []string     `json:"ingredients" gorm:"type:json;serializer:json"`
	IsAvailable     bool         `json:"isAvailable" gorm:"not null;default:true"`
	PreparationTime int          `json:"preparationTime"`
	ImageURL        string       `json:"imageUrl"`
	CreatedAt       time.Time    `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time    `json:"updatedAt" gorm:"autoUpdateTime"`
}
