package main

import (
	"fmt"
	"log"
	"time"

	"restaurant-admin/internal/domain"
	mmysql "restaurant-admin/internal/infra/mysql"
	mysqlrepo "restaurant-admin/internal/repository/mysql"
)

// Loads the demo catalog and a handful of orders so the dashboard has
// something to show on a fresh database. Wipes existing data first.
func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	for _, table := range []string{"order_items", "orders", "menu_items"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("wipe %s: %v", table, err)
		}
	}

	menuRepo := mysqlrepo.NewMenuRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)

	items := []*domain.MenuItem{
		{
			Name:            "Caesar Salad",
			Description:     "Fresh romaine lettuce with classic Caesar dressing",
			Category:        domain.CategoryAppetizer,
			Price:           8.99,
			Ingredients:     []string{"romaine lettuce", "parmesan", "croutons", "caesar dressing"},
			IsAvailable:     true,
			PreparationTime: 10,
			ImageURL:        "https://images.unsplash.com/photo-1546793665-c74683f339c1",
		},
		{
			Name:            "Chicken Wings",
			Description:     "Crispy wings with your choice of sauce",
			Category:        domain.CategoryAppetizer,
			Price:           12.99,
			Ingredients:     []string{"chicken wings", "buffalo sauce", "ranch dressing"},
			IsAvailable:     true,
			PreparationTime: 20,
			ImageURL:        "https://images.unsplash.com/photo-1608039755401-742074f0548d",
		},
		{
			Name:            "Mozzarella Sticks",
			Description:     "Golden fried mozzarella with marinara sauce",
			Category:        domain.CategoryAppetizer,
			Price:           9.99,
			Ingredients:     []string{"mozzarella cheese", "breadcrumbs", "marinara sauce"},
			IsAvailable:     true,
			PreparationTime: 15,
			ImageURL:        "https://images.unsplash.com/photo-1531749668029-2db88e4276c7",
		},
		{
			Name:            "Grilled Salmon",
			Description:     "Fresh Atlantic salmon with lemon butter sauce",
			Category:        domain.CategoryMainCourse,
			Price:           24.99,
			Ingredients:     []string{"salmon", "lemon", "butter", "herbs"},
			IsAvailable:     true,
			PreparationTime: 25,
			ImageURL:        "https://images.unsplash.com/photo-1467003909585-2f8a72700288",
		},
		{
			Name:            "Ribeye Steak",
			Description:     "12oz premium ribeye cooked to perfection",
			Category:        domain.CategoryMainCourse,
			Price:           32.99,
			Ingredients:     []string{"ribeye steak", "garlic", "rosemary", "butter"},
			IsAvailable:     true,
			PreparationTime: 30,
			ImageURL:        "https://images.unsplash.com/photo-1558030006-450675393462",
		},
		{
			Name:            "Chicken Parmesan",
			Description:     "Breaded chicken breast with marinara and mozzarella",
			Category:        domain.CategoryMainCourse,
			Price:           18.99,
			Ingredients:     []string{"chicken breast", "marinara sauce", "mozzarella", "parmesan"},
			IsAvailable:     true,
			PreparationTime: 25,
			ImageURL:        "https://images.unsplash.com/photo-1632778149955-e80f8ceca2e8",
		},
		{
			Name:            "Margherita Pizza",
			Description:     "Classic pizza with fresh mozzarella and basil",
			Category:        domain.CategoryMainCourse,
			Price:           14.99,
			Ingredients:     []string{"pizza dough", "tomato sauce", "mozzarella", "basil"},
			IsAvailable:     true,
			PreparationTime: 18,
			ImageURL:        "https://images.unsplash.com/photo-1574071318508-1cdbab80d002",
		},
		{
			Name:            "Chocolate Lava Cake",
			Description:     "Warm chocolate cake with molten center",
			Category:        domain.CategoryDessert,
			Price:           7.99,
			Ingredients:     []string{"chocolate", "flour", "eggs", "butter"},
			IsAvailable:     true,
			PreparationTime: 15,
			ImageURL:        "https://images.unsplash.com/photo-1606313564200-e75d5e30476c",
		},
		{
			Name:            "Fresh Lemonade",
			Description:     "House-made lemonade with fresh mint",
			Category:        domain.CategoryBeverage,
			Price:           4.99,
			Ingredients:     []string{"lemon", "sugar", "mint", "water"},
			IsAvailable:     true,
			PreparationTime: 5,
			ImageURL:        "https://images.unsplash.com/photo-1621263764928-df1444c5e859",
		},
	}

	for _, item := range items {
		if err := menuRepo.Save(item); err != nil {
			log.Fatalf("seed menu item %q: %v", item.Name, err)
		}
	}
	log.Printf("seeded %d menu items", len(items))

	table := 4
	orders := []*domain.Order{
		{
			CustomerName: "Alice Morgan",
			Status:       domain.StatusDelivered,
			TableNumber:  &table,
			Items: []domain.OrderItem{
				{MenuItemID: items[3].ID, Quantity: 1, Price: items[3].Price},
				{MenuItemID: items[8].ID, Quantity: 2, Price: items[8].Price},
			},
		},
		{
			CustomerName: "Ben Carter",
			Status:       domain.StatusPreparing,
			Items: []domain.OrderItem{
				{MenuItemID: items[6].ID, Quantity: 2, Price: items[6].Price},
				{MenuItemID: items[1].ID, Quantity: 1, Price: items[1].Price},
			},
		},
		{
			CustomerName: "Chloe Diaz",
			Status:       domain.StatusPending,
			Items: []domain.OrderItem{
				{MenuItemID: items[7].ID, Quantity: 3, Price: items[7].Price},
			},
		},
	}

	for i, order := range orders {
		for _, item := range order.Items {
			order.TotalAmount += item.Price * float64(item.Quantity)
		}
		order.OrderNumber = fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), i+1)
		if err := orderRepo.Save(order); err != nil {
			log.Fatalf("seed order for %q: %v", order.CustomerName, err)
		}
	}
	log.Printf("seeded %d orders", len(orders))
}
