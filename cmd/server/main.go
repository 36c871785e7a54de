package main

import (
	"context"
	"log"
	"os"
	"time"

	"restaurant-admin/internal/controllers/http"
	mmysql "restaurant-admin/internal/infra/mysql"
	"restaurant-admin/internal/infra/rabbitmq"
	mysqlrepo "restaurant-admin/internal/repository/mysql"
	"restaurant-admin/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	menuRepo := mysqlrepo.NewMenuRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "restaurant.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	menuService := services.NewMenuService(menuRepo)
	orderService := services.NewOrderService(orderRepo, menuRepo, publisher)
	analyticsService := services.NewAnalyticsService(orderRepo, menuRepo)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	menuService.SetRedisClient(redisClient)
	analyticsService.SetRedisClient(redisClient)

	ctx := context.Background()
	go func() {
		time.Sleep(5 * time.Second)
		if err := menuService.WarmupMenuCache(ctx); err != nil {
			log.Printf("Failed to warm up menu cache: %v", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}
	qr := services.MenuQRGenerator{BaseURL: baseURL}

	handler := http.NewHandler(menuService, orderService, analyticsService, qr)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	log.Printf("Starting restaurant admin API on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
