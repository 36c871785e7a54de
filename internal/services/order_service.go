package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"restaurant-admin/internal/domain"
	rabbit "restaurant-admin/internal/infra/rabbitmq"
	"restaurant-admin/internal/repository"

	"golang.org/x/sync/errgroup"
)

var ErrOrderNotFound = errors.New("order not found")

const DefaultPageSize = 10

type OrderPage struct {
	Orders []domain.Order
	Total  int64
	Page   int
	Pages  int
}

type OrderService struct {
	repo      repository.OrderRepository
	menuRepo  repository.MenuRepository
	publisher rabbit.PublisherInterface
}

func NewOrderService(r repository.OrderRepository, m repository.MenuRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		menuRepo:  m,
		publisher: pub,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	order.CustomerName = strings.TrimSpace(order.CustomerName)
	if err := domain.ValidateOrder(order); err != nil {
		return nil, err
	}

	if err := s.checkMenuItemsExist(order.Items); err != nil {
		return nil, err
	}

	if order.Status == "" {
		order.Status = domain.StatusPending
	}

	count, err := s.repo.Count(repository.OrderFilter{})
	if err != nil {
		return nil, err
	}
	// Timestamp plus running count, same scheme the dashboard always used.
	// The unique index on order_number turns the unlikely collision into a
	// storage error rather than a silent overwrite.
	order.OrderNumber = fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), count+1)
	order.CreatedAt = time.Now()

	if err := s.repo.Save(order); err != nil {
		return nil, err
	}

	go s.publishOrderCreated(context.Background(), order)

	populated, err := s.repo.FindByID(order.ID)
	if err != nil {
		return nil, err
	}
	if populated == nil {
		return order, nil
	}
	return populated, nil
}

// checkMenuItemsExist rejects orders referencing unknown menu items before
// anything is written.
func (s *OrderService) checkMenuItemsExist(items []domain.OrderItem) error {
	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.MenuItemID)
	}

	found, err := s.menuRepo.FindByIDs(ids)
	if err != nil {
		return err
	}

	known := make(map[uint64]bool, len(found))
	for _, m := range found {
		known[m.ID] = true
	}
	for i, item := range items {
		if !known[item.MenuItemID] {
			return &domain.ValidationError{
				Message: fmt.Sprintf("items[%d].menuItem %d does not exist", i, item.MenuItemID),
			}
		}
	}
	return nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// UpdateOrderStatus persists only the status column. Any status may move to
// any other status.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uint64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{
			Message: "status must be one of Pending, Preparing, Ready, Delivered, Cancelled",
		}
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrOrderNotFound
	}

	oldStatus := existing.Status
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}

	go s.publishStatusChanged(context.Background(), existing, oldStatus, status)

	existing.Status = status
	// The row's updated_at changed under the status write; the snapshot
	// from FindByID predates it.
	existing.UpdatedAt = time.Now()
	return existing, nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter repository.OrderFilter, page, limit int) (*OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	offset := (page - 1) * limit

	var (
		orders []domain.Order
		total  int64
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.repo.Find(filter, offset, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return &OrderPage{
		Orders: orders,
		Total:  total,
		Page:   page,
		Pages:  pages,
	}, nil
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		TotalAmount:  order.TotalAmount,
		CustomerName: order.CustomerName,
		ItemCount:    len(order.Items),
		CreatedAt:    order.CreatedAt,
	}

	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("Failed to publish order.created event: %v", err)
	}
}

func (s *OrderService) publishStatusChanged(ctx context.Context, order *domain.Order, from, to domain.OrderStatus) {
	evt := domain.OrderStatusChangedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		OldStatus:   from,
		NewStatus:   to,
		ChangedAt:   time.Now(),
	}

	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		log.Printf("Failed to publish order.status_changed event: %v", err)
	}
}
