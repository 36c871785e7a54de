package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/mocks"
	"restaurant-admin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name          string
		order         *domain.Order
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockMenuRepository, *mocks.MockPublisher)
		expectedError string
	}{
		{
			name: "successful order creation",
			order: &domain.Order{
				Items: []domain.OrderItem{
					CreateMockOrderItem(1, 2, 12.99),
				},
				TotalAmount:  25.98,
				CustomerName: "Alice Morgan",
			},
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockMenu *mocks.MockMenuRepository, mockPub *mocks.MockPublisher) {
				mockMenu.On("FindByIDs", []uint64{1}).Return([]domain.MenuItem{
					*CreateMockMenuItem(1, "Chicken Wings", domain.CategoryAppetizer, 12.99),
				}, nil)
				mockRepo.On("Count", repository.OrderFilter{}).Return(int64(0), nil)
				mockRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					order := args.Get(0).(*domain.Order)
					order.ID = 1
				})
				mockRepo.On("FindByID", uint64(1)).Return(&domain.Order{
					ID:           1,
					OrderNumber:  "ORD-1756600000000-1",
					Status:       domain.StatusPending,
					CustomerName: "Alice Morgan",
					TotalAmount:  25.98,
					Items: []domain.OrderItem{
						{
							MenuItemID: 1,
							Quantity:   2,
							Price:      12.99,
							MenuItem:   CreateMockMenuItem(1, "Chicken Wings", domain.CategoryAppetizer, 12.99),
						},
					},
				}, nil)
				mockPub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()
			},
		},
		{
			name: "unknown menu item rejected before save",
			order: &domain.Order{
				Items: []domain.OrderItem{
					CreateMockOrderItem(99, 1, 5),
				},
				TotalAmount:  5,
				CustomerName: "Ben Carter",
			},
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockMenu *mocks.MockMenuRepository, mockPub *mocks.MockPublisher) {
				mockMenu.On("FindByIDs", []uint64{99}).Return(nil, nil)
			},
			expectedError: "items[0].menuItem 99 does not exist",
		},
		{
			name: "empty items rejected before any lookup",
			order: &domain.Order{
				TotalAmount:  0,
				CustomerName: "Chloe Diaz",
			},
			setupMocks:    func(mockRepo *mocks.MockOrderRepository, mockMenu *mocks.MockMenuRepository, mockPub *mocks.MockPublisher) {},
			expectedError: "items must contain at least 1 item",
		},
		{
			name: "missing customer name",
			order: &domain.Order{
				Items: []domain.OrderItem{
					CreateMockOrderItem(1, 1, 12.99),
				},
				TotalAmount:  12.99,
				CustomerName: "   ",
			},
			setupMocks:    func(mockRepo *mocks.MockOrderRepository, mockMenu *mocks.MockMenuRepository, mockPub *mocks.MockPublisher) {},
			expectedError: "customerName is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			mockMenu := new(mocks.MockMenuRepository)
			mockPublisher := new(mocks.MockPublisher)

			tt.setupMocks(mockRepo, mockMenu, mockPublisher)

			service := NewOrderService(mockRepo, mockMenu, mockPublisher)
			result, err := service.CreateOrder(context.Background(), tt.order)

			if tt.expectedError != "" {
				var ve *domain.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.expectedError, ve.Message)
				assert.Nil(t, result)
				mockRepo.AssertNotCalled(t, "Save", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, domain.StatusPending, result.Status)
				assert.True(t, strings.HasPrefix(result.OrderNumber, "ORD-"))
				assert.NotNil(t, result.Items[0].MenuItem)
			}

			time.Sleep(100 * time.Millisecond)
			mockRepo.AssertExpectations(t)
			mockMenu.AssertExpectations(t)
			mockPublisher.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrder_BackToBackNumbersNeverCollide(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockMenu := new(mocks.MockMenuRepository)
	mockPublisher := new(mocks.MockPublisher)

	mockMenu.On("FindByIDs", []uint64{1}).Return([]domain.MenuItem{
		*CreateMockMenuItem(1, "Margherita Pizza", domain.CategoryMainCourse, 14.99),
	}, nil)
	mockRepo.On("Count", repository.OrderFilter{}).Return(int64(0), nil).Once()
	mockRepo.On("Count", repository.OrderFilter{}).Return(int64(1), nil).Once()

	var assignedID uint64
	mockRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		assignedID++
		args.Get(0).(*domain.Order).ID = assignedID
	})
	mockRepo.On("FindByID", mock.AnythingOfType("uint64")).Return(nil, nil)
	mockPublisher.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	service := NewOrderService(mockRepo, mockMenu, mockPublisher)

	newOrder := func() *domain.Order {
		return &domain.Order{
			Items:        []domain.OrderItem{CreateMockOrderItem(1, 1, 14.99)},
			TotalAmount:  14.99,
			CustomerName: "Alice Morgan",
		}
	}

	first, err := service.CreateOrder(context.Background(), newOrder())
	assert.NoError(t, err)
	second, err := service.CreateOrder(context.Background(), newOrder())
	assert.NoError(t, err)

	assert.NotEmpty(t, first.OrderNumber)
	assert.NotEmpty(t, second.OrderNumber)
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)

	time.Sleep(100 * time.Millisecond)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_GetOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		mockRepo.On("FindByID", uint64(1)).Return(CreateMockOrder(1, "Alice Morgan", domain.StatusPending, CreateMockOrderItem(1, 2, 12.99)), nil)

		service := NewOrderService(mockRepo, new(mocks.MockMenuRepository), new(mocks.MockPublisher))
		order, err := service.GetOrder(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, uint64(1), order.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mocks.MockOrderRepository)
		mockRepo.On("FindByID", uint64(999)).Return(nil, nil)

		service := NewOrderService(mockRepo, new(mocks.MockMenuRepository), new(mocks.MockPublisher))
		order, err := service.GetOrder(context.Background(), 999)

		assert.Equal(t, ErrOrderNotFound, err)
		assert.Nil(t, order)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name          string
		orderId       uint64
		status        domain.OrderStatus
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockPublisher)
		expectedError string
		notFound      bool
	}{
		{
			name:    "successful status update",
			orderId: 1,
			status:  domain.StatusReady,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockPub *mocks.MockPublisher) {
				mockRepo.On("FindByID", uint64(1)).Return(CreateMockOrder(1, "Alice Morgan", domain.StatusPreparing, CreateMockOrderItem(1, 1, 12.99)), nil)
				mockRepo.On("UpdateStatus", uint64(1), domain.StatusReady).Return(nil)
				mockPub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()
			},
		},
		{
			name:    "backward transition allowed",
			orderId: 2,
			status:  domain.StatusPending,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockPub *mocks.MockPublisher) {
				mockRepo.On("FindByID", uint64(2)).Return(CreateMockOrder(2, "Ben Carter", domain.StatusDelivered, CreateMockOrderItem(1, 1, 12.99)), nil)
				mockRepo.On("UpdateStatus", uint64(2), domain.StatusPending).Return(nil)
				mockPub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()
			},
		},
		{
			name:          "unknown status leaves the order untouched",
			orderId:       1,
			status:        "Shipped",
			setupMocks:    func(mockRepo *mocks.MockOrderRepository, mockPub *mocks.MockPublisher) {},
			expectedError: "status must be one of Pending, Preparing, Ready, Delivered, Cancelled",
		},
		{
			name:    "order not found",
			orderId: 999,
			status:  domain.StatusReady,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockPub *mocks.MockPublisher) {
				mockRepo.On("FindByID", uint64(999)).Return(nil, nil)
			},
			notFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			mockPublisher := new(mocks.MockPublisher)
			tt.setupMocks(mockRepo, mockPublisher)

			service := NewOrderService(mockRepo, new(mocks.MockMenuRepository), mockPublisher)
			result, err := service.UpdateOrderStatus(context.Background(), tt.orderId, tt.status)

			switch {
			case tt.expectedError != "":
				var ve *domain.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.expectedError, ve.Message)
				mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
			case tt.notFound:
				assert.Equal(t, ErrOrderNotFound, err)
				mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.status, result.Status)
			}

			time.Sleep(100 * time.Millisecond)
			mockRepo.AssertExpectations(t)
			mockPublisher.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateOrderStatus_RefreshesUpdatedAt(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)
	mockPublisher := new(mocks.MockPublisher)

	stale := time.Now().Add(-time.Hour)
	existing := CreateMockOrder(1, "Alice Morgan", domain.StatusPreparing, CreateMockOrderItem(1, 1, 12.99))
	existing.UpdatedAt = stale

	mockRepo.On("FindByID", uint64(1)).Return(existing, nil)
	mockRepo.On("UpdateStatus", uint64(1), domain.StatusReady).Return(nil)
	mockPublisher.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()

	service := NewOrderService(mockRepo, new(mocks.MockMenuRepository), mockPublisher)
	result, err := service.UpdateOrderStatus(context.Background(), 1, domain.StatusReady)

	assert.NoError(t, err)
	assert.True(t, result.UpdatedAt.After(stale))

	time.Sleep(100 * time.Millisecond)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_ListOrders_Pagination(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)

	// 25 orders, page size 10: page 3 holds the final 5.
	lastPage := make([]domain.Order, 5)
	for i := range lastPage {
		lastPage[i] = *CreateMockOrder(uint64(21+i), "Alice Morgan", domain.StatusPending, CreateMockOrderItem(1, 1, 9.99))
	}
	mockRepo.On("Find", repository.OrderFilter{}, 20, 10).Return(lastPage, nil)
	mockRepo.On("Count", repository.OrderFilter{}).Return(int64(25), nil)

	service := NewOrderService(mockRepo, new(mocks.MockMenuRepository), new(mocks.MockPublisher))
	result, err := service.ListOrders(context.Background(), repository.OrderFilter{}, 3, 10)

	assert.NoError(t, err)
	assert.Len(t, result.Orders, 5)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 3, result.Pages)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_ListOrders_Defaults(t *testing.T) {
	mockRepo := new(mocks.MockOrderRepository)

	filter := repository.OrderFilter{Status: domain.StatusPending}
	mockRepo.On("Find", filter, 0, 10).Return([]domain.Order{}, nil)
	mockRepo.On("Count", filter).Return(int64(0), nil)

	service := NewOrderService(mockRepo, new(mocks.MockMenuRepository), new(mocks.MockPublisher))
	result, err := service.ListOrders(context.Background(), filter, 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 0, result.Pages)
	assert.Empty(t, result.Orders)
	mockRepo.AssertExpectations(t)
}
