package services

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/repository"

	"github.com/go-redis/redis/v8"
)

const (
	topSellersLimit    = 5
	topSellersCacheKey = "analytics:top-sellers"
	topSellersCacheTTL = 30 * time.Second
)

type TopSeller struct {
	MenuItemID    uint64              `json:"menuItemId"`
	Name          string              `json:"name"`
	Category      domain.MenuCategory `json:"category"`
	TotalQuantity int                 `json:"totalQuantity"`
	TotalRevenue  float64             `json:"totalRevenue"`
}

type AnalyticsService struct {
	orderRepo   repository.OrderRepository
	menuRepo    repository.MenuRepository
	redisClient *redis.Client
}

func NewAnalyticsService(orderRepo repository.OrderRepository, menuRepo repository.MenuRepository) *AnalyticsService {
	return &AnalyticsService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
	}
}

func (s *AnalyticsService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// TopSellers reports the five menu items with the highest cumulative ordered
// quantity across all orders. Cancelled orders count too: the report shows
// demand, not fulfilment. Line items use their snapshot price, so revenue
// reflects what was actually charged.
func (s *AnalyticsService) TopSellers(ctx context.Context) ([]TopSeller, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, topSellersCacheKey).Result()
		if err == nil {
			var out []TopSeller
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return out, nil
			}
		}
	}

	items, err := s.orderRepo.FindAllItems()
	if err != nil {
		return nil, err
	}

	groups := make(map[uint64]*TopSeller)
	for _, item := range items {
		g := groups[item.MenuItemID]
		if g == nil {
			g = &TopSeller{MenuItemID: item.MenuItemID}
			groups[item.MenuItemID] = g
		}
		g.TotalQuantity += item.Quantity
		g.TotalRevenue += float64(item.Quantity) * item.Price
	}

	ids := make([]uint64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}

	menuItems, err := s.menuRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	// Inner join: groups whose menu item has been deleted drop out here.
	out := make([]TopSeller, 0, len(menuItems))
	for _, m := range menuItems {
		g := groups[m.ID]
		if g == nil {
			continue
		}
		g.Name = m.Name
		g.Category = m.Category
		out = append(out, *g)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalQuantity != out[j].TotalQuantity {
			return out[i].TotalQuantity > out[j].TotalQuantity
		}
		return out[i].MenuItemID < out[j].MenuItemID
	})
	if len(out) > topSellersLimit {
		out = out[:topSellersLimit]
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(out); err == nil {
			s.redisClient.Set(ctx, topSellersCacheKey, data, topSellersCacheTTL)
		}
	}

	return out, nil
}
