package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"restaurant-admin/internal/domain"
	"restaurant-admin/internal/repository"

	"github.com/go-redis/redis/v8"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

const menuItemCacheTTL = time.Minute

type MenuService struct {
	repo        repository.MenuRepository
	redisClient *redis.Client
}

func NewMenuService(r repository.MenuRepository) *MenuService {
	return &MenuService{repo: r}
}

// SetRedisClient enables the per-item cache. The service works without it.
func (s *MenuService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func menuItemCacheKey(id uint64) string {
	return fmt.Sprintf("menu:item:%d", id)
}

func (s *MenuService) ListMenuItems(ctx context.Context, filter repository.MenuFilter) ([]domain.MenuItem, error) {
	return s.repo.Find(filter)
}

func (s *MenuService) SearchMenuItems(ctx context.Context, query string) ([]domain.MenuItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &domain.ValidationError{Message: "search query is required"}
	}
	return s.repo.Search(query)
}

func (s *MenuService) GetMenuItem(ctx context.Context, id uint64) (*domain.MenuItem, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, menuItemCacheKey(id)).Result()
		if err == nil {
			var m domain.MenuItem
			if err := json.Unmarshal([]byte(cached), &m); err == nil {
				return &m, nil
			}
		}
	}

	m, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMenuItemNotFound
	}

	s.cacheMenuItem(ctx, m)
	return m, nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if err := domain.ValidateMenuItem(item); err != nil {
		return nil, err
	}

	if err := s.repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItem is a full replacement: every validated field of the stored
// record takes the incoming value.
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uint64, item *domain.MenuItem) (*domain.MenuItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if err := domain.ValidateMenuItem(item); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrMenuItemNotFound
	}

	existing.Name = item.Name
	existing.Description = item.Description
	existing.Category = item.Category
	existing.Price = item.Price
	existing.Ingredients = item.Ingredients
	existing.IsAvailable = item.IsAvailable
	existing.PreparationTime = item.PreparationTime
	existing.ImageURL = item.ImageURL

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}

	s.invalidateMenuItem(ctx, id)
	return existing, nil
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, id uint64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrMenuItemNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateMenuItem(ctx, id)
	return nil
}

// ToggleAvailability flips the stored flag and returns the whole updated
// record so callers can reconcile optimistically.
func (s *MenuService) ToggleAvailability(ctx context.Context, id uint64) (*domain.MenuItem, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrMenuItemNotFound
	}

	existing.IsAvailable = !existing.IsAvailable
	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}

	s.invalidateMenuItem(ctx, id)
	return existing, nil
}

// WarmupMenuCache preloads the per-item cache with the current catalog.
func (s *MenuService) WarmupMenuCache(ctx context.Context) error {
	if s.redisClient == nil {
		return nil
	}

	items, err := s.repo.Find(repository.MenuFilter{})
	if err != nil {
		return err
	}

	for i := range items {
		s.cacheMenuItem(ctx, &items[i])
	}
	log.Printf("menu cache warmed with %d items", len(items))
	return nil
}

func (s *MenuService) cacheMenuItem(ctx context.Context, m *domain.MenuItem) {
	if s.redisClient == nil {
		return
	}
	if data, err := json.Marshal(m); err == nil {
		s.redisClient.Set(ctx, menuItemCacheKey(m.ID), data, menuItemCacheTTL)
	}
}

func (s *MenuService) invalidateMenuItem(ctx context.Context, id uint64) {
	if s.redisClient == nil {
		return
	}
	s.redisClient.Del(ctx, menuItemCacheKey(id))
}
