package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"foodndeliv/delivery-svc/internal/domain"
)

type MenuItemService struct {
	repo        MenuItemRepository
	restaurants RestaurantRepository
	cache       MenuCache
	logger      *zap.Logger
}

func NewMenuItemService(repo MenuItemRepository, restaurants RestaurantRepository, cache MenuCache, logger *zap.Logger) *MenuItemService {
	return &MenuItemService{repo: repo, restaurants: restaurants, cache: cache, logger: logger}
}

func (s *MenuItemService) Create(ctx context.Context, restaurantID int64, req domain.MenuItemRequest) (*domain.MenuItem, error) {
	req.ProductName = strings.TrimSpace(req.ProductName)
	if err := checkMenuItemRequest(req); err != nil {
		return nil, err
	}
	if err := s.requireRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindMenuItemByName(ctx, restaurantID, req.ProductName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("menu item already exists",
			zap.Int64("restaurant_id", restaurantID), zap.String("product_name", req.ProductName))
		return nil, domain.Conflict("Menu item '%s' already exists for this restaurant.", req.ProductName)
	}

	item := &domain.MenuItem{
		RestaurantID: restaurantID,
		ProductName:  req.ProductName,
		Price:        *req.Price,
		IsAvailable:  true,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Info("menu item created", zap.Int64("restaurant_id", restaurantID), zap.Int64("menu_item_id", item.ID))

	s.invalidate(ctx, restaurantID)
	return item, nil
}

func (s *MenuItemService) List(ctx context.Context, restaurantID int64, availableOnly bool) ([]domain.MenuItem, error) {
	if err := s.requireRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	if s.cache == nil {
		return s.repo.ListMenuItems(ctx, restaurantID, availableOnly)
	}

	items, err := s.cachedMenu(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !availableOnly {
		return items, nil
	}

	available := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.IsAvailable {
			available = append(available, item)
		}
	}
	return available, nil
}

func (s *MenuItemService) Get(ctx context.Context, restaurantID, id int64) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || (restaurantID != 0 && item.RestaurantID != restaurantID) {
		return nil, domain.NotFound("Menu item not found with id: %d", id)
	}
	return item, nil
}

func (s *MenuItemService) Update(ctx context.Context, restaurantID, id int64, req domain.MenuItemRequest) (*domain.MenuItem, error) {
	req.ProductName = strings.TrimSpace(req.ProductName)
	if err := checkMenuItemRequest(req); err != nil {
		return nil, err
	}
	item, err := s.Get(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}

	// A change of case alone is not a collision.
	if !strings.EqualFold(item.ProductName, req.ProductName) {
		other, err := s.repo.FindMenuItemByName(ctx, item.RestaurantID, req.ProductName)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.Conflict("Another menu item with name '%s' already exists for this restaurant.", req.ProductName)
		}
	}

	item.ProductName = req.ProductName
	item.Price = *req.Price
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Info("menu item updated", zap.Int64("menu_item_id", id))

	s.invalidate(ctx, item.RestaurantID)
	return item, nil
}

// Delete is a hard delete. Order lines already hold their own copy of name and price.
func (s *MenuItemService) Delete(ctx context.Context, restaurantID, id int64) error {
	item, err := s.Get(ctx, restaurantID, id)
	if err != nil {
		return err
	}

	rows, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("Menu item not found with id: %d", id)
	}
	s.logger.Info("menu item deleted", zap.Int64("menu_item_id", id))

	s.invalidate(ctx, item.RestaurantID)
	return nil
}

func (s *MenuItemService) requireRestaurant(ctx context.Context, restaurantID int64) error {
	rest, err := s.restaurants.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}
	if rest == nil {
		return domain.NotFound("Restaurant not found with id: %d", restaurantID)
	}
	return nil
}

func (s *MenuItemService) cachedMenu(ctx context.Context, restaurantID int64) ([]domain.MenuItem, error) {
	items, ok, err := s.cache.GetMenu(ctx, restaurantID)
	if err != nil {
		s.logger.Warn("menu cache read failed", zap.Int64("restaurant_id", restaurantID), zap.Error(err))
	}
	if ok {
		return items, nil
	}

	items, err = s.repo.ListMenuItems(ctx, restaurantID, false)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetMenu(ctx, restaurantID, items); err != nil {
		s.logger.Warn("menu cache write failed", zap.Int64("restaurant_id", restaurantID), zap.Error(err))
	}
	return items, nil
}

func (s *MenuItemService) invalidate(ctx context.Context, restaurantID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMenu(ctx, restaurantID); err != nil {
		s.logger.Warn("menu cache invalidation failed", zap.Int64("restaurant_id", restaurantID), zap.Error(err))
	}
}

func checkMenuItemRequest(req domain.MenuItemRequest) error {
	if req.ProductName == "" {
		return domain.InvalidArgument("Product name cannot be blank")
	}
	if req.Price == nil {
		return domain.InvalidArgument("Price cannot be null")
	}
	if *req.Price < 0 {
		return domain.InvalidArgument("Price must be zero or positive")
	}
	return nil
}
