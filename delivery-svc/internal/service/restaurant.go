package service

import (
	"context"

	"go.uber.org/zap"

	"foodndeliv/delivery-svc/internal/domain"
)

type RestaurantService struct {
	repo   RestaurantRepository
	cache  MenuCache
	logger *zap.Logger
}

func NewRestaurantService(repo RestaurantRepository, cache MenuCache, logger *zap.Logger) *RestaurantService {
	return &RestaurantService{repo: repo, cache: cache, logger: logger}
}

func (s *RestaurantService) Create(ctx context.Context, req domain.CreateRestaurantRequest) (*domain.Restaurant, error) {
	s.logger.Info("creating restaurant", zap.String("name", req.Name))

	existing, err := s.repo.FindRestaurantByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("restaurant name already exists", zap.String("name", req.Name))
		return nil, domain.Conflict("Restaurant with name '%s' already exists.", req.Name)
	}

	rest := &domain.Restaurant{Name: req.Name, Address: req.Address, State: req.State}
	if err := s.repo.CreateRestaurant(ctx, rest); err != nil {
		return nil, err
	}
	s.logger.Info("restaurant created", zap.Int64("restaurant_id", rest.ID))
	return rest, nil
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *RestaurantService) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		s.logger.Warn("restaurant not found", zap.Int64("restaurant_id", id))
		return nil, domain.NotFound("Restaurant not found with ID: %d", id)
	}
	return rest, nil
}

func (s *RestaurantService) Update(ctx context.Context, id int64, req domain.CreateRestaurantRequest) (*domain.Restaurant, error) {
	rest, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != rest.Name {
		other, err := s.repo.FindRestaurantByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.Conflict("Restaurant with name '%s' already exists.", req.Name)
		}
	}

	rest.Name = req.Name
	rest.Address = req.Address
	rest.State = req.State
	if err := s.repo.UpdateRestaurant(ctx, rest); err != nil {
		return nil, err
	}
	s.logger.Info("restaurant updated", zap.Int64("restaurant_id", id))
	return rest, nil
}

// Delete removes the restaurant; its menu and orders go with it through the store's cascade.
func (s *RestaurantService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.DeleteRestaurant(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		s.logger.Warn("restaurant not found for deletion", zap.Int64("restaurant_id", id))
		return domain.NotFound("Restaurant not found with ID: %d, cannot delete.", id)
	}
	s.logger.Info("restaurant deleted", zap.Int64("restaurant_id", id))

	if s.cache != nil {
		if err := s.cache.InvalidateMenu(ctx, id); err != nil {
			s.logger.Warn("menu cache invalidation failed", zap.Int64("restaurant_id", id), zap.Error(err))
		}
	}
	return nil
}
