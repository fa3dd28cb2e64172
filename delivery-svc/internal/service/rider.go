package service

import (
	"context"

	"go.uber.org/zap"

	"foodndeliv/delivery-svc/internal/domain"
)

type RiderService struct {
	repo     RiderRepository
	accounts AccountBridge
	logger   *zap.Logger
}

func NewRiderService(repo RiderRepository, accounts AccountBridge, logger *zap.Logger) *RiderService {
	return &RiderService{repo: repo, accounts: accounts, logger: logger}
}

func (s *RiderService) Create(ctx context.Context, req domain.CreateRiderRequest) (*domain.Rider, error) {
	s.logger.Info("creating rider", zap.String("name", req.Name), zap.String("phone_number", req.PhoneNumber))

	existing, err := s.repo.FindRiderByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("rider phone number already exists", zap.String("phone_number", req.PhoneNumber))
		return nil, domain.Conflict("Rider with phone number '%s' already exists.", req.PhoneNumber)
	}

	rider := &domain.Rider{
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		VehicleDetails: req.VehicleDetails,
		Status:         req.Status,
	}
	if rider.Status == "" {
		rider.Status = domain.RiderAvailable
	}
	if err := s.repo.CreateRider(ctx, rider); err != nil {
		return nil, err
	}
	s.logger.Info("rider created", zap.Int64("rider_id", rider.ID))

	if s.accounts != nil {
		s.accounts.ProvisionRider(ctx, *rider)
	}
	return rider, nil
}

func (s *RiderService) List(ctx context.Context) ([]domain.Rider, error) {
	return s.repo.ListRiders(ctx)
}

func (s *RiderService) Get(ctx context.Context, id int64) (*domain.Rider, error) {
	rider, err := s.repo.GetRider(ctx, id)
	if err != nil {
		return nil, err
	}
	if rider == nil {
		s.logger.Warn("rider not found", zap.Int64("rider_id", id))
		return nil, domain.NotFound("Rider not found with ID: %d", id)
	}
	return rider, nil
}

// Update applies the fields present in req. The identity account keeps the username it was
// created with even when the name changes.
func (s *RiderService) Update(ctx context.Context, id int64, req domain.UpdateRiderRequest) (*domain.Rider, error) {
	rider, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != rider.PhoneNumber {
		other, err := s.repo.FindRiderByPhone(ctx, *req.PhoneNumber)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			s.logger.Warn("rider phone number in use",
				zap.Int64("rider_id", id), zap.Int64("owner_id", other.ID))
			return nil, domain.Conflict("Phone number '%s' is already in use by another rider.", *req.PhoneNumber)
		}
		rider.PhoneNumber = *req.PhoneNumber
	}
	if req.Name != nil {
		rider.Name = *req.Name
	}
	if req.VehicleDetails != nil {
		rider.VehicleDetails = *req.VehicleDetails
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, domain.InvalidArgument("Unknown rider status '%s'", *req.Status)
		}
		rider.Status = *req.Status
	}

	if err := s.repo.UpdateRider(ctx, rider); err != nil {
		return nil, err
	}
	s.logger.Info("rider updated", zap.Int64("rider_id", id))
	return rider, nil
}

func (s *RiderService) Delete(ctx context.Context, id int64) error {
	rider, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	rows, err := s.repo.DeleteRider(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("Rider not found with ID: %d", id)
	}
	s.logger.Info("rider deleted", zap.Int64("rider_id", id))

	if s.accounts != nil {
		s.accounts.RemoveRider(ctx, *rider)
	}
	return nil
}
