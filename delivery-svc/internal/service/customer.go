package service

import (
	"context"

	"go.uber.org/zap"

	"foodndeliv/delivery-svc/internal/domain"
)

type CustomerService struct {
	repo     CustomerRepository
	accounts AccountBridge
	logger   *zap.Logger
}

func NewCustomerService(repo CustomerRepository, accounts AccountBridge, logger *zap.Logger) *CustomerService {
	return &CustomerService{repo: repo, accounts: accounts, logger: logger}
}

// Create rejects a duplicate email or name, stores the customer and then provisions
// an identity account for it.
func (s *CustomerService) Create(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	s.logger.Info("creating customer", zap.String("name", req.Name), zap.String("email", req.Email))

	existing, err := s.repo.FindCustomerByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("customer email already exists", zap.String("email", req.Email))
		return nil, domain.Conflict("Customer with email '%s' already exists.", req.Email)
	}

	existing, err = s.repo.FindCustomerByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("customer name already exists", zap.String("name", req.Name))
		return nil, domain.Conflict("Customer with name '%s' already exists.", req.Name)
	}

	customer := &domain.Customer{Name: req.Name, Email: req.Email, State: req.State}
	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	s.logger.Info("customer created", zap.Int64("customer_id", customer.ID))

	if s.accounts != nil {
		s.accounts.ProvisionCustomer(ctx, *customer)
	}
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		s.logger.Warn("customer not found", zap.Int64("customer_id", id))
		return nil, domain.NotFound("Customer not found with ID: %d", id)
	}
	return customer, nil
}

// Delete removes the customer (and, through the store's cascade, its orders) and then
// attempts to remove the matching identity account.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	rows, err := s.repo.DeleteCustomer(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("Customer not found with ID: %d", id)
	}
	s.logger.Info("customer deleted", zap.Int64("customer_id", id))

	if s.accounts != nil {
		s.accounts.RemoveCustomer(ctx, *customer)
	}
	return nil
}
