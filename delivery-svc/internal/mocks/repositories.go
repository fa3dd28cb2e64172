package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"foodndeliv/delivery-svc/internal/domain"
)

type CustomerRepository struct {
	mock.Mock
}

func NewCustomerRepository(t *testing.T) *CustomerRepository {
	m := &CustomerRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *CustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]domain.Customer)
	return customers, args.Error(1)
}

func (m *CustomerRepository) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*domain.Customer)
	return customer, args.Error(1)
}

func (m *CustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	customer, _ := args.Get(0).(*domain.Customer)
	return customer, args.Error(1)
}

func (m *CustomerRepository) FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	args := m.Called(ctx, name)
	customer, _ := args.Get(0).(*domain.Customer)
	return customer, args.Error(1)
}

func (m *CustomerRepository) DeleteCustomer(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type RestaurantRepository struct {
	mock.Mock
}

func NewRestaurantRepository(t *testing.T) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	args := m.Called(ctx, rest)
	return args.Error(0)
}

func (m *RestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	restaurants, _ := args.Get(0).([]domain.Restaurant)
	return restaurants, args.Error(1)
}

func (m *RestaurantRepository) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	rest, _ := args.Get(0).(*domain.Restaurant)
	return rest, args.Error(1)
}

func (m *RestaurantRepository) FindRestaurantByName(ctx context.Context, name string) (*domain.Restaurant, error) {
	args := m.Called(ctx, name)
	rest, _ := args.Get(0).(*domain.Restaurant)
	return rest, args.Error(1)
}

func (m *RestaurantRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	args := m.Called(ctx, rest)
	return args.Error(0)
}

func (m *RestaurantRepository) DeleteRestaurant(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MenuItemRepository struct {
	mock.Mock
}

func NewMenuItemRepository(t *testing.T) *MenuItemRepository {
	m := &MenuItemRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuItemRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuItemRepository) ListMenuItems(ctx context.Context, restaurantID int64, availableOnly bool) ([]domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, availableOnly)
	items, _ := args.Get(0).([]domain.MenuItem)
	return items, args.Error(1)
}

func (m *MenuItemRepository) GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.MenuItem)
	return item, args.Error(1)
}

func (m *MenuItemRepository) FindMenuItemByName(ctx context.Context, restaurantID int64, productName string) (*domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, productName)
	item, _ := args.Get(0).(*domain.MenuItem)
	return item, args.Error(1)
}

func (m *MenuItemRepository) FindAvailableMenuItem(ctx context.Context, restaurantID int64, productName string) (*domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, productName)
	item, _ := args.Get(0).(*domain.MenuItem)
	return item, args.Error(1)
}

func (m *MenuItemRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuItemRepository) DeleteMenuItem(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type RiderRepository struct {
	mock.Mock
}

func NewRiderRepository(t *testing.T) *RiderRepository {
	m := &RiderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RiderRepository) CreateRider(ctx context.Context, rider *domain.Rider) error {
	args := m.Called(ctx, rider)
	return args.Error(0)
}

func (m *RiderRepository) ListRiders(ctx context.Context) ([]domain.Rider, error) {
	args := m.Called(ctx)
	riders, _ := args.Get(0).([]domain.Rider)
	return riders, args.Error(1)
}

func (m *RiderRepository) GetRider(ctx context.Context, id int64) (*domain.Rider, error) {
	args := m.Called(ctx, id)
	rider, _ := args.Get(0).(*domain.Rider)
	return rider, args.Error(1)
}

func (m *RiderRepository) FindRiderByPhone(ctx context.Context, phoneNumber string) (*domain.Rider, error) {
	args := m.Called(ctx, phoneNumber)
	rider, _ := args.Get(0).(*domain.Rider)
	return rider, args.Error(1)
}

func (m *RiderRepository) UpdateRider(ctx context.Context, rider *domain.Rider) error {
	args := m.Called(ctx, rider)
	return args.Error(0)
}

func (m *RiderRepository) DeleteRider(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t *testing.T) *OrderRepository {
	m := &OrderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) ListOrders(ctx context.Context) ([]domain.OrderView, error) {
	args := m.Called(ctx)
	views, _ := args.Get(0).([]domain.OrderView)
	return views, args.Error(1)
}

func (m *OrderRepository) GetOrder(ctx context.Context, id int64) (*domain.OrderView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*domain.OrderView)
	return view, args.Error(1)
}
