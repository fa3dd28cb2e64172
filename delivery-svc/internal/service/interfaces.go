package service

import (
	"context"

	"foodndeliv/delivery-svc/internal/domain"
)

// Repository lookups (Get*, Find*) return a nil record and a nil error when nothing matches.
// Delete* return the number of rows removed.

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) (int64, error)
}

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	FindRestaurantByName(ctx context.Context, name string) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id int64) (int64, error)
}

type MenuItemRepository interface {
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	ListMenuItems(ctx context.Context, restaurantID int64, availableOnly bool) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error)
	// FindMenuItemByName matches the product name case-insensitively regardless of availability.
	FindMenuItemByName(ctx context.Context, restaurantID int64, productName string) (*domain.MenuItem, error)
	// FindAvailableMenuItem matches the product name case-insensitively among available items only.
	FindAvailableMenuItem(ctx context.Context, restaurantID int64, productName string) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int64) (int64, error)
}

type RiderRepository interface {
	CreateRider(ctx context.Context, rider *domain.Rider) error
	ListRiders(ctx context.Context) ([]domain.Rider, error)
	GetRider(ctx context.Context, id int64) (*domain.Rider, error)
	FindRiderByPhone(ctx context.Context, phoneNumber string) (*domain.Rider, error)
	UpdateRider(ctx context.Context, rider *domain.Rider) error
	DeleteRider(ctx context.Context, id int64) (int64, error)
}

type OrderRepository interface {
	// CreateOrder stores the order and all of its lines atomically and fills in generated ids.
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListOrders(ctx context.Context) ([]domain.OrderView, error)
	GetOrder(ctx context.Context, id int64) (*domain.OrderView, error)
}

// MenuCache holds full (unfiltered) restaurant menus.
type MenuCache interface {
	GetMenu(ctx context.Context, restaurantID int64) ([]domain.MenuItem, bool, error)
	SetMenu(ctx context.Context, restaurantID int64, items []domain.MenuItem) error
	InvalidateMenu(ctx context.Context, restaurantID int64) error
}

// AccountBridge mirrors customers and riders into the identity provider.
// Implementations never fail the caller: problems are logged and swallowed.
type AccountBridge interface {
	ProvisionCustomer(ctx context.Context, customer domain.Customer)
	ProvisionRider(ctx context.Context, rider domain.Rider)
	RemoveCustomer(ctx context.Context, customer domain.Customer)
	RemoveRider(ctx context.Context, rider domain.Rider)
}

type CustomerServiceInterface interface {
	Create(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, req domain.CreateRestaurantRequest) (*domain.Restaurant, error)
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
	Update(ctx context.Context, id int64, req domain.CreateRestaurantRequest) (*domain.Restaurant, error)
	Delete(ctx context.Context, id int64) error
}

// MenuItemServiceInterface methods taking a restaurantID act on any restaurant when it is 0.
type MenuItemServiceInterface interface {
	Create(ctx context.Context, restaurantID int64, req domain.MenuItemRequest) (*domain.MenuItem, error)
	List(ctx context.Context, restaurantID int64, availableOnly bool) ([]domain.MenuItem, error)
	Get(ctx context.Context, restaurantID, id int64) (*domain.MenuItem, error)
	Update(ctx context.Context, restaurantID, id int64, req domain.MenuItemRequest) (*domain.MenuItem, error)
	Delete(ctx context.Context, restaurantID, id int64) error
}

type RiderServiceInterface interface {
	Create(ctx context.Context, req domain.CreateRiderRequest) (*domain.Rider, error)
	List(ctx context.Context) ([]domain.Rider, error)
	Get(ctx context.Context, id int64) (*domain.Rider, error)
	Update(ctx context.Context, id int64, req domain.UpdateRiderRequest) (*domain.Rider, error)
	Delete(ctx context.Context, id int64) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.OrderResponse, error)
	List(ctx context.Context) ([]domain.OrderResponse, error)
	Get(ctx context.Context, id int64) (*domain.OrderResponse, error)
	QRCode(ctx context.Context, id int64) ([]byte, error)
}

var (
	_ CustomerServiceInterface   = (*CustomerService)(nil)
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ MenuItemServiceInterface   = (*MenuItemService)(nil)
	_ RiderServiceInterface      = (*RiderService)(nil)
	_ OrderServiceInterface      = (*OrderService)(nil)
)
