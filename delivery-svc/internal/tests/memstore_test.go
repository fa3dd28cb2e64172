package tests

import (
	"context"
	"strings"
	"sync"

	"foodndeliv/delivery-svc/internal/domain"
	"foodndeliv/delivery-svc/internal/service"
)

var (
	_ service.CustomerRepository   = (*memStore)(nil)
	_ service.RestaurantRepository = (*memStore)(nil)
	_ service.MenuItemRepository   = (*memStore)(nil)
	_ service.OrderRepository      = (*memStore)(nil)
)

// memStore keeps everything in maps and follows the repository contracts of the Postgres store:
// lookups miss with nil, nil and deletes report affected rows.
type memStore struct {
	mu          sync.Mutex
	nextID      int64
	customers   map[int64]domain.Customer
	restaurants map[int64]domain.Restaurant
	menuItems   map[int64]domain.MenuItem
	orders      map[int64]domain.Order
	orderIDs    []int64
}

func newMemStore() *memStore {
	return &memStore{
		customers:   make(map[int64]domain.Customer),
		restaurants: make(map[int64]domain.Restaurant),
		menuItems:   make(map[int64]domain.MenuItem),
		orders:      make(map[int64]domain.Order),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) CreateCustomer(_ context.Context, c *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.id()
	s.customers[c.ID] = *c
	return nil
}

func (s *memStore) ListCustomers(context.Context) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	return out, nil
}

func (s *memStore) GetCustomer(_ context.Context, id int64) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.customers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *memStore) FindCustomerByEmail(_ context.Context, email string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindCustomerByName(_ context.Context, name string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memStore) DeleteCustomer(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return 0, nil
	}
	delete(s.customers, id)
	return 1, nil
}

func (s *memStore) CreateRestaurant(_ context.Context, r *domain.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id()
	s.restaurants[r.ID] = *r
	return nil
}

func (s *memStore) ListRestaurants(context.Context) ([]domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		out = append(out, r)
	}
	return out, nil
}

func (s *memStore) GetRestaurant(_ context.Context, id int64) (*domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.restaurants[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (s *memStore) FindRestaurantByName(_ context.Context, name string) (*domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.restaurants {
		if r.Name == name {
			return &r, nil
		}
	}
	return nil, nil
}

func (s *memStore) UpdateRestaurant(_ context.Context, r *domain.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants[r.ID] = *r
	return nil
}

func (s *memStore) DeleteRestaurant(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.restaurants[id]; !ok {
		return 0, nil
	}
	delete(s.restaurants, id)
	for itemID, item := range s.menuItems {
		if item.RestaurantID == id {
			delete(s.menuItems, itemID)
		}
	}
	return 1, nil
}

func (s *memStore) CreateMenuItem(_ context.Context, item *domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.id()
	s.menuItems[item.ID] = *item
	return nil
}

func (s *memStore) ListMenuItems(_ context.Context, restaurantID int64, availableOnly bool) ([]domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.MenuItem, 0)
	for _, item := range s.menuItems {
		if item.RestaurantID == restaurantID && (!availableOnly || item.IsAvailable) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *memStore) GetMenuItem(_ context.Context, id int64) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.menuItems[id]; ok {
		return &item, nil
	}
	return nil, nil
}

func (s *memStore) findMenuItem(restaurantID int64, name string, availableOnly bool) *domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.menuItems {
		if item.RestaurantID != restaurantID || !strings.EqualFold(item.ProductName, name) {
			continue
		}
		if availableOnly && !item.IsAvailable {
			continue
		}
		return &item
	}
	return nil
}

func (s *memStore) FindMenuItemByName(_ context.Context, restaurantID int64, name string) (*domain.MenuItem, error) {
	return s.findMenuItem(restaurantID, name, false), nil
}

func (s *memStore) FindAvailableMenuItem(_ context.Context, restaurantID int64, name string) (*domain.MenuItem, error) {
	return s.findMenuItem(restaurantID, name, true), nil
}

func (s *memStore) UpdateMenuItem(_ context.Context, item *domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menuItems[item.ID] = *item
	return nil
}

func (s *memStore) DeleteMenuItem(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menuItems[id]; !ok {
		return 0, nil
	}
	delete(s.menuItems, id)
	return 1, nil
}

func (s *memStore) CreateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = s.id()
	for i := range order.Lines {
		order.Lines[i].ID = s.id()
		order.Lines[i].OrderID = order.ID
	}
	stored := *order
	stored.Lines = append([]domain.OrderLine(nil), order.Lines...)
	s.orders[order.ID] = stored
	s.orderIDs = append(s.orderIDs, order.ID)
	return nil
}

func (s *memStore) view(o domain.Order) domain.OrderView {
	return domain.OrderView{
		Order:      o,
		Customer:   s.customers[o.CustomerID],
		Restaurant: s.restaurants[o.RestaurantID],
	}
}

func (s *memStore) ListOrders(context.Context) ([]domain.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.OrderView, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		out = append(out, s.view(s.orders[id]))
	}
	return out, nil
}

func (s *memStore) GetOrder(_ context.Context, id int64) (*domain.OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	v := s.view(o)
	return &v, nil
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
