package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"foodndeliv/delivery-svc/internal/domain"
)

type OrderService struct {
	orders      OrderRepository
	customers   CustomerRepository
	restaurants RestaurantRepository
	menu        MenuItemRepository
	qrEncoder   QRGenerator
	logger      *zap.Logger
}

func NewOrderService(
	orders OrderRepository,
	customers CustomerRepository,
	restaurants RestaurantRepository,
	menu MenuItemRepository,
	qr QRGenerator,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:      orders,
		customers:   customers,
		restaurants: restaurants,
		menu:        menu,
		qrEncoder:   qr,
		logger:      logger,
	}
}

// Create places an order. Every line is resolved against the restaurant's available menu and
// priced from it; nothing is stored unless all lines resolve.
func (s *OrderService) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.OrderResponse, error) {
	customer, err := s.customers.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NotFound("Customer not found with ID: %d", req.CustomerID)
	}

	restaurant, err := s.restaurants.GetRestaurant(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.NotFound("Restaurant not found with ID: %d", req.RestaurantID)
	}

	if len(req.Lines) == 0 {
		return nil, domain.InvalidArgument("Order must have at least one order line.")
	}
	for i, line := range req.Lines {
		if strings.TrimSpace(line.ProductName) == "" {
			return nil, domain.InvalidArgument("Order line %d: product name cannot be blank.", i+1)
		}
		if line.Quantity <= 0 {
			return nil, domain.InvalidArgument("Order line %d: quantity must be greater than zero.", i+1)
		}
	}

	state := req.State
	if state == "" {
		state = domain.OrderOpen
	}
	if !state.Valid() {
		return nil, domain.InvalidArgument("Unknown order state '%s'.", state)
	}

	lines := make([]domain.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		name := strings.TrimSpace(line.ProductName)
		item, err := s.menu.FindAvailableMenuItem(ctx, restaurant.ID, name)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.NotFound("Product '%s' not found or not available at restaurant '%s'.",
				name, restaurant.Name)
		}
		lines = append(lines, domain.OrderLine{
			ProductName: item.ProductName,
			Quantity:    line.Quantity,
			Price:       item.Price,
		})
	}

	order := &domain.Order{
		CustomerID:   customer.ID,
		RestaurantID: restaurant.ID,
		State:        state,
		Lines:        lines,
		TotalPrice:   OrderTotal(lines),
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	s.logger.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", customer.ID),
		zap.Int64("restaurant_id", restaurant.ID),
		zap.Int("line_count", len(lines)),
		zap.Float64("total_price", order.TotalPrice))

	resp := projectOrder(domain.OrderView{Order: *order, Customer: *customer, Restaurant: *restaurant})
	return &resp, nil
}

// List returns every order with its total recomputed from the stored lines.
func (s *OrderService) List(ctx context.Context) ([]domain.OrderResponse, error) {
	views, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.OrderResponse, 0, len(views))
	for _, view := range views {
		out = append(out, projectOrder(view))
	}
	return out, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.OrderResponse, error) {
	view, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.NotFound("Order not found with ID: %d", id)
	}
	resp := projectOrder(*view)
	return &resp, nil
}

// QRCode renders a receipt QR for an existing order. Nothing is stored.
func (s *OrderService) QRCode(ctx context.Context, id int64) ([]byte, error) {
	if s.qrEncoder == nil {
		return nil, errors.New("receipt QR generator is not configured")
	}
	view, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.NotFound("Order not found with ID: %d", id)
	}
	return s.qrEncoder.Generate(id)
}

// OrderTotal is the sum of price × quantity over lines, computed in decimal.
func OrderTotal(lines []domain.OrderLine) float64 {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.InexactFloat64()
}

func projectOrder(view domain.OrderView) domain.OrderResponse {
	lines := make([]domain.OrderLineResponse, 0, len(view.Order.Lines))
	for _, line := range view.Order.Lines {
		lines = append(lines, domain.OrderLineResponse{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.Price,
		})
	}
	return domain.OrderResponse{
		ID:         view.Order.ID,
		Customer:   view.Customer,
		Restaurant: view.Restaurant,
		Lines:      lines,
		State:      view.Order.State,
		TotalPrice: OrderTotal(view.Order.Lines),
	}
}
