package domain

import "time"

type CustomerState string

const (
	CustomerActive   CustomerState = "ACTIVE"
	CustomerInactive CustomerState = "INACTIVE"
	CustomerBlocked  CustomerState = "BLOCKED"
)

func (s CustomerState) Valid() bool {
	switch s {
	case CustomerActive, CustomerInactive, CustomerBlocked:
		return true
	}
	return false
}

type RestaurantState string

const (
	RestaurantOpen   RestaurantState = "OPEN"
	RestaurantClosed RestaurantState = "CLOSED"
)

func (s RestaurantState) Valid() bool {
	return s == RestaurantOpen || s == RestaurantClosed
}

type RiderStatus string

const (
	RiderAvailable   RiderStatus = "AVAILABLE"
	RiderOnDelivery  RiderStatus = "ON_DELIVERY"
	RiderOffline     RiderStatus = "OFFLINE"
	RiderUnavailable RiderStatus = "UNAVAILABLE"
)

func (s RiderStatus) Valid() bool {
	switch s {
	case RiderAvailable, RiderOnDelivery, RiderOffline, RiderUnavailable:
		return true
	}
	return false
}

type OrderState string

const (
	OrderOpen           OrderState = "OPEN"
	OrderPreparing      OrderState = "PREPARING"
	OrderOutForDelivery OrderState = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderState = "DELIVERED"
	OrderCancelled      OrderState = "CANCELLED"
)

func (s OrderState) Valid() bool {
	switch s {
	case OrderOpen, OrderPreparing, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Customer struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	State CustomerState `json:"state"`
}

type Restaurant struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	State   RestaurantState `json:"state"`
}

type MenuItem struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurantId"`
	ProductName  string  `json:"productName"`
	Price        float64 `json:"price"`
	IsAvailable  bool    `json:"isAvailable"`
}

type Rider struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	PhoneNumber    string      `json:"phoneNumber"`
	VehicleDetails string      `json:"vehicleDetails"`
	Status         RiderStatus `json:"status"`
}

// Order owns its lines. Customer and restaurant are referenced by id only.
type Order struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"customerId"`
	RestaurantID int64       `json:"restaurantId"`
	State        OrderState  `json:"state"`
	TotalPrice   float64     `json:"totalPrice"`
	CreatedAt    time.Time   `json:"createdAt"`
	Lines        []OrderLine `json:"lines"`
}

// OrderLine is a snapshot of the menu item at order time; it keeps no link to the catalog.
type OrderLine struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"-"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderView is an order projected together with its customer and restaurant.
type OrderView struct {
	Order      Order
	Customer   Customer
	Restaurant Restaurant
}

type CreateCustomerRequest struct {
	Name  string        `json:"name" validate:"required,notblank,max=255"`
	Email string        `json:"email" validate:"required,notblank,email,max=255"`
	State CustomerState `json:"state" validate:"required,customerstate"`
}

type CreateRestaurantRequest struct {
	Name    string          `json:"name" validate:"required,notblank,max=255"`
	Address string          `json:"address" validate:"max=500"`
	State   RestaurantState `json:"state" validate:"required,restaurantstate"`
}

type MenuItemRequest struct {
	ProductName string   `json:"productName" validate:"required,notblank,max=255"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	IsAvailable *bool    `json:"isAvailable"`
}

type CreateRiderRequest struct {
	Name           string      `json:"name" validate:"required,notblank,min=2,max=100"`
	PhoneNumber    string      `json:"phoneNumber" validate:"required,notblank,phone"`
	VehicleDetails string      `json:"vehicleDetails" validate:"max=100"`
	Status         RiderStatus `json:"status" validate:"omitempty,riderstatus"`
}

// UpdateRiderRequest applies only the fields that are set.
type UpdateRiderRequest struct {
	Name           *string      `json:"name" validate:"omitempty,notblank,min=2,max=100"`
	PhoneNumber    *string      `json:"phoneNumber" validate:"omitempty,notblank,phone"`
	VehicleDetails *string      `json:"vehicleDetails" validate:"omitempty,max=100"`
	Status         *RiderStatus `json:"status" validate:"omitempty,riderstatus"`
}

type OrderLineRequest struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID   int64              `json:"customerId"`
	RestaurantID int64              `json:"restaurantId"`
	Lines        []OrderLineRequest `json:"lines"`
	State        OrderState         `json:"state,omitempty"`
}

type OrderLineResponse struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderResponse struct {
	ID         int64               `json:"id"`
	Customer   Customer            `json:"customer"`
	Restaurant Restaurant          `json:"restaurant"`
	Lines      []OrderLineResponse `json:"lines"`
	State      OrderState          `json:"state"`
	TotalPrice float64             `json:"totalPrice"`
}
