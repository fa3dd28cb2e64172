package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"foodndeliv/delivery-svc/internal/domain"
	"foodndeliv/delivery-svc/internal/service"
)

type Handler struct {
	Customers   service.CustomerServiceInterface
	Restaurants service.RestaurantServiceInterface
	MenuItems   service.MenuItemServiceInterface
	Riders      service.RiderServiceInterface
	Orders      service.OrderServiceInterface

	validator *requestValidator
	logger    *zap.Logger
}

func NewHandler(
	customers service.CustomerServiceInterface,
	restaurants service.RestaurantServiceInterface,
	menuItems service.MenuItemServiceInterface,
	riders service.RiderServiceInterface,
	orders service.OrderServiceInterface,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Customers:   customers,
		Restaurants: restaurants,
		MenuItems:   menuItems,
		Riders:      riders,
		Orders:      orders,
		validator:   newRequestValidator(),
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/customers", h.createCustomer).Methods("POST")
	r.HandleFunc("/api/customers", h.getCustomers).Methods("GET")
	r.HandleFunc("/api/customers/{id}", h.getCustomer).Methods("GET")
	r.HandleFunc("/api/customers/{id}", h.deleteCustomer).Methods("DELETE")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items", h.getMenuItems).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu-items/{id}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/menu-items/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu-items/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/riders", h.createRider).Methods("POST")
	r.HandleFunc("/api/riders", h.getRiders).Methods("GET")
	r.HandleFunc("/api/riders/{id}", h.getRider).Methods("GET")
	r.HandleFunc("/api/riders/{id}", h.updateRider).Methods("PUT")
	r.HandleFunc("/api/riders/{id}", h.deleteRider).Methods("DELETE")

	r.HandleFunc("/api/ctrl/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/ctrl/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/ctrl/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/ctrl/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "delivery-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.InvalidArgument("Invalid %s '%s'", name, raw)
	}
	return id, nil
}

// optionalPathID is 0 when the route has no such variable.
func optionalPathID(r *http.Request, name string) (int64, error) {
	if _, ok := mux.Vars(r)[name]; !ok {
		return 0, nil
	}
	return pathID(r, name)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.InvalidArgument("Malformed JSON request body: %v", err)
	}
	return nil
}

func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := decodeJSON(r, dst); err != nil {
		return err
	}
	return h.validator.Struct(dst)
}

func writeCreated(w http.ResponseWriter, location string, body any) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusCreated, body)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	customer, err := h.Customers.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/customers/%d", customer.ID), customer)
}

func (h *Handler) getCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	customer, err := h.Customers.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Customers.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRestaurantRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	rest, err := h.Restaurants.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/restaurants/%d", rest.ID), rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rest, err := h.Restaurants.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.CreateRestaurantRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	rest, err := h.Restaurants.Update(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Restaurants.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.MenuItemRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.MenuItems.Create(r.Context(), restaurantID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/restaurants/%d/menu-items/%d", restaurantID, item.ID), item)
}

func (h *Handler) getMenuItems(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathID(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	availableOnly := false
	if raw := r.URL.Query().Get("available"); raw != "" {
		if availableOnly, err = strconv.ParseBool(raw); err != nil {
			h.writeError(w, r, domain.InvalidArgument("Invalid available filter '%s'", raw))
			return
		}
	}
	items, err := h.MenuItems.List(r.Context(), restaurantID, availableOnly)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := optionalPathID(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.MenuItems.Get(r.Context(), restaurantID, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := optionalPathID(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.MenuItemRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	item, err := h.MenuItems.Update(r.Context(), restaurantID, id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := optionalPathID(r, "restaurantId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.MenuItems.Delete(r.Context(), restaurantID, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createRider(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRiderRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	rider, err := h.Riders.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/riders/%d", rider.ID), rider)
}

func (h *Handler) getRiders(w http.ResponseWriter, r *http.Request) {
	riders, err := h.Riders.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, riders)
}

func (h *Handler) getRider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rider, err := h.Riders.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rider)
}

func (h *Handler) updateRider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req domain.UpdateRiderRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	rider, err := h.Riders.Update(r.Context(), id, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rider)
}

func (h *Handler) deleteRider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Riders.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// createOrder does no struct validation; the order workflow owns the order of its checks.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.Orders.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeCreated(w, fmt.Sprintf("/api/ctrl/orders/%d", order.ID), order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	png, err := h.Orders.QRCode(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
