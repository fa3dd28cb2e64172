package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"

	"foodndeliv/delivery-svc/internal/identity"
)

// helper to build the wired router over a sqlmock-backed DB.
func setupTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		mockDB.Close()
	})

	logger := zap.NewNop()
	accounts := identity.NewBridge(nil, "", logger)
	return buildRouter(mockDB, nil, accounts, "http://localhost:8080", logger), mock
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["service"] != "delivery-svc" {
		t.Fatalf("unexpected service field: %v", body["service"])
	}
}

func TestCreateRestaurant_Success(t *testing.T) {
	router, mock := setupTestRouter(t)

	mock.ExpectQuery("SELECT id, name, COALESCE").
		WithArgs("Cafe").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO restaurants").
		WithArgs("Cafe", "Addr", "OPEN").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	body := []byte(`{"name":"Cafe","address":"Addr","state":"OPEN"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/restaurants", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if loc := rr.Header().Get("Location"); loc != "/api/restaurants/1" {
		t.Fatalf("unexpected Location: %q", loc)
	}
}

func TestGetRestaurant_NotFound(t *testing.T) {
	router, mock := setupTestRouter(t)

	mock.ExpectQuery("SELECT id, name").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/99", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestCreateOrder_PricedFromMenu(t *testing.T) {
	router, mock := setupTestRouter(t)
	created := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM customers WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "state"}).
			AddRow(1, "Alice", "alice@example.com", "ACTIVE"))
	mock.ExpectQuery("FROM restaurants WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "state"}).
			AddRow(2, "Cafe", "Addr", "OPEN"))
	mock.ExpectQuery("FROM menu_items").
		WithArgs(int64(2), "pasta").
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "product_name", "price", "is_available"}).
			AddRow(10, 2, "Pasta", 12.5, true))
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(1), int64(2), "OPEN", 25.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, created))
	mock.ExpectQuery("INSERT INTO order_lines").
		WithArgs(int64(7), "Pasta", 2, 12.5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	body := []byte(`{"customerId":1,"restaurantId":2,"lines":[{"productName":"pasta","quantity":2,"price":0.01}]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/ctrl/orders", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var order struct {
		ID         int64   `json:"id"`
		TotalPrice float64 `json:"totalPrice"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&order); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if order.ID != 7 || order.TotalPrice != 25.0 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestCreateOrder_ValidationError(t *testing.T) {
	router, mock := setupTestRouter(t)

	mock.ExpectQuery("FROM customers WHERE id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "state"}).
			AddRow(1, "Alice", "alice@example.com", "ACTIVE"))
	mock.ExpectQuery("FROM restaurants WHERE id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "state"}).
			AddRow(2, "Cafe", "Addr", "OPEN"))

	body := []byte(`{"customerId":1,"restaurantId":2,"lines":[]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/ctrl/orders", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGenerateOrderQRCode_NotFound(t *testing.T) {
	router, mock := setupTestRouter(t)

	mock.ExpectQuery("WHERE o.id").
		WithArgs(int64(123)).
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/api/ctrl/orders/123/qrcode", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
