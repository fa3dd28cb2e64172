package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"foodndeliv/delivery-svc/internal/domain"
)

type MenuCache struct {
	mock.Mock
}

func NewMenuCache(t *testing.T) *MenuCache {
	m := &MenuCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuCache) GetMenu(ctx context.Context, restaurantID int64) ([]domain.MenuItem, bool, error) {
	args := m.Called(ctx, restaurantID)
	items, _ := args.Get(0).([]domain.MenuItem)
	return items, args.Bool(1), args.Error(2)
}

func (m *MenuCache) SetMenu(ctx context.Context, restaurantID int64, items []domain.MenuItem) error {
	args := m.Called(ctx, restaurantID, items)
	return args.Error(0)
}

func (m *MenuCache) InvalidateMenu(ctx context.Context, restaurantID int64) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

type AccountBridge struct {
	mock.Mock
}

func NewAccountBridge(t *testing.T) *AccountBridge {
	m := &AccountBridge{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AccountBridge) ProvisionCustomer(ctx context.Context, customer domain.Customer) {
	m.Called(ctx, customer)
}

func (m *AccountBridge) ProvisionRider(ctx context.Context, rider domain.Rider) {
	m.Called(ctx, rider)
}

func (m *AccountBridge) RemoveCustomer(ctx context.Context, customer domain.Customer) {
	m.Called(ctx, customer)
}

func (m *AccountBridge) RemoveRider(ctx context.Context, rider domain.Rider) {
	m.Called(ctx, rider)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t *testing.T) *QRGenerator {
	m := &QRGenerator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(orderID int64) ([]byte, error) {
	args := m.Called(orderID)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}
