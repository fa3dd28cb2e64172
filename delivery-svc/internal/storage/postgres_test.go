package storage

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodndeliv/delivery-svc/internal/domain"
)

func setupTestDB(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range schemaStatements {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchemaStopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS restaurants").WillReturnError(sql.ErrConnDone)

	err = EnsureSchema(context.Background(), db)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestCreateCustomer(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		wantKind error
	}{
		{name: "inserted"},
		{name: "unique violation", dbErr: &pq.Error{Code: "23505"}, wantKind: domain.ErrConflict},
		{name: "other failure", dbErr: sql.ErrConnDone, wantKind: sql.ErrConnDone},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupTestDB(t)
			q := mock.ExpectQuery("INSERT INTO customers").WithArgs("Alice", "alice@example.com", "ACTIVE")
			if testCase.dbErr != nil {
				q.WillReturnError(testCase.dbErr)
			} else {
				q.WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
			}

			c := &domain.Customer{Name: "Alice", Email: "alice@example.com", State: domain.CustomerActive}
			err := repo.CreateCustomer(context.Background(), c)

			if testCase.wantKind != nil {
				assert.ErrorIs(t, err, testCase.wantKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(4), c.ID)
		})
	}
}

func TestGetCustomer_NoRowsIsNil(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("SELECT id, name, email, state FROM customers WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "state"}))

	c, err := repo.GetCustomer(context.Background(), 9)
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestListCustomers_EmptyIsNotNil(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("SELECT id, name, email, state FROM customers ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "state"}))

	customers, err := repo.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, customers)
	assert.Empty(t, customers)
}

func TestDeleteRestaurant_ReportsRows(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectExec("DELETE FROM restaurants WHERE id").
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeleteRestaurant(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestFindAvailableMenuItem(t *testing.T) {
	cols := []string{"id", "restaurant_id", "product_name", "price", "is_available"}
	query := regexp.QuoteMeta("LOWER(product_name) = LOWER($2) AND is_available")

	t.Run("match returns canonical row", func(t *testing.T) {
		repo, mock := setupTestDB(t)
		mock.ExpectQuery(query).
			WithArgs(int64(2), "pizza").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(10, 2, "Pizza", 5.0, true))

		item, err := repo.FindAvailableMenuItem(context.Background(), 2, "pizza")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Pizza", item.ProductName)
		assert.Equal(t, 5.0, item.Price)
	})

	t.Run("no match", func(t *testing.T) {
		repo, mock := setupTestDB(t)
		mock.ExpectQuery(query).
			WithArgs(int64(2), "soup").
			WillReturnRows(sqlmock.NewRows(cols))

		item, err := repo.FindAvailableMenuItem(context.Background(), 2, "soup")
		assert.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestListMenuItems_AvailableFilter(t *testing.T) {
	cols := []string{"id", "restaurant_id", "product_name", "price", "is_available"}

	repo, mock := setupTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE restaurant_id = $1 AND is_available ORDER BY id")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(10, 2, "Pizza", 5.0, true))

	items, err := repo.ListMenuItems(context.Background(), 2, true)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCreateOrder_Transaction(t *testing.T) {
	created := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	order := &domain.Order{
		CustomerID: 1, RestaurantID: 2, State: domain.OrderOpen, TotalPrice: 13.0,
		Lines: []domain.OrderLine{
			{ProductName: "Pizza", Quantity: 2, Price: 5.0},
			{ProductName: "Cola", Quantity: 1, Price: 3.0},
		},
	}

	t.Run("commits order and lines", func(t *testing.T) {
		repo, mock := setupTestDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(int64(1), int64(2), "OPEN", 13.0).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(55, created))
		mock.ExpectQuery("INSERT INTO order_lines").
			WithArgs(int64(55), "Pizza", 2, 5.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery("INSERT INTO order_lines").
			WithArgs(int64(55), "Cola", 1, 3.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectCommit()

		o := *order
		o.Lines = append([]domain.OrderLine(nil), order.Lines...)
		require.NoError(t, repo.CreateOrder(context.Background(), &o))
		assert.Equal(t, int64(55), o.ID)
		assert.Equal(t, created, o.CreatedAt)
		assert.Equal(t, int64(2), o.Lines[1].ID)
		assert.Equal(t, int64(55), o.Lines[1].OrderID)
	})

	t.Run("line failure rolls back", func(t *testing.T) {
		repo, mock := setupTestDB(t)
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(55, created))
		mock.ExpectQuery("INSERT INTO order_lines").WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		o := *order
		o.Lines = append([]domain.OrderLine(nil), order.Lines...)
		err := repo.CreateOrder(context.Background(), &o)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestListOrders_AttachesLines(t *testing.T) {
	created := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	repo, mock := setupTestDB(t)

	mock.ExpectQuery("FROM orders o").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_id", "restaurant_id", "state", "total_price", "created_at",
			"c_name", "c_email", "c_state", "r_name", "r_address", "r_state",
		}).
			AddRow(55, 1, 2, "OPEN", 13.0, created, "Alice", "alice@example.com", "ACTIVE", "Luigi's", "1 Main St", "OPEN").
			AddRow(56, 1, 2, "DELIVERED", 3.0, created, "Alice", "alice@example.com", "ACTIVE", "Luigi's", "1 Main St", "OPEN"))
	mock.ExpectQuery("FROM order_lines").
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_name", "quantity", "price"}).
			AddRow(1, 55, "Pizza", 2, 5.0).
			AddRow(2, 55, "Cola", 1, 3.0).
			AddRow(3, 56, "Cola", 1, 3.0))

	views, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Len(t, views[0].Order.Lines, 2)
	assert.Len(t, views[1].Order.Lines, 1)
	assert.Equal(t, "Alice", views[0].Customer.Name)
	assert.Equal(t, int64(1), views[0].Customer.ID)
	assert.Equal(t, "Luigi's", views[1].Restaurant.Name)
}

func TestGetOrder_Missing(t *testing.T) {
	repo, mock := setupTestDB(t)
	mock.ExpectQuery("WHERE o.id").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	view, err := repo.GetOrder(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, view)
}
