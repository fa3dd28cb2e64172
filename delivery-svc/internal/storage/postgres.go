package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"foodndeliv/delivery-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// uniqueOr maps a unique_violation to a Conflict with the given message.
func uniqueOr(err error, format string, args ...any) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.Conflict(format, args...)
	}
	return err
}

func (r *PostgresRepository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO customers (name, email, state) VALUES ($1, $2, $3) RETURNING id",
		c.Name, c.Email, string(c.State),
	).Scan(&c.ID)
	if err != nil {
		return uniqueOr(err, "Customer with name '%s' or email '%s' already exists.", c.Name, c.Email)
	}
	return nil
}

func (r *PostgresRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, email, state FROM customers ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.State); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PostgresRepository) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.findCustomer(ctx, "SELECT id, name, email, state FROM customers WHERE id = $1", id)
}

func (r *PostgresRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.findCustomer(ctx, "SELECT id, name, email, state FROM customers WHERE email = $1", email)
}

func (r *PostgresRepository) FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	return r.findCustomer(ctx, "SELECT id, name, email, state FROM customers WHERE name = $1", name)
}

func (r *PostgresRepository) findCustomer(ctx context.Context, query string, arg any) (*domain.Customer, error) {
	var c domain.Customer
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Email, &c.State)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) DeleteCustomer(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete customer: %w", err)
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO restaurants (name, address, state) VALUES ($1, $2, $3) RETURNING id",
		rest.Name, rest.Address, string(rest.State),
	).Scan(&rest.ID)
	if err != nil {
		return uniqueOr(err, "Restaurant with name '%s' already exists.", rest.Name)
	}
	return nil
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(address, ''), state
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]domain.Restaurant, 0)
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.State); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	return r.findRestaurant(ctx, "SELECT id, name, COALESCE(address, ''), state FROM restaurants WHERE id = $1", id)
}

func (r *PostgresRepository) FindRestaurantByName(ctx context.Context, name string) (*domain.Restaurant, error) {
	return r.findRestaurant(ctx, "SELECT id, name, COALESCE(address, ''), state FROM restaurants WHERE name = $1", name)
}

func (r *PostgresRepository) findRestaurant(ctx context.Context, query string, arg any) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(&rest.ID, &rest.Name, &rest.Address, &rest.State)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE restaurants SET name = $1, address = $2, state = $3 WHERE id = $4",
		rest.Name, rest.Address, string(rest.State), rest.ID)
	if err != nil {
		return uniqueOr(err, "Restaurant with name '%s' already exists.", rest.Name)
	}
	return nil
}

func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete restaurant: %w", err)
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (restaurant_id, product_name, price, is_available)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		item.RestaurantID, item.ProductName, item.Price, item.IsAvailable,
	).Scan(&item.ID)
	if err != nil {
		return uniqueOr(err, "Menu item '%s' already exists for this restaurant.", item.ProductName)
	}
	return nil
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, restaurantID int64, availableOnly bool) ([]domain.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, product_name, price, is_available
		FROM menu_items
		WHERE restaurant_id = $1`
	if availableOnly {
		query += " AND is_available"
	}
	query += " ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.ProductName, &item.Price, &item.IsAvailable); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	return r.findMenuItem(ctx, `
		SELECT id, restaurant_id, product_name, price, is_available
		FROM menu_items
		WHERE id = $1`, id)
}

func (r *PostgresRepository) FindMenuItemByName(ctx context.Context, restaurantID int64, productName string) (*domain.MenuItem, error) {
	return r.findMenuItem(ctx, `
		SELECT id, restaurant_id, product_name, price, is_available
		FROM menu_items
		WHERE restaurant_id = $1 AND LOWER(product_name) = LOWER($2)`, restaurantID, productName)
}

func (r *PostgresRepository) FindAvailableMenuItem(ctx context.Context, restaurantID int64, productName string) (*domain.MenuItem, error) {
	return r.findMenuItem(ctx, `
		SELECT id, restaurant_id, product_name, price, is_available
		FROM menu_items
		WHERE restaurant_id = $1 AND LOWER(product_name) = LOWER($2) AND is_available`, restaurantID, productName)
}

func (r *PostgresRepository) findMenuItem(ctx context.Context, query string, args ...any) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, query, args...).
		Scan(&item.ID, &item.RestaurantID, &item.ProductName, &item.Price, &item.IsAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET product_name = $1, price = $2, is_available = $3
		WHERE id = $4`,
		item.ProductName, item.Price, item.IsAvailable, item.ID)
	if err != nil {
		return uniqueOr(err, "Another menu item with name '%s' already exists for this restaurant.", item.ProductName)
	}
	return nil
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete menu item: %w", err)
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateRider(ctx context.Context, rider *domain.Rider) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO riders (name, phone_number, vehicle_details, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		rider.Name, rider.PhoneNumber, rider.VehicleDetails, string(rider.Status),
	).Scan(&rider.ID)
	if err != nil {
		return uniqueOr(err, "Rider with phone number '%s' already exists.", rider.PhoneNumber)
	}
	return nil
}

func (r *PostgresRepository) ListRiders(ctx context.Context) ([]domain.Rider, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, phone_number, COALESCE(vehicle_details, ''), status
		FROM riders
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list riders: %w", err)
	}
	defer rows.Close()

	riders := make([]domain.Rider, 0)
	for rows.Next() {
		var rider domain.Rider
		if err := rows.Scan(&rider.ID, &rider.Name, &rider.PhoneNumber, &rider.VehicleDetails, &rider.Status); err != nil {
			return nil, fmt.Errorf("scan rider: %w", err)
		}
		riders = append(riders, rider)
	}
	return riders, rows.Err()
}

func (r *PostgresRepository) GetRider(ctx context.Context, id int64) (*domain.Rider, error) {
	return r.findRider(ctx, `
		SELECT id, name, phone_number, COALESCE(vehicle_details, ''), status
		FROM riders WHERE id = $1`, id)
}

func (r *PostgresRepository) FindRiderByPhone(ctx context.Context, phoneNumber string) (*domain.Rider, error) {
	return r.findRider(ctx, `
		SELECT id, name, phone_number, COALESCE(vehicle_details, ''), status
		FROM riders WHERE phone_number = $1`, phoneNumber)
}

func (r *PostgresRepository) findRider(ctx context.Context, query string, arg any) (*domain.Rider, error) {
	var rider domain.Rider
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&rider.ID, &rider.Name, &rider.PhoneNumber, &rider.VehicleDetails, &rider.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	return &rider, nil
}

func (r *PostgresRepository) UpdateRider(ctx context.Context, rider *domain.Rider) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE riders
		SET name = $1, phone_number = $2, vehicle_details = $3, status = $4
		WHERE id = $5`,
		rider.Name, rider.PhoneNumber, rider.VehicleDetails, string(rider.Status), rider.ID)
	if err != nil {
		return uniqueOr(err, "Phone number '%s' is already in use by another rider.", rider.PhoneNumber)
	}
	return nil
}

func (r *PostgresRepository) DeleteRider(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM riders WHERE id = $1", id)
	if err != nil {
		return 0, fmt.Errorf("delete rider: %w", err)
	}
	return result.RowsAffected()
}
