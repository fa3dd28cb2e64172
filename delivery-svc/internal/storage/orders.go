package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"foodndeliv/delivery-svc/internal/domain"
)

const orderViewQuery = `
	SELECT o.id, o.customer_id, o.restaurant_id, o.state, o.total_price, o.created_at,
	       c.name, c.email, c.state,
	       r.name, COALESCE(r.address, ''), r.state
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	JOIN restaurants r ON r.id = o.restaurant_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (domain.OrderView, error) {
	var v domain.OrderView
	err := row.Scan(
		&v.Order.ID, &v.Order.CustomerID, &v.Order.RestaurantID, &v.Order.State, &v.Order.TotalPrice, &v.Order.CreatedAt,
		&v.Customer.Name, &v.Customer.Email, &v.Customer.State,
		&v.Restaurant.Name, &v.Restaurant.Address, &v.Restaurant.State,
	)
	v.Customer.ID = v.Order.CustomerID
	v.Restaurant.ID = v.Order.RestaurantID
	return v, err
}

// CreateOrder inserts the order row and its lines in one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, restaurant_id, state, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		order.CustomerID, order.RestaurantID, string(order.State), order.TotalPrice,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		line.OrderID = order.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_lines (order_id, product_name, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			order.ID, line.ProductName, line.Quantity, line.Price,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.OrderView, error) {
	rows, err := r.DB.QueryContext(ctx, orderViewQuery+" ORDER BY o.id")
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	views := make([]domain.OrderView, 0)
	index := make(map[int64]int)
	for rows.Next() {
		v, err := scanOrderView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		v.Order.Lines = make([]domain.OrderLine, 0)
		index[v.Order.ID] = len(views)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return views, nil
	}

	lines, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, product_name, quantity, price
		FROM order_lines
		ORDER BY order_id, id`)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer lines.Close()

	for lines.Next() {
		var line domain.OrderLine
		if err := lines.Scan(&line.ID, &line.OrderID, &line.ProductName, &line.Quantity, &line.Price); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		if i, ok := index[line.OrderID]; ok {
			views[i].Order.Lines = append(views[i].Order.Lines, line)
		}
	}
	return views, lines.Err()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int64) (*domain.OrderView, error) {
	v, err := scanOrderView(r.DB.QueryRowContext(ctx, orderViewQuery+" WHERE o.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, product_name, quantity, price
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get order lines: %w", err)
	}
	defer rows.Close()

	v.Order.Lines = make([]domain.OrderLine, 0)
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.ProductName, &line.Quantity, &line.Price); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		v.Order.Lines = append(v.Order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &v, nil
}
