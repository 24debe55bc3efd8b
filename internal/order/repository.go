package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dentalstore-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, userID string, items []NewOrderItem, addr ShippingAddress) (*Order, error)
	FetchOrders(ctx context.Context, userID string, isAdmin bool) ([]*Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrder runs the whole placement inside one transaction: every
// line item's stock decrement is conditional on remaining stock, and a
// failure on any item rolls back the decrements of all earlier items.
func (r *repository) CreateOrder(
	ctx context.Context,
	userID string,
	items []NewOrderItem,
	addr ShippingAddress,
) (*Order, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("user_id", userID),
		zap.Int("item_count", len(items)),
	)

	log.Debug("starting order transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	order := &Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		ShippingAddress: addr,
		Status:          StatusPending,
	}

	for i, item := range items {
		logItem := log.With(
			zap.Int("index", i),
			zap.String("product_id", item.ProductID),
			zap.Int("quantity", item.Quantity),
		)

		// Decrement only when enough stock remains. Concurrent
		// placements racing on the same product serialize on this
		// row update, so stock cannot go negative.
		var name string
		var price float64
		err := tx.QueryRowContext(ctx, `
			UPDATE products
			SET in_stock = in_stock - $1, updated_at = NOW()
			WHERE id = $2 AND in_stock >= $1
			RETURNING name, price
		`, item.Quantity, item.ProductID).Scan(&name, &price)

		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			if probeErr := tx.QueryRowContext(ctx,
				`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`,
				item.ProductID,
			).Scan(&exists); probeErr != nil {
				logItem.Error("failed to probe product", zap.Error(probeErr))
				return nil, probeErr
			}
			if !exists {
				logItem.Warn("product not found")
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
			}
			logItem.Warn("insufficient stock")
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, item.ProductID)
		}
		if err != nil {
			logItem.Error("failed to decrement stock", zap.Error(err))
			return nil, err
		}

		order.Items = append(order.Items, OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   price,
		})
		order.TotalAmount += price * float64(item.Quantity)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			id, user_id, total_amount, status,
			ship_name, ship_street, ship_city, ship_state, ship_zip, ship_country
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at, updated_at
	`,
		order.ID, order.UserID, order.TotalAmount, order.Status,
		addr.Name, addr.Street, addr.City, addr.State, addr.ZipCode, addr.Country,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for _, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, item.ID, order.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice)
		if err != nil {
			log.Error("failed to insert order item",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return nil, err
	}

	committed = true
	log.Info("order transaction committed",
		zap.String("order_id", order.ID),
		zap.Float64("total_amount", order.TotalAmount),
	)

	return order, nil
}

const orderColumns = `id, user_id, total_amount, status,
			ship_name, ship_street, ship_city, ship_state, ship_zip, ship_country,
			created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.TotalAmount, &o.Status,
		&o.ShippingAddress.Name, &o.ShippingAddress.Street, &o.ShippingAddress.City,
		&o.ShippingAddress.State, &o.ShippingAddress.ZipCode, &o.ShippingAddress.Country,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) FetchOrders(ctx context.Context, userID string, isAdmin bool) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "FetchOrders"),
		zap.Bool("is_admin", isAdmin),
	)

	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}

	if !isAdmin {
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	var ids []string

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := r.fetchOrderItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = itemsByOrder[o.ID]
	}

	log.Info("fetch orders success", zap.Int("count", len(orders)))
	return orders, nil
}

func (r *repository) fetchOrderItems(ctx context.Context, orderIDs []string) (map[string][]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, quantity, unit_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[string][]OrderItem)
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, err
		}
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
	}

	return itemsByOrder, rows.Err()
}

func (r *repository) GetOrderByID(ctx context.Context, orderID string) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	itemsByOrder, err := r.fetchOrderItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = itemsByOrder[o.ID]

	return o, nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+orderColumns,
		status, orderID,
	)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	itemsByOrder, err := r.fetchOrderItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = itemsByOrder[o.ID]

	return o, nil
}
