package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderTestCols = []string{
	"id", "user_id", "total_amount", "status",
	"ship_name", "ship_street", "ship_city", "ship_state", "ship_zip", "ship_country",
	"created_at", "updated_at",
}

var itemTestCols = []string{"id", "order_id", "product_id", "product_name", "quantity", "unit_price"}

var testAddr = ShippingAddress{
	Name:    "Dr. Smith",
	Street:  "1 Main St",
	City:    "Springfield",
	State:   "IL",
	ZipCode: "62701",
	Country: "USA",
}

func TestRepository_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with two items", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		items := []NewOrderItem{
			{ProductID: "prod-1", Quantity: 2},
			{ProductID: "prod-2", Quantity: 1},
		}

		mock.ExpectBegin()

		mock.ExpectQuery("UPDATE products").
			WithArgs(2, "prod-1").
			WillReturnRows(sqlmock.NewRows([]string{"name", "price"}).AddRow("Curing Light", 100.0))

		mock.ExpectQuery("UPDATE products").
			WithArgs(1, "prod-2").
			WillReturnRows(sqlmock.NewRows([]string{"name", "price"}).AddRow("Gloves", 12.5))

		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(sqlmock.AnyArg(), "user-1", 212.5, StatusPending,
				testAddr.Name, testAddr.Street, testAddr.City, testAddr.State, testAddr.ZipCode, testAddr.Country).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))

		mock.ExpectExec("INSERT INTO order_items").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "prod-1", "Curing Light", 2, 100.0).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectExec("INSERT INTO order_items").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "prod-2", "Gloves", 1, 12.5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectCommit()

		order, err := repo.CreateOrder(ctx, "user-1", items, testAddr)
		assert.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, 212.5, order.TotalAmount)
		assert.Equal(t, StatusPending, order.Status)
		require.Len(t, order.Items, 2)
		assert.Equal(t, "Curing Light", order.Items[0].ProductName)
		assert.Equal(t, 100.0, order.Items[0].UnitPrice)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient stock rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		items := []NewOrderItem{
			{ProductID: "prod-1", Quantity: 1},
			{ProductID: "prod-2", Quantity: 50},
		}

		mock.ExpectBegin()

		// First item decrements fine.
		mock.ExpectQuery("UPDATE products").
			WithArgs(1, "prod-1").
			WillReturnRows(sqlmock.NewRows([]string{"name", "price"}).AddRow("Curing Light", 100.0))

		// Second hits the stock guard: no row updated, product exists.
		mock.ExpectQuery("UPDATE products").
			WithArgs(50, "prod-2").
			WillReturnRows(sqlmock.NewRows([]string{"name", "price"}))

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("prod-2").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		mock.ExpectRollback()

		order, err := repo.CreateOrder(ctx, "user-1", items, testAddr)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Contains(t, err.Error(), "prod-2")

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown product rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		items := []NewOrderItem{{ProductID: "ghost", Quantity: 1}}

		mock.ExpectBegin()

		mock.ExpectQuery("UPDATE products").
			WithArgs(1, "ghost").
			WillReturnRows(sqlmock.NewRows([]string{"name", "price"}))

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		mock.ExpectRollback()

		order, err := repo.CreateOrder(ctx, "user-1", items, testAddr)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrProductNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order insert failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		items := []NewOrderItem{{ProductID: "prod-1", Quantity: 1}}

		mock.ExpectBegin()

		mock.ExpectQuery("UPDATE products").
			WithArgs(1, "prod-1").
			WillReturnRows(sqlmock.NewRows([]string{"name", "price"}).AddRow("Curing Light", 100.0))

		mock.ExpectQuery("INSERT INTO orders").
			WillReturnError(errors.New("db down"))

		mock.ExpectRollback()

		_, err = repo.CreateOrder(ctx, "user-1", items, testAddr)
		assert.Error(t, err)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin().WillReturnError(errors.New("db down"))

		_, err = repo.CreateOrder(ctx, "user-1", []NewOrderItem{{ProductID: "prod-1", Quantity: 1}}, testAddr)
		assert.Error(t, err)
	})
}

func TestRepository_FetchOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("User sees own orders with items", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		now := time.Now()
		orderRows := sqlmock.NewRows(orderTestCols).
			AddRow("order-1", "user-1", 212.5, "pending",
				"Dr. Smith", "1 Main St", "Springfield", "IL", "62701", "USA", now, now)

		mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id").
			WithArgs("user-1").
			WillReturnRows(orderRows)

		itemRows := sqlmock.NewRows(itemTestCols).
			AddRow("item-1", "order-1", "prod-1", "Curing Light", 2, 100.0).
			AddRow("item-2", "order-1", "prod-2", "Gloves", 1, 12.5)

		mock.ExpectQuery("SELECT (.+) FROM order_items").
			WithArgs(pq.Array([]string{"order-1"})).
			WillReturnRows(itemRows)

		orders, err := repo.FetchOrders(ctx, "user-1", false)
		assert.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Len(t, orders[0].Items, 2)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Admin sees all orders", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		now := time.Now()
		orderRows := sqlmock.NewRows(orderTestCols).
			AddRow("order-1", "user-1", 212.5, "pending",
				"", "1 Main St", "Springfield", "IL", "62701", "USA", now, now).
			AddRow("order-2", "user-2", 50.0, "shipped",
				"", "2 Oak Ave", "Shelbyville", "IL", "62565", "USA", now, now)

		// No WHERE clause for admins.
		mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY created_at DESC").
			WillReturnRows(orderRows)

		mock.ExpectQuery("SELECT (.+) FROM order_items").
			WithArgs(pq.Array([]string{"order-1", "order-2"})).
			WillReturnRows(sqlmock.NewRows(itemTestCols))

		orders, err := repo.FetchOrders(ctx, "admin-1", true)
		assert.NoError(t, err)
		assert.Len(t, orders, 2)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty result skips item fetch", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM orders WHERE user_id").
			WithArgs("user-9").
			WillReturnRows(sqlmock.NewRows(orderTestCols))

		orders, err := repo.FetchOrders(ctx, "user-9", false)
		assert.NoError(t, err)
		assert.Empty(t, orders)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetOrderByID(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").
			WithArgs("order-1").
			WillReturnRows(sqlmock.NewRows(orderTestCols).
				AddRow("order-1", "user-1", 100.0, "pending",
					"", "1 Main St", "Springfield", "IL", "62701", "USA", now, now))

		mock.ExpectQuery("SELECT (.+) FROM order_items").
			WithArgs(pq.Array([]string{"order-1"})).
			WillReturnRows(sqlmock.NewRows(itemTestCols).
				AddRow("item-1", "order-1", "prod-1", "Curing Light", 1, 100.0))

		o, err := repo.GetOrderByID(ctx, "order-1")
		assert.NoError(t, err)
		assert.Equal(t, "order-1", o.ID)
		assert.Len(t, o.Items, 1)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(orderTestCols))

		_, err := repo.GetOrderByID(ctx, "ghost")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("UPDATE orders SET status").
			WithArgs(StatusShipped, "order-1").
			WillReturnRows(sqlmock.NewRows(orderTestCols).
				AddRow("order-1", "user-1", 100.0, "shipped",
					"", "1 Main St", "Springfield", "IL", "62701", "USA", now, now))

		mock.ExpectQuery("SELECT (.+) FROM order_items").
			WithArgs(pq.Array([]string{"order-1"})).
			WillReturnRows(sqlmock.NewRows(itemTestCols))

		o, err := repo.UpdateStatus(ctx, "order-1", StatusShipped)
		assert.NoError(t, err)
		assert.Equal(t, StatusShipped, o.Status)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE orders SET status").
			WithArgs(StatusShipped, "ghost").
			WillReturnRows(sqlmock.NewRows(orderTestCols))

		_, err := repo.UpdateStatus(ctx, "ghost", StatusShipped)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
