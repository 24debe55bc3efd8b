package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterClause(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	cat := "Equipment"

	t.Run("Empty", func(t *testing.T) {
		where, args := filterClause(Filters{})
		assert.Equal(t, "", where)
		assert.Empty(t, args)
	})

	t.Run("All filters", func(t *testing.T) {
		where, args := filterClause(Filters{StartDate: &start, EndDate: &end, Category: &cat})
		assert.Equal(t, " WHERE o.created_at >= $1 AND o.created_at <= $2 AND p.category = $3", where)
		assert.Equal(t, []interface{}{start, end, cat}, args)
	})

	t.Run("Category only", func(t *testing.T) {
		where, args := filterClause(Filters{Category: &cat})
		assert.Equal(t, " WHERE p.category = $1", where)
		assert.Len(t, args, 1)
	})

	t.Run("Empty category string ignored", func(t *testing.T) {
		empty := ""
		where, args := filterClause(Filters{Category: &empty})
		assert.Equal(t, "", where)
		assert.Empty(t, args)
	})
}

func TestRepository_SalesSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM").
			WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow(1250.5, 12))

		total, orders, err := repo.SalesSummary(context.Background(), Filters{})
		assert.NoError(t, err)
		assert.Equal(t, 1250.5, total)
		assert.Equal(t, 12, orders)
	})

	t.Run("With date filter", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT COALESCE\\(SUM(.+)WHERE o.created_at >= \\$1").
			WithArgs(start).
			WillReturnRows(sqlmock.NewRows([]string{"sum", "count"}).AddRow(0.0, 0))

		total, orders, err := repo.SalesSummary(context.Background(), Filters{StartDate: &start})
		assert.NoError(t, err)
		assert.Zero(t, total)
		assert.Zero(t, orders)
	})

	t.Run("DB error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM").
			WillReturnError(errors.New("db down"))

		_, _, err := repo.SalesSummary(context.Background(), Filters{})
		assert.Error(t, err)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SalesByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"category", "total"}).
		AddRow("Equipment", 900.0).
		AddRow("Consumables", 100.0)

	mock.ExpectQuery("SELECT p.category(.+)GROUP BY p.category").
		WillReturnRows(rows)

	out, err := repo.SalesByCategory(context.Background(), Filters{})
	assert.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Equipment", out[0].Category)
	assert.Equal(t, 900.0, out[0].Total)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SalesByMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"month", "total"}).
		AddRow("2024-01", 500.0).
		AddRow("2024-02", 750.5)

	mock.ExpectQuery("SELECT to_char\\(o.created_at, 'YYYY-MM'\\)").
		WillReturnRows(rows)

	out, err := repo.SalesByMonth(context.Background(), Filters{})
	assert.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-01", out[0].Month)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TopProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"product_id", "product_name", "sales", "quantity"}).
		AddRow("prod-1", "Curing Light", 900.0, 3).
		AddRow("prod-2", "Gloves", 100.0, 8)

	mock.ExpectQuery("SELECT oi.product_id, oi.product_name(.+)LIMIT \\$1").
		WithArgs(5).
		WillReturnRows(rows)

	out, err := repo.TopProducts(context.Background(), Filters{}, 5)
	assert.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "prod-1", out[0].ProductID)
	assert.Equal(t, 3, out[0].Quantity)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ProductStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\),").
		WillReturnRows(sqlmock.NewRows([]string{"count", "value", "low", "out"}).
			AddRow(42, 12345.67, 3, 2))

	catRows := sqlmock.NewRows([]string{"category", "count", "value", "avg"}).
		AddRow("Consumables", 20, 2000.0, 15.5).
		AddRow("Equipment", 22, 10345.67, 470.25)

	mock.ExpectQuery("SELECT category, COUNT\\(\\*\\)").
		WillReturnRows(catRows)

	stats, err := repo.ProductStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, stats.TotalProducts)
	assert.Equal(t, 3, stats.LowStockCount)
	assert.Equal(t, 2, stats.OutOfStockCount)
	require.Len(t, stats.CategoryStats, 2)
	assert.Equal(t, "Consumables", stats.CategoryStats[0].Category)

	require.NoError(t, mock.ExpectationsWereMet())
}
