package report

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dentalstore-be/internal/logger"

	"go.uber.org/zap"
)

// Repository aggregates existing order and product records. Read-only,
// no stored state of its own.
type Repository interface {
	SalesSummary(ctx context.Context, f Filters) (total float64, orders int, err error)
	SalesByCategory(ctx context.Context, f Filters) ([]CategorySales, error)
	SalesByMonth(ctx context.Context, f Filters) ([]MonthlySales, error)
	TopProducts(ctx context.Context, f Filters, limit int) ([]TopProduct, error)
	ProductStats(ctx context.Context) (ProductStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// filterClause builds the shared WHERE clause over order_items joined
// to orders and products.
func filterClause(f Filters) (string, []interface{}) {
	where := []string{}
	args := []interface{}{}

	if f.StartDate != nil {
		where = append(where, fmt.Sprintf("o.created_at >= $%d", len(args)+1))
		args = append(args, *f.StartDate)
	}
	if f.EndDate != nil {
		where = append(where, fmt.Sprintf("o.created_at <= $%d", len(args)+1))
		args = append(args, *f.EndDate)
	}
	if f.Category != nil && *f.Category != "" {
		where = append(where, fmt.Sprintf("p.category = $%d", len(args)+1))
		args = append(args, *f.Category)
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

const salesJoin = `
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id`

func (r *repository) SalesSummary(ctx context.Context, f Filters) (float64, int, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SalesSummary"),
	)

	where, args := filterClause(f)

	query := `
		SELECT COALESCE(SUM(oi.unit_price * oi.quantity), 0), COUNT(DISTINCT oi.order_id)` +
		salesJoin + where

	var total float64
	var orders int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total, &orders); err != nil {
		log.Error("sales summary query failed", zap.Error(err))
		return 0, 0, err
	}

	return total, orders, nil
}

func (r *repository) SalesByCategory(ctx context.Context, f Filters) ([]CategorySales, error) {
	where, args := filterClause(f)

	query := `
		SELECT p.category, COALESCE(SUM(oi.unit_price * oi.quantity), 0)` +
		salesJoin + where + `
		GROUP BY p.category
		ORDER BY 2 DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategorySales
	for rows.Next() {
		var cs CategorySales
		if err := rows.Scan(&cs.Category, &cs.Total); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}

	return out, rows.Err()
}

func (r *repository) SalesByMonth(ctx context.Context, f Filters) ([]MonthlySales, error) {
	where, args := filterClause(f)

	query := `
		SELECT to_char(o.created_at, 'YYYY-MM'), COALESCE(SUM(oi.unit_price * oi.quantity), 0)` +
		salesJoin + where + `
		GROUP BY 1
		ORDER BY 1 ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MonthlySales
	for rows.Next() {
		var ms MonthlySales
		if err := rows.Scan(&ms.Month, &ms.Total); err != nil {
			return nil, err
		}
		out = append(out, ms)
	}

	return out, rows.Err()
}

func (r *repository) TopProducts(ctx context.Context, f Filters, limit int) ([]TopProduct, error) {
	where, args := filterClause(f)

	query := fmt.Sprintf(`
		SELECT oi.product_id, oi.product_name,
			COALESCE(SUM(oi.unit_price * oi.quantity), 0),
			COALESCE(SUM(oi.quantity), 0)`+
		salesJoin+where+`
		GROUP BY oi.product_id, oi.product_name
		ORDER BY 3 DESC
		LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TopProduct
	for rows.Next() {
		var tp TopProduct
		if err := rows.Scan(&tp.ProductID, &tp.Name, &tp.TotalSales, &tp.Quantity); err != nil {
			return nil, err
		}
		out = append(out, tp)
	}

	return out, rows.Err()
}

func (r *repository) ProductStats(ctx context.Context) (ProductStats, error) {
	var stats ProductStats

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(price * in_stock), 0),
			COUNT(*) FILTER (WHERE in_stock > 0 AND in_stock < 10),
			COUNT(*) FILTER (WHERE in_stock = 0)
		FROM products
	`).Scan(&stats.TotalProducts, &stats.TotalValue, &stats.LowStockCount, &stats.OutOfStockCount)
	if err != nil {
		return ProductStats{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT category, COUNT(*),
			COALESCE(SUM(price * in_stock), 0),
			COALESCE(AVG(price), 0)
		FROM products
		GROUP BY category
		ORDER BY category ASC
	`)
	if err != nil {
		return ProductStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var cs CategoryStats
		if err := rows.Scan(&cs.Category, &cs.Count, &cs.TotalValue, &cs.AveragePrice); err != nil {
			return ProductStats{}, err
		}
		stats.CategoryStats = append(stats.CategoryStats, cs)
	}

	return stats, rows.Err()
}
