package report

import (
	"context"
	"time"

	"dentalstore-be/internal/logger"
	"dentalstore-be/internal/metrics"

	"go.uber.org/zap"
)

// topProductLimit is the N of the dashboard's top-product ranking.
const topProductLimit = 5

type Service interface {
	SalesReport(ctx context.Context, f Filters) (*SalesReport, error)
	ProductStats(ctx context.Context) (*ProductStats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SalesReport(ctx context.Context, f Filters) (*SalesReport, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SalesReport"),
	)

	timer := metrics.StartTimer()

	total, orders, err := s.repo.SalesSummary(ctx, f)
	if err != nil {
		log.Error("failed to compute sales summary", zap.Error(err))
		return nil, err
	}

	byCategory, err := s.repo.SalesByCategory(ctx, f)
	if err != nil {
		log.Error("failed to compute sales by category", zap.Error(err))
		return nil, err
	}

	// percentage of the grand total; a zero grand total leaves every
	// slice at 0 rather than dividing by zero
	for i := range byCategory {
		if total > 0 {
			byCategory[i].Percentage = byCategory[i].Total / total * 100
		}
	}

	byMonth, err := s.repo.SalesByMonth(ctx, f)
	if err != nil {
		log.Error("failed to compute sales by month", zap.Error(err))
		return nil, err
	}

	topProducts, err := s.repo.TopProducts(ctx, f, topProductLimit)
	if err != nil {
		log.Error("failed to compute top products", zap.Error(err))
		return nil, err
	}

	report := &SalesReport{
		TotalSales:      total,
		TotalOrders:     orders,
		SalesByCategory: byCategory,
		SalesByMonth:    byMonth,
		TopProducts:     topProducts,
	}
	if orders > 0 {
		report.AverageOrderValue = total / float64(orders)
	}

	log.Info("sales report computed",
		zap.Float64("total_sales", total),
		zap.Int("total_orders", orders),
		zap.Duration("duration", timer.Duration()),
	)

	return report, nil
}

func (s *service) ProductStats(ctx context.Context) (*ProductStats, error) {
	stats, err := s.repo.ProductStats(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to compute product stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

// EndOfDay widens a date-only bound to the end of that day so the
// range stays inclusive on both ends.
func EndOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
