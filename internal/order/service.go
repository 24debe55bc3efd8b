package order

import (
	"context"
	"errors"
	"fmt"

	"dentalstore-be/internal/logger"
	"dentalstore-be/internal/metrics"
	"dentalstore-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, items []NewOrderItem, addr ShippingAddress) (*Order, error)
	GetOrders(ctx context.Context) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID string) (*Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PlaceOrder prices the requested items against current catalog prices,
// decrements stock and persists the order, all atomically. The recorded
// total and unit prices are a point-in-time snapshot.
func (s *service) PlaceOrder(ctx context.Context, items []NewOrderItem, addr ShippingAddress) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Int("item_count", len(items)),
	)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not authenticated")
	}

	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidQuantity, item.ProductID)
		}
	}
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.ZipCode == "" || addr.Country == "" {
		return nil, ErrIncompleteAddress
	}

	order, err := s.repo.CreateOrder(ctx, userID, items, addr)
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			metrics.StockRejected.Inc()
		}
		log.Warn("order placement failed", zap.Error(err))
		return nil, err
	}

	metrics.OrdersPlaced.Inc()
	log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total_amount", order.TotalAmount),
	)

	return order, nil
}

func (s *service) GetOrders(ctx context.Context) ([]*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not authenticated")
	}
	isAdmin := utils.GetUserRoleFromContext(ctx) == "admin"

	return s.repo.FetchOrders(ctx, userID, isAdmin)
}

// GetOrderDetail is owner-scoped: a non-admin asking for someone else's
// order gets a not-found, matching the storefront's owner-scoped query.
func (s *service) GetOrderDetail(ctx context.Context, orderID string) (*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not authenticated")
	}
	isAdmin := utils.GetUserRoleFromContext(ctx) == "admin"

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && order.UserID != userID {
		return nil, ErrOrderNotFound
	}

	return order, nil
}

// UpdateOrderStatus validates the status against the enumerated set.
// No transition ordering is enforced: any valid status may overwrite
// any other.
func (s *service) UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}
