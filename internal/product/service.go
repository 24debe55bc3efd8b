package product

import (
	"context"

	"dentalstore-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, opts ListOptions) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, id string, params UpdateParams) (Product, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]Product, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) GetByID(ctx context.Context, id string) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, p Product) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	if p.Name == "" {
		return Product{}, ErrEmptyName
	}
	if !p.Category.Valid() {
		return Product{}, ErrInvalidCategory
	}
	if p.Price < 0 {
		return Product{}, ErrInvalidPrice
	}
	if p.InStock < 0 {
		return Product{}, ErrInvalidStock
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return Product{}, err
	}

	log.Info("product created", zap.String("product_id", created.ID))
	return created, nil
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (Product, error) {
	if !params.HasAnyField() {
		return Product{}, ErrNoUpdateFields
	}
	if params.Name != nil && *params.Name == "" {
		return Product{}, ErrEmptyName
	}
	if params.Category != nil && !params.Category.Valid() {
		return Product{}, ErrInvalidCategory
	}
	if params.Price != nil && *params.Price < 0 {
		return Product{}, ErrInvalidPrice
	}
	if params.InStock != nil && *params.InStock < 0 {
		return Product{}, ErrInvalidStock
	}

	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
