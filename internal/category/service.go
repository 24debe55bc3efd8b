package category

import (
	"context"

	"dentalstore-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for admin-managed categories.
type Service interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, name, description string) (Category, error)
	Update(ctx context.Context, id string, params UpdateParams) (Category, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListCategories"),
	)

	categories, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list categories", zap.Error(err))
		return nil, err
	}

	log.Info("ListCategories success", zap.Int("count", len(categories)))
	return categories, nil
}

func (s *service) Create(ctx context.Context, name, description string) (Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddCategory"),
		zap.String("name", name),
	)

	if name == "" {
		log.Warn("AddCategory validation failed: empty name")
		return Category{}, ErrEmptyName
	}

	c, err := s.repo.Create(ctx, name, description)
	if err != nil {
		log.Error("failed to add category", zap.Error(err))
		return Category{}, err
	}

	log.Info("AddCategory success", zap.String("category_id", c.ID))
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (Category, error) {
	if params.Name != nil && *params.Name == "" {
		return Category{}, ErrEmptyName
	}
	if params.Name == nil && params.Description == nil {
		return s.repo.Update(ctx, id, UpdateParams{})
	}
	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
