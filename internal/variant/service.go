package variant

import (
	"context"

	"dentalstore-be/internal/product"
)

type Service interface {
	ListByProduct(ctx context.Context, productID string) ([]Variant, error)
	Create(ctx context.Context, v Variant) (Variant, error)
	Update(ctx context.Context, id string, params UpdateParams) (Variant, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) ListByProduct(ctx context.Context, productID string) ([]Variant, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.ListByProduct(ctx, productID)
}

func (s *service) Create(ctx context.Context, v Variant) (Variant, error) {
	if v.Name == "" {
		return Variant{}, ErrEmptyName
	}
	if v.Price < 0 {
		return Variant{}, ErrInvalidPrice
	}
	if v.Stock < 0 {
		return Variant{}, ErrInvalidStock
	}

	// variants must hang off an existing product
	if _, err := s.productRepo.GetByID(ctx, v.ProductID); err != nil {
		return Variant{}, err
	}

	return s.repo.Create(ctx, v)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (Variant, error) {
	if params.Name != nil && *params.Name == "" {
		return Variant{}, ErrEmptyName
	}
	if params.Price != nil && *params.Price < 0 {
		return Variant{}, ErrInvalidPrice
	}
	if params.Stock != nil && *params.Stock < 0 {
		return Variant{}, ErrInvalidStock
	}
	return s.repo.Update(ctx, id, params)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
