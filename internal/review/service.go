package review

import (
	"context"

	"dentalstore-be/internal/product"
)

type Service interface {
	ListByProduct(ctx context.Context, productID string) ([]Review, error)
	Create(ctx context.Context, rv Review) (Review, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Review, error)
	Delete(ctx context.Context, id string) error
	StatsByProduct(ctx context.Context, productID string) (Stats, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) ListByProduct(ctx context.Context, productID string) ([]Review, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.ListByProduct(ctx, productID)
}

func (s *service) Create(ctx context.Context, rv Review) (Review, error) {
	if rv.Rating < 1 || rv.Rating > 5 {
		return Review{}, ErrInvalidRating
	}
	if rv.Comment == "" {
		return Review{}, ErrEmptyComment
	}
	if _, err := s.productRepo.GetByID(ctx, rv.ProductID); err != nil {
		return Review{}, err
	}
	return s.repo.Create(ctx, rv)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (Review, error) {
	if !status.Valid() {
		return Review{}, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) StatsByProduct(ctx context.Context, productID string) (Stats, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return Stats{}, err
	}
	return s.repo.StatsByProduct(ctx, productID)
}
