package review

import (
	"context"
	"database/sql"
	"errors"

	"dentalstore-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	ListByProduct(ctx context.Context, productID string) ([]Review, error)
	Create(ctx context.Context, rv Review) (Review, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Review, error)
	Delete(ctx context.Context, id string) error
	StatsByProduct(ctx context.Context, productID string) (Stats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const reviewColumns = `id, product_id, user_id, user_name, rating, comment, status, created_at, updated_at`

func scanReview(row interface{ Scan(...any) error }) (Review, error) {
	var rv Review
	err := row.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.UserName,
		&rv.Rating, &rv.Comment, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}

func (r *repository) ListByProduct(ctx context.Context, productID string) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}

func (r *repository) Create(ctx context.Context, rv Review) (Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateReview"),
		zap.String("product_id", rv.ProductID),
	)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (id, product_id, user_id, user_name, rating, comment, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+reviewColumns,
		uuid.New().String(), rv.ProductID, rv.UserID, rv.UserName, rv.Rating, rv.Comment, StatusPending,
	)

	created, err := scanReview(row)
	if err != nil {
		log.Error("CreateReview DB query failed", zap.Error(err))
		return Review{}, err
	}

	return created, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status) (Review, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE reviews SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+reviewColumns,
		status, id,
	)

	rv, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Review{}, ErrReviewNotFound
	}
	return rv, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *repository) StatsByProduct(ctx context.Context, productID string) (Stats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE product_id = $1 AND status = 'approved'
		GROUP BY rating
	`, productID)
	if err != nil {
		return Stats{}, err
	}
	defer rows.Close()

	stats := Stats{RatingDistribution: map[int]int{}}
	sum := 0

	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return Stats{}, err
		}
		stats.RatingDistribution[rating] = count
		stats.TotalReviews += count
		sum += rating * count
	}
	if err := rows.Err(); err != nil {
		return Stats{}, err
	}

	if stats.TotalReviews > 0 {
		stats.AverageRating = float64(sum) / float64(stats.TotalReviews)
	}

	return stats, nil
}
