package review

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewTestCols = []string{"id", "product_id", "user_id", "user_name", "rating", "comment", "status", "created_at", "updated_at"}

func TestRepository_ListByProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows(reviewTestCols).
		AddRow("rev-1", "prod-1", "user-1", "Ada", 5, "Great light", "approved", time.Now(), time.Now()).
		AddRow("rev-2", "prod-1", "user-2", "Grace", 3, "Decent", "pending", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM reviews WHERE product_id").
		WithArgs("prod-1").
		WillReturnRows(rows)

	reviews, err := repo.ListByProduct(context.Background(), "prod-1")
	assert.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, StatusApproved, reviews[0].Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rv := Review{
		ProductID: "prod-1",
		UserID:    "user-1",
		UserName:  "Ada",
		Rating:    5,
		Comment:   "Great light",
		// Caller-supplied status is ignored; new reviews always start pending.
		Status: StatusApproved,
	}

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(sqlmock.AnyArg(), rv.ProductID, rv.UserID, rv.UserName, rv.Rating, rv.Comment, StatusPending).
		WillReturnRows(sqlmock.NewRows(reviewTestCols).
			AddRow("rev-1", rv.ProductID, rv.UserID, rv.UserName, rv.Rating, rv.Comment, "pending", time.Now(), time.Now()))

	created, err := repo.Create(context.Background(), rv)
	assert.NoError(t, err)
	assert.Equal(t, "rev-1", created.ID)
	assert.Equal(t, StatusPending, created.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE reviews SET status").
			WithArgs(StatusApproved, "rev-1").
			WillReturnRows(sqlmock.NewRows(reviewTestCols).
				AddRow("rev-1", "prod-1", "user-1", "Ada", 5, "Great light", "approved", time.Now(), time.Now()))

		rv, err := repo.UpdateStatus(context.Background(), "rev-1", StatusApproved)
		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, rv.Status)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE reviews SET status").
			WithArgs(StatusApproved, "ghost").
			WillReturnRows(sqlmock.NewRows(reviewTestCols))

		_, err := repo.UpdateStatus(context.Background(), "ghost", StatusApproved)
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_StatsByProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Aggregates approved ratings", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"rating", "count"}).
			AddRow(5, 3).
			AddRow(4, 1)

		mock.ExpectQuery("SELECT rating, COUNT\\(\\*\\)").
			WithArgs("prod-1").
			WillReturnRows(rows)

		stats, err := repo.StatsByProduct(context.Background(), "prod-1")
		assert.NoError(t, err)
		assert.Equal(t, 4, stats.TotalReviews)
		assert.Equal(t, 4.75, stats.AverageRating)
		assert.Equal(t, 3, stats.RatingDistribution[5])
		assert.Equal(t, 1, stats.RatingDistribution[4])
	})

	t.Run("No approved reviews", func(t *testing.T) {
		mock.ExpectQuery("SELECT rating, COUNT\\(\\*\\)").
			WithArgs("prod-2").
			WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}))

		stats, err := repo.StatsByProduct(context.Background(), "prod-2")
		assert.NoError(t, err)
		assert.Zero(t, stats.TotalReviews)
		assert.Zero(t, stats.AverageRating)
		assert.Empty(t, stats.RatingDistribution)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM reviews").
			WithArgs("rev-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), "rev-1"))
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM reviews").
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), "ghost"), ErrReviewNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
