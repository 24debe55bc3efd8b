package review

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Review struct {
	ID        string
	ProductID string
	UserID    string
	UserName  string
	Rating    int
	Comment   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Stats summarizes approved reviews for one product.
type Stats struct {
	AverageRating      float64
	TotalReviews       int
	RatingDistribution map[int]int
}
