package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"product-catalog/internal/domain"
)

var (
	// ErrReviewTargetNotFound means the review's user or product does not exist.
	ErrReviewTargetNotFound = errors.New("review references an unknown user or product")
)

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByProduct(ctx context.Context, productID int64) ([]*domain.ProductReview, error)
}

type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new instance of ReviewRepository
func NewReviewRepository(db *sql.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a review; id and date_created are assigned by the database
func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (text, user_id, product_id)
		VALUES ($1, $2, $3)
		RETURNING id, date_created
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		review.Text,
		review.UserID,
		review.ProductID,
	).Scan(&review.ID, &review.DateCreated)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrReviewTargetNotFound
		}
		if isInvalidValue(err) {
			return ErrInvalidValue
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	review.DateCreated = review.DateCreated.UTC()
	return nil
}

// ListByProduct returns the reviews of a product with each reviewer's name
// resolved through a left join, so a missing user yields a nil name.
func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]*domain.ProductReview, error) {
	query := `
		SELECT r.id, r.text, r.user_id, u.name
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.id
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*domain.ProductReview{}
	for rows.Next() {
		review := &domain.ProductReview{}
		var reviewerName sql.NullString

		if err := rows.Scan(&review.ID, &review.Text, &review.ReviewerID, &reviewerName); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}

		if reviewerName.Valid {
			name := reviewerName.String
			review.ReviewerName = &name
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}
