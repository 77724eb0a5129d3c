package domain

import "time"

// Review is a user's text review of a product. DateCreated is assigned by
// the database on insert and never changes afterwards.
type Review struct {
	ID          int64
	Text        string
	DateCreated time.Time
	UserID      int64
	ProductID   int64
}

// ProductReview is a review joined with its author, as listed under a product.
// ReviewerName is nil when the referenced user row does not exist.
type ProductReview struct {
	ID           int64
	Text         string
	ReviewerID   int64
	ReviewerName *string
}

// ProductDetail is a product together with its reviews.
type ProductDetail struct {
	Product *Product
	Reviews []*ProductReview
}
