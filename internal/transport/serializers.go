package transport

import (
	"time"

	"product-catalog/internal/domain"
)

// ProductResponse is the short product form used by list, create, update and
// delete. The quantity field is named "qty" here.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
}

// ProductDetailResponse is the full product form returned by GET /product/{id}.
// Existing clients read "quantity" here, so the name differs from the short form.
// Reviews is null, not [], when the product has none.
type ProductDetailResponse struct {
	ID          int64                   `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Price       float64                 `json:"price"`
	Quantity    int                     `json:"quantity"`
	Reviews     []ProductReviewResponse `json:"reviews"`
}

// ProductReviewResponse is a review as nested in the full product form.
type ProductReviewResponse struct {
	ID           int64   `json:"id"`
	Review       string  `json:"review"`
	ReviewerID   int64   `json:"reviewerId"`
	ReviewerName *string `json:"reviewerName"`
}

// ReviewResponse is returned when a review is created.
type ReviewResponse struct {
	Text        string    `json:"text"`
	DateCreated time.Time `json:"date_created"`
}

// UserResponse is returned when a user is created.
type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Qty:         p.Qty,
	}
}

func newProductResponses(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}
	return out
}

func newProductDetailResponse(detail *domain.ProductDetail) ProductDetailResponse {
	p := detail.Product
	resp := ProductDetailResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Qty,
	}

	for _, r := range detail.Reviews {
		resp.Reviews = append(resp.Reviews, ProductReviewResponse{
			ID:           r.ID,
			Review:       r.Text,
			ReviewerID:   r.ReviewerID,
			ReviewerName: r.ReviewerName,
		})
	}

	return resp
}

func newReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		Text:        r.Text,
		DateCreated: r.DateCreated.UTC(),
	}
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:   u.ID,
		Name: u.Name,
	}
}
