package transport

import (
	"encoding/json"
	"testing"
	"time"

	"product-catalog/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestNewProductDetailResponse(t *testing.T) {
	product := &domain.Product{ID: 3, Name: "Widget", Description: "d", Price: 2.5, Qty: 4}

	t.Run("MissingReviewerIsNull", func(t *testing.T) {
		detail := &domain.ProductDetail{
			Product: product,
			Reviews: []*domain.ProductReview{{ID: 7, Text: "orphaned", ReviewerID: 99}},
		}

		body, err := json.Marshal(newProductDetailResponse(detail))
		require.NoError(t, err)
		require.JSONEq(t, `{
			"id": 3,
			"name": "Widget",
			"description": "d",
			"price": 2.5,
			"quantity": 4,
			"reviews": [{"id": 7, "review": "orphaned", "reviewerId": 99, "reviewerName": null}]
		}`, string(body))
	})

	t.Run("NoReviewsIsNull", func(t *testing.T) {
		for _, reviews := range [][]*domain.ProductReview{nil, {}} {
			body, err := json.Marshal(newProductDetailResponse(&domain.ProductDetail{Product: product, Reviews: reviews}))
			require.NoError(t, err)
			require.Contains(t, string(body), `"reviews":null`)
		}
	})
}

func TestNewReviewResponse_IsUTC(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	body, err := json.Marshal(newReviewResponse(&domain.Review{Text: "nice", DateCreated: created}))
	require.NoError(t, err)
	require.JSONEq(t, `{"text":"nice","date_created":"2024-03-01T11:00:00Z"}`, string(body))
}
