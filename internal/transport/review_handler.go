package transport

import (
	"net/http"

	"product-catalog/internal/middleware"
	"product-catalog/internal/repository"
	"product-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReviewRequest is the body of POST /review/product/{pid}/user/{uid}
type ReviewRequest struct {
	Text *string `json:"text" validate:"required,max=100"`
}

// ReviewHandler handles HTTP requests for review operations
type ReviewHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(catalog service.CatalogService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers all review routes
func (h *ReviewHandler) RegisterRoutes(r chi.Router) {
	r.Post("/review/product/{pid}/user/{uid}", h.Create)
}

// Create handles posting a review by a user for a product
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "pid", repository.ErrReviewTargetNotFound)
	if !ok {
		return
	}

	userID, ok := pathID(w, r, "uid", repository.ErrReviewTargetNotFound)
	if !ok {
		return
	}

	var req ReviewRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	review, err := h.catalog.CreateReview(r.Context(), *req.Text, userID, productID)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to create review")
		return
	}

	h.logger.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("product_id", productID),
		zap.Int64("user_id", userID),
	)
	middleware.RespondWithJSON(w, http.StatusOK, newReviewResponse(review))
}
