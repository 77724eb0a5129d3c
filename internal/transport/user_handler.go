package transport

import (
	"net/http"

	"product-catalog/internal/middleware"
	"product-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserRequest is the body of POST /user
type UserRequest struct {
	Name *string `json:"name" validate:"required,max=100"`
}

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(catalog service.CatalogService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/user", h.Create)
}

// Create handles user creation
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	user, err := h.catalog.CreateUser(r.Context(), *req.Name)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to create user")
		return
	}

	h.logger.Info("User created", zap.Int64("user_id", user.ID))
	middleware.RespondWithJSON(w, http.StatusOK, newUserResponse(user))
}
