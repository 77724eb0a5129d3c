package transport

import (
	"net/http"

	"product-catalog/internal/middleware"
	"product-catalog/internal/repository"
	"product-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductRequest is the body of POST /product and PUT /product/{id}. Fields are
// pointers so that presence, not value, is what gets validated.
type ProductRequest struct {
	Name        *string  `json:"name" validate:"required,max=100"`
	Description *string  `json:"description" validate:"required,max=200"`
	Price       *float64 `json:"price" validate:"required"`
	Qty         *int     `json:"qty" validate:"required,min=-2147483648,max=2147483647"`
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	catalog service.CatalogService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalog service.CatalogService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/product", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles product creation
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), *req.Name, *req.Description, *req.Price, *req.Qty)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to create product")
		return
	}

	h.logger.Info("Product created", zap.Int64("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, newProductResponse(product))
}

// List handles listing every product
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, newProductResponses(products))
}

// Get handles fetching a single product with its reviews
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", repository.ErrProductNotFound)
	if !ok {
		return
	}

	detail, err := h.catalog.GetProductWithReviews(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to get product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, newProductDetailResponse(detail))
}

// Update handles overwriting a product
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", repository.ErrProductNotFound)
	if !ok {
		return
	}

	var req ProductRequest
	if !decodeRequest(w, r, h.logger, &req) {
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, *req.Name, *req.Description, *req.Price, *req.Qty)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to update product")
		return
	}

	h.logger.Info("Product updated", zap.Int64("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, newProductResponse(product))
}

// Delete handles product removal and echoes the deleted product
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", repository.ErrProductNotFound)
	if !ok {
		return
	}

	product, err := h.catalog.DeleteProduct(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, h.logger, err, "failed to delete product")
		return
	}

	h.logger.Info("Product deleted", zap.Int64("product_id", product.ID))
	middleware.RespondWithJSON(w, http.StatusOK, newProductResponse(product))
}
