package transport

import (
	"net/http"

	"chocolate-catalog/internal/domain"
	"chocolate-catalog/internal/middleware"
	"chocolate-catalog/internal/repository"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateProductRequest represents the create product request payload. Every
// field must be present and non-zero.
type CreateProductRequest struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description" validate:"required"`
	ManufacturerID int64  `json:"manufacturer_id" validate:"required"`
	BatchNumber    string `json:"batch_number" validate:"required"`
}

// CreateProductResponse represents the create product response
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

// ListProductsResponse wraps the full product listing
type ListProductsResponse struct {
	Products []*domain.Product `json:"products"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// ProductHandler handles HTTP requests for product operations
type ProductHandler struct {
	productRepo repository.ProductRepository
	logger      *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productRepo repository.ProductRepository, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productRepo: productRepo,
		logger:      logger,
	}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/products", h.ListProducts)
		r.Post("/products", h.CreateProduct)
	})
}

// Health handles the health check. It has no failure path and does not touch
// the database.
func (h *ProductHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, HealthResponse{Status: "OK"})
}

// ListProducts returns every product in the catalog
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Error fetching products: "+err.Error())
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ListProductsResponse{Products: products})
}

// CreateProduct inserts a new product and returns its database-generated id
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest

	// Validate before touching the database
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Create product validation failed", zap.Error(err))

		if middleware.IsValidationError(err) {
			middleware.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
			return
		}

		// JSON decode error
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product := &domain.Product{
		Name:           req.Name,
		Description:    req.Description,
		ManufacturerID: req.ManufacturerID,
		BatchNumber:    req.BatchNumber,
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		h.logger.Error("Failed to create product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Error creating product: "+err.Error())
		return
	}

	h.logger.Info("Product created", zap.Int64("product_id", product.ProductID))
	middleware.RespondWithJSON(w, http.StatusCreated, CreateProductResponse{
		Message:   "Product created successfully",
		ProductID: product.ProductID,
	})
}
