package handlers

import (
	"net/http"
	"strconv"

	"fitit-backend/application/ports"
	"fitit-backend/domain/entities"
	"fitit-backend/pkg/common"
	apperrors "fitit-backend/pkg/errors"
	"fitit-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// ProductHandler handles product catalog requests.
type ProductHandler struct {
	repo   ports.ProductRepository
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewProductHandler creates a product handler.
func NewProductHandler(repo ports.ProductRepository, errors *apperrors.ErrorHandler, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{repo: repo, errors: errors, logger: logger}
}

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    string  `json:"category" validate:"required,min=1,max=100"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Rating      float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ImageURL    string  `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
	InStock     bool    `json:"inStock"`
}

// UpdateProductRequest is the payload for a partial product update.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ImageURL    *string  `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
	InStock     *bool    `json:"inStock,omitempty"`
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	product := entities.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Rating:      req.Rating,
		ImageURL:    req.ImageURL,
		InStock:     req.InStock,
	}

	created, err := h.repo.Create(r.Context(), product)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, created)
}

// Get handles GET /products/{productID}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, product)
}

// List handles GET /products, optionally filtered by exact category.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		products, err := h.repo.FindByCategory(r.Context(), category)
		if err != nil {
			h.errors.Handle(w, r, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, products)
		return
	}

	products, err := h.repo.List(r.Context(), parseLimit(r))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, products)
}

// Update handles PUT /products/{productID}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	var req UpdateProductRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.ImageURL != nil {
		fields["imageUrl"] = *req.ImageURL
	}
	if req.InStock != nil {
		fields["inStock"] = *req.InStock
	}

	updated, err := h.repo.Update(r.Context(), id, fields)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /products/{productID}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseLimit reads the optional limit query parameter shared by list
// endpoints.
func parseLimit(r *http.Request) int32 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || limit < 0 {
		return 0
	}
	return int32(limit)
}
