package handlers

import (
	"net/http"

	"fitit-backend/application/ports"
	"fitit-backend/domain/entities"
	"fitit-backend/pkg/auth"
	"fitit-backend/pkg/common"
	apperrors "fitit-backend/pkg/errors"
	"fitit-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler handles account requests.
type UserHandler struct {
	repo   ports.UserRepository
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewUserHandler creates a user handler.
func NewUserHandler(repo ports.UserRepository, errors *apperrors.ErrorHandler, logger *zap.Logger) *UserHandler {
	return &UserHandler{repo: repo, errors: errors, logger: logger}
}

// RegisterUserRequest is the payload for registering an account. The id is
// the identity provider's subject for the authenticated caller.
type RegisterUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=customer professional"`
	Phone string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// UpdateUserRequest is the payload for a partial account update.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	claims, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	user := entities.User{
		ID:    claims.UserID,
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
		Phone: req.Phone,
	}

	created, err := h.repo.Create(r.Context(), user)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, created)
}

// Get handles GET /users/{userID}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	user, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, user)
}

// Me handles GET /users/me for the authenticated caller.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	user, err := h.repo.GetByID(r.Context(), claims.UserID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, user)
}

// Update handles PUT /users/{userID}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	var req UpdateUserRequest
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
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}

	updated, err := h.repo.Update(r.Context(), id, fields)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /users/{userID}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userID")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
