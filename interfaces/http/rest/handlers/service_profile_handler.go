package handlers

import (
	"net/http"

	"fitit-backend/application/ports"
	"fitit-backend/domain/entities"
	"fitit-backend/pkg/common"
	apperrors "fitit-backend/pkg/errors"
	"fitit-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceProfileHandler handles professional listing requests.
type ServiceProfileHandler struct {
	repo   ports.ServiceProfileRepository
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewServiceProfileHandler creates a service profile handler.
func NewServiceProfileHandler(repo ports.ServiceProfileRepository, errors *apperrors.ErrorHandler, logger *zap.Logger) *ServiceProfileHandler {
	return &ServiceProfileHandler{repo: repo, errors: errors, logger: logger}
}

// CreateProfileRequest is the payload for creating a professional listing.
type CreateProfileRequest struct {
	ID         string   `json:"id,omitempty"`
	UserID     string   `json:"userId,omitempty"`
	Name       string   `json:"name" validate:"required,min=1,max=200"`
	Profession string   `json:"profession" validate:"required,min=1,max=100"`
	Bio        string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	HourlyRate float64  `json:"hourlyRate" validate:"required,gt=0"`
	Location   string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Skills     []string `json:"skills,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Available  bool     `json:"available"`
}

// UpdateProfileRequest is the payload for a partial listing update.
type UpdateProfileRequest struct {
	Name       *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Profession *string   `json:"profession,omitempty" validate:"omitempty,min=1,max=100"`
	Bio        *string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	HourlyRate *float64  `json:"hourlyRate,omitempty" validate:"omitempty,gt=0"`
	Rating     *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Location   *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Skills     *[]string `json:"skills,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Available  *bool     `json:"available,omitempty"`
}

// Create handles POST /professionals
func (h *ServiceProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
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

	profile := entities.ServiceProfile{
		ID:         req.ID,
		UserID:     req.UserID,
		Name:       req.Name,
		Profession: req.Profession,
		Bio:        req.Bio,
		HourlyRate: req.HourlyRate,
		Location:   req.Location,
		Skills:     req.Skills,
		Available:  req.Available,
	}

	created, err := h.repo.Create(r.Context(), profile)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, created)
}

// Get handles GET /professionals/{profileID}
func (h *ServiceProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "profileID")

	profile, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, profile)
}

// List handles GET /professionals, optionally filtered by profession or
// availability.
func (h *ServiceProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	if profession := r.URL.Query().Get("profession"); profession != "" {
		profiles, err := h.repo.FindByProfession(r.Context(), profession)
		if err != nil {
			h.errors.Handle(w, r, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, profiles)
		return
	}

	if r.URL.Query().Get("available") == "true" {
		profiles, err := h.repo.FindAvailable(r.Context())
		if err != nil {
			h.errors.Handle(w, r, err)
			return
		}
		common.RespondJSON(w, http.StatusOK, profiles)
		return
	}

	profiles, err := h.repo.List(r.Context(), parseLimit(r))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, profiles)
}

// Update handles PUT /professionals/{profileID}
func (h *ServiceProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "profileID")

	var req UpdateProfileRequest
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
	if req.Profession != nil {
		fields["profession"] = *req.Profession
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.HourlyRate != nil {
		fields["hourlyRate"] = *req.HourlyRate
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Skills != nil {
		fields["skills"] = *req.Skills
	}
	if req.Available != nil {
		fields["available"] = *req.Available
	}

	updated, err := h.repo.Update(r.Context(), id, fields)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /professionals/{profileID}
func (h *ServiceProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "profileID")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
