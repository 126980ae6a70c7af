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
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceRequestHandler handles customer job posting requests.
type ServiceRequestHandler struct {
	repo   ports.ServiceRequestRepository
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewServiceRequestHandler creates a service request handler.
func NewServiceRequestHandler(repo ports.ServiceRequestRepository, errors *apperrors.ErrorHandler, logger *zap.Logger) *ServiceRequestHandler {
	return &ServiceRequestHandler{repo: repo, errors: errors, logger: logger}
}

// CreateRequestRequest is the payload for posting a job. The customer id
// comes from the authenticated user, never from the payload.
type CreateRequestRequest struct {
	ID            string `json:"id,omitempty"`
	Category      string `json:"category" validate:"required,min=1,max=100"`
	Description   string `json:"description" validate:"required,min=1,max=4000"`
	ScheduledDate string `json:"scheduledDate,omitempty"`
}

// UpdateRequestRequest is the payload for a partial request update.
type UpdateRequestRequest struct {
	Category       *string `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Description    *string `json:"description,omitempty" validate:"omitempty,min=1,max=4000"`
	ProfessionalID *string `json:"professionalId,omitempty"`
	ScheduledDate  *string `json:"scheduledDate,omitempty"`
}

// StatusRequest is the payload for a status transition.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted in_progress completed cancelled"`
}

// Create handles POST /requests
func (h *ServiceRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequestRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	request := entities.ServiceRequest{
		ID:            req.ID,
		CustomerID:    user.UserID,
		Category:      req.Category,
		Description:   req.Description,
		Status:        entities.StatusPending,
		ScheduledDate: req.ScheduledDate,
	}

	created, err := h.repo.Create(r.Context(), request)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, created)
}

// Get handles GET /requests/{requestID}
func (h *ServiceRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")

	request, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, request)
}

// List handles GET /requests, filtered by customer, professional or status.
func (h *ServiceRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		requests []entities.ServiceRequest
		err      error
	)
	switch {
	case query.Get("customerId") != "":
		requests, err = h.repo.FindByCustomer(r.Context(), query.Get("customerId"))
	case query.Get("professionalId") != "":
		requests, err = h.repo.FindByProfessional(r.Context(), query.Get("professionalId"))
	case query.Get("status") != "":
		status := entities.RequestStatus(query.Get("status"))
		if !status.IsValid() {
			h.errors.Handle(w, r, apperrors.NewValidationError("unknown status "+query.Get("status")))
			return
		}
		requests, err = h.repo.FindByStatus(r.Context(), status)
	default:
		requests, err = h.repo.List(r.Context(), parseLimit(r))
	}
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, requests)
}

// Update handles PUT /requests/{requestID}
func (h *ServiceRequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")

	var req UpdateRequestRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	fields := make(map[string]interface{})
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.ProfessionalID != nil {
		fields["professionalId"] = *req.ProfessionalID
	}
	if req.ScheduledDate != nil {
		fields["scheduledDate"] = *req.ScheduledDate
	}

	updated, err := h.repo.Update(r.Context(), id, fields)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, updated)
}

// UpdateStatus handles PUT /requests/{requestID}/status
func (h *ServiceRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")

	var req StatusRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	updated, err := h.repo.UpdateStatus(r.Context(), id, entities.RequestStatus(req.Status))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /requests/{requestID}
func (h *ServiceRequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "requestID")

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
