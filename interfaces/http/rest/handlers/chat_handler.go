package handlers

import (
	"net/http"
	"time"

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

// chatMessageTTL is how long messages stay queryable before DynamoDB
// expires them.
const chatMessageTTL = 30 * 24 * time.Hour

// ChatHandler handles chat session requests.
type ChatHandler struct {
	repo   ports.ChatRepository
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(repo ports.ChatRepository, errors *apperrors.ErrorHandler, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{repo: repo, errors: errors, logger: logger}
}

// PostMessageRequest is the payload for appending a message to a session.
type PostMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=8000"`
	Role    string `json:"role,omitempty" validate:"omitempty,oneof=user assistant"`
}

// PostMessage handles POST /chat/{sessionID}/messages
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req PostMessageRequest
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

	role := req.Role
	if role == "" {
		role = "user"
	}

	message := entities.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		UserID:    user.UserID,
		Role:      role,
		Content:   req.Content,
		Timestamp: utils.NowRFC3339(),
		TTL:       time.Now().Add(chatMessageTTL).Unix(),
	}

	created, err := h.repo.Create(r.Context(), message)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, created)
}

// ListMessages handles GET /chat/{sessionID}/messages
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.repo.FindBySession(r.Context(), sessionID)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, messages)
}

// DeleteMessage handles DELETE /chat/{sessionID}/messages/{messageID}
func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	if err := h.repo.Delete(r.Context(), messageID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
