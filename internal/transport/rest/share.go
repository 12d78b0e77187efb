package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
	"github.com/heartmarshall/gameitems-backend/internal/service/share"
)

// shareService defines the share operations needed by ShareHandler.
type shareService interface {
	Get(ctx context.Context, listID uuid.UUID) (*domain.ListShareToken, error)
	Share(ctx context.Context, input share.ShareInput) (*domain.ListShareToken, error)
	Revoke(ctx context.Context, listID uuid.UUID) error
	Resolve(ctx context.Context, token string) (*domain.ListDetail, error)
}

// ShareHandler serves list sharing endpoints and the anonymous shared view.
type ShareHandler struct {
	svc shareService
	log *slog.Logger
}

// NewShareHandler creates a ShareHandler.
func NewShareHandler(svc shareService, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{svc: svc, log: logger.With("handler", "share")}
}

type shareRequest struct {
	Rotate bool `json:"rotate"`
}

// Get handles GET /v1/lists/{listId}/share.
func (h *ShareHandler) Get(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	tok, err := h.svc.Get(r.Context(), listID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toShareResponse(tok))
}

// Share handles POST /v1/lists/{listId}/share.
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	var req shareRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tok, err := h.svc.Share(r.Context(), share.ShareInput{ListID: listID, Rotate: req.Rotate})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toShareResponse(tok))
}

// Revoke handles DELETE /v1/lists/{listId}/share.
func (h *ShareHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	if err := h.svc.Revoke(r.Context(), listID); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Shared handles GET /v1/shared/{token}. No authentication is required.
func (h *ShareHandler) Shared(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Resolve(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListDetailResponse(detail))
}
