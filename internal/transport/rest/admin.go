package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// moderationService defines the moderation operations needed by AdminHandler.
type moderationService interface {
	ListChanges(ctx context.Context, filter *string) ([]domain.ListChange, error)
	Approve(ctx context.Context, changeID, reviewerID uuid.UUID) (*domain.ListChange, error)
	Reject(ctx context.Context, changeID, reviewerID uuid.UUID) (*domain.ListChange, error)
}

// AdminHandler serves the moderation queue. Routes are mounted behind
// middleware.AdminOnly.
type AdminHandler struct {
	moderation moderationService
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(moderation moderationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		log:        logger.With("handler", "admin"),
	}
}

// Changes lists changes filtered by status.
// GET /v1/admin/changes?status=pending|approved|rejected|all
func (h *AdminHandler) Changes(w http.ResponseWriter, r *http.Request) {
	var filter *string
	if r.URL.Query().Has("status") {
		v := r.URL.Query().Get("status")
		filter = &v
	}

	changes, err := h.moderation.ListChanges(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]changeResponse, 0, len(changes))
	for i := range changes {
		out = append(out, toChangeResponse(&changes[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Approve applies a pending change.
// POST /v1/admin/changes/{changeId}/approve
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.moderation.Approve)
}

// Reject closes a pending change without applying it.
// POST /v1/admin/changes/{changeId}/reject
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.moderation.Reject)
}

type reviewFunc func(ctx context.Context, changeID, reviewerID uuid.UUID) (*domain.ListChange, error)

func (h *AdminHandler) review(w http.ResponseWriter, r *http.Request, fn reviewFunc) {
	reviewerID, ok := requireAccount(w, r)
	if !ok {
		return
	}
	changeID, ok := pathUUID(w, r, "changeId")
	if !ok {
		return
	}

	change, err := fn(r.Context(), changeID, reviewerID)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChangeResponse(change))
}
