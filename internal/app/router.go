package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gameitems-backend/internal/auth"
	"github.com/heartmarshall/gameitems-backend/internal/config"
	"github.com/heartmarshall/gameitems-backend/internal/transport/middleware"
	"github.com/heartmarshall/gameitems-backend/internal/transport/rest"
)

// tokenValidator resolves bearer tokens for the Auth middleware.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Claims, error)
}

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health *rest.HealthHandler
	Auth   *rest.AuthHandler
	Lists  *rest.ListHandler
	Share  *rest.ShareHandler
	Admin  *rest.AdminHandler
}

// NewRouter mounts every route and wraps the mux in the global middleware
// chain. authLimit guards the unauthenticated auth endpoints.
func NewRouter(
	logger *slog.Logger,
	h Handlers,
	validator tokenValidator,
	cors config.CORSConfig,
	authLimit middleware.Middleware,
) http.Handler {
	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Auth
	mux.Handle("POST /v1/auth/register", middleware.With(h.Auth.Register, authLimit))
	mux.Handle("POST /v1/auth/login", middleware.With(h.Auth.Login, authLimit))
	mux.Handle("POST /v1/auth/refresh", middleware.With(h.Auth.Refresh, authLimit))
	mux.HandleFunc("POST /v1/auth/logout", h.Auth.Logout)

	// Catalog and lists
	mux.HandleFunc("GET /v1/games", h.Lists.Games)
	mux.HandleFunc("GET /v1/lists", h.Lists.Lists)
	mux.HandleFunc("POST /v1/lists", h.Lists.Create)
	mux.HandleFunc("GET /v1/lists/{listId}", h.Lists.Detail)
	mux.HandleFunc("PATCH /v1/lists/{listId}", h.Lists.ProposeMetadata)
	mux.HandleFunc("POST /v1/lists/{listId}/publish", h.Lists.Publish)
	mux.HandleFunc("GET /v1/lists/{listId}/tags", h.Lists.Tags)
	mux.HandleFunc("POST /v1/lists/{listId}/tags", h.Lists.ProposeTag)
	mux.HandleFunc("GET /v1/lists/{listId}/items", h.Lists.Items)
	mux.HandleFunc("POST /v1/lists/{listId}/items", h.Lists.ProposeItem)
	mux.HandleFunc("PATCH /v1/lists/{listId}/items/{itemId}", h.Lists.ProposeItemEdit)
	mux.HandleFunc("GET /v1/lists/{listId}/entries", h.Lists.Entries)
	mux.HandleFunc("POST /v1/lists/{listId}/entries/{itemId}", h.Lists.SetEntry)

	// Sharing
	mux.HandleFunc("GET /v1/lists/{listId}/share", h.Share.Get)
	mux.HandleFunc("POST /v1/lists/{listId}/share", h.Share.Share)
	mux.HandleFunc("DELETE /v1/lists/{listId}/share", h.Share.Revoke)
	mux.HandleFunc("GET /v1/shared/{token}", h.Share.Shared)

	// Moderation
	mux.Handle("GET /v1/admin/changes", middleware.With(h.Admin.Changes, middleware.AdminOnly))
	mux.Handle("POST /v1/admin/changes/{changeId}/approve", middleware.With(h.Admin.Approve, middleware.AdminOnly))
	mux.Handle("POST /v1/admin/changes/{changeId}/reject", middleware.With(h.Admin.Reject, middleware.AdminOnly))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cors),
		middleware.Auth(validator),
		middleware.Logger(logger),
	)(mux)
}
