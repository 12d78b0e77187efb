// Package listdetail serves the combined list, tags and items view through a
// read-through cache. The cache is a pure performance layer: every backend
// failure degrades to a miss and is never returned to the caller.
package listdetail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gameitems-backend/internal/config"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

// ownerGuard resolves a list the caller owns (NotFound vs Forbidden).
type ownerGuard interface {
	RequireOwned(ctx context.Context, accountID, listID uuid.UUID) (*domain.GameList, error)
}

// tagReader defines the tag reads needed by the detail view.
type tagReader interface {
	ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Tag, error)
}

// itemReader defines the item reads needed by the detail view.
type itemReader interface {
	ListByList(ctx context.Context, listID uuid.UUID, filter domain.ItemFilter) ([]domain.ItemDefinition, error)
}

// cacheBackend is a byte-oriented key/value store with TTL.
type cacheBackend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Service builds list detail views.
type Service struct {
	log      *slog.Logger
	guard    ownerGuard
	tags     tagReader
	items    itemReader
	cache    cacheBackend
	ttl      time.Duration
	observer Observer
}

// NewService creates a new list detail service. A nil observer disables
// cache signals.
func NewService(
	logger *slog.Logger,
	guard ownerGuard,
	tags tagReader,
	items itemReader,
	cache cacheBackend,
	observer Observer,
	cfg config.RedisConfig,
) *Service {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Service{
		log:      logger.With("service", "listdetail"),
		guard:    guard,
		tags:     tags,
		items:    items,
		cache:    cache,
		ttl:      cfg.ListDetailTTL,
		observer: observer,
	}
}

// cacheKey identifies the cached tags and items of a list as seen by an account.
func cacheKey(accountID, listID uuid.UUID) string {
	return accountID.String() + ":" + listID.String()
}

// Get returns the detail view of a list owned by accountID. The list itself is
// always read fresh; tags and items come from the cache when present.
func (s *Service) Get(ctx context.Context, accountID, listID uuid.UUID) (*domain.ListDetail, error) {
	list, err := s.guard.RequireOwned(ctx, accountID, listID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(accountID, listID)

	if tags, items, ok := s.lookup(ctx, key); ok {
		s.observer.OnHit(ctx, key)
		return &domain.ListDetail{List: *list, Tags: tags, Items: items}, nil
	}
	s.observer.OnMiss(ctx, key)

	detail, err := s.Build(ctx, list)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, detail)

	return detail, nil
}

// Build loads tags and items for list straight from the repositories.
// Used for anonymous shared views, which bypass the cache.
func (s *Service) Build(ctx context.Context, list *domain.GameList) (*domain.ListDetail, error) {
	tags, err := s.tags.ListByList(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("listdetail.Build tags: %w", err)
	}

	items, err := s.items.ListByList(ctx, list.ID, domain.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("listdetail.Build items: %w", err)
	}

	return &domain.ListDetail{List: *list, Tags: tags, Items: items}, nil
}

// Invalidate drops the cached tags and items of a list. Failures are logged
// and swallowed.
func (s *Service) Invalidate(ctx context.Context, accountID, listID uuid.UUID) {
	key := cacheKey(accountID, listID)

	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.WarnContext(ctx, "cache invalidate failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	s.observer.OnInvalidate(ctx, key)
}

func (s *Service) lookup(ctx context.Context, key string) ([]domain.Tag, []domain.ItemDefinition, bool) {
	data, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "cache get failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return nil, nil, false
	}
	if !found {
		return nil, nil, false
	}

	tags, items, err := decodeEntry(data)
	if err != nil {
		s.log.WarnContext(ctx, "cache entry unreadable",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return nil, nil, false
	}

	return tags, items, true
}

func (s *Service) store(ctx context.Context, key string, detail *domain.ListDetail) {
	data, err := encodeEntry(detail.Tags, detail.Items)
	if err != nil {
		s.log.WarnContext(ctx, "cache entry encode failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.log.WarnContext(ctx, "cache set failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	s.observer.OnStore(ctx, key)
}
