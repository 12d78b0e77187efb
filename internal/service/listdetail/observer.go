package listdetail

import (
	"context"
	"log/slog"
)

// Observer receives cache signals, typically for metrics.
type Observer interface {
	OnHit(ctx context.Context, key string)
	OnMiss(ctx context.Context, key string)
	OnStore(ctx context.Context, key string)
	OnInvalidate(ctx context.Context, key string)
}

// NoopObserver ignores every signal.
type NoopObserver struct{}

func (NoopObserver) OnHit(context.Context, string)        {}
func (NoopObserver) OnMiss(context.Context, string)       {}
func (NoopObserver) OnStore(context.Context, string)      {}
func (NoopObserver) OnInvalidate(context.Context, string) {}

// LogObserver writes every signal as a debug record.
type LogObserver struct {
	log *slog.Logger
}

// NewLogObserver creates an observer that logs through logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{log: logger.With("component", "listdetail_cache")}
}

func (o *LogObserver) OnHit(ctx context.Context, key string)        { o.signal(ctx, "hit", key) }
func (o *LogObserver) OnMiss(ctx context.Context, key string)       { o.signal(ctx, "miss", key) }
func (o *LogObserver) OnStore(ctx context.Context, key string)      { o.signal(ctx, "store", key) }
func (o *LogObserver) OnInvalidate(ctx context.Context, key string) { o.signal(ctx, "invalidate", key) }

func (o *LogObserver) signal(ctx context.Context, event, key string) {
	o.log.DebugContext(ctx, "cache "+event, slog.String("key", key))
}
