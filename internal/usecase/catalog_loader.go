package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/jitter"
	"github.com/DRSN-tech/product-table/pkg/logger"
)

// CatalogLoader загружает каталог при старте: сначала из кэша, затем из источника с повторами.
type CatalogLoader struct {
	source CatalogSource
	cache  CatalogCache
	retry  RetryPolicy
	logger logger.Logger
}

// NewCatalogLoader создает загрузчик. cache может быть nil.
func NewCatalogLoader(source CatalogSource, cache CatalogCache, retry RetryPolicy, logger logger.Logger) *CatalogLoader {
	return &CatalogLoader{
		source: source,
		cache:  cache,
		retry:  NewRetryPolicy(retry.Attempts, retry.Base, retry.Max),
		logger: logger,
	}
}

// Load возвращает неизменяемый каталог.
func (l *CatalogLoader) Load(ctx context.Context) (*Catalog, error) {
	const op = "CatalogLoader.Load"

	if snapshot, ok := l.fromCache(ctx); ok {
		l.logger.Infof("catalog loaded from cache: users=%d categories=%d products=%d",
			len(snapshot.Users), len(snapshot.Categories), len(snapshot.Products))
		return NewCatalog(snapshot), nil
	}

	snapshot, err := l.fromSource(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	catalog := NewCatalog(snapshot)
	if catalog.IsEmpty() {
		l.logger.Warnf("catalog source %s returned no data", l.source.Name())
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, catalog.Snapshot()); err != nil {
			l.logger.Warnf("Failed to cache catalog snapshot: %v", e.Wrap(op, err))
		}
	}

	l.logger.Infof("catalog loaded from %s: users=%d categories=%d products=%d fingerprint=%s",
		l.source.Name(), len(snapshot.Users), len(snapshot.Categories), len(snapshot.Products), catalog.Fingerprint())

	return catalog, nil
}

func (l *CatalogLoader) fromCache(ctx context.Context) (*domain.CatalogSnapshot, bool) {
	if l.cache == nil {
		return nil, false
	}

	snapshot, err := l.cache.Get(ctx)
	if err != nil {
		if !errors.Is(err, e.ErrCacheMiss) {
			l.logger.Warnf("catalog cache read failed: %v", err)
		}
		return nil, false
	}

	return snapshot, snapshot != nil
}

func (l *CatalogLoader) fromSource(ctx context.Context) (*domain.CatalogSnapshot, error) {
	for attempt := 0; ; attempt++ {
		snapshot, err := l.source.Load(ctx)
		if err == nil {
			return snapshot, nil
		}

		if attempt+1 >= l.retry.Attempts {
			return nil, e.Wrap(l.source.Name(), err)
		}

		delay := jitter.ExponentialBackoff(l.retry.Base, l.retry.Max, attempt, jitter.DefaultJitter)
		l.logger.Warnf("catalog source %s failed (attempt %d/%d), retrying in %s: %v",
			l.source.Name(), attempt+1, l.retry.Attempts, delay, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}
