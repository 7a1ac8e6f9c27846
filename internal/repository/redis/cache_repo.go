package redis

import (
	"context"
	"errors"

	"github.com/DRSN-tech/product-table/internal/cfg"
	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/internal/repository/snapshot"
	"github.com/DRSN-tech/product-table/pkg/clients"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// catalogKey - ключ снимка каталога. Версия в ключе меняется вместе с форматом snapshot.Model.
const catalogKey = "product-table:catalog:v1"

// CacheRepo кэширует снимок каталога в Redis с TTL.
type CacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Get возвращает снимок или e.ErrCacheMiss. Поврежденная запись удаляется и считается промахом.
func (c *CacheRepo) Get(ctx context.Context) (*domain.CatalogSnapshot, error) {
	data, err := c.client.Client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.ErrCacheMiss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	snap, err := snapshot.Unmarshal(data)
	if err != nil {
		c.logger.Warnf("Redis unmarshal failed, dropping %s: %v", catalogKey, e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(ctx, catalogKey).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, e.ErrCacheMiss
	}

	return snap, nil
}

// Set сохраняет снимок на cfg.CatalogTTL.
func (c *CacheRepo) Set(ctx context.Context, s *domain.CatalogSnapshot) error {
	data, err := snapshot.Marshal(s)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, catalogKey, data, c.cfg.CatalogTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Invalidate удаляет снимок из кэша.
func (c *CacheRepo) Invalidate(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, catalogKey).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
