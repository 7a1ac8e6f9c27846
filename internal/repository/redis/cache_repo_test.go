package redis

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/product-table/internal/cfg"
	"github.com/DRSN-tech/product-table/pkg/clients"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/logger"
	"github.com/stretchr/testify/assert"
)

// Порт 1 никогда не слушается: проверяем, что сетевая ошибка не выдается за промах кэша.
func TestGet_ConnectionErrorIsNotMiss(t *testing.T) {
	conf := &cfg.RedisCfg{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
		Timeout:     100 * time.Millisecond,
		CatalogTTL:  time.Minute,
	}
	client := clients.NewRedisClient(conf)
	t.Cleanup(func() { _ = client.Client.Close() })

	repo := NewCacheRepo(client, conf, logger.NewNopLogger())

	_, err := repo.Get(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, e.ErrCacheMiss)
}
