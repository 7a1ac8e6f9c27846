package minio

import (
	"bytes"
	"context"

	"github.com/DRSN-tech/product-table/internal/cfg"
	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/internal/repository/snapshot"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

const (
	contentTypeJSON = "application/json"
	codeNoSuchKey   = "NoSuchKey"
)

// CatalogRepo хранит JSON-снимок каталога одним объектом в MinIO.
type CatalogRepo struct {
	mc     *minio.Client
	cfg    *cfg.MinIOCfg
	logger logger.Logger
}

func NewCatalogRepo(mc *minio.Client, cfg *cfg.MinIOCfg, logger logger.Logger) *CatalogRepo {
	return &CatalogRepo{
		mc:     mc,
		cfg:    cfg,
		logger: logger,
	}
}

func (c *CatalogRepo) Name() string { return "minio" }

// Load читает и разбирает объект снимка.
func (c *CatalogRepo) Load(ctx context.Context) (*domain.CatalogSnapshot, error) {
	obj, err := c.mc.GetObject(ctx, c.cfg.BucketName, c.cfg.CatalogObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer obj.Close()

	// GetObject ленивый: ошибки доступа появляются только при Stat/Read.
	if _, err := obj.Stat(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	snap, err := snapshot.Decode(obj)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return snap, nil
}

// Save перезаписывает объект снимка.
func (c *CatalogRepo) Save(ctx context.Context, s *domain.CatalogSnapshot) error {
	data, err := snapshot.Marshal(s)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	_, err = c.mc.PutObject(ctx, c.cfg.BucketName, c.cfg.CatalogObjectKey, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentTypeJSON})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// EnsureObject записывает seed, если объекта снимка еще нет в бакете.
func (c *CatalogRepo) EnsureObject(ctx context.Context, seed *domain.CatalogSnapshot) error {
	_, err := c.mc.StatObject(ctx, c.cfg.BucketName, c.cfg.CatalogObjectKey, minio.StatObjectOptions{})
	if err == nil {
		return nil
	}

	if minio.ToErrorResponse(err).Code != codeNoSuchKey {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	c.logger.Infof("catalog object %s/%s not found, uploading seed", c.cfg.BucketName, c.cfg.CatalogObjectKey)
	return c.Save(ctx, seed)
}
