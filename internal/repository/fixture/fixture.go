// Package fixture отдает встроенный в бинарник каталог. Используется по умолчанию,
// когда внешний источник не настроен.
package fixture

import (
	"bytes"
	"context"
	_ "embed"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/internal/repository/snapshot"
	"github.com/DRSN-tech/product-table/pkg/e"
)

//go:embed catalog.json
var catalogJSON []byte

type CatalogSource struct {
	data []byte
}

// NewCatalogSource возвращает источник со встроенными данными.
func NewCatalogSource() *CatalogSource {
	return &CatalogSource{data: catalogJSON}
}

// NewCatalogSourceFromBytes - источник с произвольным JSON-снимком.
func NewCatalogSourceFromBytes(data []byte) *CatalogSource {
	return &CatalogSource{data: data}
}

func (s *CatalogSource) Name() string { return "fixture" }

func (s *CatalogSource) Load(ctx context.Context) (*domain.CatalogSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := snapshot.Decode(bytes.NewReader(s.data))
	if err != nil {
		return nil, e.Wrap("fixture.CatalogSource.Load", err)
	}

	return snap, nil
}
