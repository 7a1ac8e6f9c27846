package usecase

import (
	"context"

	"github.com/DRSN-tech/product-table/internal/domain"
)

type TableUC interface {
	GetCatalog(ctx context.Context) *CatalogRes
	GetTable(ctx context.Context, query domain.Query) *TableView
	OpenSession(ctx context.Context) (*SessionRes, error)
	GetSession(ctx context.Context, id string) (*SessionRes, error)
	ApplyEvent(ctx context.Context, req *ApplyEventReq) (*SessionRes, error)
	CloseSession(ctx context.Context, id string) error
}
