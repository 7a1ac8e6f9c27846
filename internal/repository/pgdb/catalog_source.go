package pgdb

import (
	"context"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// CatalogSource загружает снимок каталога из трех таблиц в одной read-only транзакции,
// чтобы списки были согласованы между собой.
type CatalogSource struct {
	db         transaction.Transactional
	users      *UserRepo
	categories *CategoryRepo
	products   *ProductRepo
}

func NewCatalogSource(db transaction.Transactional, users *UserRepo, categories *CategoryRepo, products *ProductRepo) *CatalogSource {
	return &CatalogSource{
		db:         db,
		users:      users,
		categories: categories,
		products:   products,
	}
}

func (s *CatalogSource) Name() string { return "postgres" }

func (s *CatalogSource) Load(ctx context.Context) (snapshot *domain.CatalogSnapshot, err error) {
	const op = "pgdb.CatalogSource.Load"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, s.db)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()
	ctx = tr.WithTx(ctx, tx.Transaction())

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return domain.NewCatalogSnapshot(users, categories, products), nil
}
