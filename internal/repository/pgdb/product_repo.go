package pgdb

import (
	"context"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// ProductRepo читает товары из PostgreSQL в рамках транзакции из контекста.
type ProductRepo struct {
	conv converter.ProductConverter
}

func NewProductRepo(conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{conv: conv}
}

// List возвращает все товары в порядке id. category_id не проверяется на существование.
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, name, category_id
		FROM products
		ORDER BY id;
	`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.ProductModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products := make([]domain.Product, 0, len(models))
	for i := range models {
		products = append(products, *p.conv.ToEntity(&models[i]))
	}

	return products, nil
}
