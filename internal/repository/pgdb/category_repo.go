package pgdb

import (
	"context"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/tr"
	"github.com/jimlawless/whereami"
)

// CategoryRepo читает категории из PostgreSQL в рамках транзакции из контекста.
type CategoryRepo struct {
	conv converter.CategoryConverter
}

func NewCategoryRepo(conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{conv: conv}
}

// List возвращает все категории в порядке id.
func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, title, icon, owner_id
		FROM categories
		ORDER BY id;
	`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Title, &model.Icon, &model.OwnerID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		categories = append(categories, *c.conv.ToEntity(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return categories, nil
}
