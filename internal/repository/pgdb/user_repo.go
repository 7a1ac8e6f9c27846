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

// UserRepo читает пользователей из PostgreSQL в рамках транзакции из контекста.
type UserRepo struct {
	conv converter.UserConverter
}

func NewUserRepo(conv converter.UserConverter) *UserRepo {
	return &UserRepo{conv: conv}
}

// List возвращает всех пользователей в порядке id.
func (u *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT id, name, sex
		FROM users
		ORDER BY id;
	`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.UserModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	users := make([]domain.User, 0, len(models))
	for i := range models {
		users = append(users, *u.conv.ToEntity(&models[i]))
	}

	return users, nil
}
