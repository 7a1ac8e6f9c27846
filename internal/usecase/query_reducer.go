package usecase

import (
	"fmt"
	"strings"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/pkg/e"
)

// Reduce возвращает новую Query после события пользователя. Исходная Query не изменяется.
func Reduce(query domain.Query, event domain.QueryEvent) (domain.Query, error) {
	next := query

	switch ev := event.(type) {
	case domain.SelectOwner:
		next.Owner = domain.ByOwner(ev.UserID)
	case domain.AllOwners:
		next.Owner = domain.AnyOwner()
	case domain.SetText:
		next.Text = strings.TrimSpace(ev.Text)
	case domain.ClearText:
		next.Text = ""
	case domain.ToggleCategory:
		next.Categories = query.Categories.Toggle(ev.CategoryID)
	case domain.AllCategories:
		next.Categories = domain.CategorySelection{}
	case domain.ClickSort:
		next.Sort = query.Sort.Click(ev.Column)
	case domain.ResetFilters:
		next.Owner = domain.AnyOwner()
		next.Text = ""
		next.Categories = domain.CategorySelection{}
	default:
		return query, e.Wrap(fmt.Sprintf("%T", event), e.ErrUnknownEvent)
	}

	return next, nil
}
