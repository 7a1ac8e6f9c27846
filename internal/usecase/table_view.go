package usecase

import (
	"fmt"

	"github.com/DRSN-tech/product-table/internal/domain"
)

// NewTableView собирает модель представления из каталога, текущей Query и результата вычисления.
func NewTableView(catalog *Catalog, query domain.Query, rows []domain.ViewRow) *TableView {
	ownerID, byOwner := query.Owner.UserID()

	users := catalog.Users()
	owners := make([]OwnerTab, 0, len(users))
	for _, u := range users {
		owners = append(owners, OwnerTab{
			ID:     u.ID,
			Name:   u.Name,
			Active: byOwner && u.ID == ownerID,
		})
	}

	categories := catalog.Categories()
	chips := make([]CategoryChip, 0, len(categories))
	for _, c := range categories {
		chips = append(chips, CategoryChip{
			ID:     c.ID,
			Label:  fmt.Sprintf("Category %d", c.ID),
			Title:  c.Title,
			Icon:   c.Icon,
			Active: query.Categories.Has(c.ID),
		})
	}

	columns := make([]ColumnHeader, 0, len(domain.Columns))
	for _, col := range domain.Columns {
		dir := query.Sort.DirectionFor(col)
		columns = append(columns, ColumnHeader{
			Name:      col.String(),
			Direction: dir.String(),
			Icon:      sortIcon(dir),
		})
	}

	rendered := make([]RowView, 0, len(rows))
	for _, row := range rows {
		rendered = append(rendered, newRowView(row))
	}

	return &TableView{
		Query:               NewQueryState(query),
		Owners:              owners,
		AllOwnersActive:     !byOwner,
		Categories:          chips,
		AllCategoriesActive: query.Categories.IsEmpty(),
		Search: SearchField{
			Value:     query.Text,
			Clearable: query.Text != "",
		},
		Columns:      columns,
		Rows:         rendered,
		Empty:        len(rendered) == 0,
		EmptyMessage: emptyMessage(len(rendered)),
		Fingerprint:  catalog.Fingerprint(),
	}
}

func newRowView(row domain.ViewRow) RowView {
	view := RowView{
		ID:   row.Product.ID,
		Name: row.Product.Name,
	}

	if row.Category != nil {
		id := row.Category.ID
		view.CategoryID = &id
		view.CategoryCell = fmt.Sprintf("%s - %s", row.Category.Icon, row.Category.Title)
	}

	if row.User != nil {
		id := row.User.ID
		view.UserID = &id
		view.UserName = row.User.Name
		view.UserStyle = UserStyleFemale
		if row.User.Sex == domain.SexMale {
			view.UserStyle = UserStyleMale
		}
	}

	return view
}

func sortIcon(dir domain.SortDirection) string {
	switch dir {
	case domain.SortAsc:
		return SortIconAsc
	case domain.SortDesc:
		return SortIconDesc
	default:
		return SortIconNone
	}
}

func emptyMessage(n int) string {
	if n == 0 {
		return NoMatchingMessage
	}
	return ""
}
