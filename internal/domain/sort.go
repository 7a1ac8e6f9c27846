package domain

import (
	"strings"

	"github.com/DRSN-tech/product-table/pkg/e"
)

// SortColumn - колонка таблицы, по которой возможна сортировка.
type SortColumn int

const (
	ColumnID SortColumn = iota
	ColumnProduct
	ColumnCategory
	ColumnUser
)

// Columns - колонки в порядке отображения.
var Columns = []SortColumn{ColumnID, ColumnProduct, ColumnCategory, ColumnUser}

func (c SortColumn) String() string {
	switch c {
	case ColumnID:
		return "ID"
	case ColumnProduct:
		return "Product"
	case ColumnCategory:
		return "Category"
	case ColumnUser:
		return "User"
	default:
		return "Unknown"
	}
}

// ParseSortColumn разбирает имя колонки без учета регистра.
func ParseSortColumn(s string) (SortColumn, error) {
	for _, c := range Columns {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}

	return ColumnID, e.Wrap(s, e.ErrInvalidSortColumn)
}

// SortDirection - направление сортировки.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

func (d SortDirection) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return "unknown"
	}
}

// ParseSortDirection разбирает направление; пустая строка означает none.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, nil
	case "asc", "ascending":
		return SortAsc, nil
	case "desc", "descending":
		return SortDesc, nil
	default:
		return SortNone, e.Wrap(s, e.ErrInvalidSortDirection)
	}
}

// next: none -> asc -> desc -> none
func (d SortDirection) next() SortDirection {
	switch d {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

// SortState - состояние автомата сортировки: активная колонка и направление.
type SortState struct {
	Column    SortColumn
	Direction SortDirection
}

func NewSortState(column SortColumn, direction SortDirection) SortState {
	return SortState{Column: column, Direction: direction}
}

// Click возвращает состояние после клика по заголовку колонки.
// Повторные клики по той же колонке циклически меняют направление,
// клик по другой колонке делает ее активной с направлением asc.
func (s SortState) Click(column SortColumn) SortState {
	if column != s.Column {
		return SortState{Column: column, Direction: SortAsc}
	}

	return SortState{Column: column, Direction: s.Direction.next()}
}

// DirectionFor возвращает направление для колонки с учетом того, активна ли она.
func (s SortState) DirectionFor(column SortColumn) SortDirection {
	if column != s.Column {
		return SortNone
	}
	return s.Direction
}
