package domain

import (
	"maps"
	"slices"
)

// OwnerFilter - фильтр по владельцу: либо "все владельцы", либо конкретный User.ID.
// Нулевое значение означает "все владельцы".
type OwnerFilter struct {
	userID int64
	set    bool
}

// AnyOwner возвращает фильтр, пропускающий всех владельцев.
func AnyOwner() OwnerFilter {
	return OwnerFilter{}
}

// ByOwner возвращает фильтр по конкретному владельцу.
func ByOwner(userID int64) OwnerFilter {
	return OwnerFilter{userID: userID, set: true}
}

// UserID возвращает id владельца и false, если фильтр не задан.
func (f OwnerFilter) UserID() (int64, bool) {
	return f.userID, f.set
}

func (f OwnerFilter) IsSet() bool {
	return f.set
}

// CategorySelection - неизменяемое множество выбранных категорий (multi-select).
// Пустое множество означает отсутствие фильтра.
type CategorySelection struct {
	ids map[int64]struct{}
}

func NewCategorySelection(ids ...int64) CategorySelection {
	if len(ids) == 0 {
		return CategorySelection{}
	}

	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return CategorySelection{ids: set}
}

func (s CategorySelection) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s CategorySelection) Len() int {
	return len(s.ids)
}

func (s CategorySelection) IsEmpty() bool {
	return len(s.ids) == 0
}

// IDs возвращает выбранные id по возрастанию.
func (s CategorySelection) IDs() []int64 {
	return slices.Sorted(maps.Keys(s.ids))
}

// Toggle возвращает новое множество, в котором id добавлен или удален.
func (s CategorySelection) Toggle(id int64) CategorySelection {
	next := make(map[int64]struct{}, len(s.ids)+1)
	maps.Copy(next, s.ids)

	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}

	if len(next) == 0 {
		return CategorySelection{}
	}

	return CategorySelection{ids: next}
}

// Query - полный набор параметров фильтрации и сортировки таблицы.
// Нулевое значение: все владельцы, пустой поиск, без фильтра категорий, сортировка отключена.
type Query struct {
	Owner      OwnerFilter
	Text       string
	Categories CategorySelection
	Sort       SortState
}

func NewQuery(owner OwnerFilter, text string, categories CategorySelection, sort SortState) Query {
	return Query{
		Owner:      owner,
		Text:       text,
		Categories: categories,
		Sort:       sort,
	}
}
