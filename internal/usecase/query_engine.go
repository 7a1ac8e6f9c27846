package usecase

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/DRSN-tech/product-table/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// minTextFilterLen - поиск короче двух символов не фильтрует строки.
const minTextFilterLen = 2

// QueryEngine применяет Query к строкам таблицы: фильтры владельца, текста, категорий и сортировку.
// Engine не хранит изменяемого состояния и безопасен для конкурентного использования.
type QueryEngine struct {
	locale         language.Tag
	categoryTitles map[int64]string
}

// NewQueryEngine создает движок. categories нужны, чтобы перевести выбранные id категорий
// в названия: строка проходит фильтр категорий, если название ее категории среди выбранных.
func NewQueryEngine(categories []domain.Category, locale language.Tag) *QueryEngine {
	titles := make(map[int64]string, len(categories))
	for _, c := range categories {
		if _, ok := titles[c.ID]; !ok {
			titles[c.ID] = c.Title
		}
	}

	return &QueryEngine{
		locale:         locale,
		categoryTitles: titles,
	}
}

// Evaluate возвращает новый срез строк, прошедших фильтры, в нужном порядке.
// Входной срез не изменяется.
func (q *QueryEngine) Evaluate(rows []domain.ViewRow, query domain.Query) []domain.ViewRow {
	var (
		ownerID, byOwner = query.Owner.UserID()
		needle           = q.textNeedle(query.Text)
		titles           = q.selectedTitles(query.Categories)
		byCategory       = !query.Categories.IsEmpty()
		caser            = cases.Lower(q.locale)
	)
	if needle != "" {
		needle = caser.String(needle)
	}

	result := make([]domain.ViewRow, 0, len(rows))
	for _, row := range rows {
		if byOwner {
			if id, ok := row.UserID(); !ok || id != ownerID {
				continue
			}
		}

		if needle != "" && !strings.Contains(caser.String(row.Product.Name), needle) {
			continue
		}

		if byCategory {
			if row.Category == nil {
				continue
			}
			if _, ok := titles[row.Category.Title]; !ok {
				continue
			}
		}

		result = append(result, row)
	}

	q.sort(result, query.Sort)

	return result
}

// textNeedle возвращает строку поиска или пустую строку, если поиск не должен применяться.
func (q *QueryEngine) textNeedle(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minTextFilterLen {
		return ""
	}
	return text
}

func (q *QueryEngine) selectedTitles(selection domain.CategorySelection) map[string]struct{} {
	titles := make(map[string]struct{}, selection.Len())
	for _, id := range selection.IDs() {
		if title, ok := q.categoryTitles[id]; ok {
			titles[title] = struct{}{}
		}
	}

	return titles
}

// sort сортирует строки на месте устойчивой сортировкой. desc - тот же компаратор с переставленными операндами.
func (q *QueryEngine) sort(rows []domain.ViewRow, state domain.SortState) {
	if state.Direction == domain.SortNone || len(rows) < 2 {
		return
	}

	compare := q.comparator(state.Column)
	if state.Direction == domain.SortDesc {
		asc := compare
		compare = func(a, b domain.ViewRow) int { return asc(b, a) }
	}

	slices.SortStableFunc(rows, compare)
}

// comparator возвращает сравнение по колонке. Отсутствующая категория или владелец
// сравниваются как пустая строка.
func (q *QueryEngine) comparator(column domain.SortColumn) func(a, b domain.ViewRow) int {
	// collate.Collator не потокобезопасен, поэтому создается на каждый вызов Evaluate
	coll := collate.New(q.locale)

	switch column {
	case domain.ColumnProduct:
		return func(a, b domain.ViewRow) int {
			return coll.CompareString(a.Product.Name, b.Product.Name)
		}
	case domain.ColumnCategory:
		return func(a, b domain.ViewRow) int {
			return coll.CompareString(a.CategoryTitle(), b.CategoryTitle())
		}
	case domain.ColumnUser:
		return func(a, b domain.ViewRow) int {
			return coll.CompareString(a.UserName(), b.UserName())
		}
	default:
		return func(a, b domain.ViewRow) int {
			return cmp.Compare(a.Product.ID, b.Product.ID)
		}
	}
}
