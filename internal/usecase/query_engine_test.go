package usecase

import (
	"slices"
	"testing"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestEngine(t *testing.T) (*QueryEngine, []domain.ViewRow) {
	t.Helper()
	s := testSnapshot()
	return NewQueryEngine(s.Categories, language.English), BuildViewRows(s.Users, s.Categories, s.Products)
}

func sorted(column domain.SortColumn, dir domain.SortDirection) domain.Query {
	return domain.Query{Sort: domain.NewSortState(column, dir)}
}

func TestEvaluate_EmptyQueryKeepsJoinOrder(t *testing.T) {
	engine, rows := newTestEngine(t)

	got := engine.Evaluate(rows, domain.Query{})

	assert.Equal(t, rows, got)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}, productIDs(got))
}

func TestEvaluate_ReturnsFreshSlice(t *testing.T) {
	engine, rows := newTestEngine(t)
	before := slices.Clone(rows)

	got := engine.Evaluate(rows, sorted(domain.ColumnProduct, domain.SortDesc))
	got[0] = domain.ViewRow{}

	assert.Equal(t, before, rows)
}

func TestEvaluate_OwnerFilter(t *testing.T) {
	engine, rows := newTestEngine(t)

	tests := []struct {
		name  string
		owner domain.OwnerFilter
		want  []int64
	}{
		{"any owner", domain.AnyOwner(), []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"anna", domain.ByOwner(2), []int64{2, 3, 5, 6, 9}},
		{"roma", domain.ByOwner(1), []int64{1, 7}},
		{"owner without categories", domain.ByOwner(4), []int64{}},
		{"unknown owner", domain.ByOwner(100), []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(rows, domain.Query{Owner: tt.owner})
			assert.Equal(t, tt.want, productIDs(got))
		})
	}
}

func TestEvaluate_OwnerFilterDropsAbsentUsers(t *testing.T) {
	users := []domain.User{{ID: 1, Name: "Max"}}
	categories := []domain.Category{{ID: 1, Title: "Fruits", Icon: "🍎", OwnerID: 1}}
	products := []domain.Product{
		{ID: 1, Name: "Apple", CategoryID: 1},
		{ID: 2, Name: "Banana", CategoryID: 99},
	}
	rows := BuildViewRows(users, categories, products)
	engine := NewQueryEngine(categories, language.English)

	got := engine.Evaluate(rows, domain.Query{Owner: domain.ByOwner(1)})

	assert.Equal(t, []int64{1}, productIDs(got))
}

func TestEvaluate_TextFilter(t *testing.T) {
	engine, rows := newTestEngine(t)
	all := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}

	tests := []struct {
		name string
		text string
		want []int64
	}{
		{"empty", "", all},
		{"single char is ignored", "e", all},
		{"single char with spaces is ignored", "  a  ", all},
		{"two chars", "ee", []int64{7}},
		{"case insensitive", "EG", []int64{3}},
		{"substring", "an", []int64{9}},
		{"trimmed", "  ar ", []int64{5}},
		{"no match", "zz", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(rows, domain.Query{Text: tt.text})
			assert.Equal(t, tt.want, productIDs(got))
		})
	}
}

func TestEvaluate_TextFilterPrefix(t *testing.T) {
	rows := BuildViewRows(nil, nil, []domain.Product{
		{ID: 1, Name: "Product 1"},
		{ID: 2, Name: "Other"},
	})
	engine := NewQueryEngine(nil, language.English)

	assert.Equal(t, []int64{1}, productIDs(engine.Evaluate(rows, domain.Query{Text: "prod"})))
	assert.Equal(t, []int64{1, 2}, productIDs(engine.Evaluate(rows, domain.Query{Text: "p"})))
}

func TestEvaluate_TextFilterCountsRunes(t *testing.T) {
	rows := BuildViewRows(nil, nil, []domain.Product{
		{ID: 1, Name: "Ёлка"},
		{ID: 2, Name: "Стол"},
	})
	engine := NewQueryEngine(nil, language.Russian)

	// одна кириллическая буква занимает два байта, но это все еще один символ
	assert.Equal(t, []int64{1, 2}, productIDs(engine.Evaluate(rows, domain.Query{Text: "ё"})))
	assert.Equal(t, []int64{1}, productIDs(engine.Evaluate(rows, domain.Query{Text: "ЁЛ"})))
}

func TestEvaluate_CategoryFilter(t *testing.T) {
	engine, rows := newTestEngine(t)

	tests := []struct {
		name string
		ids  []int64
		want []int64
	}{
		{"none selected", nil, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"grocery", []int64{1}, []int64{2, 3, 5}},
		{"grocery and fruits", []int64{1, 3}, []int64{2, 3, 5, 6, 9}},
		{"category without products", []int64{4}, []int64{}},
		{"unknown category", []int64{77}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Evaluate(rows, domain.Query{Categories: domain.NewCategorySelection(tt.ids...)})
			assert.Equal(t, tt.want, productIDs(got))
		})
	}
}

func TestEvaluate_CategoryFilterMatchesByTitle(t *testing.T) {
	categories := []domain.Category{
		{ID: 1, Title: "Food"},
		{ID: 2, Title: "Food"},
		{ID: 3, Title: "Tools"},
	}
	rows := BuildViewRows(nil, categories, []domain.Product{
		{ID: 1, Name: "Rice", CategoryID: 1},
		{ID: 2, Name: "Pasta", CategoryID: 2},
		{ID: 3, Name: "Hammer", CategoryID: 3},
		{ID: 4, Name: "Ghost", CategoryID: 99},
	})
	engine := NewQueryEngine(categories, language.English)

	got := engine.Evaluate(rows, domain.Query{Categories: domain.NewCategorySelection(2)})

	assert.Equal(t, []int64{1, 2}, productIDs(got))
}

func TestEvaluate_FiltersCombine(t *testing.T) {
	engine, rows := newTestEngine(t)

	q := domain.Query{Owner: domain.ByOwner(2), Text: "an"}
	assert.Equal(t, []int64{9}, productIDs(engine.Evaluate(rows, q)))

	q.Categories = domain.NewCategorySelection(1)
	assert.Empty(t, engine.Evaluate(rows, q))
}

func TestEvaluate_Sort(t *testing.T) {
	engine, rows := newTestEngine(t)

	tests := []struct {
		name  string
		query domain.Query
		want  []int64
	}{
		{"none", sorted(domain.ColumnProduct, domain.SortNone), []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"id asc", sorted(domain.ColumnID, domain.SortAsc), []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"id desc", sorted(domain.ColumnID, domain.SortDesc), []int64{9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{"product asc", sorted(domain.ColumnProduct, domain.SortAsc), []int64{6, 9, 7, 2, 3, 4, 1, 5, 8}},
		{"product desc", sorted(domain.ColumnProduct, domain.SortDesc), []int64{8, 5, 1, 4, 3, 2, 7, 9, 6}},
		{"category asc is stable", sorted(domain.ColumnCategory, domain.SortAsc), []int64{4, 8, 1, 7, 6, 9, 2, 3, 5}},
		{"category desc is stable", sorted(domain.ColumnCategory, domain.SortDesc), []int64{2, 3, 5, 6, 9, 1, 7, 4, 8}},
		{"user asc", sorted(domain.ColumnUser, domain.SortAsc), []int64{2, 3, 5, 6, 9, 4, 8, 1, 7}},
		{"user desc", sorted(domain.ColumnUser, domain.SortDesc), []int64{1, 7, 4, 8, 2, 3, 5, 6, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productIDs(engine.Evaluate(rows, tt.query)))
		})
	}
}

func TestEvaluate_SortAfterFilter(t *testing.T) {
	engine, rows := newTestEngine(t)

	q := domain.Query{
		Owner: domain.ByOwner(2),
		Sort:  domain.NewSortState(domain.ColumnProduct, domain.SortAsc),
	}

	assert.Equal(t, []int64{6, 9, 2, 3, 5}, productIDs(engine.Evaluate(rows, q)))
}

func TestEvaluate_SortUsesCollation(t *testing.T) {
	rows := BuildViewRows(nil, nil, []domain.Product{
		{ID: 1, Name: "banana"},
		{ID: 2, Name: "Apple"},
		{ID: 4, Name: "Cherry"},
	})
	engine := NewQueryEngine(nil, language.English)

	got := engine.Evaluate(rows, sorted(domain.ColumnProduct, domain.SortAsc))

	// побайтовое сравнение дало бы Apple, Cherry, banana
	assert.Equal(t, []int64{2, 1, 4}, productIDs(got))
}

func TestEvaluate_SortAbsentUsesEmptySurrogate(t *testing.T) {
	s := testSnapshot()
	products := append(slices.Clone(s.Products),
		domain.Product{ID: 10, Name: "Ghost", CategoryID: 99},
		domain.Product{ID: 11, Name: "Phantom", CategoryID: 98},
	)
	rows := BuildViewRows(s.Users, s.Categories, products)
	engine := NewQueryEngine(s.Categories, language.English)

	byCategory := productIDs(engine.Evaluate(rows, sorted(domain.ColumnCategory, domain.SortAsc)))
	assert.Equal(t, []int64{10, 11}, byCategory[:2])

	byUser := productIDs(engine.Evaluate(rows, sorted(domain.ColumnUser, domain.SortAsc)))
	assert.Equal(t, []int64{10, 11}, byUser[:2])

	byCategoryDesc := productIDs(engine.Evaluate(rows, sorted(domain.ColumnCategory, domain.SortDesc)))
	assert.Equal(t, []int64{10, 11}, byCategoryDesc[len(byCategoryDesc)-2:])
}

func TestEvaluate_SortIdempotent(t *testing.T) {
	engine, rows := newTestEngine(t)

	for _, col := range domain.Columns {
		for _, dir := range []domain.SortDirection{domain.SortAsc, domain.SortDesc} {
			q := sorted(col, dir)
			once := engine.Evaluate(rows, q)
			twice := engine.Evaluate(once, q)
			assert.Equal(t, productIDs(once), productIDs(twice), "%s %s", col, dir)
		}
	}
}

func TestEvaluate_DescIsReverseOfAscForUniqueKeys(t *testing.T) {
	engine, rows := newTestEngine(t)

	for _, col := range []domain.SortColumn{domain.ColumnID, domain.ColumnProduct} {
		asc := productIDs(engine.Evaluate(rows, sorted(col, domain.SortAsc)))
		desc := productIDs(engine.Evaluate(rows, sorted(col, domain.SortDesc)))

		slices.Reverse(desc)
		assert.Equal(t, asc, desc, col.String())
	}
}

func TestEvaluate_EmptyInput(t *testing.T) {
	engine := NewQueryEngine(nil, language.English)

	got := engine.Evaluate(nil, domain.Query{Text: "milk", Sort: domain.NewSortState(domain.ColumnUser, domain.SortDesc)})

	require.NotNil(t, got)
	assert.Empty(t, got)
}
