package usecase

import (
	"testing"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildViewRows_SpecExample(t *testing.T) {
	users := []domain.User{{ID: 1, Name: "Max"}}
	categories := []domain.Category{{ID: 1, Title: "Fruits", Icon: "🍎", OwnerID: 1}}
	products := []domain.Product{
		{ID: 1, Name: "Apple", CategoryID: 1},
		{ID: 2, Name: "Banana", CategoryID: 99},
	}

	rows := BuildViewRows(users, categories, products)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Category)
	require.NotNil(t, rows[0].User)
	assert.Equal(t, "Fruits", rows[0].Category.Title)
	assert.Equal(t, "Max", rows[0].User.Name)

	assert.Nil(t, rows[1].Category)
	assert.Nil(t, rows[1].User)
}

func TestBuildViewRows_PreservesOrderAndLength(t *testing.T) {
	s := testSnapshot()
	products := []domain.Product{s.Products[8], s.Products[0], s.Products[4], s.Products[0]}

	rows := BuildViewRows(s.Users, s.Categories, products)

	assert.Equal(t, []int64{9, 1, 5, 1}, productIDs(rows))
}

func TestBuildViewRows_MissingOwner(t *testing.T) {
	categories := []domain.Category{{ID: 1, Title: "Orphans", OwnerID: 42}}
	products := []domain.Product{{ID: 1, Name: "Lost", CategoryID: 1}}

	rows := BuildViewRows(nil, categories, products)
	require.Len(t, rows, 1)

	assert.NotNil(t, rows[0].Category)
	assert.Nil(t, rows[0].User)
}

func TestBuildViewRows_AbsentCategoryImpliesAbsentUser(t *testing.T) {
	// пользователь с id 0 не должен находиться для товара без категории
	users := []domain.User{{ID: 0, Name: "Zero"}}
	products := []domain.Product{{ID: 1, Name: "Nowhere", CategoryID: 7}}

	rows := BuildViewRows(users, nil, products)
	require.Len(t, rows, 1)

	assert.Nil(t, rows[0].Category)
	assert.Nil(t, rows[0].User)
}

func TestBuildViewRows_FirstMatchWins(t *testing.T) {
	users := []domain.User{{ID: 1, Name: "First"}, {ID: 1, Name: "Second"}}
	categories := []domain.Category{
		{ID: 1, Title: "A", OwnerID: 1},
		{ID: 1, Title: "B", OwnerID: 1},
	}
	products := []domain.Product{{ID: 1, Name: "P", CategoryID: 1}}

	rows := BuildViewRows(users, categories, products)

	assert.Equal(t, "A", rows[0].Category.Title)
	assert.Equal(t, "First", rows[0].User.Name)
}

func TestBuildViewRows_Idempotent(t *testing.T) {
	s := testSnapshot()

	first := BuildViewRows(s.Users, s.Categories, s.Products)
	second := BuildViewRows(s.Users, s.Categories, s.Products)

	assert.Equal(t, first, second)
}

func TestBuildViewRows_Empty(t *testing.T) {
	rows := BuildViewRows(nil, nil, nil)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
