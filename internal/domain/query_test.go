package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerFilter(t *testing.T) {
	var zero OwnerFilter
	_, ok := zero.UserID()
	assert.False(t, ok)
	assert.Equal(t, AnyOwner(), zero)

	id, ok := ByOwner(3).UserID()
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)
}

func TestCategorySelection_ToggleDoesNotMutate(t *testing.T) {
	base := NewCategorySelection(1, 3)

	added := base.Toggle(2)
	removed := base.Toggle(1)

	assert.Equal(t, []int64{1, 3}, base.IDs())
	assert.Equal(t, []int64{1, 2, 3}, added.IDs())
	assert.Equal(t, []int64{3}, removed.IDs())
}

func TestCategorySelection_ToggleBackToEmpty(t *testing.T) {
	sel := CategorySelection{}.Toggle(5).Toggle(5)

	assert.True(t, sel.IsEmpty())
	assert.Equal(t, CategorySelection{}, sel)
	assert.False(t, sel.Has(5))
}

func TestViewRow_Surrogates(t *testing.T) {
	row := ViewRow{Product: Product{ID: 1, Name: "Apple"}}

	assert.Equal(t, "", row.CategoryTitle())
	assert.Equal(t, "", row.UserName())
	_, ok := row.UserID()
	assert.False(t, ok)

	row.Category = &Category{ID: 1, Title: "Fruits"}
	row.User = &User{ID: 7, Name: "Max"}
	assert.Equal(t, "Fruits", row.CategoryTitle())
	assert.Equal(t, "Max", row.UserName())
	id, ok := row.UserID()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}
