package converter

import (
	"testing"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserConverter(t *testing.T) {
	conv := NewUserConverterImpl()

	tests := []struct {
		name   string
		entity *domain.User
		model  *UserModel
	}{
		{"male", &domain.User{ID: 1, Name: "Roma", Sex: "m"}, &UserModel{ID: 1, Name: "Roma", Sex: "m"}},
		{"female", &domain.User{ID: 2, Name: "Anna", Sex: "f"}, &UserModel{ID: 2, Name: "Anna", Sex: "f"}},
		{"empty sex", &domain.User{ID: 3, Name: "Max"}, &UserModel{ID: 3, Name: "Max"}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.model, conv.ToModel(tt.entity))
			assert.Equal(t, tt.entity, conv.ToEntity(tt.model))
		})
	}
}

func TestCategoryConverter(t *testing.T) {
	conv := NewCategoryConverterImpl()

	tests := []struct {
		name   string
		entity *domain.Category
		model  *CategoryModel
	}{
		{"with owner", &domain.Category{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1}, &CategoryModel{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1}},
		{"dangling owner", &domain.Category{ID: 7, Title: "Orphans", OwnerID: 42}, &CategoryModel{ID: 7, Title: "Orphans", OwnerID: 42}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.model, conv.ToModel(tt.entity))
			assert.Equal(t, tt.entity, conv.ToEntity(tt.model))
		})
	}
}

func TestProductConverter(t *testing.T) {
	conv := NewProductConverterImpl()

	tests := []struct {
		name   string
		entity *domain.Product
		model  *ProductModel
	}{
		{"known category", &domain.Product{ID: 1, Name: "Milk", CategoryID: 2}, &ProductModel{ID: 1, Name: "Milk", CategoryID: 2}},
		{"unknown category", &domain.Product{ID: 10, Name: "Ghost", CategoryID: 99}, &ProductModel{ID: 10, Name: "Ghost", CategoryID: 99}},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.model, conv.ToModel(tt.entity))
			assert.Equal(t, tt.entity, conv.ToEntity(tt.model))
		})
	}
}
