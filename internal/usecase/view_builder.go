package usecase

import "github.com/DRSN-tech/product-table/internal/domain"

// BuildViewRows соединяет товары с категориями и владельцами категорий.
// Порядок товаров сохраняется; при нескольких совпадениях берется первое.
// Ненайденная категория или владелец дает nil, а не ошибку.
func BuildViewRows(users []domain.User, categories []domain.Category, products []domain.Product) []domain.ViewRow {
	categoryIdx := firstIndex(categories, func(c domain.Category) int64 { return c.ID })
	userIdx := firstIndex(users, func(u domain.User) int64 { return u.ID })

	rows := make([]domain.ViewRow, 0, len(products))
	for _, product := range products {
		row := domain.ViewRow{Product: product}

		if i, ok := categoryIdx[product.CategoryID]; ok {
			category := categories[i]
			row.Category = &category

			if j, ok := userIdx[category.OwnerID]; ok {
				user := users[j]
				row.User = &user
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// firstIndex строит индекс id -> позиция первого элемента с этим id.
func firstIndex[T any](items []T, id func(T) int64) map[int64]int {
	idx := make(map[int64]int, len(items))
	for i, item := range items {
		key := id(item)
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}

	return idx
}
