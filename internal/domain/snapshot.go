package domain

// CatalogSnapshot - три плоских списка сущностей в том виде, в каком их отдает источник.
type CatalogSnapshot struct {
	Users      []User
	Categories []Category
	Products   []Product
}

func NewCatalogSnapshot(users []User, categories []Category, products []Product) *CatalogSnapshot {
	return &CatalogSnapshot{
		Users:      users,
		Categories: categories,
		Products:   products,
	}
}
