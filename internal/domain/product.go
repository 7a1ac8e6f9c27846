package domain

// Product описывает товар каталога
type Product struct {
	ID         int64
	Name       string
	CategoryID int64 // ссылка на Category.ID, может указывать в никуда
}

func NewProduct(id int64, name string, categoryID int64) *Product {
	return &Product{
		ID:         id,
		Name:       name,
		CategoryID: categoryID,
	}
}
