package domain

// Category описывает категорию товаров и ее владельца
type Category struct {
	ID      int64
	Title   string
	Icon    string
	OwnerID int64 // ссылка на User.ID, может указывать в никуда
}

func NewCategory(id int64, title string, icon string, ownerID int64) *Category {
	return &Category{
		ID:      id,
		Title:   title,
		Icon:    icon,
		OwnerID: ownerID,
	}
}
