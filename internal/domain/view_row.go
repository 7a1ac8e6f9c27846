package domain

// ViewRow - товар вместе с найденной категорией и владельцем категории.
// nil в Category или User означает, что связанная сущность не найдена.
type ViewRow struct {
	Product  Product
	Category *Category
	User     *User
}

// CategoryTitle возвращает название категории или пустую строку, если категории нет.
func (r ViewRow) CategoryTitle() string {
	if r.Category == nil {
		return ""
	}
	return r.Category.Title
}

// UserName возвращает имя владельца или пустую строку, если владельца нет.
func (r ViewRow) UserName() string {
	if r.User == nil {
		return ""
	}
	return r.User.Name
}

// UserID возвращает id владельца и false, если владельца нет.
func (r ViewRow) UserID() (int64, bool) {
	if r.User == nil {
		return 0, false
	}
	return r.User.ID, true
}
