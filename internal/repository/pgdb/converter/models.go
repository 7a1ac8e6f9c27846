package converter

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Sex  string `db:"sex"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID      int64  `db:"id"`
	Title   string `db:"title"`
	Icon    string `db:"icon"`
	OwnerID int64  `db:"owner_id"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	CategoryID int64  `db:"category_id"`
}
