package domain

// SexMale - значение User.Sex, влияющее только на стиль отображения
const SexMale = "m"

// User описывает владельца категорий
type User struct {
	ID   int64
	Name string
	Sex  string
}

func NewUser(id int64, name string, sex string) *User {
	return &User{
		ID:   id,
		Name: name,
		Sex:  sex,
	}
}
