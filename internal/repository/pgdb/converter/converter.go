package converter

import "github.com/DRSN-tech/product-table/internal/domain"

// UserConverter преобразует User между domain и моделью PostgreSQL.
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
}

// CategoryConverter преобразует Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// ProductConverter преобразует Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

type UserConverterImpl struct{}

func NewUserConverterImpl() *UserConverterImpl { return &UserConverterImpl{} }

func (c *UserConverterImpl) ToModel(entity *domain.User) *UserModel {
	if entity == nil {
		return nil
	}
	return &UserModel{ID: entity.ID, Name: entity.Name, Sex: entity.Sex}
}

func (c *UserConverterImpl) ToEntity(model *UserModel) *domain.User {
	if model == nil {
		return nil
	}
	return domain.NewUser(model.ID, model.Name, model.Sex)
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl { return &CategoryConverterImpl{} }

func (c *CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	if entity == nil {
		return nil
	}
	return &CategoryModel{ID: entity.ID, Title: entity.Title, Icon: entity.Icon, OwnerID: entity.OwnerID}
}

func (c *CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}
	return domain.NewCategory(model.ID, model.Title, model.Icon, model.OwnerID)
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl { return &ProductConverterImpl{} }

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}
	return &ProductModel{ID: entity.ID, Name: entity.Name, CategoryID: entity.CategoryID}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}
	return domain.NewProduct(model.ID, model.Name, model.CategoryID)
}
