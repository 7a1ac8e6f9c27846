// Package snapshot описывает JSON-формат снимка каталога, общий для встроенных данных,
// объекта в MinIO и кэша в Redis.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/pkg/e"
)

type UserModel struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type CategoryModel struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	OwnerID int64  `json:"ownerId"`
}

type ProductModel struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"categoryId"`
}

// Model - документ снимка целиком.
type Model struct {
	Users      []UserModel     `json:"users"`
	Categories []CategoryModel `json:"categories"`
	Products   []ProductModel  `json:"products"`
}

func ToModel(s *domain.CatalogSnapshot) *Model {
	m := &Model{
		Users:      make([]UserModel, 0, len(s.Users)),
		Categories: make([]CategoryModel, 0, len(s.Categories)),
		Products:   make([]ProductModel, 0, len(s.Products)),
	}

	for _, u := range s.Users {
		m.Users = append(m.Users, UserModel{ID: u.ID, Name: u.Name, Sex: u.Sex})
	}
	for _, c := range s.Categories {
		m.Categories = append(m.Categories, CategoryModel{ID: c.ID, Title: c.Title, Icon: c.Icon, OwnerID: c.OwnerID})
	}
	for _, p := range s.Products {
		m.Products = append(m.Products, ProductModel{ID: p.ID, Name: p.Name, CategoryID: p.CategoryID})
	}

	return m
}

func ToEntity(m *Model) *domain.CatalogSnapshot {
	users := make([]domain.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, *domain.NewUser(u.ID, u.Name, u.Sex))
	}

	categories := make([]domain.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, *domain.NewCategory(c.ID, c.Title, c.Icon, c.OwnerID))
	}

	products := make([]domain.Product, 0, len(m.Products))
	for _, p := range m.Products {
		products = append(products, *domain.NewProduct(p.ID, p.Name, p.CategoryID))
	}

	return domain.NewCatalogSnapshot(users, categories, products)
}

// Decode читает снимок из JSON. Неизвестные поля игнорируются.
func Decode(r io.Reader) (*domain.CatalogSnapshot, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrCatalogSnapshot, err)
	}

	return ToEntity(&m), nil
}

// Unmarshal - Decode для готового буфера.
func Unmarshal(data []byte) (*domain.CatalogSnapshot, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrCatalogSnapshot, err)
	}

	return ToEntity(&m), nil
}

func Marshal(s *domain.CatalogSnapshot) ([]byte, error) {
	return json.Marshal(ToModel(s))
}
