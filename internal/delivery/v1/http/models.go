package http

import (
	"time"

	"github.com/DRSN-tech/product-table/internal/usecase"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// EventRequest - тело POST /sessions/{id}/events. Какие поля обязательны, зависит от type.
type EventRequest struct {
	Type       string  `json:"type" example:"toggle_category"`
	UserID     *int64  `json:"userId,omitempty" example:"1"`
	Text       *string `json:"text,omitempty" example:"milk"`
	CategoryID *int64  `json:"categoryId,omitempty" example:"2"`
	Column     string  `json:"column,omitempty" example:"Product"`
}

type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type CategoryResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	OwnerID int64  `json:"ownerId"`
}

type ProductResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"categoryId"`
}

type CatalogResponse struct {
	Users       []UserResponse     `json:"users"`
	Categories  []CategoryResponse `json:"categories"`
	Products    []ProductResponse  `json:"products"`
	Fingerprint string             `json:"fingerprint"`
}

type QueryStateResponse struct {
	OwnerID       *int64  `json:"ownerId"`
	Text          string  `json:"text"`
	CategoryIDs   []int64 `json:"categoryIds"`
	SortColumn    string  `json:"sortColumn"`
	SortDirection string  `json:"sortDirection"`
}

type OwnerTabResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type CategoryChipResponse struct {
	ID     int64  `json:"id"`
	Label  string `json:"label"`
	Title  string `json:"title"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

type SearchFieldResponse struct {
	Value     string `json:"value"`
	Clearable bool   `json:"clearable"`
}

type ColumnHeaderResponse struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Icon      string `json:"icon"`
}

type RowResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID *int64 `json:"categoryId"`
	Category   string `json:"category"`
	UserID     *int64 `json:"userId"`
	User       string `json:"user"`
	UserStyle  string `json:"userStyle"`
}

type TableViewResponse struct {
	Query               QueryStateResponse     `json:"query"`
	Owners              []OwnerTabResponse     `json:"owners"`
	AllOwnersActive     bool                   `json:"allOwnersActive"`
	Categories          []CategoryChipResponse `json:"categories"`
	AllCategoriesActive bool                   `json:"allCategoriesActive"`
	Search              SearchFieldResponse    `json:"search"`
	Columns             []ColumnHeaderResponse `json:"columns"`
	Rows                []RowResponse          `json:"rows"`
	Empty               bool                   `json:"empty"`
	EmptyMessage        string                 `json:"emptyMessage,omitempty"`
	Fingerprint         string                 `json:"fingerprint"`
}

type SessionResponse struct {
	ID        string            `json:"id"`
	UpdatedAt time.Time         `json:"updatedAt"`
	View      TableViewResponse `json:"view"`
}

// MAPPERS

func NewCatalogResponse(res *usecase.CatalogRes) *CatalogResponse {
	out := &CatalogResponse{
		Users:       make([]UserResponse, 0, len(res.Users)),
		Categories:  make([]CategoryResponse, 0, len(res.Categories)),
		Products:    make([]ProductResponse, 0, len(res.Products)),
		Fingerprint: res.Fingerprint,
	}

	for _, u := range res.Users {
		out.Users = append(out.Users, UserResponse{ID: u.ID, Name: u.Name, Sex: u.Sex})
	}
	for _, c := range res.Categories {
		out.Categories = append(out.Categories, CategoryResponse{ID: c.ID, Title: c.Title, Icon: c.Icon, OwnerID: c.OwnerID})
	}
	for _, p := range res.Products {
		out.Products = append(out.Products, ProductResponse{ID: p.ID, Name: p.Name, CategoryID: p.CategoryID})
	}

	return out
}

func NewTableViewResponse(view *usecase.TableView) TableViewResponse {
	out := TableViewResponse{
		Query:               newQueryStateResponse(view.Query),
		Owners:              make([]OwnerTabResponse, 0, len(view.Owners)),
		AllOwnersActive:     view.AllOwnersActive,
		Categories:          make([]CategoryChipResponse, 0, len(view.Categories)),
		AllCategoriesActive: view.AllCategoriesActive,
		Search:              SearchFieldResponse{Value: view.Search.Value, Clearable: view.Search.Clearable},
		Columns:             make([]ColumnHeaderResponse, 0, len(view.Columns)),
		Rows:                make([]RowResponse, 0, len(view.Rows)),
		Empty:               view.Empty,
		EmptyMessage:        view.EmptyMessage,
		Fingerprint:         view.Fingerprint,
	}

	for _, o := range view.Owners {
		out.Owners = append(out.Owners, OwnerTabResponse{ID: o.ID, Name: o.Name, Active: o.Active})
	}
	for _, c := range view.Categories {
		out.Categories = append(out.Categories, CategoryChipResponse{
			ID:     c.ID,
			Label:  c.Label,
			Title:  c.Title,
			Icon:   c.Icon,
			Active: c.Active,
		})
	}
	for _, c := range view.Columns {
		out.Columns = append(out.Columns, ColumnHeaderResponse{Name: c.Name, Direction: c.Direction, Icon: c.Icon})
	}
	for _, r := range view.Rows {
		out.Rows = append(out.Rows, RowResponse{
			ID:         r.ID,
			Name:       r.Name,
			CategoryID: r.CategoryID,
			Category:   r.CategoryCell,
			UserID:     r.UserID,
			User:       r.UserName,
			UserStyle:  r.UserStyle,
		})
	}

	return out
}

func NewSessionResponse(res *usecase.SessionRes) *SessionResponse {
	return &SessionResponse{
		ID:        res.ID,
		UpdatedAt: res.UpdatedAt,
		View:      NewTableViewResponse(res.View),
	}
}

func newQueryStateResponse(q usecase.QueryState) QueryStateResponse {
	ids := q.CategoryIDs
	if ids == nil {
		ids = []int64{}
	}

	return QueryStateResponse{
		OwnerID:       q.OwnerID,
		Text:          q.Text,
		CategoryIDs:   ids,
		SortColumn:    q.SortColumn,
		SortDirection: q.SortDirection,
	}
}
