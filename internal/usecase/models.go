package usecase

import (
	"time"

	"github.com/DRSN-tech/product-table/internal/domain"
)

// TABLE USECASE

// NoMatchingMessage - сообщение пустого состояния таблицы.
const NoMatchingMessage = "No products matching selected criteria"

// Классы иконок сортировки в заголовках колонок.
const (
	SortIconNone = "fa-sort"
	SortIconAsc  = "fa-sort-up"
	SortIconDesc = "fa-sort-down"
)

// Стили имени владельца.
const (
	UserStyleMale   = "has-text-link"
	UserStyleFemale = "has-text-danger"
)

// CatalogRes - содержимое каталога и его отпечаток.
type CatalogRes struct {
	Users       []domain.User
	Categories  []domain.Category
	Products    []domain.Product
	Fingerprint string
}

// TableView - модель представления таблицы: панели фильтров, заголовки и строки.
type TableView struct {
	Query               QueryState
	Owners              []OwnerTab
	AllOwnersActive     bool
	Categories          []CategoryChip
	AllCategoriesActive bool
	Search              SearchField
	Columns             []ColumnHeader
	Rows                []RowView
	Empty               bool
	EmptyMessage        string
	Fingerprint         string
}

// OwnerTab - вкладка фильтра по владельцу.
type OwnerTab struct {
	ID     int64
	Name   string
	Active bool
}

// CategoryChip - кнопка фильтра категорий.
type CategoryChip struct {
	ID     int64
	Label  string
	Title  string
	Icon   string
	Active bool
}

// SearchField - состояние поля поиска.
type SearchField struct {
	Value     string
	Clearable bool
}

// ColumnHeader - заголовок колонки с состоянием сортировки.
type ColumnHeader struct {
	Name      string
	Direction string
	Icon      string
}

// RowView - отрисованная строка таблицы.
type RowView struct {
	ID           int64
	Name         string
	CategoryID   *int64
	CategoryCell string
	UserID       *int64
	UserName     string
	UserStyle    string
}

// QueryState - плоское представление Query для ответов и событий.
type QueryState struct {
	OwnerID       *int64
	Text          string
	CategoryIDs   []int64
	SortColumn    string
	SortDirection string
}

// SessionRes - сессия представления вместе с текущей таблицей.
type SessionRes struct {
	ID        string
	UpdatedAt time.Time
	View      *TableView
}

// ApplyEventReq - запрос на применение события к сессии.
type ApplyEventReq struct {
	SessionID string
	Event     domain.QueryEvent
}

// RetryPolicy - параметры повторных попыток загрузки каталога.
type RetryPolicy struct {
	Attempts int
	Base     time.Duration
	Max      time.Duration
}

// INFRASTUCTURE

// QueryChangedEvent - событие изменения Query в сессии.
type QueryChangedEvent struct {
	EventID    string
	SessionID  string
	EventType  string
	Query      QueryState
	RowCount   int
	OccurredAt time.Time
}

// MAPPERS

func NewQueryState(q domain.Query) QueryState {
	state := QueryState{
		Text:          q.Text,
		CategoryIDs:   q.Categories.IDs(),
		SortColumn:    q.Sort.Column.String(),
		SortDirection: q.Sort.Direction.String(),
	}
	if id, ok := q.Owner.UserID(); ok {
		state.OwnerID = &id
	}

	return state
}

func NewCatalogRes(c *Catalog) *CatalogRes {
	return &CatalogRes{
		Users:       c.Users(),
		Categories:  c.Categories(),
		Products:    c.Products(),
		Fingerprint: c.Fingerprint(),
	}
}

func NewSessionRes(session *domain.Session, view *TableView) *SessionRes {
	return &SessionRes{
		ID:        session.ID,
		UpdatedAt: session.UpdatedAt,
		View:      view,
	}
}

func NewApplyEventReq(sessionID string, event domain.QueryEvent) *ApplyEventReq {
	return &ApplyEventReq{
		SessionID: sessionID,
		Event:     event,
	}
}

func NewRetryPolicy(attempts int, base, max time.Duration) RetryPolicy {
	if attempts < 1 {
		attempts = 1
	}

	return RetryPolicy{
		Attempts: attempts,
		Base:     base,
		Max:      max,
	}
}

func NewQueryChangedEvent(id, sessionID, eventType string, q domain.Query, rowCount int, at time.Time) *QueryChangedEvent {
	return &QueryChangedEvent{
		EventID:    id,
		SessionID:  sessionID,
		EventType:  eventType,
		Query:      NewQueryState(q),
		RowCount:   rowCount,
		OccurredAt: at,
	}
}
