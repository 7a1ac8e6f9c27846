package domain

// QueryEvent - действие пользователя, изменяющее Query.
type QueryEvent interface {
	EventType() string
}

const (
	EventSelectOwner    = "select_owner"
	EventAllOwners      = "all_owners"
	EventSetText        = "set_text"
	EventClearText      = "clear_text"
	EventToggleCategory = "toggle_category"
	EventAllCategories  = "all_categories"
	EventClickSort      = "click_sort"
	EventResetFilters   = "reset_filters"
)

type SelectOwner struct {
	UserID int64
}

type AllOwners struct{}

type SetText struct {
	Text string
}

type ClearText struct{}

type ToggleCategory struct {
	CategoryID int64
}

type AllCategories struct{}

type ClickSort struct {
	Column SortColumn
}

// ResetFilters сбрасывает владельца, поиск и категории; сортировка сохраняется.
type ResetFilters struct{}

func (SelectOwner) EventType() string    { return EventSelectOwner }
func (AllOwners) EventType() string      { return EventAllOwners }
func (SetText) EventType() string        { return EventSetText }
func (ClearText) EventType() string      { return EventClearText }
func (ToggleCategory) EventType() string { return EventToggleCategory }
func (AllCategories) EventType() string  { return EventAllCategories }
func (ClickSort) EventType() string      { return EventClickSort }
func (ResetFilters) EventType() string   { return EventResetFilters }
