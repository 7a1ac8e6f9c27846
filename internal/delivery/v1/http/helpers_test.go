package http

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"sort column", e.Wrap("Price", e.ErrInvalidSortColumn), http.StatusBadRequest, e.ErrInvalidSortColumn.Error()},
		{"unknown event", e.Wrap("x", e.ErrUnknownEvent), http.StatusBadRequest, e.ErrUnknownEvent.Error()},
		{"session", e.Wrap("op", e.ErrSessionNotFound), http.StatusNotFound, e.ErrSessionNotFound.Error()},
		{"other", errors.New("db is down"), http.StatusInternalServerError, e.ErrInternalServerError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestParseTableQuery_Default(t *testing.T) {
	q, err := parseTableQuery(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, domain.Query{}.Sort, q.Sort)
	assert.False(t, q.Owner.IsSet())
	assert.True(t, q.Categories.IsEmpty())
}

func TestParseTableQuery_DirWithoutSortAppliesToID(t *testing.T) {
	q, err := parseTableQuery(url.Values{"dir": {"desc"}})
	require.NoError(t, err)

	assert.Equal(t, domain.NewSortState(domain.ColumnID, domain.SortDesc), q.Sort)
}

func TestToDomainEvent(t *testing.T) {
	user, category, text := int64(3), int64(5), "milk"

	tests := []struct {
		req  EventRequest
		want domain.QueryEvent
	}{
		{EventRequest{Type: "select_owner", UserID: &user}, domain.SelectOwner{UserID: 3}},
		{EventRequest{Type: "ALL_OWNERS"}, domain.AllOwners{}},
		{EventRequest{Type: "set_text", Text: &text}, domain.SetText{Text: "milk"}},
		{EventRequest{Type: "clear_text"}, domain.ClearText{}},
		{EventRequest{Type: "toggle_category", CategoryID: &category}, domain.ToggleCategory{CategoryID: 5}},
		{EventRequest{Type: "all_categories"}, domain.AllCategories{}},
		{EventRequest{Type: "click_sort", Column: "user"}, domain.ClickSort{Column: domain.ColumnUser}},
		{EventRequest{Type: "reset_filters"}, domain.ResetFilters{}},
	}

	for _, tt := range tests {
		t.Run(tt.req.Type, func(t *testing.T) {
			got, err := toDomainEvent(&tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
