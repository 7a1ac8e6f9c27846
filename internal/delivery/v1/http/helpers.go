package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/pkg/e"
)

// badRequestErrors - ошибки, которые отдаются клиенту как 400 со своим текстом.
var badRequestErrors = []error{
	e.ErrInvalidOwnerID,
	e.ErrInvalidCategoryID,
	e.ErrInvalidSortColumn,
	e.ErrInvalidSortDirection,
	e.ErrUnknownEvent,
	e.ErrStatusBadRequest,
}

func ToHTTPResponse(err error) (int, string) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}

	switch {
	case errors.Is(err, e.ErrSessionNotFound):
		return http.StatusNotFound, e.ErrSessionNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// parseTableQuery разбирает Query из параметров:
// owner=<id>|all, q=<text>, category=<id> (повторяемый или через запятую), sort=<колонка>, dir=asc|desc|none.
// sort без dir означает asc, dir без sort относится к колонке ID.
func parseTableQuery(values url.Values) (domain.Query, error) {
	owner := domain.AnyOwner()
	if raw := strings.TrimSpace(values.Get("owner")); raw != "" && !strings.EqualFold(raw, "all") {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.Query{}, e.Wrap(fmt.Sprintf("owner=%q", raw), e.ErrInvalidOwnerID)
		}
		owner = domain.ByOwner(id)
	}

	var ids []int64
	for _, raw := range values["category"] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return domain.Query{}, e.Wrap(fmt.Sprintf("category=%q", part), e.ErrInvalidCategoryID)
			}
			ids = append(ids, id)
		}
	}

	sort, err := parseSort(values.Get("sort"), values.Get("dir"))
	if err != nil {
		return domain.Query{}, err
	}

	return domain.NewQuery(owner, strings.TrimSpace(values.Get("q")), domain.NewCategorySelection(ids...), sort), nil
}

func parseSort(rawColumn, rawDir string) (domain.SortState, error) {
	column := domain.ColumnID
	dir := domain.SortNone

	if rawColumn = strings.TrimSpace(rawColumn); rawColumn != "" {
		var err error
		if column, err = domain.ParseSortColumn(rawColumn); err != nil {
			return domain.SortState{}, err
		}
		dir = domain.SortAsc
	}

	if strings.TrimSpace(rawDir) != "" {
		var err error
		if dir, err = domain.ParseSortDirection(rawDir); err != nil {
			return domain.SortState{}, err
		}
	}

	return domain.NewSortState(column, dir), nil
}

// toDomainEvent проверяет обязательные для типа поля и собирает событие.
func toDomainEvent(req *EventRequest) (domain.QueryEvent, error) {
	switch strings.ToLower(strings.TrimSpace(req.Type)) {
	case domain.EventSelectOwner:
		if req.UserID == nil {
			return nil, e.Wrap("userId is required", e.ErrStatusBadRequest)
		}
		return domain.SelectOwner{UserID: *req.UserID}, nil
	case domain.EventAllOwners:
		return domain.AllOwners{}, nil
	case domain.EventSetText:
		if req.Text == nil {
			return nil, e.Wrap("text is required", e.ErrStatusBadRequest)
		}
		return domain.SetText{Text: *req.Text}, nil
	case domain.EventClearText:
		return domain.ClearText{}, nil
	case domain.EventToggleCategory:
		if req.CategoryID == nil {
			return nil, e.Wrap("categoryId is required", e.ErrStatusBadRequest)
		}
		return domain.ToggleCategory{CategoryID: *req.CategoryID}, nil
	case domain.EventAllCategories:
		return domain.AllCategories{}, nil
	case domain.EventClickSort:
		column, err := domain.ParseSortColumn(strings.TrimSpace(req.Column))
		if err != nil {
			return nil, err
		}
		return domain.ClickSort{Column: column}, nil
	case domain.EventResetFilters:
		return domain.ResetFilters{}, nil
	default:
		return nil, e.Wrap(fmt.Sprintf("type=%q", req.Type), e.ErrUnknownEvent)
	}
}
