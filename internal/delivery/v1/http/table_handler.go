package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/product-table/internal/usecase"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const maxEventBodySize = 64 << 10

type TableHandler struct {
	tableUsecase usecase.TableUC
	logger       logger.Logger
}

func NewTableHandler(tableUsecase usecase.TableUC, logger logger.Logger) *TableHandler {
	return &TableHandler{tableUsecase: tableUsecase, logger: logger}
}

// getCatalog
//
//	@Summary		Каталог
//	@Description	Возвращает пользователей, категории и товары в исходном порядке. ETag - отпечаток каталога.
//	@Tags			catalog
//	@Produce		json
//	@Param			If-None-Match	header		string			false	"Отпечаток из предыдущего ответа"
//	@Success		200				{object}	CatalogResponse
//	@Success		304				"Каталог не изменился"
//	@Router			/catalog [get]
func (h *TableHandler) getCatalog(w http.ResponseWriter, r *http.Request) {
	res := h.tableUsecase.GetCatalog(r.Context())

	etag := `"` + res.Fingerprint + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCatalogResponse(res))
}

// getProducts
//
//	@Summary		Таблица товаров
//	@Description	Вычисляет таблицу для Query, целиком заданной параметрами запроса.
//	@Tags			products
//	@Produce		json
//	@Param			owner		query		string		false	"id владельца или all"
//	@Param			q			query		string		false	"Поиск по названию (от 2 символов)"
//	@Param			category	query		[]int		false	"id категорий"	collectionFormat(multi)
//	@Param			sort		query		string		false	"Колонка: ID, Product, Category, User"
//	@Param			dir			query		string		false	"asc, desc, none"
//	@Success		200			{object}	TableViewResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (h *TableHandler) getProducts(w http.ResponseWriter, r *http.Request) {
	query, err := parseTableQuery(r.URL.Query())
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	view := h.tableUsecase.GetTable(r.Context(), query)
	WriteSuccess(w, http.StatusOK, NewTableViewResponse(view))
}

// createSession
//
//	@Summary		Новая сессия
//	@Description	Создает сессию представления с Query по умолчанию.
//	@Tags			sessions
//	@Produce		json
//	@Success		201	{object}	SessionResponse
//	@Router			/sessions [post]
func (h *TableHandler) createSession(w http.ResponseWriter, r *http.Request) {
	res, err := h.tableUsecase.OpenSession(r.Context())
	if err != nil {
		h.logger.Errorf(err, "failed to open session")
		WriteError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+res.ID)
	WriteSuccess(w, http.StatusCreated, NewSessionResponse(res))
}

// getSession
//
//	@Summary		Текущая таблица сессии
//	@Description	Чтение, как и событие, продлевает жизнь сессии на SESSION_TTL.
//	@Tags			sessions
//	@Produce		json
//	@Param			id	path		string	true	"id сессии"
//	@Success		200	{object}	SessionResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/sessions/{id} [get]
func (h *TableHandler) getSession(w http.ResponseWriter, r *http.Request) {
	res, err := h.tableUsecase.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewSessionResponse(res))
}

// applyEvent
//
//	@Summary		Событие сессии
//	@Description	Применяет одно действие пользователя к Query сессии и возвращает новую таблицу.
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"id сессии"
//	@Param			event	body		EventRequest	true	"Событие"
//	@Success		200		{object}	SessionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/sessions/{id}/events [post]
func (h *TableHandler) applyEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxEventBodySize)

	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	event, err := toDomainEvent(&req)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.tableUsecase.ApplyEvent(r.Context(), usecase.NewApplyEventReq(chi.URLParam(r, "id"), event))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewSessionResponse(res))
}

// deleteSession
//
//	@Summary	Закрыть сессию
//	@Tags		sessions
//	@Param		id	path	string	true	"id сессии"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/sessions/{id} [delete]
func (h *TableHandler) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.tableUsecase.CloseSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
