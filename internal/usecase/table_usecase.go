package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// TableUseCase реализует таблицу товаров: строки собираются один раз, Query применяется на каждый запрос.
type TableUseCase struct {
	catalog   *Catalog
	rows      []domain.ViewRow
	engine    *QueryEngine
	sessions  SessionRepository
	publisher EventPublisher
	metrics   TableMetrics
	logger    logger.Logger
	now       func() time.Time
}

func NewTableUC(
	catalog *Catalog,
	locale language.Tag,
	sessions SessionRepository,
	publisher EventPublisher,
	metrics TableMetrics,
	logger logger.Logger,
) *TableUseCase {
	categories := catalog.Categories()

	return &TableUseCase{
		catalog:   catalog,
		rows:      BuildViewRows(catalog.Users(), categories, catalog.Products()),
		engine:    NewQueryEngine(categories, locale),
		sessions:  sessions,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// GetCatalog возвращает исходные списки сущностей.
func (t *TableUseCase) GetCatalog(_ context.Context) *CatalogRes {
	return NewCatalogRes(t.catalog)
}

// GetTable вычисляет таблицу для переданной Query.
func (t *TableUseCase) GetTable(ctx context.Context, query domain.Query) *TableView {
	_, _, view := t.evaluate(ctx, query)
	return view
}

// OpenSession создает сессию с Query по умолчанию.
func (t *TableUseCase) OpenSession(ctx context.Context) (*SessionRes, error) {
	const op = "TableUseCase.OpenSession"

	session := domain.NewSession(uuid.NewString(), t.now().UTC())
	if err := t.sessions.Create(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	_, _, view := t.evaluate(ctx, session.Query)
	return NewSessionRes(session, view), nil
}

// GetSession возвращает текущую таблицу сессии. Чтение тоже продлевает жизнь сессии.
func (t *TableUseCase) GetSession(ctx context.Context, id string) (*SessionRes, error) {
	const op = "TableUseCase.GetSession"

	session, err := t.sessions.Update(ctx, id, func(s *domain.Session) error {
		s.UpdatedAt = t.now().UTC()
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	_, _, view := t.evaluate(ctx, session.Query)
	return NewSessionRes(session, view), nil
}

// ApplyEvent применяет событие к Query сессии и возвращает новую таблицу.
func (t *TableUseCase) ApplyEvent(ctx context.Context, req *ApplyEventReq) (*SessionRes, error) {
	const op = "TableUseCase.ApplyEvent"

	session, err := t.sessions.Update(ctx, req.SessionID, func(s *domain.Session) error {
		next, err := Reduce(s.Query, req.Event)
		if err != nil {
			return err
		}

		s.Query = next
		s.UpdatedAt = t.now().UTC()
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	t.metrics.RecordEvent(ctx, req.Event.EventType())

	evalCtx, rows, view := t.evaluate(ctx, session.Query)

	// публикация привязывается к span вычисления
	event := NewQueryChangedEvent(uuid.NewString(), session.ID, req.Event.EventType(), session.Query, len(rows), session.UpdatedAt)
	if err := t.publisher.PublishQueryChanged(evalCtx, event); err != nil {
		t.logger.Warnf("Failed to publish query change: %v", e.Wrap(op, err))
	}

	return NewSessionRes(session, view), nil
}

// CloseSession удаляет сессию.
func (t *TableUseCase) CloseSession(ctx context.Context, id string) error {
	const op = "TableUseCase.CloseSession"

	if err := t.sessions.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// EvictIdleSessions удаляет сессии, не менявшиеся дольше ttl.
func (t *TableUseCase) EvictIdleSessions(ctx context.Context, ttl time.Duration) int {
	n := t.sessions.DeleteIdle(ctx, t.now().UTC().Add(-ttl))
	if n > 0 {
		t.logger.Debugf("evicted %d idle sessions", n)
	}

	return n
}

// evaluate возвращает контекст span'а вычисления, чтобы дальнейшие вызовы к нему привязывались.
func (t *TableUseCase) evaluate(ctx context.Context, query domain.Query) (context.Context, []domain.ViewRow, *TableView) {
	ctx, finish := t.metrics.StartEvaluation(ctx, query)
	rows := t.engine.Evaluate(t.rows, query)
	view := NewTableView(t.catalog, query, rows)
	finish(len(t.rows), len(rows))

	return ctx, rows, view
}
