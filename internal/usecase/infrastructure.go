package usecase

import (
	"context"

	"github.com/DRSN-tech/product-table/internal/domain"
)

// EventPublisher публикует события изменения Query во внешнюю шину.
type EventPublisher interface {
	PublishQueryChanged(ctx context.Context, event *QueryChangedEvent) error
}

// TableMetrics собирает метрики и трейсы вычислений таблицы.
type TableMetrics interface {
	StartEvaluation(ctx context.Context, query domain.Query) (context.Context, func(rowsIn, rowsOut int))
	RecordEvent(ctx context.Context, eventType string)
}
