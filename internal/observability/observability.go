// Package observability собирает метрики и трейсы вычисления таблицы через OpenTelemetry
// и дублирует длительность вычисления в заголовок Server-Timing.
package observability

import (
	"context"
	"time"

	"github.com/DRSN-tech/product-table/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	ScopeName = "github.com/DRSN-tech/product-table"

	AttrOwnerSet       = "table.query.owner_set"
	AttrTextLen        = "table.query.text_len"
	AttrCategoryCount  = "table.query.category_count"
	AttrSortColumn     = "table.query.sort_column"
	AttrSortDirection  = "table.query.sort_direction"
	AttrRowsIn         = "table.rows_in"
	AttrRowsOut        = "table.rows_out"
	AttrEventType      = "table.event_type"
	serverTimingMetric = "evaluate"
)

// TableMetrics реализует usecase.TableMetrics.
type TableMetrics struct {
	tracer             trace.Tracer
	evaluationDuration metric.Float64Histogram
	resultRows         metric.Int64Histogram
	eventCount         metric.Int64Counter
}

func NewTableMetrics(mp metric.MeterProvider, tp trace.TracerProvider) *TableMetrics {
	meter := mp.Meter(ScopeName)
	m := &TableMetrics{tracer: tp.Tracer(ScopeName)}

	// Ошибка возможна только при некорректных параметрах инструмента; в этом случае
	// берем инструмент без описания.
	var err error

	m.evaluationDuration, err = meter.Float64Histogram(
		"table.evaluation.duration",
		metric.WithDescription("Duration of query evaluation over view rows"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.evaluationDuration, _ = meter.Float64Histogram("table.evaluation.duration")
	}

	m.resultRows, err = meter.Int64Histogram(
		"table.result.rows",
		metric.WithDescription("Number of rows left after filtering"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		m.resultRows, _ = meter.Int64Histogram("table.result.rows")
	}

	m.eventCount, err = meter.Int64Counter(
		"table.event.count",
		metric.WithDescription("Query events applied to view sessions"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		m.eventCount, _ = meter.Int64Counter("table.event.count")
	}

	return m
}

// StartEvaluation открывает span вычисления. finish нужно вызвать ровно один раз.
func (m *TableMetrics) StartEvaluation(ctx context.Context, query domain.Query) (context.Context, func(rowsIn, rowsOut int)) {
	ctx, span := m.tracer.Start(ctx, "table.evaluate", trace.WithAttributes(QueryAttrs(query)...))
	timing := StartServerTiming(ctx, serverTimingMetric)
	start := time.Now()

	return ctx, func(rowsIn, rowsOut int) {
		elapsed := time.Since(start)
		timing.Stop()

		attrs := metric.WithAttributes(
			attribute.String(AttrSortColumn, query.Sort.Column.String()),
			attribute.String(AttrSortDirection, query.Sort.Direction.String()),
		)
		m.evaluationDuration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
		m.resultRows.Record(ctx, int64(rowsOut), attrs)

		span.SetAttributes(
			attribute.Int(AttrRowsIn, rowsIn),
			attribute.Int(AttrRowsOut, rowsOut),
		)
		span.End()
	}
}

func (m *TableMetrics) RecordEvent(ctx context.Context, eventType string) {
	m.eventCount.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrEventType, eventType)))
}

// QueryAttrs описывает Query без пользовательского текста: в атрибуты попадает только его длина.
func QueryAttrs(query domain.Query) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Bool(AttrOwnerSet, query.Owner.IsSet()),
		attribute.Int(AttrTextLen, len([]rune(query.Text))),
		attribute.Int(AttrCategoryCount, query.Categories.Len()),
		attribute.String(AttrSortColumn, query.Sort.Column.String()),
		attribute.String(AttrSortDirection, query.Sort.Direction.String()),
	}
}
