package observability

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/product-table/internal/cfg"
	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func findMetric(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Metrics {
	t.Helper()

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m
			}
		}
	}

	t.Fatalf("metric %s not recorded", name)
	return metricdata.Metrics{}
}

func TestTableMetrics_RecordsWithSDK(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

	m := NewTableMetrics(mp, tp)
	ctx := context.Background()

	evalCtx, finish := m.StartEvaluation(ctx, domain.Query{Sort: domain.NewSortState(domain.ColumnProduct, domain.SortAsc)})
	finish(9, 5)
	m.RecordEvent(ctx, domain.EventClickSort)
	m.RecordEvent(ctx, domain.EventClickSort)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	duration, ok := findMetric(t, rm, "table.evaluation.duration").Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, duration.DataPoints, 1)
	assert.Equal(t, uint64(1), duration.DataPoints[0].Count)

	rows, ok := findMetric(t, rm, "table.result.rows").Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	require.Len(t, rows.DataPoints, 1)
	assert.Equal(t, int64(5), rows.DataPoints[0].Sum)

	events, ok := findMetric(t, rm, "table.event.count").Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, events.DataPoints, 1)
	assert.Equal(t, int64(2), events.DataPoints[0].Value)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "table.evaluate", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.Int(AttrRowsOut, 5))
	assert.Equal(t, ended[0].SpanContext(), trace.SpanContextFromContext(evalCtx))
}

func TestNewTelemetry_StdoutExportsOnShutdown(t *testing.T) {
	var out bytes.Buffer
	tel, err := NewTelemetry(&cfg.OtelCfg{
		Exporter:       cfg.ExporterStdout,
		ServiceName:    "product-table-test",
		MetricInterval: time.Hour,
	}, &out)
	require.NoError(t, err)

	m := NewTableMetrics(tel.MeterProvider, tel.TracerProvider)
	_, finish := m.StartEvaluation(context.Background(), domain.Query{})
	finish(9, 9)
	m.RecordEvent(context.Background(), domain.EventResetFilters)

	require.NoError(t, tel.Shutdown(context.Background()))

	assert.Contains(t, out.String(), "table.evaluate")
	assert.Contains(t, out.String(), "table.evaluation.duration")
	assert.Contains(t, out.String(), "table.event.count")
	assert.Contains(t, out.String(), "product-table-test")
}

func TestNewTelemetry_NoneRecordsWithoutExport(t *testing.T) {
	var out bytes.Buffer
	tel, err := NewTelemetry(&cfg.OtelCfg{Exporter: cfg.ExporterNone, ServiceName: "x", MetricInterval: time.Minute}, &out)
	require.NoError(t, err)

	m := NewTableMetrics(tel.MeterProvider, tel.TracerProvider)
	ctx, finish := m.StartEvaluation(context.Background(), domain.Query{})
	finish(1, 1)

	assert.True(t, trace.SpanContextFromContext(ctx).IsValid())
	require.NoError(t, tel.Shutdown(context.Background()))
	assert.Empty(t, out.String())
}

func TestTelemetry_Register(t *testing.T) {
	prevTP, prevMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	})

	tel, err := NewTelemetry(&cfg.OtelCfg{Exporter: cfg.ExporterNone, ServiceName: "x", MetricInterval: time.Minute}, &bytes.Buffer{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tel.Shutdown(context.Background()) })

	tel.Register()

	m := NewTableMetrics(otel.GetMeterProvider(), otel.GetTracerProvider())
	ctx, finish := m.StartEvaluation(context.Background(), domain.Query{})
	defer finish(0, 0)

	assert.True(t, trace.SpanFromContext(ctx).IsRecording())
}
