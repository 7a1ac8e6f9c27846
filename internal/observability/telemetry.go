package observability

import (
	"context"
	"errors"
	"io"

	"github.com/DRSN-tech/product-table/internal/cfg"
	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/jimlawless/whereami"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Telemetry владеет SDK-провайдерами трейсов и метрик.
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
}

// NewTelemetry собирает провайдеры с экспортером из конфигурации.
// При ExporterNone спаны и метрики собираются, но никуда не выгружаются.
func NewTelemetry(config *cfg.OtelCfg, w io.Writer) (*Telemetry, error) {
	res := resource.NewSchemaless(attribute.String("service.name", config.ServiceName))

	traceOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	meterOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	if config.Exporter == cfg.ExporterStdout {
		spanExporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		traceOpts = append(traceOpts, sdktrace.WithBatcher(spanExporter))
		meterOpts = append(meterOpts, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(config.MetricInterval)),
		))
	}

	return &Telemetry{
		TracerProvider: sdktrace.NewTracerProvider(traceOpts...),
		MeterProvider:  sdkmetric.NewMeterProvider(meterOpts...),
	}, nil
}

// Register делает провайдеры глобальными для otel.GetTracerProvider/GetMeterProvider.
func (t *Telemetry) Register() {
	otel.SetTracerProvider(t.TracerProvider)
	otel.SetMeterProvider(t.MeterProvider)
}

// Shutdown выгружает накопленные данные и останавливает провайдеры.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	return errors.Join(
		t.TracerProvider.Shutdown(ctx),
		t.MeterProvider.Shutdown(ctx),
	)
}
