package observability

import (
	"context"

	servertiming "github.com/mitchellh/go-server-timing"
)

// ServerTimingMetric - метрика Server-Timing; нулевое значение ничего не делает.
type ServerTimingMetric struct {
	metric *servertiming.Metric
}

func (m *ServerTimingMetric) Stop() {
	if m != nil && m.metric != nil {
		m.metric.Stop()
	}
}

// StartServerTiming запускает метрику, если в контексте есть заголовок Server-Timing
// (его кладет servertiming.Middleware).
func StartServerTiming(ctx context.Context, name string) *ServerTimingMetric {
	timing := servertiming.FromContext(ctx)
	if timing == nil {
		return &ServerTimingMetric{}
	}

	return &ServerTimingMetric{metric: timing.NewMetric(name).Start()}
}
