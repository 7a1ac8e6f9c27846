// Package janitor периодически удаляет сессии представления, которые давно не менялись.
package janitor

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/product-table/pkg/logger"
)

// Evictor удаляет сессии, не менявшиеся дольше ttl, и возвращает их число.
type Evictor interface {
	EvictIdleSessions(ctx context.Context, ttl time.Duration) int
}

type SessionJanitor struct {
	evictor  Evictor
	ttl      time.Duration
	interval time.Duration
	logger   logger.Logger
	stop     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

// NewSessionJanitor создает janitor. Проверка идет раз в ttl/4, но не чаще раза в секунду.
func NewSessionJanitor(evictor Evictor, ttl time.Duration, logger logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		evictor:  evictor,
		ttl:      ttl,
		interval: max(ttl/4, time.Second),
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

func (j *SessionJanitor) Start(ctx context.Context) {
	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		j.run(ctx)
	}()
}

// Stop останавливает цикл и ждет его завершения. Повторный вызов безопасен.
func (j *SessionJanitor) Stop(context.Context) error {
	j.once.Do(func() { close(j.stop) })
	j.wg.Wait()
	return nil
}

func (j *SessionJanitor) run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Infof("session janitor started: ttl=%s interval=%s", j.ttl, j.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-j.stop:
			return
		case <-ticker.C:
			if n := j.evictor.EvictIdleSessions(ctx, j.ttl); n > 0 {
				j.logger.Infof("evicted %d idle sessions", n)
			}
		}
	}
}
