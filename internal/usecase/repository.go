package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/product-table/internal/domain"
)

// CatalogSource - источник статических данных каталога (fixture, PostgreSQL, MinIO).
type CatalogSource interface {
	Name() string
	Load(ctx context.Context) (*domain.CatalogSnapshot, error)
}

// CatalogCache - кэш снапшота каталога. При промахе Get возвращает e.ErrCacheMiss.
type CatalogCache interface {
	Get(ctx context.Context) (*domain.CatalogSnapshot, error)
	Set(ctx context.Context, snapshot *domain.CatalogSnapshot) error
}

// SessionRepository хранит состояние представлений клиентов.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Update атомарно применяет fn к сессии и сохраняет результат.
	Update(ctx context.Context, id string, fn func(session *domain.Session) error) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteIdle(ctx context.Context, before time.Time) int
}
