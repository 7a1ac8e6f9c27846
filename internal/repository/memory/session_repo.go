// Package memory хранит сессии представления в памяти процесса.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/product-table/internal/domain"
	"github.com/DRSN-tech/product-table/pkg/e"
)

// SessionRepo - потокобезопасное хранилище сессий. Наружу отдаются только копии.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]domain.Session)}
}

func (s *SessionRepo) Create(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = *session
	return nil
}

func (s *SessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, e.ErrSessionNotFound
	}

	return &session, nil
}

// Update применяет fn к копии сессии под блокировкой и сохраняет результат,
// только если fn не вернула ошибку.
func (s *SessionRepo) Update(_ context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, e.ErrSessionNotFound
	}

	if err := fn(&session); err != nil {
		return nil, err
	}
	s.sessions[id] = session

	return &session, nil
}

func (s *SessionRepo) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return e.ErrSessionNotFound
	}
	delete(s.sessions, id)

	return nil
}

// DeleteIdle удаляет сессии, последний раз менявшиеся раньше before.
func (s *SessionRepo) DeleteIdle(_ context.Context, before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(before) {
			delete(s.sessions, id)
			n++
		}
	}

	return n
}

// Len возвращает число живых сессий.
func (s *SessionRepo) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
