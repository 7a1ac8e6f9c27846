package domain

import "time"

// Session - состояние представления одного клиента: текущая Query.
// Хранится только в памяти процесса.
type Session struct {
	ID        string
	Query     Query
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
