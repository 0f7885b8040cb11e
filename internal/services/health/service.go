package health

import (
	"context"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service encapsulates health-related checks.
type Service struct {
	DB      Pinger
	Storage string
}

// NewService constructs a new health service. A nil db means drafts live in
// memory.
func NewService(db Pinger, storage string) *Service {
	return &Service{DB: db, Storage: storage}
}

// Status reports whether the service can serve drafts.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	out := map[string]any{"ok": true, "storage": s.Storage, "database": "memory"}
	if s.DB == nil {
		return out, true
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		out["ok"] = false
		out["database"] = "down"
		return out, false
	}
	out["database"] = "up"
	return out, true
}
