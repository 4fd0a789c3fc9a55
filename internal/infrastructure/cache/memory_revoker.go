package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/application/ports"
)

var _ ports.TokenRevoker = (*MemoryRevoker)(nil)

// MemoryRevoker lista de revocación local al proceso (REDIS_ADDR vacío).
type MemoryRevoker struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevoker crea una lista vacía.
func NewMemoryRevoker() *MemoryRevoker {
	return &MemoryRevoker{entries: make(map[string]time.Time), now: time.Now}
}

// Revoke registra el token hasta now+ttl y purga las entradas vencidas.
func (r *MemoryRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	for id, exp := range r.entries {
		if !exp.After(now) {
			delete(r.entries, id)
		}
	}
	r.entries[tokenID] = now.Add(ttl)
	return nil
}

// IsRevoked indica si el token sigue en la lista.
func (r *MemoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !exp.After(r.now()) {
		delete(r.entries, tokenID)
		return false, nil
	}
	return true, nil
}
