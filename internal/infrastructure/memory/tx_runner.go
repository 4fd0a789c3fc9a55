package memory

import (
	"context"

	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

// TxRunner ejecuta fn sobre los repositorios en memoria. No hay rollback:
// cada operación es atómica por sí sola bajo el mutex del Store.
type TxRunner struct{ s *Store }

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

// RunJobRequest ejecuta fn con el repositorio de solicitudes.
func (r *TxRunner) RunJobRequest(_ context.Context, fn func(repo repository.JobRequestRepository) error) error {
	return fn(r.s.JobRequests())
}
