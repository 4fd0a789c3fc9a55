package ports

import (
	"context"

	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
)

// JobRequestTxRunner ejecuta fn con un repositorio atado a una transacción:
// si fn devuelve error se hace rollback.
type JobRequestTxRunner interface {
	RunJobRequest(ctx context.Context, fn func(repo repository.JobRequestRepository) error) error
}
