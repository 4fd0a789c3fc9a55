package ports

import (
	"context"
	"io"
)

// ObjectStorage puerto de salida para archivos binarios (adjuntos de reportes, fotos de rondas).
// Cualquier adaptador (MinIO, disco local) debe implementar esta interfaz.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// URL devuelve una URL de descarga (pre-firmada o relativa al servidor).
	URL(ctx context.Context, key string) (string, error)
	Remove(ctx context.Context, key string) error
}
