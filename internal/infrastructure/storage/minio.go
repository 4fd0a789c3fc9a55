// Package storage implementa ports.ObjectStorage sobre MinIO (S3) o un directorio local.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/application/ports"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var _ ports.ObjectStorage = (*MinIOStorage)(nil)

// MinIOConfig parámetros de conexión a MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLExpiry time.Duration
}

// MinIOStorage guarda objetos en un bucket de MinIO y entrega URLs pre-firmadas.
type MinIOStorage struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

// NewMinIOStorage conecta con MinIO y crea el bucket si no existe.
func NewMinIOStorage(ctx context.Context, cfg MinIOConfig) (*MinIOStorage, error) {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "localhost:9000"
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "opsdesk"
	}
	if cfg.URLExpiry <= 0 {
		cfg.URLExpiry = time.Hour
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: crear cliente: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio: verificar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio: crear bucket: %w", err)
		}
	}

	return &MinIOStorage{client: client, bucket: cfg.Bucket, expiry: cfg.URLExpiry}, nil
}

// Put sube el contenido de r con la clave indicada.
func (m *MinIOStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("minio: subir %s: %w", key, err)
	}
	return nil
}

// URL genera una URL pre-firmada de descarga.
func (m *MinIOStorage) URL(ctx context.Context, key string) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, m.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("minio: url pre-firmada %s: %w", key, err)
	}
	return u.String(), nil
}

// Remove elimina el objeto.
func (m *MinIOStorage) Remove(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio: eliminar %s: %w", key, err)
	}
	return nil
}
