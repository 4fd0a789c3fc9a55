package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jhoicas/opsdesk-api/internal/application/ports"
)

var _ ports.ObjectStorage = (*LocalStorage)(nil)

// LocalStorage guarda objetos como archivos bajo un directorio. Las URLs son relativas
// al servidor (publicPath + clave); el router sirve el directorio en esa ruta.
type LocalStorage struct {
	dir        string
	publicPath string
}

// NewLocalStorage crea el directorio base si no existe.
func NewLocalStorage(dir, publicPath string) (*LocalStorage, error) {
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir, publicPath: strings.TrimRight(publicPath, "/")}, nil
}

// Dir directorio base.
func (s *LocalStorage) Dir() string { return s.dir }

// path resuelve key dentro de dir; rechaza claves que escapen del directorio.
func (s *LocalStorage) path(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("storage: clave inválida %q", key)
	}
	return filepath.Join(s.dir, filepath.FromSlash(clean)), nil
}

// Put escribe el archivo (sobrescribe si existe).
func (s *LocalStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("storage: crear directorio: %w", err)
	}
	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("storage: crear %s: %w", key, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(p)
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	return f.Close()
}

// URL devuelve publicPath/key.
func (s *LocalStorage) URL(_ context.Context, key string) (string, error) {
	if _, err := s.path(key); err != nil {
		return "", err
	}
	return s.publicPath + "/" + strings.TrimLeft(key, "/"), nil
}

// Remove borra el archivo; no existir no es error.
func (s *LocalStorage) Remove(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: eliminar %s: %w", key, err)
	}
	return nil
}
