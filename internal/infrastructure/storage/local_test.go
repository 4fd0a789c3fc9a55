package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jhoicas/opsdesk-api/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutURLRemove(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewLocalStorage(dir, "/api/v1/files/")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "reports/r1/a.txt", strings.NewReader("hola"), 4, "text/plain"))
	data, err := os.ReadFile(filepath.Join(dir, "reports", "r1", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hola", string(data))

	url, err := s.URL(ctx, "reports/r1/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/reports/r1/a.txt", url)

	require.NoError(t, s.Remove(ctx, "reports/r1/a.txt"))
	_, err = os.Stat(filepath.Join(dir, "reports", "r1", "a.txt"))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, s.Remove(ctx, "reports/r1/a.txt"))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s, err := storage.NewLocalStorage(t.TempDir(), "/files")
	require.NoError(t, err)

	err = s.Put(context.Background(), "../escape.txt", strings.NewReader("x"), 1, "text/plain")
	assert.Error(t, err)
}
