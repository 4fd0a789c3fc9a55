package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{""}, wrap("   ", 10))
	assert.Equal(t, []string{"hola mundo"}, wrap("hola mundo", 10))
	assert.Equal(t, []string{"hola", "mundo", "cruel"}, wrap("hola mundo cruel", 7))
	assert.Equal(t, []string{"abcde", "fgh"}, wrap("abcdefgh", 5))
	assert.Equal(t, []string{"ñandú", "ñandú"}, wrap("ñandú ñandú", 5))
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "2.0 KB", formatSize(2048))
	assert.Equal(t, "10.0 MB", formatSize(10<<20))
}
