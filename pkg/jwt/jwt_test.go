package jwt_test

import (
	"testing"
	"time"

	"github.com/jhoicas/opsdesk-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := jwt.Generate("secret", "user-1", "ADMIN", "opsdesk-api", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.ExpiresAt, 2*time.Second)

	claims, err := jwt.Parse("secret", tok.Value)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, tok.ID, claims.ID)
	assert.Equal(t, "opsdesk-api", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := jwt.Generate("secret", "user-1", "USER", "", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", tok.Value)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	tok, err := jwt.Generate("secret", "user-1", "USER", "", time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = jwt.Parse("secret", tok.Value)
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "USER", "", time.Hour)
	assert.Error(t, err)
}
