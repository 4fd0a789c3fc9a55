package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/opsdesk-api/internal/application/auth"
	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/cache"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/opsdesk-api/pkg/jwt"
)

const secret = "test-secret"

func newUseCase() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewStore().Users(), cache.NewMemoryRevoker(), auth.JWTConfig{
		Secret: secret, Issuer: "opsdesk-test", LoginTTL: time.Hour, RegisterTTL: 24 * time.Hour,
	})
}

func TestRegister_IssuesLongLivedTokenWithUserRole(t *testing.T) {
	uc := newUseCase()
	before := time.Now()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{Name: "Ana", Email: " Ana@Ops.CO ", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "ana@ops.co", out.User.Email)
	assert.Equal(t, "USER", out.User.Role)
	assert.WithinDuration(t, before.Add(24*time.Hour), out.ExpiresAt, 5*time.Second)

	claims, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, "opsdesk-test", claims.Issuer)
}

func TestRegister_Validation(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	cases := []struct {
		in    dto.RegisterRequest
		field string
	}{
		{dto.RegisterRequest{Email: "a@b.co", Password: "secreto123"}, "name"},
		{dto.RegisterRequest{Name: "A", Email: "sin-arroba", Password: "secreto123"}, "email"},
		{dto.RegisterRequest{Name: "A", Email: "a@b.co", Password: "corta"}, "password"},
	}
	for _, c := range cases {
		_, err := uc.Register(ctx, c.in)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve, c.field)
		assert.Equal(t, c.field, ve.Field)
	}

	_, err := uc.Register(ctx, dto.RegisterRequest{Name: "A", Email: "a@b.co", Password: "secreto123"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Name: "B", Email: "A@B.CO", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	_, err := uc.CreateAdmin(ctx, dto.RegisterRequest{Name: "Root", Email: "root@ops.co", Password: "supersecreto"})
	require.NoError(t, err)

	before := time.Now()
	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ROOT@ops.co", Password: "supersecreto"})
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", out.User.Role)
	assert.WithinDuration(t, before.Add(time.Hour), out.ExpiresAt, 5*time.Second)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "root@ops.co", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@ops.co", Password: "supersecreto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "root@ops.co"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
}

func TestVerifyAndLogout(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	reg, err := uc.Register(ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@ops.co", Password: "secreto123"})
	require.NoError(t, err)

	me, err := uc.Verify(ctx, reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, me.ID)

	require.NoError(t, uc.Logout(ctx, reg.Token))
	_, err = uc.Verify(ctx, reg.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.NoError(t, uc.Logout(ctx, "basura"), "un token inválido no es error en logout")
}

func TestAuthenticate_RejectsForeignTokens(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	other, err := pkgjwt.Generate("otro-secreto", "u1", "ADMIN", "x", time.Hour)
	require.NoError(t, err)
	_, err = uc.Authenticate(ctx, other.Value)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Token válido de un usuario que ya no existe: Authenticate pasa, Verify no.
	ghost, err := pkgjwt.Generate(secret, "ghost", "USER", "x", time.Hour)
	require.NoError(t, err)
	claims, err := uc.Authenticate(ctx, ghost.Value)
	require.NoError(t, err)
	assert.Equal(t, "ghost", claims.UserID)
	_, err = uc.Verify(ctx, ghost.Value)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
