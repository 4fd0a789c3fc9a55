package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/application/ports"
	"github.com/jhoicas/opsdesk-api/internal/domain"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/domain/repository"
	"github.com/jhoicas/opsdesk-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength largo mínimo de contraseña en el registro.
const MinPasswordLength = 8

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret      string
	Issuer      string
	LoginTTL    time.Duration
	RegisterTTL time.Duration
}

// AuthUseCase casos de uso de autenticación: registro, login, verificación y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	revoker  ports.TokenRevoker
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, revoker ports.TokenRevoker, jwtCfg JWTConfig) *AuthUseCase {
	if jwtCfg.LoginTTL <= 0 {
		jwtCfg.LoginTTL = time.Hour
	}
	if jwtCfg.RegisterTTL <= 0 {
		jwtCfg.RegisterTTL = 24 * time.Hour
	}
	return &AuthUseCase{userRepo: userRepo, revoker: revoker, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol USER y emite un token de 24 h.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	user, err := uc.createUser(ctx, in, entity.RoleUser)
	if err != nil {
		return nil, err
	}
	return uc.issue(user, uc.jwtCfg.RegisterTTL)
}

// CreateAdmin crea un usuario ADMIN sin emitir token (bootstrap desde la CLI).
func (uc *AuthUseCase) CreateAdmin(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	user, err := uc.createUser(ctx, in, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (uc *AuthUseCase) createUser(ctx context.Context, in dto.RegisterRequest, role entity.Role) (*entity.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if err := domain.RequiredFields(missing); err != nil {
		return nil, err
	}
	if !strings.Contains(in.Email, "@") {
		return nil, domain.NewValidationError("email", "formato inválido")
	}
	if len(in.Password) < MinPasswordLength {
		return nil, domain.NewValidationError("password", "debe tener al menos 8 caracteres")
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, domain.Persistence("el usuario", "registrar", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, domain.Persistence("el usuario", "registrar", err)
	}
	return user, nil
}

// Login verifica email/password, genera JWT de 1 h y retorna token + usuario.
// Email desconocido y contraseña incorrecta producen el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, domain.RequiredFields(missingCredentials(in))
	}
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, domain.Persistence("el usuario", "consultar", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(user, uc.jwtCfg.LoginTTL)
}

func missingCredentials(in dto.LoginRequest) []string {
	var out []string
	if strings.TrimSpace(in.Email) == "" {
		out = append(out, "email")
	}
	if in.Password == "" {
		out = append(out, "password")
	}
	return out
}

// Authenticate valida firma, vencimiento y revocación del token.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if claims.ID != "" && uc.revoker != nil {
		revoked, err := uc.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, domain.ErrUnauthorized
		}
	}
	return claims, nil
}

// Verify devuelve el usuario actual del token.
func (uc *AuthUseCase) Verify(ctx context.Context, token string) (*dto.UserResponse, error) {
	claims, err := uc.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.Persistence("el usuario", "consultar", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return dto.NewUserResponse(user), nil
}

// Logout revoca el token hasta su vencimiento. Un token inválido no es error: no hay nada que revocar.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := uc.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return errors.Join(errors.New("no se pudo revocar el token"), err)
	}
	return nil
}

func (uc *AuthUseCase) issue(user *entity.User, ttl time.Duration) (*dto.LoginResponse, error) {
	tok, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, ttl)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     tok.Value,
		ExpiresAt: tok.ExpiresAt,
		User:      *dto.NewUserResponse(user),
	}, nil
}

