// Package cache guarda la lista de tokens revocados (logout) en Redis o en memoria.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jhoicas/opsdesk-api/internal/application/ports"
)

var _ ports.TokenRevoker = (*RedisRevoker)(nil)

// keyPrefix espacio de nombres de las claves de revocación.
const keyPrefix = "opsdesk:revoked:"

// RedisConfig parámetros de conexión.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient crea el cliente y verifica la conexión con PING.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RedisRevoker una clave por jti con TTL igual a la vida restante del token.
type RedisRevoker struct {
	client *redis.Client
}

// NewRedisRevoker construye el revocador sobre un cliente existente.
func NewRedisRevoker(client *redis.Client) *RedisRevoker {
	return &RedisRevoker{client: client}
}

// Revoke marca el token como revocado durante ttl.
func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis: revocar token: %w", err)
	}
	return nil
}

// IsRevoked indica si el token está en la lista.
func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, keyPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis: consultar revocación: %w", err)
	}
	return true, nil
}
