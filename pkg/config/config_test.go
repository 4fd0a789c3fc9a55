package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoSchema)
	assert.Equal(t, time.Hour, cfg.JWT.LoginTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.RegisterTTL)
	assert.Equal(t, "/api/v1", cfg.HTTP.APIPrefix)
	assert.Equal(t, StorageLocal, cfg.Storage.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "MEMORY")
	v.Set("DB_AUTO_SCHEMA", "false")
	v.Set("HTTP_API_PREFIX", "api/")
	v.Set("HTTP_PORT", "9090")
	v.Set("JWT_LOGIN_TTL_MINUTES", "15")
	v.Set("MINIO_USE_SSL", "true")

	cfg := fromViper(v)

	assert.Equal(t, DriverMemory, cfg.DB.Driver)
	assert.False(t, cfg.DB.AutoSchema)
	assert.Equal(t, "/api", cfg.HTTP.APIPrefix)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.LoginTTL)
	assert.True(t, cfg.Storage.MinIOUseSSL)
}

func TestValidate(t *testing.T) {
	cfg := fromViper(viper.New())
	cfg.App.Env = "production"
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")

	cfg.JWT.Secret = "s"
	cfg.DB.Driver = "sqlite"
	assert.ErrorContains(t, cfg.Validate(), "DB_DRIVER")
}

func TestDSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "ops", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/ops?sslmode=disable", c.DSN())
	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
