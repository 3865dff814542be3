package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ginebra-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ginebra", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, int64(16<<20), cfg.Uploads.MaxBytes)
	assert.Equal(t, 12*time.Hour, cfg.Redis.SelectionTTL)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 60, cfg.JWT.ResetExpiration)
	assert.Empty(t, cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/g")
	t.Setenv("SMTP_HOST", "smtp.ginebra.test")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "postgres://u:p@db:5432/g", cfg.DB.ConnectionString())
	assert.Equal(t, "smtp.ginebra.test", cfg.Mail.Host)
	assert.Equal(t, 2525, cfg.Mail.Port)
}

func TestLoad_ProduccionExigeSecreto(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "h", Port: 5432, User: "u", Password: "p@ss:word", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aword@h:5432/d?sslmode=disable", c.DSN())
}
