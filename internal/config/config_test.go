package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("BACKEND_URL", "https://resumes.example.com")
	t.Setenv("LOCAL_STORE_DRIVER", "postgres")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.LocalStore.Database.Host)
	assert.Equal(t, 20, cfg.LocalStore.Database.MaxOpenConns)
	assert.True(t, cfg.Export.MinIO.UseSSL)
	assert.Equal(t, "https://resumes.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, "postgres", cfg.LocalStore.Driver)
	assert.Equal(t, 3, cfg.LocalStore.Redis.DB)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"BACKEND_URL", "BACKEND_TIMEOUT_SEC", "ACTIVITY_LIMIT", "LOCAL_STORE_DRIVER", "LOCAL_STORE_NAMESPACE", "LOG_LEVEL", "APP_HOST", "APP_SCHEME"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 15, cfg.Backend.TimeoutSec)
	assert.Equal(t, 10, cfg.Backend.ActivityLimit)
	assert.Equal(t, "file", cfg.LocalStore.Driver)
	assert.Equal(t, "default", cfg.LocalStore.Namespace)
	assert.NotEmpty(t, cfg.LocalStore.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "localhost:8080", cfg.AppHost)
	assert.Equal(t, "http", cfg.AppScheme)
}

func TestExportConfig_PublishingEnabled(t *testing.T) {
	assert.False(t, ExportConfig{}.PublishingEnabled())
	assert.False(t, ExportConfig{MinIO: MinIOConfig{Endpoint: "minio:9000"}}.PublishingEnabled())
	assert.True(t, ExportConfig{MinIO: MinIOConfig{Endpoint: "minio:9000", Bucket: "exports"}}.PublishingEnabled())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
