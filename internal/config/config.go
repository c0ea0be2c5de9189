package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// BackendConfig holds settings for the remote resume service.
type BackendConfig struct {
	BaseURL       string
	TimeoutSec    int
	ActivityLimit int
}

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// RedisConfig holds settings for the redis-backed local store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LocalStoreConfig selects where durable client state (credential and
// recovery identifier) is kept between runs.
type LocalStoreConfig struct {
	Driver    string // memory, file, postgres or redis
	Namespace string
	Path      string
	Database  DatabaseConfig
	Redis     RedisConfig
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ExportConfig holds settings for preview export and publishing.
type ExportConfig struct {
	ChromePath   string
	URLExpirySec int
	MinIO        MinIOConfig
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost    string
	AppScheme  string
	Port       string
	Backend    BackendConfig
	LocalStore LocalStoreConfig
	Export     ExportConfig
	Log        LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:   getEnv("APP_HOST", "localhost:8080"),
		AppScheme: getEnv("APP_SCHEME", "http"),
		Port:      getEnv("PORT", "8080"),
		Backend: BackendConfig{
			BaseURL:       getEnv("BACKEND_URL", "http://localhost:8000"),
			TimeoutSec:    getEnvInt("BACKEND_TIMEOUT_SEC", 15),
			ActivityLimit: getEnvInt("ACTIVITY_LIMIT", 10),
		},
		LocalStore: LocalStoreConfig{
			Driver:    getEnv("LOCAL_STORE_DRIVER", "file"),
			Namespace: getEnv("LOCAL_STORE_NAMESPACE", "default"),
			Path:      getEnv("LOCAL_STORE_PATH", defaultStatePath()),
			Database: DatabaseConfig{
				Host:               getEnv("DB_HOST", ""),
				Port:               getEnv("DB_PORT", "5432"),
				User:               getEnv("DB_USER", ""),
				Password:           getEnv("DB_PASSWORD", ""),
				Name:               getEnv("DB_NAME", ""),
				SSLMode:            getEnv("DB_SSLMODE", "disable"),
				MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
				MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
				ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			},
			Redis: RedisConfig{
				Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       getEnvInt("REDIS_DB", 0),
			},
		},
		Export: ExportConfig{
			ChromePath:   getEnv("CHROME_PATH", ""),
			URLExpirySec: getEnvInt("EXPORT_URL_EXPIRY_SEC", 3600),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// PublishingEnabled reports whether enough MinIO settings are present to
// publish exports.
func (c ExportConfig) PublishingEnabled() bool {
	return c.MinIO.Endpoint != "" && c.MinIO.Bucket != ""
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "resumebuilder", "state.json")
	}
	return filepath.Join(home, ".resumebuilder", "state.json")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
