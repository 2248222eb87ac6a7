package config

import (
	"strings"
	"time"
)

// Store backends selectable at startup.
const (
	BackendMock     = "mock"
	BackendRemote   = "remote"
	BackendPostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Store       StoreConfig       `yaml:"store"`
	RecordStore RecordStoreConfig `yaml:"record_store"`
	Database    DatabaseConfig    `yaml:"database"`
	Board       BoardConfig       `yaml:"board"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Session-Id,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// WritesPerMinute caps board mutations per viewer session; 0 disables the limit.
	WritesPerMinute int `yaml:"writes_per_minute" env:"SERVER_WRITES_PER_MINUTE" env-default:"120"`
}

// StoreConfig selects the repository backend.
type StoreConfig struct {
	Backend string `yaml:"backend" env:"STORE_BACKEND" env-default:"mock"`
	// MockLatency delays every mock repository call, imitating a network hop.
	MockLatency time.Duration `yaml:"mock_latency" env:"STORE_MOCK_LATENCY" env-default:"0s"`
}

// RecordStoreConfig holds the remote record store client settings.
type RecordStoreConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"RECORD_STORE_BASE_URL"`
	ProjectID string        `yaml:"project_id" env:"RECORD_STORE_PROJECT_ID"`
	PublicKey string        `yaml:"public_key" env:"RECORD_STORE_PUBLIC_KEY"`
	Timeout   time.Duration `yaml:"timeout"    env:"RECORD_STORE_TIMEOUT"    env-default:"15s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// BoardConfig holds idea board session settings.
type BoardConfig struct {
	SessionTTL    time.Duration `yaml:"session_ttl"    env:"BOARD_SESSION_TTL"    env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"BOARD_SWEEP_INTERVAL" env-default:"1m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// UsesRecordStore reports whether repositories go through a record store client.
func (c StoreConfig) UsesRecordStore() bool {
	b := strings.ToLower(c.Backend)
	return b == BackendRemote || b == BackendPostgres
}
