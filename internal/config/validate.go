package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// All problems are reported at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}

	if c.Server.WritesPerMinute < 0 {
		errs = append(errs, fmt.Errorf("server.writes_per_minute must be >= 0 (got %d)", c.Server.WritesPerMinute))
	}

	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case BackendMock:
	case BackendRemote:
		if err := c.RecordStore.validate(); err != nil {
			errs = append(errs, fmt.Errorf("record_store: %w", err))
		}
	case BackendPostgres:
		if c.Database.DSN == "" {
			errs = append(errs, errors.New("database.dsn is required for the postgres backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.backend must be one of mock, remote, postgres (got %q)", c.Store.Backend))
	}

	if c.Store.MockLatency < 0 {
		errs = append(errs, fmt.Errorf("store.mock_latency must be >= 0 (got %v)", c.Store.MockLatency))
	}

	if c.Board.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("board.session_ttl must be > 0 (got %v)", c.Board.SessionTTL))
	}
	if c.Board.SweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("board.sweep_interval must be > 0 (got %v)", c.Board.SweepInterval))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	return errors.Join(errs...)
}

func (r RecordStoreConfig) validate() error {
	if r.BaseURL == "" {
		return errors.New("base_url is required for the remote backend")
	}
	u, err := url.Parse(r.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not an absolute URL", r.BaseURL)
	}
	if r.ProjectID == "" {
		return errors.New("project_id is required for the remote backend")
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", r.Timeout)
	}
	return nil
}
