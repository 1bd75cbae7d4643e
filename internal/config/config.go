// Package config assembles the settings the bulletin run needs. Everything
// is read once at startup; the resulting Config is passed down explicitly.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/bulletin/internal/domain"
	"github.com/alexanderramin/bulletin/internal/pco"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvAppID          = "PLANNING_CENTER_APP_ID"
	EnvSecret         = "PLANNING_CENTER_SECRET"
	EnvBaseURL        = "PLANNING_CENTER_BASE_URL"
	EnvServiceTypeID  = "PLANNING_CENTER_SERVICE_TYPE_ID"
	EnvNameTitlesJSON = "NAME_TITLES_JSON"
	EnvNameTitlesFile = "BULLETIN_NAME_TITLES_FILE"
	EnvHTTPTimeoutMs  = "BULLETIN_HTTP_TIMEOUT_MS"
	EnvLogCalls       = "BULLETIN_LOG_CALLS"
)

// DotEnvFile is read from the working directory before the environment is
// consulted. Variables already set in the environment win.
const DotEnvFile = ".env"

// ErrMissingCredentials indicates the API app id or secret is unset.
var ErrMissingCredentials = errors.New("planning center credentials not configured")

// Config holds all settings for a bulletin run.
type Config struct {
	PlanningCenter pco.Config
	NameTitles     domain.NameTitles
	LogCalls       bool
}

// DefaultConfig returns a Config with no credentials and no title overrides.
func DefaultConfig() Config {
	return Config{
		PlanningCenter: pco.DefaultConfig(),
		NameTitles:     domain.NameTitles{},
	}
}

// Load reads .env, then environment variables, falling back to defaults for
// anything unset. A malformed title table is an error.
func Load() (Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading %s: %w", DotEnvFile, err)
	}

	cfg := DefaultConfig()
	pc := &cfg.PlanningCenter

	pc.AppID = os.Getenv(EnvAppID)
	pc.Secret = os.Getenv(EnvSecret)
	if v := os.Getenv(EnvBaseURL); v != "" {
		pc.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(EnvServiceTypeID); v != "" {
		pc.ServiceTypeID = v
	}
	if v := os.Getenv(EnvHTTPTimeoutMs); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pc.Timeout = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv(EnvLogCalls); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	if path := os.Getenv(EnvNameTitlesFile); path != "" {
		titles, err := LoadNameTitlesFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.NameTitles = cfg.NameTitles.Merge(titles)
	}
	if v := os.Getenv(EnvNameTitlesJSON); v != "" {
		titles, err := ParseNameTitlesJSON(v)
		if err != nil {
			return Config{}, err
		}
		cfg.NameTitles = cfg.NameTitles.Merge(titles)
	}

	return cfg, nil
}

// Validate reports missing settings required to call the API.
func (c Config) Validate() error {
	var missing []string
	if c.PlanningCenter.AppID == "" {
		missing = append(missing, EnvAppID)
	}
	if c.PlanningCenter.Secret == "" {
		missing = append(missing, EnvSecret)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: set %s", ErrMissingCredentials, strings.Join(missing, " and "))
	}
	return nil
}

// ParseNameTitlesJSON decodes a {"name": "title"} object.
func ParseNameTitlesJSON(raw string) (domain.NameTitles, error) {
	var titles domain.NameTitles
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", EnvNameTitlesJSON, err)
	}
	return titles, nil
}

// LoadNameTitlesFile reads a YAML mapping of name to title.
func LoadNameTitlesFile(path string) (domain.NameTitles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading name titles file: %w", err)
	}
	var titles domain.NameTitles
	if err := yaml.Unmarshal(data, &titles); err != nil {
		return nil, fmt.Errorf("parsing name titles file %s: %w", path, err)
	}
	return titles, nil
}
