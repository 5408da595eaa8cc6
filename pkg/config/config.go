package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "WILDMART"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Media   MediaConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WILDMART_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"WILDMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WILDMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type APIConfig struct {
	BaseURL string        `envconfig:"WILDMART_API_BASE_URL" default:"http://localhost:8080"`
	Timeout time.Duration `envconfig:"WILDMART_API_TIMEOUT" default:"30s"`
}

func (a APIConfig) validate() error {
	trimmed := strings.TrimSpace(a.BaseURL)
	if trimmed == "" {
		return fmt.Errorf("WILDMART_API_BASE_URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("WILDMART_API_BASE_URL must be an absolute URL")
	}
	return nil
}

type SessionConfig struct {
	// TokenPath is where the bearer token and cached profile live between
	// runs, the local-storage equivalent for this client.
	TokenPath string `envconfig:"WILDMART_SESSION_PATH" default:".wildmart/session.json"`
}

type MediaConfig struct {
	MaxUploadMB int `envconfig:"WILDMART_MAX_UPLOAD_MB" default:"5"`
}

// MaxUploadBytes converts the configured megabyte cap into bytes.
func (m MediaConfig) MaxUploadBytes() int64 {
	if m.MaxUploadMB <= 0 {
		return 0
	}
	return int64(m.MaxUploadMB) << 20
}
