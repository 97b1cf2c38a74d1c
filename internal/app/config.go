package app

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when no --config
// flag is given.
const DefaultConfigFile = "citylaw.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Data   DataConfig   `yaml:"data"`
	Build  BuildConfig  `yaml:"build"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// SiteConfig is the publisher identity.
type SiteConfig struct {
	Name         string `yaml:"name"`
	BaseURL      string `yaml:"base_url"`      // e.g. https://citylawguide.com, no trailing slash
	ContactEmail string `yaml:"contact_email"` // shown on policy and cluster pages
}

// DataConfig locates the data packs.
type DataConfig struct {
	Dir string `yaml:"dir"` // holds cities/ and clusters/
}

// BuildConfig controls static builds.
type BuildConfig struct {
	OutDir  string `yaml:"out_dir"`
	Workers int    `yaml:"workers"` // 0 means GOMAXPROCS
}

// ServerConfig controls the preview server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig selects the zap configuration.
type LogConfig struct {
	Mode  string `yaml:"mode"`  // "dev" or "prod"
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:         "City Law Guide",
			BaseURL:      "https://citylawguide.com",
			ContactEmail: "info@citylawguide.com",
		},
		Data:   DataConfig{Dir: "data"},
		Build:  BuildConfig{OutDir: "public", Workers: runtime.GOMAXPROCS(0)},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
		Log:    LogConfig{Mode: "dev", Level: "info"},
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.Site.BaseURL = strings.TrimRight(cfg.Site.BaseURL, "/")
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CITYLAW_BASE_URL"); v != "" {
		c.Site.BaseURL = v
	}
	if v := os.Getenv("CITYLAW_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("CITYLAW_OUT_DIR"); v != "" {
		c.Build.OutDir = v
	}
	if v := os.Getenv("CITYLAW_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("CITYLAW_LOG_MODE"); v != "" {
		c.Log.Mode = v
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid site.base_url %q: want an absolute http(s) URL", c.Site.BaseURL)
	}
	if u.Path != "" {
		return fmt.Errorf("invalid site.base_url %q: must not carry a path", c.Site.BaseURL)
	}
	if c.Site.Name == "" {
		return errors.New("site.name is required")
	}
	if c.Data.Dir == "" {
		return errors.New("data.dir is required")
	}
	if c.Build.OutDir == "" {
		return errors.New("build.out_dir is required")
	}
	if c.Build.Workers < 0 {
		return fmt.Errorf("build.workers must not be negative, got %d", c.Build.Workers)
	}
	switch c.Log.Mode {
	case "dev", "development", "prod", "production":
	default:
		return fmt.Errorf("invalid log.mode %q (valid: dev, prod)", c.Log.Mode)
	}
	return nil
}
