// Package config loads CLI settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mockfill/internal/logging"
	"github.com/goliatone/go-mockfill/pkg/catalog"
	"github.com/goliatone/go-mockfill/pkg/placeholder"
)

// Environment variables that override file values.
const (
	EnvLogLevel  = "MOCKFILL_LOG_LEVEL"
	EnvIndexURLs = "MOCKFILL_INDEX_URLS"
	EnvTimeout   = "MOCKFILL_TIMEOUT"
)

// HTTP configures remote fetches.
type HTTP struct {
	Timeout  time.Duration `yaml:"timeout" json:"timeout"`
	MaxBytes int64         `yaml:"max_bytes" json:"max_bytes"`
	// Proxy routes list fetches through an explicit proxy. Empty falls back
	// to the HTTP_PROXY family of environment variables.
	Proxy string `yaml:"proxy" json:"proxy"`
}

// Client builds the HTTP client used for index and list fetches. Proxy is
// expected to have passed Validate.
func (h HTTP) Client() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxy, err := parseProxy(h.Proxy); err == nil && proxy != nil {
		transport.Proxy = http.ProxyURL(proxy)
	}
	return &http.Client{Timeout: h.Timeout, Transport: transport}
}

func parseProxy(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("config: http proxy: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("config: http proxy %q needs a scheme and host", raw)
	}
	return u, nil
}

// Config holds every CLI setting.
type Config struct {
	IndexURLs     []string       `yaml:"index_urls" json:"index_urls"`
	Grouping      string         `yaml:"grouping" json:"grouping"`
	Output        string         `yaml:"output" json:"output"`
	TextTemplate  string         `yaml:"text_template" json:"text_template"`
	Concurrency   int            `yaml:"concurrency" json:"concurrency"`
	SanitizeLines bool           `yaml:"sanitize_lines" json:"sanitize_lines"`
	HTTP          HTTP           `yaml:"http" json:"http"`
	Logging       logging.Config `yaml:"logging" json:"logging"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		IndexURLs:     []string{catalog.DefaultIndexURL},
		Grouping:      string(placeholder.KindName),
		Output:        "text",
		Concurrency:   4,
		SanitizeLines: true,
		HTTP: HTTP{
			Timeout:  10 * time.Second,
			MaxBytes: 16 << 20,
		},
		Logging: logging.Config{Level: "info", Format: "json"},
	}
}

// Load reads path over Default, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		c.Logging.Level = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvIndexURLs); ok {
		var urls []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				urls = append(urls, part)
			}
		}
		c.IndexURLs = urls
	}
	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		c.HTTP.Timeout = d
	}
	return nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error
	if _, err := placeholder.ParseKind(c.Grouping); err != nil {
		errs = append(errs, err)
	}
	switch c.Output {
	case "json", "yaml", "text", "clipboard":
	default:
		errs = append(errs, fmt.Errorf("config: unknown output %q", c.Output))
	}
	if c.Concurrency < 0 {
		errs = append(errs, errors.New("config: concurrency must not be negative"))
	}
	if c.HTTP.Timeout < 0 {
		errs = append(errs, errors.New("config: http timeout must not be negative"))
	}
	if c.HTTP.MaxBytes < 0 {
		errs = append(errs, errors.New("config: http max_bytes must not be negative"))
	}
	if _, err := parseProxy(c.HTTP.Proxy); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
