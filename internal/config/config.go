// Package config loads the crash reporter settings from the environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/ascendara/crashreporter/common"
)

var (
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")
	ErrInvalidURL        = errors.New("invalid URL")
	ErrTimeoutRange      = errors.New("timeout out of range")
)

// MaxSubmitTimeout caps ASCENDARA_CRASH_TIMEOUT. Uploads run on the window's
// event loop and must not hold it longer than this.
const MaxSubmitTimeout = 30 * time.Second

// Config is the reporter's environment configuration. Zero values are
// filled from the defaults in the field tags.
type Config struct {
	SupportURL    string        `env:"ASCENDARA_SUPPORT_URL,default=https://ascendara.app/discord"`
	Endpoint      string        `env:"ASCENDARA_CRASH_ENDPOINT"`
	Token         string        `env:"ASCENDARA_CRASH_TOKEN"`
	Proxy         string        `env:"ASCENDARA_CRASH_PROXY"`
	SubmitTimeout time.Duration `env:"ASCENDARA_CRASH_TIMEOUT,default=5s"`
	LogLevel      string        `env:"ASCENDARA_LOG_LEVEL,default=info"`
}

// Default returns the configuration used when the environment is unusable.
func Default() *Config {
	return &Config{
		SupportURL:    common.DefaultSupportURL,
		SubmitTimeout: 5 * time.Second,
		LogLevel:      "info",
	}
}

// LoadWith reads configuration through l. Pass envconfig.OsLookuper() for
// the process environment.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Submits reports whether a collector endpoint is configured.
func (c *Config) Submits() bool {
	return c.Endpoint != ""
}

func (c *Config) validate() error {
	if err := checkURL(common.SupportURLEnv, c.SupportURL, "http", "https"); err != nil {
		return err
	}
	if c.Endpoint != "" {
		if err := checkURL(common.EndpointEnv, c.Endpoint, "http", "https", "ws", "wss"); err != nil {
			return err
		}
	}
	if c.Proxy != "" {
		if err := checkURL(common.ProxyEnv, c.Proxy, "http", "https", "socks5"); err != nil {
			return err
		}
	}
	if c.SubmitTimeout <= 0 || c.SubmitTimeout > MaxSubmitTimeout {
		return fmt.Errorf("%s: %w: %s not in (0, %s]", common.TimeoutEnv, ErrTimeoutRange, c.SubmitTimeout, MaxSubmitTimeout)
	}
	return nil
}

func checkURL(name, raw string, schemes ...string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%s: %w: %q", name, ErrInvalidURL, raw)
	}
	for _, s := range schemes {
		if u.Scheme == s {
			return nil
		}
	}
	return fmt.Errorf("%s: %w %q", name, ErrUnsupportedScheme, u.Scheme)
}
