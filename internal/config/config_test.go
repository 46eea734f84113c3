package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/ascendara/crashreporter/common"
)

func load(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	return LoadWith(context.Background(), envconfig.MapLookuper(env))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t, map[string]string{})
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.SupportURL != common.DefaultSupportURL {
		t.Errorf("SupportURL = %q", cfg.SupportURL)
	}
	if cfg.SubmitTimeout != 5*time.Second {
		t.Errorf("SubmitTimeout = %s", cfg.SubmitTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Submits() {
		t.Error("no endpoint configured, Submits should be false")
	}
	if *cfg != *Default() {
		t.Errorf("defaults differ from Default(): %+v vs %+v", cfg, Default())
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(t, map[string]string{
		common.SupportURLEnv: "https://example.com/help",
		common.EndpointEnv:   "wss://collector.example.com/rpc",
		common.TokenEnv:      "secret",
		common.ProxyEnv:      "socks5://127.0.0.1:1080",
		common.TimeoutEnv:    "2s",
		common.LogLevelEnv:   "debug",
	})
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.SupportURL != "https://example.com/help" || cfg.Endpoint != "wss://collector.example.com/rpc" {
		t.Errorf("unexpected urls: %+v", cfg)
	}
	if cfg.Token != "secret" || cfg.Proxy != "socks5://127.0.0.1:1080" {
		t.Errorf("unexpected token/proxy: %+v", cfg)
	}
	if cfg.SubmitTimeout != 2*time.Second || cfg.LogLevel != "debug" {
		t.Errorf("unexpected timeout/level: %+v", cfg)
	}
	if !cfg.Submits() {
		t.Error("endpoint configured, Submits should be true")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{"ftp endpoint", map[string]string{common.EndpointEnv: "ftp://example.com"}, ErrUnsupportedScheme},
		{"endpoint without host", map[string]string{common.EndpointEnv: "collector"}, ErrInvalidURL},
		{"file support url", map[string]string{common.SupportURLEnv: "file:///etc/passwd"}, ErrInvalidURL},
		{"javascript support url", map[string]string{common.SupportURLEnv: "javascript://x"}, ErrUnsupportedScheme},
		{"bad proxy", map[string]string{common.ProxyEnv: "socks4://127.0.0.1:1080"}, ErrUnsupportedScheme},
		{"zero timeout", map[string]string{common.TimeoutEnv: "0s"}, ErrTimeoutRange},
		{"negative timeout", map[string]string{common.TimeoutEnv: "-1s"}, ErrTimeoutRange},
		{"hours long timeout", map[string]string{common.TimeoutEnv: "2h"}, ErrTimeoutRange},
		{"just over the cap", map[string]string{common.TimeoutEnv: "30001ms"}, ErrTimeoutRange},
		{"garbage timeout", map[string]string{common.TimeoutEnv: "soon"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.env)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadTimeoutAtCap(t *testing.T) {
	cfg, err := load(t, map[string]string{common.TimeoutEnv: "30s"})
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}
	if cfg.SubmitTimeout != MaxSubmitTimeout {
		t.Errorf("SubmitTimeout = %s", cfg.SubmitTimeout)
	}
}
