package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, env, content string) {
	t.Helper()
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatalf("mkdir config: %v", err)
	}
	path := filepath.Join(dir, "config", env+".yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	writeConfig(t, "test", "http:\n  port: 8080\n")

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.MaxRetries != 3 || cfg.Search.RetryDelayMS != 1000 {
		t.Errorf("retry defaults not applied: %+v", cfg.Search)
	}
	if cfg.Cache.Driver != "memory" || cfg.Cache.TTLSec != 300 {
		t.Errorf("cache defaults not applied: %+v", cfg.Cache)
	}
	if cfg.Analytics.Capacity != 1000 {
		t.Errorf("analytics capacity default not applied: %d", cfg.Analytics.Capacity)
	}
	if cfg.Search.IndexName != "products" {
		t.Errorf("index name default not applied: %q", cfg.Search.IndexName)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_ALGOLIA_KEY", "sk-123")
	writeConfig(t, "test", `
http:
  port: 8080
search:
  app_id: APP1
  api_key: ${TEST_ALGOLIA_KEY}
  index_name: ${TEST_ALGOLIA_INDEX:-catalog}
`)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.APIKey != "sk-123" {
		t.Errorf("api_key = %q, expected expanded env value", cfg.Search.APIKey)
	}
	if cfg.Search.IndexName != "catalog" {
		t.Errorf("index_name = %q, expected default from ${VAR:-default}", cfg.Search.IndexName)
	}
	if !cfg.RemoteConfigured() {
		t.Error("expected remote to be configured")
	}
}

func TestLoad_MissingCredentialSelectsDemoMode(t *testing.T) {
	writeConfig(t, "test", "http:\n  port: 8080\n")

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("missing credential must not be an error: %v", err)
	}
	if cfg.RemoteConfigured() {
		t.Error("expected demo mode without credentials")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"bad port", func(c *Config) { c.HTTP.Port = 0 }, true},
		{"unknown cache driver", func(c *Config) { c.Cache.Driver = "memcached" }, true},
		{"redis without addrs", func(c *Config) { c.Cache.Driver = "redis" }, true},
		{"api key without app id", func(c *Config) { c.Search.APIKey = "k" }, true},
		{"watch without path", func(c *Config) { c.Catalog.Watch = true }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{HTTP: HTTPConfig{Port: 8080}}
			cfg.ApplyDefaults()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
