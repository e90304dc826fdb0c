package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ytfetch/internal/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Fetch.DefaultLanguage != "en" {
		t.Fatalf("unexpected default language: %q", cfg.Fetch.DefaultLanguage)
	}
	if cfg.Fetch.TimeoutSeconds != 30 {
		t.Fatalf("unexpected timeout: %d", cfg.Fetch.TimeoutSeconds)
	}
	if cfg.Fetch.BaseURL != "https://www.youtube.com" {
		t.Fatalf("unexpected base url: %q", cfg.Fetch.BaseURL)
	}
	if cfg.Cache.Enabled {
		t.Fatal("expected cache disabled by default")
	}
	wantCache := filepath.Join(tempHome, ".cache", "ytfetch", "transcripts.db")
	if cfg.Cache.Path != wantCache {
		t.Fatalf("unexpected cache path: got %q want %q", cfg.Cache.Path, wantCache)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesOverridesAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[fetch]",
		`default_language = "de"`,
		"timeout_seconds = 5",
		`base_url = "https://yt.example.test/"`,
		"",
		"[cache]",
		"enabled = true",
		`path = "~/transcripts.db"`,
		"",
		"[logging]",
		`level = "DEBUG"`,
		`format = "json"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Fetch.DefaultLanguage != "de" {
		t.Fatalf("unexpected language: %q", cfg.Fetch.DefaultLanguage)
	}
	if cfg.Fetch.BaseURL != "https://yt.example.test" {
		t.Fatalf("trailing slash should be trimmed, got %q", cfg.Fetch.BaseURL)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("expected cache enabled")
	}
	if want := filepath.Join(tempHome, "transcripts.db"); cfg.Cache.Path != want {
		t.Fatalf("cache path not expanded: got %q want %q", cfg.Cache.Path, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level should be lowercased, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bad language tag",
			content: "[fetch]\ndefault_language = \"not a tag\"\n",
			want:    "default_language",
		},
		{
			name:    "negative timeout",
			content: "[fetch]\ntimeout_seconds = -1\n",
			want:    "timeout_seconds",
		},
		{
			name:    "relative base url",
			content: "[fetch]\nbase_url = \"youtube.com\"\n",
			want:    "base_url",
		},
		{
			name:    "unknown log format",
			content: "[logging]\nformat = \"xml\"\n",
			want:    "logging.format",
		},
		{
			name:    "unknown log level",
			content: "[logging]\nlevel = \"loud\"\n",
			want:    "logging.level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Fetch.DefaultLanguage != "en" {
		t.Fatalf("sample default language changed: %q", cfg.Fetch.DefaultLanguage)
	}
}
