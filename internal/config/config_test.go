package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Defaults.Wake != "07:00" {
		t.Errorf("expected wake 07:00, got %s", cfg.Defaults.Wake)
	}
	if cfg.Defaults.SleepHours != 8.0 {
		t.Errorf("expected sleep_hours 8, got %v", cfg.Defaults.SleepHours)
	}
	if cfg.Defaults.CoffeeCups != 1 {
		t.Errorf("expected coffee_cups 1, got %d", cfg.Defaults.CoffeeCups)
	}
	if cfg.Model.Provider != ProviderBundled {
		t.Errorf("expected provider bundled, got %s", cfg.Model.Provider)
	}
	if cfg.UI.Clock != "12h" {
		t.Errorf("expected clock 12h, got %s", cfg.UI.Clock)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Defaults.Wake != "07:00" {
		t.Errorf("expected default wake, got %s", cfg.Defaults.Wake)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[defaults]
wake = "06:30"
sleep_hours = 7.5
coffee_cups = 3

[model]
provider = "Ollama"
model = "llama3"
base_url = "http://localhost:11435"

[ui]
theme = "latte"
clock = "24h"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Defaults.Wake != "06:30" {
		t.Errorf("expected wake 06:30, got %s", cfg.Defaults.Wake)
	}
	if cfg.Defaults.SleepHours != 7.5 {
		t.Errorf("expected sleep_hours 7.5, got %v", cfg.Defaults.SleepHours)
	}
	if cfg.Defaults.CoffeeCups != 3 {
		t.Errorf("expected coffee_cups 3, got %d", cfg.Defaults.CoffeeCups)
	}
	if cfg.Model.Provider != ProviderOllama {
		t.Errorf("expected provider ollama, got %s", cfg.Model.Provider)
	}
	if cfg.Model.Model != "llama3" {
		t.Errorf("expected model llama3, got %s", cfg.Model.Model)
	}
	if cfg.Model.BaseURL != "http://localhost:11435" {
		t.Errorf("expected base_url http://localhost:11435, got %s", cfg.Model.BaseURL)
	}
	if !cfg.Uses24HourClock() {
		t.Error("expected 24h clock")
	}
	if !cfg.IsRemote() {
		t.Error("expected remote provider")
	}
}

func TestLoadFrom_EmptyProviderMeansBundled(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[model]\nprovider = \"\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model.Provider != ProviderBundled {
		t.Errorf("expected provider bundled, got %q", cfg.Model.Provider)
	}
	if cfg.IsRemote() {
		t.Error("bundled provider should not be remote")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[defaults]
wake = "06:00"
sleep_hours = 9.0
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("BETTERREST_WAKE", "05:45")
	t.Setenv("BETTERREST_COFFEE_CUPS", "4")
	t.Setenv("BETTERREST_MODEL_PROVIDER", "lmstudio")
	t.Setenv("BETTERREST_MODEL", "qwen2.5")
	t.Setenv("BETTERREST_UI_CLOCK", "24h")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Defaults.Wake != "05:45" {
		t.Errorf("expected wake 05:45 from env, got %s", cfg.Defaults.Wake)
	}
	if cfg.Defaults.SleepHours != 9.0 {
		t.Errorf("expected sleep_hours 9 from file, got %v", cfg.Defaults.SleepHours)
	}
	if cfg.Defaults.CoffeeCups != 4 {
		t.Errorf("expected coffee_cups 4 from env, got %d", cfg.Defaults.CoffeeCups)
	}
	if cfg.Model.Provider != ProviderLMStudio {
		t.Errorf("expected provider lmstudio from env, got %s", cfg.Model.Provider)
	}
	if cfg.Model.Model != "qwen2.5" {
		t.Errorf("expected model qwen2.5 from env, got %s", cfg.Model.Model)
	}
	if cfg.UI.Clock != "24h" {
		t.Errorf("expected clock 24h from env, got %s", cfg.UI.Clock)
	}
}

func TestLoadFrom_EnvInvalidNumber(t *testing.T) {
	t.Setenv("BETTERREST_SLEEP_HOURS", "eight")

	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected error for non-numeric BETTERREST_SLEEP_HOURS")
	}
}

func TestLoadFrom_EnvWakeIsLenient(t *testing.T) {
	for _, wake := range []string{"7:00", "7:xx", "xx:30", "25:10"} {
		t.Run(wake, func(t *testing.T) {
			t.Setenv("BETTERREST_WAKE", wake)

			cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Defaults.Wake != wake {
				t.Errorf("expected wake %q kept as written, got %q", wake, cfg.Defaults.Wake)
			}
		})
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[defaults\nwake = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty wake", func(c *Config) { c.Defaults.Wake = "" }, ""},
		{"wake missing leading zero", func(c *Config) { c.Defaults.Wake = "7:00" }, ""},
		{"wake out of range", func(c *Config) { c.Defaults.Wake = "24:00" }, ""},
		{"wake unreadable", func(c *Config) { c.Defaults.Wake = "7:xx" }, ""},
		{"sleep below range", func(c *Config) { c.Defaults.SleepHours = 3.75 }, "sleep_hours must be at least 4"},
		{"sleep above range", func(c *Config) { c.Defaults.SleepHours = 12.25 }, "sleep_hours must be at most 12"},
		{"sleep off grid", func(c *Config) { c.Defaults.SleepHours = 8.1 }, "sleep_hours must be a multiple of 0.25"},
		{"sleep on grid", func(c *Config) { c.Defaults.SleepHours = 11.75 }, ""},
		{"coffee zero", func(c *Config) { c.Defaults.CoffeeCups = 0 }, "coffee_cups must be at least 1"},
		{"coffee above range", func(c *Config) { c.Defaults.CoffeeCups = 21 }, "coffee_cups must be at most 20"},
		{"unknown provider", func(c *Config) { c.Model.Provider = "coreml" }, "provider must be one of"},
		{"unknown clock", func(c *Config) { c.UI.Clock = "36h" }, "clock must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/model.toml", filepath.Join(home, "model.toml")},
		{"/absolute/model.toml", "/absolute/model.toml"},
		{"relative/model.toml", "relative/model.toml"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Defaults.Wake = "05:30"
	cfg.Defaults.SleepHours = 6.75
	cfg.Defaults.CoffeeCups = 2
	cfg.UI.Theme = "mocha"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Defaults.Wake != "05:30" {
		t.Errorf("expected wake 05:30, got %s", loaded.Defaults.Wake)
	}
	if loaded.Defaults.SleepHours != 6.75 {
		t.Errorf("expected sleep_hours 6.75, got %v", loaded.Defaults.SleepHours)
	}
	if loaded.Defaults.CoffeeCups != 2 {
		t.Errorf("expected coffee_cups 2, got %d", loaded.Defaults.CoffeeCups)
	}
	if loaded.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", loaded.UI.Theme)
	}
}
