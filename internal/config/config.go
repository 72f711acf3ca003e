// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Stepper bounds for the form inputs.
const (
	SleepHoursMin  = 4.0
	SleepHoursMax  = 12.0
	SleepHoursStep = 0.25
	CoffeeCupsMin  = 1
	CoffeeCupsMax  = 20
)

// Prediction providers.
const (
	ProviderBundled  = "bundled"
	ProviderOllama   = "ollama"
	ProviderLMStudio = "lmstudio"
	ProviderCopilot  = "copilot"
)

// Config holds the application configuration.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Model    ModelConfig    `toml:"model"`
	UI       UIConfig       `toml:"ui"`
}

// DefaultsConfig holds the initial form values.
type DefaultsConfig struct {
	Wake       string  `toml:"wake"`                                        // e.g., "07:00"; empty means now, unreadable parts are 0
	SleepHours float64 `toml:"sleep_hours" validate:"gte=4,lte=12,quarter"` // 4..12 in 0.25 steps
	CoffeeCups int     `toml:"coffee_cups" validate:"gte=1,lte=20"`         // 1..20
}

// ModelConfig holds prediction provider settings.
type ModelConfig struct {
	Provider string `toml:"provider" validate:"oneof=bundled ollama lmstudio copilot"`
	Path     string `toml:"path"`     // Regression override file (bundled only)
	Model    string `toml:"model"`    // e.g., "llama3" (remote providers)
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"`                             // "mocha", "macchiato", "frappe", "latte", "light"
	Clock string `toml:"clock" validate:"oneof=12h 24h"` // Bedtime display format
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Wake:       "07:00",
			SleepHours: 8.0,
			CoffeeCups: 1,
		},
		Model: ModelConfig{
			Provider: ProviderBundled,
		},
		UI: UIConfig{
			Theme: "frappe",
			Clock: "12h",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "betterrest", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Model.Path = expandPath(cfg.Model.Path)
	cfg.Model.Provider = strings.ToLower(strings.TrimSpace(cfg.Model.Provider))
	if cfg.Model.Provider == "" {
		cfg.Model.Provider = ProviderBundled
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("BETTERREST_WAKE"); v != "" {
		cfg.Defaults.Wake = v
	}
	if v := os.Getenv("BETTERREST_SLEEP_HOURS"); v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("BETTERREST_SLEEP_HOURS: %w", err)
		}
		cfg.Defaults.SleepHours = hours
	}
	if v := os.Getenv("BETTERREST_COFFEE_CUPS"); v != "" {
		cups, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BETTERREST_COFFEE_CUPS: %w", err)
		}
		cfg.Defaults.CoffeeCups = cups
	}

	if v := os.Getenv("BETTERREST_MODEL_PROVIDER"); v != "" {
		cfg.Model.Provider = v
	}
	if v := os.Getenv("BETTERREST_MODEL"); v != "" {
		cfg.Model.Model = v
	}
	if v := os.Getenv("BETTERREST_MODEL_BASE_URL"); v != "" {
		cfg.Model.BaseURL = v
	}
	if v := os.Getenv("BETTERREST_MODEL_PATH"); v != "" {
		cfg.Model.Path = v
	}

	if v := os.Getenv("BETTERREST_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("BETTERREST_UI_CLOCK"); v != "" {
		cfg.UI.Clock = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("quarter", func(fl validator.FieldLevel) bool {
		q := fl.Field().Float() / SleepHoursStep
		return q == math.Trunc(q)
	})
	return v
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	name := fieldNames[fe.StructNamespace()]
	if name == "" {
		name = fe.Field()
	}

	switch fe.Tag() {
	case "quarter":
		return fmt.Sprintf("%s must be a multiple of %.2f, got %v", name, SleepHoursStep, fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", name, fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", name, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s, got %q", name, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

var fieldNames = map[string]string{
	"Config.Defaults.SleepHours": "sleep_hours",
	"Config.Defaults.CoffeeCups": "coffee_cups",
	"Config.Model.Provider":      "provider",
	"Config.UI.Clock":            "clock",
}

// Uses24HourClock reports whether bedtimes should be shown as "23:10".
func (c *Config) Uses24HourClock() bool {
	return c.UI.Clock == "24h"
}

// IsRemote reports whether predictions come from a remote LLM provider.
func (c *Config) IsRemote() bool {
	return c.Model.Provider != "" && c.Model.Provider != ProviderBundled
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
