package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/betterrest/internal/config"
	"github.com/javiermolinar/betterrest/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  betterrest config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), path)
		},
	}

	cmd.Flags().StringVar(&path, "path", config.DefaultConfigPath(), "Config file to edit")
	return cmd
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	p := prompter{in: bufio.NewReader(in), out: out}
	if !p.yesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Defaults.Wake = p.value("Default wake time (HH:MM, empty for now)", cfg.Defaults.Wake)
	cfg.Defaults.SleepHours = p.float("Desired sleep in hours", cfg.Defaults.SleepHours)
	cfg.Defaults.CoffeeCups = p.int("Daily coffee cups", cfg.Defaults.CoffeeCups)
	cfg.Model.Provider = strings.ToLower(p.value("Model provider (bundled, ollama, lmstudio, copilot)", cfg.Model.Provider))
	if cfg.IsRemote() {
		cfg.Model.Model = p.value("Model name", cfg.Model.Model)
		cfg.Model.BaseURL = p.value("Base URL (Ollama/LM Studio)", cfg.Model.BaseURL)
	} else {
		cfg.Model.Path = p.value("Regression file (empty for built-in)", cfg.Model.Path)
	}
	cfg.UI.Theme = p.theme(cfg.UI.Theme)
	cfg.UI.Clock = p.value("Clock (12h or 24h)", cfg.UI.Clock)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, formatHeader("Current configuration:"))
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[defaults]")
	fmt.Fprintf(out, "  wake        = %s\n", orMuted(cfg.Defaults.Wake, "now"))
	fmt.Fprintf(out, "  sleep_hours = %s\n", strconv.FormatFloat(cfg.Defaults.SleepHours, 'f', -1, 64))
	fmt.Fprintf(out, "  coffee_cups = %d\n", cfg.Defaults.CoffeeCups)
	fmt.Fprintln(out, "\n[model]")
	fmt.Fprintf(out, "  provider    = %s\n", cfg.Model.Provider)
	if cfg.IsRemote() {
		fmt.Fprintf(out, "  model       = %s\n", orMuted(cfg.Model.Model, "provider default"))
		fmt.Fprintf(out, "  base_url    = %s\n", orMuted(cfg.Model.BaseURL, "provider default"))
	} else {
		fmt.Fprintf(out, "  path        = %s\n", orMuted(cfg.Model.Path, "built-in"))
	}
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme       = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  clock       = %s\n", cfg.UI.Clock)
}

func orMuted(v, fallback string) string {
	if v == "" {
		return formatMuted("(" + fallback + ")")
	}
	return v
}

// prompter reads answers line by line from a single buffered reader.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p prompter) yesNo(question string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	input, _ := p.in.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func (p prompter) value(label, current string) string {
	if current == "" {
		fmt.Fprintf(p.out, "  %s: ", label)
	} else {
		fmt.Fprintf(p.out, "  %s [%s]: ", label, current)
	}
	input, _ := p.in.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func (p prompter) float(label string, current float64) float64 {
	for {
		value := p.value(label, strconv.FormatFloat(current, 'f', -1, 64))
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
		if p.exhausted() {
			return current
		}
		fmt.Fprintf(p.out, "  Invalid number %q\n", value)
	}
}

func (p prompter) int(label string, current int) int {
	for {
		value := p.value(label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		if p.exhausted() {
			return current
		}
		fmt.Fprintf(p.out, "  Invalid number %q\n", value)
	}
}

func (p prompter) theme(current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(p.value(label, current))
		if theme.IsAvailable(value) || p.exhausted() {
			return value
		}
		fmt.Fprintf(p.out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}

// exhausted reports whether input has run out, so retry loops stop.
func (p prompter) exhausted() bool {
	_, err := p.in.Peek(1)
	return err != nil
}
