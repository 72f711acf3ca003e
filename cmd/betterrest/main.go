package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/javiermolinar/betterrest/internal/config"
	"github.com/javiermolinar/betterrest/internal/ui"
)

func main() {
	if err := run(); err != nil {
		// calc has already printed the failure message.
		if !errors.Is(err, ui.ErrCalculationFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	// A .env file in the working directory may set BETTERREST_* overrides.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return ui.NewApp(nil, cfg).Execute()
}
