package predict

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/betterrest/internal/bedtime"
	"github.com/javiermolinar/betterrest/internal/config"
	"github.com/javiermolinar/betterrest/internal/llm"
)

// New creates the predictor selected by the model configuration. Remote
// clients are built on first use so that an unreachable provider shows up as
// a failed calculation instead of a startup error.
func New(cfg config.ModelConfig) (bedtime.Predictor, error) {
	switch provider := strings.ToLower(strings.TrimSpace(cfg.Provider)); provider {
	case "", config.ProviderBundled:
		return NewBundled(cfg.Path), nil
	case config.ProviderOllama, config.ProviderLMStudio, config.ProviderCopilot:
		return NewLazy(func() (bedtime.Predictor, error) {
			client, err := llm.New(llm.Options{Provider: provider, Model: cfg.Model, BaseURL: cfg.BaseURL})
			if err != nil {
				return nil, err
			}
			return NewRemote(client), nil
		}), nil
	default:
		return nil, fmt.Errorf("unsupported prediction provider: %q", cfg.Provider)
	}
}
