package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Remote providers. The names match the [model] provider values in the
// config file.
const (
	ProviderCopilot  = "copilot"
	ProviderOllama   = "ollama"
	ProviderLMStudio = "lmstudio"
)

var (
	// ErrUnsupportedProvider is returned by New for providers without a chat client.
	ErrUnsupportedProvider = errors.New("no chat client for provider")

	// ErrModelRequired is returned when a local provider is configured without a model name.
	ErrModelRequired = errors.New("model name is required")
)

// Options selects and configures the chat client behind the remote predictor.
type Options struct {
	Provider string
	Model    string // empty picks the provider default where there is one
	BaseURL  string // empty picks the provider's local default
}

// New builds the chat client for opts.Provider.
func New(opts Options) (Client, error) {
	switch provider := strings.ToLower(strings.TrimSpace(opts.Provider)); provider {
	case ProviderCopilot:
		return NewCopilotClient(opts.Model)
	case ProviderOllama:
		return NewOllamaClient(opts.Model, opts.BaseURL)
	case ProviderLMStudio:
		return NewLMStudioClient(opts.Model, opts.BaseURL)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedProvider, opts.Provider)
	}
}
