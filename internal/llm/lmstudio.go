package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultLMStudioBaseURL = "http://localhost:1234/v1"

// LMStudioClient asks a model served by LM Studio's OpenAI-compatible
// endpoint, usually on the same machine.
type LMStudioClient struct {
	openAIChat
	baseURL string
}

// NewLMStudioClient returns a client for model at baseURL, or at
// http://localhost:1234/v1 when baseURL is empty.
func NewLMStudioClient(model, baseURL string) (*LMStudioClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("lm studio: %w", ErrModelRequired)
	}
	if baseURL == "" {
		baseURL = defaultLMStudioBaseURL
	}

	// LM Studio ignores the key unless server authentication is enabled.
	apiKey := os.Getenv("BETTERREST_LMSTUDIO_API_KEY")
	if apiKey == "" {
		apiKey = "betterrest"
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &LMStudioClient{
		openAIChat: openAIChat{client: client, model: model, label: "lm studio"},
		baseURL:    baseURL,
	}, nil
}

// Chat sends messages to the LLM and returns the response.
func (c *LMStudioClient) Chat(ctx context.Context, messages []Message) (string, error) {
	return c.chat(ctx, messages)
}

// ChatJSON sends messages and parses the response as JSON into the provided type.
func (c *LMStudioClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	return c.chatJSON(ctx, messages, result)
}
