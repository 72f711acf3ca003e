package predict

import (
	"context"
	"fmt"

	"github.com/javiermolinar/betterrest/internal/bedtime"
	"github.com/javiermolinar/betterrest/internal/llm"
)

const remoteSystemPrompt = `You are a sleep regression model. Given a wake time, a desired amount of sleep and daily coffee intake, predict how many seconds of sleep the person actually needs.
Respond with JSON only, exactly in this shape: {"actual_sleep_seconds": <number>}`

const remoteUserPrompt = `wake: %d (seconds since midnight)
estimated_sleep: %g (hours)
coffee: %d (cups per day)`

// remoteResponse is the JSON answer expected from the model.
type remoteResponse struct {
	ActualSleepSeconds *float64 `json:"actual_sleep_seconds"`
}

// Remote predicts by asking an LLM to act as the regression model.
type Remote struct {
	client llm.Client
}

// NewRemote returns a predictor backed by client.
func NewRemote(client llm.Client) *Remote {
	return &Remote{client: client}
}

// Predict sends the feature vector to the LLM and reads actual_sleep_seconds.
func (r *Remote) Predict(ctx context.Context, f bedtime.Features) (bedtime.Prediction, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: remoteSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(remoteUserPrompt, f.Wake, f.EstimatedSleep, f.Coffee)},
	}

	var resp remoteResponse
	if err := r.client.ChatJSON(ctx, messages, &resp); err != nil {
		return bedtime.Prediction{}, fmt.Errorf("remote prediction: %w", err)
	}
	if resp.ActualSleepSeconds == nil {
		return bedtime.Prediction{}, fmt.Errorf("%w: response has no actual_sleep_seconds", bedtime.ErrPredictionUnavailable)
	}

	d, err := secondsToDuration(*resp.ActualSleepSeconds)
	if err != nil {
		return bedtime.Prediction{}, err
	}
	return bedtime.Prediction{ActualSleep: d}, nil
}
