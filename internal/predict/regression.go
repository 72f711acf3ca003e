// Package predict provides the sleep predictors used by the bedtime
// calculator: the bundled regression model and a remote LLM predictor.
package predict

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/betterrest/internal/bedtime"
)

//go:embed models/*.toml
var embeddedModels embed.FS

const bundledModelPath = "models/sleep_calculator.toml"

// Coefficients are the weights of the regression model. The prediction is in
// seconds.
type Coefficients struct {
	Intercept      float64 `toml:"intercept"`
	Wake           float64 `toml:"wake"`
	EstimatedSleep float64 `toml:"estimated_sleep"`
	Coffee         float64 `toml:"coffee"`
}

// Regression is a linear regression model mapping the feature vector to the
// actual sleep needed.
type Regression struct {
	Name         string       `toml:"name"`
	Version      int          `toml:"version"`
	Coefficients Coefficients `toml:"coefficients"`
}

// LoadRegression loads a regression model from path, or the bundled model
// when path is empty.
func LoadRegression(path string) (*Regression, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = embeddedModels.ReadFile(bundledModelPath)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}

	return ParseRegression(data)
}

// ParseRegression decodes a regression model from TOML.
func ParseRegression(data []byte) (*Regression, error) {
	var r Regression
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing model: %w", err)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Regression) validate() error {
	c := r.Coefficients
	for name, v := range map[string]float64{
		"intercept":       c.Intercept,
		"wake":            c.Wake,
		"estimated_sleep": c.EstimatedSleep,
		"coffee":          c.Coffee,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("model coefficient %s is not finite", name)
		}
	}
	if c == (Coefficients{}) {
		return errors.New("model has no coefficients")
	}
	return nil
}

// Predict evaluates the model.
func (r *Regression) Predict(_ context.Context, f bedtime.Features) (bedtime.Prediction, error) {
	c := r.Coefficients
	seconds := c.Intercept +
		c.Wake*float64(f.Wake) +
		c.EstimatedSleep*f.EstimatedSleep +
		c.Coffee*float64(f.Coffee)

	d, err := secondsToDuration(seconds)
	if err != nil {
		return bedtime.Prediction{}, err
	}
	return bedtime.Prediction{ActualSleep: d}, nil
}

// secondsToDuration converts a model output to a duration. Outputs that are
// not finite or do not fit in a time.Duration are rejected.
func secondsToDuration(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%w: non-finite output", bedtime.ErrPredictionUnavailable)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
	ns := math.Round(seconds * float64(time.Second))
	if ns >= float64(math.MaxInt64) || ns < float64(math.MinInt64) {
		return 0, fmt.Errorf("%w: output %g seconds out of range", bedtime.ErrPredictionUnavailable, seconds)
	}
	return time.Duration(ns), nil
}
