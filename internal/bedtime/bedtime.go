// Package bedtime computes a recommended bedtime from a wake time, a desired
// amount of sleep and daily coffee intake, using an injected sleep predictor.
package bedtime

import (
	"context"
	"errors"
	"time"
)

// Titles and messages shown for a calculation outcome.
const (
	SuccessTitle   = "Your ideal bedtime is..."
	FailureTitle   = "Error"
	FailureMessage = "Sorry, there was a problem calculating your bedtime."
)

// ErrPredictionUnavailable is returned by predictors that cannot produce a
// prediction. The calculator treats every predictor error the same way.
var ErrPredictionUnavailable = errors.New("prediction unavailable")

// Input holds the raw values for one calculation.
type Input struct {
	Wake       time.Time
	SleepHours float64
	CoffeeCups int
}

// Features is the feature vector passed to a Predictor.
type Features struct {
	Wake           int     // Seconds since midnight
	EstimatedSleep float64 // Hours
	Coffee         int     // Cups per day
}

// Prediction is the result of a Predictor call.
type Prediction struct {
	ActualSleep time.Duration
}

// Predictor maps a feature vector to the amount of sleep actually needed.
type Predictor interface {
	Predict(ctx context.Context, f Features) (Prediction, error)
}

// PredictorFunc adapts a plain function to the Predictor interface.
type PredictorFunc func(ctx context.Context, f Features) (Prediction, error)

// Predict calls fn(ctx, f).
func (fn PredictorFunc) Predict(ctx context.Context, f Features) (Prediction, error) {
	return fn(ctx, f)
}

// Outcome is the result of one calculation: either a bedtime or a generic
// failure message.
type Outcome struct {
	OK      bool
	Bedtime time.Time
	Message string
}

// Success returns a successful outcome for the given bedtime.
func Success(bedtime time.Time) Outcome {
	return Outcome{OK: true, Bedtime: bedtime}
}

// Failure returns the generic failure outcome.
func Failure() Outcome {
	return Outcome{Message: FailureMessage}
}

// Title returns the dialog title for the outcome.
func (o Outcome) Title() string {
	if o.OK {
		return SuccessTitle
	}
	return FailureTitle
}

// Text returns the dialog body: the formatted bedtime or the failure message.
func (o Outcome) Text(clock24 bool) string {
	if o.OK {
		return FormatShort(o.Bedtime, clock24)
	}
	return o.Message
}

// Calculator turns inputs into outcomes.
type Calculator struct {
	predictor Predictor
}

// NewCalculator creates a calculator backed by the given predictor.
func NewCalculator(p Predictor) *Calculator {
	return &Calculator{predictor: p}
}

// Calculate runs one calculation. It never returns the predictor's error:
// any failure becomes Failure().
func (c *Calculator) Calculate(ctx context.Context, in Input) Outcome {
	f := Features{
		Wake:           WakeSeconds(in.Wake),
		EstimatedSleep: in.SleepHours,
		Coffee:         in.CoffeeCups,
	}

	pred, err := c.predict(ctx, f)
	if err != nil {
		return Failure()
	}

	return Success(in.Wake.Add(-pred.ActualSleep))
}

// predict calls the predictor, turning a missing predictor or a panic into
// ErrPredictionUnavailable.
func (c *Calculator) predict(ctx context.Context, f Features) (pred Prediction, err error) {
	if c == nil || c.predictor == nil {
		return Prediction{}, ErrPredictionUnavailable
	}

	defer func() {
		if r := recover(); r != nil {
			pred = Prediction{}
			err = ErrPredictionUnavailable
		}
	}()

	return c.predictor.Predict(ctx, f)
}
