package predict

import (
	"context"

	"github.com/javiermolinar/betterrest/internal/bedtime"
)

// Bundled loads the regression model on every call, so a missing or broken
// model file is reported per calculation rather than at startup.
type Bundled struct {
	path string
}

// NewBundled returns a predictor for the model at path ("" for the embedded one).
func NewBundled(path string) *Bundled {
	return &Bundled{path: path}
}

// Predict loads the model and evaluates it.
func (b *Bundled) Predict(ctx context.Context, f bedtime.Features) (bedtime.Prediction, error) {
	model, err := LoadRegression(b.path)
	if err != nil {
		return bedtime.Prediction{}, err
	}
	return model.Predict(ctx, f)
}
