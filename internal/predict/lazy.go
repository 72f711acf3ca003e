package predict

import (
	"context"
	"fmt"
	"sync"

	"github.com/javiermolinar/betterrest/internal/bedtime"
)

// Lazy builds its predictor on first use. A failed build is retried on the
// next call; a successful one is kept.
type Lazy struct {
	build func() (bedtime.Predictor, error)

	mu        sync.Mutex
	predictor bedtime.Predictor
}

// NewLazy returns a predictor that calls build when first needed.
func NewLazy(build func() (bedtime.Predictor, error)) *Lazy {
	return &Lazy{build: build}
}

// Predict builds the predictor if needed and delegates to it.
func (l *Lazy) Predict(ctx context.Context, f bedtime.Features) (bedtime.Prediction, error) {
	p, err := l.get()
	if err != nil {
		return bedtime.Prediction{}, err
	}
	return p.Predict(ctx, f)
}

func (l *Lazy) get() (bedtime.Predictor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.predictor != nil {
		return l.predictor, nil
	}
	p, err := l.build()
	if err != nil {
		return nil, fmt.Errorf("building predictor: %w", err)
	}
	l.predictor = p
	return p, nil
}
