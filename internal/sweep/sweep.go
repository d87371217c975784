// Package sweep evaluates a family of dispersion curves across a range
// of effective fields. Each curve is an independent model instance, so
// the curves run concurrently.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/magnon-tools/spinwave/internal/dispersion"
	"github.com/magnon-tools/spinwave/internal/magnon"
)

// Result is one computed curve of the family.
type Result struct {
	Heff  float64
	Freqs magnon.Grid
}

// FieldSweep computes a dispersion curve for each of Curves effective
// field values evenly spaced over [HeffMin, HeffMax].
type FieldSweep struct {
	Model   string
	Film    magnon.Film
	Base    dispersion.Params
	HeffMin float64
	HeffMax float64
	Curves  int
}

// Run evaluates every curve concurrently and returns them ordered by
// field. The first construction or evaluation error aborts the sweep;
// context cancellation is checked per curve.
func (s *FieldSweep) Run(ctx context.Context) ([]Result, error) {
	if s.Curves < 1 {
		return nil, fmt.Errorf("sweep: need at least one curve, got %d", s.Curves)
	}

	fields := magnon.Span(s.HeffMin, s.HeffMax, s.Curves)
	if s.Curves == 1 {
		fields = magnon.Grid{s.HeffMin}
	}

	results := make([]Result, s.Curves)
	errs := make([]error, s.Curves)

	var wg sync.WaitGroup
	for i := 0; i < s.Curves; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			params := s.Base
			params.Heff = fields[idx]

			model, err := dispersion.Build(s.Model, s.Film, params)
			if err != nil {
				errs[idx] = fmt.Errorf("sweep: Heff=%g: %w", fields[idx], err)
				return
			}
			freqs, err := model.Frequencies()
			if err != nil {
				errs[idx] = fmt.Errorf("sweep: Heff=%g: %w", fields[idx], err)
				return
			}
			results[idx] = Result{Heff: fields[idx], Freqs: freqs}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
