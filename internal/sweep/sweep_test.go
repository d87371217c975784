package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/magnon-tools/spinwave/internal/dispersion"
	"github.com/magnon-tools/spinwave/internal/magnon"
)

var sweepFilm = magnon.Film{Ms: 1.4e5, Thickness: 2e-8, Aex: 3.5e-12}

func baseParams() dispersion.Params {
	return dispersion.Params{
		Ksw:    magnon.Span(1e6, 1e8, 20),
		Heff:   8e4,
		Config: dispersion.MSSW,
	}
}

func TestFieldSweep_Run(t *testing.T) {
	s := &FieldSweep{
		Model:   "kalinikos-slavin",
		Film:    sweepFilm,
		Base:    baseParams(),
		HeffMin: 4e4,
		HeffMax: 1.6e5,
		Curves:  4,
	}

	results, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 curves, got %d", len(results))
	}

	if results[0].Heff != 4e4 || results[3].Heff != 1.6e5 {
		t.Errorf("field endpoints wrong: %v .. %v", results[0].Heff, results[3].Heff)
	}
	for i, r := range results {
		if len(r.Freqs) != 20 {
			t.Errorf("curve %d: expected 20 points, got %d", i, len(r.Freqs))
		}
		if !r.Freqs.IsValid() {
			t.Errorf("curve %d: contains NaN/Inf", i)
		}
	}

	// A stronger field must raise the dispersion everywhere.
	for j := range results[0].Freqs {
		if results[3].Freqs[j] <= results[0].Freqs[j] {
			t.Errorf("point %d: high-field curve not above low-field curve", j)
			break
		}
	}
}

func TestFieldSweep_MatchesSequential(t *testing.T) {
	s := &FieldSweep{
		Model:   "prabhakar-stancil",
		Film:    sweepFilm,
		Base:    baseParams(),
		HeffMin: 5e4,
		HeffMax: 1e5,
		Curves:  3,
	}
	results, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	for _, r := range results {
		p := baseParams()
		p.Heff = r.Heff
		m, err := dispersion.Build("prabhakar-stancil", sweepFilm, p)
		if err != nil {
			t.Fatal(err)
		}
		want, err := m.Frequencies()
		if err != nil {
			t.Fatal(err)
		}
		for j := range want {
			if r.Freqs[j] != want[j] {
				t.Fatalf("Heff=%g point %d: parallel %v != sequential %v", r.Heff, j, r.Freqs[j], want[j])
			}
		}
	}
}

func TestFieldSweep_PropagatesModelError(t *testing.T) {
	s := &FieldSweep{
		Model:   "kalinikos-slavin",
		Film:    magnon.Film{Ms: 1.4e5}, // thickness and Aex absent
		Base:    baseParams(),
		HeffMin: 4e4,
		HeffMax: 8e4,
		Curves:  2,
	}
	if _, err := s.Run(context.Background()); !errors.Is(err, magnon.ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
}

func TestFieldSweep_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &FieldSweep{
		Model:   "kalinikos-slavin",
		Film:    sweepFilm,
		Base:    baseParams(),
		HeffMin: 4e4,
		HeffMax: 8e4,
		Curves:  2,
	}
	if _, err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFieldSweep_NoCurves(t *testing.T) {
	s := &FieldSweep{Model: "kalinikos-slavin", Film: sweepFilm, Base: baseParams()}
	if _, err := s.Run(context.Background()); err == nil {
		t.Error("expected error for zero curves")
	}
}
