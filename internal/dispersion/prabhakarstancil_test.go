package dispersion

import (
	"errors"
	"math"
	"testing"

	"github.com/magnon-tools/spinwave/internal/magnon"
)

func TestPrabhakarStancil_ConstructionErrors(t *testing.T) {
	if _, err := NewPrabhakarStancil(magnon.Film{Ms: 1.4e5}, testParams()); !errors.Is(err, magnon.ErrMissingField) {
		t.Errorf("incomplete film: expected ErrMissingField, got %v", err)
	}

	p := testParams()
	p.Ksw = magnon.Grid{1e7, 0, 2e7}
	if _, err := NewPrabhakarStancil(testFilm, p); !errors.Is(err, magnon.ErrInvalidParameter) {
		t.Errorf("zero ksw: expected ErrInvalidParameter, got %v", err)
	}

	p = testParams()
	p.Heff = 0
	if _, err := NewPrabhakarStancil(testFilm, p); !errors.Is(err, magnon.ErrInvalidParameter) {
		t.Errorf("zero field: expected ErrInvalidParameter, got %v", err)
	}
}

func TestPrabhakarStancil_PropagatingFrequencies(t *testing.T) {
	tests := []struct {
		config Mode
		want   float64
	}{
		{MSSW, 5.030636085238279e9},
		{BVSW, 4.684166809061171e9},
		{FVSW, 3.17845328502948e9},
	}

	for _, tt := range tests {
		t.Run(tt.config.String(), func(t *testing.T) {
			p := testParams()
			p.Config = tt.config
			m, err := NewPrabhakarStancil(testFilm, p)
			if err != nil {
				t.Fatal(err)
			}
			freqs, err := m.Frequencies()
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(freqs[0]-tt.want)/tt.want > 1e-9 {
				t.Errorf("frequency = %v, want %v", freqs[0], tt.want)
			}
		})
	}
}

func TestPrabhakarStancil_QueryTimeConfigValidation(t *testing.T) {
	// A resonance geometry is a legal stored configuration; only the
	// propagating query rejects it.
	p := testParams()
	p.Config = Normal
	m, err := NewPrabhakarStancil(testFilm, p)
	if err != nil {
		t.Fatalf("construction should not validate config: %v", err)
	}
	if _, err := m.Frequencies(); !errors.Is(err, magnon.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPrabhakarStancil_ResonanceFrequency(t *testing.T) {
	m, err := NewPrabhakarStancil(testFilm, testParams())
	if err != nil {
		t.Fatal(err)
	}

	// n=0 makes kn vanish: Normal resonance is fm*OmgH exactly.
	got, err := m.ResonanceFrequency(Normal)
	if err != nil {
		t.Fatal(err)
	}
	const wantNormal = 2.816e9
	if math.Abs(got-wantNormal)/wantNormal > 1e-12 {
		t.Errorf("Normal resonance = %v, want %v", got, wantNormal)
	}

	got, err = m.ResonanceFrequency(Tangential)
	if err != nil {
		t.Fatal(err)
	}
	const wantTangential = 4.669807704820402e9
	if math.Abs(got-wantTangential)/wantTangential > 1e-9 {
		t.Errorf("Tangential resonance = %v, want %v", got, wantTangential)
	}

	if _, err := m.ResonanceFrequency(MSSW); !errors.Is(err, magnon.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for MSSW, got %v", err)
	}
}

func TestPrabhakarStancil_ResonanceUsesThicknessMode(t *testing.T) {
	// At n=1 the exchange term lambda*kn^2 must raise the Normal resonance.
	base, err := NewPrabhakarStancil(testFilm, testParams())
	if err != nil {
		t.Fatal(err)
	}
	p := testParams()
	p.ModeNo = 1
	excited, err := NewPrabhakarStancil(testFilm, p)
	if err != nil {
		t.Fatal(err)
	}

	f0, _ := base.ResonanceFrequency(Normal)
	f1, _ := excited.ResonanceFrequency(Normal)
	if f1 <= f0 {
		t.Errorf("n=1 resonance %v should exceed n=0 resonance %v", f1, f0)
	}

	kn := math.Pi / testFilm.Thickness
	want := magnon.FrequencyScale(testFilm.Ms) * (8e4/testFilm.Ms + testFilm.Lambda()*kn*kn)
	if math.Abs(f1-want)/want > 1e-12 {
		t.Errorf("n=1 Normal resonance = %v, want %v", f1, want)
	}
}

func TestPrabhakarStancil_ElementwiseConsistency(t *testing.T) {
	grid := magnon.Grid{2e6, 2e7, 2e8}
	p := testParams()
	p.Ksw = grid
	m, err := NewPrabhakarStancil(testFilm, p)
	if err != nil {
		t.Fatal(err)
	}
	batch, err := m.Frequencies()
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != len(grid) {
		t.Fatalf("expected %d results, got %d", len(grid), len(batch))
	}

	for i, k := range grid {
		sp := testParams()
		sp.Ksw = magnon.Grid{k}
		sm, err := NewPrabhakarStancil(testFilm, sp)
		if err != nil {
			t.Fatal(err)
		}
		single, _ := sm.Frequencies()
		if batch[i] != single[0] {
			t.Errorf("k=%g: batch %v != scalar %v", k, batch[i], single[0])
		}
	}
}
