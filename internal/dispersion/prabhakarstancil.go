package dispersion

import (
	"fmt"
	"math"

	"github.com/magnon-tools/spinwave/internal/magnon"
)

// PrabhakarStancil estimates the dispersion from the geometry-specific
// formulas of Prabhakar & Stancil, "Spin Waves: Theory and Applications"
// (Springer, 2009). Unlike the other models it validates its stored
// configuration at query time, so a single instance can answer the
// resonance query for any geometry.
type PrabhakarStancil struct {
	n      int
	d      float64     // thickness (m)
	lambda float64     // exchange length squared (m^2)
	kn     float64     // n*pi/d (rad/m)
	ksw    magnon.Grid // in-plane wavenumbers (rad/m)
	omgHEx magnon.Grid // OmgH + lambda*ktot^2 per element
	omgH   float64     // Heff / Ms
	fm     float64     // frequency scale (Hz)
	config Mode
}

// NewPrabhakarStancil constructs the model. The film must carry all three
// properties; wave and field parameters pass the common zero checks.
func NewPrabhakarStancil(film magnon.Film, p Params) (*PrabhakarStancil, error) {
	if err := film.Validate(); err != nil {
		return nil, err
	}
	if err := p.validate(film.Ms); err != nil {
		return nil, err
	}

	kn := float64(p.ModeNo) * math.Pi / film.Thickness
	omgH := p.Heff / film.Ms
	lambda := film.Lambda()

	ksw := p.Ksw.Clone()
	omgHEx := make(magnon.Grid, len(ksw))
	for i, k := range ksw {
		ktot2 := k*k + kn*kn
		omgHEx[i] = omgH + lambda*ktot2
	}

	return &PrabhakarStancil{
		n:      p.ModeNo,
		d:      film.Thickness,
		lambda: lambda,
		kn:     kn,
		ksw:    ksw,
		omgHEx: omgHEx,
		omgH:   omgH,
		fm:     magnon.FrequencyScale(film.Ms),
		config: p.Config,
	}, nil
}

func (m *PrabhakarStancil) Name() string { return "prabhakar-stancil" }

// FrequencyScale returns fm in Hz.
func (m *PrabhakarStancil) FrequencyScale() float64 { return m.fm }

// Frequencies returns the estimated propagating spin-wave frequency in Hz
// for each grid element, branching on the stored configuration. Anything
// but MSSW, BVSW or FVSW is rejected with ErrInvalidConfig.
func (m *PrabhakarStancil) Frequencies() (magnon.Grid, error) {
	out := make(magnon.Grid, len(m.ksw))
	switch m.config {
	case MSSW:
		for i, k := range m.ksw {
			term := (1 - math.Exp(-2*k*m.d)) / 4
			w := m.omgHEx[i]
			out[i] = m.fm * math.Sqrt(w*(w+1)+term)
		}
	case BVSW:
		for i, k := range m.ksw {
			term := (1 - math.Exp(-k*m.d)) / (k * m.d)
			w := m.omgHEx[i]
			out[i] = m.fm * math.Sqrt(w*(w+term))
		}
	case FVSW:
		for i, k := range m.ksw {
			term := 1 - (1-math.Exp(-k*m.d))/(k*m.d)
			w := m.omgHEx[i]
			out[i] = m.fm * math.Sqrt(w*(w+term))
		}
	default:
		return nil, fmt.Errorf("%w: propagating frequency needs MSSW, BVSW or FVSW, got %s",
			magnon.ErrInvalidConfig, m.config)
	}
	return out, nil
}

// ResonanceFrequency returns the uniform-precession resonance frequency
// in Hz for a normal or tangential static field. The geometry argument is
// independent of the stored propagation configuration.
func (m *PrabhakarStancil) ResonanceFrequency(geometry Mode) (float64, error) {
	w := m.omgH + m.lambda*m.kn*m.kn
	switch geometry {
	case Normal:
		return m.fm * w, nil
	case Tangential:
		return m.fm * math.Sqrt(w*(w+1)), nil
	default:
		return 0, fmt.Errorf("%w: resonance frequency needs Normal or Tangential, got %s",
			magnon.ErrInvalidConfig, geometry)
	}
}
