package dispersion

import (
	"math"

	"github.com/magnon-tools/spinwave/internal/magnon"
)

// KalinikosSlavin estimates the dipole-exchange dispersion from the
// form-factor theory of Kalinikos & Slavin, J. Phys. C 19, 7013 (1986),
// with either totally pinned or totally unpinned surface spins.
type KalinikosSlavin struct {
	n      int
	d      float64     // thickness (m)
	lambda float64     // exchange length squared (m^2)
	kn     float64     // n*pi/d (rad/m)
	ksw    magnon.Grid // in-plane wavenumbers (rad/m)
	ktot   magnon.Grid // sqrt(ksw^2 + kn^2)
	omgH   float64     // Heff / Ms
	fm     float64     // frequency scale (Hz)
	orient Orientation
	pinned bool
}

// NewKalinikosSlavin constructs the form-factor model. The film must
// carry all three properties (ErrMissingField lists absent ones). The
// propagation direction comes from Params.Angles verbatim when set,
// otherwise from the named configuration; a name without propagation
// angles is rejected with ErrInvalidConfig.
func NewKalinikosSlavin(film magnon.Film, p Params) (*KalinikosSlavin, error) {
	if err := film.Validate(); err != nil {
		return nil, err
	}
	if err := p.validate(film.Ms); err != nil {
		return nil, err
	}

	orient := Orientation{}
	if p.Angles != nil {
		orient = *p.Angles
	} else {
		var err error
		if orient, err = p.Config.Orientation(); err != nil {
			return nil, err
		}
	}

	kn := float64(p.ModeNo) * math.Pi / film.Thickness
	ksw := p.Ksw.Clone()
	ktot := make(magnon.Grid, len(ksw))
	for i, k := range ksw {
		ktot[i] = math.Sqrt(k*k + kn*kn)
	}

	return &KalinikosSlavin{
		n:      p.ModeNo,
		d:      film.Thickness,
		lambda: film.Lambda(),
		kn:     kn,
		ksw:    ksw,
		ktot:   ktot,
		omgH:   p.Heff / film.Ms,
		fm:     magnon.FrequencyScale(film.Ms),
		orient: orient,
		pinned: p.Pinned,
	}, nil
}

func (m *KalinikosSlavin) Name() string { return "kalinikos-slavin" }

// FrequencyScale returns fm in Hz.
func (m *KalinikosSlavin) FrequencyScale() float64 { return m.fm }

// formFactorAt is F_n = (2/(k*d)) * (1 - (-1)^n * exp(-k*d)), Eq. (A14).
func (m *KalinikosSlavin) formFactorAt(k float64) float64 {
	sign := 1.0
	if m.n%2 != 0 {
		sign = -1.0
	}
	return (2 / (k * m.d)) * (1 - sign*math.Exp(-k*m.d))
}

// pnnAt is the surface-mode coupling coefficient P_nn: Eq. (A12) for
// unpinned spins, Eq. (A10) for totally pinned spins.
func (m *KalinikosSlavin) pnnAt(i int) float64 {
	k, kt := m.ksw[i], m.ktot[i]
	ratio := k / kt
	if m.pinned {
		kr := k * m.kn / (kt * kt)
		return ratio*ratio + kr*kr*m.formFactorAt(k)
	}
	deltaTerm := 1 / (1 + magnon.Delta(0, m.n))
	r2 := ratio * ratio
	return r2 - r2*r2*m.formFactorAt(k)*deltaTerm
}

// CouplingFactors returns the dipole-exchange coupling correction F_nn,
// Eq. (46), for each grid element.
func (m *KalinikosSlavin) CouplingFactors() magnon.Grid {
	sinTheta := math.Sin(m.orient.Theta)
	sinPhi := math.Sin(m.orient.Phi)
	cosPhi := math.Cos(m.orient.Phi)

	out := make(magnon.Grid, len(m.ksw))
	for i := range m.ksw {
		pnn := m.pnnAt(i)
		kt := m.ktot[i]
		omgEx := m.omgH + m.lambda*kt*kt
		term1 := 1 - pnn*(1+cosPhi*cosPhi)
		term2 := pnn * (1 - pnn) * sinPhi * sinPhi / omgEx
		out[i] = pnn + sinTheta*sinTheta*(term1+term2)
	}
	return out
}

// Frequencies returns the estimated propagating spin-wave frequency in Hz
// for each grid element, Eq. (45). Negative radicands yield NaN and
// propagate.
func (m *KalinikosSlavin) Frequencies() (magnon.Grid, error) {
	fnn := m.CouplingFactors()
	out := make(magnon.Grid, len(m.ksw))
	for i, kt := range m.ktot {
		omgEx := m.omgH + m.lambda*kt*kt
		out[i] = m.fm * math.Sqrt(omgEx*(omgEx+fnn[i]))
	}
	return out, nil
}
