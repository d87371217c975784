package dispersion

import (
	"fmt"
	"math"

	"github.com/magnon-tools/spinwave/internal/magnon"
)

// HarmsDuine estimates the dipole-exchange dispersion through a cubic
// correction to the exchange spectrum. The mode-dependent polynomial
// coefficients feed a depressed cubic whose physically relevant real root
// is taken by the trigonometric (Viete) substitution.
//
// All lengths and wavenumbers are normalized by the exchange length at
// construction, so every evaluated quantity is dimensionless until the
// final frequency estimate restores the fm scale.
type HarmsDuine struct {
	n      int
	lex    float64     // exchange length (m)
	d      float64     // thickness / lex
	kn     float64     // n*pi/d, normalized
	ksw    magnon.Grid // in-plane wavenumbers * lex
	omgH   float64     // Heff / Ms
	fm     float64     // frequency scale (Hz)
	alphaN float64     // 4/(3*pi^2*(1+n)^2)
	aNK    float64     // leading cubic coefficient, fixed at -1
}

// NewHarmsDuine constructs the cubic correction model. The wavenumber
// grid must contain no zero element and the effective field must not
// vanish; both are rejected with ErrInvalidParameter.
func NewHarmsDuine(film magnon.Film, p Params) (*HarmsDuine, error) {
	lex := film.ExchangeLength()
	d := film.Thickness / lex

	if err := p.validate(film.Ms); err != nil {
		return nil, err
	}

	return &HarmsDuine{
		n:      p.ModeNo,
		lex:    lex,
		d:      d,
		kn:     float64(p.ModeNo) * math.Pi / d,
		ksw:    p.Ksw.Scale(lex),
		omgH:   p.Heff / film.Ms,
		fm:     magnon.FrequencyScale(film.Ms),
		alphaN: 4 / (3 * math.Pi * math.Pi * float64(1+p.ModeNo) * float64(1+p.ModeNo)),
		aNK:    -1,
	}, nil
}

func (m *HarmsDuine) Name() string { return "harms-duine" }

// FrequencyScale returns fm in Hz.
func (m *HarmsDuine) FrequencyScale() float64 { return m.fm }

// gammaAt is the field/wavenumber combination 2*(OmgH + 1/2 + k^2 + kn^2)
// dividing the B and C coefficients.
func (m *HarmsDuine) gammaAt(k float64) float64 {
	return 2 * (m.omgH + 0.5 + k*k + m.kn*m.kn)
}

// cubic holds the depressed-cubic quantities for one grid element.
type cubic struct {
	b, c, d float64
	q, p    float64
}

func (m *HarmsDuine) cubicAt(k float64) (cubic, error) {
	gamma := m.gammaAt(k)
	if gamma == 0 {
		return cubic{}, fmt.Errorf("%w at ksw*lex=%g", magnon.ErrSingularGamma, k)
	}

	delta := magnon.Delta(m.n, 0)
	npi := float64(m.n) * math.Pi
	kd := k * m.d
	pi2 := math.Pi * math.Pi

	// B_nk and C_nk share the 3*(k*d)^2 + (n*pi)^2 + delta*pi^2/4 denominator.
	quarter := delta * pi2 / 4
	den := 3*kd*kd + npi*npi + quarter

	bigB := (1-math.Exp(-2*kd))/(4*gamma/(m.d*m.d)) -
		(kd*kd+npi*npi)*(kd*kd+npi*npi+quarter)/den
	bigC := k * k * k * m.d * m.d * m.d * m.d * m.d / (2 * gamma) / den

	odd := float64(2*m.n+1) * pi2

	var cc cubic
	cc.b = bigB - m.alphaN*bigC - m.aNK*odd
	cc.c = (4-delta)*bigC - (bigB-m.alphaN*bigC)*odd
	cc.d = -bigC * (2 - delta) * odd

	ba := cc.b / m.aNK
	cc.q = cc.d/m.aNK - (cc.b*cc.c/(m.aNK*m.aNK))/3 + ba*ba*ba*2/27
	cc.p = cc.c/m.aNK - ba*ba/3

	return cc, nil
}

// zAt returns the physically relevant real root of the depressed cubic
// for one grid element. The branch is fixed: cos(acos(...)/3 - 2*pi/3).
// Outside the formula's validity range (P >= 0 or |acos argument| > 1)
// the result is NaN and propagates.
func (m *HarmsDuine) zAt(k float64) (float64, error) {
	cc, err := m.cubicAt(k)
	if err != nil {
		return 0, err
	}
	shift := (cc.b / m.aNK) * (-1.0 / 3)
	amp := math.Sqrt(-4 * cc.p / 3)
	angle := (1.0/3)*math.Acos(1.5*math.Sqrt(-3/cc.p)*(cc.q/cc.p)) - 2*math.Pi/3
	return shift + amp*math.Cos(angle), nil
}

// CorrectionFactors returns the dimensionless cubic root z_nk for each
// grid element.
func (m *HarmsDuine) CorrectionFactors() (magnon.Grid, error) {
	out := make(magnon.Grid, len(m.ksw))
	for i, k := range m.ksw {
		z, err := m.zAt(k)
		if err != nil {
			return nil, err
		}
		out[i] = z
	}
	return out, nil
}

// Frequencies returns the estimated propagating spin-wave frequency in Hz
// for each grid element. A negative radicand yields NaN, which is within
// the model's stated validity policy and is not masked.
func (m *HarmsDuine) Frequencies() (magnon.Grid, error) {
	out := make(magnon.Grid, len(m.ksw))
	for i, k := range m.ksw {
		z, err := m.zAt(k)
		if err != nil {
			return nil, err
		}
		sum := m.omgH + 0.5 + k*k + m.kn*m.kn + z/(m.d*m.d)
		out[i] = m.fm * math.Sqrt(sum*sum-0.25)
	}
	return out, nil
}
