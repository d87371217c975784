package dispersion

import (
	"fmt"

	"github.com/magnon-tools/spinwave/internal/magnon"
)

// Params bundles the wave and field parameters shared by all models.
type Params struct {
	// ModeNo is the thickness-quantized mode number n (default 0).
	ModeNo int
	// Ksw is the in-plane wavenumber grid in rad/m. No element may be zero.
	Ksw magnon.Grid
	// Heff is the effective magnetic field in A/m. Must be nonzero.
	Heff float64
	// Config selects the propagation geometry.
	Config Mode
	// Angles, when set, overrides Config with an explicit direction
	// (Kalinikos-Slavin only).
	Angles *Orientation
	// Pinned selects totally pinned surface spins (Kalinikos-Slavin only;
	// default unpinned).
	Pinned bool
}

// validate applies the parameter checks common to all three models.
func (p Params) validate(ms float64) error {
	if p.Ksw.Min() == 0 {
		return fmt.Errorf("%w: ksw (in-plane wavenumber) cannot be zero", magnon.ErrInvalidParameter)
	}
	if p.Heff/ms == 0 {
		return fmt.Errorf("%w: ratio of effective field to saturation magnetization cannot be zero", magnon.ErrInvalidParameter)
	}
	return nil
}

// Model is a constructed dispersion model queryable for its propagating
// frequency estimate.
type Model interface {
	Name() string
	// Frequencies returns the estimated spin-wave frequency in Hz for each
	// element of the wavenumber grid.
	Frequencies() (magnon.Grid, error)
	// FrequencyScale returns fm in Hz.
	FrequencyScale() float64
}

// Build constructs a model by name. Known names are "harms-duine",
// "kalinikos-slavin" and "prabhakar-stancil".
func Build(name string, film magnon.Film, p Params) (Model, error) {
	switch name {
	case "harms-duine":
		return NewHarmsDuine(film, p)
	case "kalinikos-slavin":
		return NewKalinikosSlavin(film, p)
	case "prabhakar-stancil":
		return NewPrabhakarStancil(film, p)
	default:
		return nil, fmt.Errorf("unknown model: %s", name)
	}
}

// ModelNames lists the registered model names in build order.
func ModelNames() []string {
	return []string{"harms-duine", "kalinikos-slavin", "prabhakar-stancil"}
}
