package magnon

import (
	"fmt"
	"math"
	"strings"
)

// Film describes the ferromagnetic thin film under study.
type Film struct {
	// Ms is the saturation magnetization in A/m.
	Ms float64
	// Thickness is the film thickness in m.
	Thickness float64
	// Aex is the exchange stiffness constant in J/m.
	Aex float64
}

// Validate reports every absent (non-positive) film property in a single
// error wrapping ErrMissingField.
func (f Film) Validate() error {
	var missing []string
	if f.Ms <= 0 {
		missing = append(missing, "Ms")
	}
	if f.Thickness <= 0 {
		missing = append(missing, "Thickness")
	}
	if f.Aex <= 0 {
		missing = append(missing, "Aex")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// Lambda returns the exchange length squared, 2*Aex/(mu0*Ms^2), in m^2.
func (f Film) Lambda() float64 {
	return 2 * f.Aex / (Mu0 * f.Ms * f.Ms)
}

// ExchangeLength returns the exchange length sqrt(2*Aex/(mu0*Ms^2)) in m.
func (f Film) ExchangeLength() float64 {
	return math.Sqrt(f.Lambda())
}
