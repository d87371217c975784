package magnon

import "math"

// Universal constants used by every dispersion model.
const (
	// GammaLL is the gyromagnetic ratio in rad/(T*s).
	GammaLL = 1.76e11

	// Mu0 is the permeability of free space in H/m.
	Mu0 = 4e-7 * math.Pi
)

// FrequencyScale returns fm = gamma*mu0*Ms/(2*pi) in Hz, the common
// scale factor multiplying every dimensionless frequency estimate.
func FrequencyScale(ms float64) float64 {
	return GammaLL * Mu0 * ms / (2 * math.Pi)
}

// Delta is the Kronecker delta: 1 when a == b, 0 otherwise.
func Delta(a, b int) float64 {
	if a == b {
		return 1
	}
	return 0
}
