// Package analysis derives secondary quantities from computed dispersion
// curves.
package analysis

import (
	"fmt"
	"math"

	"github.com/magnon-tools/spinwave/internal/magnon"
)

// GroupVelocity returns v_g = d(omega)/dk in m/s for each point of a
// dispersion curve, with omega = 2*pi*f. Interior points use central
// differences; the endpoints fall back to one-sided differences. The two
// grids must have equal length of at least two points.
func GroupVelocity(ksw, freqs magnon.Grid) (magnon.Grid, error) {
	if len(ksw) != len(freqs) {
		return nil, fmt.Errorf("analysis: grid/frequency length mismatch: %d vs %d", len(ksw), len(freqs))
	}
	if len(ksw) < 2 {
		return nil, fmt.Errorf("analysis: need at least 2 points, got %d", len(ksw))
	}

	const twoPi = 2 * math.Pi

	n := len(ksw)
	vg := make(magnon.Grid, n)

	vg[0] = twoPi * (freqs[1] - freqs[0]) / (ksw[1] - ksw[0])
	vg[n-1] = twoPi * (freqs[n-1] - freqs[n-2]) / (ksw[n-1] - ksw[n-2])
	for i := 1; i < n-1; i++ {
		vg[i] = twoPi * (freqs[i+1] - freqs[i-1]) / (ksw[i+1] - ksw[i-1])
	}

	return vg, nil
}
