package dispersion

import (
	"fmt"
	"math"

	"github.com/magnon-tools/spinwave/internal/magnon"
)

// Mode names a propagation or resonance geometry.
type Mode int

const (
	ModeUnknown Mode = iota
	// MSSW is the magnetostatic surface wave geometry.
	MSSW
	// BVSW is the backward-volume wave geometry.
	BVSW
	// FVSW is the forward-volume wave geometry.
	FVSW
	// Normal is the out-of-plane resonance geometry.
	Normal
	// Tangential is the in-plane resonance geometry.
	Tangential
)

var modeNames = map[Mode]string{
	MSSW:       "MSSW",
	BVSW:       "BVSW",
	FVSW:       "FVSW",
	Normal:     "Normal",
	Tangential: "Tangential",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a configuration name to a Mode. Matching is exact.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return ModeUnknown, fmt.Errorf("%w: %q", magnon.ErrInvalidConfig, name)
}

// Orientation is an explicit propagation direction: polar angle Theta
// between magnetization and film normal, azimuthal angle Phi between
// wavevector and in-plane magnetization, both in radians.
type Orientation struct {
	Theta float64
	Phi   float64
}

// Orientation maps a named propagation geometry to its angle pair:
// MSSW -> (pi/2, pi/2), BVSW -> (pi/2, 0), FVSW -> (0, 0). Resonance
// modes have no associated direction and yield ErrInvalidConfig.
func (m Mode) Orientation() (Orientation, error) {
	switch m {
	case MSSW:
		return Orientation{Theta: math.Pi / 2, Phi: math.Pi / 2}, nil
	case BVSW:
		return Orientation{Theta: math.Pi / 2, Phi: 0}, nil
	case FVSW:
		return Orientation{Theta: 0, Phi: 0}, nil
	default:
		return Orientation{}, fmt.Errorf("%w: %s has no propagation angles", magnon.ErrInvalidConfig, m)
	}
}
