package magnon

import "errors"

// Domain errors for model construction and evaluation.
var (
	// ErrMissingField indicates a required film property is absent.
	ErrMissingField = errors.New("magnon: required film property missing")

	// ErrInvalidParameter indicates a wave or field parameter outside the
	// formulas' domain (zero in-plane wavenumber, zero field ratio).
	ErrInvalidParameter = errors.New("magnon: invalid model parameter")

	// ErrInvalidConfig indicates an unrecognized propagation configuration.
	ErrInvalidConfig = errors.New("magnon: invalid geometry configuration")

	// ErrSingularGamma indicates the field/wavenumber combination gamma_nk
	// vanished, making the cubic coefficients undefined.
	ErrSingularGamma = errors.New("magnon: singular field/wavenumber combination (gamma_nk = 0)")
)
