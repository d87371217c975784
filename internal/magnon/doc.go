// Package magnon provides the core types shared by the spin-wave
// dispersion models.
//
// The package defines the physical constants, the film description, and
// the wavenumber grid type the models evaluate over:
//
//   - [Film]: saturation magnetization, thickness, exchange stiffness
//   - [Grid]: in-plane wavenumber array with elementwise helpers
//   - [FrequencyScale]: the common scale fm = gamma*mu0*Ms/(2*pi)
//
// # Error Taxonomy
//
// All model construction failures wrap one of the sentinel errors defined
// here, so callers can branch with errors.Is:
//
//	if errors.Is(err, magnon.ErrInvalidParameter) { ... }
//
// Out-of-domain physical inputs are deliberately NOT validated: the
// analytical formulas return NaN or Inf outside their validity range and
// those values propagate to the caller untouched.
package magnon
