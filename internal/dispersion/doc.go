// Package dispersion implements closed-form spin-wave dispersion models
// for ferromagnetic thin films.
//
// Three parallel models estimate the same physical quantity, the
// spin-wave frequency, under different theoretical approximations:
//
//   - [HarmsDuine]: dipole-exchange correction via the real root of a
//     depressed cubic (trigonometric solution)
//   - [KalinikosSlavin]: dipole-exchange form-factor model with pinned or
//     unpinned surface-spin boundary conditions
//   - [PrabhakarStancil]: geometry-specific propagating and resonance
//     frequency formulas
//
// Every model is an immutable value object: all derived quantities are
// computed at construction, and estimator methods are pure functions that
// evaluate elementwise over the in-plane wavenumber [magnon.Grid].
//
// # Example
//
//	film := magnon.Film{Ms: 1.4e5, Thickness: 2e-8, Aex: 3.5e-12}
//	m, err := dispersion.NewKalinikosSlavin(film, dispersion.Params{
//	    Ksw:    magnon.Grid{1e7},
//	    Heff:   8e4,
//	    Config: dispersion.MSSW,
//	})
//	freqs, _ := m.Frequencies()
package dispersion
