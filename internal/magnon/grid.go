package magnon

import "math"

// Grid is an array of in-plane wavenumbers (rad/m). Model estimators
// evaluate elementwise over a grid and return a result of the same length.
type Grid []float64

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	copy(c, g)
	return c
}

// Min returns the smallest element, or 0 for an empty grid.
func (g Grid) Min() float64 {
	if len(g) == 0 {
		return 0
	}
	min := g[0]
	for _, v := range g[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Scale returns a new grid with every element multiplied by factor.
func (g Grid) Scale(factor float64) Grid {
	result := make(Grid, len(g))
	for i, v := range g {
		result[i] = v * factor
	}
	return result
}

// IsValid reports whether the grid is free of NaN and Inf values.
func (g Grid) IsValid() bool {
	for _, v := range g {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Span returns n points evenly spaced from start to stop inclusive.
// n must be at least 2.
func Span(start, stop float64, n int) Grid {
	if n < 2 {
		return Grid{start}
	}
	g := make(Grid, n)
	step := (stop - start) / float64(n-1)
	for i := range g {
		g[i] = start + float64(i)*step
	}
	return g
}
