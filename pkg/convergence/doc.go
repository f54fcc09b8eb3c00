// Package convergence measures how fast the periodic finite-difference
// operators approach the exact derivatives of a smooth test field as the grid
// is refined.
//
// The test field is cos(2πx₂)·sin(2πx₁) on the unit periodic square. For every
// resolution N the field is sampled on an N×N grid with step 1/N, each
// operator is applied, and the relative L2 error
//
//	Σ (approx - exact)² / Σ exact²
//
// is recorded. Because the metric is a ratio of squared norms, a second-order
// scheme shows a slope of -4 on a log-log plot; Series.Order reports the order
// of accuracy itself.
package convergence
