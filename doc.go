// Package lintrace is a small library of exact-arithmetic linear-algebra
// procedures that record every step they take, so the computation can be
// typeset and read like a worked solution.
//
// What's inside:
//
//	rational/ — immutable exact fractions (lowest terms, positive denominator)
//	matrix/   — dense rational matrices: clone, minor, transpose, scale, product
//	trace/    — append-only step log with isolated matrix snapshots
//	latex/    — LaTeX fragments for rationals and matrices (bmatrix)
//	gauss/    — determinant by Gaussian elimination with row-swap pivoting
//	cofactor/ — determinant by cofactor expansion; inverse via the adjugate
//
// Quick example:
//
//	a, _ := matrix.FromInts([][]int64{{2, 1, 3}, {1, 0, 2}, {3, 4, 1}})
//	res, _ := gauss.Eliminate(a)
//	for _, st := range res.Trace.Steps() {
//	    fmt.Println(st.Description)
//	}
//
// No floating point is used anywhere: every comparison and zero test is exact.
// Turning a trace into a document is left to the caller; each trace.Step has a
// description (a section title) and a ready-to-embed LaTeX block.
//
//	go get github.com/katalvlaran/lintrace
package lintrace
