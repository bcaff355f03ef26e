// Package gauss computes the determinant of a square rational matrix by forward
// Gaussian elimination, recording every intermediate state.
//
// Overview:
//
//   - Eliminate sweeps columns k = 0..n−1. A zero pivot at (k,k) is replaced by
//     swapping in the first row below with a nonzero entry in column k; when no
//     such row exists the matrix is singular and the sweep stops at once with
//     determinant 0.
//   - Each row i > k with a nonzero entry in column k is reduced by
//     R_i ← R_i − (a_ik / a_kk)·R_k, touching columns k..n−1 only. Rows that are
//     already zero in column k are skipped silently.
//   - After the sweep the working copy is upper triangular and
//     det = (−1)^swaps · ∏ a_kk.
//
// Trace:
//
//	Every state transition appends one trace.Step carrying a snapshot of the
//	working matrix and its LaTeX rendering:
//
//	  Initial matrix
//	  Swap: R1 <-> R3 (nonzero pivot)
//	  Operation: R2 <- R2 - (1/2)·R1
//	  ...
//	  Upper triangular form (diagonal product = 6, 1 row swap(s), signed product = -6)
//	  Determinant = -6
//
//	A singular input ends instead with
//	  No nonzero pivot in column 2; determinant = 0
//
//	Row and column numbers in descriptions are 1-based.
//
// Pivot policy:
//
//	The pivot is the first nonzero entry scanning down the column. This keeps the
//	trace deterministic and matches hand computation. Largest-magnitude
//	(partial) pivoting only matters for floating point and is not offered.
//
// Errors:
//
//   - matrix.ErrNilMatrix: nil input.
//   - matrix.ErrNonSquare: the input is not n×n; no trace is produced.
//
//	A singular matrix is not an error: Result.Singular is set and the trace
//	explains why.
//
// Complexity:
//
//   - Time O(n³) rational operations, plus O(n²) per recorded snapshot.
//   - Space O(n²·steps) for the snapshots.
//
// The input matrix is never modified; the sweep runs on a private copy.
package gauss
