// Package cofactor computes determinants by cofactor (Laplace) expansion and
// inverts square rational matrices through the adjugate, tracing each step.
//
// What & Why:
//
//	This is the textbook route to A⁻¹: expand det(A) along the first row, build
//	every minor M_ij and cofactor C_ij = (−1)^(i+j)·det(M_ij), transpose the
//	cofactor matrix into adj(A), and scale by 1/det(A). It is exponential in n
//	and meant to be read, not to be fast: keep inputs classroom sized.
//
// API:
//
//   - Determinant(m)        det by recursion: 1×1 entry, 2×2 ad−bc, n≥3 row-0 expansion.
//   - Cofactor(m, i, j)     signed minor determinant (0-based i, j).
//   - CofactorMatrix(m)     all cofactors, row-major.
//   - Adjugate(m)           transpose of the cofactor matrix.
//   - Invert(m, opts...)    the full traced procedure.
//
// Trace produced by Invert, in order:
//
//  1. Original matrix
//  2. Determinant
//  3. Singular matrix (only when det = 0; the trace ends here)
//  4. Minor M_{i,j} and cofactor C_{i,j}, one step per cell in row-major order
//  5. Cofactor matrix C
//  6. Adjugate adj(A) = C^T
//  7. Inverse formula
//  8. Inverse matrix
//
// Indices are 0-based in the API and 1-based in step descriptions and content,
// matching conventional notation. Each step carries a LaTeX content block and,
// where a matrix is shown, an independent snapshot of it.
//
// The minor of a 1×1 matrix is the empty matrix, whose determinant is 1, so
// [[a]]⁻¹ = [[1/a]].
//
// Errors:
//
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare: rejected before any step is recorded.
//   - matrix.ErrOutOfRange: Cofactor with an index outside the matrix.
//
//	A singular matrix is a normal outcome: Result.Singular is true and
//	Adjugate/Inverse are nil.
//
// Complexity:
//
//	Determinant is O(n!) time. Invert computes n² minor determinants, so
//	O(n²·(n−1)!) overall.
package cofactor
