// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major matrix of exact rational entries
// and the small set of derived operations the tracing algorithms share.
//
// What & Why:
//
//	Dense stores rows×cols rational.Rational values in a flat slice. Because
//	rational.Rational is an immutable value, Clone is a true deep copy: a clone
//	never shares state with its source. Tracers rely on this to take snapshots
//	of a working copy that later mutation cannot disturb.
//
// Operations:
//
//   - Construction: New, FromRows, FromInts, FromStrings, Identity, DecodeYAML.
//   - Access: Rows, Cols, At, Set, Row, ToRows, SwapRows, Clone, Equal, String.
//   - Derived (pure, fresh allocation): Minor, Transpose, Scale, Mul,
//     DiagonalProduct.
//   - Validation: ValidateNotNil, ValidateSquare, ValidateSameShape,
//     ValidateMulCompatible.
//
// Errors:
//
//	All failures are package sentinels (ErrBadShape, ErrRagged, ErrOutOfRange,
//	ErrNonSquare, ErrDimensionMismatch, ErrNilMatrix) wrapped once with the
//	operation name, so errors.Is always works.
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1). Clone, Minor, Transpose and Scale are O(r*c).
//	Mul is O(n³).
package matrix
