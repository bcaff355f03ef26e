// SPDX-License-Identifier: MIT

package cofactor

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lintrace/matrix"
	"github.com/katalvlaran/lintrace/rational"
	"github.com/katalvlaran/lintrace/trace"
)

// Step descriptions. Cell indices are 1-based.
const (
	descOriginal  = "Original matrix"
	descDet       = "Determinant"
	descSingular  = "Singular matrix"
	descMinor     = "Minor M_{%d,%d} and cofactor C_{%d,%d}"
	descCofactors = "Cofactor matrix C"
	descAdjugate  = "Adjugate adj(%s) = C^T"
	descFormula   = "Inverse formula"
	descInverse   = "Inverse matrix"
)

// Operation tags for wrapped errors.
const (
	opDeterminant    = "Determinant"
	opCofactor       = "Cofactor"
	opCofactorMatrix = "CofactorMatrix"
	opAdjugate       = "Adjugate"
	opInvert         = "Invert"
)

// DefaultMatrixName is the symbol used for the input matrix in content blocks.
const DefaultMatrixName = "A"

const (
	panicNilLogger = "cofactor: WithLogger: logger must not be nil"
	panicEmptyName = "cofactor: WithMatrixName: name must not be empty"
)

// Result is the outcome of Invert.
type Result struct {
	// Determinant of the input, by cofactor expansion.
	Determinant rational.Rational

	// Singular is true when Determinant is zero. Cofactors, Adjugate and
	// Inverse are nil in that case.
	Singular bool

	// Cofactors is the matrix of signed cofactors C_ij.
	Cofactors *matrix.Dense

	// Adjugate is Cofactorsᵀ.
	Adjugate *matrix.Dense

	// Inverse is Adjugate scaled by 1/Determinant, entries in lowest terms.
	Inverse *matrix.Dense

	// Trace holds the recorded steps in computation order.
	Trace *trace.Log
}

// Options configures Invert.
type Options struct {
	logger *zap.Logger // zap.NewNop() by default
	name   string      // DefaultMatrixName by default
}

// Option is a functional option for Invert.
type Option func(*Options)

// WithLogger routes step-by-step diagnostics to logger.
// Panics if logger is nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// WithMatrixName sets the symbol used for the input in content blocks and the
// adjugate description, e.g. "B" renders \det(B) and B^{-1}.
// Panics if name is empty.
func WithMatrixName(name string) Option {
	if name == "" {
		panic(panicEmptyName)
	}

	return func(o *Options) { o.name = name }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := Options{logger: zap.NewNop(), name: DefaultMatrixName}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
