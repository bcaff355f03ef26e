// SPDX-License-Identifier: MIT

package gauss

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lintrace/matrix"
	"github.com/katalvlaran/lintrace/rational"
	"github.com/katalvlaran/lintrace/trace"
)

// Step descriptions. Indices are 1-based.
const (
	descInitial    = "Initial matrix"
	descSwap       = "Swap: R%d <-> R%d (nonzero pivot)"
	descNoPivot    = "No nonzero pivot in column %d; determinant = 0"
	descRowOp      = "Operation: R%d <- R%d - (%s)·R%d"
	descTriangular = "Upper triangular form (diagonal product = %s, %d row swap(s), signed product = %s)"
	descDet        = "Determinant = %s"
)

const opEliminate = "Eliminate"

const panicNilLogger = "gauss: WithLogger: logger must not be nil"

// Result is the outcome of Eliminate.
type Result struct {
	// Determinant is the exact determinant; zero when Singular.
	Determinant rational.Rational

	// Swaps counts the row exchanges performed.
	Swaps int

	// Singular is true when a column without a nonzero pivot stopped the sweep.
	Singular bool

	// Reduced is the working matrix at the end of the run: upper triangular on
	// success, partially reduced when Singular.
	Reduced *matrix.Dense

	// Trace holds the recorded steps in computation order.
	Trace *trace.Log
}

// Options configures Eliminate.
type Options struct {
	logger *zap.Logger // receives one Debug entry per step; zap.NewNop() by default
}

// Option is a functional option for Eliminate.
type Option func(*Options)

// WithLogger routes step-by-step diagnostics to logger.
// Panics if logger is nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := Options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
