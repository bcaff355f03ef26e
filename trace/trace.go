// SPDX-License-Identifier: MIT

// Package trace records the ordered steps of a traced procedure.
//
// A Log is append-only: steps are added in the order they are computed and
// are never modified afterwards. Every matrix handed to Append is cloned on
// entry, and every accessor hands out fresh clones, so neither the algorithm's
// working copy nor a consumer holding a returned Step can alter what was
// recorded.
//
// The renderer contract is deliberately small: steps come out in computation
// order, the first step renders the input matrix and the last step(s) state
// the final result. Nothing else about step count or ordering is promised.
package trace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lintrace/matrix"
)

// ErrOutOfRange is returned by At for an index outside [0, Len()).
var ErrOutOfRange = errors.New("trace: step index out of range")

// Step is one recorded state transition.
type Step struct {
	// Description names the operation in human-readable form, e.g.
	// "Operation: R2 <- R2 - (1/2)·R1". Indices in descriptions are 1-based.
	Description string

	// Matrix is an independent snapshot of the relevant matrix, or nil for
	// steps that carry no matrix (a scalar result, a formula).
	Matrix *matrix.Dense

	// Content is a pre-rendered LaTeX block for the step body.
	Content string
}

// clone returns a Step whose Matrix shares nothing with s.
func (s Step) clone() Step {
	if s.Matrix != nil {
		s.Matrix = s.Matrix.Clone()
	}

	return s
}

// Log is an append-only sequence of Steps. The zero value is an empty log
// ready to use. A Log is not safe for concurrent mutation; each traced call
// owns its own Log.
type Log struct {
	steps []Step
}

// New returns an empty Log.
func New() *Log {
	return &Log{}
}

// Append records a step. m may be nil; otherwise it is cloned so later
// mutation of m does not reach the log. Append returns the 0-based index of
// the new step.
func (l *Log) Append(description string, m *matrix.Dense, content string) int {
	st := Step{Description: description, Matrix: m, Content: content}
	l.steps = append(l.steps, st.clone())

	return len(l.steps) - 1
}

// Len returns the number of recorded steps.
func (l *Log) Len() int {
	return len(l.steps)
}

// At returns a copy of step i.
func (l *Log) At(i int) (Step, error) {
	if i < 0 || i >= len(l.steps) {
		return Step{}, fmt.Errorf("At(%d): %w", i, ErrOutOfRange)
	}

	return l.steps[i].clone(), nil
}

// Last returns a copy of the most recent step, or false if the log is empty.
func (l *Log) Last() (Step, bool) {
	if len(l.steps) == 0 {
		return Step{}, false
	}

	return l.steps[len(l.steps)-1].clone(), true
}

// Steps returns a deep copy of all steps in order.
func (l *Log) Steps() []Step {
	out := make([]Step, len(l.steps))
	for i, st := range l.steps {
		out[i] = st.clone()
	}

	return out
}

// Descriptions returns the step descriptions in order.
func (l *Log) Descriptions() []string {
	out := make([]string, len(l.steps))
	for i, st := range l.steps {
		out[i] = st.Description
	}

	return out
}
