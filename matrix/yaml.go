// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lintrace/rational"
)

const opDecodeYAML = "DecodeYAML"

// UnmarshalYAML decodes a sequence of sequences of rational scalars, e.g.
//
//	- [2, 1, 3]
//	- ["1/2", 0, 2]
//
// The usual shape rules apply (ErrBadShape, ErrRagged).
func (m *Dense) UnmarshalYAML(node *yaml.Node) error {
	var rows [][]rational.Rational
	if err := node.Decode(&rows); err != nil {
		return err
	}
	d, err := FromRows(rows)
	if err != nil {
		return err
	}
	*m = *d

	return nil
}

// MarshalYAML encodes m as a sequence of rows.
func (m *Dense) MarshalYAML() (interface{}, error) {
	return m.ToRows(), nil
}

// DecodeYAML reads a single matrix document from r.
func DecodeYAML(r io.Reader) (*Dense, error) {
	var m Dense
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, matrixErrorf(opDecodeYAML, err)
	}
	if m.data == nil {
		return nil, matrixErrorf(opDecodeYAML, fmt.Errorf("empty document: %w", ErrBadShape))
	}

	return &m, nil
}
