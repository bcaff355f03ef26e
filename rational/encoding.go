// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the canonical String form.
func (a Rational) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (a *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// UnmarshalYAML accepts a scalar node holding an integer (7), a decimal (0.5)
// or a quoted fraction ("3/4").
func (a *Rational) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("rational: line %d: expected scalar, got kind %d: %w", node.Line, node.Kind, ErrSyntax)
	}

	v, err := Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = v

	return nil
}

// MarshalYAML renders integers as YAML ints and fractions as strings.
func (a Rational) MarshalYAML() (interface{}, error) {
	if num := a.rat().Num(); a.IsInt() && num.IsInt64() {
		return num.Int64(), nil
	}

	return a.String(), nil
}
