package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Number is a numeric field that remembers the literal text it was decoded
// from. The zero value reports IsSet() == false.
type Number struct {
	raw   string
	value float64
	set   bool
}

// NewNumber builds a Number from a float, formatting it the shortest way.
func NewNumber(v float64) Number {
	return Number{raw: strconv.FormatFloat(v, 'f', -1, 64), value: v, set: true}
}

// ParseNumber builds a Number from its literal text. NaN and infinities are
// rejected. Literals outside the JSON number grammar (".5", "+5", hex floats)
// are kept by value and re-formatted, so the literal always marshals as valid
// JSON.
func ParseNumber(literal string) (Number, error) {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return Number{}, fmt.Errorf("empty number")
	}
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Number{}, fmt.Errorf("parse number %q: %w", literal, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}, fmt.Errorf("parse number %q: not a finite number", literal)
	}
	if !isJSONNumber(literal) {
		return NewNumber(v), nil
	}
	return Number{raw: literal, value: v, set: true}, nil
}

func isJSONNumber(literal string) bool {
	c := literal[0]
	if c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid([]byte(literal))
}

// Float64 returns the parsed value.
func (n Number) Float64() float64 { return n.value }

// IsSet reports whether the number was present in the input.
func (n Number) IsSet() bool { return n.set }

// String returns the literal text, or "0" for an unset number.
func (n Number) String() string {
	if !n.set {
		return "0"
	}
	return n.raw
}

// UnmarshalJSON accepts a JSON number or a quoted numeric string. null leaves
// the number unset.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	literal := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		literal = s
	}
	parsed, err := ParseNumber(literal)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalJSON writes the literal text back as a JSON number.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return []byte(n.raw), nil
}

// UnmarshalYAML accepts a scalar node. A null node leaves the number unset.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	if node.Tag == "!!null" {
		return nil
	}
	parsed, err := ParseNumber(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*n = parsed
	return nil
}
