package filter

import (
	"errors"
	"strconv"
	"strings"

	"github.com/unkn0wn-root/hurlhtml/internal/ast"
	"github.com/unkn0wn-root/hurlhtml/internal/errdef"
)

// InvalidInputError reports a value a filter cannot accept. Value is the
// display form of the rejected input.
type InvalidInputError struct {
	SourceInfo ast.SourceInfo
	Value      string
	Assert     bool
}

func (e *InvalidInputError) Error() string {
	return "invalid filter input: " + e.Value
}

func invalidInput(name string, v Value, sourceInfo ast.SourceInfo, assert bool) error {
	return errdef.Wrap(
		errdef.CodeFilter,
		&InvalidInputError{SourceInfo: sourceInfo, Value: v.Display(), Assert: assert},
		"%s (line %d, column %d)", name, sourceInfo.Start.Line, sourceInfo.Start.Column,
	)
}

// ToFloat converts v to a float. Floats pass through, integers widen and
// strings are parsed; anything else is invalid input.
func ToFloat(v Value, sourceInfo ast.SourceInfo, assert bool) (Value, error) {
	name := ast.FilterToFloat.String()
	switch v.Kind {
	case ValueFloat:
		return Float(v.Float), nil
	case ValueInteger:
		return Float(float64(v.Integer)), nil
	case ValueString:
		f, ok := parseFloat(v.Text)
		if !ok {
			return Value{}, invalidInput(name, v, sourceInfo, assert)
		}
		return Float(f), nil
	default:
		return Value{}, invalidInput(name, v, sourceInfo, assert)
	}
}

// parseFloat accepts decimal notation only. Out of range literals saturate
// to an infinity rather than failing.
func parseFloat(s string) (float64, bool) {
	if s == "" || strings.ContainsAny(s, "_xXpP") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}
