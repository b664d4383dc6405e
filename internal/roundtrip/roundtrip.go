// Package roundtrip verifies that highlighted markup still carries its
// source text byte for byte.
package roundtrip

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/unkn0wn-root/hurlhtml/internal/markup"
)

// Strip removes the markup from rendered and reverses its escaping.
func Strip(rendered string) (string, error) {
	return markup.Text(rendered)
}

// MismatchError carries a unified diff between the source and the text
// recovered from the rendered markup.
type MismatchError struct {
	Diff string
}

func (e *MismatchError) Error() string {
	return "roundtrip: rendered text differs from source\n" + e.Diff
}

// Check reports whether rendered reproduces source exactly.
func Check(source, rendered string) error {
	got, err := Strip(rendered)
	if err != nil {
		return fmt.Errorf("roundtrip: %w", err)
	}
	if got == source {
		return nil
	}
	return &MismatchError{Diff: udiff.Unified("source", "rendered", source, got)}
}

var entities = []string{"&amp;", "&lt;", "&gt;"}

// DoubleEscaped reports whether rendered contains an escaped entity such as
// "&amp;amp;" that source does not account for.
func DoubleEscaped(rendered, source string) bool {
	for _, e := range entities {
		doubled := "&amp;" + e[1:]
		if strings.Count(rendered, doubled) > strings.Count(source, e) {
			return true
		}
	}
	return false
}
