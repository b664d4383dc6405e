package filter

import (
	"github.com/unkn0wn-root/hurlhtml/internal/ast"
	"github.com/unkn0wn-root/hurlhtml/internal/errdef"
)

// Eval applies f to v. Only toFloat is evaluated here; the other filters
// exist in the tree for display and report CodeFilter.
func Eval(f ast.Filter, v Value, assert bool) (Value, error) {
	switch f.Value.Kind {
	case ast.FilterToFloat:
		return ToFloat(v, f.SourceInfo, assert)
	default:
		return Value{}, errdef.New(errdef.CodeFilter, "unsupported filter %q", f.Value.Kind)
	}
}
