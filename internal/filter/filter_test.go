package filter

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/unkn0wn-root/hurlhtml/internal/ast"
	"github.com/unkn0wn-root/hurlhtml/internal/errdef"
)

func toFloatFilter() ast.Filter {
	return ast.Filter{
		Value:      ast.FilterValue{Kind: ast.FilterToFloat},
		SourceInfo: ast.NewSourceInfo(ast.Pos{Line: 1, Column: 1}, ast.Pos{Line: 1, Column: 1}),
	}
}

func TestToFloatAccepts(t *testing.T) {
	cases := []struct {
		name string
		in   Value
		want float64
	}{
		{name: "string", in: String("3.1415"), want: 3.1415},
		{name: "float", in: Float(3.1415), want: 3.1415},
		{name: "integer", in: Integer(3), want: 3.0},
		{name: "float whole", in: Float(3.0), want: 3.0},
		{name: "exponent", in: String("-1.5e2"), want: -150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Eval(toFloatFilter(), tc.in, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind != ValueFloat || got.Float != tc.want {
				t.Fatalf("expected float %v, got %+v", tc.want, got)
			}
		})
	}
}

func TestToFloatRejects(t *testing.T) {
	cases := []struct {
		in   Value
		want string
	}{
		{in: String("3x.1415"), want: "string <3x.1415>"},
		{in: Bool(true), want: "bool <true>"},
		{in: String("0x1p-2"), want: "string <0x1p-2>"},
		{in: String(""), want: "string <>"},
		{in: Null(), want: "null"},
		{in: List(Integer(1), String("a")), want: `list <[1,"a"]>`},
	}
	for _, tc := range cases {
		_, err := Eval(toFloatFilter(), tc.in, true)
		if err == nil {
			t.Fatalf("expected error for %s", tc.want)
		}
		var invalid *InvalidInputError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidInputError, got %T: %v", err, err)
		}
		if invalid.Value != tc.want {
			t.Fatalf("expected display %q, got %q", tc.want, invalid.Value)
		}
		if !invalid.Assert {
			t.Fatalf("expected assert flag to be carried")
		}
		if invalid.SourceInfo.Start.Line != 1 {
			t.Fatalf("expected source info to be carried, got %+v", invalid.SourceInfo)
		}
		if errdef.CodeOf(err) != errdef.CodeFilter {
			t.Fatalf("expected filter code, got %q", errdef.CodeOf(err))
		}
	}
}

func TestToFloatOverflowSaturates(t *testing.T) {
	got, err := ToFloat(String("1e400"), ast.SourceInfo{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(got.Float, 1) {
		t.Fatalf("expected +Inf, got %v", got.Float)
	}
}

func TestEvalUnsupported(t *testing.T) {
	f := ast.Filter{Value: ast.FilterValue{Kind: ast.FilterCount}}
	_, err := Eval(f, List(), false)
	if err == nil {
		t.Fatalf("expected unsupported filter error")
	}
	if errdef.CodeOf(err) != errdef.CodeFilter {
		t.Fatalf("expected filter code, got %q", errdef.CodeOf(err))
	}
	if got := err.Error(); got != `unsupported filter "count"` {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestDisplay(t *testing.T) {
	date := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	cases := []struct {
		in   Value
		want string
	}{
		{in: Null(), want: "null"},
		{in: Unit(), want: "unit"},
		{in: Integer(-7), want: "integer <-7>"},
		{in: Float(3), want: "float <3.0>"},
		{in: Float(0.1), want: "float <0.1>"},
		{in: BigInteger("123456789012345678901234567890"), want: "number <123456789012345678901234567890>"},
		{in: Bytes([]byte{0xca, 0xfe}), want: "bytes <cafe>"},
		{in: Nodeset(3), want: "nodeset of size <3>"},
		{in: Date(date), want: "date <2024-01-02T03:04:05Z>"},
		{in: Regex(`\d+`), want: `regex <\d+>`},
		{in: Object(ObjectEntry{Key: "a", Value: Integer(1)}), want: "object"},
		{in: List(), want: "list <[]>"},
	}
	for _, tc := range cases {
		if got := tc.in.Display(); got != tc.want {
			t.Fatalf("Display(%v) = %q, want %q", tc.in.Kind, got, tc.want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		3:            "3.0",
		-2:           "-2.0",
		3.1415:       "3.1415",
		math.Inf(1):  "+Inf",
		math.Inf(-1): "-Inf",
	}
	for in, want := range cases {
		if got := FormatFloat(in); got != want {
			t.Fatalf("FormatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}
