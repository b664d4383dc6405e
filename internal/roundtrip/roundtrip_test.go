package roundtrip

import (
	"errors"
	"strings"
	"testing"
)

const rendered = `<pre><code class="language-hurl"><span class="entry"><span class="request">` +
	`<span class="method">GET</span> <span class="url">http://x?a=1&amp;b=2</span>` + "\n" +
	`</span></span></code></pre>`

func TestStrip(t *testing.T) {
	got, err := Strip(rendered)
	if err != nil {
		t.Fatalf("Strip returned error: %v", err)
	}
	if got != "GET http://x?a=1&b=2\n" {
		t.Fatalf("unexpected stripped text %q", got)
	}
}

func TestCheck(t *testing.T) {
	if err := Check("GET http://x?a=1&b=2\n", rendered); err != nil {
		t.Fatalf("expected round trip to hold, got %v", err)
	}

	err := Check("POST http://x?a=1&b=2\n", rendered)
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
	if !strings.Contains(mismatch.Diff, "-POST") || !strings.Contains(mismatch.Diff, "+GET") {
		t.Fatalf("expected diff to show both lines, got:\n%s", mismatch.Diff)
	}

	if err := Check("", "<pre><code><span>"); err == nil || errors.As(err, &mismatch) {
		t.Fatalf("expected markup error, got %v", err)
	}
}

func TestDoubleEscaped(t *testing.T) {
	cases := []struct {
		name     string
		rendered string
		source   string
		want     bool
	}{
		{name: "single", rendered: "a &amp; b", source: "a & b", want: false},
		{name: "literal entity", rendered: "&amp;lt;", source: "&lt;", want: false},
		{name: "doubled amp", rendered: "&amp;amp;", source: "&", want: true},
		{name: "doubled lt", rendered: "x &amp;lt;= 1", source: "x <= 1", want: true},
	}
	for _, tc := range cases {
		if got := DoubleEscaped(tc.rendered, tc.source); got != tc.want {
			t.Fatalf("%s: DoubleEscaped = %v, want %v", tc.name, got, tc.want)
		}
	}
}
