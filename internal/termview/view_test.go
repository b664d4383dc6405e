package termview

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/hurlhtml/internal/roundtrip"
	"github.com/unkn0wn-root/hurlhtml/internal/style"
)

const fragment = `<pre><code class="language-hurl"><span class="entry"><span class="request">` +
	`<span class="method">GET</span> <span class="url">http://x?a=1&amp;b=2</span>` + "\r\n" +
	`<span class="comment"># multi` + "\n" + `line</span>` + "\n" +
	`</span></span></code></pre>`

func TestRenderAsciiMatchesSource(t *testing.T) {
	got, err := Render(fragment, style.DefaultPalette(), termenv.Ascii)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want, err := roundtrip.Strip(fragment)
	if err != nil {
		t.Fatalf("Strip returned error: %v", err)
	}
	if got != want {
		t.Fatalf("expected plain text %q, got %q", want, got)
	}
}

func TestRenderTrueColor(t *testing.T) {
	got, err := Render(fragment, style.DefaultPalette(), termenv.TrueColor)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected escape sequences, got %q", got)
	}
	if strings.Count(got, "\n") != 3 || strings.Count(got, "\r") != 1 {
		t.Fatalf("expected line structure to be preserved, got %q", got)
	}
	plain := stripANSI(got)
	if plain != "GET http://x?a=1&b=2\r\n# multi\nline\n" {
		t.Fatalf("unexpected text after removing escapes: %q", plain)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.HasSuffix(line, " ") {
			t.Fatalf("expected no padding, got line %q", line)
		}
	}
}

func TestRenderUnstyledPalette(t *testing.T) {
	got, err := Render(fragment, style.Palette{}, termenv.TrueColor)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("expected no escapes with an empty palette, got %q", got)
	}
}

func TestRenderPropagatesMarkupErrors(t *testing.T) {
	if _, err := Render("<pre><code><span>", style.DefaultPalette(), termenv.ANSI); err == nil {
		t.Fatalf("expected error for unbalanced markup")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
