// Package termview replays highlighted markup as ANSI-styled terminal text.
package termview

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/hurlhtml/internal/markup"
	"github.com/unkn0wn-root/hurlhtml/internal/style"
)

// Render converts rendered markup into terminal text coloured with pal.
// Every text run takes the style of its innermost span that has a non-empty
// palette entry. With termenv.Ascii the result is the plain source text.
func Render(fragment string, pal style.Palette, profile termenv.Profile) (string, error) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	styles := make(map[string]lipgloss.Style)

	var b strings.Builder
	err := markup.Scan(fragment, func(classes []string, text string) {
		if profile == termenv.Ascii {
			b.WriteString(text)
			return
		}
		st, ok := pick(r, pal, classes, styles)
		if !ok {
			b.WriteString(text)
			return
		}
		writeStyled(&b, st, text)
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func pick(
	r *lipgloss.Renderer,
	pal style.Palette,
	classes []string,
	cache map[string]lipgloss.Style,
) (lipgloss.Style, bool) {
	for i := len(classes) - 1; i >= 0; i-- {
		class := classes[i]
		if st, ok := cache[class]; ok {
			return st, true
		}
		cs, ok := pal.Get(class)
		if !ok || cs.IsZero() {
			continue
		}
		st := toLipgloss(r, cs)
		cache[class] = st
		return st, true
	}
	return lipgloss.Style{}, false
}

func toLipgloss(r *lipgloss.Renderer, cs style.ClassStyle) lipgloss.Style {
	st := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if cs.Foreground != "" {
		st = st.Foreground(lipgloss.Color(cs.Foreground))
	}
	if cs.Background != "" {
		st = st.Background(lipgloss.Color(cs.Background))
	}
	return st.Bold(cs.Bold).Italic(cs.Italic).Underline(cs.Underline)
}

// writeStyled styles text one line at a time. Line breaks are written
// outside the escape sequences since lipgloss would pad or fold them.
func writeStyled(b *strings.Builder, st lipgloss.Style, text string) {
	for text != "" {
		i := strings.IndexAny(text, "\r\n")
		if i < 0 {
			b.WriteString(st.Render(text))
			return
		}
		if i > 0 {
			b.WriteString(st.Render(text[:i]))
		}
		b.WriteByte(text[i])
		text = text[i+1:]
	}
}
