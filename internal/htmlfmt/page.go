package htmlfmt

import (
	"strings"

	"github.com/unkn0wn-root/hurlhtml/internal/ast"
	"github.com/unkn0wn-root/hurlhtml/internal/style"
)

const (
	DefaultLanguage = "hurl"
	DefaultTitle    = "Hurl File"
)

type Options struct {
	// Standalone wraps the fragment in a complete HTML page with an inline
	// stylesheet.
	Standalone bool
	// Language is the suffix of the language-* class on the code element.
	Language string
	Title    string
	// Stylesheet replaces the bundled stylesheet in standalone pages. The
	// bundled one is scoped to the page's language class.
	Stylesheet string
}

// Format renders doc as HTML. Stripping the markup and reversing the entity
// escaping of the code body yields the source text of doc.
func Format(doc ast.Document, opts Options) string {
	lang := LanguageClass(opts.Language)

	var body strings.Builder
	writeDocument(&body, doc, lang)
	if !opts.Standalone {
		return body.String()
	}

	title := opts.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	css := opts.Stylesheet
	if css == "" {
		css = style.ScopedCSS(".language-" + lang)
	}

	var b strings.Builder
	b.Grow(body.Len() + len(css) + 256)
	b.WriteString("<!DOCTYPE html>\n<html>\n    <head>\n")
	b.WriteString("        <meta charset=\"utf-8\">\n")
	b.WriteString("        <title>")
	b.WriteString(EscapeXML(title))
	b.WriteString("</title>\n        <style>\n")
	b.WriteString(css)
	b.WriteString("\n        </style>\n    </head>\n    <body>\n")
	b.WriteString(body.String())
	b.WriteString("\n    </body>\n</html>\n")
	return b.String()
}

// LanguageClass reduces lang to the characters allowed in the code
// element's language-* class, falling back to DefaultLanguage.
func LanguageClass(lang string) string {
	lang = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return -1
	}, lang)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// Fragment renders doc as a bare <pre><code> block.
func Fragment(doc ast.Document) string {
	return Format(doc, Options{})
}

// Standalone renders doc as a complete HTML page using the bundled stylesheet.
func Standalone(doc ast.Document) string {
	return Format(doc, Options{Standalone: true})
}
