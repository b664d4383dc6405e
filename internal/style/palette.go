package style

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

//go:embed hurl.css
var bundledCSS string

// DefaultSelector scopes generated rules to rendered code blocks.
const DefaultSelector = ".language-hurl"

// CSS returns the bundled stylesheet.
func CSS() string {
	return bundledCSS
}

// ScopedCSS returns the bundled stylesheet with its rules scoped under
// selector instead of DefaultSelector.
func ScopedCSS(selector string) string {
	if strings.TrimSpace(selector) == "" || selector == DefaultSelector {
		return bundledCSS
	}
	return strings.ReplaceAll(bundledCSS, DefaultSelector, selector)
}

type ClassStyle struct {
	Foreground string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
}

func (s ClassStyle) IsZero() bool {
	return s == ClassStyle{}
}

// Palette maps token classes to their presentation. Base applies to the
// whole code block.
type Palette struct {
	Base    ClassStyle
	Classes map[string]ClassStyle
}

func (p Palette) Get(class string) (ClassStyle, bool) {
	s, ok := p.Classes[class]
	return s, ok
}

func (p Palette) clone() Palette {
	out := Palette{Base: p.Base, Classes: make(map[string]ClassStyle, len(p.Classes))}
	for k, v := range p.Classes {
		out.Classes[k] = v
	}
	return out
}

// DefaultPalette matches the bundled stylesheet. Container classes have no
// styling but are listed so themes may target them.
func DefaultPalette() Palette {
	return Palette{
		Base: ClassStyle{Foreground: "#24292e", Background: "#f6f8fa"},
		Classes: map[string]ClassStyle{
			"entry":          {},
			"request":        {},
			"response":       {},
			"method":         {Foreground: "#005cc5", Bold: true},
			"url":            {Foreground: "#22863a"},
			"version":        {Foreground: "#005cc5"},
			"number":         {Foreground: "#e36209"},
			"boolean":        {Foreground: "#d73a49"},
			"null":           {Foreground: "#d73a49"},
			"string":         {Foreground: "#032f62"},
			"regex":          {Foreground: "#6f42c1"},
			"filename":       {Foreground: "#032f62", Underline: true},
			"expr":           {Foreground: "#b31d28"},
			"json":           {Foreground: "#24292e"},
			"xml":            {Foreground: "#24292e"},
			"multiline":      {Foreground: "#24292e"},
			"base64":         {Foreground: "#6a737d"},
			"hex":            {Foreground: "#6a737d"},
			"unit":           {Foreground: "#e36209"},
			"comment":        {Foreground: "#6a737d", Italic: true},
			"section-header": {Foreground: "#6f42c1", Bold: true},
			"query-type":     {Foreground: "#005cc5"},
			"filter-type":    {Foreground: "#005cc5", Italic: true},
			"predicate-type": {Foreground: "#d73a49"},
			"not":            {Foreground: "#d73a49", Bold: true},
		},
	}
}

// KnownClass reports whether class is one the renderer emits.
func KnownClass(class string) bool {
	_, ok := DefaultPalette().Classes[class]
	return ok
}

// CSS generates a stylesheet for the palette. Rules are scoped under
// selector and emitted in class name order.
func (p Palette) CSS(selector string) string {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultSelector
	}
	var b strings.Builder
	if decl := declarations(p.Base); decl != "" {
		fmt.Fprintf(&b, "pre code%s { display: block; %s }\n", selector, decl)
	}
	classes := make([]string, 0, len(p.Classes))
	for class := range p.Classes {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	for _, class := range classes {
		decl := declarations(p.Classes[class])
		if decl == "" {
			continue
		}
		fmt.Fprintf(&b, "%s .%s { %s }\n", selector, class, decl)
	}
	return b.String()
}

func declarations(s ClassStyle) string {
	var parts []string
	if s.Foreground != "" {
		parts = append(parts, "color: "+s.Foreground+";")
	}
	if s.Background != "" {
		parts = append(parts, "background-color: "+s.Background+";")
	}
	if s.Bold {
		parts = append(parts, "font-weight: bold;")
	}
	if s.Italic {
		parts = append(parts, "font-style: italic;")
	}
	if s.Underline {
		parts = append(parts, "text-decoration: underline;")
	}
	return strings.Join(parts, " ")
}

var hexColour = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func validColour(c string) bool {
	return c == "" || hexColour.MatchString(c)
}
