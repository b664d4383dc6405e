package style

import (
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/styles"

	"github.com/unkn0wn-root/hurlhtml/internal/errdef"
)

// token type each class borrows its colours from
var chromaTokens = map[string]chroma.TokenType{
	"method":         chroma.Keyword,
	"url":            chroma.LiteralStringOther,
	"version":        chroma.KeywordType,
	"number":         chroma.LiteralNumber,
	"boolean":        chroma.KeywordConstant,
	"null":           chroma.KeywordConstant,
	"string":         chroma.LiteralString,
	"regex":          chroma.LiteralStringRegex,
	"filename":       chroma.LiteralStringSymbol,
	"expr":           chroma.NameVariable,
	"json":           chroma.LiteralStringHeredoc,
	"xml":            chroma.LiteralStringHeredoc,
	"multiline":      chroma.LiteralStringHeredoc,
	"base64":         chroma.LiteralNumberHex,
	"hex":            chroma.LiteralNumberHex,
	"unit":           chroma.NameBuiltin,
	"comment":        chroma.Comment,
	"section-header": chroma.NameTag,
	"query-type":     chroma.NameFunction,
	"filter-type":    chroma.NameBuiltin,
	"predicate-type": chroma.Operator,
	"not":            chroma.OperatorWord,
}

// ChromaStyles lists the names of the registered chroma styles.
func ChromaStyles() []string {
	return styles.Names()
}

func lookupChroma(name string) (*chroma.Style, bool) {
	s, ok := styles.Registry[strings.ToLower(strings.TrimSpace(name))]
	return s, ok && s != nil
}

// FromChroma derives a palette from a chroma style.
func FromChroma(name string) (Palette, error) {
	cs, ok := lookupChroma(name)
	if !ok {
		return Palette{}, errdef.New(errdef.CodeTheme, "unknown chroma style %q", name)
	}
	return chromaPalette(cs), nil
}

func chromaPalette(cs *chroma.Style) Palette {
	p := DefaultPalette()
	bg := cs.Get(chroma.Background)
	p.Base = ClassStyle{
		Foreground: colour(bg.Colour),
		Background: colour(bg.Background),
	}
	for class, tt := range chromaTokens {
		e := cs.Get(tt)
		s := ClassStyle{
			Foreground: colour(e.Colour),
			Bold:       e.Bold == chroma.Yes,
			Italic:     e.Italic == chroma.Yes,
			Underline:  e.Underline == chroma.Yes,
		}
		// only keep a background that differs from the block's
		if e.Background.IsSet() && e.Background != bg.Background {
			s.Background = e.Background.String()
		}
		p.Classes[class] = s
	}
	return p
}

func colour(c chroma.Colour) string {
	if !c.IsSet() {
		return ""
	}
	return c.String()
}
