// Package markup reads back the highlighted markup produced by htmlfmt.
package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// renderer output only ever contains these three entities
var unescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">")

// Unescape reverses the escaping applied to rendered text.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

// Visitor receives each text run inside <code> together with the classes of
// the enclosing spans, outermost first. The slice is only valid during the
// call.
type Visitor func(classes []string, text string)

// Scan walks fragment, which may be a bare fragment or a standalone page.
// Text outside <code> is ignored.
func Scan(fragment string, visit Visitor) error {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var (
		stack  []string
		inCode int
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return fmt.Errorf("markup: %w", err)
			}
			if inCode > 0 || len(stack) > 0 {
				return fmt.Errorf("markup: unterminated element (%d open spans)", len(stack))
			}
			return nil
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "code":
				inCode++
			case "span":
				if inCode == 0 {
					continue
				}
				stack = append(stack, classOf(z, hasAttr))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "code":
				if inCode == 0 {
					return fmt.Errorf("markup: unexpected </code>")
				}
				inCode--
			case "span":
				if inCode == 0 {
					continue
				}
				if len(stack) == 0 {
					return fmt.Errorf("markup: unexpected </span>")
				}
				stack = stack[:len(stack)-1]
			}
		case html.TextToken:
			if inCode == 0 {
				continue
			}
			// Raw keeps carriage returns that Text would normalise
			visit(stack, Unescape(string(z.Raw())))
		}
	}
}

func classOf(z *html.Tokenizer, hasAttr bool) string {
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if string(key) == "class" {
			return string(val)
		}
	}
	return ""
}

// Text returns the concatenated text inside <code>.
func Text(fragment string) (string, error) {
	var b strings.Builder
	err := Scan(fragment, func(_ []string, text string) {
		b.WriteString(text)
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
