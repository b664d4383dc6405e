package htmlfmt

import (
	"strconv"
	"strings"

	"github.com/unkn0wn-root/hurlhtml/internal/ast"
)

// Classes attached to rendered tokens.
const (
	ClassEntry         = "entry"
	ClassRequest       = "request"
	ClassResponse      = "response"
	ClassMethod        = "method"
	ClassURL           = "url"
	ClassVersion       = "version"
	ClassNumber        = "number"
	ClassBoolean       = "boolean"
	ClassNull          = "null"
	ClassString        = "string"
	ClassRegex         = "regex"
	ClassFilename      = "filename"
	ClassExpr          = "expr"
	ClassJSON          = "json"
	ClassXML           = "xml"
	ClassMultiline     = "multiline"
	ClassBase64        = "base64"
	ClassHex           = "hex"
	ClassUnit          = "unit"
	ClassComment       = "comment"
	ClassSectionHeader = "section-header"
	ClassQueryType     = "query-type"
	ClassFilterType    = "filter-type"
	ClassPredicateType = "predicate-type"
	ClassNot           = "not"
)

// Classes lists every class the renderer can emit.
func Classes() []string {
	return []string{
		ClassEntry, ClassRequest, ClassResponse, ClassMethod, ClassURL,
		ClassVersion, ClassNumber, ClassBoolean, ClassNull, ClassString,
		ClassRegex, ClassFilename, ClassExpr, ClassJSON, ClassXML,
		ClassMultiline, ClassBase64, ClassHex, ClassUnit, ClassComment,
		ClassSectionHeader, ClassQueryType, ClassFilterType,
		ClassPredicateType, ClassNot,
	}
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeXML replaces &, < and > with their entities. Quotes are left alone.
// It must be applied exactly once to any literal.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

func openSpan(b *strings.Builder, class string) {
	b.WriteString(`<span class="`)
	b.WriteString(class)
	b.WriteString(`">`)
}

func closeSpan(b *strings.Builder) {
	b.WriteString("</span>")
}

// writeSpan wraps already prepared text in a classified span.
func writeSpan(b *strings.Builder, class, text string) {
	openSpan(b, class)
	b.WriteString(text)
	closeSpan(b)
}

func writeSpace(b *strings.Builder, ws ast.Whitespace) {
	if ws.Value != "" {
		b.WriteString(ws.Value)
	}
}

func writeComment(b *strings.Builder, c ast.Comment) {
	writeSpan(b, ClassComment, "#"+EscapeXML(c.Value))
}

func writeLineTerminator(b *strings.Builder, lt ast.LineTerminator) {
	writeSpace(b, lt.Space0)
	if lt.Comment != nil {
		writeComment(b, *lt.Comment)
	}
	b.WriteString(lt.Newline.Value)
}

// writeLineTerminators differs from writeLineTerminator only in skipping
// empty newlines, which occur at the end of input.
func writeLineTerminators(b *strings.Builder, lts []ast.LineTerminator) {
	for _, lt := range lts {
		writeSpace(b, lt.Space0)
		if lt.Comment != nil {
			writeComment(b, *lt.Comment)
		}
		if lt.Newline.Value != "" {
			b.WriteString(lt.Newline.Value)
		}
	}
}

func writeTemplate(b *strings.Builder, t ast.Template) {
	writeSpan(b, ClassString, EscapeXML(t.Source()))
}

func writeString(b *strings.Builder, s string) {
	writeSpan(b, ClassString, s)
}

func writeNumber(b *strings.Builder, source string) {
	writeSpan(b, ClassNumber, source)
}

func writeBool(b *strings.Builder, v bool) {
	writeSpan(b, ClassBoolean, strconv.FormatBool(v))
}

func writeNull(b *strings.Builder) {
	writeSpan(b, ClassNull, "null")
}

func writePlaceholder(b *strings.Builder, p ast.Placeholder) {
	writeSpan(b, ClassExpr, EscapeXML(p.Source()))
}

func writeRegex(b *strings.Builder, r ast.Regex) {
	writeSpan(b, ClassRegex, EscapeXML(r.Source))
}

func writeRegexValue(b *strings.Builder, v ast.RegexValue) {
	if v.Regex != nil {
		writeRegex(b, *v.Regex)
		return
	}
	writeTemplate(b, v.Template)
}

// writeFilename renders the decoded filename with spaces backslash-escaped.
// Filenames do not go through EscapeXML.
func writeFilename(b *strings.Builder, filename ast.Template) {
	openSpan(b, ClassFilename)
	b.WriteString(strings.ReplaceAll(filename.String(), " ", `\ `))
	closeSpan(b)
}

func writeMultiline(b *strings.Builder, m ast.MultilineString) {
	writeSpan(b, ClassMultiline, EscapeXML(m.Source()))
}

func writeJSON(b *strings.Builder, v ast.JSONValue) {
	writeSpan(b, ClassJSON, EscapeXML(v.Source()))
}

func writeXML(b *strings.Builder, xml string) {
	writeSpan(b, ClassXML, EscapeXML(xml))
}

func writeFile(b *strings.Builder, f ast.File) {
	b.WriteString("file,")
	writeSpace(b, f.Space0)
	writeFilename(b, f.Filename)
	writeSpace(b, f.Space1)
	b.WriteByte(';')
}

func writeBase64(b *strings.Builder, v ast.Base64) {
	b.WriteString("base64,")
	writeSpace(b, v.Space0)
	writeSpan(b, ClassBase64, EscapeXML(v.Source))
	writeSpace(b, v.Space1)
	b.WriteByte(';')
}

func writeHex(b *strings.Builder, v ast.Hex) {
	b.WriteString("hex,")
	writeSpace(b, v.Space0)
	writeSpan(b, ClassHex, EscapeXML(v.Source))
	writeSpace(b, v.Space1)
	b.WriteByte(';')
}

func writeBoolOption(b *strings.Builder, v ast.BooleanOption) {
	if v.Placeholder != nil {
		writePlaceholder(b, *v.Placeholder)
		return
	}
	writeBool(b, v.Literal)
}

func writeNaturalOption(b *strings.Builder, v ast.NaturalOption) {
	if v.Placeholder != nil {
		writePlaceholder(b, *v.Placeholder)
		return
	}
	writeNumber(b, v.Literal.String())
}

func writeDurationOption(b *strings.Builder, v ast.DurationOption) {
	if v.Placeholder != nil {
		writePlaceholder(b, *v.Placeholder)
		return
	}
	writeNumber(b, v.Literal.Value.String())
	if v.Literal.Unit != nil {
		writeSpan(b, ClassUnit, v.Literal.Unit.String())
	}
}

func writeCountOption(b *strings.Builder, v ast.CountOption) {
	if v.Placeholder != nil {
		writePlaceholder(b, *v.Placeholder)
		return
	}
	// an infinite count is written as -1
	writeNumber(b, v.Literal.String())
}
