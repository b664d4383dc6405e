package htmlfmt

import (
	"fmt"
	"strings"

	"github.com/unkn0wn-root/hurlhtml/internal/ast"
)

func writeDocument(b *strings.Builder, doc ast.Document, language string) {
	b.WriteString(`<pre><code class="language-`)
	b.WriteString(language)
	b.WriteString(`">`)
	for _, e := range doc.Entries {
		writeEntry(b, e)
	}
	writeLineTerminators(b, doc.LineTerminators)
	b.WriteString("</code></pre>")
}

func writeEntry(b *strings.Builder, e ast.Entry) {
	openSpan(b, ClassEntry)
	writeRequest(b, e.Request)
	if e.Response != nil {
		writeResponse(b, *e.Response)
	}
	closeSpan(b)
}

func writeRequest(b *strings.Builder, r ast.Request) {
	openSpan(b, ClassRequest)
	writeLineTerminators(b, r.LineTerminators)
	writeSpace(b, r.Space0)
	writeSpan(b, ClassMethod, EscapeXML(string(r.Method)))
	writeSpace(b, r.Space1)
	writeSpan(b, ClassURL, EscapeXML(r.URL.Source()))
	writeLineTerminator(b, r.LineTerminator0)
	for _, h := range r.Headers {
		writeKeyValue(b, h)
	}
	for _, s := range r.Sections {
		writeSection(b, s)
	}
	if r.Body != nil {
		writeBody(b, *r.Body)
	}
	closeSpan(b)
}

func writeResponse(b *strings.Builder, r ast.Response) {
	openSpan(b, ClassResponse)
	writeLineTerminators(b, r.LineTerminators)
	writeSpace(b, r.Space0)
	writeSpan(b, ClassVersion, r.Version.Value.String())
	writeSpace(b, r.Space1)
	writeNumber(b, r.Status.String())
	writeLineTerminator(b, r.LineTerminator0)
	for _, h := range r.Headers {
		writeKeyValue(b, h)
	}
	for _, s := range r.Sections {
		writeSection(b, s)
	}
	if r.Body != nil {
		writeBody(b, *r.Body)
	}
	closeSpan(b)
}

func writeSection(b *strings.Builder, s ast.Section) {
	writeLineTerminators(b, s.LineTerminators)
	writeSpace(b, s.Space0)
	writeSpan(b, ClassSectionHeader, "["+s.Identifier()+"]")
	writeLineTerminator(b, s.LineTerminator0)
	writeSectionValue(b, s.Value)
}

func writeSectionValue(b *strings.Builder, v ast.SectionValue) {
	switch v.Kind {
	case ast.SectionAsserts:
		for _, a := range v.Asserts {
			writeAssert(b, a)
		}
	case ast.SectionQueryParams, ast.SectionFormParams:
		for _, kv := range v.Params {
			writeKeyValue(b, kv)
		}
	case ast.SectionBasicAuth:
		if v.BasicAuth != nil {
			writeKeyValue(b, *v.BasicAuth)
		}
	case ast.SectionMultipartFormData:
		for _, p := range v.Multipart {
			writeMultipartParam(b, p)
		}
	case ast.SectionCookies:
		for _, c := range v.Cookies {
			writeCookie(b, c)
		}
	case ast.SectionCaptures:
		for _, c := range v.Captures {
			writeCapture(b, c)
		}
	case ast.SectionOptions:
		for _, o := range v.Options {
			writeEntryOption(b, o)
		}
	default:
		unreachable("section", v.Kind)
	}
}

func writeKeyValue(b *strings.Builder, kv ast.KeyValue) {
	writeLineTerminators(b, kv.LineTerminators)
	writeSpace(b, kv.Space0)
	writeTemplate(b, kv.Key)
	writeSpace(b, kv.Space1)
	b.WriteByte(':')
	writeSpace(b, kv.Space2)
	writeTemplate(b, kv.Value)
	writeLineTerminator(b, kv.LineTerminator0)
}

func writeMultipartParam(b *strings.Builder, p ast.MultipartParam) {
	switch {
	case p.File != nil:
		writeFilenameParam(b, *p.File)
	case p.Param != nil:
		writeKeyValue(b, *p.Param)
	default:
		unreachable("multipart param", "empty")
	}
}

func writeFilenameParam(b *strings.Builder, p ast.FilenameParam) {
	writeLineTerminators(b, p.LineTerminators)
	writeSpace(b, p.Space0)
	writeTemplate(b, p.Key)
	writeSpace(b, p.Space1)
	b.WriteByte(':')
	writeSpace(b, p.Space2)
	writeFilenameValue(b, p.Value)
	writeLineTerminator(b, p.LineTerminator0)
}

func writeFilenameValue(b *strings.Builder, v ast.FilenameValue) {
	b.WriteString("file,")
	writeSpace(b, v.Space0)
	writeFilename(b, v.Filename)
	writeSpace(b, v.Space1)
	b.WriteByte(';')
	writeSpace(b, v.Space2)
	if v.ContentType != nil {
		writeTemplate(b, *v.ContentType)
	}
}

func writeCookie(b *strings.Builder, c ast.Cookie) {
	writeLineTerminators(b, c.LineTerminators)
	writeSpace(b, c.Space0)
	writeTemplate(b, c.Name)
	writeSpace(b, c.Space1)
	b.WriteByte(':')
	writeSpace(b, c.Space2)
	writeTemplate(b, c.Value)
	writeLineTerminator(b, c.LineTerminator0)
}

func writeCapture(b *strings.Builder, c ast.Capture) {
	writeLineTerminators(b, c.LineTerminators)
	writeSpace(b, c.Space0)
	writeTemplate(b, c.Name)
	writeSpace(b, c.Space1)
	b.WriteByte(':')
	writeSpace(b, c.Space2)
	writeQuery(b, c.Query)
	writeFilters(b, c.Filters)
	writeSpace(b, c.Space3)
	if c.Redact {
		writeString(b, "redact")
	}
	writeLineTerminator(b, c.LineTerminator0)
}

func writeAssert(b *strings.Builder, a ast.Assert) {
	writeLineTerminators(b, a.LineTerminators)
	writeSpace(b, a.Space0)
	writeQuery(b, a.Query)
	writeFilters(b, a.Filters)
	writeSpace(b, a.Space1)
	writePredicate(b, a.Predicate)
	writeLineTerminator(b, a.LineTerminator0)
}

func writeFilters(b *strings.Builder, steps []ast.FilterStep) {
	for _, step := range steps {
		writeSpace(b, step.Space)
		writeFilter(b, step.Filter)
	}
}

func writeQuery(b *strings.Builder, q ast.Query) {
	v := q.Value
	writeSpan(b, ClassQueryType, v.Identifier())
	switch v.Kind {
	case ast.QueryHeader, ast.QueryXPath, ast.QueryJSONPath, ast.QueryVariable:
		writeSpace(b, v.Space0)
		writeTemplate(b, v.Name)
	case ast.QueryCookie:
		writeSpace(b, v.Space0)
		writeCookiePath(b, v.Cookie)
	case ast.QueryRegex:
		writeSpace(b, v.Space0)
		writeRegexValue(b, v.Regex)
	case ast.QueryCertificate:
		writeSpace(b, v.Space0)
		writeString(b, `"`+v.Certificate.String()+`"`)
	case ast.QueryStatus,
		ast.QueryVersion,
		ast.QueryURL,
		ast.QueryBody,
		ast.QueryDuration,
		ast.QueryBytes,
		ast.QuerySha256,
		ast.QueryMd5,
		ast.QueryIP,
		ast.QueryRedirects:
	default:
		unreachable("query", v.Kind)
	}
}

// writeCookiePath always spells the path as a quoted string, whatever
// quoting the source used; whitespace inside the brackets is kept.
func writeCookiePath(b *strings.Builder, p ast.CookiePath) {
	openSpan(b, ClassString)
	b.WriteByte('"')
	b.WriteString(EscapeXML(p.Name.Source()))
	if attr := p.Attribute; attr != nil {
		b.WriteByte('[')
		writeSpace(b, attr.Space0)
		b.WriteString(EscapeXML(attr.Name.Value))
		writeSpace(b, attr.Space1)
		b.WriteByte(']')
	}
	b.WriteByte('"')
	closeSpan(b)
}

func writeFilter(b *strings.Builder, f ast.Filter) {
	v := f.Value
	writeSpan(b, ClassFilterType, v.Identifier())
	switch v.Kind {
	case ast.FilterDecode,
		ast.FilterFormat,
		ast.FilterJSONPath,
		ast.FilterSplit,
		ast.FilterToDate,
		ast.FilterURLQueryParam,
		ast.FilterXPath:
		writeSpace(b, v.Space0)
		writeTemplate(b, v.Expr)
	case ast.FilterNth:
		writeSpace(b, v.Space0)
		writeNumber(b, v.N.String())
	case ast.FilterRegex:
		writeSpace(b, v.Space0)
		writeRegexValue(b, v.Regex)
	case ast.FilterReplace:
		writeSpace(b, v.Space0)
		writeTemplate(b, v.Expr)
		writeSpace(b, v.Space1)
		writeTemplate(b, v.NewValue)
	case ast.FilterReplaceRegex:
		writeSpace(b, v.Space0)
		writeRegexValue(b, v.Regex)
		writeSpace(b, v.Space1)
		writeTemplate(b, v.NewValue)
	case ast.FilterBase64Decode,
		ast.FilterBase64Encode,
		ast.FilterBase64URLSafeDecode,
		ast.FilterBase64URLSafeEncode,
		ast.FilterCount,
		ast.FilterDaysAfterNow,
		ast.FilterDaysBeforeNow,
		ast.FilterFirst,
		ast.FilterHTMLEscape,
		ast.FilterHTMLUnescape,
		ast.FilterLast,
		ast.FilterLocation,
		ast.FilterToFloat,
		ast.FilterToHex,
		ast.FilterToInt,
		ast.FilterToString,
		ast.FilterURLDecode,
		ast.FilterURLEncode:
	default:
		unreachable("filter", v.Kind)
	}
}

func writePredicate(b *strings.Builder, p ast.Predicate) {
	if p.Not {
		writeSpan(b, ClassNot, "not")
		writeSpace(b, p.Space0)
	}
	writePredicateFunc(b, p.Func.Value)
}

func writePredicateFunc(b *strings.Builder, v ast.PredicateFuncValue) {
	// comparison operators contain < and >
	writeSpan(b, ClassPredicateType, EscapeXML(v.Identifier()))
	switch v.Kind {
	case ast.PredicateEqual,
		ast.PredicateNotEqual,
		ast.PredicateGreaterThan,
		ast.PredicateGreaterThanOrEqual,
		ast.PredicateLessThan,
		ast.PredicateLessThanOrEqual,
		ast.PredicateStartWith,
		ast.PredicateEndWith,
		ast.PredicateContain,
		ast.PredicateInclude,
		ast.PredicateMatch:
		writeSpace(b, v.Space0)
		writePredicateValue(b, v.Value)
	case ast.PredicateIsInteger,
		ast.PredicateIsFloat,
		ast.PredicateIsBoolean,
		ast.PredicateIsString,
		ast.PredicateIsCollection,
		ast.PredicateIsDate,
		ast.PredicateIsIsoDate,
		ast.PredicateExist,
		ast.PredicateIsEmpty,
		ast.PredicateIsNumber,
		ast.PredicateIsIPv4,
		ast.PredicateIsIPv6:
	default:
		unreachable("predicate", v.Kind)
	}
}

func writePredicateValue(b *strings.Builder, v ast.PredicateValue) {
	switch v.Kind {
	case ast.PredicateValueString:
		writeTemplate(b, v.String)
	case ast.PredicateValueMultiline:
		writeMultiline(b, v.Multiline)
	case ast.PredicateValueNumber:
		writeNumber(b, v.Number.Source())
	case ast.PredicateValueBool:
		writeBool(b, v.Bool)
	case ast.PredicateValueFile:
		writeFile(b, v.File)
	case ast.PredicateValueHex:
		writeHex(b, v.Hex)
	case ast.PredicateValueBase64:
		writeBase64(b, v.Base64)
	case ast.PredicateValuePlaceholder:
		writePlaceholder(b, v.Placeholder)
	case ast.PredicateValueNull:
		writeNull(b)
	case ast.PredicateValueRegex:
		writeRegex(b, v.Regex)
	default:
		unreachable("predicate value", v.Kind)
	}
}

func writeBody(b *strings.Builder, body ast.Body) {
	writeLineTerminators(b, body.LineTerminators)
	writeSpace(b, body.Space0)
	writeBytes(b, body.Value)
	writeLineTerminator(b, body.LineTerminator0)
}

func writeBytes(b *strings.Builder, v ast.Bytes) {
	switch v.Kind {
	case ast.BytesBase64:
		writeBase64(b, v.Base64)
	case ast.BytesFile:
		writeFile(b, v.File)
	case ast.BytesHex:
		writeHex(b, v.Hex)
	case ast.BytesOneLine:
		writeTemplate(b, v.OneLine)
	case ast.BytesJSON:
		writeJSON(b, v.JSON)
	case ast.BytesMultiline:
		writeMultiline(b, v.Multiline)
	case ast.BytesXML:
		writeXML(b, v.XML)
	default:
		unreachable("bytes", v.Kind)
	}
}

func writeEntryOption(b *strings.Builder, o ast.EntryOption) {
	writeLineTerminators(b, o.LineTerminators)
	writeSpace(b, o.Space0)
	writeString(b, o.Identifier())
	writeSpace(b, o.Space1)
	b.WriteByte(':')
	writeSpace(b, o.Space2)
	family, ok := o.Kind.Family()
	if !ok {
		unreachable("option", o.Kind)
	}
	switch family {
	case ast.OptionTemplate:
		writeTemplate(b, o.Value.Template)
	case ast.OptionFilename:
		writeFilename(b, o.Value.Filename)
	case ast.OptionBool:
		writeBoolOption(b, o.Value.Bool)
	case ast.OptionNatural:
		writeNaturalOption(b, o.Value.Natural)
	case ast.OptionDuration:
		writeDurationOption(b, o.Value.Duration)
	case ast.OptionCount:
		writeCountOption(b, o.Value.Count)
	case ast.OptionVariable:
		writeVariableDefinition(b, o.Value.Variable)
	default:
		unreachable("option family", family)
	}
	writeLineTerminator(b, o.LineTerminator0)
}

func writeVariableDefinition(b *strings.Builder, v ast.VariableDefinition) {
	b.WriteString(EscapeXML(v.Name))
	writeSpace(b, v.Space0)
	b.WriteByte('=')
	writeSpace(b, v.Space1)
	switch v.Value.Kind {
	case ast.VariableNull:
		writeNull(b)
	case ast.VariableBool:
		writeBool(b, v.Value.Bool)
	case ast.VariableNumber:
		writeNumber(b, v.Value.Number.Source())
	case ast.VariableString:
		writeTemplate(b, v.Value.String)
	default:
		unreachable("variable value", v.Value.Kind)
	}
}

// unreachable reports a tree the grammar cannot produce.
func unreachable(node string, kind any) {
	panic(fmt.Sprintf("htmlfmt: unreachable %s kind %v", node, kind))
}
