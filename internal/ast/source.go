package ast

import (
	"strconv"
	"strings"
)

// Source returns the template exactly as written, delimiters included.
func (t Template) Source() string {
	var b strings.Builder
	if t.Delimiter != 0 {
		b.WriteRune(t.Delimiter)
	}
	for _, el := range t.Elements {
		b.WriteString(el.source())
	}
	if t.Delimiter != 0 {
		b.WriteRune(t.Delimiter)
	}
	return b.String()
}

// String returns the decoded template value, placeholders shown as {{expr}}.
func (t Template) String() string {
	var b strings.Builder
	for _, el := range t.Elements {
		if el.Placeholder != nil {
			b.WriteString(el.Placeholder.String())
			continue
		}
		b.WriteString(el.Value)
	}
	return b.String()
}

func (e TemplateElement) source() string {
	if e.Placeholder != nil {
		return e.Placeholder.Source()
	}
	return e.Source
}

// Literal builds an unquoted template made of one literal whose value and
// source coincide.
func Literal(s string) Template {
	return Template{Elements: []TemplateElement{{Value: s, Source: s}}}
}

func (p Placeholder) Source() string {
	return "{{" + p.Space0.Value + p.Expr.Name + p.Space1.Value + "}}"
}

func (p Placeholder) String() string {
	return "{{" + p.Expr.Name + "}}"
}

func (n Number) Source() string {
	switch n.Kind {
	case NumberFloat:
		return n.Float.Source
	case NumberBigInteger:
		return n.BigInteger
	default:
		return n.Integer.Source
	}
}

func (n I64) String() string {
	if n.Source != "" {
		return n.Source
	}
	return strconv.FormatInt(n.Value, 10)
}

func (n U64) String() string {
	if n.Source != "" {
		return n.Source
	}
	return strconv.FormatUint(n.Value, 10)
}

func (s Status) String() string {
	if s.Any {
		return "*"
	}
	return strconv.FormatUint(s.Code, 10)
}

func (c Count) String() string {
	if c.Infinite {
		return "-1"
	}
	return strconv.FormatUint(c.Value, 10)
}

func (r Regex) String() string {
	return r.Source
}

func (m MultilineString) Source() string {
	var b strings.Builder
	b.WriteString("```")
	lang := m.Kind.Lang()
	b.WriteString(lang)
	for i, attr := range m.Attributes {
		if i > 0 || lang != "" {
			b.WriteByte(',')
		}
		b.WriteString(attr.String())
	}
	b.WriteString(m.Space.Value)
	b.WriteString(m.Newline.Value)
	b.WriteString(m.Value.Source())
	if m.Kind == MultilineGraphQL && m.Variables != nil {
		b.WriteString(m.Variables.Source())
	}
	b.WriteString("```")
	return b.String()
}

func (v GraphQLVariables) Source() string {
	return "variables" + v.Space.Value + v.Value.Source() + v.Whitespace.Value
}

func (v JSONValue) Source() string {
	var b strings.Builder
	v.writeSource(&b)
	return b.String()
}

func (v JSONValue) writeSource(b *strings.Builder) {
	switch v.Kind {
	case JSONPlaceholder:
		b.WriteString(v.Placeholder.Source())
	case JSONNumber:
		b.WriteString(v.Number)
	case JSONString:
		b.WriteString(v.String.Source())
	case JSONBool:
		b.WriteString(strconv.FormatBool(v.Bool))
	case JSONList:
		b.WriteByte('[')
		if len(v.List) == 0 {
			b.WriteString(v.Space0)
		}
		for i, el := range v.List {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(el.Space0)
			el.Value.writeSource(b)
			b.WriteString(el.Space1)
		}
		b.WriteByte(']')
	case JSONObject:
		b.WriteByte('{')
		if len(v.Object) == 0 {
			b.WriteString(v.Space0)
		}
		for i, el := range v.Object {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(el.Space0)
			name := el.Name
			if name.Delimiter == 0 {
				name.Delimiter = '"'
			}
			b.WriteString(name.Source())
			b.WriteString(el.Space1)
			b.WriteByte(':')
			b.WriteString(el.Space2)
			el.Value.writeSource(b)
			b.WriteString(el.Space3)
		}
		b.WriteByte('}')
	default:
		b.WriteString("null")
	}
}
