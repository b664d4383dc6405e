package ast

// Space is whitespace without position information.
func Space(s string) Whitespace {
	return Whitespace{Value: s}
}

// Newline terminates a line with "\n" and nothing before it.
func Newline() LineTerminator {
	return LineTerminator{Newline: Space("\n")}
}

// CommentLine is a line holding only a comment.
func CommentLine(text string) LineTerminator {
	return LineTerminator{Comment: &Comment{Value: text}, Newline: Space("\n")}
}

// Quoted builds a double quoted template of one literal. s must not need
// escaping.
func Quoted(s string) Template {
	t := Literal(s)
	t.Delimiter = '"'
	return t
}

// Variable is a placeholder referencing a variable, written {{name}}.
func Variable(name string) Placeholder {
	return Placeholder{Expr: Expr{Kind: ExprVariable, Name: name}}
}

// Join builds an unquoted template from literals and placeholders.
// Elements must be string or Placeholder.
func Join(parts ...any) Template {
	var t Template
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			t.Elements = append(t.Elements, TemplateElement{Value: v, Source: v})
		case Placeholder:
			ph := v
			t.Elements = append(t.Elements, TemplateElement{Placeholder: &ph})
		default:
			panic("ast: Join takes strings and placeholders")
		}
	}
	return t
}
