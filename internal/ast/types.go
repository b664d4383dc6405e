package ast

type Pos struct {
	Line   int
	Column int
}

type SourceInfo struct {
	Start Pos
	End   Pos
}

func NewSourceInfo(start, end Pos) SourceInfo {
	return SourceInfo{Start: start, End: end}
}

type Whitespace struct {
	Value      string
	SourceInfo SourceInfo
}

// Comment holds the text following '#', without the marker itself.
type Comment struct {
	Value      string
	SourceInfo SourceInfo
}

type LineTerminator struct {
	Space0  Whitespace
	Comment *Comment
	Newline Whitespace
}

type Document struct {
	Entries         []Entry
	LineTerminators []LineTerminator
}

type Entry struct {
	Request  Request
	Response *Response
}

type Method string

type Request struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	Method          Method
	Space1          Whitespace
	URL             Template
	LineTerminator0 LineTerminator
	Headers         []KeyValue
	Sections        []Section
	Body            *Body
	SourceInfo      SourceInfo
}

type Response struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	Version         Version
	Space1          Whitespace
	Status          Status
	LineTerminator0 LineTerminator
	Headers         []KeyValue
	Sections        []Section
	Body            *Body
	SourceInfo      SourceInfo
}

type Version struct {
	Value      VersionValue
	SourceInfo SourceInfo
}

// Status is either a specific code or the '*' wildcard.
type Status struct {
	Any        bool
	Code       uint64
	SourceInfo SourceInfo
}

type Section struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	LineTerminator0 LineTerminator
	Value           SectionValue
	SourceInfo      SourceInfo
}

// Identifier is the name written between brackets in the section header.
func (s Section) Identifier() string {
	return s.Value.Identifier()
}

// SectionValue is tagged by Kind; only the items field matching the kind is
// meaningful. Short selects the abbreviated header spelling where the
// grammar has one ([Query], [Form], [Multipart]).
type SectionValue struct {
	Kind      SectionKind
	Short     bool
	Asserts   []Assert
	Params    []KeyValue
	BasicAuth *KeyValue
	Multipart []MultipartParam
	Cookies   []Cookie
	Captures  []Capture
	Options   []EntryOption
}

func (v SectionValue) Identifier() string {
	if v.Short {
		switch v.Kind {
		case SectionQueryParams:
			return "Query"
		case SectionFormParams:
			return "Form"
		case SectionMultipartFormData:
			return "Multipart"
		}
	}
	return v.Kind.String()
}

type KeyValue struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	Key             Template
	Space1          Whitespace
	Space2          Whitespace
	Value           Template
	LineTerminator0 LineTerminator
}

// MultipartParam is either a plain key/value or a file parameter.
type MultipartParam struct {
	Param *KeyValue
	File  *FilenameParam
}

type FilenameParam struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	Key             Template
	Space1          Whitespace
	Space2          Whitespace
	Value           FilenameValue
	LineTerminator0 LineTerminator
}

type FilenameValue struct {
	Space0      Whitespace
	Filename    Template
	Space1      Whitespace
	Space2      Whitespace
	ContentType *Template
}

type Cookie struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	Name            Template
	Space1          Whitespace
	Space2          Whitespace
	Value           Template
	LineTerminator0 LineTerminator
}

// FilterStep is a filter preceded by the whitespace separating it from the
// previous query or filter.
type FilterStep struct {
	Space  Whitespace
	Filter Filter
}

type Capture struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	Name            Template
	Space1          Whitespace
	Space2          Whitespace
	Query           Query
	Filters         []FilterStep
	Space3          Whitespace
	Redact          bool
	LineTerminator0 LineTerminator
}

type Assert struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	Query           Query
	Filters         []FilterStep
	Space1          Whitespace
	Predicate       Predicate
	LineTerminator0 LineTerminator
}

type Query struct {
	Value      QueryValue
	SourceInfo SourceInfo
}

// QueryValue is tagged by Kind. Name holds the template payload of header,
// xpath, jsonpath and variable queries.
type QueryValue struct {
	Kind        QueryKind
	Space0      Whitespace
	Name        Template
	Cookie      CookiePath
	Regex       RegexValue
	Certificate CertificateAttributeName
}

func (v QueryValue) Identifier() string {
	return v.Kind.String()
}

type CookiePath struct {
	Name      Template
	Attribute *CookieAttribute
}

type CookieAttribute struct {
	Space0 Whitespace
	Name   CookieAttributeName
	Space1 Whitespace
}

// CookieAttributeName keeps the attribute as spelled in the source; Kind is
// its canonical meaning.
type CookieAttributeName struct {
	Kind  CookieAttributeKind
	Value string
}

type Filter struct {
	Value      FilterValue
	SourceInfo SourceInfo
}

// FilterValue is tagged by Kind. Expr carries the first template argument
// (encoding, format, expression, separator, parameter, old value), Regex the
// pattern of regex filters and NewValue the replacement of replace filters.
type FilterValue struct {
	Kind     FilterKind
	Space0   Whitespace
	Expr     Template
	Regex    RegexValue
	N        I64
	Space1   Whitespace
	NewValue Template
}

func (v FilterValue) Identifier() string {
	return v.Kind.String()
}

type Predicate struct {
	Not    bool
	Space0 Whitespace
	Func   PredicateFunc
}

type PredicateFunc struct {
	Value      PredicateFuncValue
	SourceInfo SourceInfo
}

type PredicateFuncValue struct {
	Kind   PredicateKind
	Space0 Whitespace
	Value  PredicateValue
}

func (v PredicateFuncValue) Identifier() string {
	return v.Kind.String()
}

type PredicateValue struct {
	Kind        PredicateValueKind
	String      Template
	Multiline   MultilineString
	Number      Number
	Bool        bool
	File        File
	Hex         Hex
	Base64      Base64
	Placeholder Placeholder
	Regex       Regex
}

type Body struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	Value           Bytes
	LineTerminator0 LineTerminator
}

// Bytes is a body payload tagged by Kind. XML holds the verbatim XML text.
type Bytes struct {
	Kind      BytesKind
	JSON      JSONValue
	XML       string
	Multiline MultilineString
	OneLine   Template
	Base64    Base64
	File      File
	Hex       Hex
}

type Base64 struct {
	Space0 Whitespace
	Value  []byte
	Source string
	Space1 Whitespace
}

type Hex struct {
	Space0 Whitespace
	Value  []byte
	Source string
	Space1 Whitespace
}

type File struct {
	Space0   Whitespace
	Filename Template
	Space1   Whitespace
}

// Template is a sequence of literal fragments and placeholders. Delimiter
// is the quote surrounding the template in the source, 0 when unquoted.
type Template struct {
	Delimiter  rune
	Elements   []TemplateElement
	SourceInfo SourceInfo
}

// TemplateElement is a placeholder when Placeholder is set, otherwise a
// literal whose decoded text is Value and whose verbatim spelling is Source.
type TemplateElement struct {
	Value       string
	Source      string
	Placeholder *Placeholder
}

type Placeholder struct {
	Space0 Whitespace
	Expr   Expr
	Space1 Whitespace
}

type Expr struct {
	Kind       ExprKind
	Name       string
	SourceInfo SourceInfo
}

type I64 struct {
	Value  int64
	Source string
}

type U64 struct {
	Value  uint64
	Source string
}

type Float struct {
	Value  float64
	Source string
}

type Number struct {
	Kind       NumberKind
	Integer    I64
	Float      Float
	BigInteger string
}

// Regex is a /…/ literal. Value is the compiled pattern text, Source the
// spelling between (and including) the slashes.
type Regex struct {
	Value  string
	Source string
}

// RegexValue is a regex literal when Regex is set, otherwise a template
// holding the pattern.
type RegexValue struct {
	Template Template
	Regex    *Regex
}

type MultilineString struct {
	Kind       MultilineKind
	Attributes []MultilineAttribute
	Space      Whitespace
	Newline    Whitespace
	Value      Template
	Variables  *GraphQLVariables
}

type GraphQLVariables struct {
	Space      Whitespace
	Value      JSONValue
	Whitespace Whitespace
}

// JSONValue is tagged by Kind. Space0 is the inner whitespace of an empty
// list or object.
type JSONValue struct {
	Kind        JSONKind
	Placeholder Placeholder
	Number      string
	String      Template
	Bool        bool
	Space0      string
	List        []JSONListElement
	Object      []JSONObjectElement
}

type JSONListElement struct {
	Space0 string
	Value  JSONValue
	Space1 string
}

type JSONObjectElement struct {
	Space0 string
	Name   Template
	Space1 string
	Space2 string
	Value  JSONValue
	Space3 string
}

type EntryOption struct {
	LineTerminators []LineTerminator
	Space0          Whitespace
	Space1          Whitespace
	Space2          Whitespace
	Kind            OptionKind
	Value           OptionValue
	LineTerminator0 LineTerminator
}

func (o EntryOption) Identifier() string {
	return o.Kind.String()
}

// OptionValue holds the value of an entry option; the field read is
// determined by the option kind's value family.
type OptionValue struct {
	Template Template
	Filename Template
	Bool     BooleanOption
	Natural  NaturalOption
	Duration DurationOption
	Count    CountOption
	Variable VariableDefinition
}

type BooleanOption struct {
	Literal     bool
	Placeholder *Placeholder
}

type NaturalOption struct {
	Literal     U64
	Placeholder *Placeholder
}

type DurationOption struct {
	Literal     Duration
	Placeholder *Placeholder
}

type CountOption struct {
	Literal     Count
	Placeholder *Placeholder
}

type Duration struct {
	Value U64
	Unit  *DurationUnit
}

type Count struct {
	Infinite bool
	Value    uint64
}

type VariableDefinition struct {
	Name       string
	Space0     Whitespace
	Space1     Whitespace
	Value      VariableValue
	SourceInfo SourceInfo
}

type VariableValue struct {
	Kind   VariableValueKind
	Bool   bool
	Number Number
	String Template
}
