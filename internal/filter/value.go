package filter

import (
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueInteger
	ValueFloat
	ValueBigInteger
	ValueString
	ValueList
	ValueObject
	ValueBytes
	ValueNodeset
	ValueDate
	ValueRegex
	ValueUnit
)

var valueKindNames = [...]string{
	ValueNull:       "null",
	ValueBool:       "bool",
	ValueInteger:    "integer",
	ValueFloat:      "float",
	ValueBigInteger: "number",
	ValueString:     "string",
	ValueList:       "list",
	ValueObject:     "object",
	ValueBytes:      "bytes",
	ValueNodeset:    "nodeset",
	ValueDate:       "date",
	ValueRegex:      "regex",
	ValueUnit:       "unit",
}

func (k ValueKind) String() string {
	if k < 0 || int(k) >= len(valueKindNames) {
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
	return valueKindNames[k]
}

// Value is a runtime value flowing through filters. Text holds the payload
// of strings, big integers and regexes; Size the node count of a nodeset.
type Value struct {
	Kind    ValueKind
	Bool    bool
	Integer int64
	Float   float64
	Text    string
	List    []Value
	Object  []ObjectEntry
	Bytes   []byte
	Size    int
	Date    time.Time
}

type ObjectEntry struct {
	Key   string
	Value Value
}

func Null() Value                   { return Value{Kind: ValueNull} }
func Unit() Value                   { return Value{Kind: ValueUnit} }
func Bool(b bool) Value             { return Value{Kind: ValueBool, Bool: b} }
func Integer(i int64) Value         { return Value{Kind: ValueInteger, Integer: i} }
func Float(f float64) Value         { return Value{Kind: ValueFloat, Float: f} }
func BigInteger(s string) Value     { return Value{Kind: ValueBigInteger, Text: s} }
func String(s string) Value         { return Value{Kind: ValueString, Text: s} }
func Regex(pattern string) Value    { return Value{Kind: ValueRegex, Text: pattern} }
func Bytes(b []byte) Value          { return Value{Kind: ValueBytes, Bytes: b} }
func Nodeset(size int) Value        { return Value{Kind: ValueNodeset, Size: size} }
func Date(t time.Time) Value        { return Value{Kind: ValueDate, Date: t} }
func List(items ...Value) Value     { return Value{Kind: ValueList, List: items} }
func Object(e ...ObjectEntry) Value { return Value{Kind: ValueObject, Object: e} }

// Display is the form used in error messages, e.g. "string <abc>".
func (v Value) Display() string {
	switch v.Kind {
	case ValueNull:
		return "null"
	case ValueUnit:
		return "unit"
	case ValueObject:
		return "object"
	case ValueNodeset:
		return "nodeset of size <" + strconv.Itoa(v.Size) + ">"
	default:
		return v.Kind.String() + " <" + v.repr() + ">"
	}
}

func (v Value) repr() string {
	switch v.Kind {
	case ValueNull:
		return "null"
	case ValueUnit:
		return "unit"
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueInteger:
		return strconv.FormatInt(v.Integer, 10)
	case ValueFloat:
		return FormatFloat(v.Float)
	case ValueBigInteger, ValueString, ValueRegex:
		return v.Text
	case ValueBytes:
		return hex.EncodeToString(v.Bytes)
	case ValueDate:
		return v.Date.UTC().Format(time.RFC3339Nano)
	case ValueNodeset:
		return "nodeset of size " + strconv.Itoa(v.Size)
	case ValueList:
		parts := make([]string, len(v.List))
		for i, item := range v.List {
			if item.Kind == ValueString {
				parts[i] = strconv.Quote(item.Text)
				continue
			}
			parts[i] = item.repr()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case ValueObject:
		return "object"
	}
	return v.Kind.String()
}

// FormatFloat renders f with the shortest exact digits and always a
// fractional part, so 3 prints as "3.0".
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}
	return s + ".0"
}
