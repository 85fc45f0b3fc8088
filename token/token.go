package token

// Token represents a lexical token and the byte range it was read from.
type Token struct {
	Kind  Kind
	Range Range
}

// New returns a token of the given kind spanning [start, end).
// The range is not validated.
func New(kind Kind, start, end int) Token {
	return Token{Kind: kind, Range: Range{Start: start, End: end}}
}

// Text returns the source text the token was read from.
func (t Token) Text(src string) string {
	return t.Range.Text(src)
}

// Range is a half-open interval of byte offsets into the scanned input.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Text returns the slice of src covered by the range.
func (r Range) Text(src string) string {
	return src[r.Start:r.End]
}

// Kind represents the type of a token and any payload it carries.
//
// The set of kinds is closed. Some kinds (Whitespace, BadString, Function,
// Percentage, Dimension, URI, UnicodeRange) are never produced by the
// scanner but remain available to printers and future scanners.
type Kind interface {
	kind()
	String() string
}

func (Whitespace) kind()        {}
func (CurlyBracketOpen) kind()  {}
func (CurlyBracketClose) kind() {}
func (Colon) kind()             {}
func (Semicolon) kind()         {}
func (Comma) kind()             {}
func (ParenthesisOpen) kind()   {}
func (ParenthesisClose) kind()  {}
func (Identifier) kind()        {}
func (Function) kind()          {}
func (AtKeyword) kind()         {}
func (Hash) kind()              {}
func (StringLiteral) kind()     {}
func (BadString) kind()         {}
func (Percentage) kind()        {}
func (Dimension) kind()         {}
func (Number) kind()            {}
func (URI) kind()               {}
func (UnicodeRange) kind()      {}

type Whitespace struct{}
type CurlyBracketOpen struct{}
type CurlyBracketClose struct{}
type Colon struct{}
type Semicolon struct{}
type Comma struct{}
type ParenthesisOpen struct{}
type ParenthesisClose struct{}

type Identifier struct {
	Value string
}

type Function struct {
	Value string
}

type AtKeyword struct {
	Value string
}

// Hash holds the name following a "#", without the "#".
type Hash struct {
	Value string
}

// StringLiteral holds the body of a quoted string, without its quotes.
type StringLiteral struct {
	Value string
}

type BadString struct{}

type Percentage struct {
	Value float64
}

type Dimension struct {
	Value float64
	Unit  string
}

type Number struct {
	Value float64
}

type URI struct {
	Value string
}

type UnicodeRange struct {
	Value string
}

func (Whitespace) String() string        { return "Whitespace" }
func (CurlyBracketOpen) String() string  { return "CurlyBracketOpen" }
func (CurlyBracketClose) String() string { return "CurlyBracketClose" }
func (Colon) String() string             { return "Colon" }
func (Semicolon) String() string         { return "Semicolon" }
func (Comma) String() string             { return "Comma" }
func (ParenthesisOpen) String() string   { return "ParenthesisOpen" }
func (ParenthesisClose) String() string  { return "ParenthesisClose" }
func (Identifier) String() string        { return "Identifier" }
func (Function) String() string          { return "Function" }
func (AtKeyword) String() string         { return "AtKeyword" }
func (Hash) String() string              { return "Hash" }
func (StringLiteral) String() string     { return "StringLiteral" }
func (BadString) String() string         { return "BadString" }
func (Percentage) String() string        { return "Percentage" }
func (Dimension) String() string         { return "Dimension" }
func (Number) String() string            { return "Number" }
func (URI) String() string               { return "URI" }
func (UnicodeRange) String() string      { return "UnicodeRange" }

// Payload returns the text payload of k, or an empty string if k carries none.
// Numeric kinds return an empty string; use a type switch to read their value.
func Payload(k Kind) string {
	switch k := k.(type) {
	case Identifier:
		return k.Value
	case Function:
		return k.Value
	case AtKeyword:
		return k.Value
	case Hash:
		return k.Value
	case StringLiteral:
		return k.Value
	case URI:
		return k.Value
	case UnicodeRange:
		return k.Value
	}
	return ""
}
