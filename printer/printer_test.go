package printer_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/PierreLouisLetoquart/minicss/printer"
	"github.com/PierreLouisLetoquart/minicss/scanner"
	"github.com/PierreLouisLetoquart/minicss/token"
)

// Ensure than the printer prints tokens correctly.
func TestPrinter_Print(t *testing.T) {
	var tests = []struct {
		in []token.Token
		s  string
	}{
		{in: nil, s: ``},

		// Individual tokens.
		{in: []token.Token{{Kind: token.Identifier{Value: "foo"}}}, s: `foo`},
		{in: []token.Token{{Kind: token.Function{Value: "rgb"}}}, s: `rgb(`},
		{in: []token.Token{{Kind: token.AtKeyword{Value: "☃"}}}, s: `@☃`},
		{in: []token.Token{{Kind: token.Hash{Value: "fff"}}}, s: `#fff`},
		{in: []token.Token{{Kind: token.StringLiteral{Value: "it's"}}}, s: `"it's"`},
		{in: []token.Token{{Kind: token.StringLiteral{Value: `say "hi"`}}}, s: `'say "hi"'`},
		{in: []token.Token{{Kind: token.BadString{}}}, s: `''`},
		{in: []token.Token{{Kind: token.Number{Value: -12.5}}}, s: `-12.5`},
		{in: []token.Token{{Kind: token.Percentage{Value: 50}}}, s: `50%`},
		{in: []token.Token{{Kind: token.Dimension{Value: 1.5, Unit: "em"}}}, s: `1.5em`},
		{in: []token.Token{{Kind: token.URI{Value: "a.png"}}}, s: `url(a.png)`},
		{in: []token.Token{{Kind: token.UnicodeRange{Value: "U+0-7F"}}}, s: `U+0-7F`},
		{in: []token.Token{{Kind: token.Whitespace{}}}, s: ` `},
		{in: []token.Token{
			{Kind: token.CurlyBracketOpen{}},
			{Kind: token.Colon{}},
			{Kind: token.Semicolon{}},
			{Kind: token.Comma{}},
			{Kind: token.ParenthesisOpen{}},
			{Kind: token.ParenthesisClose{}},
			{Kind: token.CurlyBracketClose{}},
		}, s: `{:;,()}`},

		// Synthetic word tokens are always separated.
		{in: []token.Token{
			{Kind: token.Identifier{Value: "solid"}},
			{Kind: token.Number{Value: 1}},
			{Kind: token.Hash{Value: "000"}},
		}, s: `solid 1 #000`},

		// Synthetic tokens have no gaps before colons or parentheses.
		{in: []token.Token{
			{Kind: token.Identifier{Value: "color"}},
			{Kind: token.Colon{}},
			{Kind: token.Identifier{Value: "rgb"}},
			{Kind: token.ParenthesisOpen{}},
			{Kind: token.Number{Value: 0}},
			{Kind: token.ParenthesisClose{}},
		}, s: `color:rgb(0)`},

		// Trailing semicolons are dropped.
		{in: []token.Token{
			{Kind: token.Identifier{Value: "a"}},
			{Kind: token.Semicolon{}},
			{Kind: token.CurlyBracketClose{}},
			{Kind: token.Semicolon{}},
		}, s: `a};`},
	}

	for i, tt := range tests {
		var p printer.Printer
		var buf bytes.Buffer
		if err := p.Print(&buf, tt.in); err != nil {
			t.Errorf("%d. unexpected error: %s", i, err)
		} else if diff := cmp.Diff(tt.s, buf.String()); diff != "" {
			t.Errorf("%d. output mismatch (-want +got):\n%s", i, diff)
		}
	}
}

// Ensure that scanned stylesheets are printed compactly.
func TestString(t *testing.T) {
	var tests = []struct {
		in string
		s  string
	}{
		{in: `a { color : red ; }`, s: `a{color:red}`},
		{in: "@media screen {\n  #nav { margin: 0 -1.50 ; }\n}\n", s: `@media screen{#nav{margin:0 -1.50}}`},
		{in: `p{width:10px}`, s: `p{width:10px}`},
		{in: `p { border: 1 solid #ccc; font: 'Open Sans' , serif }`, s: `p{border:1 solid #ccc;font:"Open Sans",serif}`},
		{in: `/* c */ h1 , h2 { } /* trailer */`, s: `h1,h2{}`},
		{in: `@media screen and (max-width: 600px) { a { b: c } }`, s: `@media screen and (max-width:600px){a{b:c}}`},
		{in: `div :hover { a: b }`, s: `div :hover{a:b}`},
		{in: `div:hover { a : b }`, s: `div:hover{a:b}`},
		{in: `@media print { p :first { a : b } }`, s: `@media print{p :first{a:b}}`},
		{in: `a { z-index: 12345678901234567890 }`, s: `a{z-index:12345678901234567890}`},
		{in: "a { width: 1" + strings.Repeat("0", 400) + " }", s: "a{width:1" + strings.Repeat("0", 400) + "}"},
	}

	for i, tt := range tests {
		toks, err := scanner.Tokenize(tt.in)
		if err != nil {
			t.Fatalf("%d. unexpected error: %s", i, err)
		}
		if diff := cmp.Diff(tt.s, printer.String(tt.in, toks)); diff != "" {
			t.Errorf("%d. <%q> output mismatch (-want +got):\n%s", i, tt.in, diff)
		}
	}
}

// Ensure that numbers are written from the source text when it is known.
func TestPrinter_Print_Source(t *testing.T) {
	toks := []token.Token{
		token.New(token.Number{Value: 1.5}, 0, 4),
		token.New(token.Number{Value: 2}, 5, 6),
		{Kind: token.Number{Value: 0.25}},
	}

	p := printer.Printer{Source: "1.50 2"}
	var buf bytes.Buffer
	if err := p.Print(&buf, toks); err != nil {
		t.Fatal(err)
	} else if diff := cmp.Diff(`1.50 2 0.25`, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

// Ensure that write errors are returned.
func TestPrinter_Print_WriteError(t *testing.T) {
	var p printer.Printer
	err := p.Print(errWriter{}, []token.Token{{Kind: token.Identifier{Value: "a"}}})
	if !errors.Is(err, errWrite) {
		t.Fatalf("unexpected error: %v", err)
	}
}

var errWrite = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }
