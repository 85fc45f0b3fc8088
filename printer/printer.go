package printer

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/PierreLouisLetoquart/minicss/token"
)

// Printer writes a token stream back out as compact CSS text.
//
// Tokens are written with no whitespace between them except where the
// source had a gap that carries meaning: between two word-like tokens, before
// a "(" following a word, and before a ":" following a word in a selector.
// Tokens with empty ranges count as separated from word-like neighbours. A
// semicolon directly before a closing curly bracket is dropped.
type Printer struct {
	// Source is the text the tokens were scanned from. When set, numeric
	// tokens with a non-empty range are written as they appear in it.
	Source string
}

// Print writes toks to w.
func (p *Printer) Print(w io.Writer, toks []token.Token) (err error) {
	var prev *token.Token
	for i := range toks {
		tok := &toks[i]

		// Drop a trailing semicolon in a block.
		if _, ok := tok.Kind.(token.Semicolon); ok && i+1 < len(toks) {
			if _, ok := toks[i+1].Kind.(token.CurlyBracketClose); ok {
				continue
			}
		}

		if prev != nil && needsSpace(prev, toks, i) {
			if _, err = w.Write([]byte{' '}); err != nil {
				return err
			}
		}
		if err = p.printToken(w, tok); err != nil {
			return err
		}
		prev = tok
	}
	return nil
}

// needsSpace returns true if a space must separate prev from toks[i].
func needsSpace(prev *token.Token, toks []token.Token, i int) bool {
	tok := &toks[i]
	if !isWord(prev.Kind) {
		return false
	}
	switch tok.Kind.(type) {
	case token.ParenthesisOpen:
		return separated(prev, tok)
	case token.Colon:
		return separated(prev, tok) && inSelector(toks, i)
	}
	return isWord(tok.Kind) && !adjacent(prev, tok)
}

// inSelector returns true if toks[i] is followed by a "{" before any ";" or
// "}", meaning it belongs to a rule prelude rather than a declaration.
func inSelector(toks []token.Token, i int) bool {
	for _, tok := range toks[i+1:] {
		switch tok.Kind.(type) {
		case token.CurlyBracketOpen:
			return true
		case token.Semicolon, token.CurlyBracketClose:
			return false
		}
	}
	return false
}

// printToken writes the CSS text of a single token.
func (p *Printer) printToken(w io.Writer, tok *token.Token) (err error) {
	switch tok.Kind.(type) {
	case token.Number, token.Percentage, token.Dimension:
		if r := tok.Range; p.Source != "" && r.Len() > 0 && r.End <= len(p.Source) {
			_, err = io.WriteString(w, tok.Text(p.Source))
			return err
		}
	}
	return p.printKind(w, tok.Kind)
}

// printKind writes the CSS text of a single token kind.
func (p *Printer) printKind(w io.Writer, k token.Kind) (err error) {
	switch k := k.(type) {
	case token.Identifier:
		_, err = io.WriteString(w, k.Value)
	case token.Function:
		_, err = io.WriteString(w, k.Value+"(")
	case token.AtKeyword:
		_, err = io.WriteString(w, "@"+k.Value)
	case token.Hash:
		_, err = io.WriteString(w, "#"+k.Value)
	case token.StringLiteral:
		_, err = io.WriteString(w, quote(k.Value))
	case token.BadString:
		_, err = w.Write([]byte("''"))
	case token.Number:
		_, err = io.WriteString(w, formatNumber(k.Value))
	case token.Percentage:
		_, err = io.WriteString(w, formatNumber(k.Value)+"%")
	case token.Dimension:
		_, err = io.WriteString(w, formatNumber(k.Value)+k.Unit)
	case token.URI:
		_, err = io.WriteString(w, "url("+k.Value+")")
	case token.UnicodeRange:
		_, err = io.WriteString(w, k.Value)
	case token.Whitespace:
		_, err = w.Write([]byte{' '})
	case token.Colon:
		_, err = w.Write([]byte{':'})
	case token.Semicolon:
		_, err = w.Write([]byte{';'})
	case token.Comma:
		_, err = w.Write([]byte{','})
	case token.ParenthesisOpen:
		_, err = w.Write([]byte{'('})
	case token.ParenthesisClose:
		_, err = w.Write([]byte{')'})
	case token.CurlyBracketOpen:
		_, err = w.Write([]byte{'{'})
	case token.CurlyBracketClose:
		_, err = w.Write([]byte{'}'})
	}
	return
}

// isWord returns true if a token of kind k would merge with an adjacent
// word-like token when printed without a separator.
func isWord(k token.Kind) bool {
	switch k.(type) {
	case token.Identifier, token.AtKeyword, token.Hash, token.Number,
		token.Percentage, token.Dimension, token.UnicodeRange:
		return true
	}
	return false
}

// adjacent returns true if b directly followed a in the source.
func adjacent(a, b *token.Token) bool {
	return b.Range.Len() > 0 && a.Range.End == b.Range.Start
}

// separated returns true if the source had a gap between a and b.
// Tokens with empty ranges have no source position and are never separated.
func separated(a, b *token.Token) bool {
	return a.Range.Len() > 0 && b.Range.Len() > 0 && a.Range.End < b.Range.Start
}

// quote wraps v in double quotes, or single quotes if v contains a double quote.
func quote(v string) string {
	if strings.ContainsRune(v, '"') {
		return "'" + v + "'"
	}
	return `"` + v + `"`
}

// formatNumber returns the shortest representation of f.
// It is only used for tokens that have no source text.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String prints toks, scanned from src, to a string.
// src may be empty for tokens that were not scanned.
func String(src string, toks []token.Token) string {
	p := Printer{Source: src}
	var buf bytes.Buffer
	_ = p.Print(&buf, toks)
	return buf.String()
}
