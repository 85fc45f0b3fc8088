// Package minify shrinks CSS text.
//
// Text works directly on characters and never fails. Tokens scans the input
// first and reprints the token stream, so it rejects anything the scanner
// cannot read.
package minify

import (
	"strings"

	"github.com/PierreLouisLetoquart/minicss/printer"
	"github.com/PierreLouisLetoquart/minicss/scanner"
)

// Text removes newlines, block comments and spaces that follow punctuation.
func Text(src string) string {
	var buf strings.Builder
	buf.Grow(len(src))

	rs := []rune(src)
	prev := ' '
	for i := 0; i < len(rs); i++ {
		ch := rs[i]
		if ch == '\n' {
			continue
		} else if ch == ' ' && isUnnecessarySpace(prev) {
			continue
		} else if ch == '/' && i+1 < len(rs) && rs[i+1] == '*' {
			i = skipComment(rs, i+2)
			continue
		}

		_, _ = buf.WriteRune(ch)
		prev = ch
	}

	s := strings.ReplaceAll(buf.String(), ";}", "}")
	return strings.ReplaceAll(s, " {", "{")
}

// skipComment returns the index of the last character of the comment body
// starting at i. An unclosed comment runs to the end of rs.
func skipComment(rs []rune, i int) int {
	for ; i < len(rs); i++ {
		if rs[i] == '*' && i+1 < len(rs) && rs[i+1] == '/' {
			return i + 1
		}
	}
	return len(rs)
}

// isUnnecessarySpace returns true if a space following prev can be dropped.
func isUnnecessarySpace(prev rune) bool {
	switch prev {
	case ';', '{', '}', '(', ')', ',', ':', '=', '+', '-', '*', '/', '%',
		'!', '>', '<', '&', '|', '^', '~', '[', ']', ' ':
		return true
	}
	return false
}

// Tokens scans src and prints the tokens back out compactly.
// Lexical errors from the scanner are returned unchanged.
func Tokens(src string) (string, error) {
	toks, err := scanner.Tokenize(src)
	if err != nil {
		return "", err
	}
	return printer.String(src, toks), nil
}
