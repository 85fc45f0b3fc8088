package scanner

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/PierreLouisLetoquart/minicss/token"
)

// eof represents the end of the input.
const eof rune = -1

// Scanner converts CSS text into tokens, one per call to Scan.
//
// The scanner only moves forward. Whitespace and block comments are skipped
// and never returned as tokens.
type Scanner struct {
	input string

	pos    int // byte offset of the next character
	line   int // 1-based
	column int // 1-based, counted in code points
}

// New returns a new instance of Scanner reading from input.
func New(input string) *Scanner {
	return &Scanner{
		input:  input,
		line:   1,
		column: 1,
	}
}

// Scan returns the next token in the input.
//
// ErrEOF is returned once the input is exhausted. Any other error is
// terminal: the scanner does not resynchronize after it.
func (s *Scanner) Scan() (token.Token, error) {
	if err := s.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}

	start := s.pos
	ch := s.read()

	switch {
	case ch == eof:
		return token.Token{}, ErrEOF
	case ch == '{':
		return token.New(token.CurlyBracketOpen{}, start, s.pos), nil
	case ch == '}':
		return token.New(token.CurlyBracketClose{}, start, s.pos), nil
	case ch == ':':
		return token.New(token.Colon{}, start, s.pos), nil
	case ch == ';':
		return token.New(token.Semicolon{}, start, s.pos), nil
	case ch == ',':
		return token.New(token.Comma{}, start, s.pos), nil
	case ch == '(':
		return token.New(token.ParenthesisOpen{}, start, s.pos), nil
	case ch == ')':
		return token.New(token.ParenthesisClose{}, start, s.pos), nil
	case isLetter(ch) || ch == '_':
		return s.scanIdent(start), nil
	case isDigit(ch) || ch == '-':
		return s.scanNumber(start)
	case ch == '"' || ch == '\'':
		return s.scanString(start, ch)
	case ch == '#':
		return token.New(token.Hash{Value: s.scanName()}, start, s.pos), nil
	case ch == '@':
		return token.New(token.AtKeyword{Value: s.scanName()}, start, s.pos), nil
	}
	return token.Token{}, NewUnexpectedCharacterError(ch, s.line, s.column)
}

// skipWhitespaceAndComments consumes any run of whitespace and block comments.
func (s *Scanner) skipWhitespaceAndComments() error {
	for {
		if ch := s.peek(); isWhitespace(ch) {
			s.read()
		} else if ch == '/' && s.peekNext() == '*' {
			line, column := s.line, s.column
			s.read()
			s.read()
			if !s.scanComment() {
				return UnclosedCommentError{Line: line, Column: column}
			}
		} else {
			return nil
		}
	}
}

// scanComment consumes all characters up to "*/", inclusive.
// This function assumes that the initial "/*" have just been consumed.
// Returns false if the input ends before the comment is closed.
func (s *Scanner) scanComment() bool {
	for {
		ch := s.read()
		if ch == eof {
			return false
		} else if ch == '*' && s.peek() == '/' {
			s.read()
			return true
		}
	}
}

// scanIdent consumes an identifier.
// This assumes the first character has already been consumed.
func (s *Scanner) scanIdent(start int) token.Token {
	s.scanName()
	return token.New(token.Identifier{Value: s.input[start:s.pos]}, start, s.pos)
}

// scanName consumes contiguous name characters and returns them.
// The name may be empty.
func (s *Scanner) scanName() string {
	start := s.pos
	for isName(s.peek()) {
		s.read()
	}
	return s.input[start:s.pos]
}

// scanNumber consumes a number.
//
// This assumes that the first digit or "-" has already been consumed.
// Digits and full stops are consumed greedily; the result must parse as a
// 64-bit float.
func (s *Scanner) scanNumber(start int) (token.Token, error) {
	for ch := s.peek(); isDigit(ch) || ch == '.'; ch = s.peek() {
		s.read()
	}

	num, err := strconv.ParseFloat(s.input[start:s.pos], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token.Token{}, NewGenericError("Invalid number")
	}
	return token.New(token.Number{Value: num}, start, s.pos), nil
}

// scanString consumes a quoted string.
//
// This assumes that the opening quote has already been consumed. Everything
// up to the next matching quote is the string body; escapes and newlines
// are not interpreted.
func (s *Scanner) scanString(start int, ending rune) (token.Token, error) {
	for {
		ch := s.read()
		if ch == eof {
			return token.Token{}, UnclosedStringError{Line: s.line, Column: s.column}
		} else if ch == ending {
			break
		}
	}

	// Both quotes are single bytes so the body is easy to slice out.
	value := s.input[start+1 : s.pos-1]
	return token.New(token.StringLiteral{Value: value}, start, s.pos), nil
}

// read consumes the next character and updates the position.
// Returns eof if the input is exhausted.
func (s *Scanner) read() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	ch, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += size

	// Track scanner position.
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

// peek returns the next character without consuming it.
func (s *Scanner) peek() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	ch, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return ch
}

// peekNext returns the character after the next one without consuming either.
func (s *Scanner) peekNext() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	_, size := utf8.DecodeRuneInString(s.input[s.pos:])
	if s.pos+size >= len(s.input) {
		return eof
	}
	ch, _ := utf8.DecodeRuneInString(s.input[s.pos+size:])
	return ch
}

// Offset returns the byte offset of the next unread character.
func (s *Scanner) Offset() int { return s.pos }

// Line returns the 1-based line of the next unread character.
func (s *Scanner) Line() int { return s.line }

// Column returns the 1-based column of the next unread character.
func (s *Scanner) Column() int { return s.column }

// Tokenize scans input until the end and returns every token.
// The first lexical error stops the scan and is returned with the tokens
// read before it.
func Tokenize(input string) ([]token.Token, error) {
	var toks []token.Token
	s := New(input)
	for {
		tok, err := s.Scan()
		if IsEOF(err) {
			return toks, nil
		} else if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

// isWhitespace returns true if the rune is a whitespace character.
func isWhitespace(ch rune) bool {
	return ch != eof && unicode.IsSpace(ch)
}

// isLetter returns true if the rune is alphabetic. Letter numbers such as
// Roman numerals and other alphabetic marks count as letters.
func isLetter(ch rune) bool {
	if ch == eof {
		return false
	}
	return unicode.IsLetter(ch) || unicode.In(ch, unicode.Nl, unicode.Other_Alphabetic)
}

// isDigit returns true if the rune is a numeric character.
func isDigit(ch rune) bool {
	return ch != eof && unicode.IsNumber(ch)
}

// isName returns true if the character can continue a name.
func isName(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '-'
}
