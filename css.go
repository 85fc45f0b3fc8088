package css

import (
	"errors"
	"fmt"

	"github.com/PierreLouisLetoquart/minicss/minify"
	"github.com/PierreLouisLetoquart/minicss/scanner"
	"github.com/PierreLouisLetoquart/minicss/token"
)

// Mode selects a minification strategy.
type Mode string

const (
	// TextMode minifies character by character and never fails.
	TextMode Mode = "text"

	// TokenMode scans the input and reprints the tokens.
	TokenMode Mode = "tokens"
)

// Tokenize returns all tokens in src.
func Tokenize(src string) ([]token.Token, error) {
	return scanner.Tokenize(src)
}

// Minify shrinks src using the given mode.
func Minify(src string, mode Mode) (string, error) {
	switch mode {
	case TextMode, "":
		return minify.Text(src), nil
	case TokenMode:
		return minify.Tokens(src)
	}
	return "", fmt.Errorf("unknown minify mode: %q", mode)
}

// Error represents a scan error with its position in a named source.
type Error struct {
	Name   string
	Line   int
	Column int
	Err    error
}

// Error returns the formatted string error message.
func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Name, e.Err)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Name, e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying scanner error.
func (e *Error) Unwrap() error {
	return e.Err
}

// positioner is implemented by scanner errors that know where they occurred.
type positioner interface {
	Position() (line, column int)
}

// WithSource attaches the source name, and the position if known, to a
// scanner error. Other errors, and nil, are returned unchanged.
func WithSource(name string, err error) error {
	var serr scanner.Error
	if !errors.As(err, &serr) {
		return err
	}

	e := &Error{Name: name, Err: err}
	if p, ok := serr.(positioner); ok {
		e.Line, e.Column = p.Position()
	}
	return e
}
