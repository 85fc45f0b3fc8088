package scanner

import (
	"errors"
	"fmt"
)

// ErrEOF is returned by Scan when the input is exhausted.
// It marks the end of the token stream rather than malformed input.
var ErrEOF = EndOfFileError{}

// Error represents a failure reported by the scanner.
// The set of implementations is closed to the types in this package.
type Error interface {
	error
	lexError()
}

func (UnexpectedCharacterError) lexError() {}
func (GenericError) lexError()             {}
func (EndOfFileError) lexError()           {}
func (UnclosedStringError) lexError()      {}
func (UnclosedCommentError) lexError()     {}

// UnexpectedCharacterError is returned when a character cannot start a token.
// Line and Column point just past the offending character.
type UnexpectedCharacterError struct {
	Char   rune
	Line   int
	Column int
}

// NewUnexpectedCharacterError returns an error for ch at the given position.
func NewUnexpectedCharacterError(ch rune, line, column int) UnexpectedCharacterError {
	return UnexpectedCharacterError{Char: ch, Line: line, Column: column}
}

func (e UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at line %d, column %d", e.Char, e.Line, e.Column)
}

// Position returns the line and column of the error.
func (e UnexpectedCharacterError) Position() (line, column int) {
	return e.Line, e.Column
}

// GenericError is a catch-all error carrying only a message.
type GenericError struct {
	Message string
}

// NewGenericError returns a GenericError with the given message.
func NewGenericError(msg string) GenericError {
	return GenericError{Message: msg}
}

func (e GenericError) Error() string {
	return e.Message
}

// EndOfFileError signals that there are no more tokens.
type EndOfFileError struct{}

func (EndOfFileError) Error() string {
	return "end of file"
}

// UnclosedStringError is returned when the input ends inside a string.
// Line and Column are the position at the end of the input.
type UnclosedStringError struct {
	Line   int
	Column int
}

func (e UnclosedStringError) Error() string {
	return fmt.Sprintf("unclosed string at line %d, column %d", e.Line, e.Column)
}

// Position returns the line and column of the error.
func (e UnclosedStringError) Position() (line, column int) {
	return e.Line, e.Column
}

// UnclosedCommentError is returned when the input ends inside a block comment.
// Line and Column point at the "/" that opened the comment.
type UnclosedCommentError struct {
	Line   int
	Column int
}

func (e UnclosedCommentError) Error() string {
	return fmt.Sprintf("unclosed comment at line %d, column %d", e.Line, e.Column)
}

// Position returns the line and column of the error.
func (e UnclosedCommentError) Position() (line, column int) {
	return e.Line, e.Column
}

// IsEOF returns true if err marks the end of the token stream.
func IsEOF(err error) bool {
	return errors.Is(err, ErrEOF)
}
