/*
Package css implements a small CSS tokenizer and minifier. It is meant to be
a low-level library for turning raw CSS text into positioned tokens and for
shrinking stylesheets.


Basics

Tokenizing happens in a single forward pass. The scanner reads code points
from an in-memory string and returns one token per call to Scan. Whitespace
and block comments are skipped and never returned. Every token carries the
half-open byte range it was read from, so the source text of a token can
always be recovered with token.Range.Text.

The end of the input is reported with scanner.ErrEOF. Any other error means
the input is malformed and the scan is over: the scanner does not try to
recover.


Tokens

The token kinds are a closed set of value types implementing token.Kind.
Structural kinds such as token.CurlyBracketOpen carry no payload. Identifier,
AtKeyword, Hash and StringLiteral carry the text read from the source, with
the leading "@" or "#" and any quotes removed. Number carries its parsed
float64 value.

Several kinds (Whitespace, BadString, Function, Percentage, Dimension, URI
and UnicodeRange) are never produced by the scanner. They exist so that
printers and type switches can already handle them.


Minifying

Two minifiers are provided. minify.Text works on raw characters, dropping
newlines, comments and spaces after punctuation. It accepts any input.
minify.Tokens scans the input and prints the token stream back out with the
printer package, so its output is only produced for input the scanner can
read.
*/
package css
