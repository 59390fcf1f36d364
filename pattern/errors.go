package pattern

import "fmt"

// LexError reports an unrecognized character or unterminated literal found
// during lexical analysis.
type LexError struct {
	// Offset is the byte offset where the invalid input starts
	Offset int
	// Message describes the lexical problem
	Message string
	// Context provides surrounding text for debugging
	Context string
}

// Error implements the error interface for LexError.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s (context: %q)", e.Offset, e.Message, e.Context)
}

// Is implements error matching for errors.Is().
// Returns true if the target is a LexError at the same offset.
func (e *LexError) Is(target error) bool {
	t, ok := target.(*LexError)
	if !ok {
		return false
	}
	return e.Offset == t.Offset
}

// ParseError reports a syntax error during parsing of a pattern expression:
// what was expected at a position versus what was found.
type ParseError struct {
	// Position is the byte offset in the pattern where the error occurred
	Position int
	// Expected describes what token(s) were expected at this position
	Expected string
	// Found is the token that was actually encountered
	Found string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: expected %s but found %s", e.Position, e.Expected, e.Found)
}

// Is implements error matching for errors.Is().
// Returns true if the target is a ParseError at the same position.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Position == t.Position
}

// SyntaxError is the umbrella error surfaced by Validate: it wraps the
// underlying LexError or ParseError together with the offending pattern text.
type SyntaxError struct {
	// Pattern is the pattern text that failed validation
	Pattern string
	// Err is the underlying lex or parse error
	Err error
}

// Error implements the error interface for SyntaxError.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying lex or parse error for errors.As matching.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// newParseError builds a ParseError from the unexpected token.
func newParseError(tok Token, expected string) *ParseError {
	found := tok.Type.String()
	if tok.Value != "" {
		found = fmt.Sprintf("%s (%q)", tok.Type, tok.Value)
	}
	return &ParseError{Position: tok.Position, Expected: expected, Found: found}
}
