package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// TokenType represents the type of a token in a STIX pattern expression.
type TokenType int

const (
	// TokenEOF represents end of input
	TokenEOF TokenType = iota
	// TokenLBracket represents '[' opening an observation expression
	TokenLBracket
	// TokenRBracket represents ']' closing an observation expression
	TokenRBracket
	// TokenLParen represents a left parenthesis
	TokenLParen
	// TokenRParen represents a right parenthesis
	TokenRParen
	// TokenComma separates list literal elements
	TokenComma
	// TokenAND represents the AND boolean operator
	TokenAND
	// TokenOR represents the OR boolean operator
	TokenOR
	// TokenNOT represents the NOT boolean operator
	TokenNOT
	// TokenFollowedBy joins two observation expressions temporally
	TokenFollowedBy
	// TokenWithin starts a WITHIN n SECONDS qualifier
	TokenWithin
	// TokenRepeats starts a REPEATS n TIMES qualifier
	TokenRepeats
	// TokenTimes is the TIMES keyword of a REPEATS qualifier
	TokenTimes
	// TokenSeconds is the SECONDS keyword of a WITHIN qualifier
	TokenSeconds
	// TokenStartStop starts a STARTSTOP t WITH t qualifier
	TokenStartStop
	// TokenWith is the WITH keyword of a STARTSTOP qualifier
	TokenWith
	// TokenObjectPath is a property path prefixed with an observable type,
	// e.g. file:hashes.MD5 or network-traffic:protocols[0]
	TokenObjectPath
	// TokenOperator is a comparison operator (symbolic or word form)
	TokenOperator
	// TokenString is a single-quoted string literal
	TokenString
	// TokenNumber is an integer or float literal
	TokenNumber
	// TokenBool is a boolean literal
	TokenBool
	// TokenTimestamp is a t'...' timestamp literal
	TokenTimestamp
)

// String returns the string representation of a token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenLBracket:
		return "LBRACKET"
	case TokenRBracket:
		return "RBRACKET"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenComma:
		return "COMMA"
	case TokenAND:
		return "AND"
	case TokenOR:
		return "OR"
	case TokenNOT:
		return "NOT"
	case TokenFollowedBy:
		return "FOLLOWEDBY"
	case TokenWithin:
		return "WITHIN"
	case TokenRepeats:
		return "REPEATS"
	case TokenTimes:
		return "TIMES"
	case TokenSeconds:
		return "SECONDS"
	case TokenStartStop:
		return "STARTSTOP"
	case TokenWith:
		return "WITH"
	case TokenObjectPath:
		return "OBJECT_PATH"
	case TokenOperator:
		return "OPERATOR"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenBool:
		return "BOOL"
	case TokenTimestamp:
		return "TIMESTAMP"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single token in a STIX pattern expression. It carries
// the original value and the byte offset where the token starts so parse
// errors can point at the exact position.
type Token struct {
	// Type is the token type
	Type TokenType
	// Value is the original string value of the token
	Value string
	// Position is the byte offset in the pattern where this token starts
	Position int
}

// String returns a string representation of the token for debugging.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at pos %d", t.Type, t.Value, t.Position)
}

// tokenPattern pairs a token type with the regex that recognizes it.
type tokenPattern struct {
	Type    TokenType
	Pattern *regexp.Regexp
}

var (
	// tokenPatterns defines the regex patterns for each token type, in
	// priority order. Object paths come before keywords so a type token that
	// happens to start with a keyword (e.g. "and-widget:prop") still lexes as
	// a path; keywords come before word operators of the same spelling
	// prefix; symbolic operators are ordered longest first.
	tokenPatterns = []tokenPattern{
		// Timestamp literals: t'2016-06-01T00:00:00Z'
		{TokenTimestamp, regexp.MustCompile(`^t'(?:\\.|[^'\\])*'`)},

		// String literals with \' and \\ escapes
		{TokenString, regexp.MustCompile(`^'(?:\\.|[^'\\])*'`)},

		// Object paths: lowercase hyphenated type, colon, dotted property
		// path with optional list indexes ([0], [*])
		{TokenObjectPath, regexp.MustCompile(`^[a-z][a-z0-9-]*:[a-zA-Z0-9_][a-zA-Z0-9_.-]*(?:\[(?:\d+|\*)\])*`)},

		// Keywords (case-insensitive, matched as whole words)
		{TokenFollowedBy, regexp.MustCompile(`^(?i)\bfollowedby\b`)},
		{TokenStartStop, regexp.MustCompile(`^(?i)\bstartstop\b`)},
		{TokenWithin, regexp.MustCompile(`^(?i)\bwithin\b`)},
		{TokenRepeats, regexp.MustCompile(`^(?i)\brepeats\b`)},
		{TokenSeconds, regexp.MustCompile(`^(?i)\bseconds\b`)},
		{TokenTimes, regexp.MustCompile(`^(?i)\btimes\b`)},
		{TokenWith, regexp.MustCompile(`^(?i)\bwith\b`)},
		{TokenAND, regexp.MustCompile(`^(?i)\band\b`)},
		{TokenOR, regexp.MustCompile(`^(?i)\bor\b`)},
		{TokenNOT, regexp.MustCompile(`^(?i)\bnot\b`)},

		// Word-form comparison operators
		{TokenOperator, regexp.MustCompile(`^(?i)\b(?:issubset|issuperset|matches|like|in)\b`)},

		// Boolean literals
		{TokenBool, regexp.MustCompile(`^(?i)\b(?:true|false)\b`)},

		// Numbers (integers and floats, optionally negative)
		{TokenNumber, regexp.MustCompile(`^-?\d+(?:\.\d+)?`)},

		// Symbolic comparison operators, longest first
		{TokenOperator, regexp.MustCompile(`^(?:<=|>=|!=|=|<|>)`)},

		// Punctuation
		{TokenLBracket, regexp.MustCompile(`^\[`)},
		{TokenRBracket, regexp.MustCompile(`^\]`)},
		{TokenLParen, regexp.MustCompile(`^\(`)},
		{TokenRParen, regexp.MustCompile(`^\)`)},
		{TokenComma, regexp.MustCompile(`^,`)},
	}

	// whitespacePattern matches whitespace between tokens
	whitespacePattern = regexp.MustCompile(`^\s+`)

	// unterminatedString detects an opening quote with no closing quote so
	// the lexer can report it precisely instead of failing on the quote char
	unterminatedString = regexp.MustCompile(`^t?'`)
)

// Tokenize converts a STIX pattern string into a slice of tokens. It performs
// lexical analysis with the following properties:
//   - Case-insensitive keyword and word-operator matching
//   - Keyword boundary detection ("android:prop" never matches AND)
//   - Position tracking for precise error reporting
//
// Returns the tokens with a trailing EOF token, or a *LexError carrying the
// byte offset of the first unterminated string literal or unrecognized
// character.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	position := 0

	for position < len(input) {
		if match := whitespacePattern.FindString(input[position:]); match != "" {
			position += len(match)
			continue
		}

		matched := false
		for _, tp := range tokenPatterns {
			if match := tp.Pattern.FindString(input[position:]); match != "" {
				tokens = append(tokens, Token{
					Type:     tp.Type,
					Value:    match,
					Position: position,
				})
				position += len(match)
				matched = true
				break
			}
		}

		if !matched {
			if unterminatedString.MatchString(input[position:]) {
				return nil, &LexError{
					Offset:  position,
					Message: "unterminated string literal",
					Context: lexContext(input, position),
				}
			}
			return nil, &LexError{
				Offset:  position,
				Message: fmt.Sprintf("unrecognized character %q", rune(input[position])),
				Context: lexContext(input, position),
			}
		}
	}

	tokens = append(tokens, Token{Type: TokenEOF, Value: "", Position: position})
	return tokens, nil
}

// lexContext extracts up to 20 bytes either side of the error position for
// readable error messages.
func lexContext(input string, position int) string {
	start := position - 20
	if start < 0 {
		start = 0
	}
	end := position + 20
	if end > len(input) {
		end = len(input)
	}
	return input[start:end]
}

// unquoteString strips the surrounding single quotes from a lexed string
// literal and resolves \' and \\ escapes.
func unquoteString(raw string) string {
	inner := raw[1 : len(raw)-1]
	if !strings.Contains(inner, `\`) {
		return inner
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

// quoteString renders a string value as a single-quoted pattern literal with
// backslash and quote characters escaped.
func quoteString(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\'', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(value[i])
	}
	b.WriteByte('\'')
	return b.String()
}
