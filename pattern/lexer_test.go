package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_SimpleComparison(t *testing.T) {
	tokens, err := Tokenize("[file:hashes.MD5 = 'abc123']")
	require.NoError(t, err)

	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	assert.Equal(t, []TokenType{
		TokenLBracket, TokenObjectPath, TokenOperator, TokenString, TokenRBracket, TokenEOF,
	}, types)

	assert.Equal(t, "file:hashes.MD5", tokens[1].Value)
	assert.Equal(t, 1, tokens[1].Position)
	assert.Equal(t, "'abc123'", tokens[3].Value)
}

func TestTokenize_KeywordsAndOperators(t *testing.T) {
	tokens, err := Tokenize("[a:x = 1 AND b:y IN (2, 3)] WITHIN 300 SECONDS")
	require.NoError(t, err)

	var keywords []TokenType
	for _, tok := range tokens {
		switch tok.Type {
		case TokenAND, TokenWithin, TokenSeconds:
			keywords = append(keywords, tok.Type)
		}
	}
	assert.Equal(t, []TokenType{TokenAND, TokenWithin, TokenSeconds}, keywords)
}

func TestTokenize_CaseInsensitiveKeywords(t *testing.T) {
	tokens, err := Tokenize("[a:x = 1 and b:y = 2 or not c:z like 'x%']")
	require.NoError(t, err)

	var found []TokenType
	for _, tok := range tokens {
		switch tok.Type {
		case TokenAND, TokenOR, TokenNOT, TokenOperator:
			found = append(found, tok.Type)
		}
	}
	// =, and, =, or, not, like
	assert.Equal(t, []TokenType{TokenOperator, TokenAND, TokenOperator, TokenOR, TokenNOT, TokenOperator}, found)
}

func TestTokenize_KeywordBoundary(t *testing.T) {
	// Object types that start with keyword spellings must lex as paths,
	// not as keyword + garbage.
	tokens, err := Tokenize("[android:version = 9]")
	require.NoError(t, err)
	assert.Equal(t, TokenObjectPath, tokens[1].Type)
	assert.Equal(t, "android:version", tokens[1].Value)
}

func TestTokenize_IndexedPath(t *testing.T) {
	tokens, err := Tokenize("[network-traffic:protocols[0] = 'tcp']")
	require.NoError(t, err)
	assert.Equal(t, "network-traffic:protocols[0]", tokens[1].Value)
}

func TestTokenize_TimestampLiteral(t *testing.T) {
	tokens, err := Tokenize("STARTSTOP t'2016-06-01T00:00:00Z' WITH t'2016-06-02T00:00:00Z'")
	require.NoError(t, err)
	assert.Equal(t, TokenStartStop, tokens[0].Type)
	assert.Equal(t, TokenTimestamp, tokens[1].Type)
	assert.Equal(t, "t'2016-06-01T00:00:00Z'", tokens[1].Value)
	assert.Equal(t, TokenWith, tokens[2].Type)
	assert.Equal(t, TokenTimestamp, tokens[3].Type)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := Tokenize("[file:name = 'oops]")
	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 13, lexErr.Offset)
	assert.Contains(t, lexErr.Error(), "unterminated string literal")
}

func TestTokenize_UnrecognizedCharacter(t *testing.T) {
	_, err := Tokenize("[file:name = #]")
	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, 13, lexErr.Offset)
}

func TestTokenize_EmptyInput(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Type)
}

func TestQuoteUnquoteString(t *testing.T) {
	tests := []struct {
		value  string
		quoted string
	}{
		{"plain", "'plain'"},
		{"it's", `'it\'s'`},
		{`back\slash`, `'back\\slash'`},
		{"", "''"},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.quoted, quoteString(tc.value))
			assert.Equal(t, tc.value, unquoteString(tc.quoted))
		})
	}
}
