package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stixcore/core"
	"stixcore/vocab"
)

func TestValidate_AcceptsValidPatterns(t *testing.T) {
	inputs := []string{
		"[file:hashes.MD5 = 'abc123']",
		"[ipv4-addr:value = '192.168.1.1']",
		"[domain-name:value = 'evil.com']",
		"[file:name = 'malware.exe' AND file:size > 1000]",
		"[ipv4-addr:value = '10.0.0.1' OR ipv4-addr:value = '10.0.0.2']",
		"[network-traffic:src_port = 443]",
		"[network-traffic:protocols[0] = 'tcp']",
		"[process:name = 'cmd.exe']",
		"[process:pid > 100]",
		"[x509-certificate:hashes.SHA-256 = 'abc...']",
		"[x509-certificate:subject = 'CN=Evil Corp']",
		"[file:size >= 1000]",
		"[file:size <= 1000]",
		"[file:size != 1000]",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.NoError(t, Validate(input))
		})
	}
}

func TestValidate_RejectsInvalidPatterns(t *testing.T) {
	inputs := []string{
		"file:hashes.MD5 = 'abc123'", // missing brackets
		"[]",
		"[  ]",
		"[file-hashes.MD5 = 'abc123']", // missing colon
		"[file:name]",                  // missing operator
		"[file:name = 'oops]",          // unterminated string
		"[file:name = 'x' AND]",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			err := Validate(input)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr))
		})
	}
}

func TestValidate_UnwrapsUnderlyingError(t *testing.T) {
	err := Validate("[file:name = 'oops]")
	var lexErr *LexError
	assert.True(t, errors.As(err, &lexErr))

	err = Validate("[file:name 'x']")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestValidateWithRegistry_TypeCheck(t *testing.T) {
	reg := core.NewTypeRegistry(vocab.ObservableTypes()...)

	assert.NoError(t, ValidateWithRegistry("[file:hashes.MD5 = 'abc123']", reg))
	assert.NoError(t, ValidateWithRegistry("[windows-registry-key:key = 'HKLM\\\\Run']", reg))

	err := ValidateWithRegistry("[invalid-type:prop = 'value']", reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown observable object type")
}

func TestValidateWithRegistry_NilRegistrySkipsTypeCheck(t *testing.T) {
	assert.NoError(t, ValidateWithRegistry("[made-up-type:prop = 'value']", nil))
}

func TestValidateWithRegistry_MatchesRegex(t *testing.T) {
	assert.NoError(t, ValidateWithRegistry("[url:value MATCHES '^https?://evil']", nil))

	err := ValidateWithRegistry("[url:value MATCHES '^(unclosed']", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid regex")

	err = ValidateWithRegistry("[url:value MATCHES 42]", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a string literal")
}

func TestValidateWithRegistry_MatchesRegexEvaluationLimit(t *testing.T) {
	// Compiles fine but backtracks exponentially against the trial input.
	err := ValidateWithRegistry(`[url:value MATCHES '^(a+)+$']`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluation limit")
}
