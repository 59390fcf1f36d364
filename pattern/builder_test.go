package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleAnd(t *testing.T) {
	pat, err := NewBuilder().
		Compare("file", "name", OpEqual, Str("malware.exe")).
		And().
		Compare("file", "size", OpGreater, Int(1000)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "[file:name = 'malware.exe' AND file:size > 1000]", pat.String())

	reparsed, err := Parse(pat.String())
	require.NoError(t, err)
	assert.Equal(t, pat, reparsed)
}

// The builder must apply parser precedence: a AND b OR c groups as
// (a AND b) OR c.
func TestBuilder_PrecedenceMatchesParser(t *testing.T) {
	built, err := NewBuilder().
		Compare("a", "x", OpEqual, Int(1)).
		And().
		Compare("b", "y", OpEqual, Int(2)).
		Or().
		Compare("c", "z", OpEqual, Int(3)).
		Build()
	require.NoError(t, err)

	parsed := mustParse(t, "[a:x = 1 AND b:y = 2 OR c:z = 3]")
	assert.Equal(t, parsed, built)
}

func TestBuilder_OrThenAnd(t *testing.T) {
	built, err := NewBuilder().
		Compare("a", "x", OpEqual, Int(1)).
		Or().
		Compare("b", "y", OpEqual, Int(2)).
		And().
		Compare("c", "z", OpEqual, Int(3)).
		Build()
	require.NoError(t, err)

	parsed := mustParse(t, "[a:x = 1 OR b:y = 2 AND c:z = 3]")
	assert.Equal(t, parsed, built)
}

func TestBuilder_Not(t *testing.T) {
	pat, err := NewBuilder().
		Not().
		Compare("process", "name", OpEqual, Str("cmd.exe")).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "[NOT process:name = 'cmd.exe']", pat.String())
}

func TestBuilder_FollowedByAndQualifier(t *testing.T) {
	pat, err := NewBuilder().
		Compare("ipv4-addr", "value", OpEqual, Str("10.0.0.1")).
		FollowedBy().
		Compare("url", "value", OpLike, Str("http://evil.example/%")).
		Within(300).
		Build()
	require.NoError(t, err)

	assert.Equal(t,
		"[ipv4-addr:value = '10.0.0.1'] FOLLOWEDBY [url:value LIKE 'http://evil.example/%'] WITHIN 300 SECONDS",
		pat.String())

	reparsed, err := Parse(pat.String())
	require.NoError(t, err)
	assert.Equal(t, pat, reparsed)
}

func TestBuilder_ListLiteral(t *testing.T) {
	pat, err := NewBuilder().
		Compare("process", "name", OpIn, List(Str("cmd.exe"), Str("powershell.exe"))).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "[process:name IN ('cmd.exe', 'powershell.exe')]", pat.String())
}

func TestBuilder_Qualifiers(t *testing.T) {
	pat, err := NewBuilder().
		Compare("a", "x", OpEqual, Int(1)).
		Repeats(9).
		Build()
	require.NoError(t, err)
	assert.Equal(t, RepeatsQualifier{Times: 9}, pat.Qualifier)

	pat, err = NewBuilder().
		Compare("a", "x", OpEqual, Int(1)).
		StartStop("2016-06-01T00:00:00Z", "2016-06-02T00:00:00Z").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "[a:x = 1] STARTSTOP t'2016-06-01T00:00:00Z' WITH t'2016-06-02T00:00:00Z'", pat.String())
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Pattern, error)
	}{
		{"empty builder", func() (*Pattern, error) {
			return NewBuilder().Build()
		}},
		{"leading combinator", func() (*Pattern, error) {
			return NewBuilder().And().Compare("a", "x", OpEqual, Int(1)).Build()
		}},
		{"dangling combinator", func() (*Pattern, error) {
			return NewBuilder().Compare("a", "x", OpEqual, Int(1)).Or().Build()
		}},
		{"double combinator", func() (*Pattern, error) {
			return NewBuilder().Compare("a", "x", OpEqual, Int(1)).And().Or().Compare("b", "y", OpEqual, Int(2)).Build()
		}},
		{"missing combinator", func() (*Pattern, error) {
			return NewBuilder().Compare("a", "x", OpEqual, Int(1)).Compare("b", "y", OpEqual, Int(2)).Build()
		}},
		{"invalid operator", func() (*Pattern, error) {
			return NewBuilder().Compare("a", "x", "~=", Int(1)).Build()
		}},
		{"empty trailing observation", func() (*Pattern, error) {
			return NewBuilder().Compare("a", "x", OpEqual, Int(1)).FollowedBy().Build()
		}},
		{"zero within", func() (*Pattern, error) {
			return NewBuilder().Compare("a", "x", OpEqual, Int(1)).Within(0).Build()
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			assert.Error(t, err)
		})
	}
}
