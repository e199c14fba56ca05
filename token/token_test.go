package token

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordTableSorted(t *testing.T) {
	require.True(t, sort.StringsAreSorted(keywords))
}

func TestLookupRoundTrip(t *testing.T) {
	// Every keyword kind must be reachable through Lookup by its own
	// spelling, or binary search is silently broken for that entry.
	for k := keyword_beg + 1; k < keyword_end; k++ {
		assert.Equal(t, k, Lookup(k.String()), "keyword %s", k)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"select", SELECT},
		{"Select", SELECT},
		{"SELECT", SELECT},
		{"fRoM", FROM},
		{"varchar", VARCHAR},
		{"default", DEFAULT},
		{"integer", INTEGER},
		{"users", IDENT},
		{"selected", IDENT},
		{"", IDENT},
	}
	for _, tc := range tests {
		t.Run(tc.ident, func(t *testing.T) {
			assert.Equal(t, tc.want, Lookup(tc.ident))
		})
	}
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, SELECT.IsKeyword())
	assert.True(t, ABS.IsKeyword())
	assert.True(t, YEAR.IsKeyword())
	assert.False(t, IDENT.IsKeyword())
	assert.False(t, COMMA.IsKeyword())
	assert.False(t, EOF.IsKeyword())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{New(IDENT, "users", NewSpan(0, 5)), "an identifier"},
		{New(QUOTED_IDENT, "my table", NewSpan(0, 10)), "a quoted identifier"},
		{New(STRING, "abc", NewSpan(0, 5)), "a string"},
		{New(NUMBER, "42", NewSpan(0, 2)), "a number"},
		{New(LOCAL_VAR, "id", NewSpan(0, 3)), "a local variable"},
		{New(COMMENT, "note", NewSpan(0, 7)), "a comment"},
		{New(EOF, "", NewSpan(9, 9)), "end of file"},
		{New(SELECT, "select", NewSpan(0, 6)), "the keyword SELECT"},
		{New(COMMA, ",", NewSpan(0, 1)), ","},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.tok.Describe())
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "=", EQ.String())
	assert.Equal(t, "<>", LT_GT.String())
	assert.Equal(t, "!=", BANG_EQ.String())
	assert.Equal(t, "%", PERCENT_SIGN.String())
	assert.Equal(t, "SELECT", SELECT.String())
	assert.Equal(t, "EOF", EOF.String())
}
