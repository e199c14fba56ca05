package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsql/tsql/internal/normalize"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "whitespace and case",
			a:    "select   Name from USERS",
			b:    "SELECT name FROM users",
			want: true,
		},
		{
			name: "comments ignored",
			a:    "SELECT 1 -- one\nFROM t",
			b:    "SELECT 1 FROM t",
			want: true,
		},
		{
			name: "optional as",
			a:    "SELECT name AS n FROM users u",
			b:    "SELECT name n FROM users AS u",
			want: true,
		},
		{
			name: "inner join is join",
			a:    "SELECT a FROM t INNER JOIN u ON t.id = u.id",
			b:    "SELECT a FROM t JOIN u ON t.id = u.id",
			want: true,
		},
		{
			name: "left outer join is left join",
			a:    "SELECT a FROM t LEFT OUTER JOIN u ON t.id = u.id",
			b:    "SELECT a FROM t LEFT JOIN u ON t.id = u.id",
			want: true,
		},
		{
			name: "redundant asc",
			a:    "SELECT a FROM t ORDER BY a ASC",
			b:    "SELECT a FROM t ORDER BY a",
			want: true,
		},
		{
			name: "row and rows",
			a:    "SELECT a FROM t ORDER BY a OFFSET 1 ROW",
			b:    "SELECT a FROM t ORDER BY a OFFSET 1 ROWS",
			want: true,
		},
		{
			name: "trailing semicolon",
			a:    "SELECT 1;",
			b:    "SELECT 1",
			want: true,
		},
		{
			name: "string literals are case sensitive",
			a:    "SELECT 'Name' FROM t",
			b:    "SELECT 'name' FROM t",
			want: false,
		},
		{
			name: "different columns",
			a:    "SELECT a FROM t",
			b:    "SELECT b FROM t",
			want: false,
		},
		{
			name: "different lengths",
			a:    "SELECT a, b FROM t",
			b:    "SELECT a FROM t",
			want: false,
		},
		{
			name: "unlexable input",
			a:    "SELECT 'oops",
			b:    "SELECT 'oops",
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.Equal(tc.a, tc.b))
		})
	}
}

func TestFingerprint(t *testing.T) {
	a, err := normalize.Fingerprint("select   Name from USERS order by name asc;")
	require.NoError(t, err)
	b, err := normalize.Fingerprint("SELECT name FROM users ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "SELECT name FROM users ORDER BY name", a)
}

func TestFingerprintLexError(t *testing.T) {
	_, err := normalize.Fingerprint("SELECT [oops")
	assert.Error(t, err)
}
