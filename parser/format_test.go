package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsql/tsql/internal/normalize"
	"github.com/parsql/tsql/parser"
)

func TestFormatSourceRoundTrip(t *testing.T) {
	inputs := []string{
		"select 1",
		"select distinct top 10 percent name, age from users",
		"select u.name, count(*) as total from users u left outer join orders o on u.id = o.user_id " +
			"where u.status = 'active' and u.age between 18 and 30 " +
			"group by u.name having count(*) > 1 " +
			"order by total desc offset 5 rows fetch next 10 rows only",
		"select case when a > 1 then 'big' else 'small' end from t",
		"select cast(price as decimal(10, 2)) from items where id in (1, 2, 3)",
		"with active as (select id from users where deleted is null) select id from active",
		"select row_number() over(partition by dept order by salary desc) from emp",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			formatted, err := parser.FormatSource(input, parser.DefaultFormatSettings())
			require.NoError(t, err)
			// Formatting changes layout and keyword case but never the
			// token stream.
			assert.True(t, normalize.Equal(input, formatted),
				"formatted output diverged:\n%s", formatted)
		})
	}
}

func TestFormatSourcePropagatesErrors(t *testing.T) {
	_, err := parser.FormatSource("SELECT FROM users", parser.DefaultFormatSettings())
	require.Error(t, err)
	pe, ok := err.(*parser.ParseError)
	require.True(t, ok)
	assert.Equal(t, parser.EmptySelectColumns, pe.Kind)
}
