package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsql/tsql/lexer"
	"github.com/parsql/tsql/parser"
)

func parseError(t *testing.T, input string) *parser.ParseError {
	t.Helper()
	_, err := parser.Parse(input)
	require.Error(t, err)
	pe, ok := err.(*parser.ParseError)
	require.True(t, ok, "expected a *parser.ParseError, got %T", err)
	return pe
}

func TestEmptySelectColumns(t *testing.T) {
	input := "SELECT FROM users"
	pe := parseError(t, input)
	assert.Equal(t, parser.EmptySelectColumns, pe.Kind)
	assert.Equal(t, "I expected columns to select from table", pe.Details())
	// The span points at the FROM keyword that arrived too early.
	assert.Equal(t, "FROM", input[pe.Span.Start:pe.Span.End])
}

func TestMisspelledFromSuggestsAlternatives(t *testing.T) {
	pe := parseError(t, "SELECT * FORM users")
	assert.Equal(t, parser.UnexpectedToken, pe.Kind)
	assert.Contains(t, pe.Expected, "FROM")
	assert.Contains(t, pe.Details(), "Found an identifier")
	assert.Contains(t, pe.Details(), "- FROM")
}

func TestMissingAliasAfterAs(t *testing.T) {
	pe := parseError(t, "SELECT name AS FROM users")
	assert.Equal(t, parser.MissingAliasAfterAsKeyword, pe.Kind)
	assert.Equal(t, "I expected an alias after as keyword", pe.Details())
}

func TestUnimplementedStatement(t *testing.T) {
	pe := parseError(t, "DELETE FROM users")
	assert.Equal(t, parser.InvalidOrUnimplementedStatement, pe.Kind)
}

func TestEmptyGroupBy(t *testing.T) {
	pe := parseError(t, "SELECT a FROM t GROUP BY")
	assert.Equal(t, parser.EmptyGroupByClause, pe.Kind)
}

func TestEmptyOrderBy(t *testing.T) {
	pe := parseError(t, "SELECT a FROM t ORDER BY")
	assert.Equal(t, parser.EmptyOrderByArgs, pe.Kind)
}

func TestEmptyPartitionBy(t *testing.T) {
	pe := parseError(t, "SELECT SUM(a) OVER(PARTITION BY ORDER BY b) FROM t")
	assert.Equal(t, parser.EmptyPartitionByClause, pe.Kind)
}

func TestMissingRowsOrRange(t *testing.T) {
	pe := parseError(t, "SELECT SUM(a) OVER(ORDER BY b UNBOUNDED PRECEDING) FROM t")
	assert.Equal(t, parser.MissingRowsOrRangeInWindowFrameClause, pe.Kind)
}

func TestFrameBoundErrors(t *testing.T) {
	pe := parseError(t, "SELECT SUM(a) OVER(ORDER BY b ROWS UNBOUNDED FOLLOWING) FROM t")
	assert.Equal(t, parser.ExpectedFrameBoundPreceding, pe.Kind)

	pe = parseError(t, "SELECT SUM(a) OVER(ORDER BY b ROWS BETWEEN CURRENT ROW AND 5 PRECEDING) FROM t")
	assert.Equal(t, parser.ExpectedFrameBoundFollowing, pe.Kind)
}

func TestEmptyInList(t *testing.T) {
	pe := parseError(t, "SELECT a FROM t WHERE x IN ()")
	assert.Equal(t, parser.ExpectedSubqueryOrExpressionList, pe.Kind)
}

func TestDataTypeErrors(t *testing.T) {
	pe := parseError(t, "SELECT CAST(a AS 5) FROM t")
	assert.Equal(t, parser.ExpectedDataType, pe.Kind)

	pe = parseError(t, "SELECT CAST(a AS VARCHAR(x)) FROM t")
	assert.Equal(t, parser.ExpectedDataTypeSize, pe.Kind)
}

func TestMissingIntoObject(t *testing.T) {
	pe := parseError(t, "SELECT a INTO 5 FROM t")
	assert.Equal(t, parser.ExpectedObjectToInsertTo, pe.Kind)
}

func TestLexicalErrorSurfacesAsParseError(t *testing.T) {
	input := "SELECT 'abc FROM users"
	pe := parseError(t, input)
	assert.Equal(t, parser.LexerError, pe.Kind)
	assert.Equal(t, "I was expecting a ' to close the string", pe.Details())

	var lexErr *lexer.LexicalError
	require.ErrorAs(t, pe, &lexErr)
	assert.Equal(t, lexer.UnexpectedStringEnd, lexErr.Kind)

	// The span is the lexical error's span, anchored at the opening quote.
	line, col := pe.Location(input)
	assert.Equal(t, 1, line)
	assert.Equal(t, 8, col)
}

func TestErrorLocationCountsLines(t *testing.T) {
	input := "SELECT name\nFROM users\nWHERE a ="
	pe := parseError(t, input)
	line, _ := pe.Location(input)
	assert.Equal(t, 3, line)
}

func TestUnexpectedTokenMessageShape(t *testing.T) {
	pe := parseError(t, "SELECT a FROM t ORDER name")
	require.Equal(t, parser.UnexpectedToken, pe.Kind)
	assert.Equal(t,
		"I was not expecting this. Found an identifier, expected one of: - BY ",
		pe.Details())
}
