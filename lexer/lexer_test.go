package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsql/tsql/lexer"
	"github.com/parsql/tsql/token"
)

type lexed struct {
	kind    token.Kind
	literal string
}

func kinds(t *testing.T, input string) []lexed {
	t.Helper()
	toks, err := lexer.Tokenize(input)
	require.NoError(t, err)
	out := make([]lexed, 0, len(toks))
	for _, tok := range toks {
		out = append(out, lexed{tok.Kind, tok.Literal})
	}
	return out
}

func TestRandomTokens(t *testing.T) {
	input := "44 + 21 -21 (test, qas, ' wow ')"
	assert.Equal(t, []lexed{
		{token.NUMBER, "44"},
		{token.PLUS, "+"},
		{token.NUMBER, "21"},
		{token.MINUS, "-"},
		{token.NUMBER, "21"},
		{token.LPAREN, "("},
		{token.IDENT, "test"},
		{token.COMMA, ","},
		{token.IDENT, "qas"},
		{token.COMMA, ","},
		{token.STRING, " wow "},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	}, kinds(t, input))
}

func TestIdentifiersAndKeywords(t *testing.T) {
	input := "select name, [First Name], @rowCount from _users"
	assert.Equal(t, []lexed{
		{token.SELECT, "select"},
		{token.IDENT, "name"},
		{token.COMMA, ","},
		{token.QUOTED_IDENT, "First Name"},
		{token.COMMA, ","},
		{token.LOCAL_VAR, "rowCount"},
		{token.FROM, "from"},
		{token.IDENT, "_users"},
		{token.EOF, ""},
	}, kinds(t, input))
}

func TestOperators(t *testing.T) {
	input := "a = b != c <> d < e <= f > g >= h * i / j % k"
	got := kinds(t, input)
	want := []token.Kind{
		token.IDENT, token.EQ,
		token.IDENT, token.BANG_EQ,
		token.IDENT, token.LT_GT,
		token.IDENT, token.LT,
		token.IDENT, token.LTE,
		token.IDENT, token.GT,
		token.IDENT, token.GTE,
		token.IDENT, token.ASTERISK,
		token.IDENT, token.SLASH,
		token.IDENT, token.PERCENT_SIGN,
		token.IDENT, token.EOF,
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i].kind, "token %d", i)
	}
}

func TestNumbers(t *testing.T) {
	// A trailing period is not part of the number.
	assert.Equal(t, []lexed{
		{token.NUMBER, "1"},
		{token.NUMBER, "23.45"},
		{token.NUMBER, "1"},
		{token.PERIOD, "."},
		{token.EOF, ""},
	}, kinds(t, "1 23.45 1."))
}

func TestComments(t *testing.T) {
	input := "select 1 -- trailing note \nselect 2"
	assert.Equal(t, []lexed{
		{token.SELECT, "select"},
		{token.NUMBER, "1"},
		{token.COMMENT, "trailing note"},
		{token.SELECT, "select"},
		{token.NUMBER, "2"},
		{token.EOF, ""},
	}, kinds(t, input))
}

func TestBracketWithoutLetterIsError(t *testing.T) {
	_, err := lexer.Tokenize("select [1]")
	var lexErr *lexer.LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.UnrecognizedToken, lexErr.Kind)
}

func TestAtSignWithoutLetterIsError(t *testing.T) {
	_, err := lexer.Tokenize("select @1")
	var lexErr *lexer.LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.UnrecognizedToken, lexErr.Kind)
	assert.Equal(t, uint32(7), lexErr.Span.Start)
}

func TestIllegalString(t *testing.T) {
	input := "select 'abc from users"
	_, err := lexer.Tokenize(input)
	var lexErr *lexer.LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.UnexpectedStringEnd, lexErr.Kind)
	// The span is anchored at the opening quote.
	assert.Equal(t, uint32(7), lexErr.Span.Start)
	assert.Equal(t, "I was expecting a ' to close the string", lexErr.Details())
}

func TestIllegalQuotedIdentifier(t *testing.T) {
	_, err := lexer.Tokenize("select [name from users")
	var lexErr *lexer.LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.UnexpectedQuotedIdentifierEnd, lexErr.Kind)
	assert.Equal(t, uint32(7), lexErr.Span.Start)
}

func TestErrorLocation(t *testing.T) {
	input := "select name\nfrom users\nwhere a = 'oops"
	_, err := lexer.Tokenize(input)
	var lexErr *lexer.LexicalError
	require.ErrorAs(t, err, &lexErr)
	line, col := lexErr.Location(input)
	assert.Equal(t, 3, line)
	assert.Equal(t, 11, col)
}

func TestSpans(t *testing.T) {
	input := "select [Full Name] from users"
	toks, err := lexer.Tokenize(input)
	require.NoError(t, err)

	// Every span is half open, in bounds and non decreasing, and the
	// literal of plain tokens is exactly the spanned text.
	var prev uint32
	for _, tok := range toks {
		assert.LessOrEqual(t, tok.Span.Start, tok.Span.End)
		assert.LessOrEqual(t, tok.Span.End, uint32(len(input)))
		assert.GreaterOrEqual(t, tok.Span.Start, prev)
		prev = tok.Span.End
		if tok.Kind == token.IDENT || tok.Kind.IsKeyword() {
			assert.Equal(t, input[tok.Span.Start:tok.Span.End], tok.Literal)
		}
	}

	// The quoted identifier span covers the brackets, the literal does not.
	quoted := toks[1]
	require.Equal(t, token.QUOTED_IDENT, quoted.Kind)
	assert.Equal(t, "Full Name", quoted.Literal)
	assert.Equal(t, "[Full Name]", input[quoted.Span.Start:quoted.Span.End])

	// EOF carries an empty span at the end of input.
	last := toks[len(toks)-1]
	require.Equal(t, token.EOF, last.Kind)
	assert.Equal(t, uint32(len(input)), last.Span.Start)
	assert.Equal(t, last.Span.Start, last.Span.End)
}

func TestEmptyInput(t *testing.T) {
	toks, err := lexer.Tokenize("")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
	assert.Equal(t, token.NewSpan(0, 0), toks[0].Span)
}
