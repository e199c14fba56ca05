package parser

import (
	"strings"

	"github.com/parsql/tsql/lexer"
	"github.com/parsql/tsql/token"
)

// ErrorKind is the closed set of grammar-level failures.
type ErrorKind int

const (
	// UnexpectedToken carries the offending token plus the set of
	// syntactically acceptable alternatives.
	UnexpectedToken ErrorKind = iota
	UnrecognizedEOF
	ExpectedKeyword
	ExpectedFunctionName
	EmptySelectColumns
	EmptyGroupByClause
	EmptyPartitionByClause
	EmptyOrderByArgs
	ExpectedDataType
	ExpectedDataTypeSize
	ExpectedComparisonOperator
	ExpectedArithmeticOperator
	ExpectedUnaryOperator
	ExpectedSubqueryOrExpressionList
	MissingRowsOrRangeInWindowFrameClause
	MissingAliasAfterAsKeyword
	ExpectedFrameBoundPreceding
	ExpectedFrameBoundFollowing
	ExpectedLocalVariable
	ExpectedObjectToInsertTo
	InvalidOrUnimplementedStatement
	// LexerError wraps a lexical error so callers handle one error type.
	LexerError
)

// ParseError is the sole error type the parser surfaces. It is terminal:
// parsing stops at the first error and no partial tree is returned.
type ParseError struct {
	Kind     ErrorKind
	Span     token.Span
	Token    token.Token // offending token, set for UnexpectedToken
	Expected []string    // acceptable alternatives, set for UnexpectedToken
	Lexical  *lexer.LexicalError
}

func (e *ParseError) Error() string {
	return e.Details()
}

func (e *ParseError) Unwrap() error {
	if e.Lexical != nil {
		return e.Lexical
	}
	return nil
}

// Location maps the error span's start offset to a 1-based line and column
// within source. It rescans the source from the beginning counting newlines.
func (e *ParseError) Location(source string) (line, col int) {
	line, col = 1, 1
	for i := 0; i < len(source) && i < int(e.Span.Start); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Details renders the templated human-readable message for the error.
func (e *ParseError) Details() string {
	switch e.Kind {
	case UnexpectedToken:
		var sb strings.Builder
		sb.WriteString("I was not expecting this. Found ")
		sb.WriteString(e.Token.Describe())
		sb.WriteString(", expected one of: ")
		for _, expected := range e.Expected {
			sb.WriteString("- ")
			sb.WriteString(expected)
			sb.WriteString(" ")
		}
		return sb.String()
	case UnrecognizedEOF:
		return "I was not expecting an end of file"
	case ExpectedKeyword:
		return "I was expecting a keyword"
	case ExpectedFunctionName:
		return "I expected a function name"
	case EmptySelectColumns:
		return "I expected columns to select from table"
	case EmptyGroupByClause:
		return "I expected a group by clause"
	case EmptyPartitionByClause:
		return "I expected a partition by clause"
	case EmptyOrderByArgs:
		return "I expected columns to order by"
	case ExpectedDataType:
		return "I expected a data type"
	case ExpectedDataTypeSize:
		return "I expected a data type size"
	case ExpectedComparisonOperator:
		return "I expected a comparison operator"
	case ExpectedArithmeticOperator:
		return "I expected an arithmetic operator"
	case ExpectedUnaryOperator:
		return "I expected a unary operator"
	case ExpectedSubqueryOrExpressionList:
		return "I expected subquery or expression list"
	case MissingRowsOrRangeInWindowFrameClause:
		return "I expected rows or range in window frame clause"
	case MissingAliasAfterAsKeyword:
		return "I expected an alias after as keyword"
	case ExpectedFrameBoundPreceding:
		return "I expected unbounded preceding, current row or number preceding"
	case ExpectedFrameBoundFollowing:
		return "I expected unbounded following, current row or number following"
	case ExpectedLocalVariable:
		return "I expected a local variable"
	case ExpectedObjectToInsertTo:
		return "I expected an object to insert into"
	case InvalidOrUnimplementedStatement:
		return "I was not expecting an invalid or a statement that is not implemented yet"
	case LexerError:
		return e.Lexical.Details()
	default:
		return "I could not parse the statement"
	}
}

func parseErr(kind ErrorKind, span token.Span) *ParseError {
	return &ParseError{Kind: kind, Span: span}
}

func unexpectedErr(tok token.Token, expected ...string) *ParseError {
	return &ParseError{Kind: UnexpectedToken, Span: tok.Span, Token: tok, Expected: expected}
}

func lexicalErr(err *lexer.LexicalError) *ParseError {
	return &ParseError{Kind: LexerError, Span: err.Span, Lexical: err}
}
