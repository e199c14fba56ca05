// Package token defines constants representing the lexical tokens of T-SQL.
package token

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies the lexical class of a token.
type Kind int

const (
	// Special tokens
	ILLEGAL Kind = iota
	EOF
	COMMENT

	// Literals
	IDENT        // identifiers
	QUOTED_IDENT // [bracket delimited] identifiers
	NUMBER       // integer or float literals
	STRING       // string literals
	LOCAL_VAR    // @local variables

	// Operators
	PLUS         // +
	MINUS        // -
	ASTERISK     // *
	SLASH        // /
	PERCENT_SIGN // %
	EQ           // =
	BANG_EQ      // !=
	LT_GT        // <>
	LT           // <
	LTE          // <=
	GT           // >
	GTE          // >=

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	COMMA     // ,
	PERIOD    // .
	SEMICOLON // ;

	// Keywords
	keyword_beg
	ABS
	ACOS
	ALL
	ALTER
	AND
	ANY
	AS
	ASC
	ASIN
	ATAN
	AUTOINCREMENT
	AVG
	BEGIN
	BETWEEN
	BIGINT
	BIT
	BY
	CASCADE
	CASE
	CAST
	CEIL
	CEILING
	CHAR
	COLUMN
	COLUMNS
	COMMIT
	COMMITED
	CONSTRAINT
	COS
	COT
	COUNT
	CREATE
	CURRENT
	DATE
	DATETIME
	DAY
	DAYOFWEEK
	DAYOFYEAR
	DECIMAL
	DECLARE
	DEFAULT
	DEGREES
	DELETE
	DENSE_RANK
	DESC
	DESCRIBE
	DISTINCT
	DO
	DROP
	ELSE
	END
	ENGINE
	EXEC
	EXECUTE
	EXISTS
	EXP
	FALSE
	FETCH
	FIRST
	FIRST_VALUE
	FLOAT
	FLOOR
	FOLLOWING
	FOREIGN
	FROM
	FULL
	FUNCTION
	GETDATE
	GROUP
	HAVING
	HOUR
	HOURS
	IDENTITY
	IF
	IN
	INCREMENT
	INDEX
	INNER
	INSERT
	INT
	INTEGER
	INTERSECT
	INTO
	IS
	JOIN
	KEY
	LAG
	LAST
	LAST_VALUE
	LEAD
	LEFT
	LIKE
	LIMIT
	LOG
	LOG10
	MAX
	MICROSECOND
	MICROSECONDS
	MILLISECOND
	MILLISECONDS
	MIN
	MINUTE
	MONTH
	NANOSECOND
	NANOSECONDS
	NCHAR
	NEXT
	NOT
	NULL
	NULLIF
	NUMERIC
	NVARCHAR
	OFFSET
	ON
	ONLY
	OR
	ORDER
	OUTER
	OVER
	PARTITION
	PASSWORD
	PERCENT
	PI
	POWER
	PRECEDING
	PROCEDURE
	RADIANS
	RANDS
	RANGE
	RANK
	REAL
	RETURN
	RETURNS
	REVOKE
	RIGHT
	ROLE
	ROLLBACK
	ROUND
	ROW
	ROWID
	ROWS
	ROW_NUMBER
	SECOND
	SELECT
	SET
	SIGN
	SIN
	SMALLINT
	SNAPSHOT
	SOME
	SQRT
	SQUARE
	STAGE
	START
	STATISTICS
	STDEV
	STDEVP
	SUM
	TABLE
	TAN
	TEMP
	THEN
	TIES
	TIME
	TINYINT
	TOP
	TRANSACTION
	TRIGGER
	TRUE
	TRUNCATE
	UNBOUNDED
	UNCOMMITTED
	UNION
	UNIQUE
	UNLOCK
	UPDATE
	UPPER
	USE
	USER
	UUID
	VALUE
	VALUES
	VAR
	VARBINARY
	VARCHAR
	VARP
	WEEK
	WHEN
	WHERE
	WINDOW
	WITH
	YEAR
	keyword_end
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:        "IDENT",
	QUOTED_IDENT: "QUOTED_IDENT",
	NUMBER:       "NUMBER",
	STRING:       "STRING",
	LOCAL_VAR:    "LOCAL_VAR",

	PLUS:         "+",
	MINUS:        "-",
	ASTERISK:     "*",
	SLASH:        "/",
	PERCENT_SIGN: "%",
	EQ:           "=",
	BANG_EQ:      "!=",
	LT_GT:        "<>",
	LT:           "<",
	LTE:          "<=",
	GT:           ">",
	GTE:          ">=",

	LPAREN:    "(",
	RPAREN:    ")",
	COMMA:     ",",
	PERIOD:    ".",
	SEMICOLON: ";",

	ABS:           "ABS",
	ACOS:          "ACOS",
	ALL:           "ALL",
	ALTER:         "ALTER",
	AND:           "AND",
	ANY:           "ANY",
	AS:            "AS",
	ASC:           "ASC",
	ASIN:          "ASIN",
	ATAN:          "ATAN",
	AUTOINCREMENT: "AUTOINCREMENT",
	AVG:           "AVG",
	BEGIN:         "BEGIN",
	BETWEEN:       "BETWEEN",
	BIGINT:        "BIGINT",
	BIT:           "BIT",
	BY:            "BY",
	CASCADE:       "CASCADE",
	CASE:          "CASE",
	CAST:          "CAST",
	CEIL:          "CEIL",
	CEILING:       "CEILING",
	CHAR:          "CHAR",
	COLUMN:        "COLUMN",
	COLUMNS:       "COLUMNS",
	COMMIT:        "COMMIT",
	COMMITED:      "COMMITED",
	CONSTRAINT:    "CONSTRAINT",
	COS:           "COS",
	COT:           "COT",
	COUNT:         "COUNT",
	CREATE:        "CREATE",
	CURRENT:       "CURRENT",
	DATE:          "DATE",
	DATETIME:      "DATETIME",
	DAY:           "DAY",
	DAYOFWEEK:     "DAYOFWEEK",
	DAYOFYEAR:     "DAYOFYEAR",
	DECIMAL:       "DECIMAL",
	DECLARE:       "DECLARE",
	DEFAULT:       "DEFAULT",
	DEGREES:       "DEGREES",
	DELETE:        "DELETE",
	DENSE_RANK:    "DENSE_RANK",
	DESC:          "DESC",
	DESCRIBE:      "DESCRIBE",
	DISTINCT:      "DISTINCT",
	DO:            "DO",
	DROP:          "DROP",
	ELSE:          "ELSE",
	END:           "END",
	ENGINE:        "ENGINE",
	EXEC:          "EXEC",
	EXECUTE:       "EXECUTE",
	EXISTS:        "EXISTS",
	EXP:           "EXP",
	FALSE:         "FALSE",
	FETCH:         "FETCH",
	FIRST:         "FIRST",
	FIRST_VALUE:   "FIRST_VALUE",
	FLOAT:         "FLOAT",
	FLOOR:         "FLOOR",
	FOLLOWING:     "FOLLOWING",
	FOREIGN:       "FOREIGN",
	FROM:          "FROM",
	FULL:          "FULL",
	FUNCTION:      "FUNCTION",
	GETDATE:       "GETDATE",
	GROUP:         "GROUP",
	HAVING:        "HAVING",
	HOUR:          "HOUR",
	HOURS:         "HOURS",
	IDENTITY:      "IDENTITY",
	IF:            "IF",
	IN:            "IN",
	INCREMENT:     "INCREMENT",
	INDEX:         "INDEX",
	INNER:         "INNER",
	INSERT:        "INSERT",
	INT:           "INT",
	INTEGER:       "INTEGER",
	INTERSECT:     "INTERSECT",
	INTO:          "INTO",
	IS:            "IS",
	JOIN:          "JOIN",
	KEY:           "KEY",
	LAG:           "LAG",
	LAST:          "LAST",
	LAST_VALUE:    "LAST_VALUE",
	LEAD:          "LEAD",
	LEFT:          "LEFT",
	LIKE:          "LIKE",
	LIMIT:         "LIMIT",
	LOG:           "LOG",
	LOG10:         "LOG10",
	MAX:           "MAX",
	MICROSECOND:   "MICROSECOND",
	MICROSECONDS:  "MICROSECONDS",
	MILLISECOND:   "MILLISECOND",
	MILLISECONDS:  "MILLISECONDS",
	MIN:           "MIN",
	MINUTE:        "MINUTE",
	MONTH:         "MONTH",
	NANOSECOND:    "NANOSECOND",
	NANOSECONDS:   "NANOSECONDS",
	NCHAR:         "NCHAR",
	NEXT:          "NEXT",
	NOT:           "NOT",
	NULL:          "NULL",
	NULLIF:        "NULLIF",
	NUMERIC:       "NUMERIC",
	NVARCHAR:      "NVARCHAR",
	OFFSET:        "OFFSET",
	ON:            "ON",
	ONLY:          "ONLY",
	OR:            "OR",
	ORDER:         "ORDER",
	OUTER:         "OUTER",
	OVER:          "OVER",
	PARTITION:     "PARTITION",
	PASSWORD:      "PASSWORD",
	PERCENT:       "PERCENT",
	PI:            "PI",
	POWER:         "POWER",
	PRECEDING:     "PRECEDING",
	PROCEDURE:     "PROCEDURE",
	RADIANS:       "RADIANS",
	RANDS:         "RANDS",
	RANGE:         "RANGE",
	RANK:          "RANK",
	REAL:          "REAL",
	RETURN:        "RETURN",
	RETURNS:       "RETURNS",
	REVOKE:        "REVOKE",
	RIGHT:         "RIGHT",
	ROLE:          "ROLE",
	ROLLBACK:      "ROLLBACK",
	ROUND:         "ROUND",
	ROW:           "ROW",
	ROWID:         "ROWID",
	ROWS:          "ROWS",
	ROW_NUMBER:    "ROW_NUMBER",
	SECOND:        "SECOND",
	SELECT:        "SELECT",
	SET:           "SET",
	SIGN:          "SIGN",
	SIN:           "SIN",
	SMALLINT:      "SMALLINT",
	SNAPSHOT:      "SNAPSHOT",
	SOME:          "SOME",
	SQRT:          "SQRT",
	SQUARE:        "SQUARE",
	STAGE:         "STAGE",
	START:         "START",
	STATISTICS:    "STATISTICS",
	STDEV:         "STDEV",
	STDEVP:        "STDEVP",
	SUM:           "SUM",
	TABLE:         "TABLE",
	TAN:           "TAN",
	TEMP:          "TEMP",
	THEN:          "THEN",
	TIES:          "TIES",
	TIME:          "TIME",
	TINYINT:       "TINYINT",
	TOP:           "TOP",
	TRANSACTION:   "TRANSACTION",
	TRIGGER:       "TRIGGER",
	TRUE:          "TRUE",
	TRUNCATE:      "TRUNCATE",
	UNBOUNDED:     "UNBOUNDED",
	UNCOMMITTED:   "UNCOMMITTED",
	UNION:         "UNION",
	UNIQUE:        "UNIQUE",
	UNLOCK:        "UNLOCK",
	UPDATE:        "UPDATE",
	UPPER:         "UPPER",
	USE:           "USE",
	USER:          "USER",
	UUID:          "UUID",
	VALUE:         "VALUE",
	VALUES:        "VALUES",
	VAR:           "VAR",
	VARBINARY:     "VARBINARY",
	VARCHAR:       "VARCHAR",
	VARP:          "VARP",
	WEEK:          "WEEK",
	WHEN:          "WHEN",
	WHERE:         "WHERE",
	WINDOW:        "WINDOW",
	WITH:          "WITH",
	YEAR:          "YEAR",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(tokens) {
		return tokens[k]
	}
	return ""
}

// keywords holds the keyword spellings in lexicographic order so Lookup can
// binary search them. Built once from the tokens table.
var keywords []string

func init() {
	keywords = make([]string, 0, keyword_end-keyword_beg-1)
	for i := keyword_beg + 1; i < keyword_end; i++ {
		keywords = append(keywords, tokens[i])
	}
	if !sort.StringsAreSorted(keywords) {
		panic("token: keyword table is not sorted")
	}
}

// Lookup returns the token kind for an identifier string. The match is
// case-insensitive. If the string is not a reserved word, it returns IDENT.
func Lookup(ident string) Kind {
	upper := strings.ToUpper(ident)
	i := sort.SearchStrings(keywords, upper)
	if i < len(keywords) && keywords[i] == upper {
		return keyword_beg + 1 + Kind(i)
	}
	return IDENT
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k > keyword_beg && k < keyword_end
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// Token is a lexical token together with the span it was read from. Literal
// is a slice of the original input, so the input must outlive the token. For
// quoted identifiers, strings and comments the literal is the interior text
// while the span covers the delimiters as well.
type Token struct {
	Kind    Kind   `json:"kind"`
	Literal string `json:"literal"`
	Span    Span   `json:"span"`
}

func New(kind Kind, literal string, span Span) Token {
	return Token{Kind: kind, Literal: literal, Span: span}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind.IsKeyword()
}

// Describe names the token's lexical category the way diagnostics phrase it,
// e.g. "an identifier" or "the keyword SELECT". Punctuation is quoted
// verbatim.
func (t Token) Describe() string {
	switch {
	case t.Kind == IDENT:
		return "an identifier"
	case t.Kind == QUOTED_IDENT:
		return "a quoted identifier"
	case t.Kind == STRING:
		return "a string"
	case t.Kind == NUMBER:
		return "a number"
	case t.Kind == LOCAL_VAR:
		return "a local variable"
	case t.Kind == COMMENT:
		return "a comment"
	case t.Kind == EOF:
		return "end of file"
	case t.Kind.IsKeyword():
		return fmt.Sprintf("the keyword %s", t.Kind)
	default:
		return t.Kind.String()
	}
}
