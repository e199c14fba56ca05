// Package normalize compares T-SQL statements for token level equivalence.
// Two statements are equivalent when they differ only in whitespace,
// comments, keyword case, or optional syntax such as ASC, INNER, OUTER and
// the AS before an alias.
package normalize

import (
	"strings"

	"github.com/parsql/tsql/lexer"
	"github.com/parsql/tsql/token"
)

// Equal reports whether a and b are equivalent T-SQL. Inputs that fail to
// lex are never equivalent to anything, including themselves.
func Equal(a, b string) bool {
	ta, err := normalizedTokens(a)
	if err != nil {
		return false
	}
	tb, err := normalizedTokens(b)
	if err != nil {
		return false
	}
	if len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if ta[i].Kind != tb[i].Kind {
			return false
		}
		if !literalsMatch(ta[i], tb[i]) {
			return false
		}
	}
	return true
}

// Fingerprint returns a canonical single line rendering of the normalized
// token stream. Equivalent statements share a fingerprint.
func Fingerprint(input string) (string, error) {
	toks, err := normalizedTokens(input)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 {
			sb.WriteString(" ")
		}
		switch tok.Kind {
		case token.IDENT, token.QUOTED_IDENT, token.LOCAL_VAR:
			// Identifiers compare case-insensitively, so the
			// fingerprint folds them to lower case.
			sb.WriteString(strings.ToLower(tok.Literal))
		case token.STRING:
			sb.WriteString("'")
			sb.WriteString(tok.Literal)
			sb.WriteString("'")
		case token.NUMBER:
			sb.WriteString(tok.Literal)
		default:
			sb.WriteString(tok.Kind.String())
		}
	}
	return sb.String(), nil
}

// normalizedTokens lexes the input and drops tokens that carry no meaning:
// comments, semicolons, ASC, the INNER in INNER JOIN, the OUTER in outer
// joins, and the AS before an alias. ROW and ROWS are interchangeable, as
// are FIRST and NEXT in a fetch clause.
func normalizedTokens(input string) ([]token.Token, error) {
	all, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	toks := make([]token.Token, 0, len(all))
	for _, tok := range all {
		switch tok.Kind {
		case token.COMMENT, token.SEMICOLON, token.EOF:
			continue
		case token.ASC, token.INNER, token.OUTER, token.AS:
			continue
		case token.ROWS:
			tok.Kind = token.ROW
		case token.NEXT:
			tok.Kind = token.FIRST
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func literalsMatch(a, b token.Token) bool {
	switch a.Kind {
	case token.IDENT, token.QUOTED_IDENT, token.LOCAL_VAR:
		return strings.EqualFold(a.Literal, b.Literal)
	case token.STRING:
		return a.Literal == b.Literal
	case token.NUMBER:
		return a.Literal == b.Literal
	}
	return true
}
