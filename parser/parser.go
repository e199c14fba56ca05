// Package parser implements a recursive descent parser for T-SQL.
//
// A Parser owns a lexer and a two-token lookahead window and is consumed
// exactly once. Parsing is terminal on the first error: the caller gets
// either a complete Query or one *ParseError with a span into the source.
package parser

import (
	"errors"

	"github.com/parsql/tsql/ast"
	"github.com/parsql/tsql/lexer"
	"github.com/parsql/tsql/token"
)

// Parser parses T-SQL statements.
type Parser struct {
	lexer   *lexer.Lexer
	current token.Token
	peek    token.Token
}

// New creates a Parser over input.
func New(input string) *Parser {
	return &Parser{lexer: lexer.New(input)}
}

// Parse parses input into a Query.
func Parse(input string) (*ast.Query, error) {
	return New(input).Parse()
}

// advance shifts peek into current and pulls the next non-comment token from
// the lexer. A lexical error surfaces as a *ParseError.
func (p *Parser) advance() error {
	p.current = p.peek
	for {
		tok, err := p.lexer.NextToken()
		if err != nil {
			var lexErr *lexer.LexicalError
			errors.As(err, &lexErr)
			return lexicalErr(lexErr)
		}
		if tok.Kind == token.COMMENT {
			continue
		}
		p.peek = tok
		return nil
	}
}

func (p *Parser) currentIs(k token.Kind) bool {
	return p.current.Kind == k
}

func (p *Parser) peekIs(k token.Kind) bool {
	return p.peek.Kind == k
}

// expectPeek consumes the peek token when it has the wanted kind and reports
// an UnexpectedToken error otherwise. Callers must treat the error as
// terminal for the production.
func (p *Parser) expectPeek(k token.Kind) error {
	if p.peekIs(k) {
		return p.advance()
	}
	return unexpectedErr(p.peek, k.String())
}

// expectPeekOneOf consumes the peek token when it matches any wanted kind.
func (p *Parser) expectPeekOneOf(kinds ...token.Kind) error {
	for _, k := range kinds {
		if p.peekIs(k) {
			return p.advance()
		}
	}
	expected := make([]string, len(kinds))
	for i, k := range kinds {
		expected[i] = k.String()
	}
	return unexpectedErr(p.peek, expected...)
}

// Parse parses the whole input. Statements are separated by semicolons;
// empty statements are skipped.
func (p *Parser) Parse() (*ast.Query, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	query := &ast.Query{}
	for !p.currentIs(token.EOF) {
		if p.currentIs(token.SEMICOLON) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		query.Statements = append(query.Statements, stmt)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return query, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current.Kind {
	case token.SELECT:
		return p.parseSelect()
	case token.WITH:
		return p.parseCTE()
	default:
		return nil, parseErr(InvalidOrUnimplementedStatement, p.current.Span)
	}
}

// parseSelect parses a SELECT statement. current is the SELECT keyword on
// entry and the last token of the statement on return.
func (p *Parser) parseSelect() (*ast.SelectStatement, error) {
	stmt := &ast.SelectStatement{}

	if p.peekIs(token.DISTINCT) || p.peekIs(token.ALL) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		kw := p.current
		stmt.DistinctKw = &kw
		stmt.Distinct = kw.Kind == token.DISTINCT
	}

	if p.peekIs(token.TOP) {
		top, err := p.parseTop()
		if err != nil {
			return nil, err
		}
		stmt.Top = top
	}

	columns, err := p.parseSelectItems()
	if err != nil {
		return nil, err
	}
	stmt.Columns = columns

	if p.peekIs(token.INTO) {
		into, err := p.parseInto()
		if err != nil {
			return nil, err
		}
		stmt.Into = into
	}

	if p.peekIs(token.FROM) {
		table, err := p.parseTableArg()
		if err != nil {
			return nil, err
		}
		stmt.Table = table
	}

	if p.peekIs(token.WHERE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		kw := p.current
		stmt.WhereKw = &kw
		if err := p.advance(); err != nil {
			return nil, err
		}
		where, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	if p.peekIs(token.GROUP) {
		kws, exprs, err := p.parseGroupBy()
		if err != nil {
			return nil, err
		}
		stmt.GroupByKws = kws
		stmt.GroupBy = exprs
	}

	if p.peekIs(token.HAVING) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		kw := p.current
		stmt.HavingKw = &kw
		if err := p.advance(); err != nil {
			return nil, err
		}
		having, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		stmt.Having = having
	}

	if p.peekIs(token.ORDER) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		stmt.OrderByKws = append(stmt.OrderByKws, p.current)
		if err := p.expectPeek(token.BY); err != nil {
			return nil, err
		}
		stmt.OrderByKws = append(stmt.OrderByKws, p.current)

		args, err := p.parseOrderByList(EmptyOrderByArgs)
		if err != nil {
			return nil, err
		}
		stmt.OrderBy = args

		if p.peekIs(token.OFFSET) {
			offset, err := p.parseOffset()
			if err != nil {
				return nil, err
			}
			stmt.Offset = offset

			if p.peekIs(token.FETCH) {
				fetch, err := p.parseFetch()
				if err != nil {
					return nil, err
				}
				stmt.Fetch = fetch
			}
		}
	}

	return stmt, nil
}

// parseTop parses TOP n [PERCENT] [WITH TIES]. peek is the TOP keyword on
// entry.
func (p *Parser) parseTop() (*ast.TopArg, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	top := &ast.TopArg{TopKw: p.current}

	if err := p.expectPeek(token.NUMBER); err != nil {
		return nil, err
	}
	top.Quantity = &ast.NumberLiteral{Token: p.current}

	if p.peekIs(token.PERCENT) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		kw := p.current
		top.PercentKw = &kw
	}

	if p.peekIs(token.WITH) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		withKw := p.current
		if err := p.expectPeek(token.TIES); err != nil {
			return nil, err
		}
		tiesKw := p.current
		top.WithKw = &withKw
		top.TiesKw = &tiesKw
	}

	return top, nil
}

// selectTerminators are the token kinds that may legally follow the select
// column list.
var selectTerminators = []token.Kind{
	token.EOF, token.SEMICOLON, token.RPAREN,
	token.INTO, token.FROM, token.WHERE, token.GROUP, token.HAVING,
	token.ORDER, token.UNION,
}

func isSelectTerminator(k token.Kind) bool {
	for _, t := range selectTerminators {
		if k == t {
			return true
		}
	}
	return false
}

// parseSelectItems parses the mandatory non-empty select column list. An
// identifier directly following an expression is an implicit alias; this
// only happens when the previous token was not a comma, because a comma puts
// the identifier at the start of the next item instead.
func (p *Parser) parseSelectItems() ([]ast.SelectItem, error) {
	if p.peekIs(token.FROM) || p.peekIs(token.EOF) || p.peekIs(token.SEMICOLON) {
		return nil, parseErr(EmptySelectColumns, p.peek.Span)
	}

	var items []ast.SelectItem
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}

		item, err := p.parseSelectItemAlias(expr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		if !p.peekIs(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if !isSelectTerminator(p.peek.Kind) {
		return nil, unexpectedErr(p.peek, ",", "FROM", "INTO", "WHERE",
			"GROUP", "HAVING", "ORDER", ";")
	}
	return items, nil
}

// parseSelectItemAlias classifies a parsed column expression into one of the
// four select item shapes, consuming an optional [AS] alias.
func (p *Parser) parseSelectItemAlias(expr ast.Expression) (ast.SelectItem, error) {
	wildcard := false
	switch e := expr.(type) {
	case *ast.Asterisk:
		wildcard = true
	case *ast.Compound:
		if _, ok := e.Parts[len(e.Parts)-1].(*ast.Asterisk); ok {
			wildcard = true
		}
	}

	var asKw *token.Token
	if p.peekIs(token.AS) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		kw := p.current
		asKw = &kw
		if !p.peekIs(token.IDENT) && !p.peekIs(token.QUOTED_IDENT) && !p.peekIs(token.STRING) {
			return nil, parseErr(MissingAliasAfterAsKeyword, p.peek.Span)
		}
	}

	hasAlias := asKw != nil ||
		p.peekIs(token.IDENT) || p.peekIs(token.QUOTED_IDENT) || p.peekIs(token.STRING)
	// A bare * never takes an alias; only qualified wildcards like t.* do.
	if _, bare := expr.(*ast.Asterisk); bare && asKw == nil {
		hasAlias = false
	}

	if !hasAlias {
		if wildcard {
			if a, ok := expr.(*ast.Asterisk); ok {
				return &ast.WildcardItem{Token: a.Token}, nil
			}
		}
		return &ast.UnnamedItem{Expr: expr}, nil
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	alias := p.current

	if wildcard {
		return &ast.WildcardAliasedItem{Expr: expr, AsKw: asKw, Alias: alias}, nil
	}
	return &ast.AliasedItem{Expr: expr, AsKw: asKw, Alias: alias}, nil
}

// parseInto parses INTO table [ON filegroup]. peek is the INTO keyword on
// entry.
func (p *Parser) parseInto() (*ast.IntoArg, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	into := &ast.IntoArg{IntoKw: p.current}

	if !p.peekIs(token.IDENT) && !p.peekIs(token.QUOTED_IDENT) {
		return nil, parseErr(ExpectedObjectToInsertTo, p.peek.Span)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	table, err := p.parseObjectName()
	if err != nil {
		return nil, err
	}
	into.Table = table

	if p.peekIs(token.ON) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		kw := p.current
		into.OnKw = &kw
		if err := p.expectPeekOneOf(token.IDENT, token.QUOTED_IDENT); err != nil {
			return nil, err
		}
		into.FileGroup = p.identLeaf()
	}

	return into, nil
}

// parseTableArg parses the FROM clause with its joins. peek is the FROM
// keyword on entry.
func (p *Parser) parseTableArg() (*ast.TableArg, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	arg := &ast.TableArg{FromKw: p.current}

	table, err := p.parseTableSource()
	if err != nil {
		return nil, err
	}
	arg.Table = *table

	for {
		joinType, ok, err := p.peekJoinType()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		join, err := p.parseJoin(joinType)
		if err != nil {
			return nil, err
		}
		arg.Joins = append(arg.Joins, *join)
	}

	return arg, nil
}

// parseTableSource parses one table name, table-valued function or derived
// table, with an optional alias. It begins at peek.
func (p *Parser) parseTableSource() (*ast.TableSource, error) {
	source := &ast.TableSource{Kind: ast.TableSourceTable}

	switch {
	case p.peekIs(token.IDENT) || p.peekIs(token.QUOTED_IDENT):
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		if p.peekIs(token.LPAREN) {
			fn, err := p.parseFunctionCall(name)
			if err != nil {
				return nil, err
			}
			source.Kind = ast.TableSourceFunction
			source.Source = fn
		} else {
			source.Source = name
		}
	case p.peekIs(token.LPAREN):
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.SELECT); err != nil {
			return nil, err
		}
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		source.Kind = ast.TableSourceDerived
		source.Source = &ast.Subquery{Select: sel}
	default:
		return nil, unexpectedErr(p.peek, "an identifier", "a quoted identifier", "(")
	}

	if p.peekIs(token.AS) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		kw := p.current
		source.AsKw = &kw
		if !p.peekIs(token.IDENT) && !p.peekIs(token.QUOTED_IDENT) {
			return nil, parseErr(MissingAliasAfterAsKeyword, p.peek.Span)
		}
	}
	if p.peekIs(token.IDENT) || p.peekIs(token.QUOTED_IDENT) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		alias := p.current
		source.Alias = &alias
	}

	return source, nil
}

// peekJoinType recognizes the join keyword sequence starting at peek,
// consuming it through the JOIN keyword. A bare JOIN is an inner join.
func (p *Parser) peekJoinType() (ast.JoinType, bool, error) {
	var joinType ast.JoinType
	switch p.peek.Kind {
	case token.JOIN:
		joinType = ast.JoinInner
	case token.INNER:
		joinType = ast.JoinInner
	case token.LEFT:
		joinType = ast.JoinLeft
	case token.RIGHT:
		joinType = ast.JoinRight
	case token.FULL:
		joinType = ast.JoinFull
	default:
		return "", false, nil
	}

	if err := p.advance(); err != nil {
		return "", false, err
	}
	if p.currentIs(token.JOIN) {
		return joinType, true, nil
	}

	if p.peekIs(token.OUTER) {
		if err := p.advance(); err != nil {
			return "", false, err
		}
		switch joinType {
		case ast.JoinLeft:
			joinType = ast.JoinLeftOuter
		case ast.JoinRight:
			joinType = ast.JoinRightOuter
		case ast.JoinFull:
			joinType = ast.JoinFullOuter
		}
	}
	if err := p.expectPeek(token.JOIN); err != nil {
		return "", false, err
	}
	return joinType, true, nil
}

// parseJoin parses the joined table and its mandatory ON condition. current
// is the JOIN keyword on entry.
func (p *Parser) parseJoin(joinType ast.JoinType) (*ast.Join, error) {
	join := &ast.Join{Type: joinType}

	table, err := p.parseTableSource()
	if err != nil {
		return nil, err
	}
	join.Table = *table

	if err := p.expectPeek(token.ON); err != nil {
		return nil, err
	}
	kw := p.current
	join.OnKw = &kw

	if err := p.advance(); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	join.Condition = condition

	return join, nil
}

// parseGroupBy parses GROUP BY with its non-empty expression list. peek is
// the GROUP keyword on entry.
func (p *Parser) parseGroupBy() ([]token.Token, []ast.Expression, error) {
	if err := p.advance(); err != nil {
		return nil, nil, err
	}
	kws := []token.Token{p.current}
	if err := p.expectPeek(token.BY); err != nil {
		return nil, nil, err
	}
	kws = append(kws, p.current)

	if !p.isExpressionStart(p.peek.Kind) {
		return nil, nil, parseErr(EmptyGroupByClause, p.peek.Span)
	}

	var exprs []ast.Expression
	for {
		if err := p.advance(); err != nil {
			return nil, nil, err
		}
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, nil, err
		}
		exprs = append(exprs, expr)
		if !p.peekIs(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, nil, err
		}
	}
	return kws, exprs, nil
}

// parseOrderByList parses a non-empty list of order by elements, reporting
// emptyKind when the list is missing. current is the BY keyword on entry.
func (p *Parser) parseOrderByList(emptyKind ErrorKind) ([]ast.OrderByArg, error) {
	if !p.isExpressionStart(p.peek.Kind) {
		return nil, parseErr(emptyKind, p.peek.Span)
	}

	var args []ast.OrderByArg
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		column, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		arg := ast.OrderByArg{Column: column}
		if p.peekIs(token.ASC) || p.peekIs(token.DESC) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			kw := p.current
			arg.OrderKw = &kw
		}
		args = append(args, arg)
		if !p.peekIs(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return args, nil
}

// parseOffset parses OFFSET n ROW|ROWS. peek is the OFFSET keyword on entry.
func (p *Parser) parseOffset() (*ast.OffsetArg, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	offset := &ast.OffsetArg{OffsetKw: p.current}

	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	offset.Value = value

	if err := p.expectPeekOneOf(token.ROW, token.ROWS); err != nil {
		return nil, err
	}
	offset.RowKw = p.current
	return offset, nil
}

// parseFetch parses FETCH FIRST|NEXT n ROW|ROWS ONLY. peek is the FETCH
// keyword on entry.
func (p *Parser) parseFetch() (*ast.FetchArg, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	fetch := &ast.FetchArg{FetchKw: p.current}

	if err := p.expectPeekOneOf(token.FIRST, token.NEXT); err != nil {
		return nil, err
	}
	fetch.FirstKw = p.current

	if err := p.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	fetch.Value = value

	if err := p.expectPeekOneOf(token.ROW, token.ROWS); err != nil {
		return nil, err
	}
	fetch.RowKw = p.current

	if err := p.expectPeek(token.ONLY); err != nil {
		return nil, err
	}
	fetch.OnlyKw = p.current
	return fetch, nil
}

// parseCTE parses WITH name [(columns)] AS (select) [, ...] SELECT ....
// current is the WITH keyword on entry.
func (p *Parser) parseCTE() (*ast.CTEStatement, error) {
	stmt := &ast.CTEStatement{WithKw: p.current}

	for {
		cte, err := p.parseCommonTableExpression()
		if err != nil {
			return nil, err
		}
		stmt.CTEs = append(stmt.CTEs, *cte)
		if !p.peekIs(token.COMMA) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.expectPeek(token.SELECT); err != nil {
		return nil, err
	}
	sel, err := p.parseSelect()
	if err != nil {
		return nil, err
	}
	stmt.Select = sel
	return stmt, nil
}

func (p *Parser) parseCommonTableExpression() (*ast.CommonTableExpression, error) {
	if err := p.expectPeekOneOf(token.IDENT, token.QUOTED_IDENT); err != nil {
		return nil, err
	}
	cte := &ast.CommonTableExpression{Name: p.current}

	if p.peekIs(token.LPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		for {
			if err := p.expectPeekOneOf(token.IDENT, token.QUOTED_IDENT); err != nil {
				return nil, err
			}
			cte.Columns = append(cte.Columns, p.identLeaf())
			if !p.peekIs(token.COMMA) {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
	}

	if err := p.expectPeek(token.AS); err != nil {
		return nil, err
	}
	cte.AsKw = p.current

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SELECT); err != nil {
		return nil, err
	}
	sel, err := p.parseSelect()
	if err != nil {
		return nil, err
	}
	cte.Query = sel
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return cte, nil
}

// identLeaf wraps the current identifier token in its leaf node.
func (p *Parser) identLeaf() ast.Expression {
	if p.current.Kind == token.QUOTED_IDENT {
		return &ast.QuotedIdentifier{Token: p.current}
	}
	return &ast.Identifier{Token: p.current}
}

// parseObjectName parses a possibly dotted object name starting at the
// current identifier, e.g. dbo.users.
func (p *Parser) parseObjectName() (ast.Expression, error) {
	return p.parseCompound(p.identLeaf())
}
