package parser

import (
	"github.com/parsql/tsql/ast"
	"github.com/parsql/tsql/token"
)

// Operator precedence levels, low to high. Equal precedence is
// left-associative: the climb loop uses a strict comparison, so a
// same-precedence operator ends the loop instead of being absorbed into the
// right operand.
const (
	LOWEST         = iota
	OTHER_LOGICALS // OR, SOME, ANY, ALL, IN, BETWEEN, LIKE
	AND_PREC       // AND
	NOT_PREC       // NOT
	COMPARISON     // =, !=, <>, <, <=, >, >=, IS
	SUM            // +, -
	PRODUCT        // *, /, %
	HIGHEST
)

func precedence(k token.Kind) int {
	switch k {
	case token.OR, token.SOME, token.ANY, token.ALL,
		token.IN, token.BETWEEN, token.LIKE:
		return OTHER_LOGICALS
	case token.AND:
		return AND_PREC
	case token.NOT:
		return NOT_PREC
	case token.EQ, token.BANG_EQ, token.LT_GT, token.LT, token.LTE,
		token.GT, token.GTE, token.IS:
		return COMPARISON
	case token.PLUS, token.MINUS:
		return SUM
	case token.ASTERISK, token.SLASH, token.PERCENT_SIGN:
		return PRODUCT
	default:
		return LOWEST
	}
}

// isExpressionStart reports whether a token of kind k can begin an
// expression.
func (p *Parser) isExpressionStart(k token.Kind) bool {
	switch k {
	case token.IDENT, token.QUOTED_IDENT, token.STRING, token.NUMBER,
		token.LOCAL_VAR, token.ASTERISK, token.LPAREN,
		token.PLUS, token.MINUS, token.NOT, token.CASE, token.CAST,
		token.EXISTS, token.NULL, token.TRUE, token.FALSE:
		return true
	default:
		return k.IsKeyword() // builtin function names
	}
}

// parseExpression is the precedence climbing loop. current is the first
// token of the expression on entry and the last token on return.
func (p *Parser) parseExpression(minPrecedence int) (ast.Expression, error) {
	left, err := p.parsePrefixExpression()
	if err != nil {
		return nil, err
	}

	for !p.peekIs(token.EOF) && minPrecedence < precedence(p.peek.Kind) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		left, err = p.parseInfixExpression(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	switch p.current.Kind {
	case token.IDENT, token.QUOTED_IDENT:
		name, err := p.parseObjectName()
		if err != nil {
			return nil, err
		}
		if p.peekIs(token.LPAREN) {
			return p.parseFunctionCall(name)
		}
		return name, nil
	case token.STRING:
		return &ast.StringLiteral{Token: p.current}, nil
	case token.NUMBER:
		return &ast.NumberLiteral{Token: p.current}, nil
	case token.LOCAL_VAR:
		return &ast.LocalVariable{Token: p.current}, nil
	case token.ASTERISK:
		return &ast.Asterisk{Token: p.current}, nil
	case token.NULL, token.TRUE, token.FALSE:
		return &ast.Keyword{Token: p.current}, nil
	case token.PLUS, token.MINUS:
		operator := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpression(SUM)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	case token.NOT:
		notKw := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression(NOT_PREC)
		if err != nil {
			return nil, err
		}
		return &ast.Not{NotKw: notKw, Expr: expr}, nil
	case token.LPAREN:
		return p.parseGroupedOrSubquery()
	case token.CASE:
		return p.parseCase()
	case token.CAST:
		return p.parseCast()
	case token.EXISTS:
		return p.parseExists()
	case token.EOF:
		return nil, parseErr(UnrecognizedEOF, p.current.Span)
	default:
		if p.current.IsKeyword() && p.peekIs(token.LPAREN) {
			return p.parseFunctionCall(&ast.Keyword{Token: p.current})
		}
		return nil, unexpectedErr(p.current, "an identifier", "a quoted identifier",
			"a string", "a number", "a local variable", "an expression")
	}
}

func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	switch p.current.Kind {
	case token.AND:
		andKw := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpression(AND_PREC)
		if err != nil {
			return nil, err
		}
		return &ast.And{AndKw: andKw, Left: left, Right: right}, nil
	case token.OR:
		orKw := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpression(OTHER_LOGICALS)
		if err != nil {
			return nil, err
		}
		return &ast.Or{OrKw: orKw, Left: left, Right: right}, nil
	case token.EQ, token.BANG_EQ, token.LT_GT, token.LT, token.LTE,
		token.GT, token.GTE:
		return p.parseComparison(left)
	case token.PLUS, token.MINUS:
		operator := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpression(SUM)
		if err != nil {
			return nil, err
		}
		return &ast.Arithmetic{Operator: operator, Left: left, Right: right}, nil
	case token.ASTERISK, token.SLASH, token.PERCENT_SIGN:
		operator := p.current
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpression(PRODUCT)
		if err != nil {
			return nil, err
		}
		return &ast.Arithmetic{Operator: operator, Left: left, Right: right}, nil
	case token.IN:
		return p.parseIn(left, nil)
	case token.BETWEEN:
		return p.parseBetween(left, nil)
	case token.LIKE:
		return p.parseLike(left, nil)
	case token.NOT:
		notKw := p.current
		if err := p.expectPeekOneOf(token.IN, token.BETWEEN, token.LIKE); err != nil {
			return nil, err
		}
		switch p.current.Kind {
		case token.IN:
			return p.parseIn(left, &notKw)
		case token.BETWEEN:
			return p.parseBetween(left, &notKw)
		default:
			return p.parseLike(left, &notKw)
		}
	case token.IS:
		return p.parseIs(left)
	default:
		return nil, unexpectedErr(p.current, "an operator")
	}
}

// parseComparison parses the right side of a comparison operator, including
// the quantified ALL, SOME and ANY subquery forms. current is the operator
// on entry.
func (p *Parser) parseComparison(left ast.Expression) (ast.Expression, error) {
	operator := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}

	switch p.current.Kind {
	case token.ALL, token.SOME, token.ANY:
		kw := p.current
		subquery, err := p.parseParenSubquery()
		if err != nil {
			return nil, err
		}
		switch kw.Kind {
		case token.ALL:
			return &ast.All{AllKw: kw, Scalar: left, Operator: operator, Subquery: subquery}, nil
		case token.SOME:
			return &ast.Some{SomeKw: kw, Scalar: left, Operator: operator, Subquery: subquery}, nil
		default:
			return &ast.Any{AnyKw: kw, Scalar: left, Operator: operator, Subquery: subquery}, nil
		}
	}

	right, err := p.parseExpression(COMPARISON)
	if err != nil {
		return nil, err
	}
	return &ast.Comparison{Operator: operator, Left: left, Right: right}, nil
}

// parseParenSubquery parses ( SELECT ... ) where peek is the opening
// parenthesis.
func (p *Parser) parseParenSubquery() (ast.Expression, error) {
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
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Subquery{Select: sel}, nil
}

// parseGroupedOrSubquery parses a parenthesized expression or subquery.
// current is the opening parenthesis on entry.
func (p *Parser) parseGroupedOrSubquery() (ast.Expression, error) {
	if p.peekIs(token.SELECT) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.Subquery{Select: sel}, nil
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseIn parses [NOT] IN followed by a parenthesized subquery or a
// non-empty expression list. current is the IN keyword on entry.
func (p *Parser) parseIn(left ast.Expression, notKw *token.Token) (ast.Expression, error) {
	inKw := p.current
	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}

	if p.peekIs(token.SELECT) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		sel, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.InSubquery{
			TestExpr: left,
			NotKw:    notKw,
			InKw:     inKw,
			Subquery: &ast.Subquery{Select: sel},
		}, nil
	}

	if p.peekIs(token.RPAREN) {
		return nil, parseErr(ExpectedSubqueryOrExpressionList, p.peek.Span)
	}

	var list []ast.Expression
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
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
	return &ast.InList{TestExpr: left, NotKw: notKw, InKw: inKw, List: list}, nil
}

// parseBetween parses [NOT] BETWEEN begin AND end. The bounds parse at
// comparison precedence so the separating AND is not absorbed into the first
// bound. current is the BETWEEN keyword on entry.
func (p *Parser) parseBetween(left ast.Expression, notKw *token.Token) (ast.Expression, error) {
	betweenKw := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	begin, err := p.parseExpression(COMPARISON)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.AND); err != nil {
		return nil, err
	}
	andKw := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	end, err := p.parseExpression(COMPARISON)
	if err != nil {
		return nil, err
	}
	return &ast.Between{
		TestExpr:  left,
		NotKw:     notKw,
		BetweenKw: betweenKw,
		Begin:     begin,
		AndKw:     andKw,
		End:       end,
	}, nil
}

// parseLike parses [NOT] LIKE pattern. current is the LIKE keyword on entry.
func (p *Parser) parseLike(left ast.Expression, notKw *token.Token) (ast.Expression, error) {
	likeKw := p.current
	if err := p.advance(); err != nil {
		return nil, err
	}
	pattern, err := p.parseExpression(COMPARISON)
	if err != nil {
		return nil, err
	}
	return &ast.Like{Match: left, NotKw: notKw, LikeKw: likeKw, Pattern: pattern}, nil
}

// parseIs parses IS [NOT] NULL|TRUE. current is the IS keyword on entry.
func (p *Parser) parseIs(left ast.Expression) (ast.Expression, error) {
	isKw := p.current

	var notKw *token.Token
	if p.peekIs(token.NOT) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		kw := p.current
		notKw = &kw
	}

	if err := p.expectPeekOneOf(token.NULL, token.TRUE); err != nil {
		return nil, err
	}
	return &ast.Is{TestExpr: left, IsKw: isKw, NotKw: notKw, Value: p.current}, nil
}

// parseExists parses EXISTS ( subquery ). current is the EXISTS keyword on
// entry.
func (p *Parser) parseExists() (ast.Expression, error) {
	existsKw := p.current
	subquery, err := p.parseParenSubquery()
	if err != nil {
		return nil, err
	}
	return &ast.Exists{ExistsKw: existsKw, Subquery: subquery}, nil
}

// parseCompound extends a leaf into a dotted name. The final part may be an
// asterisk, for qualified wildcards like t.*.
func (p *Parser) parseCompound(first ast.Expression) (ast.Expression, error) {
	if !p.peekIs(token.PERIOD) {
		return first, nil
	}
	parts := []ast.Expression{first}
	for p.peekIs(token.PERIOD) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectPeekOneOf(token.IDENT, token.QUOTED_IDENT, token.ASTERISK); err != nil {
			return nil, err
		}
		if p.currentIs(token.ASTERISK) {
			parts = append(parts, &ast.Asterisk{Token: p.current})
			break
		}
		parts = append(parts, p.identLeaf())
	}
	return &ast.Compound{Parts: parts}, nil
}

// parseFunctionCall parses the argument list and optional OVER clause of a
// call whose name has already been parsed. peek is the opening parenthesis
// on entry.
func (p *Parser) parseFunctionCall(name ast.Expression) (ast.Expression, error) {
	fn := &ast.Function{Name: name}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.peekIs(token.RPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else {
		for {
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			fn.Args = append(fn.Args, arg)
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

	if p.peekIs(token.OVER) {
		over, err := p.parseOverClause()
		if err != nil {
			return nil, err
		}
		fn.Over = over
	}
	return fn, nil
}

// parseOverClause parses OVER ( [PARTITION BY ...] [ORDER BY ...] [frame] ).
// peek is the OVER keyword on entry.
func (p *Parser) parseOverClause() (*ast.OverClause, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	over := &ast.OverClause{OverKw: p.current}

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}

	if p.peekIs(token.PARTITION) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		over.PartitionByKws = append(over.PartitionByKws, p.current)
		if err := p.expectPeek(token.BY); err != nil {
			return nil, err
		}
		over.PartitionByKws = append(over.PartitionByKws, p.current)

		if !p.isExpressionStart(p.peek.Kind) || p.peekIs(token.ORDER) {
			return nil, parseErr(EmptyPartitionByClause, p.peek.Span)
		}
		for {
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			over.PartitionBy = append(over.PartitionBy, expr)
			if !p.peekIs(token.COMMA) {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if p.peekIs(token.ORDER) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		over.OrderByKws = append(over.OrderByKws, p.current)
		if err := p.expectPeek(token.BY); err != nil {
			return nil, err
		}
		over.OrderByKws = append(over.OrderByKws, p.current)

		args, err := p.parseOrderByList(EmptyOrderByArgs)
		if err != nil {
			return nil, err
		}
		over.OrderBy = args
	}

	switch p.peek.Kind {
	case token.ROWS, token.RANGE:
		frame, err := p.parseWindowFrame()
		if err != nil {
			return nil, err
		}
		over.WindowFrame = frame
	case token.UNBOUNDED, token.CURRENT, token.BETWEEN, token.NUMBER:
		return nil, parseErr(MissingRowsOrRangeInWindowFrameClause, p.peek.Span)
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return over, nil
}

// parseWindowFrame parses ROWS|RANGE [BETWEEN] bound [AND bound]. peek is
// the ROWS or RANGE keyword on entry.
func (p *Parser) parseWindowFrame() (*ast.WindowFrame, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	frame := &ast.WindowFrame{RowsOrRangeKw: p.current}
	if p.currentIs(token.ROWS) {
		frame.RowsOrRange = ast.FrameRows
	} else {
		frame.RowsOrRange = ast.FrameRange
	}

	if p.peekIs(token.BETWEEN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		betweenKw := p.current
		frame.BetweenKw = &betweenKw

		start, err := p.parseFrameBound(false)
		if err != nil {
			return nil, err
		}
		frame.Start = *start

		if err := p.expectPeek(token.AND); err != nil {
			return nil, err
		}
		andKw := p.current
		frame.AndKw = &andKw

		end, err := p.parseFrameBound(true)
		if err != nil {
			return nil, err
		}
		frame.End = end
		return frame, nil
	}

	start, err := p.parseFrameBound(false)
	if err != nil {
		return nil, err
	}
	frame.Start = *start
	return frame, nil
}

// parseFrameBound parses one frame bound, starting at peek. The ending
// bound of a BETWEEN frame may point forward, the starting bound may not.
func (p *Parser) parseFrameBound(end bool) (*ast.FrameBound, error) {
	boundErr := ExpectedFrameBoundPreceding
	if end {
		boundErr = ExpectedFrameBoundFollowing
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	switch p.current.Kind {
	case token.UNBOUNDED:
		bound := &ast.FrameBound{Kws: []token.Token{p.current}}
		switch {
		case !end && p.peekIs(token.PRECEDING):
			bound.Kind = ast.BoundUnboundedPreceding
		case end && p.peekIs(token.FOLLOWING):
			bound.Kind = ast.BoundUnboundedFollowing
		default:
			return nil, parseErr(boundErr, p.peek.Span)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		bound.Kws = append(bound.Kws, p.current)
		return bound, nil
	case token.CURRENT:
		bound := &ast.FrameBound{Kind: ast.BoundCurrentRow, Kws: []token.Token{p.current}}
		if err := p.expectPeek(token.ROW); err != nil {
			return nil, err
		}
		bound.Kws = append(bound.Kws, p.current)
		return bound, nil
	case token.NUMBER:
		bound := &ast.FrameBound{Quantity: &ast.NumberLiteral{Token: p.current}}
		switch {
		case !end && p.peekIs(token.PRECEDING):
			bound.Kind = ast.BoundPreceding
		case end && p.peekIs(token.FOLLOWING):
			bound.Kind = ast.BoundFollowing
		default:
			return nil, parseErr(boundErr, p.peek.Span)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		bound.Kws = append(bound.Kws, p.current)
		return bound, nil
	default:
		return nil, parseErr(boundErr, p.current.Span)
	}
}

// parseCase parses both CASE forms. current is the CASE keyword on entry.
// A WHEN directly after CASE makes it a searched case; anything else is the
// input expression of a simple case.
func (p *Parser) parseCase() (ast.Expression, error) {
	caseKw := p.current

	if p.peekIs(token.WHEN) {
		conditions, endKw, err := p.parseCaseConditions()
		if err != nil {
			return nil, err
		}
		return &ast.SearchedCase{CaseKw: caseKw, Conditions: conditions, EndKw: endKw}, nil
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	input, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	conditions, endKw, err := p.parseCaseConditions()
	if err != nil {
		return nil, err
	}
	return &ast.SimpleCase{CaseKw: caseKw, Input: input, Conditions: conditions, EndKw: endKw}, nil
}

// parseCaseConditions parses the WHEN arms, the optional ELSE and the
// closing END.
func (p *Parser) parseCaseConditions() ([]ast.CaseCondition, token.Token, error) {
	var conditions []ast.CaseCondition

	if err := p.expectPeek(token.WHEN); err != nil {
		return nil, token.Token{}, err
	}
	for {
		whenKw := p.current
		if err := p.advance(); err != nil {
			return nil, token.Token{}, err
		}
		when, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, token.Token{}, err
		}
		if err := p.expectPeek(token.THEN); err != nil {
			return nil, token.Token{}, err
		}
		thenKw := p.current
		if err := p.advance(); err != nil {
			return nil, token.Token{}, err
		}
		result, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, token.Token{}, err
		}
		conditions = append(conditions, &ast.WhenCondition{
			WhenKw: whenKw,
			When:   when,
			ThenKw: thenKw,
			Result: result,
		})
		if !p.peekIs(token.WHEN) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, token.Token{}, err
		}
	}

	if p.peekIs(token.ELSE) {
		if err := p.advance(); err != nil {
			return nil, token.Token{}, err
		}
		elseKw := p.current
		if err := p.advance(); err != nil {
			return nil, token.Token{}, err
		}
		result, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, token.Token{}, err
		}
		conditions = append(conditions, &ast.ElseCondition{ElseKw: elseKw, Result: result})
	}

	if err := p.expectPeek(token.END); err != nil {
		return nil, token.Token{}, err
	}
	return conditions, p.current, nil
}

// parseCast parses CAST ( expr AS type ). current is the CAST keyword on
// entry.
func (p *Parser) parseCast() (ast.Expression, error) {
	castKw := p.current
	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.AS); err != nil {
		return nil, err
	}
	asKw := p.current

	dataType, err := p.parseDataType()
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Cast{CastKw: castKw, Expr: expr, AsKw: asKw, DataType: *dataType}, nil
}

// parseDataType parses a type name with its optional size, starting at
// peek.
func (p *Parser) parseDataType() (*ast.DataType, error) {
	if !p.peek.IsKeyword() && !p.peekIs(token.IDENT) {
		return nil, parseErr(ExpectedDataType, p.peek.Span)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	dataType := &ast.DataType{Name: p.current}

	if p.peekIs(token.LPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.peekIs(token.NUMBER) {
			return nil, parseErr(ExpectedDataTypeSize, p.peek.Span)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		size := &ast.DataTypeSize{Size: p.current}
		if p.peekIs(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			if !p.peekIs(token.NUMBER) {
				return nil, parseErr(ExpectedDataTypeSize, p.peek.Span)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			scale := p.current
			size.Scale = &scale
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		dataType.Size = size
	}

	return dataType, nil
}
