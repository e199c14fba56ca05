package format

import "github.com/parsql/tsql/ast"

func (f *formatter) expression(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.Asterisk:
		f.sb.WriteString("*")
	case *ast.Identifier:
		f.sb.WriteString(e.Token.Literal)
	case *ast.QuotedIdentifier:
		f.sb.WriteString("[")
		f.sb.WriteString(e.Token.Literal)
		f.sb.WriteString("]")
	case *ast.StringLiteral:
		f.sb.WriteString("'")
		f.sb.WriteString(e.Token.Literal)
		f.sb.WriteString("'")
	case *ast.NumberLiteral:
		f.sb.WriteString(e.Token.Literal)
	case *ast.LocalVariable:
		f.sb.WriteString("@")
		f.sb.WriteString(e.Token.Literal)
	case *ast.Keyword:
		f.keyword(e.Token.Literal)
	case *ast.Compound:
		for i, part := range e.Parts {
			if i > 0 {
				f.sb.WriteString(".")
			}
			f.expression(part)
		}
	case *ast.Arithmetic:
		f.expression(e.Left)
		f.sb.WriteString(" ")
		f.sb.WriteString(e.Operator.Literal)
		f.sb.WriteString(" ")
		f.expression(e.Right)
	case *ast.Comparison:
		f.expression(e.Left)
		f.sb.WriteString(" ")
		f.sb.WriteString(e.Operator.Literal)
		f.sb.WriteString(" ")
		f.expression(e.Right)
	case *ast.And:
		f.expression(e.Left)
		f.conditionBreak()
		f.keyword("AND ")
		f.expression(e.Right)
	case *ast.Or:
		f.expression(e.Left)
		f.conditionBreak()
		f.keyword("OR ")
		f.expression(e.Right)
	case *ast.Unary:
		f.sb.WriteString(e.Operator.Literal)
		f.expression(e.Right)
	case *ast.Not:
		f.keyword("NOT ")
		f.expression(e.Expr)
	case *ast.Function:
		f.functionCall(e)
	case *ast.Cast:
		f.keyword("CAST")
		f.sb.WriteString("(")
		f.expression(e.Expr)
		f.keyword(" AS ")
		f.dataType(&e.DataType)
		f.sb.WriteString(")")
	case *ast.Subquery:
		f.sb.WriteString("(")
		f.selectStatement(e.Select)
		f.sb.WriteString(")")
	case *ast.InList:
		f.expression(e.TestExpr)
		if e.NotKw != nil {
			f.keyword(" NOT")
		}
		f.keyword(" IN ")
		f.sb.WriteString("(")
		for i, item := range e.List {
			if i > 0 {
				f.inListComma()
			}
			f.expression(item)
		}
		f.sb.WriteString(")")
	case *ast.InSubquery:
		f.expression(e.TestExpr)
		if e.NotKw != nil {
			f.keyword(" NOT")
		}
		f.keyword(" IN ")
		f.expression(e.Subquery)
	case *ast.Between:
		f.expression(e.TestExpr)
		if e.NotKw != nil {
			f.keyword(" NOT")
		}
		f.keyword(" BETWEEN ")
		f.expression(e.Begin)
		f.keyword(" AND ")
		f.expression(e.End)
	case *ast.Like:
		f.expression(e.Match)
		if e.NotKw != nil {
			f.keyword(" NOT")
		}
		f.keyword(" LIKE ")
		f.expression(e.Pattern)
	case *ast.Is:
		f.expression(e.TestExpr)
		f.keyword(" IS ")
		if e.NotKw != nil {
			f.keyword("NOT ")
		}
		f.keyword(e.Value.Literal)
	case *ast.Exists:
		f.keyword("EXISTS ")
		f.expression(e.Subquery)
	case *ast.All:
		f.expression(e.Scalar)
		f.sb.WriteString(" ")
		f.sb.WriteString(e.Operator.Literal)
		f.keyword(" ALL ")
		f.expression(e.Subquery)
	case *ast.Some:
		f.expression(e.Scalar)
		f.sb.WriteString(" ")
		f.sb.WriteString(e.Operator.Literal)
		f.keyword(" SOME ")
		f.expression(e.Subquery)
	case *ast.Any:
		f.expression(e.Scalar)
		f.sb.WriteString(" ")
		f.sb.WriteString(e.Operator.Literal)
		f.keyword(" ANY ")
		f.expression(e.Subquery)
	case *ast.SimpleCase:
		f.keyword("CASE ")
		f.expression(e.Input)
		f.caseConditions(e.Conditions)
	case *ast.SearchedCase:
		f.keyword("CASE")
		f.caseConditions(e.Conditions)
	}
}

// conditionBreak separates the operands of AND and OR. The break style
// follows the IndentBetweenConditions setting.
func (f *formatter) conditionBreak() {
	if f.settings.IndentBetweenConditions {
		f.sb.WriteString("\n")
		f.indent()
		return
	}
	f.sb.WriteString(" ")
}

func (f *formatter) functionCall(fn *ast.Function) {
	f.expression(fn.Name)
	f.sb.WriteString("(")
	for i, arg := range fn.Args {
		if i > 0 {
			f.sb.WriteString(", ")
		}
		f.expression(arg)
	}
	f.sb.WriteString(")")
	if fn.Over != nil {
		f.overClause(fn.Over)
	}
}

func (f *formatter) overClause(over *ast.OverClause) {
	f.keyword(" OVER")
	f.sb.WriteString("(")
	wrote := false
	if len(over.PartitionBy) > 0 {
		f.keyword("PARTITION BY ")
		for i, expr := range over.PartitionBy {
			if i > 0 {
				f.sb.WriteString(", ")
			}
			f.expression(expr)
		}
		wrote = true
	}
	if len(over.OrderBy) > 0 {
		if wrote {
			f.sb.WriteString(" ")
		}
		f.keyword("ORDER BY ")
		f.orderByList(over.OrderBy)
		wrote = true
	}
	if over.WindowFrame != nil {
		if wrote {
			f.sb.WriteString(" ")
		}
		f.windowFrame(over.WindowFrame)
	}
	f.sb.WriteString(")")
}

func (f *formatter) windowFrame(frame *ast.WindowFrame) {
	f.keyword(string(frame.RowsOrRange))
	f.sb.WriteString(" ")
	if frame.End != nil {
		f.keyword("BETWEEN ")
		f.frameBound(&frame.Start)
		f.keyword(" AND ")
		f.frameBound(frame.End)
		return
	}
	f.frameBound(&frame.Start)
}

func (f *formatter) frameBound(bound *ast.FrameBound) {
	switch bound.Kind {
	case ast.BoundPreceding:
		f.expression(bound.Quantity)
		f.keyword(" PRECEDING")
	case ast.BoundFollowing:
		f.expression(bound.Quantity)
		f.keyword(" FOLLOWING")
	default:
		f.keyword(string(bound.Kind))
	}
}

func (f *formatter) dataType(dt *ast.DataType) {
	f.keyword(dt.Name.Literal)
	if dt.Size != nil {
		f.sb.WriteString("(")
		f.sb.WriteString(dt.Size.Size.Literal)
		if dt.Size.Scale != nil {
			f.sb.WriteString(", ")
			f.sb.WriteString(dt.Size.Scale.Literal)
		}
		f.sb.WriteString(")")
	}
}

func (f *formatter) caseConditions(conditions []ast.CaseCondition) {
	for _, condition := range conditions {
		f.sb.WriteString("\n")
		f.indent()
		switch c := condition.(type) {
		case *ast.WhenCondition:
			f.keyword("WHEN ")
			f.expression(c.When)
			f.keyword(" THEN ")
			f.expression(c.Result)
		case *ast.ElseCondition:
			f.keyword("ELSE ")
			f.expression(c.Result)
		}
	}
	f.sb.WriteString("\n")
	f.keyword("END")
}
