package format

import "github.com/parsql/tsql/ast"

func (f *formatter) selectStatement(s *ast.SelectStatement) {
	f.keyword("SELECT ")

	if s.DistinctKw != nil {
		f.keyword(s.DistinctKw.Literal)
		f.sb.WriteString(" ")
	}
	if s.Top != nil {
		f.topArg(s.Top)
	}

	for i, col := range s.Columns {
		if i > 0 {
			f.columnComma()
		}
		f.selectItem(col)
	}

	if s.Into != nil {
		f.sb.WriteString("\n")
		f.keyword("INTO ")
		f.expression(s.Into.Table)
		if s.Into.FileGroup != nil {
			f.keyword(" ON ")
			f.expression(s.Into.FileGroup)
		}
	}

	if s.Table != nil {
		f.sb.WriteString("\n")
		f.keyword("FROM ")
		f.tableSource(&s.Table.Table)
		for i := range s.Table.Joins {
			f.sb.WriteString("\n")
			f.join(&s.Table.Joins[i])
		}
	}

	if s.Where != nil {
		f.sb.WriteString("\n")
		f.keyword("WHERE ")
		f.expression(s.Where)
	}

	for i, expr := range s.GroupBy {
		if i == 0 {
			f.sb.WriteString("\n")
			f.keyword("GROUP BY ")
		} else {
			f.columnComma()
		}
		f.expression(expr)
	}

	if s.Having != nil {
		f.sb.WriteString("\n")
		f.keyword("HAVING ")
		f.expression(s.Having)
	}

	if len(s.OrderBy) > 0 {
		f.sb.WriteString("\n")
		f.keyword("ORDER BY ")
		f.orderByList(s.OrderBy)
	}

	if s.Offset != nil {
		f.sb.WriteString("\n")
		f.keyword("OFFSET ")
		f.expression(s.Offset.Value)
		f.sb.WriteString(" ")
		f.keyword(s.Offset.RowKw.Literal)
	}

	if s.Fetch != nil {
		f.sb.WriteString("\n")
		f.keyword("FETCH ")
		f.keyword(s.Fetch.FirstKw.Literal)
		f.sb.WriteString(" ")
		f.expression(s.Fetch.Value)
		f.sb.WriteString(" ")
		f.keyword(s.Fetch.RowKw.Literal)
		f.sb.WriteString(" ")
		f.keyword("ONLY")
	}
}

func (f *formatter) topArg(top *ast.TopArg) {
	f.keyword("TOP ")
	f.expression(top.Quantity)
	f.sb.WriteString(" ")
	if top.Percent() {
		f.keyword("PERCENT ")
	}
	if top.WithTies() {
		f.keyword("WITH TIES ")
	}
}

func (f *formatter) selectItem(item ast.SelectItem) {
	switch it := item.(type) {
	case *ast.WildcardItem:
		f.sb.WriteString("*")
	case *ast.UnnamedItem:
		f.expression(it.Expr)
	case *ast.AliasedItem:
		f.expression(it.Expr)
		if it.AsKw != nil {
			f.keyword(" AS ")
		} else {
			f.sb.WriteString(" ")
		}
		f.aliasToken(it.Alias)
	case *ast.WildcardAliasedItem:
		f.expression(it.Expr)
		if it.AsKw != nil {
			f.keyword(" AS ")
		} else {
			f.sb.WriteString(" ")
		}
		f.aliasToken(it.Alias)
	}
}

func (f *formatter) tableSource(src *ast.TableSource) {
	f.expression(src.Source)
	if src.Alias != nil {
		f.sb.WriteString(" ")
		if src.AsKw != nil {
			f.keyword("AS ")
		}
		f.aliasToken(*src.Alias)
	}
}

func (f *formatter) join(j *ast.Join) {
	f.keyword(string(j.Type))
	f.keyword(" JOIN ")
	f.tableSource(&j.Table)
	f.keyword(" ON ")
	if j.Condition != nil {
		f.expression(j.Condition)
	}
}

func (f *formatter) orderByList(args []ast.OrderByArg) {
	for i := range args {
		if i > 0 {
			f.sb.WriteString(", ")
		}
		f.expression(args[i].Column)
		if args[i].OrderKw != nil {
			f.sb.WriteString(" ")
			f.keyword(args[i].OrderKw.Literal)
		}
	}
}

func (f *formatter) cteStatement(s *ast.CTEStatement) {
	f.keyword("WITH ")
	for i := range s.CTEs {
		if i > 0 {
			f.sb.WriteString(",\n")
		}
		f.cte(&s.CTEs[i])
	}
	f.sb.WriteString("\n")
	f.selectStatement(s.Select)
}

func (f *formatter) cte(cte *ast.CommonTableExpression) {
	f.aliasToken(cte.Name)
	for i, column := range cte.Columns {
		if i == 0 {
			f.sb.WriteString(" (")
		} else {
			f.sb.WriteString(", ")
		}
		f.expression(column)
	}
	if len(cte.Columns) > 0 {
		f.sb.WriteString(")")
	}
	f.sb.WriteString("\n")
	f.keyword("AS")
	f.sb.WriteString("\n(\n")
	f.selectStatement(cte.Query)
	f.sb.WriteString("\n)")
}
