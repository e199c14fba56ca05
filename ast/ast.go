// Package ast declares the syntax tree node types produced by the parser.
//
// The tree is lossless enough to re-render the source: nodes keep the keyword
// tokens they were built from, with their original spelling and casing, not
// just semantic flags. Children are exclusively owned by their parent and
// never shared, so the tree is acyclic by construction. Nodes are immutable
// once built and borrow their literals from the original input text.
package ast

import "github.com/parsql/tsql/token"

// Statement is the interface implemented by all statement nodes.
type Statement interface {
	statementNode()
}

// Expression is the interface implemented by all expression nodes.
type Expression interface {
	expressionNode()
}

// Query is an ordered sequence of statements, preserving source order.
type Query struct {
	Statements []Statement `json:"statements"`
}

// -----------------------------------------------------------------------------
// Statements

// SelectStatement represents a single SELECT with its optional clauses in
// grammar order. Columns is non-empty on any successfully parsed statement.
type SelectStatement struct {
	Distinct   bool          `json:"distinct,omitempty"`
	DistinctKw *token.Token  `json:"distinct_kw,omitempty"` // DISTINCT or ALL
	Top        *TopArg       `json:"top,omitempty"`
	Columns    []SelectItem  `json:"columns"`
	Into       *IntoArg      `json:"into,omitempty"`
	Table      *TableArg     `json:"table,omitempty"`
	WhereKw    *token.Token  `json:"where_kw,omitempty"`
	Where      Expression    `json:"where,omitempty"`
	GroupByKws []token.Token `json:"group_by_kws,omitempty"`
	GroupBy    []Expression  `json:"group_by,omitempty"`
	HavingKw   *token.Token  `json:"having_kw,omitempty"`
	Having     Expression    `json:"having,omitempty"`
	OrderByKws []token.Token `json:"order_by_kws,omitempty"`
	OrderBy    []OrderByArg  `json:"order_by,omitempty"`
	Offset     *OffsetArg    `json:"offset,omitempty"`
	Fetch      *FetchArg     `json:"fetch,omitempty"`
}

func (s *SelectStatement) statementNode() {}

// CTEStatement wraps one or more common table expressions around a terminal
// select.
type CTEStatement struct {
	WithKw token.Token             `json:"with_kw"`
	CTEs   []CommonTableExpression `json:"ctes"`
	Select *SelectStatement        `json:"select"`
}

func (s *CTEStatement) statementNode() {}

// CommonTableExpression is one WITH entry: a name, an optional column list
// and a parenthesized select.
type CommonTableExpression struct {
	Name    token.Token      `json:"name"`
	Columns []Expression     `json:"columns,omitempty"`
	AsKw    token.Token      `json:"as_kw"`
	Query   *SelectStatement `json:"query"`
}

// -----------------------------------------------------------------------------
// Select items

// SelectItem is the interface implemented by the four select column shapes.
type SelectItem interface {
	selectItem()
}

// WildcardItem is a bare *.
type WildcardItem struct {
	Token token.Token `json:"token"`
}

func (i *WildcardItem) selectItem() {}

// UnnamedItem is an expression column without an alias.
type UnnamedItem struct {
	Expr Expression `json:"expr"`
}

func (i *UnnamedItem) selectItem() {}

// AliasedItem is an expression column with an alias. AsKw is nil when the
// alias was implicit.
type AliasedItem struct {
	Expr  Expression   `json:"expr"`
	AsKw  *token.Token `json:"as_kw,omitempty"`
	Alias token.Token  `json:"alias"`
}

func (i *AliasedItem) selectItem() {}

// WildcardAliasedItem is a qualified wildcard column such as t.* with an
// alias.
type WildcardAliasedItem struct {
	Expr  Expression   `json:"expr"`
	AsKw  *token.Token `json:"as_kw,omitempty"`
	Alias token.Token  `json:"alias"`
}

func (i *WildcardAliasedItem) selectItem() {}

// -----------------------------------------------------------------------------
// Clause arguments

// TopArg is TOP n, optionally with PERCENT and WITH TIES.
type TopArg struct {
	TopKw     token.Token  `json:"top_kw"`
	Quantity  Expression   `json:"quantity"`
	PercentKw *token.Token `json:"percent_kw,omitempty"`
	WithKw    *token.Token `json:"with_kw,omitempty"`
	TiesKw    *token.Token `json:"ties_kw,omitempty"`
}

// Percent reports whether the TOP argument carries PERCENT.
func (t *TopArg) Percent() bool { return t.PercentKw != nil }

// WithTies reports whether the TOP argument carries WITH TIES.
func (t *TopArg) WithTies() bool { return t.WithKw != nil && t.TiesKw != nil }

// IntoArg is INTO table, optionally with ON filegroup.
type IntoArg struct {
	IntoKw    token.Token  `json:"into_kw"`
	Table     Expression   `json:"table"`
	OnKw      *token.Token `json:"on_kw,omitempty"`
	FileGroup Expression   `json:"file_group,omitempty"`
}

// TableSourceKind discriminates the table source shapes.
type TableSourceKind string

const (
	TableSourceTable    TableSourceKind = "TABLE"
	TableSourceFunction TableSourceKind = "FUNCTION"
	TableSourceDerived  TableSourceKind = "DERIVED"
)

// TableSource is one named table, table-valued function or derived table,
// optionally aliased.
type TableSource struct {
	Kind   TableSourceKind `json:"kind"`
	Source Expression      `json:"source"`
	AsKw   *token.Token    `json:"as_kw,omitempty"`
	Alias  *token.Token    `json:"alias,omitempty"`
}

// TableArg is the FROM clause: a source table plus its joins in source
// order.
type TableArg struct {
	FromKw token.Token `json:"from_kw"`
	Table  TableSource `json:"table"`
	Joins  []Join      `json:"joins,omitempty"`
}

// JoinType identifies the join variant.
type JoinType string

const (
	JoinInner      JoinType = "INNER"
	JoinLeft       JoinType = "LEFT"
	JoinLeftOuter  JoinType = "LEFT OUTER"
	JoinRight      JoinType = "RIGHT"
	JoinRightOuter JoinType = "RIGHT OUTER"
	JoinFull       JoinType = "FULL"
	JoinFullOuter  JoinType = "FULL OUTER"
)

// Join is one joined table with its ON condition.
type Join struct {
	Type      JoinType     `json:"type"`
	Table     TableSource  `json:"table"`
	OnKw      *token.Token `json:"on_kw,omitempty"`
	Condition Expression   `json:"condition,omitempty"`
}

// OrderByArg is one ORDER BY element. OrderKw is the kept ASC or DESC token
// when one was written.
type OrderByArg struct {
	Column  Expression   `json:"column"`
	OrderKw *token.Token `json:"order_kw,omitempty"`
}

// Ascending reports the sort direction; an element without a keyword sorts
// ascending.
func (o *OrderByArg) Ascending() bool {
	return o.OrderKw == nil || o.OrderKw.Kind == token.ASC
}

// OffsetArg is OFFSET n ROW|ROWS.
type OffsetArg struct {
	OffsetKw token.Token `json:"offset_kw"`
	Value    Expression  `json:"value"`
	RowKw    token.Token `json:"row_kw"`
}

// FetchArg is FETCH FIRST|NEXT n ROW|ROWS ONLY.
type FetchArg struct {
	FetchKw token.Token `json:"fetch_kw"`
	FirstKw token.Token `json:"first_kw"` // FIRST or NEXT
	Value   Expression  `json:"value"`
	RowKw   token.Token `json:"row_kw"`
	OnlyKw  token.Token `json:"only_kw"`
}
