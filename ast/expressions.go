package ast

import "github.com/parsql/tsql/token"

// -----------------------------------------------------------------------------
// Leaves

// Asterisk is a bare * in expression position.
type Asterisk struct {
	Token token.Token `json:"token"`
}

func (e *Asterisk) expressionNode() {}

// Identifier is an unquoted identifier.
type Identifier struct {
	Token token.Token `json:"token"`
}

func (e *Identifier) expressionNode() {}

// QuotedIdentifier is a [bracket delimited] identifier. The token literal is
// the interior text.
type QuotedIdentifier struct {
	Token token.Token `json:"token"`
}

func (e *QuotedIdentifier) expressionNode() {}

// StringLiteral is a '...' literal. The token literal is the interior text.
type StringLiteral struct {
	Token token.Token `json:"token"`
}

func (e *StringLiteral) expressionNode() {}

// NumberLiteral is an integer or decimal literal.
type NumberLiteral struct {
	Token token.Token `json:"token"`
}

func (e *NumberLiteral) expressionNode() {}

// LocalVariable is an @name variable. The token literal is the name without
// the @.
type LocalVariable struct {
	Token token.Token `json:"token"`
}

func (e *LocalVariable) expressionNode() {}

// Keyword is a reserved word in expression position, such as NULL or a
// builtin function name.
type Keyword struct {
	Token token.Token `json:"token"`
}

func (e *Keyword) expressionNode() {}

// Compound is a dotted name such as schema.table.column or t.*.
type Compound struct {
	Parts []Expression `json:"parts"`
}

func (e *Compound) expressionNode() {}

// -----------------------------------------------------------------------------
// Operators

// Arithmetic is a binary + - * / % expression.
type Arithmetic struct {
	Operator token.Token `json:"operator"`
	Left     Expression  `json:"left"`
	Right    Expression  `json:"right"`
}

func (e *Arithmetic) expressionNode() {}

// Comparison is a binary = != <> < <= > >= expression.
type Comparison struct {
	Operator token.Token `json:"operator"`
	Left     Expression  `json:"left"`
	Right    Expression  `json:"right"`
}

func (e *Comparison) expressionNode() {}

// And is a binary AND expression.
type And struct {
	AndKw token.Token `json:"and_kw"`
	Left  Expression  `json:"left"`
	Right Expression  `json:"right"`
}

func (e *And) expressionNode() {}

// Or is a binary OR expression.
type Or struct {
	OrKw  token.Token `json:"or_kw"`
	Left  Expression  `json:"left"`
	Right Expression  `json:"right"`
}

func (e *Or) expressionNode() {}

// Unary is a prefix + or - expression.
type Unary struct {
	Operator token.Token `json:"operator"`
	Right    Expression  `json:"right"`
}

func (e *Unary) expressionNode() {}

// Not is a prefix NOT expression.
type Not struct {
	NotKw token.Token `json:"not_kw"`
	Expr  Expression  `json:"expr"`
}

func (e *Not) expressionNode() {}

// -----------------------------------------------------------------------------
// Calls and casts

// Function is a call, builtin or user defined, with an optional OVER clause.
// Name is a Keyword node for builtins and an Identifier or Compound
// otherwise.
type Function struct {
	Name Expression   `json:"name"`
	Args []Expression `json:"args,omitempty"`
	Over *OverClause  `json:"over,omitempty"`
}

func (e *Function) expressionNode() {}

// DataTypeSize is the parenthesized size of a sized data type, with an
// optional scale for decimal types.
type DataTypeSize struct {
	Size  token.Token  `json:"size"`
	Scale *token.Token `json:"scale,omitempty"`
}

// DataType is a type name with an optional size argument, e.g. VARCHAR(50)
// or NUMERIC(10, 2).
type DataType struct {
	Name token.Token   `json:"name"`
	Size *DataTypeSize `json:"size,omitempty"`
}

// Cast is CAST(expr AS type).
type Cast struct {
	CastKw   token.Token `json:"cast_kw"`
	Expr     Expression  `json:"expr"`
	AsKw     token.Token `json:"as_kw"`
	DataType DataType    `json:"data_type"`
}

func (e *Cast) expressionNode() {}

// -----------------------------------------------------------------------------
// Subqueries and predicates

// Subquery is a parenthesized SELECT in expression position.
type Subquery struct {
	Select *SelectStatement `json:"select"`
}

func (e *Subquery) expressionNode() {}

// InList is test [NOT] IN (expr, ...).
type InList struct {
	TestExpr Expression   `json:"test_expr"`
	NotKw    *token.Token `json:"not_kw,omitempty"`
	InKw     token.Token  `json:"in_kw"`
	List     []Expression `json:"list"`
}

func (e *InList) expressionNode() {}

// InSubquery is test [NOT] IN (subquery).
type InSubquery struct {
	TestExpr Expression   `json:"test_expr"`
	NotKw    *token.Token `json:"not_kw,omitempty"`
	InKw     token.Token  `json:"in_kw"`
	Subquery Expression   `json:"subquery"`
}

func (e *InSubquery) expressionNode() {}

// Between is test [NOT] BETWEEN begin AND end.
type Between struct {
	TestExpr  Expression   `json:"test_expr"`
	NotKw     *token.Token `json:"not_kw,omitempty"`
	BetweenKw token.Token  `json:"between_kw"`
	Begin     Expression   `json:"begin"`
	AndKw     token.Token  `json:"and_kw"`
	End       Expression   `json:"end"`
}

func (e *Between) expressionNode() {}

// Like is match [NOT] LIKE pattern.
type Like struct {
	Match   Expression   `json:"match"`
	NotKw   *token.Token `json:"not_kw,omitempty"`
	LikeKw  token.Token  `json:"like_kw"`
	Pattern Expression   `json:"pattern"`
}

func (e *Like) expressionNode() {}

// Is is test IS [NOT] NULL|TRUE. Value is the kept NULL or TRUE token.
type Is struct {
	TestExpr Expression   `json:"test_expr"`
	IsKw     token.Token  `json:"is_kw"`
	NotKw    *token.Token `json:"not_kw,omitempty"`
	Value    token.Token  `json:"value"`
}

func (e *Is) expressionNode() {}

// Exists is EXISTS (subquery).
type Exists struct {
	ExistsKw token.Token `json:"exists_kw"`
	Subquery Expression  `json:"subquery"`
}

func (e *Exists) expressionNode() {}

// All is a quantified comparison scalar op ALL (subquery).
type All struct {
	AllKw    token.Token `json:"all_kw"`
	Scalar   Expression  `json:"scalar"`
	Operator token.Token `json:"operator"`
	Subquery Expression  `json:"subquery"`
}

func (e *All) expressionNode() {}

// Some is a quantified comparison scalar op SOME (subquery).
type Some struct {
	SomeKw   token.Token `json:"some_kw"`
	Scalar   Expression  `json:"scalar"`
	Operator token.Token `json:"operator"`
	Subquery Expression  `json:"subquery"`
}

func (e *Some) expressionNode() {}

// Any is a quantified comparison scalar op ANY (subquery).
type Any struct {
	AnyKw    token.Token `json:"any_kw"`
	Scalar   Expression  `json:"scalar"`
	Operator token.Token `json:"operator"`
	Subquery Expression  `json:"subquery"`
}

func (e *Any) expressionNode() {}

// -----------------------------------------------------------------------------
// CASE

// CaseCondition is one arm of a CASE expression.
type CaseCondition interface {
	caseCondition()
}

// WhenCondition is WHEN value-or-condition THEN result.
type WhenCondition struct {
	WhenKw token.Token `json:"when_kw"`
	When   Expression  `json:"when"`
	ThenKw token.Token `json:"then_kw"`
	Result Expression  `json:"result"`
}

func (c *WhenCondition) caseCondition() {}

// ElseCondition is the optional trailing ELSE result.
type ElseCondition struct {
	ElseKw token.Token `json:"else_kw"`
	Result Expression  `json:"result"`
}

func (c *ElseCondition) caseCondition() {}

// SimpleCase is CASE input WHEN value THEN result ... END.
type SimpleCase struct {
	CaseKw     token.Token     `json:"case_kw"`
	Input      Expression      `json:"input"`
	Conditions []CaseCondition `json:"conditions"`
	EndKw      token.Token     `json:"end_kw"`
}

func (e *SimpleCase) expressionNode() {}

// SearchedCase is CASE WHEN condition THEN result ... END.
type SearchedCase struct {
	CaseKw     token.Token     `json:"case_kw"`
	Conditions []CaseCondition `json:"conditions"`
	EndKw      token.Token     `json:"end_kw"`
}

func (e *SearchedCase) expressionNode() {}

// -----------------------------------------------------------------------------
// Window specifications

// OverClause is the OVER (...) window specification of a function call.
type OverClause struct {
	OverKw         token.Token   `json:"over_kw"`
	PartitionByKws []token.Token `json:"partition_by_kws,omitempty"`
	PartitionBy    []Expression  `json:"partition_by,omitempty"`
	OrderByKws     []token.Token `json:"order_by_kws,omitempty"`
	OrderBy        []OrderByArg  `json:"order_by,omitempty"`
	WindowFrame    *WindowFrame  `json:"window_frame,omitempty"`
}

// RowsOrRange selects the window frame unit.
type RowsOrRange string

const (
	FrameRows  RowsOrRange = "ROWS"
	FrameRange RowsOrRange = "RANGE"
)

// FrameBoundKind identifies a window frame bound shape.
type FrameBoundKind string

const (
	BoundCurrentRow         FrameBoundKind = "CURRENT ROW"
	BoundPreceding          FrameBoundKind = "PRECEDING"
	BoundFollowing          FrameBoundKind = "FOLLOWING"
	BoundUnboundedPreceding FrameBoundKind = "UNBOUNDED PRECEDING"
	BoundUnboundedFollowing FrameBoundKind = "UNBOUNDED FOLLOWING"
)

// FrameBound is one window frame bound. Quantity is set only for the
// n PRECEDING and n FOLLOWING shapes. Kws keeps the bound's keyword tokens.
type FrameBound struct {
	Kind     FrameBoundKind `json:"kind"`
	Kws      []token.Token  `json:"kws,omitempty"`
	Quantity Expression     `json:"quantity,omitempty"`
}

// WindowFrame is the ROWS|RANGE frame clause of an OVER specification. End
// is nil for the single-bound form.
type WindowFrame struct {
	RowsOrRange   RowsOrRange  `json:"rows_or_range"`
	RowsOrRangeKw token.Token  `json:"rows_or_range_kw"`
	BetweenKw     *token.Token `json:"between_kw,omitempty"`
	Start         FrameBound   `json:"start"`
	AndKw         *token.Token `json:"and_kw,omitempty"`
	End           *FrameBound  `json:"end,omitempty"`
}
