// Package format renders a parsed query back to SQL text under configurable
// style settings. Rendering is a pure read-only traversal of the tree in
// canonical clause order.
package format

import (
	"strings"

	"github.com/parsql/tsql/ast"
	"github.com/parsql/tsql/token"
)

// KeywordCase selects the letter case applied to rendered keywords.
type KeywordCase int

const (
	KeywordUpper KeywordCase = iota
	KeywordLower
)

// IndentCommaLists selects the layout of select column lists.
type IndentCommaLists int

const (
	// CommaStart puts the comma at the start of the continuation line.
	CommaStart IndentCommaLists = iota
	// TrailingComma keeps the comma at the end of the previous line.
	TrailingComma
	// SpaceAfterComma puts the comma at the start of the continuation line
	// followed by a space.
	SpaceAfterComma
)

// Settings configures the renderer.
type Settings struct {
	KeywordCase             KeywordCase
	IndentWidth             int
	UseTab                  bool
	IndentCommaLists        IndentCommaLists
	IndentInLists           bool
	IndentBetweenConditions bool
}

// DefaultSettings returns the renderer defaults: uppercase keywords and a
// four space indent.
func DefaultSettings() Settings {
	return Settings{KeywordCase: KeywordUpper, IndentWidth: 4}
}

type formatter struct {
	settings Settings
	sb       strings.Builder
}

// Format renders the query. Statements are separated by semicolons.
func Format(query *ast.Query, settings Settings) string {
	f := &formatter{settings: settings}
	for i, stmt := range query.Statements {
		if i > 0 {
			f.sb.WriteString("\n")
		}
		f.statement(stmt)
		f.sb.WriteString(";")
	}
	return f.sb.String()
}

func (f *formatter) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.SelectStatement:
		f.selectStatement(s)
	case *ast.CTEStatement:
		f.cteStatement(s)
	}
}

// keyword writes a fixed keyword spelling in the configured case.
func (f *formatter) keyword(kw string) {
	switch f.settings.KeywordCase {
	case KeywordLower:
		f.sb.WriteString(strings.ToLower(kw))
	default:
		f.sb.WriteString(strings.ToUpper(kw))
	}
}

func (f *formatter) indent() {
	if f.settings.UseTab {
		f.sb.WriteString(strings.Repeat("\t", f.settings.IndentWidth))
		return
	}
	f.sb.WriteString(strings.Repeat(" ", f.settings.IndentWidth))
}

// columnComma writes the separator between select columns per the comma
// list layout.
func (f *formatter) columnComma() {
	switch f.settings.IndentCommaLists {
	case TrailingComma:
		f.sb.WriteString(",\n")
		f.indent()
	case SpaceAfterComma:
		f.sb.WriteString("\n")
		f.indent()
		f.sb.WriteString(", ")
	default:
		f.sb.WriteString("\n")
		f.indent()
		f.sb.WriteString(",")
	}
}

// aliasToken restores the source delimiters the lexer stripped from
// quoted identifiers and strings.
func (f *formatter) aliasToken(tok token.Token) {
	switch tok.Kind {
	case token.QUOTED_IDENT:
		f.sb.WriteString("[")
		f.sb.WriteString(tok.Literal)
		f.sb.WriteString("]")
	case token.STRING:
		f.sb.WriteString("'")
		f.sb.WriteString(tok.Literal)
		f.sb.WriteString("'")
	default:
		f.sb.WriteString(tok.Literal)
	}
}

func (f *formatter) inListComma() {
	if f.settings.IndentInLists {
		f.columnComma()
		return
	}
	f.sb.WriteString(", ")
}
