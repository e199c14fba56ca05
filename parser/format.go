package parser

import (
	"github.com/parsql/tsql/ast"
	"github.com/parsql/tsql/internal/format"
)

// FormatSettings configures how Format renders a query.
type FormatSettings = format.Settings

// KeywordCase selects the case of rendered keywords.
type KeywordCase = format.KeywordCase

const (
	KeywordUpper = format.KeywordUpper
	KeywordLower = format.KeywordLower
)

// IndentCommaLists selects the layout of select column lists.
type IndentCommaLists = format.IndentCommaLists

const (
	CommaStart      = format.CommaStart
	TrailingComma   = format.TrailingComma
	SpaceAfterComma = format.SpaceAfterComma
)

// DefaultFormatSettings returns the renderer defaults.
func DefaultFormatSettings() FormatSettings {
	return format.DefaultSettings()
}

// Format returns the SQL string representation of a parsed query.
func Format(query *ast.Query, settings FormatSettings) string {
	return format.Format(query, settings)
}

// FormatSource parses the input and renders it back under the given
// settings.
func FormatSource(input string, settings FormatSettings) (string, error) {
	query, err := Parse(input)
	if err != nil {
		return "", err
	}
	return Format(query, settings), nil
}
