package lexer

import "github.com/parsql/tsql/token"

// ErrorKind discriminates the lexical failure modes.
type ErrorKind int

const (
	// UnexpectedStringEnd means the input ended inside a '...' literal.
	UnexpectedStringEnd ErrorKind = iota
	// UnexpectedQuotedIdentifierEnd means the input ended inside a [...]
	// identifier.
	UnexpectedQuotedIdentifierEnd
	// UnrecognizedToken means a byte no rule accepts. The cursor advances
	// past it.
	UnrecognizedToken
)

// LexicalError is a scanning failure anchored to the span of the offending
// text. For unterminated strings and quoted identifiers the span starts at
// the opening delimiter.
type LexicalError struct {
	Kind ErrorKind
	Span token.Span
}

func (e *LexicalError) Error() string {
	return e.Details()
}

// Details renders the human-readable message for the error.
func (e *LexicalError) Details() string {
	switch e.Kind {
	case UnexpectedStringEnd:
		return "I was expecting a ' to close the string"
	case UnexpectedQuotedIdentifierEnd:
		return "I was expecting a ] to close the quoted identifier"
	case UnrecognizedToken:
		return "I found a character I do not recognize"
	default:
		return "I found a character I do not recognize"
	}
}

// Location maps the error span's start offset to a 1-based line and column
// within source.
func (e *LexicalError) Location(source string) (line, col int) {
	line, col = 1, 1
	for i := 0; i < len(source) && i < int(e.Span.Start); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
