// Package lexer implements a single-pass tokenizer for T-SQL source text.
package lexer

import (
	"strings"

	"github.com/parsql/tsql/token"
)

// Lexer reads tokens from an in-memory source string. It is consumed exactly
// once; after the end of input every call keeps returning EOF. Token literals
// are substrings of the input, so the input must outlive the tokens.
type Lexer struct {
	input        string
	position     int  // byte offset of ch
	readPosition int  // byte offset after ch
	ch           byte // current byte, 0 at end of input
}

// New creates a Lexer over input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize scans the whole input, stopping at the first lexical error.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var items []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return items, err
		}
		items = append(items, tok)
		if tok.Kind == token.EOF {
			return items, nil
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
	} else {
		l.ch = l.input[l.readPosition]
		l.position = l.readPosition
	}
	l.readPosition = l.position + 1
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) span(start int) token.Span {
	return token.NewSpan(uint32(start), uint32(l.position))
}

// NextToken returns the next token or a *LexicalError. EOF is a real token
// with an empty span at the end of the input.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	start := l.position

	switch {
	case l.ch == 0:
		return token.New(token.EOF, "", l.span(start)), nil
	case l.ch == ',':
		return l.charToken(token.COMMA), nil
	case l.ch == '(':
		return l.charToken(token.LPAREN), nil
	case l.ch == ')':
		return l.charToken(token.RPAREN), nil
	case l.ch == ';':
		return l.charToken(token.SEMICOLON), nil
	case l.ch == '.':
		return l.charToken(token.PERIOD), nil
	case l.ch == '+':
		return l.charToken(token.PLUS), nil
	case l.ch == '*':
		return l.charToken(token.ASTERISK), nil
	case l.ch == '/':
		return l.charToken(token.SLASH), nil
	case l.ch == '%':
		return l.charToken(token.PERCENT_SIGN), nil
	case l.ch == '=':
		return l.charToken(token.EQ), nil
	case l.ch == '!':
		if l.peekChar() == '=' {
			l.readChar()
			return l.charToken(token.BANG_EQ), nil
		}
		return l.unrecognized(start)
	case l.ch == '<':
		switch l.peekChar() {
		case '>':
			l.readChar()
			return l.charToken(token.LT_GT), nil
		case '=':
			l.readChar()
			return l.charToken(token.LTE), nil
		}
		return l.charToken(token.LT), nil
	case l.ch == '>':
		if l.peekChar() == '=' {
			l.readChar()
			return l.charToken(token.GTE), nil
		}
		return l.charToken(token.GT), nil
	case l.ch == '-':
		if l.peekChar() == '-' {
			literal := l.readLineComment()
			return token.New(token.COMMENT, literal, l.span(start)), nil
		}
		return l.charToken(token.MINUS), nil
	case l.ch == '\'':
		literal, ok := l.readString()
		if !ok {
			return token.Token{}, &LexicalError{Kind: UnexpectedStringEnd, Span: l.span(start)}
		}
		return token.New(token.STRING, literal, l.span(start)), nil
	case l.ch == '[':
		if isLetter(l.peekChar()) {
			literal, ok := l.readQuotedIdentifier()
			if !ok {
				return token.Token{}, &LexicalError{Kind: UnexpectedQuotedIdentifierEnd, Span: l.span(start)}
			}
			return token.New(token.QUOTED_IDENT, literal, l.span(start)), nil
		}
		return l.unrecognized(start)
	case l.ch == '@':
		if isLetter(l.peekChar()) {
			l.readChar()
			literal := l.readIdentifier()
			return token.New(token.LOCAL_VAR, literal, l.span(start)), nil
		}
		return l.unrecognized(start)
	case l.ch == '_':
		if isLetter(l.peekChar()) {
			literal := l.readIdentifier()
			return token.New(token.Lookup(literal), literal, l.span(start)), nil
		}
		return l.unrecognized(start)
	case isLetter(l.ch):
		literal := l.readIdentifier()
		return token.New(token.Lookup(literal), literal, l.span(start)), nil
	case isDigit(l.ch):
		literal := l.readNumber()
		return token.New(token.NUMBER, literal, l.span(start)), nil
	default:
		return l.unrecognized(start)
	}
}

// charToken consumes the current byte and returns it as a token of the given
// kind. Two-byte operators call readChar once beforehand so the whole
// operator is covered by the span.
func (l *Lexer) charToken(kind token.Kind) token.Token {
	end := l.readPosition
	start := end - len(kind.String())
	l.readChar()
	return token.New(kind, l.input[start:end], token.NewSpan(uint32(start), uint32(end)))
}

// unrecognized advances past the offending byte so a caller that chooses to
// keep scanning can do so.
func (l *Lexer) unrecognized(start int) (token.Token, error) {
	l.readChar()
	return token.Token{}, &LexicalError{Kind: UnrecognizedToken, Span: l.span(start)}
}

// readIdentifier consumes [A-Za-z_][A-Za-z0-9_]* and returns the literal.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber consumes digits with an optional fractional part. There is no
// exponent form and no sign; a sign is a unary operator at the expression
// level.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

// readString consumes a '...' literal and returns the interior text. ok is
// false when the input ends before the closing quote.
func (l *Lexer) readString() (string, bool) {
	l.readChar()
	start := l.position
	for l.ch != '\'' {
		if l.ch == 0 {
			return "", false
		}
		l.readChar()
	}
	literal := l.input[start:l.position]
	l.readChar()
	return literal, true
}

// readQuotedIdentifier consumes a [...] identifier and returns the interior
// text. ok is false when the input ends before the closing bracket.
func (l *Lexer) readQuotedIdentifier() (string, bool) {
	l.readChar()
	start := l.position
	for l.ch != ']' {
		if l.ch == 0 {
			return "", false
		}
		l.readChar()
	}
	literal := l.input[start:l.position]
	l.readChar()
	return literal, true
}

// readLineComment consumes -- through the end of the line and returns the
// trimmed interior text. The newline itself is not part of the comment.
func (l *Lexer) readLineComment() string {
	l.readChar()
	l.readChar()
	start := l.position
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return strings.TrimSpace(l.input[start:l.position])
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
