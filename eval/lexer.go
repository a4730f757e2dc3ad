package eval

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	input string

	offset int
	width  int

	line   int
	column int

	ch rune
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	if l.offset >= len(l.input) {
		l.width = 0
		l.ch = 0
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.offset:])
	l.width = w
	l.offset += w

	if r == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}

	l.ch = r
}

func (l *lexer) peekRune() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Pos: Position{Line: l.line, Column: l.column}}

	switch l.ch {
	case 0:
		tok.Type = tokenEOF
		tok.Literal = ""
	case '+':
		tok = l.makeToken(tokenPlus, "+")
		l.readRune()
	case '-':
		tok = l.makeToken(tokenMinus, "-")
		l.readRune()
	case '*':
		if l.peekRune() == '*' {
			l.readRune()
			tok = l.makeToken(tokenPower, "**")
		} else {
			tok = l.makeToken(tokenAsterisk, "*")
		}
		l.readRune()
	case '/':
		tok = l.makeToken(tokenSlash, "/")
		l.readRune()
	case '%':
		tok = l.makeToken(tokenPercent, "%")
		l.readRune()
	case '@':
		tok = l.makeToken(tokenAt, "@")
		l.readRune()
	case '<':
		if l.peekRune() == '=' {
			l.readRune()
			tok = l.makeToken(tokenLTE, "<=")
		} else {
			tok = l.makeToken(tokenLT, "<")
		}
		l.readRune()
	case '>':
		if l.peekRune() == '=' {
			l.readRune()
			tok = l.makeToken(tokenGTE, ">=")
		} else {
			tok = l.makeToken(tokenGT, ">")
		}
		l.readRune()
	case '=':
		if l.peekRune() == '=' {
			l.readRune()
			tok = l.makeToken(tokenEQ, "==")
		} else {
			tok = l.makeToken(tokenIllegal, "=")
		}
		l.readRune()
	case '!':
		if l.peekRune() == '=' {
			l.readRune()
			tok = l.makeToken(tokenNotEQ, "!=")
		} else {
			tok = l.makeToken(tokenBang, "!")
		}
		l.readRune()
	case ',':
		tok = l.makeToken(tokenComma, ",")
		l.readRune()
	case ':':
		tok = l.makeToken(tokenColon, ":")
		l.readRune()
	case '?':
		tok = l.makeToken(tokenQuestion, "?")
		l.readRune()
	case '|':
		tok = l.makeToken(tokenPipe, "|")
		l.readRune()
	case '(':
		tok = l.makeToken(tokenLParen, "(")
		l.readRune()
	case ')':
		tok = l.makeToken(tokenRParen, ")")
		l.readRune()
	case '{':
		tok = l.makeToken(tokenLBrace, "{")
		l.readRune()
	case '}':
		tok = l.makeToken(tokenRBrace, "}")
		l.readRune()
	case '[':
		tok = l.makeToken(tokenLBracket, "[")
		l.readRune()
	case ']':
		tok = l.makeToken(tokenRBracket, "]")
		l.readRune()
	case '"':
		literal, ok := l.readString()
		if ok {
			tok = l.makeToken(tokenString, literal)
		} else {
			tok = l.makeToken(tokenIllegal, literal)
		}
	default:
		switch {
		case unicode.IsDigit(l.ch):
			literal, isFloat := l.readNumber()
			if isFloat {
				tok = l.makeToken(tokenFloat, literal)
			} else {
				tok = l.makeToken(tokenInt, literal)
			}
		case isIdentStart(l.ch):
			literal := l.readIdentifier()
			switch literal {
			case "true":
				tok = l.makeToken(tokenTrue, literal)
			case "false":
				tok = l.makeToken(tokenFalse, literal)
			default:
				tok = l.makeToken(tokenIdent, literal)
			}
		default:
			tok = l.makeToken(tokenIllegal, string(l.ch))
			l.readRune()
		}
	}

	return tok
}

func (l *lexer) makeToken(tt TokenType, literal string) Token {
	return Token{Type: tt, Literal: literal, Pos: Position{Line: l.line, Column: l.column}}
}

func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readRune()
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (l *lexer) readIdentifier() string {
	var b strings.Builder
	for isIdentPart(l.ch) {
		b.WriteRune(l.ch)
		l.readRune()
	}
	return b.String()
}

// readNumber consumes an integer or float literal, including the optional
// fraction and exponent parts.
func (l *lexer) readNumber() (literal string, isFloat bool) {
	var b strings.Builder
	for unicode.IsDigit(l.ch) {
		b.WriteRune(l.ch)
		l.readRune()
	}
	if l.ch == '.' && unicode.IsDigit(l.peekRune()) {
		isFloat = true
		b.WriteRune(l.ch)
		l.readRune()
		for unicode.IsDigit(l.ch) {
			b.WriteRune(l.ch)
			l.readRune()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		peek := l.peekRune()
		if unicode.IsDigit(peek) || peek == '+' || peek == '-' {
			isFloat = true
			b.WriteRune(l.ch)
			l.readRune()
			if l.ch == '+' || l.ch == '-' {
				b.WriteRune(l.ch)
				l.readRune()
			}
			for unicode.IsDigit(l.ch) {
				b.WriteRune(l.ch)
				l.readRune()
			}
		}
	}
	return b.String(), isFloat
}

// readString consumes a double-quoted string literal with escape sequences.
// The opening quote is the current rune.
func (l *lexer) readString() (string, bool) {
	var b strings.Builder
	l.readRune()
	for {
		switch l.ch {
		case 0:
			return b.String(), false
		case '"':
			l.readRune()
			return b.String(), true
		case '\\':
			l.readRune()
			switch l.ch {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case '0':
				b.WriteByte(0)
			default:
				b.WriteRune(l.ch)
			}
			l.readRune()
		default:
			b.WriteRune(l.ch)
			l.readRune()
		}
	}
}
