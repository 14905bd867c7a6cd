package lexer

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/traitmix/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '\n':
		tok = newToken(token.NEWLINE, l.ch, l.line, l.column)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Lexeme: "==", Literal: "==", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ASSIGN, l.ch, l.line, l.column)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch, l.line, l.column)
	case '-':
		if l.peekChar() == '>' {
			ch := l.ch
			l.readChar()
			literal := string(ch) + string(l.ch)
			tok = token.Token{Type: token.ARROW, Lexeme: literal, Literal: literal, Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.MINUS, l.ch, l.line, l.column)
		}
	case '*':
		tok = newToken(token.ASTERISK, l.ch, l.line, l.column)
	case '/':
		tok = newToken(token.SLASH, l.ch, l.line, l.column)
	case '%':
		tok = newToken(token.PERCENT, l.ch, l.line, l.column)
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			literal := string(ch) + string(l.ch)
			tok = token.Token{Type: token.NOT_EQ, Lexeme: literal, Literal: literal, Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.BANG, l.ch, l.line, l.column)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LTE, Lexeme: "<=", Literal: "<=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.LT, l.ch, l.line, l.column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GTE, Lexeme: ">=", Literal: ">=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.GT, l.ch, l.line, l.column)
		}
	case '&':
		if l.peekChar() == '&' {
			ch := l.ch
			l.readChar()
			literal := string(ch) + string(l.ch)
			tok = token.Token{Type: token.AND, Lexeme: literal, Literal: literal, Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
		}
	case '|':
		if l.peekChar() == '|' {
			ch := l.ch
			l.readChar()
			literal := string(ch) + string(l.ch)
			tok = token.Token{Type: token.OR, Lexeme: literal, Literal: literal, Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
		}
	case ':':
		if l.peekChar() == '-' {
			ch := l.ch
			l.readChar()
			literal := string(ch) + string(l.ch)
			tok = token.Token{Type: token.COLON_MINUS, Lexeme: literal, Literal: literal, Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.COLON, l.ch, l.line, l.column)
		}
	case '.':
		tok = newToken(token.DOT, l.ch, l.line, l.column)
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, l.line, l.column)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, l.line, l.column)
	case '"':
		startLine, startCol := l.line, l.column
		content, ok := l.readString()
		if !ok {
			tok = token.Token{Type: token.ILLEGAL, Lexeme: content, Literal: "unterminated string literal", Line: startLine, Column: startCol}
		} else {
			tok = token.Token{Type: token.STRING, Lexeme: fmt.Sprintf("%q", content), Literal: content, Line: startLine, Column: startCol}
		}
	case 0:
		tok.Lexeme = ""
		tok.Type = token.EOF
		tok.Line = l.line
		tok.Column = l.column
	default:
		if isLetter(l.ch) {
			startLine, startCol := l.line, l.column
			lexeme := l.readIdentifier()
			tok.Lexeme = lexeme
			tok.Type = l.determineIdentifierType(lexeme)
			tok.Literal = lexeme
			tok.Line = startLine
			tok.Column = startCol
			return tok
		} else if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
	}

	l.readChar()
	return tok
}

func (l *Lexer) readString() (string, bool) {
	var result []byte
	buf := make([]byte, 4)
	for {
		l.readChar()
		if l.ch == 0 {
			return string(result), false
		}
		if l.ch == '"' {
			return string(result), true
		}
		if l.ch == '\\' {
			l.readChar() // consume backslash
			switch l.ch {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			case '\\':
				result = append(result, '\\')
			case '"':
				result = append(result, '"')
			default:
				// Unknown escape - keep both
				result = append(result, '\\')
				n := utf8.EncodeRune(buf, l.ch)
				result = append(result, buf[:n]...)
			}
			continue
		}
		n := utf8.EncodeRune(buf, l.ch)
		result = append(result, buf[:n]...)
	}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) determineIdentifierType(ident string) token.TokenType {
	if len(ident) == 0 {
		return token.ILLEGAL
	}

	firstChar := ident[0]
	if 'A' <= firstChar && firstChar <= 'Z' {
		return token.IDENT_UPPER
	}

	// If it's lowercase, check if it's a keyword
	return token.LookupIdent(ident)
}

func (l *Lexer) readNumber() token.Token {
	startLine, startCol := l.line, l.column
	position := l.position
	isFloat := false

	for isDigit(l.ch) {
		l.readChar()
	}

	// Check for float dot
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar() // .
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	lexeme := l.input[position:l.position]

	if isFloat {
		val, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: err.Error(), Line: startLine, Column: startCol}
		}
		return token.Token{Type: token.FLOAT, Lexeme: lexeme, Literal: val, Line: startLine, Column: startCol}
	}

	val, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: "integer overflow", Line: startLine, Column: startCol}
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: val, Line: startLine, Column: startCol}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func newToken(tokenType token.TokenType, ch rune, line, col int) token.Token {
	literal := string(ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readChar()
		}
		// Handle comments
		if l.ch == '/' {
			if l.peekChar() == '/' {
				l.readChar() // consume first /
				l.readChar() // consume second /
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
				continue
			} else if l.peekChar() == '*' {
				l.readChar() // consume /
				l.readChar() // consume *
				for l.ch != 0 {
					if l.ch == '*' && l.peekChar() == '/' {
						l.readChar() // consume *
						l.readChar() // consume /
						break
					}
					l.readChar()
				}
				continue
			}
		}
		break
	}
}
