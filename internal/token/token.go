package token

type TokenType string

// Token carries the raw lexeme and the decoded literal value (string for
// identifiers and strings, int64/float64 for numbers).
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	NEWLINE = "NEWLINE"

	// Identifiers and literals
	IDENT_LOWER = "IDENT_LOWER" // foo, get_mileage
	IDENT_UPPER = "IDENT_UPPER" // Car, NewCar
	INT         = "INT"
	FLOAT       = "FLOAT"
	STRING      = "STRING"

	// Operators
	ASSIGN      = "="
	PLUS        = "+"
	MINUS       = "-"
	ASTERISK    = "*"
	SLASH       = "/"
	PERCENT     = "%"
	BANG        = "!"
	EQ          = "=="
	NOT_EQ      = "!="
	LT          = "<"
	GT          = ">"
	LTE         = "<="
	GTE         = ">="
	AND         = "&&"
	OR          = "||"
	ARROW       = "->"
	COLON       = ":"
	COLON_MINUS = ":-"
	DOT         = "."

	// Delimiters
	COMMA    = ","
	LPAREN   = "("
	RPAREN   = ")"
	LBRACE   = "{"
	RBRACE   = "}"
	LBRACKET = "["
	RBRACKET = "]"

	// Keywords
	IMPL     = "IMPL"
	DEFAULT  = "DEFAULT"
	WITH     = "WITH"
	FOR      = "FOR"
	FUN      = "FUN"
	TYPE     = "TYPE"
	TRUE     = "TRUE"
	FALSE    = "FALSE"
	NIL      = "NIL"
)

var keywords = map[string]TokenType{
	"impl":    IMPL,
	"default": DEFAULT,
	"with":    WITH,
	"for":     FOR,
	"fun":     FUN,
	"type":    TYPE,
	"true":    TRUE,
	"false":   FALSE,
	"nil":     NIL,
}

// LookupIdent returns the keyword token type for ident, or IDENT_LOWER.
// Uppercase identifiers never reach here; the lexer classifies them directly.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT_LOWER
}
