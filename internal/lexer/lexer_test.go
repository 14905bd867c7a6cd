package lexer

import (
	"testing"

	"github.com/funvibe/traitmix/internal/pipeline"
	"github.com/funvibe/traitmix/internal/token"
)

func TestNextTokenImplHeader(t *testing.T) {
	input := `default impl Car for NewCar {
    fun get_mileage() Option<Int> {
        Some(6000)
    }
}`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.DEFAULT, "default"},
		{token.IMPL, "impl"},
		{token.IDENT_UPPER, "Car"},
		{token.FOR, "for"},
		{token.IDENT_UPPER, "NewCar"},
		{token.LBRACE, "{"},
		{token.NEWLINE, "\n"},
		{token.FUN, "fun"},
		{token.IDENT_LOWER, "get_mileage"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.IDENT_UPPER, "Option"},
		{token.LT, "<"},
		{token.IDENT_UPPER, "Int"},
		{token.GT, ">"},
		{token.LBRACE, "{"},
		{token.NEWLINE, "\n"},
		{token.IDENT_UPPER, "Some"},
		{token.LPAREN, "("},
		{token.INT, "6000"},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.RBRACE, "}"},
		{token.NEWLINE, "\n"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%q, got=%q (%q)", i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestNextTokenOperators(t *testing.T) {
	input := `a :- 1 + 2 * 3
b : Int :- -4
c :- x == y && p != q || m <= n
d :- "hi\n"
e :- 1.5`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.IDENT_LOWER, "a"},
		{token.COLON_MINUS, ":-"},
		{token.INT, "1"},
		{token.PLUS, "+"},
		{token.INT, "2"},
		{token.ASTERISK, "*"},
		{token.INT, "3"},
		{token.NEWLINE, "\n"},
		{token.IDENT_LOWER, "b"},
		{token.COLON, ":"},
		{token.IDENT_UPPER, "Int"},
		{token.COLON_MINUS, ":-"},
		{token.MINUS, "-"},
		{token.INT, "4"},
		{token.NEWLINE, "\n"},
		{token.IDENT_LOWER, "c"},
		{token.COLON_MINUS, ":-"},
		{token.IDENT_LOWER, "x"},
		{token.EQ, "=="},
		{token.IDENT_LOWER, "y"},
		{token.AND, "&&"},
		{token.IDENT_LOWER, "p"},
		{token.NOT_EQ, "!="},
		{token.IDENT_LOWER, "q"},
		{token.OR, "||"},
		{token.IDENT_LOWER, "m"},
		{token.LTE, "<="},
		{token.IDENT_LOWER, "n"},
		{token.NEWLINE, "\n"},
		{token.IDENT_LOWER, "d"},
		{token.COLON_MINUS, ":-"},
		{token.STRING, `"hi\n"`},
		{token.NEWLINE, "\n"},
		{token.IDENT_LOWER, "e"},
		{token.COLON_MINUS, ":-"},
		{token.FLOAT, "1.5"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%q, got=%q (%q)", i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := `// leading comment
x :- 1 /* inline */ + 2`

	l := New(input)
	var types []token.TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}

	want := []token.TokenType{
		token.NEWLINE, token.IDENT_LOWER, token.COLON_MINUS,
		token.INT, token.PLUS, token.INT, token.EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("token count: expected %d, got %d (%v)", len(want), len(types), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d]: expected %q, got %q", i, want[i], types[i])
		}
	}
}

func TestStringLiteralValue(t *testing.T) {
	l := New(`"a\tb\"c"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %q", tok.Type)
	}
	if got := tok.Literal.(string); got != "a\tb\"c" {
		t.Errorf("wrong decoded value: %q", got)
	}
}

func TestProcessorReportsIllegalTokens(t *testing.T) {
	ctx := pipeline.NewPipelineContext("x :- 1 ? 2")
	ctx.FilePath = "bad.tmx"
	ctx = (&LexerProcessor{}).Process(ctx)

	if ctx.TokenStream == nil {
		t.Fatal("token stream not set")
	}
	if len(ctx.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(ctx.Errors))
	}
	if ctx.Errors[0].Code != "L001" {
		t.Errorf("wrong code: %s", ctx.Errors[0].Code)
	}
	if ctx.Errors[0].File != "bad.tmx" {
		t.Errorf("file not set on diagnostic: %q", ctx.Errors[0].File)
	}
}

func TestLinePositions(t *testing.T) {
	l := New("a\nbb\nC")
	first := l.NextToken()
	if first.Line != 1 {
		t.Errorf("first token line: expected 1, got %d", first.Line)
	}
	l.NextToken() // newline
	second := l.NextToken()
	if second.Line != 2 || second.Lexeme != "bb" {
		t.Errorf("second token: expected bb at line 2, got %q at line %d", second.Lexeme, second.Line)
	}
	l.NextToken() // newline
	third := l.NextToken()
	if third.Type != token.IDENT_UPPER || third.Line != 3 {
		t.Errorf("third token: expected upper ident at line 3, got %q at line %d", third.Type, third.Line)
	}
}
