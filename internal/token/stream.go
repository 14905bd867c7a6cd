package token

// Stream is a fully materialized token sequence with lookahead.
// The lexer stage produces one Stream per translation unit.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Next returns the next token, or EOF forever once exhausted.
func (s *Stream) Next() Token {
	if s.pos >= len(s.tokens) {
		if len(s.tokens) > 0 {
			last := s.tokens[len(s.tokens)-1]
			return Token{Type: EOF, Line: last.Line, Column: last.Column}
		}
		return Token{Type: EOF, Line: 1}
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

// Peek returns up to n upcoming tokens without consuming them.
func (s *Stream) Peek(n int) []Token {
	end := s.pos + n
	if end > len(s.tokens) {
		end = len(s.tokens)
	}
	return s.tokens[s.pos:end]
}

func (s *Stream) Len() int { return len(s.tokens) }
