package diagnostics

import (
	"fmt"

	"github.com/funvibe/traitmix/internal/token"
)

// Error codes. L = lexer, P = parser, M = mixin transform, C = cache.
const (
	ErrL001 = "L001" // illegal character or malformed literal
	ErrP001 = "P001" // unexpected token
	ErrP002 = "P002" // no parse rule for token
	ErrP006 = "P006" // general syntax error
	ErrM001 = "M001" // malformed impl construct shape
	ErrM002 = "M002" // no registered default for alias
	ErrM003 = "M003" // unsupported member kind in a default
	ErrC001 = "C001" // registry cache failure
)

// Fixed diagnostic texts for the fatal transform errors. These are part of
// the tool's contract and must not be reworded per call site.
const (
	MsgMalformedImpl     = "expected a syntactically valid trait implementation with a single trait name and a single target type name"
	MsgNoDefault         = "no registered default for this trait alias"
	MsgUnsupportedMember = "default implementation members must be functions, constants, or associated types"
)

// DiagnosticError is a positioned, coded error collected on the pipeline
// context. Stages append; only the driver decides process failure.
type DiagnosticError struct {
	Code    string
	Message string
	File    string
	Line    int
	Column  int
}

// NewError builds a diagnostic at tok's position. An optional trailing got
// value is appended as ", got 'X'".
func NewError(code string, tok token.Token, message string, got ...interface{}) *DiagnosticError {
	if len(got) > 0 && got[0] != nil {
		message = fmt.Sprintf("%s, got '%v'", message, got[0])
	}
	return &DiagnosticError{
		Code:    code,
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: [%s] %s", e.File, e.Line, e.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: [%s] %s", e.Line, e.Column, e.Code, e.Message)
}
