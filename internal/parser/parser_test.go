package parser

import (
	"strings"
	"testing"

	"github.com/funvibe/traitmix/internal/ast"
	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/lexer"
	"github.com/funvibe/traitmix/internal/pipeline"
)

func parseSource(t *testing.T, input string) (*ast.Program, *pipeline.PipelineContext) {
	t.Helper()
	ctx := pipeline.NewPipelineContext(input)
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&ParserProcessor{}).Process(ctx)
	program, _ := ctx.AstRoot.(*ast.Program)
	return program, ctx
}

func checkParserErrors(t *testing.T, ctx *pipeline.PipelineContext) {
	t.Helper()
	if len(ctx.Errors) == 0 {
		return
	}
	for _, err := range ctx.Errors {
		t.Errorf("parser error: %s", err.Error())
	}
	t.FailNow()
}

func TestParseDefaultImplBlock(t *testing.T) {
	input := `default impl Car for NewCar {
    fun get_mileage() Option<Int> {
        Some(6000)
    }
    fun has_bluetooth() Bool {
        true
    }
}`
	program, ctx := parseSource(t, input)
	checkParserErrors(t, ctx)

	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	impl, ok := program.Statements[0].(*ast.ImplBlock)
	if !ok {
		t.Fatalf("statement is not *ast.ImplBlock, got %T", program.Statements[0])
	}
	if impl.Mode != ast.ImplDefault {
		t.Errorf("wrong mode: %v", impl.Mode)
	}
	if impl.Trait.Value != "Car" {
		t.Errorf("trait: expected Car, got %s", impl.Trait.Value)
	}
	if impl.Target.Value != "NewCar" {
		t.Errorf("target: expected NewCar, got %s", impl.Target.Value)
	}
	if len(impl.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(impl.Members))
	}
	if impl.Members[0].MemberName() != "get_mileage" {
		t.Errorf("members[0]: expected get_mileage, got %s", impl.Members[0].MemberName())
	}
	if impl.Members[1].MemberName() != "has_bluetooth" {
		t.Errorf("members[1]: expected has_bluetooth, got %s", impl.Members[1].MemberName())
	}

	fm, ok := impl.Members[0].(*ast.FunctionMember)
	if !ok {
		t.Fatalf("members[0] is not a function member, got %T", impl.Members[0])
	}
	ret, ok := fm.ReturnType.(*ast.NamedType)
	if !ok || ret.Name.Value != "Option" || len(ret.Args) != 1 {
		t.Fatalf("wrong return type: %#v", fm.ReturnType)
	}
}

func TestParseWithImplBlock(t *testing.T) {
	input := `with impl NewCar for UsedCar {
    fun has_bluetooth() Bool {
        false
    }
}`
	program, ctx := parseSource(t, input)
	checkParserErrors(t, ctx)

	impl := program.Statements[0].(*ast.ImplBlock)
	if impl.Mode != ast.ImplWith {
		t.Errorf("wrong mode: %v", impl.Mode)
	}
	if impl.Trait.Value != "NewCar" || impl.Target.Value != "UsedCar" {
		t.Errorf("wrong head: %s for %s", impl.Trait.Value, impl.Target.Value)
	}
}

func TestParsePlainImplBlock(t *testing.T) {
	input := `impl Show for Point {
    fun show(self: Point) String {
        "point"
    }
}`
	program, ctx := parseSource(t, input)
	checkParserErrors(t, ctx)

	impl := program.Statements[0].(*ast.ImplBlock)
	if impl.Mode != ast.ImplPlain {
		t.Errorf("wrong mode: %v", impl.Mode)
	}
	fm := impl.Members[0].(*ast.FunctionMember)
	if len(fm.Parameters) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(fm.Parameters))
	}
	if fm.Parameters[0].Name.Value != "self" {
		t.Errorf("param name: %s", fm.Parameters[0].Name.Value)
	}
	pt, ok := fm.Parameters[0].Type.(*ast.NamedType)
	if !ok || pt.Name.Value != "Point" {
		t.Errorf("param type: %#v", fm.Parameters[0].Type)
	}
}

func TestParseConstantAndTypeMembers(t *testing.T) {
	input := `default impl Pricing for BasePricing {
    base_rate : Int :- 100
    markup :- 5 + 1
    type Currency = Map<String, List<Int>>
}`
	program, ctx := parseSource(t, input)
	checkParserErrors(t, ctx)

	impl := program.Statements[0].(*ast.ImplBlock)
	if len(impl.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(impl.Members))
	}

	cm, ok := impl.Members[0].(*ast.ConstantMember)
	if !ok {
		t.Fatalf("members[0] is not a constant member, got %T", impl.Members[0])
	}
	if cm.TypeAnnotation == nil {
		t.Error("type annotation missing on base_rate")
	}

	cm2 := impl.Members[1].(*ast.ConstantMember)
	if cm2.TypeAnnotation != nil {
		t.Error("markup should have no annotation")
	}
	if _, ok := cm2.Value.(*ast.InfixExpression); !ok {
		t.Errorf("markup value is not infix, got %T", cm2.Value)
	}

	tm, ok := impl.Members[2].(*ast.TypeMember)
	if !ok {
		t.Fatalf("members[2] is not a type member, got %T", impl.Members[2])
	}
	nested := tm.Value.(*ast.NamedType)
	if nested.Name.Value != "Map" || len(nested.Args) != 2 {
		t.Fatalf("wrong type member value: %#v", nested)
	}
	inner := nested.Args[1].(*ast.NamedType)
	if inner.Name.Value != "List" || len(inner.Args) != 1 {
		t.Errorf("nested generic not parsed: %#v", inner)
	}
}

func TestMalformedImplHeads(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing impl keyword", `default Car for NewCar { }`},
		{"qualified trait", `default impl vehicles.Car for NewCar { }`},
		{"generic trait", `default impl Car<Int> for NewCar { }`},
		{"qualified target", `with impl NewCar for cars.UsedCar { }`},
		{"generic target", `with impl NewCar for UsedCar<Int> { }`},
		{"lowercase trait", `default impl car for NewCar { }`},
		{"missing for", `default impl Car NewCar { }`},
		{"missing target", `default impl Car for { }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ctx := parseSource(t, tt.input)
			if len(ctx.Errors) == 0 {
				t.Fatal("expected a diagnostic, got none")
			}
			err := ctx.Errors[0]
			if err.Code != diagnostics.ErrM001 {
				t.Errorf("wrong code: %s", err.Code)
			}
			if err.Message != diagnostics.MsgMalformedImpl {
				t.Errorf("wrong message: %q", err.Message)
			}
		})
	}
}

func TestUnsupportedMemberInsideImpl(t *testing.T) {
	input := `default impl Car for NewCar {
    42
}`
	_, ctx := parseSource(t, input)
	if len(ctx.Errors) == 0 {
		t.Fatal("expected a diagnostic, got none")
	}
	if ctx.Errors[0].Code != diagnostics.ErrP006 {
		t.Errorf("wrong code: %s", ctx.Errors[0].Code)
	}
	if !strings.Contains(ctx.Errors[0].Message, "function, constant, or associated type") {
		t.Errorf("wrong message: %q", ctx.Errors[0].Message)
	}
}

func TestErrorRecoveryAcrossStatements(t *testing.T) {
	input := `default impl car for X { }

k :- 1`
	program, ctx := parseSource(t, input)
	if len(ctx.Errors) == 0 {
		t.Fatal("expected a diagnostic for the broken impl")
	}
	// The constant after the broken block still parses.
	found := false
	for _, stmt := range program.Statements {
		if _, ok := stmt.(*ast.ConstantDeclaration); ok {
			found = true
		}
	}
	if !found {
		t.Error("constant after broken impl was not recovered")
	}
}

func TestParseTopLevelConstants(t *testing.T) {
	input := `limit : Int :- 10
greeting :- "hello"`
	program, ctx := parseSource(t, input)
	checkParserErrors(t, ctx)

	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	cd := program.Statements[0].(*ast.ConstantDeclaration)
	if cd.Name.Value != "limit" || cd.TypeAnnotation == nil {
		t.Errorf("limit declaration malformed: %#v", cd)
	}
}

func TestParseMemberSource(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"function", "fun get_mileage() Option<Int> {\n    Some(6000)\n}", false},
		{"constant", "base_rate : Int :- 100", false},
		{"associated type", "type Currency = String", false},
		{"impl is not a member", "impl X for Y { }", true},
		{"two members", "a :- 1\nb :- 2", true},
		{"expression", "1 + 2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, err := ParseMemberSource(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			}
			if member == nil {
				t.Fatal("nil member without error")
			}
		})
	}
}

func TestParseMemberSourceErrorCode(t *testing.T) {
	_, err := ParseMemberSource("impl X for Y { }")
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Code != diagnostics.ErrM003 {
		t.Errorf("wrong code: %s", err.Code)
	}
	if err.Message != diagnostics.MsgUnsupportedMember {
		t.Errorf("wrong message: %q", err.Message)
	}
}
