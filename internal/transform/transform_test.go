package transform

import (
	"testing"

	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/lexer"
	"github.com/funvibe/traitmix/internal/parser"
	"github.com/funvibe/traitmix/internal/pipeline"
	"github.com/funvibe/traitmix/internal/prettyprinter"
	"github.com/funvibe/traitmix/internal/registry"
)

// expand runs one translation unit through the full pipeline against the
// given session. Passing nil lets the transform stage create a fresh one.
func expand(t *testing.T, session *registry.Session, source string) *pipeline.PipelineContext {
	t.Helper()
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = "test.tmx"
	ctx.Session = session
	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&Processor{},
		&prettyprinter.PrintProcessor{},
	)
	return p.Run(ctx)
}

func expandOK(t *testing.T, session *registry.Session, source string) string {
	t.Helper()
	ctx := expand(t, session, source)
	for _, err := range ctx.Errors {
		t.Errorf("unexpected error: %s", err.Error())
	}
	if t.Failed() {
		t.FailNow()
	}
	return ctx.Output
}

const carDefaults = `default impl Car for NewCar {
    fun get_mileage() Option<Int> {
        Some(6000)
    }
    fun has_bluetooth() Bool {
        true
    }
}`

func TestRegistrationEmitsNothing(t *testing.T) {
	out := expandOK(t, nil, carDefaults)
	if out != "" {
		t.Errorf("registration block leaked into output:\n%s", out)
	}
}

func TestApplyAllDefaults(t *testing.T) {
	session := registry.NewSession()
	expandOK(t, session, carDefaults)

	out := expandOK(t, session, `with impl NewCar for UsedCar {
}`)
	want := `impl Car for UsedCar {
    fun get_mileage() Option<Int> {
        Some(6000)
    }
    fun has_bluetooth() Bool {
        true
    }
}
`
	if out != want {
		t.Errorf("wrong expansion:\n got: %q\nwant: %q", out, want)
	}
}

func TestPartialOverrideKeepsUserMemberAndAppendsRest(t *testing.T) {
	session := registry.NewSession()
	expandOK(t, session, carDefaults)

	out := expandOK(t, session, `with impl NewCar for OldFashionedCar {
    fun has_bluetooth() Bool {
        false
    }
}`)
	want := `impl Car for OldFashionedCar {
    fun has_bluetooth() Bool {
        false
    }
    fun get_mileage() Option<Int> {
        Some(6000)
    }
}
`
	if out != want {
		t.Errorf("wrong expansion:\n got: %q\nwant: %q", out, want)
	}
}

func TestOverrideMileage(t *testing.T) {
	session := registry.NewSession()
	expandOK(t, session, carDefaults)

	out := expandOK(t, session, `with impl NewCar for WellUsedNewCar {
    fun get_mileage() Option<Int> {
        Some(100000)
    }
}`)
	want := `impl Car for WellUsedNewCar {
    fun get_mileage() Option<Int> {
        Some(100000)
    }
    fun has_bluetooth() Bool {
        true
    }
}
`
	if out != want {
		t.Errorf("wrong expansion:\n got: %q\nwant: %q", out, want)
	}
}

func TestOverrideEverything(t *testing.T) {
	session := registry.NewSession()
	expandOK(t, session, carDefaults)

	out := expandOK(t, session, `with impl NewCar for CustomCar {
    fun has_bluetooth() Bool {
        false
    }
    fun get_mileage() Option<Int> {
        Some(1)
    }
}`)
	// User order wins; nothing is appended.
	want := `impl Car for CustomCar {
    fun has_bluetooth() Bool {
        false
    }
    fun get_mileage() Option<Int> {
        Some(1)
    }
}
`
	if out != want {
		t.Errorf("wrong expansion:\n got: %q\nwant: %q", out, want)
	}
}

func TestUnregisteredAliasIsFatal(t *testing.T) {
	ctx := expand(t, nil, `with impl Ghost for Thing {
}`)
	if len(ctx.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(ctx.Errors))
	}
	err := ctx.Errors[0]
	if err.Code != diagnostics.ErrM002 {
		t.Errorf("wrong code: %s", err.Code)
	}
	if err.Message != diagnostics.MsgNoDefault {
		t.Errorf("wrong message: %q", err.Message)
	}
	if ctx.Output != "" {
		t.Errorf("failing unit produced output:\n%s", ctx.Output)
	}
}

func TestPlainImplPassesThrough(t *testing.T) {
	src := `impl Show for Point {
    fun show(self: Point) String {
        "point"
    }
}`
	out := expandOK(t, nil, src)
	want := src + "\n"
	if out != want {
		t.Errorf("plain impl was rewritten:\n got: %q\nwant: %q", out, want)
	}
}

func TestConstantAndTypeMembersExpand(t *testing.T) {
	session := registry.NewSession()
	expandOK(t, session, `default impl Pricing for BasePricing {
    base_rate : Int :- 100
    type Currency = String
    fun total(n: Int) Int {
        n * base_rate
    }
}`)

	out := expandOK(t, session, `with impl BasePricing for Shop {
    base_rate : Int :- 250
}`)
	want := `impl Pricing for Shop {
    base_rate : Int :- 250
    type Currency = String
    fun total(n: Int) Int {
        n * base_rate
    }
}
`
	if out != want {
		t.Errorf("wrong expansion:\n got: %q\nwant: %q", out, want)
	}
}

func TestReRegistrationOverwrites(t *testing.T) {
	session := registry.NewSession()
	expandOK(t, session, `default impl Car for Alias {
    fun a() Bool {
        true
    }
}`)
	expandOK(t, session, `default impl Bike for Alias {
    fun b() Bool {
        false
    }
}`)

	out := expandOK(t, session, `with impl Alias for Thing {
}`)
	want := `impl Bike for Thing {
    fun b() Bool {
        false
    }
}
`
	if out != want {
		t.Errorf("re-registration did not overwrite:\n got: %q\nwant: %q", out, want)
	}
}

func TestRegisterAndApplyInOneUnit(t *testing.T) {
	out := expandOK(t, nil, carDefaults+`

with impl NewCar for UsedCar {
}

limit : Int :- 10`)
	want := `impl Car for UsedCar {
    fun get_mileage() Option<Int> {
        Some(6000)
    }
    fun has_bluetooth() Bool {
        true
    }
}

limit : Int :- 10
`
	if out != want {
		t.Errorf("wrong expansion:\n got: %q\nwant: %q", out, want)
	}
}

func TestAppliedCopiesAreIndependent(t *testing.T) {
	session := registry.NewSession()
	expandOK(t, session, carDefaults)

	first := expandOK(t, session, `with impl NewCar for A {
}`)
	second := expandOK(t, session, `with impl NewCar for B {
}`)

	if first == second {
		t.Fatal("expected different targets in output")
	}
	// Both expansions carry the full default set.
	for _, out := range []string{first, second} {
		if len(out) == 0 {
			t.Fatal("empty expansion")
		}
	}
}
