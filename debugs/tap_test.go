package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/jackc/modes"
)

func TestTap(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestEval(t *testing.T) {
	type unit struct {
		Name         string
		Instructions []string
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		eval Eval,
	) {
		globals := map[string]any{
			"units": map[string]any{
				"Main": unit{
					Name:         "Main",
					Instructions: []string{"function Main.main 0", "return"},
				},
			},
			"listing": func(name string) string {
				return "listing of " + name
			},
		}

		for expr, expected := range map[string]string{
			`units["Main"]["Name"]`:              "Main",
			`len(units["Main"]["Instructions"])`: "2",
			`listing("Main")`:                    "listing of Main",
			`[k for k in units]`:                 `["Main"]`,
		} {
			got, err := eval(t.Context(), expr, globals)
			if err != nil {
				t.Fatalf("%s: %v", expr, err)
			}
			if got != expected {
				t.Fatalf("%s: got %q", expr, got)
			}
		}

		if _, err := eval(t.Context(), `units["Nope"]`, globals); err == nil {
			t.Fatal("expected error")
		}
	})
}
