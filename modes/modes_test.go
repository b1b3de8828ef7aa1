package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
		tt *testing.T,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if tt != nil {
			t.Fatal()
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		tt *testing.T,
		mode Mode,
	) {
		if mode != ModeDevelopment {
			tt.Fatalf("got %v", mode)
		}
		if mode.String() != "development" {
			tt.Fatal()
		}
	})
}
