package jackc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/jackc/jackconfigs"
	"github.com/reusee/jackc/modes"
)

func TestModule(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() jackconfigs.Allocator {
			return "Heap.alloc"
		},
		func() jackconfigs.ReferenceCompat {
			return true
		},
		func() jackconfigs.AllOnesTrue {
			return true
		},
	).Call(func(
		compile CompileFunc,
		options Options,
	) {
		if options.Allocator != "Heap.alloc" || !options.ReferenceCompat || !options.AllOnesTrue {
			t.Fatalf("got %+v", options)
		}
		if options.Multiply != "Math.multiply" {
			t.Fatalf("got %+v", options)
		}

		unit, err := compile(t.Context(), "Box.jack", strings.NewReader(`
class Box {
  field int size;
  constructor Box new() {
    return this;
  }
  method int neg() {
    return -size;
  }
}
`))
		if err != nil {
			t.Fatal(err)
		}

		buf := new(bytes.Buffer)
		if _, err := unit.WriteTo(buf); err != nil {
			t.Fatal(err)
		}
		expected := "function Box.new 0\n" +
			"\tpush constant 1\n" +
			"\tcall Heap.alloc 1\n" +
			"\tpop pointer 0\n" +
			"\tpush pointer 0\n" +
			"\treturn\n" +
			"function Box.neg 0\n" +
			"\tpush argument 0\n" +
			"\tpop pointer 0\n" +
			"\tpush this 0\n" +
			"\tsub\n" +
			"\treturn\n"
		if buf.String() != expected {
			t.Fatalf("got %q", buf.String())
		}
	})
}
