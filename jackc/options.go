package jackc

import "github.com/reusee/jackc/vars"

// Options names the runtime routines the emitted code calls.
type Options struct {
	Allocator    string
	Multiply     string
	Divide       string
	StringNew    string
	StringAppend string

	// ReferenceCompat reproduces the reference compiler output:
	// unary minus as sub and the subroutine scope dropped after every return statement.
	ReferenceCompat bool

	// AllOnesTrue emits true as "push constant 0; not" (-1) instead of "push constant 1; not" (-2).
	AllOnesTrue bool
}

func DefaultOptions() Options {
	return Options{
		Allocator:    "Memory.alloc",
		Multiply:     "Math.multiply",
		Divide:       "Math.divide",
		StringNew:    "String.new",
		StringAppend: "String.appendChar",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	o.Allocator = vars.FirstNonZero(o.Allocator, d.Allocator)
	o.Multiply = vars.FirstNonZero(o.Multiply, d.Multiply)
	o.Divide = vars.FirstNonZero(o.Divide, d.Divide)
	o.StringNew = vars.FirstNonZero(o.StringNew, d.StringNew)
	o.StringAppend = vars.FirstNonZero(o.StringAppend, d.StringAppend)
	return o
}
