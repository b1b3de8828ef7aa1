package vmcode

import "strconv"

type Segment string

const (
	Constant Segment = "constant"
	Argument Segment = "argument"
	Local    Segment = "local"
	Static   Segment = "static"
	This     Segment = "this"
	That     Segment = "that"
	Pointer  Segment = "pointer"
	Temp     Segment = "temp"
)

type Op string

const (
	Add Op = "add"
	Sub Op = "sub"
	Neg Op = "neg"
	Eq  Op = "eq"
	Gt  Op = "gt"
	Lt  Op = "lt"
	And Op = "and"
	Or  Op = "or"
	Not Op = "not"
)

type Kind string

const (
	KindPush       Kind = "push"
	KindPop        Kind = "pop"
	KindArithmetic Kind = "arithmetic"
	KindLabel      Kind = "label"
	KindGoto       Kind = "goto"
	KindIfGoto     Kind = "if-goto"
	KindFunction   Kind = "function"
	KindCall       Kind = "call"
	KindReturn     Kind = "return"
)

// Instruction is one VM instruction.
// Segment and Index are set for push and pop, Op for arithmetic,
// Name for labels, jumps, functions and calls, N for nLocals or nArgs.
type Instruction struct {
	Kind    Kind
	Segment Segment
	Index   int
	Op      Op
	Name    string
	N       int
}

func Push(segment Segment, index int) Instruction {
	return Instruction{Kind: KindPush, Segment: segment, Index: index}
}

func Pop(segment Segment, index int) Instruction {
	return Instruction{Kind: KindPop, Segment: segment, Index: index}
}

func Arithmetic(op Op) Instruction {
	return Instruction{Kind: KindArithmetic, Op: op}
}

func Label(name string) Instruction {
	return Instruction{Kind: KindLabel, Name: name}
}

func Goto(name string) Instruction {
	return Instruction{Kind: KindGoto, Name: name}
}

func IfGoto(name string) Instruction {
	return Instruction{Kind: KindIfGoto, Name: name}
}

func Function(name string, nLocals int) Instruction {
	return Instruction{Kind: KindFunction, Name: name, N: nLocals}
}

func Call(name string, nArgs int) Instruction {
	return Instruction{Kind: KindCall, Name: name, N: nArgs}
}

func Return() Instruction {
	return Instruction{Kind: KindReturn}
}

func (i Instruction) String() string {
	switch i.Kind {
	case KindPush, KindPop:
		return string(i.Kind) + " " + string(i.Segment) + " " + strconv.Itoa(i.Index)
	case KindArithmetic:
		return string(i.Op)
	case KindLabel, KindGoto, KindIfGoto:
		return string(i.Kind) + " " + i.Name
	case KindFunction, KindCall:
		return string(i.Kind) + " " + i.Name + " " + strconv.Itoa(i.N)
	case KindReturn:
		return "return"
	}
	return "invalid instruction " + string(i.Kind)
}

// Line is the rendered listing line without the trailing newline.
func (i Instruction) Line() string {
	switch i.Kind {
	case KindFunction, KindLabel:
		return i.String()
	}
	return "\t" + i.String()
}
