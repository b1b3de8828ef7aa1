package vmcode

import (
	"bufio"
	"io"
)

// Emitter records instructions in order and optionally streams their listing to a writer.
type Emitter struct {
	instructions []Instruction
	output       io.Writer
	err          error
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		output: w,
	}
}

func (e *Emitter) Emit(instruction Instruction) {
	e.instructions = append(e.instructions, instruction)
	if e.output == nil || e.err != nil {
		return
	}
	if _, err := io.WriteString(e.output, instruction.Line()+"\n"); err != nil {
		e.err = err
	}
}

func (e *Emitter) Push(segment Segment, index int) {
	e.Emit(Push(segment, index))
}

func (e *Emitter) Pop(segment Segment, index int) {
	e.Emit(Pop(segment, index))
}

func (e *Emitter) Arithmetic(op Op) {
	e.Emit(Arithmetic(op))
}

func (e *Emitter) Label(name string) {
	e.Emit(Label(name))
}

func (e *Emitter) Goto(name string) {
	e.Emit(Goto(name))
}

func (e *Emitter) IfGoto(name string) {
	e.Emit(IfGoto(name))
}

func (e *Emitter) Function(name string, nLocals int) {
	e.Emit(Function(name, nLocals))
}

func (e *Emitter) Call(name string, nArgs int) {
	e.Emit(Call(name, nArgs))
}

func (e *Emitter) Return() {
	e.Emit(Return())
}

func (e *Emitter) Instructions() []Instruction {
	return e.instructions
}

// Err returns the first error from the output writer.
func (e *Emitter) Err() error {
	return e.err
}

func Render(w io.Writer, instructions []Instruction) error {
	bw := bufio.NewWriter(w)
	for _, instruction := range instructions {
		if _, err := bw.WriteString(instruction.Line() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
