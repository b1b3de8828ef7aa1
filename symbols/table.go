package symbols

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var ErrDuplicate = errors.New("duplicated declaration")

// Table is the symbol table of one compilation unit.
// Lookups try the subroutine scope first, so locals and arguments shadow fields and statics.
type Table struct {
	unit       map[string]Symbol
	subroutine map[string]Symbol
	counts     [numClasses]int
}

func NewTable() *Table {
	t := new(Table)
	t.ResetUnitScope()
	return t
}

func (t *Table) scopeOf(class Class) map[string]Symbol {
	if class.unitScoped() {
		return t.unit
	}
	return t.subroutine
}

func (t *Table) Add(name string, class Class, typ string) (Symbol, error) {
	if class >= numClasses {
		return Symbol{}, fmt.Errorf("invalid storage class %d", class)
	}
	scope := t.scopeOf(class)
	if prev, ok := scope[name]; ok {
		return Symbol{}, fmt.Errorf("%w: %s already declared as %s %s", ErrDuplicate, name, prev.Class, prev.Type)
	}
	symbol := Symbol{
		Name:  name,
		Class: class,
		Type:  typ,
		Index: t.counts[class],
	}
	t.counts[class]++
	scope[name] = symbol
	return symbol, nil
}

func (t *Table) Resolve(name string) (Symbol, bool) {
	if symbol, ok := t.subroutine[name]; ok {
		return symbol, true
	}
	symbol, ok := t.unit[name]
	return symbol, ok
}

func (t *Table) Contains(name string) bool {
	_, ok := t.Resolve(name)
	return ok
}

// ResetSubroutineScope drops arguments and locals.
// For methods argument 0 is the receiver, so declared arguments start at 1.
func (t *Table) ResetSubroutineScope(method bool) {
	t.subroutine = make(map[string]Symbol)
	t.counts[Argument] = 0
	t.counts[Local] = 0
	if method {
		t.counts[Argument] = 1
	}
}

func (t *Table) ResetUnitScope() {
	t.unit = make(map[string]Symbol)
	t.counts[Static] = 0
	t.counts[Field] = 0
	t.ResetSubroutineScope(false)
}

func (t *Table) Count(class Class) int {
	if class >= numClasses {
		return 0
	}
	return t.counts[class]
}

func (t *Table) FieldCount() int {
	return t.counts[Field]
}

func (t *Table) LocalCount() int {
	return t.counts[Local]
}

// All yields the live symbols, unit scope first, each scope ordered by class and index.
func (t *Table) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, scope := range []map[string]Symbol{t.unit, t.subroutine} {
			symbols := make([]Symbol, 0, len(scope))
			for _, symbol := range scope {
				symbols = append(symbols, symbol)
			}
			slices.SortFunc(symbols, func(a, b Symbol) int {
				if a.Class != b.Class {
					return int(a.Class) - int(b.Class)
				}
				return a.Index - b.Index
			})
			for _, symbol := range symbols {
				if !yield(symbol) {
					return
				}
			}
		}
	}
}
