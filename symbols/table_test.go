package symbols

import (
	"errors"
	"slices"
	"testing"
)

func mustAdd(t *testing.T, table *Table, name string, class Class, typ string) Symbol {
	t.Helper()
	symbol, err := table.Add(name, class, typ)
	if err != nil {
		t.Fatal(err)
	}
	return symbol
}

func TestSlotDensity(t *testing.T) {
	table := NewTable()
	mustAdd(t, table, "a", Field, "int")
	mustAdd(t, table, "b", Field, "int")
	mustAdd(t, table, "count", Static, "int")

	table.ResetSubroutineScope(true)
	mustAdd(t, table, "dx", Argument, "int")
	mustAdd(t, table, "x", Local, "int")
	mustAdd(t, table, "y", Local, "Point")

	expected := map[string]Symbol{
		"a":     {"a", Field, "int", 0},
		"b":     {"b", Field, "int", 1},
		"count": {"count", Static, "int", 0},
		"dx":    {"dx", Argument, "int", 1},
		"x":     {"x", Local, "int", 0},
		"y":     {"y", Local, "Point", 1},
	}
	for name, want := range expected {
		got, ok := table.Resolve(name)
		if !ok {
			t.Fatalf("%s not found", name)
		}
		if got != want {
			t.Fatalf("%s: got %+v, want %+v", name, got, want)
		}
	}

	if n := table.FieldCount(); n != 2 {
		t.Fatalf("got %d", n)
	}
	if n := table.LocalCount(); n != 2 {
		t.Fatalf("got %d", n)
	}
	if n := table.Count(Argument); n != 2 {
		t.Fatalf("got %d", n)
	}
}

func TestFunctionArguments(t *testing.T) {
	table := NewTable()
	table.ResetSubroutineScope(false)
	a := mustAdd(t, table, "a", Argument, "int")
	b := mustAdd(t, table, "b", Argument, "int")
	if a.Index != 0 || b.Index != 1 {
		t.Fatalf("got %d %d", a.Index, b.Index)
	}
}

func TestShadowing(t *testing.T) {
	table := NewTable()
	mustAdd(t, table, "size", Field, "int")

	table.ResetSubroutineScope(true)
	mustAdd(t, table, "size", Local, "boolean")

	symbol, ok := table.Resolve("size")
	if !ok || symbol.Class != Local || symbol.Type != "boolean" {
		t.Fatalf("got %+v", symbol)
	}

	table.ResetSubroutineScope(false)
	symbol, ok = table.Resolve("size")
	if !ok || symbol.Class != Field || symbol.Type != "int" {
		t.Fatalf("got %+v", symbol)
	}
}

func TestDuplicate(t *testing.T) {
	table := NewTable()
	mustAdd(t, table, "a", Field, "int")
	if _, err := table.Add("a", Static, "int"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("got %v", err)
	}
	mustAdd(t, table, "a", Argument, "int")
	if _, err := table.Add("a", Local, "int"); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("got %v", err)
	}
	// failed declarations do not consume slots
	if n := table.Count(Static); n != 0 {
		t.Fatalf("got %d", n)
	}
	if n := table.LocalCount(); n != 0 {
		t.Fatalf("got %d", n)
	}
}

func TestResetUnitScope(t *testing.T) {
	table := NewTable()
	mustAdd(t, table, "f", Field, "int")
	table.ResetSubroutineScope(false)
	mustAdd(t, table, "l", Local, "int")

	table.ResetUnitScope()
	if table.Contains("f") || table.Contains("l") {
		t.Fatal("should be cleared")
	}
	if table.FieldCount() != 0 || table.LocalCount() != 0 {
		t.Fatal("counters should be cleared")
	}
	f := mustAdd(t, table, "g", Field, "int")
	if f.Index != 0 {
		t.Fatalf("got %d", f.Index)
	}
}

func TestAll(t *testing.T) {
	table := NewTable()
	mustAdd(t, table, "b", Field, "int")
	mustAdd(t, table, "s", Static, "int")
	mustAdd(t, table, "a", Field, "int")
	table.ResetSubroutineScope(false)
	mustAdd(t, table, "x", Local, "int")
	mustAdd(t, table, "p", Argument, "int")

	var names []string
	for symbol := range table.All() {
		names = append(names, symbol.Name)
	}
	if !slices.Equal(names, []string{"s", "b", "a", "p", "x"}) {
		t.Fatalf("got %v", names)
	}
}
