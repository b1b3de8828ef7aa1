package builds

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/jackc/jackc"
	"github.com/reusee/jackc/jackconfigs"
	"github.com/reusee/jackc/modes"
	"github.com/reusee/jackc/sinks"
)

func copyDir(t *testing.T, from string) string {
	t.Helper()
	dir := t.TempDir()
	entries, err := os.ReadDir(from)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		content, err := os.ReadFile(filepath.Join(from, entry.Name()))
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, entry.Name()), content, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCollect(t *testing.T) {
	files, err := Collect([]string{
		"testdata/square",
		"testdata/square/Main.jack",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 ||
		files[0] != filepath.Join("testdata", "square", "Main.jack") ||
		files[1] != filepath.Join("testdata", "square", "Square.jack") {
		t.Fatalf("got %v", files)
	}

	_, err = Collect([]string{t.TempDir()})
	if !errors.Is(err, ErrNoSources) {
		t.Fatalf("got %v", err)
	}
	_, err = Collect([]string{"testdata/nope"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestBuild(t *testing.T) {
	dir := copyDir(t, "testdata/square")

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() jackconfigs.TokensXML {
			return true
		},
		func() jackconfigs.Jobs {
			return 2
		},
	).Call(func(
		build Build,
	) {
		units, err := build(t.Context(), []string{dir})
		if err != nil {
			t.Fatal(err)
		}
		if len(units) != 2 || units[0].Name != "Main" || units[1].Name != "Square" {
			t.Fatalf("got %v", units)
		}
	})

	content, err := os.ReadFile(filepath.Join(dir, "Square.vm"))
	if err != nil {
		t.Fatal(err)
	}
	listing := string(content)
	for _, line := range []string{
		"function Square.new 0\n",
		"\tpush constant 3\n\tcall Memory.alloc 1\n",
		"function Square.grow 0\n",
		"label Square$not_true$0\n",
		"\tcall Screen.drawRectangle 4\n",
	} {
		if !strings.Contains(listing, line) {
			t.Fatalf("%q not in\n%s", line, listing)
		}
	}

	xml, err := os.ReadFile(filepath.Join(dir, "MainT.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(xml, []byte("<tokens>\n<keyword> class </keyword>\n")) {
		t.Fatalf("got %s", xml)
	}
}

func TestBuildErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Good.jack"), []byte(`
class Good {
  function int one() {
    return 1;
  }
}
`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Bad.jack"), []byte(`
class Bad {
  function int one() {
    return x;
  }
}
`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Worse.jack"), []byte(`
class Worse {
`), 0644); err != nil {
		t.Fatal(err)
	}

	stdout := new(bytes.Buffer)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() jackconfigs.Output {
			return "-"
		},
		func() sinks.Stdout {
			return stdout
		},
	).Call(func(
		build Build,
	) {
		units, err := build(t.Context(), []string{dir})
		if !errors.Is(err, jackc.ErrUnresolved) {
			t.Fatalf("got %v", err)
		}
		if !errors.Is(err, jackc.ErrTokensExhausted) {
			t.Fatalf("got %v", err)
		}
		if len(units) != 1 || units[0].Name != "Good" {
			t.Fatalf("got %v", units)
		}
	})

	expected := "function Good.one 0\n\tpush constant 1\n\treturn\n"
	if stdout.String() != expected {
		t.Fatalf("got %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "Bad.vm")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}

func TestBuildTokensFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Main.jack"), []byte(`
class Main {
  function void main() {
    return;
  }
}
`), 0644); err != nil {
		t.Fatal(err)
	}
	// the listing path is taken by a directory
	if err := os.Mkdir(filepath.Join(dir, "MainT.xml"), 0755); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() jackconfigs.TokensXML {
			return true
		},
	).Call(func(
		build Build,
	) {
		units, err := build(t.Context(), []string{dir})
		if err == nil {
			t.Fatal("expected error")
		}
		if len(units) != 0 {
			t.Fatalf("got %v", units)
		}
	})

	if _, err := os.Stat(filepath.Join(dir, "Main.vm")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
	if stat, err := os.Stat(filepath.Join(dir, "MainT.xml")); err != nil || !stat.IsDir() {
		t.Fatalf("got %v", err)
	}
}
