package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/coordctl/internal/testutil/testlog"
)

func TestNewAndLookup(t *testing.T) {
	testlog.Start(t)
	c, err := New([]Entry{
		{DefIndex: 501, Name: "Null Talisman", Image: "items/null_talisman.png"},
		{DefIndex: 42, Name: "Quelling Blade"},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	e, ok := c.Lookup(501)
	if !ok || e.Name != "Null Talisman" {
		t.Fatalf("lookup: %+v ok=%v", e, ok)
	}
	if _, ok := c.Lookup(7); ok {
		t.Fatalf("unknown index resolved")
	}
	entries := c.Entries()
	if len(entries) != 2 || entries[0].DefIndex != 42 {
		t.Fatalf("entries: %+v", entries)
	}
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	testlog.Start(t)
	if _, err := New([]Entry{{DefIndex: 0, Name: "x"}}); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("zero def_index accepted: %v", err)
	}
	if _, err := New([]Entry{{DefIndex: 3}}); !errors.Is(err, ErrInvalidEntry) {
		t.Fatalf("missing name accepted: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "catalog.toml")
	data := `
[[items]]
def_index = 501
name = "Null Talisman"
image = "items/null_talisman.png"

[[items]]
def_index = 42
name = "Quelling Blade"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if e, ok := c.Lookup(42); !ok || e.Name != "Quelling Blade" {
		t.Fatalf("lookup: %+v ok=%v", e, ok)
	}
}
