// Package catalog maps item definition indexes to display metadata.
//
// The catalog is a read-only capability passed explicitly to whoever needs
// it; the codec and session core never consume it.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

var ErrInvalidEntry = errors.New("catalog: invalid entry")

// Entry is the display metadata for one definition index.
type Entry struct {
	DefIndex int    `toml:"def_index"`
	Name     string `toml:"name"`
	Image    string `toml:"image"`
}

// Catalog resolves definition indexes to display entries.
type Catalog interface {
	Lookup(defIndex int) (Entry, bool)
}

// Static is an immutable in-memory Catalog.
type Static struct {
	entries map[int]Entry
}

type catalogFile struct {
	Items []Entry `toml:"items"`
}

// LoadFile reads a static catalog from a toml file with repeated [[items]]
// tables.
func LoadFile(path string) (*Static, error) {
	var raw catalogFile
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", path, err)
	}
	return New(raw.Items)
}

// New builds a Static catalog, rejecting entries without a positive
// definition index or a name.
func New(entries []Entry) (*Static, error) {
	m := make(map[int]Entry, len(entries))
	for i, e := range entries {
		if e.DefIndex <= 0 {
			return nil, fmt.Errorf("%w: items[%d] missing def_index", ErrInvalidEntry, i)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("%w: items[%d] missing name", ErrInvalidEntry, i)
		}
		m[e.DefIndex] = e
	}
	return &Static{entries: m}, nil
}

func (c *Static) Lookup(defIndex int) (Entry, bool) {
	e, ok := c.entries[defIndex]
	return e, ok
}

// Entries returns all entries sorted by definition index.
func (c *Static) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DefIndex < out[j].DefIndex
	})
	return out
}
