package actors

import (
	"fmt"
	"strings"
)

// Mapping is one display-name to canonical-identifier entry.
// The identifier is a namespaced taxonomy token such as "att&ck::G0134";
// it is externally defined and never generated here.
type Mapping struct {
	Name string
	ID   string
}

// Table is an immutable actor lookup built once at construction time.
// Entries keep their declaration order so that equal-score fuzzy matches
// rank deterministically.
type Table struct {
	entries   []Mapping
	index     map[string]string // display name -> canonical id
	redirects map[string]string // spelling variant -> display name
}

// NewTable builds a Table from ordered mappings and a redirect map.
// Mapping names must be unique; redirects are applied to queries exactly
// once, before lookup, and are deliberately not followed transitively.
func NewTable(entries []Mapping, redirects map[string]string) (*Table, error) {
	index := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, dup := index[e.Name]; dup {
			return nil, fmt.Errorf("duplicate actor name: %s", e.Name)
		}
		index[e.Name] = e.ID
	}

	t := &Table{
		entries:   make([]Mapping, len(entries)),
		index:     index,
		redirects: make(map[string]string, len(redirects)),
	}
	copy(t.entries, entries)
	for alias, target := range redirects {
		t.redirects[alias] = target
	}
	return t, nil
}

// Normalize uppercases and trims a query, then applies the redirect table
// in a single substitution pass.
func (t *Table) Normalize(query string) string {
	name := strings.ToUpper(strings.TrimSpace(query))
	if target, ok := t.redirects[name]; ok {
		name = target
	}
	return name
}

// Lookup returns the canonical id for an already-normalized display name.
func (t *Table) Lookup(name string) (string, bool) {
	id, ok := t.index[name]
	return id, ok
}

// Entries returns the mappings in declaration order. Callers must not
// modify the returned slice.
func (t *Table) Entries() []Mapping {
	return t.entries
}

// Len returns the number of mappings in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
