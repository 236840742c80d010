// Package schema reads, rewrites, and applies the JSON Schema files of a
// content repository.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Document is a JSON Schema file held as a generic tree for
// read-modify-write. Numbers are kept as json.Number so that untouched
// parts of the schema round-trip without reformatting.
type Document struct {
	path string
	root map[string]any
}

// LoadDocument reads a schema file from disk.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("schema JSON parsing error: %w", err)
	}

	return &Document{path: path, root: root}, nil
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Root returns the document tree. Mutations are persisted by Save.
func (d *Document) Root() map[string]any {
	return d.root
}

// Save writes the document back to its file with 4-space indentation,
// unescaped non-ASCII, and a trailing newline, matching how the schemas
// are authored.
func (d *Document) Save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.root); err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	return os.WriteFile(d.path, buf.Bytes(), 0o644)
}
