package objects

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{
			name:     "string passes through",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "integer becomes json.Number",
			input:    3,
			expected: json.Number("3"),
		},
		{
			name:     "integer map keys become strings",
			input:    map[any]any{1: "https://example.com/report"},
			expected: map[string]any{"1": "https://example.com/report"},
		},
		{
			name:     "date becomes bare ISO string",
			input:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			expected: "2024-01-15",
		},
		{
			name:     "timestamp keeps its time component",
			input:    time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			expected: "2024-01-15T09:30:00Z",
		},
		{
			name: "nested structures are walked",
			input: map[string]any{
				"references": map[string]any{
					"public": map[any]any{1: "a", 2: "b"},
				},
				"tags": []any{"x", 7},
			},
			expected: map[string]any{
				"references": map[string]any{
					"public": map[string]any{"1": "a", "2": "b"},
				},
				"tags": []any{"x", json.Number("7")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Normalize(%#v) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tvm.yaml")
	content := `
name: Example TVM
metadata:
  uuid: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
  created: 2024-01-15
references:
  public:
    1: https://example.com/report
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}

	root, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("document root is %T, want map[string]any", doc)
	}

	metadata, _ := root["metadata"].(map[string]any)
	if metadata == nil {
		t.Fatal("metadata missing from document")
	}
	if created, ok := metadata["created"].(string); !ok || created != "2024-01-15" {
		t.Errorf("metadata.created = %#v, want \"2024-01-15\"", metadata["created"])
	}

	refs, _ := root["references"].(map[string]any)
	public, _ := refs["public"].(map[string]any)
	if public == nil {
		t.Fatal("references.public was not normalized to string keys")
	}
	if public["1"] != "https://example.com/report" {
		t.Errorf("references.public[\"1\"] = %#v", public["1"])
	}
}

func TestLoadDocument_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDocument(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("LoadDocument of a missing file succeeded, want error")
	}

	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("name: [broken\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := LoadDocument(path); err == nil {
		t.Error("LoadDocument of invalid YAML succeeded, want error")
	}
}
