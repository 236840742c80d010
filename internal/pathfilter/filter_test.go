package pathfilter

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTree(t *testing.T, files []string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestDefaultFilter_FilterFiles(t *testing.T) {
	dir := writeTree(t, []string{
		"Objects/Threat Vectors/b.yaml",
		"Objects/Threat Vectors/a.yml",
		"Objects/readme.md",
		".git/objects/c.yaml",
		".agent/skills/d.yaml",
	})

	got, err := DefaultFilter().FilterFiles(dir)
	if err != nil {
		t.Fatalf("FilterFiles failed: %v", err)
	}

	want := []string{
		"Objects/Threat Vectors/a.yml",
		"Objects/Threat Vectors/b.yaml",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterFiles = %v, want %v", got, want)
	}
}

func TestFilter_ExcludePatterns(t *testing.T) {
	dir := writeTree(t, []string{
		"keep.yaml",
		"archive/old.yaml",
	})

	f := New([]string{"**/*.yaml"}, []string{"archive/**"})
	got, err := f.FilterFiles(dir)
	if err != nil {
		t.Fatalf("FilterFiles failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"keep.yaml"}) {
		t.Errorf("FilterFiles = %v, want [keep.yaml]", got)
	}
}

func TestFilter_FilterFilesAbs(t *testing.T) {
	dir := writeTree(t, []string{"a.yaml"})

	got, err := DefaultFilter().FilterFilesAbs(dir)
	if err != nil {
		t.Fatalf("FilterFilesAbs failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d paths, want 1", len(got))
	}
	if !filepath.IsAbs(got[0]) {
		t.Errorf("path %q is not absolute", got[0])
	}
}

func TestFilter_MatchFile(t *testing.T) {
	f := DefaultFilter()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"yaml file", "Objects/Threat Vectors/a.yaml", true},
		{"yml file", "a.yml", true},
		{"markdown file", "Objects/readme.md", false},
		{"hidden directory", ".git/objects/a.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.MatchFile(tt.path)
			if err != nil {
				t.Fatalf("MatchFile failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("MatchFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
