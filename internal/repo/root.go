// Package repo locates the content repository root and its well-known
// directories. A content repository is any directory containing both a
// Schemas/ and an Objects/ directory.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// maxAscent bounds the upward walk so a stray invocation cannot scan the
// whole filesystem.
const maxAscent = 10

// FindRoot walks up from start looking for a directory that contains both
// Schemas/ and Objects/.
func FindRoot(start string) (string, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for i := 0; i < maxAscent; i++ {
		if isRoot(current) {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", fmt.Errorf("could not locate repository root with Schemas/ and Objects/ directories above %s", start)
}

func isRoot(dir string) bool {
	return isDir(filepath.Join(dir, "Schemas")) && isDir(filepath.Join(dir, "Objects"))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SchemasDir returns the schema directory of a repository root.
func SchemasDir(root string) string {
	return filepath.Join(root, "Schemas")
}

// ObjectsDir returns the object directory of a repository root.
func ObjectsDir(root string) string {
	return filepath.Join(root, "Objects")
}

// ThreatVectorsDir returns the TVM object directory.
func ThreatVectorsDir(root string) string {
	return filepath.Join(root, "Objects", "Threat Vectors")
}

// DetectionObjectivesDir returns the DOM object directory.
func DetectionObjectivesDir(root string) string {
	return filepath.Join(root, "Objects", "Detection Objectives")
}

// TVMSchemaPath returns the path of the Threat Vector Model schema.
func TVMSchemaPath(root string) string {
	return filepath.Join(root, "Schemas", "TVM Schema.json")
}

// DetectionObjectiveSchemaPath returns the path of the Detection Objective schema.
func DetectionObjectiveSchemaPath(root string) string {
	return filepath.Join(root, "Schemas", "Detection Objective.schema.json")
}

// MDRSchemaPath returns the path of the MDR schema.
func MDRSchemaPath(root string) string {
	return filepath.Join(root, "Schemas", "MDR Schema.json")
}
