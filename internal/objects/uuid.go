package objects

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/inittide/tidectl/internal/types"
)

// CheckUUIDs walks a normalized document and reports every field named
// "uuid" whose value is not a well-formed UUID, ordered by path. The schema
// typically pins the format too; this catches the fields the schema is
// silent about.
func CheckUUIDs(doc any) []*types.Finding {
	var findings []*types.Finding
	walkUUIDs(doc, "", &findings)
	sort.Slice(findings, func(i, j int) bool {
		return findings[i].Path < findings[j].Path
	})
	return findings
}

func walkUUIDs(v any, path string, findings *[]*types.Finding) {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			child := joinPath(path, k)
			if k == "uuid" {
				checkUUIDValue(item, child, findings)
				continue
			}
			walkUUIDs(item, child, findings)
		}
	case []any:
		for i, item := range val {
			walkUUIDs(item, joinPath(path, strconv.Itoa(i)), findings)
		}
	}
}

func checkUUIDValue(v any, path string, findings *[]*types.Finding) {
	s, ok := v.(string)
	if !ok {
		*findings = append(*findings, types.NewFinding(types.SeverityWarning, "uuid field is not a string").
			WithPath(path).
			WithValue(fmt.Sprintf("%v", v)))
		return
	}
	if _, err := uuid.Parse(s); err != nil {
		*findings = append(*findings, types.NewFinding(types.SeverityWarning, "malformed UUID").
			WithPath(path).
			WithValue(s))
	}
}

func joinPath(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "/" + elem
}
