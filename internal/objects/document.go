package objects

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadDocument loads a YAML object file into a generic tree suitable for
// JSON-Schema validation. The tree is normalized so that YAML-only types do
// not trip the validator: map keys become strings and timestamps become ISO
// strings.
func LoadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("YAML parsing error: %w", err)
	}

	return Normalize(doc), nil
}

// Normalize converts a decoded YAML tree into a JSON-compatible tree.
// YAML allows integer map keys (the references.public/internal quirk) and
// resolves date scalars to timestamps; JSON Schema expects strings for both.
// Integers become json.Number, the representation the validator works with.
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[keyString(k)] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Normalize(item)
		}
		return out
	case time.Time:
		return isoString(val)
	case int:
		return json.Number(strconv.Itoa(val))
	case int64:
		return json.Number(strconv.FormatInt(val, 10))
	case uint64:
		return json.Number(strconv.FormatUint(val, 10))
	default:
		return v
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", k)
}

// isoString renders a timestamp the way the object files author it: a bare
// date when there is no time component, RFC 3339 otherwise.
func isoString(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
