package objects

import "fmt"

// TVMSummary is the human-readable digest printed after a successful
// validation. Missing fields render as "N/A".
type TVMSummary struct {
	Name        string
	Criticality string
	UUID        string
	Schema      string
	TLP         string
	Author      string
	Techniques  int
	Actors      int
	Domains     []string
	Platforms   []string
	Severity    string
	Viability   string
}

// SummarizeTVM extracts the summary fields from a normalized TVM document.
func SummarizeTVM(doc any) TVMSummary {
	root, _ := doc.(map[string]any)
	metadata := childMap(root, "metadata")
	threat := childMap(root, "threat")

	return TVMSummary{
		Name:        fieldString(root, "name"),
		Criticality: fieldString(root, "criticality"),
		UUID:        fieldString(metadata, "uuid"),
		Schema:      fieldString(metadata, "schema"),
		TLP:         fieldString(metadata, "tlp"),
		Author:      fieldString(metadata, "author"),
		Techniques:  fieldLen(threat, "att&ck"),
		Actors:      fieldLen(threat, "actors"),
		Domains:     fieldStrings(threat, "domains"),
		Platforms:   fieldStrings(threat, "platforms"),
		Severity:    fieldString(threat, "severity"),
		Viability:   fieldString(threat, "viability"),
	}
}

func childMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

func fieldString(m map[string]any, key string) string {
	if m == nil {
		return "N/A"
	}
	v, ok := m[key]
	if !ok || v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%v", v)
}

func fieldLen(m map[string]any, key string) int {
	if m == nil {
		return 0
	}
	list, _ := m[key].([]any)
	return len(list)
}

func fieldStrings(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	list, _ := m[key].([]any)
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, fmt.Sprintf("%v", v))
	}
	return out
}
