package schema

import (
	"fmt"

	"github.com/inittide/tidectl/internal/objects"
)

// EnumEntry is one identifier plus its rendered markdown description,
// injected as parallel enum / markdownEnumDescriptions values so that
// schema-aware editors offer autocomplete with context.
type EnumEntry struct {
	Value       string
	Description string
}

// SetEnum replaces the enum and markdownEnumDescriptions of a schema node.
func SetEnum(node map[string]any, entries []EnumEntry) {
	values := make([]any, len(entries))
	descriptions := make([]any, len(entries))
	for i, e := range entries {
		values[i] = e.Value
		descriptions[i] = e.Description
	}
	node["enum"] = values
	node["markdownEnumDescriptions"] = descriptions
}

// ThreatVectorEntries renders enum entries for TVM uuids, in the style the
// existing schemas use.
func ThreatVectorEntries(tvms []objects.ThreatVector) []EnumEntry {
	entries := make([]EnumEntry, len(tvms))
	for i, tvm := range tvms {
		entries[i] = EnumEntry{
			Value: tvm.UUID,
			Description: fmt.Sprintf(
				"\n### %s\n\n\U0001f511 **Identifier** : `%s`\n\n_Vocabulary_ : `Threat Vectors`\n\n---\n\n%s\n",
				tvm.Name, tvm.UUID, tvm.Name),
		}
	}
	return entries
}

// SignalEntries renders enum entries for DOM signal uuids.
func SignalEntries(signals []objects.Signal) []EnumEntry {
	entries := make([]EnumEntry, len(signals))
	for i, sig := range signals {
		entries[i] = EnumEntry{
			Value: sig.UUID,
			Description: fmt.Sprintf(
				"\n### %s\n\n\U0001f511 **Identifier** : `%s`\n\n_Vocabulary_ : `Detection Signals`\n\n_Detection Objective_ : `%s`\n\n---\n\nSignal: %s — DOM: %s\n",
				sig.Name, sig.UUID, sig.DOM, sig.Name, sig.DOM),
		}
	}
	return entries
}

// ThreatsNode locates the items node of objective.threats in a Detection
// Objective schema. The direct path is tried first; schemas that wrap the
// objective block in allOf/oneOf/anyOf conditionals are searched next,
// including their then blocks.
func (d *Document) ThreatsNode() (map[string]any, error) {
	if items := threatsItems(d.root); items != nil {
		return items, nil
	}

	for _, key := range []string{"allOf", "oneOf", "anyOf"} {
		branches, _ := d.root[key].([]any)
		for _, branch := range branches {
			entry, ok := branch.(map[string]any)
			if !ok {
				continue
			}
			if items := threatsItems(entry); items != nil {
				return items, nil
			}
			if then, ok := entry["then"].(map[string]any); ok {
				if items := threatsItems(then); items != nil {
					return items, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("could not find threats.items in schema %s", d.path)
}

// threatsItems follows properties -> objective -> properties -> threats -> items.
func threatsItems(node map[string]any) map[string]any {
	props, _ := node["properties"].(map[string]any)
	objective, _ := props["objective"].(map[string]any)
	objProps, _ := objective["properties"].(map[string]any)
	threats, _ := objProps["threats"].(map[string]any)
	items, _ := threats["items"].(map[string]any)
	return items
}

// DetectionModelNode locates the top-level detection_model property of an
// MDR schema.
func (d *Document) DetectionModelNode() (map[string]any, error) {
	props, _ := d.root["properties"].(map[string]any)
	node, _ := props["detection_model"].(map[string]any)
	if node == nil {
		return nil, fmt.Errorf("could not find detection_model in schema %s", d.path)
	}
	return node, nil
}
