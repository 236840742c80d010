// Package objects reads the YAML object files of a content repository:
// Threat Vector Models (TVMs) and Detection Objectives (DOMs).
package objects

// ThreatVector is the subset of a TVM file that enum derivation needs.
type ThreatVector struct {
	UUID string
	Name string
	File string
}

// Signal is one detection signal declared by a DOM file, together with the
// name of the DOM that declares it.
type Signal struct {
	UUID string
	Name string
	DOM  string
	File string
}
