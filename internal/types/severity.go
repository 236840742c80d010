package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity represents the severity level of a finding
type Severity int

const (
	// SeverityNotice is informational, no action needed
	SeverityNotice Severity = iota
	// SeverityWarning indicates a problem that does not fail validation
	SeverityWarning
	// SeverityError indicates a schema violation that fails validation
	SeverityError
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityNotice:
		return "NOTICE"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON implements json.Marshaler
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseSeverity(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity parses a string into a Severity
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(s) {
	case "ERROR":
		return SeverityError, nil
	case "WARNING":
		return SeverityWarning, nil
	case "NOTICE":
		return SeverityNotice, nil
	default:
		return SeverityNotice, fmt.Errorf("unknown severity: %s", s)
	}
}

// AtLeast returns true if this severity is at least as severe as other
func (s Severity) AtLeast(other Severity) bool {
	return s >= other
}
