package cli

import (
	"testing"

	"github.com/inittide/tidectl/internal/config"
	"github.com/inittide/tidectl/internal/pathfilter"
	"github.com/inittide/tidectl/internal/types"
)

func TestPatternNotice(t *testing.T) {
	filter := pathfilter.DefaultFilter()

	if f := patternNotice(filter, "Objects/Threat Vectors/a.yaml"); f != nil {
		t.Errorf("matching file produced a finding: %+v", f)
	}

	f := patternNotice(filter, "Objects/readme.md")
	if f == nil {
		t.Fatal("non-matching file produced no finding")
	}
	if f.Severity != types.SeverityNotice {
		t.Errorf("severity = %v, want NOTICE", f.Severity)
	}
}

func TestNewPathFilter(t *testing.T) {
	cfg := &config.Config{
		Paths: &config.PathsConfig{
			Include: []string{"Objects/**/*.yaml"},
			Exclude: []string{"Objects/Archive/**"},
		},
	}
	filter := newPathFilter(cfg)

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"included file", "Objects/Threat Vectors/a.yaml", true},
		{"excluded directory", "Objects/Archive/old.yaml", false},
		{"outside include patterns", "Schemas/TVM Schema.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filter.MatchFile(tt.path)
			if err != nil {
				t.Fatalf("MatchFile failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("MatchFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}

	// A config without a paths block falls back to the defaults
	fallback := newPathFilter(&config.Config{})
	if matched, err := fallback.MatchFile("a.yaml"); err != nil || !matched {
		t.Errorf("default filter MatchFile(a.yaml) = %v, %v, want true", matched, err)
	}
}
