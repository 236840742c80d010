package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/inittide/tidectl/internal/types"
)

func failingReport() *types.ValidationReport {
	r := types.NewValidationReport("Objects/Threat Vectors/a.yaml", "Schemas/TVM Schema.json")
	r.AddFinding(types.NewFinding(types.SeverityError, "value must be one of 'Low', 'Medium', 'High'").
		WithPath("criticality").
		WithKeyword("enum").
		WithValue("Severe"))
	r.AddFinding(types.NewFinding(types.SeverityWarning, "malformed UUID").
		WithPath("metadata/uuid"))
	r.Compute()
	return r
}

func TestTextRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	renderer := &TextRenderer{ColorEnabled: false}
	if err := renderer.Render(&buf, failingReport()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"tidectl: validating Objects/Threat Vectors/a.yaml",
		"  schema: Schemas/TVM Schema.json",
		"ERROR  [enum]",
		"  at: criticality",
		"  value must be one of 'Low', 'Medium', 'High'",
		"  value: Severe",
		"WARNING",
		"  at: metadata/uuid",
		strings.Repeat("-", 60),
		"Summary: 1 error, 1 warning",
		"Result: FAIL (schema violations detected)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextRenderer_RenderClean(t *testing.T) {
	report := types.NewValidationReport("a.yaml", "TVM Schema.json")
	report.Compute()

	var buf bytes.Buffer
	renderer := &TextRenderer{ColorEnabled: false}
	if err := renderer.Render(&buf, report); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Summary: no issues found") {
		t.Errorf("output missing clean summary:\n%s", out)
	}
	if !strings.Contains(out, "Result: PASS") {
		t.Errorf("output missing PASS result:\n%s", out)
	}
	if strings.Contains(out, strings.Repeat("-", 60)) {
		t.Error("clean report rendered a separator line")
	}
}
