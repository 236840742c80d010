package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/inittide/tidectl/internal/types"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// Render writes the validation report in text format
func (r *TextRenderer) Render(w io.Writer, report *types.ValidationReport) error {
	// Configure color
	if !r.ColorEnabled {
		color.NoColor = true
	}

	// Header
	fmt.Fprintf(w, "tidectl: validating %s\n", report.File)
	fmt.Fprintf(w, "  schema: %s\n\n", report.Schema)

	// Findings
	for _, f := range report.Findings {
		r.renderFinding(w, f)
	}

	if len(report.Findings) > 0 {
		fmt.Fprintln(w, strings.Repeat("-", 60))
	}

	// Summary
	r.renderSummary(w, report)

	// Result
	r.renderResult(w, report)

	return nil
}

func (r *TextRenderer) renderFinding(w io.Writer, f *types.Finding) {
	// Severity with color
	severityStr := r.colorSeverity(f.Severity)
	if f.Keyword != "" {
		fmt.Fprintf(w, "%s  [%s]\n", severityStr, f.Keyword)
	} else {
		fmt.Fprintf(w, "%s\n", severityStr)
	}

	// Location within the document
	if f.Path != "" {
		fmt.Fprintf(w, "  at: %s\n", f.Path)
	}

	// Message
	fmt.Fprintf(w, "  %s\n", f.Message)

	// Offending value
	if f.Value != "" {
		fmt.Fprintf(w, "  value: %s\n", f.Value)
	}

	fmt.Fprintln(w)
}

func (r *TextRenderer) renderSummary(w io.Writer, report *types.ValidationReport) {
	parts := []string{}

	if report.Summary.Error > 0 {
		parts = append(parts, fmt.Sprintf("%d error", report.Summary.Error))
	}
	if report.Summary.Warning > 0 {
		parts = append(parts, fmt.Sprintf("%d warning", report.Summary.Warning))
	}
	if report.Summary.Notice > 0 {
		parts = append(parts, fmt.Sprintf("%d notice", report.Summary.Notice))
	}

	if len(parts) == 0 {
		parts = append(parts, "no issues found")
	}

	fmt.Fprintf(w, "Summary: %s\n", strings.Join(parts, ", "))
}

func (r *TextRenderer) renderResult(w io.Writer, report *types.ValidationReport) {
	if report.Result == "PASS" {
		if r.ColorEnabled {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(w, "Result: %s\n", green("PASS"))
		} else {
			fmt.Fprintln(w, "Result: PASS")
		}
	} else {
		if r.ColorEnabled {
			red := color.New(color.FgRed).SprintFunc()
			fmt.Fprintf(w, "Result: %s (schema violations detected)\n", red("FAIL"))
		} else {
			fmt.Fprintln(w, "Result: FAIL (schema violations detected)")
		}
	}
}

func (r *TextRenderer) colorSeverity(s types.Severity) string {
	str := s.String()
	if !r.ColorEnabled {
		return str
	}

	switch s {
	case types.SeverityError:
		return color.New(color.FgRed, color.Bold).Sprint(str)
	case types.SeverityWarning:
		return color.New(color.FgYellow).Sprint(str)
	case types.SeverityNotice:
		return color.New(color.FgCyan).Sprint(str)
	default:
		return str
	}
}
