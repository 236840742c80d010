package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inittide/tidectl/internal/objects"
	"github.com/inittide/tidectl/internal/output"
	"github.com/inittide/tidectl/internal/pathfilter"
	"github.com/inittide/tidectl/internal/repo"
	"github.com/inittide/tidectl/internal/schema"
	"github.com/inittide/tidectl/internal/types"
)

var (
	schemaFlag string
	formatFlag string
	colorFlag  string
	quietFlag  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <file> [file...]",
	Short: "Validate YAML object files against a JSON Schema",
	Long: `Validate one or more YAML object files against a JSON Schema.

Without --schema the TVM schema of the enclosing repository is used.
Validation continues across files; the command exits non-zero when any
file fails.`,
	Example: `  tidectl validate "Objects/Threat Vectors/TVM - Example.yaml"`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&schemaFlag, "schema", "", "Schema file to validate against (default: the repository TVM schema)")
	validateCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, json")
	validateCmd.Flags().StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")
	validateCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Only report failing files")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags override the output block of the config file
	format := formatFlag
	if format == "" {
		format = cfg.Output.Format
	}
	colorMode := colorFlag
	if colorMode == "" {
		colorMode = cfg.Output.Color
	}

	schemaPath := schemaFlag
	if schemaPath == "" {
		root, err := resolveRoot()
		if err != nil {
			return fmt.Errorf("--schema not set and %w", err)
		}
		schemaPath = repo.TVMSchemaPath(root)
	}

	validator, err := schema.NewValidator(schemaPath)
	if err != nil {
		return err
	}

	renderer := output.NewRenderer(output.Format(format), shouldUseColor(colorMode, os.Stdout))
	filter := newPathFilter(cfg)

	failed := false
	for _, file := range args {
		report := types.NewValidationReport(file, schemaPath)

		if f := patternNotice(filter, file); f != nil {
			report.AddFinding(f)
		}

		doc, err := objects.LoadDocument(file)
		if err != nil {
			report.AddFinding(types.NewFinding(types.SeverityError, err.Error()))
		} else {
			report.AddFindings(validator.Validate(doc))
			report.AddFindings(objects.CheckUUIDs(doc))
		}
		report.Compute()

		if report.Result == "FAIL" {
			failed = true
		}

		if quietFlag && report.Result != "FAIL" {
			continue
		}
		if err := renderer.Render(os.Stdout, report); err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
		if doc != nil && report.Result == "PASS" && format == "text" && isTVMSchema(schemaPath) {
			renderTVMSummary(os.Stdout, objects.SummarizeTVM(doc))
		}
	}

	// Schema violations fail the run; warnings alone do not
	if failed {
		os.Exit(1)
	}

	return nil
}

// patternNotice reports when an explicitly named file falls outside the
// configured object-file patterns, which usually means the paths block and
// the repository layout have drifted apart.
func patternNotice(filter *pathfilter.Filter, file string) *types.Finding {
	matched, err := filter.MatchFile(filepath.ToSlash(file))
	if err != nil || matched {
		return nil
	}
	return types.NewFinding(types.SeverityNotice, "file does not match the configured object file patterns")
}

func isTVMSchema(schemaPath string) bool {
	return strings.Contains(filepath.Base(schemaPath), "TVM")
}

func renderTVMSummary(w io.Writer, s objects.TVMSummary) {
	fmt.Fprintln(w, "TVM Summary:")
	fmt.Fprintf(w, "  Name: %s\n", s.Name)
	fmt.Fprintf(w, "  Criticality: %s\n", s.Criticality)
	fmt.Fprintf(w, "  UUID: %s\n", s.UUID)
	fmt.Fprintf(w, "  Schema: %s\n", s.Schema)
	fmt.Fprintf(w, "  TLP: %s\n", s.TLP)
	fmt.Fprintf(w, "  Author: %s\n", s.Author)
	fmt.Fprintf(w, "  ATT&CK Techniques: %d mapped\n", s.Techniques)
	fmt.Fprintf(w, "  Threat Actors: %d attributed\n", s.Actors)
	fmt.Fprintf(w, "  Domains: %s\n", joinOrNA(s.Domains))
	fmt.Fprintf(w, "  Platforms: %s\n", joinOrNA(s.Platforms))
	fmt.Fprintf(w, "  Severity: %s\n", s.Severity)
	fmt.Fprintf(w, "  Viability: %s\n", s.Viability)
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return "N/A"
	}
	return strings.Join(values, ", ")
}
