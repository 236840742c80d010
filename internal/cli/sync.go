package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/inittide/tidectl/internal/objects"
	"github.com/inittide/tidectl/internal/repo"
	"github.com/inittide/tidectl/internal/schema"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Inject derived enumerations into JSON Schemas",
	Long: `Derive UUID enumerations from the repository's YAML object files and
inject them into the JSON Schemas, so that files referencing those UUIDs
validate and downstream editors offer autocomplete.`,
}

var syncThreatsCmd = &cobra.Command{
	Use:   "threats",
	Short: "Update the Detection Objective schema threats enum from TVM files",
	Long: `Scan all TVM files under Objects/Threat Vectors/ and populate the
threats enum and markdownEnumDescriptions of the Detection Objective
schema with their UUIDs.`,
	Args: cobra.NoArgs,
	RunE: runSyncThreats,
}

var syncDetectionModelCmd = &cobra.Command{
	Use:   "detection-model",
	Short: "Update the MDR schema detection_model enum from DOM signals",
	Long: `Scan all DOM files under Objects/Detection Objectives/ and populate the
detection_model enum and markdownEnumDescriptions of the MDR schema with
their signal UUIDs.`,
	Args: cobra.NoArgs,
	RunE: runSyncDetectionModel,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.AddCommand(syncThreatsCmd)
	syncCmd.AddCommand(syncDetectionModelCmd)
}

func runSyncThreats(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	schemaPath := repo.DetectionObjectiveSchemaPath(root)
	fmt.Printf("Repository root: %s\n", root)
	fmt.Printf("Schema file:     %s\n\n", schemaPath)

	scanner := objects.NewScanner(newPathFilter(cfg), newLogger())
	tvms, warnings, err := scanner.ThreatVectors(repo.ThreatVectorsDir(root))
	if err != nil {
		return err
	}
	printWarnings(warnings)

	if len(tvms) == 0 {
		fmt.Println("No TVM files found. Nothing to update.")
		return nil
	}

	fmt.Printf("Found %d TVM(s):\n", len(tvms))
	for _, tvm := range tvms {
		fmt.Printf("  - %s  %s\n", tvm.UUID, tvm.Name)
	}
	fmt.Println()

	doc, err := schema.LoadDocument(schemaPath)
	if err != nil {
		return err
	}
	node, err := doc.ThreatsNode()
	if err != nil {
		return err
	}
	schema.SetEnum(node, schema.ThreatVectorEntries(tvms))
	if err := doc.Save(); err != nil {
		return err
	}

	fmt.Printf("Successfully updated threats enum with %d TVM UUID(s).\n", len(tvms))
	return nil
}

func runSyncDetectionModel(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	schemaPath := repo.MDRSchemaPath(root)
	fmt.Printf("Repository root: %s\n", root)
	fmt.Printf("Schema file:     %s\n\n", schemaPath)

	scanner := objects.NewScanner(newPathFilter(cfg), newLogger())
	signals, warnings, err := scanner.Signals(repo.DetectionObjectivesDir(root))
	if err != nil {
		return err
	}
	printWarnings(warnings)

	if len(signals) == 0 {
		fmt.Println("No DOM signals found. Nothing to update.")
		return nil
	}

	fmt.Printf("Found %d signal(s) across DOM files:\n", len(signals))
	for _, sig := range signals {
		fmt.Printf("  - %s  %s  (DOM: %s)\n", sig.UUID, sig.Name, sig.DOM)
	}
	fmt.Println()

	doc, err := schema.LoadDocument(schemaPath)
	if err != nil {
		return err
	}
	node, err := doc.DetectionModelNode()
	if err != nil {
		return err
	}
	schema.SetEnum(node, schema.SignalEntries(signals))
	if err := doc.Save(); err != nil {
		return err
	}

	fmt.Printf("Successfully updated detection_model enum with %d signal UUID(s).\n", len(signals))
	return nil
}

func printWarnings(warnings []string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	for _, warn := range warnings {
		fmt.Printf("%s %s\n", yellow("WARNING:"), warn)
	}
}
