package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/inittide/tidectl/internal/actors"
)

var mapActorsCmd = &cobra.Command{
	Use:   "map-actors <name> [name...]",
	Short: "Resolve threat-actor names to ATT&CK group IDs",
	Long: `Resolve free-text threat-actor names to canonical ATT&CK group IDs.

Names that match a known group or alias exactly resolve to their ID.
For anything else the closest known names are suggested. An unmatched
name is reported but never fails the command.`,
	Example: `  tidectl map-actors 'APT36' 'SideCopy'`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runMapActors,
}

func init() {
	rootCmd.AddCommand(mapActorsCmd)
}

func runMapActors(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := actors.Options{}
	if cfg.Actors != nil {
		if cfg.Actors.Cutoff != nil {
			opts.Cutoff = *cfg.Actors.Cutoff
		}
		if cfg.Actors.MaxSuggestions != nil {
			opts.MaxSuggestions = *cfg.Actors.MaxSuggestions
		}
	}

	resolver := actors.NewResolver(actors.DefaultTable(), opts)
	matches := make([]actors.Match, 0, len(args))
	for _, name := range args {
		matches = append(matches, resolver.Resolve(name))
	}

	return renderActorMatches(os.Stdout, matches)
}

// exactResult is the JSON shape for an exact match
type exactResult struct {
	Actor string `json:"actor"`
	ID    string `json:"id"`
}

// fuzzyResult is the JSON shape for a query without an exact match
type fuzzyResult struct {
	Query       string              `json:"query"`
	ExactMatch  *string             `json:"exact_match"`
	Suggestions []actors.Suggestion `json:"suggestions"`
	Error       string              `json:"error,omitempty"`
}

// renderActorMatches writes the per-query text report and, when more than
// one query was supplied, a JSON summary for programmatic use.
func renderActorMatches(w io.Writer, matches []actors.Match) error {
	results := make([]any, 0, len(matches))

	for _, m := range matches {
		if m.Exact() {
			fmt.Fprintf(w, "%s -> %s\n", m.Query, m.ID)
			results = append(results, exactResult{Actor: m.Query, ID: m.ID})
			continue
		}

		fmt.Fprintf(w, "\n%s:\n", m.Query)
		result := fuzzyResult{Query: m.Query, Suggestions: m.Suggestions}
		if result.Suggestions == nil {
			result.Suggestions = []actors.Suggestion{}
		}

		if len(m.Suggestions) > 0 {
			fmt.Fprintln(w, "  Did you mean:")
			for _, s := range m.Suggestions {
				fmt.Fprintf(w, "    - %s -> %s\n", s.Name, s.ID)
			}
		} else {
			result.Error = "No matching ATT&CK group found"
			fmt.Fprintf(w, "  ❌ %s\n", result.Error)
		}
		results = append(results, result)
	}

	// JSON output for programmatic use
	if len(matches) > 1 {
		fmt.Fprintln(w, "\n--- JSON Output ---")
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return fmt.Errorf("failed to render JSON summary: %w", err)
		}
	}

	return nil
}
