package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/inittide/tidectl/internal/config"
	"github.com/inittide/tidectl/internal/pathfilter"
	"github.com/inittide/tidectl/internal/repo"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	repoRootFlag string
	configFlag   string
	verboseFlag  bool
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "tidectl",
	Short: "Threat-intelligence content repository maintenance",
	Long: `tidectl maintains an OpenTide-style threat-intelligence content repository.

It resolves threat-actor names to ATT&CK group IDs, validates YAML object
files against their JSON Schemas, and injects derived UUID enumerations into
the schemas so that downstream editors get autocomplete and validation.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoRootFlag, "repo-root", "", "Path to the content repository root (auto-detected if not set)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a "+config.FileName+" config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose diagnostics on stderr")
}

// resolveRoot returns the repository root from the --repo-root flag or by
// walking up from the working directory.
func resolveRoot() (string, error) {
	if repoRootFlag != "" {
		return repoRootFlag, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return repo.FindRoot(cwd)
}

// discoverRoot is resolveRoot for commands that can run outside a
// repository; it returns an empty string instead of an error.
func discoverRoot() string {
	root, err := resolveRoot()
	if err != nil {
		return ""
	}
	return root
}

// loadConfig loads the configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	return config.Load(configFlag, discoverRoot())
}

// newPathFilter builds the object-file filter from the paths block of the
// configuration.
func newPathFilter(cfg *config.Config) *pathfilter.Filter {
	if cfg.Paths == nil {
		return pathfilter.DefaultFilter()
	}
	return pathfilter.New(cfg.Paths.Include, cfg.Paths.Exclude)
}

// newLogger builds the diagnostics logger honoring the --verbose flag.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if verboseFlag {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tidectl",
		Level:  level,
		Output: os.Stderr,
	})
}

func shouldUseColor(colorMode string, f *os.File) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		// Check if the writer is a terminal
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}
