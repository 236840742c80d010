// Package config handles loading and validating tidectl configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileName is the configuration file tidectl looks for.
const FileName = ".tidectl.hcl"

// Config represents the tidectl configuration
type Config struct {
	Version int           `hcl:"version,attr"`
	Paths   *PathsConfig  `hcl:"paths,block"`
	Output  *OutputConfig `hcl:"output,block"`
	Actors  *ActorsConfig `hcl:"actors,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// PathsConfig defines object file filtering settings
type PathsConfig struct {
	Include []string `hcl:"include,optional"`
	Exclude []string `hcl:"exclude,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// ActorsConfig defines actor resolver settings
type ActorsConfig struct {
	Cutoff         *float64 `hcl:"cutoff,optional"`
	MaxSuggestions *int     `hcl:"max_suggestions,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Load loads configuration from the specified path or searches for it.
// Search order: configPath (if provided), .tidectl.hcl in cwd, .tidectl.hcl
// in the repository root.
func Load(configPath, repoRoot string) (*Config, error) {
	var path string

	if configPath != "" {
		// Explicit path provided
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		// Search for config file
		path = findConfigFile(repoRoot)
	}

	if path == "" {
		// No config found, use defaults
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for .tidectl.hcl in standard locations
func findConfigFile(repoRoot string) string {
	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdPath := filepath.Join(cwd, FileName)
		if _, err := os.Stat(cwdPath); err == nil {
			return cwdPath
		}
	}

	// Check repository root
	if repoRoot != "" {
		rootPath := filepath.Join(repoRoot, FileName)
		if _, err := os.Stat(rootPath); err == nil {
			return rootPath
		}
	}

	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	// Apply defaults for missing optional blocks
	applyDefaults(&config)

	// Validate
	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional config blocks
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Paths == nil {
		cfg.Paths = defaults.Paths
	} else {
		if len(cfg.Paths.Include) == 0 {
			cfg.Paths.Include = defaults.Paths.Include
		}
		if len(cfg.Paths.Exclude) == 0 {
			cfg.Paths.Exclude = defaults.Paths.Exclude
		}
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}

	if cfg.Actors == nil {
		cfg.Actors = defaults.Actors
	} else {
		if cfg.Actors.Cutoff == nil {
			cfg.Actors.Cutoff = defaults.Actors.Cutoff
		}
		if cfg.Actors.MaxSuggestions == nil {
			cfg.Actors.MaxSuggestions = defaults.Actors.MaxSuggestions
		}
	}
}
