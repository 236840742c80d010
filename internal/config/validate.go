package config

import "fmt"

// Validate validates the configuration
func Validate(cfg *Config) error {
	// Version check
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	// Validate output format
	if cfg.Output != nil && cfg.Output.Format != "" {
		switch cfg.Output.Format {
		case "text", "json":
			// valid
		default:
			return fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", cfg.Output.Format)
		}
	}

	// Validate output color
	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	// Validate actor resolver settings
	if cfg.Actors != nil {
		if cfg.Actors.Cutoff != nil && (*cfg.Actors.Cutoff <= 0 || *cfg.Actors.Cutoff > 1) {
			return fmt.Errorf("invalid actors cutoff: %v (must be in (0, 1])", *cfg.Actors.Cutoff)
		}
		if cfg.Actors.MaxSuggestions != nil && *cfg.Actors.MaxSuggestions < 1 {
			return fmt.Errorf("invalid actors max_suggestions: %d (must be at least 1)", *cfg.Actors.MaxSuggestions)
		}
	}

	return nil
}
