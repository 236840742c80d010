package config

import "github.com/inittide/tidectl/internal/actors"

// Default returns the default configuration
func Default() *Config {
	cutoff := actors.DefaultCutoff
	maxSuggestions := actors.DefaultMaxSuggestions
	return &Config{
		Version: 1,
		Paths: &PathsConfig{
			Include: []string{"**/*.yaml", "**/*.yml"},
			Exclude: []string{".*/**"},
		},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Actors: &ActorsConfig{
			Cutoff:         &cutoff,
			MaxSuggestions: &maxSuggestions,
		},
	}
}
