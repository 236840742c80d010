package objects

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/inittide/tidectl/internal/pathfilter"
)

// Scanner loads object files from a repository directory. Files that cannot
// be parsed or that miss required fields are reported as warnings rather
// than aborting the scan.
type Scanner struct {
	filter *pathfilter.Filter
	logger hclog.Logger
}

// NewScanner creates a Scanner. A nil filter selects the default YAML
// patterns; a nil logger disables diagnostics.
func NewScanner(filter *pathfilter.Filter, logger hclog.Logger) *Scanner {
	if filter == nil {
		filter = pathfilter.DefaultFilter()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Scanner{
		filter: filter,
		logger: logger,
	}
}

// ThreatVectors loads all TVM files in dir, in sorted filename order, and
// extracts their uuid and name. The second return value lists per-file
// warnings for skipped files.
func (s *Scanner) ThreatVectors(dir string) ([]ThreatVector, []string, error) {
	var tvms []ThreatVector
	var warnings []string

	files, warn, err := s.listYAML(dir, "No TVMs found")
	if err != nil {
		return nil, nil, err
	}
	if warn != "" {
		return nil, []string{warn}, nil
	}

	for _, file := range files {
		var doc struct {
			Name     string `yaml:"name"`
			Metadata struct {
				UUID string `yaml:"uuid"`
			} `yaml:"metadata"`
		}
		if err := s.decode(file, &doc); err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to parse %s: %v", filepath.Base(file), err))
			continue
		}
		if doc.Metadata.UUID == "" || doc.Name == "" {
			warnings = append(warnings, fmt.Sprintf("skipping %s: missing uuid or name", filepath.Base(file)))
			continue
		}
		s.logger.Debug("loaded threat vector", "file", filepath.Base(file), "uuid", doc.Metadata.UUID)
		tvms = append(tvms, ThreatVector{
			UUID: doc.Metadata.UUID,
			Name: doc.Name,
			File: filepath.Base(file),
		})
	}

	return tvms, warnings, nil
}

// Signals loads all DOM files in dir, in sorted filename order, and extracts
// every signal's uuid and name along with the parent DOM name.
func (s *Scanner) Signals(dir string) ([]Signal, []string, error) {
	var signals []Signal
	var warnings []string

	files, warn, err := s.listYAML(dir, "No DOMs found")
	if err != nil {
		return nil, nil, err
	}
	if warn != "" {
		return nil, []string{warn}, nil
	}

	for _, file := range files {
		var doc struct {
			Name      string `yaml:"name"`
			Objective struct {
				Signals []struct {
					UUID string `yaml:"uuid"`
					Name string `yaml:"name"`
				} `yaml:"signals"`
			} `yaml:"objective"`
		}
		if err := s.decode(file, &doc); err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to parse %s: %v", filepath.Base(file), err))
			continue
		}

		domName := doc.Name
		if domName == "" {
			domName = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		}

		if len(doc.Objective.Signals) == 0 {
			warnings = append(warnings, fmt.Sprintf("no signals found in %s", filepath.Base(file)))
			continue
		}

		for _, sig := range doc.Objective.Signals {
			if sig.UUID == "" || sig.Name == "" {
				warnings = append(warnings, fmt.Sprintf("skipping signal in %s: missing uuid or name", filepath.Base(file)))
				continue
			}
			s.logger.Debug("loaded signal", "file", filepath.Base(file), "uuid", sig.UUID, "dom", domName)
			signals = append(signals, Signal{
				UUID: sig.UUID,
				Name: sig.Name,
				DOM:  domName,
				File: filepath.Base(file),
			})
		}
	}

	return signals, warnings, nil
}

// listYAML returns the absolute paths of the YAML files in dir, sorted.
// A missing directory is a warning, not an error, so a repository without
// objects of one kind still syncs cleanly.
func (s *Scanner) listYAML(dir, missingNote string) ([]string, string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Sprintf("%s does not exist. %s.", dir, missingNote), nil
		}
		return nil, "", fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, "", fmt.Errorf("path is not a directory: %s", dir)
	}

	files, err := s.filter.FilterFilesAbs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list %s: %w", dir, err)
	}
	return files, "", nil
}

func (s *Scanner) decode(file string, out any) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}
