package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from langsense.yml.
type ProjectConfig struct {
	// Languages restricts scan results to these canonical language ids.
	// Empty means every language the classifier knows.
	Languages []string `yaml:"languages,omitempty"`

	// ExcludeGlobs are doublestar patterns for paths to skip while scanning,
	// relative to the scan root (e.g. "**/*_generated.go", "docs/**").
	ExcludeGlobs []string `yaml:"excludeGlobs,omitempty"`

	// TemplatePath optionally overrides the built-in example template with
	// the contents of a file.
	TemplatePath string `yaml:"templatePath,omitempty"`

	Verbose bool `yaml:"verbose,omitempty"`
}

// Load attempts to read langsense.yml or langsense.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"langsense.yml", "langsense.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
