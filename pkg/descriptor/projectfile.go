package descriptor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the on-disk YAML form of a project's overrides. Scalar
// fields replace the profile default when present and keep it when omitted.
// The dependency and documentation link lists append to the profile's lists
// unless the matching replace_* key is true.
//
// Omitting a sequence key leaves the base sequence untouched; an explicitly
// empty sequence together with replace_* true clears it.
type ProjectFile struct {
	Profile string `yaml:"profile"`

	Namespace       string   `yaml:"namespace"`
	InceptionYear   int      `yaml:"inception_year"`
	Description     string   `yaml:"description"`
	Tags            []string `yaml:"tags"`
	Status          string   `yaml:"status"`
	BackportTargets []string `yaml:"backport_targets"`
	Notice          string   `yaml:"notice"`

	Dependencies        []Dependency `yaml:"dependencies"`
	ReplaceDependencies bool         `yaml:"replace_dependencies"`

	DocumentationLinks        []DocLink `yaml:"documentation_links"`
	ReplaceDocumentationLinks bool      `yaml:"replace_documentation_links"`
}

// LoadProjectFile reads and parses a project file.
func LoadProjectFile(path string) (*ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	var pf ProjectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse project file: %w", err)
	}
	return &pf, nil
}

// Options converts the file's overrides into the option list Resolve
// consumes. A nil sequence means "not overridden", so only keys present in
// the YAML produce options.
func (pf *ProjectFile) Options() []Option {
	var opts []Option
	if pf.Namespace != "" {
		opts = append(opts, WithNamespace(pf.Namespace))
	}
	if pf.InceptionYear != 0 {
		opts = append(opts, WithInceptionYear(pf.InceptionYear))
	}
	if pf.Description != "" {
		opts = append(opts, WithDescription(pf.Description))
	}
	if pf.Tags != nil {
		opts = append(opts, WithTags(pf.Tags...))
	}
	if pf.Status != "" {
		opts = append(opts, WithStatus(pf.Status))
	}
	if pf.BackportTargets != nil {
		opts = append(opts, WithBackportTargets(pf.BackportTargets...))
	}
	if pf.Notice != "" {
		opts = append(opts, WithNoticeText(pf.Notice))
	}
	if pf.ReplaceDependencies {
		opts = append(opts, WithDependencies(pf.Dependencies...))
	} else if len(pf.Dependencies) > 0 {
		opts = append(opts, AddDependencies(pf.Dependencies...))
	}
	if pf.ReplaceDocumentationLinks {
		opts = append(opts, WithDocumentationLinks(pf.DocumentationLinks...))
	} else if len(pf.DocumentationLinks) > 0 {
		opts = append(opts, AddDocumentationLinks(pf.DocumentationLinks...))
	}
	return opts
}
