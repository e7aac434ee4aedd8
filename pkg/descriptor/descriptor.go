package descriptor

// Project lifecycle statuses. A descriptor carries exactly one status;
// downstream engines map it to packaging flags (signed releases, changelog
// strictness).
const (
	StatusExperimental = "experimental"
	StatusStable       = "stable"
	StatusDeprecated   = "deprecated"
)

// validStatuses is the set of recognized status values.
var validStatuses = map[string]bool{
	StatusExperimental: true,
	StatusStable:       true,
	StatusDeprecated:   true,
}

// IsValidStatus reports whether the given string is a recognized status.
func IsValidStatus(status string) bool {
	return validStatuses[status]
}

// Dependency names a packaged library the project depends on.
// Identity is the Name; a descriptor must not list the same name twice.
type Dependency struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// DocLink is one entry in the generated documentation index.
// Order is significant; links render in listed order.
type DocLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Descriptor holds the project facts that parameterize generation.
// A Descriptor is mutable while overrides are being applied; callers hand it
// to Resolve to obtain the immutable Snapshot that engines consume.
type Descriptor struct {
	// Namespace is the root namespace / package identifier (required).
	Namespace string

	// InceptionYear is the first copyright year (required, positive).
	InceptionYear int

	// Description is the package description embedded in the manifest.
	Description string

	// Tags are search keywords, rendered in listed order.
	Tags []string

	// Status is one of the Status constants.
	Status string

	// BackportTargets lists older runtime versions the generated build
	// definition must also target. Empty by default.
	BackportTargets []string

	// Dependencies are packaged libraries, base profile entries first.
	Dependencies []Dependency

	// DocumentationLinks are documentation index entries, base profile
	// entries first.
	DocumentationLinks []DocLink

	// NoticeText is the license notice body; empty means no NOTICE
	// artifact is generated.
	NoticeText string
}

// clone returns a deep copy so that profile bases and snapshots never share
// backing arrays with caller-visible descriptors.
func (d Descriptor) clone() Descriptor {
	c := d
	c.Tags = copyStrings(d.Tags)
	c.BackportTargets = copyStrings(d.BackportTargets)
	if d.Dependencies != nil {
		c.Dependencies = make([]Dependency, len(d.Dependencies))
		copy(c.Dependencies, d.Dependencies)
	}
	if d.DocumentationLinks != nil {
		c.DocumentationLinks = make([]DocLink, len(d.DocumentationLinks))
		copy(c.DocumentationLinks, d.DocumentationLinks)
	}
	return c
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
