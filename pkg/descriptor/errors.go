package descriptor

import "errors"

// Validation errors reported by Snapshot.Validate. Engines refuse to
// generate anything when validation fails; there is no partial output.
var (
	ErrNamespaceEmpty       = errors.New("namespace must not be empty")
	ErrInceptionYearInvalid = errors.New("inception year must be positive")
	ErrStatusUnknown        = errors.New("unknown project status")
	ErrDependencyNameEmpty  = errors.New("dependency name must not be empty")
	ErrVersionEmpty         = errors.New("dependency version must not be empty")
	ErrDuplicateDependency  = errors.New("duplicate dependency name")
	ErrDocLinkLabelEmpty    = errors.New("documentation link label must not be empty")
	ErrDocLinkURLEmpty      = errors.New("documentation link url must not be empty")
	ErrDocLinkURLInvalid    = errors.New("documentation link url is malformed")
	ErrBackportTargetEmpty  = errors.New("backport target must not be empty")
	ErrProfileUnknown       = errors.New("unknown profile")
)
