package descriptor

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// fingerprintNamespace is the UUID v5 namespace for descriptor fingerprints.
// Fixed forever; changing it would change every fingerprint.
var fingerprintNamespace = uuid.MustParse("6f1c24b8-9a1e-4f0b-8c3d-2a7e5d90c441")

// Snapshot is the final, immutable resolution of a profile plus overrides.
// Sequence accessors return copies; a Snapshot handed to an engine cannot be
// mutated afterwards. Construct one with Resolve.
type Snapshot struct {
	d Descriptor
}

// Resolve applies the given overrides, in order, to a copy of the profile's
// base descriptor and returns the resulting immutable snapshot. Resolution
// itself cannot fail; call Validate on the result before generating.
func Resolve(p Profile, opts ...Option) Snapshot {
	d := p.Base.clone()
	for _, opt := range opts {
		opt(&d)
	}
	return Snapshot{d: d.clone()}
}

// Namespace returns the root namespace.
func (s Snapshot) Namespace() string { return s.d.Namespace }

// InceptionYear returns the first copyright year.
func (s Snapshot) InceptionYear() int { return s.d.InceptionYear }

// Description returns the package description.
func (s Snapshot) Description() string { return s.d.Description }

// Tags returns a copy of the tag list.
func (s Snapshot) Tags() []string { return copyStrings(s.d.Tags) }

// Status returns the project status.
func (s Snapshot) Status() string { return s.d.Status }

// BackportTargets returns a copy of the backport target list.
func (s Snapshot) BackportTargets() []string { return copyStrings(s.d.BackportTargets) }

// Dependencies returns a copy of the dependency list, base entries first.
func (s Snapshot) Dependencies() []Dependency {
	out := make([]Dependency, len(s.d.Dependencies))
	copy(out, s.d.Dependencies)
	return out
}

// DocumentationLinks returns a copy of the documentation links, base entries
// first.
func (s Snapshot) DocumentationLinks() []DocLink {
	out := make([]DocLink, len(s.d.DocumentationLinks))
	copy(out, s.d.DocumentationLinks)
	return out
}

// NoticeText returns the license notice body.
func (s Snapshot) NoticeText() string { return s.d.NoticeText }

// Validate checks that the snapshot is structurally sound. It returns a
// sentinel error from this package, wrapped with the offending field where
// that helps diagnostics. Engines call Validate before writing anything.
func (s Snapshot) Validate() error {
	if strings.TrimSpace(s.d.Namespace) == "" {
		return ErrNamespaceEmpty
	}
	if s.d.InceptionYear <= 0 {
		return fmt.Errorf("inception year %d: %w", s.d.InceptionYear, ErrInceptionYearInvalid)
	}
	if !validStatuses[s.d.Status] {
		return fmt.Errorf("status %q: %w", s.d.Status, ErrStatusUnknown)
	}
	for _, target := range s.d.BackportTargets {
		if strings.TrimSpace(target) == "" {
			return ErrBackportTargetEmpty
		}
	}
	seen := make(map[string]bool, len(s.d.Dependencies))
	for _, dep := range s.d.Dependencies {
		if dep.Name == "" {
			return ErrDependencyNameEmpty
		}
		if dep.Version == "" {
			return fmt.Errorf("dependency %q: %w", dep.Name, ErrVersionEmpty)
		}
		if seen[dep.Name] {
			return fmt.Errorf("dependency %q: %w", dep.Name, ErrDuplicateDependency)
		}
		seen[dep.Name] = true
	}
	for _, link := range s.d.DocumentationLinks {
		if link.Label == "" {
			return ErrDocLinkLabelEmpty
		}
		if link.URL == "" {
			return fmt.Errorf("link %q: %w", link.Label, ErrDocLinkURLEmpty)
		}
		if u, err := url.Parse(link.URL); err != nil || u.Scheme == "" {
			return fmt.Errorf("link %q: %w", link.Label, ErrDocLinkURLInvalid)
		}
	}
	return nil
}

// Fingerprint returns a deterministic UUID v5 over a canonical encoding of
// every field. Two snapshots with identical field values always share a
// fingerprint, which is what makes regeneration byte-identical.
func (s Snapshot) Fingerprint() uuid.UUID {
	var b strings.Builder
	writeField(&b, "namespace", s.d.Namespace)
	writeField(&b, "inception_year", strconv.Itoa(s.d.InceptionYear))
	writeField(&b, "description", s.d.Description)
	for _, t := range s.d.Tags {
		writeField(&b, "tag", t)
	}
	writeField(&b, "status", s.d.Status)
	for _, t := range s.d.BackportTargets {
		writeField(&b, "backport", t)
	}
	for _, dep := range s.d.Dependencies {
		writeField(&b, "dependency", dep.Name+"\x1f"+dep.Version)
	}
	for _, link := range s.d.DocumentationLinks {
		writeField(&b, "link", link.Label+"\x1f"+link.URL)
	}
	writeField(&b, "notice", s.d.NoticeText)
	return uuid.NewSHA1(fingerprintNamespace, []byte(b.String()))
}

// writeField appends one length-prefixed key/value record so that adjacent
// fields can never collide under concatenation.
func writeField(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "%s=%d:%s\x1e", key, len(value), value)
}
