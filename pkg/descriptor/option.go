package descriptor

// Option is a single override applied to a profile's base descriptor during
// Resolve. Scalar options replace the base value outright; Add options extend
// a sequence, preserving base entries and their order. With options for
// sequences are explicit replacing overrides that discard the base entries.
// Applying options never fails; structural problems surface later from
// Snapshot.Validate.
type Option func(*Descriptor)

// WithNamespace replaces the root namespace.
func WithNamespace(ns string) Option {
	return func(d *Descriptor) { d.Namespace = ns }
}

// WithInceptionYear replaces the first copyright year.
func WithInceptionYear(year int) Option {
	return func(d *Descriptor) { d.InceptionYear = year }
}

// WithDescription replaces the package description.
func WithDescription(text string) Option {
	return func(d *Descriptor) { d.Description = text }
}

// WithTags replaces the tag list.
func WithTags(tags ...string) Option {
	return func(d *Descriptor) { d.Tags = copyStrings(tags) }
}

// WithStatus replaces the project status.
func WithStatus(status string) Option {
	return func(d *Descriptor) { d.Status = status }
}

// WithBackportTargets replaces the backport target list.
func WithBackportTargets(targets ...string) Option {
	return func(d *Descriptor) { d.BackportTargets = copyStrings(targets) }
}

// WithNoticeText replaces the license notice body.
func WithNoticeText(text string) Option {
	return func(d *Descriptor) { d.NoticeText = text }
}

// AddDependency appends one dependency after the base entries.
func AddDependency(name, version string) Option {
	return func(d *Descriptor) {
		d.Dependencies = append(d.Dependencies, Dependency{Name: name, Version: version})
	}
}

// AddDependencies appends dependencies after the base entries, preserving
// the given order.
func AddDependencies(deps ...Dependency) Option {
	return func(d *Descriptor) { d.Dependencies = append(d.Dependencies, deps...) }
}

// WithDependencies discards the base dependency list and replaces it.
func WithDependencies(deps ...Dependency) Option {
	return func(d *Descriptor) {
		d.Dependencies = make([]Dependency, len(deps))
		copy(d.Dependencies, deps)
	}
}

// AddDocumentationLink appends one documentation link after the base entries.
func AddDocumentationLink(label, url string) Option {
	return func(d *Descriptor) {
		d.DocumentationLinks = append(d.DocumentationLinks, DocLink{Label: label, URL: url})
	}
}

// AddDocumentationLinks appends documentation links after the base entries,
// preserving the given order.
func AddDocumentationLinks(links ...DocLink) Option {
	return func(d *Descriptor) { d.DocumentationLinks = append(d.DocumentationLinks, links...) }
}

// WithDocumentationLinks discards the base documentation links and replaces
// them.
func WithDocumentationLinks(links ...DocLink) Option {
	return func(d *Descriptor) {
		d.DocumentationLinks = make([]DocLink, len(links))
		copy(d.DocumentationLinks, links)
	}
}
