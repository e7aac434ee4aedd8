package descriptor

// Standard profile names accepted by ProfileByName.
const (
	ProfileMinimal    = "minimal"
	ProfileNetLibrary = "net-library"
)

// Profile is a named base descriptor supplying a default for every field.
// Overrides applied during Resolve either replace a scalar default or extend
// a sequence default; absent overrides leave the base value untouched.
// Profiles never fail: an unset field simply keeps its default.
type Profile struct {
	// Name identifies the profile in configuration and diagnostics.
	Name string

	// Base holds the default field values.
	Base Descriptor
}

// Minimal returns the empty baseline profile: experimental status, no tags,
// no dependencies, no documentation links.
func Minimal() Profile {
	return Profile{
		Name: ProfileMinimal,
		Base: Descriptor{
			Status: StatusExperimental,
		},
	}
}

// NetLibrary returns the base profile for a stable library in a
// network/runtime ecosystem. Projects built on it typically extend the
// dependency and documentation lists and replace the scalar fields.
func NetLibrary() Profile {
	return Profile{
		Name: ProfileNetLibrary,
		Base: Descriptor{
			Status: StatusStable,
			Tags:   []string{"library"},
		},
	}
}

// ProfileByName returns the standard profile with the given name.
// Returns ErrProfileUnknown for anything else.
func ProfileByName(name string) (Profile, error) {
	switch name {
	case ProfileMinimal:
		return Minimal(), nil
	case ProfileNetLibrary:
		return NetLibrary(), nil
	default:
		return Profile{}, ErrProfileUnknown
	}
}
