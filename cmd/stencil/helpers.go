// Shared helpers for stencil CLI commands.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/stencil/internal/render"
	"github.com/mesh-intelligence/stencil/pkg/descriptor"
	"github.com/mesh-intelligence/stencil/pkg/engine"
)

// defaultProjectFile is the project file name used when --project-file is
// not given.
const defaultProjectFile = "project.yaml"

// resolveSnapshot loads the project file, picks the base profile (file key
// wins over config.yaml), and resolves the profile plus overrides into one
// snapshot. The snapshot is not yet validated; generate and validate decide
// when that happens.
func resolveSnapshot(projectFile string) (descriptor.Snapshot, error) {
	pf, err := descriptor.LoadProjectFile(projectFile)
	if err != nil {
		return descriptor.Snapshot{}, err
	}

	profileName := pf.Profile
	if profileName == "" {
		profileName = configProfile
	}
	profile, err := descriptor.ProfileByName(profileName)
	if err != nil {
		return descriptor.Snapshot{}, fmt.Errorf("profile %q: %w", profileName, err)
	}

	return descriptor.Resolve(profile, pf.Options()...), nil
}

// lookupEngine returns the engine with the given name. The built-in
// renderer is constructed here so it carries the process logger; anything
// else must have been registered up front.
func lookupEngine(name string) (engine.Engine, error) {
	if name == render.EngineName {
		return render.New(logger), nil
	}
	return engine.Lookup(name)
}
