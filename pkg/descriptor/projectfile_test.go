package descriptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProjectFile(t *testing.T) {
	path := writeProjectFile(t, `
profile: net-library
namespace: GuerrillaNtp
inception_year: 2014
description: Simple SNTP client
tags: [ntp, sntp, time, clock, network]
backport_targets: ["2.0"]
dependencies:
  - name: System.Memory
    version: 4.5.5
documentation_links:
  - label: CLI demo
    url: http://example/cli
notice: |
  Imported, though modified, code from upstream.
`)

	pf, err := LoadProjectFile(path)
	require.NoError(t, err)

	assert.Equal(t, "net-library", pf.Profile)
	assert.Equal(t, "GuerrillaNtp", pf.Namespace)
	assert.Equal(t, 2014, pf.InceptionYear)
	assert.Equal(t, []string{"ntp", "sntp", "time", "clock", "network"}, pf.Tags)
	assert.Equal(t, []Dependency{{Name: "System.Memory", Version: "4.5.5"}}, pf.Dependencies)
	assert.False(t, pf.ReplaceDependencies)
}

func TestLoadProjectFile_Missing(t *testing.T) {
	_, err := LoadProjectFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadProjectFile_Malformed(t *testing.T) {
	path := writeProjectFile(t, "namespace: [this is: not valid\n")
	_, err := LoadProjectFile(path)
	require.Error(t, err)
}

func TestProjectFileOptions_AppendSemantics(t *testing.T) {
	pf := &ProjectFile{
		Namespace:          "GuerrillaNtp",
		InceptionYear:      2014,
		Dependencies:       []Dependency{{Name: "System.Memory", Version: "4.5.5"}},
		DocumentationLinks: []DocLink{{Label: "CLI demo", URL: "http://example/cli"}},
	}

	p := Profile{
		Name: "scenario-base",
		Base: Descriptor{
			Status:             StatusStable,
			Dependencies:       []Dependency{{Name: "Foo", Version: "1.0"}},
			DocumentationLinks: []DocLink{{Label: "Home", URL: "http://base/"}},
		},
	}

	snap := Resolve(p, pf.Options()...)

	assert.Equal(t, []Dependency{
		{Name: "Foo", Version: "1.0"},
		{Name: "System.Memory", Version: "4.5.5"},
	}, snap.Dependencies())
	assert.Equal(t, []DocLink{
		{Label: "Home", URL: "http://base/"},
		{Label: "CLI demo", URL: "http://example/cli"},
	}, snap.DocumentationLinks())
}

func TestProjectFileOptions_ReplaceSemantics(t *testing.T) {
	pf := &ProjectFile{
		Namespace:                 "GuerrillaNtp",
		ReplaceDependencies:       true,
		Dependencies:              []Dependency{{Name: "Only", Version: "2.0"}},
		ReplaceDocumentationLinks: true,
	}

	p := Profile{
		Name: "scenario-base",
		Base: Descriptor{
			Status:             StatusStable,
			Dependencies:       []Dependency{{Name: "Foo", Version: "1.0"}},
			DocumentationLinks: []DocLink{{Label: "Home", URL: "http://base/"}},
		},
	}

	snap := Resolve(p, pf.Options()...)

	assert.Equal(t, []Dependency{{Name: "Only", Version: "2.0"}}, snap.Dependencies())
	assert.Empty(t, snap.DocumentationLinks())
}

func TestProjectFileOptions_OmittedKeysKeepDefaults(t *testing.T) {
	pf := &ProjectFile{Namespace: "GuerrillaNtp"}

	p := Profile{
		Name: "scenario-base",
		Base: Descriptor{
			InceptionYear: 1999,
			Description:   "base description",
			Status:        StatusStable,
			Tags:          []string{"library"},
		},
	}

	snap := Resolve(p, pf.Options()...)

	assert.Equal(t, "GuerrillaNtp", snap.Namespace())
	assert.Equal(t, 1999, snap.InceptionYear())
	assert.Equal(t, "base description", snap.Description())
	assert.Equal(t, []string{"library"}, snap.Tags())
	assert.Equal(t, StatusStable, snap.Status())
}
