// Package render implements the built-in "artifacts" generation engine.
// It renders a resolved descriptor snapshot into a fixed artifact set:
// package manifest, build definition, documentation index, and NOTICE.
// Output is deterministic: a fixed snapshot and engine version always
// produce byte-identical files. See docs/ARCHITECTURE.md § Built-in Engine.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/stencil/pkg/descriptor"
	"github.com/mesh-intelligence/stencil/pkg/engine"
)

// Engine identity. Version changes whenever rendered bytes change for an
// unchanged snapshot.
const (
	EngineName    = "artifacts"
	EngineVersion = "v1"
)

// Artifact paths, relative to the output directory. This is the engine's
// complete output set; nothing outside it is ever touched.
const (
	ManifestFile = "package.yaml"
	BuildFile    = "build.yaml"
	IndexFile    = "docs/INDEX.md"
	NoticeFile   = "NOTICE"
)

// primaryTarget is the runtime version the build definition always targets;
// backport targets from the descriptor are appended after it.
const primaryTarget = "latest"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Renderer is the built-in engine. Construct with New.
type Renderer struct {
	log zerolog.Logger
}

// New returns a Renderer that logs per-artifact diagnostics to log.
func New(log zerolog.Logger) *Renderer {
	return &Renderer{log: log}
}

// Name implements engine.Engine.
func (r *Renderer) Name() string { return EngineName }

// Version implements engine.Engine.
func (r *Renderer) Version() string { return EngineVersion }

// manifest is the package.yaml document. Field order is render order.
type manifest struct {
	Namespace       string                  `yaml:"namespace"`
	Description     string                  `yaml:"description"`
	InceptionYear   int                     `yaml:"inception_year"`
	Status          string                  `yaml:"status"`
	SignedReleases  bool                    `yaml:"signed_releases"`
	StrictChangelog bool                    `yaml:"strict_changelog"`
	Tags            []string                `yaml:"tags"`
	Dependencies    []descriptor.Dependency `yaml:"dependencies"`
	Fingerprint     string                  `yaml:"fingerprint"`
}

// buildDef is the build.yaml document.
type buildDef struct {
	Namespace string   `yaml:"namespace"`
	Targets   []string `yaml:"targets"`
}

// Generate implements engine.Engine. The snapshot is validated first; a
// validation failure aborts before any file is written. All artifacts are
// rendered in memory, then written atomically, so an interrupted run never
// leaves a half-written file behind.
func (r *Renderer) Generate(snap descriptor.Snapshot, outDir string) (*engine.Result, error) {
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("validate descriptor: %w", err)
	}

	artifacts, err := r.renderAll(snap)
	if err != nil {
		return nil, err
	}

	result := &engine.Result{Engine: EngineName, EngineVersion: EngineVersion}
	for _, a := range artifacts {
		path := filepath.Join(outDir, filepath.FromSlash(a.path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
		if err := renameio.WriteFile(path, a.data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", a.path, err)
		}
		r.log.Debug().Str("artifact", a.path).Int("bytes", len(a.data)).Msg("wrote artifact")
		result.Files = append(result.Files, a.path)
	}
	return result, nil
}

// artifact pairs a relative output path with its rendered bytes.
type artifact struct {
	path string
	data []byte
}

// renderAll produces every artifact in render order without touching the
// filesystem. The NOTICE artifact is omitted when the notice text is empty.
func (r *Renderer) renderAll(snap descriptor.Snapshot) ([]artifact, error) {
	var out []artifact

	m := manifest{
		Namespace:       snap.Namespace(),
		Description:     snap.Description(),
		InceptionYear:   snap.InceptionYear(),
		Status:          snap.Status(),
		SignedReleases:  snap.Status() == descriptor.StatusStable,
		StrictChangelog: snap.Status() == descriptor.StatusStable,
		Tags:            snap.Tags(),
		Dependencies:    snap.Dependencies(),
		Fingerprint:     snap.Fingerprint().String(),
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	out = append(out, artifact{path: ManifestFile, data: data})

	b := buildDef{
		Namespace: snap.Namespace(),
		Targets:   append([]string{primaryTarget}, snap.BackportTargets()...),
	}
	data, err = yaml.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshal build definition: %w", err)
	}
	out = append(out, artifact{path: BuildFile, data: data})

	data, err = r.renderTemplate("index.md.tmpl", map[string]any{
		"Namespace": snap.Namespace(),
		"Links":     snap.DocumentationLinks(),
	})
	if err != nil {
		return nil, err
	}
	out = append(out, artifact{path: IndexFile, data: data})

	if snap.NoticeText() != "" {
		data, err = r.renderTemplate("notice.tmpl", map[string]any{
			"Namespace":     snap.Namespace(),
			"InceptionYear": snap.InceptionYear(),
			"NoticeText":    normalizeNotice(snap.NoticeText()),
		})
		if err != nil {
			return nil, err
		}
		out = append(out, artifact{path: NoticeFile, data: data})
	}

	return out, nil
}

func (r *Renderer) renderTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
