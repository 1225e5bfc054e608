// Package scene loads a YAML scene description — build settings plus a
// list of brush placements — and resolves it into a navmesh.Navmesh. It is
// the file-driven glue every complete repo in this corpus has (the
// teacher's own recast.BuildSettings / cmd/recast/cmd/config.go round
// trip), generalized from a single navmesh build to arbitrary placements.
package scene

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"

	"github.com/ten3roberts/constructive/brush"
	"github.com/ten3roberts/constructive/navmesh"
	"github.com/ten3roberts/constructive/xform"
)

// Settings mirrors navmesh.Settings in YAML-friendly field names.
type Settings struct {
	MaxStepHeight  float32 `yaml:"max_step_height"`
	MaxSlopeCosine float32 `yaml:"max_slope_cosine"`
	AgentRadius    float32 `yaml:"agent_radius"`
}

func (s Settings) toNavmesh() navmesh.Settings {
	return navmesh.Settings{
		MaxStepHeight:  s.MaxStepHeight,
		MaxSlopeCosine: s.MaxSlopeCosine,
		AgentRadius:    s.AgentRadius,
	}
}

func fromNavmeshSettings(s navmesh.Settings) Settings {
	return Settings{
		MaxStepHeight:  s.MaxStepHeight,
		MaxSlopeCosine: s.MaxSlopeCosine,
		AgentRadius:    s.AgentRadius,
	}
}

// Brush describes one placed primitive or OBJ mesh.
//
// Kind selects the primitive: "plane", "cube", "uv_sphere", or "obj" (in
// which case Path is required). Translate and Scale default to the zero
// value and (1, 1, 1) respectively when omitted.
type Brush struct {
	Kind      string     `yaml:"kind"`
	Path      string     `yaml:"path,omitempty"`
	Translate [3]float32 `yaml:"translate,omitempty"`
	Scale     [3]float32 `yaml:"scale,omitempty"`
	Slices    int        `yaml:"slices,omitempty"`
	Stacks    int        `yaml:"stacks,omitempty"`
}

// Scene is the on-disk, YAML-serializable description of a navmesh build.
type Scene struct {
	Settings Settings `yaml:"settings"`
	Brushes  []Brush  `yaml:"brushes"`
}

// Default returns a scene prefilled with navmesh.DefaultSettings and a
// single unit cube at the origin, the starting point `navgen config`
// writes out.
func Default() *Scene {
	return &Scene{
		Settings: fromNavmeshSettings(navmesh.DefaultSettings()),
		Brushes: []Brush{
			{Kind: "cube", Scale: [3]float32{1, 1, 1}},
		},
	}
}

// Load reads and parses a scene from a YAML file at path.
func Load(path string) (*Scene, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Scene
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return &s, nil
}

// Save writes s to path in YAML format.
func (s *Scene) Save(path string) error {
	buf, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0644)
}

// Build resolves every brush entry into a navmesh.Placement (relative to
// baseDir for OBJ paths, so relative paths in the scene file resolve next
// to it rather than the process's working directory) and builds the
// navmesh.
func (s *Scene) Build(baseDir string) (*navmesh.Navmesh, error) {
	placements := make([]navmesh.Placement, 0, len(s.Brushes))

	for i, b := range s.Brushes {
		br, err := b.resolve(baseDir)
		if err != nil {
			return nil, fmt.Errorf("brush %d: %w", i, err)
		}

		scale := b.Scale
		if scale == ([3]float32{}) {
			scale = [3]float32{1, 1, 1}
		}
		t := xform.ScaleXYZ(scale[0], scale[1], scale[2]).
			Mult(xform.Translation(b.Translate[0], b.Translate[1], b.Translate[2]))

		placements = append(placements, navmesh.Placement{Transform: t, Brush: br})
	}

	return navmesh.New(s.Settings.toNavmesh(), placements), nil
}

func (b Brush) resolve(baseDir string) (*brush.Brush, error) {
	switch b.Kind {
	case "plane":
		return brush.Plane(), nil
	case "cube":
		return brush.Cube(), nil
	case "uv_sphere":
		return brush.UVSphere(b.Slices, b.Stacks), nil
	case "obj":
		if b.Path == "" {
			return nil, fmt.Errorf("obj brush requires a path")
		}
		path := b.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return brush.FromOBJ(path)
	default:
		return nil, fmt.Errorf("unknown brush kind %q", b.Kind)
	}
}
