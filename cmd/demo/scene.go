// Copyright © 2024 Galvanized Logic Inc.

package main

// scene.go loads a YAML scene description into a physics.Simulation, the
// way load/shd.go turns a YAML shader description into a compiled Shader:
// yaml.Unmarshal into a private config struct, then translate field by
// field into the package's own constructors rather than exposing the YAML
// shape to physics.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironvale/rigidphys/load"
	"github.com/ironvale/rigidphys/math/lin"
	"github.com/ironvale/rigidphys/physics"
)

type sceneCage struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

type sceneBody struct {
	Kind string `yaml:"kind"` // "cuboid" or "mesh"

	// cuboid: half-extents. mesh: source .obj path.
	Dim  [3]float64 `yaml:"dim"`
	Path string     `yaml:"path"`

	MassInverse float64 `yaml:"mass_inverse"`
	// mesh only: inverse diagonal of the body-frame inertia tensor.
	InertiaInverse [3]float64 `yaml:"inertia_inverse"`

	Position         [3]float64 `yaml:"position"`
	OrientationAxis  [3]float64 `yaml:"orientation_axis"`
	OrientationAngle float64    `yaml:"orientation_angle"` // degrees

	LinearMomentum  [3]float64 `yaml:"linear_momentum"`
	AngularMomentum [3]float64 `yaml:"angular_momentum"`
}

type sceneConfig struct {
	Gravity float64     `yaml:"gravity"`
	Drag    float64     `yaml:"drag"`
	Cage    *sceneCage  `yaml:"cage"`
	Bodies  []sceneBody `yaml:"bodies"`
}

// LoadScene reads a YAML scene description and builds a simulation from
// it: gravity magnitude, an optional linear drag coefficient, an optional
// bounding cage, and a body list of cuboids or mesh-imported polyhedra.
func LoadScene(path string) (*physics.Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	var cfg sceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scene: yaml %w", err)
	}

	sim := physics.NewSimulation()
	if cfg.Gravity != 0 {
		sim.Forces = []physics.ForceFunc{physics.Gravity(cfg.Gravity)}
	}
	if cfg.Drag != 0 {
		sim.Forces = append(sim.Forces, physics.LinearDrag(cfg.Drag))
	}
	for i, sb := range cfg.Bodies {
		body, err := sb.build()
		if err != nil {
			return nil, fmt.Errorf("scene: body %d (%s): %w", i, sb.Kind, err)
		}
		sim.AddBody(body)
	}
	if cfg.Cage != nil {
		min, max := toV3(cfg.Cage.Min), toV3(cfg.Cage.Max)
		if err := sim.SetBoundingCage(min, max); err != nil {
			return nil, fmt.Errorf("scene: cage: %w", err)
		}
	}
	return sim, nil
}

func (sb sceneBody) build() (*physics.RigidBody, error) {
	position := toV3(sb.Position)
	rotation := orientationMatrix(sb.OrientationAxis, sb.OrientationAngle)
	linear := toV3(sb.LinearMomentum)
	angular := toV3(sb.AngularMomentum)

	switch sb.Kind {
	case "cuboid":
		hx, hy, hz := sb.Dim[0], sb.Dim[1], sb.Dim[2]
		return physics.NewCuboidBody(hx, hy, hz, sb.MassInverse, position, rotation, linear, angular)
	case "mesh":
		vertices, triangles, err := load.Obj(sb.Path)
		if err != nil {
			return nil, err
		}
		var inertiaInv lin.M3
		inertiaInv.SetS(
			sb.InertiaInverse[0], 0, 0,
			0, sb.InertiaInverse[1], 0,
			0, 0, sb.InertiaInverse[2],
		)
		return physics.NewMeshBody(vertices, triangles, sb.MassInverse, inertiaInv, position, rotation, linear, angular)
	default:
		return nil, fmt.Errorf("unknown body kind %q", sb.Kind)
	}
}

func orientationMatrix(axis [3]float64, angleDeg float64) lin.M3 {
	if angleDeg == 0 || axis == ([3]float64{}) {
		return *lin.NewM3I()
	}
	return *lin.NewM3().SetAa(axis[0], axis[1], axis[2], lin.Rad(angleDeg))
}

func toV3(a [3]float64) lin.V3 { return lin.V3{X: a[0], Y: a[1], Z: a[2]} }
