// Package config charge une description de scène depuis un fichier YAML et
// construit les bodies et joints correspondants.
package config

import (
	"fmt"
	"os"

	"github.com/akmonengine/pebble"
	"github.com/akmonengine/pebble/actor"
	"github.com/akmonengine/pebble/constraint"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// SceneConfig is the YAML description of a scene.
type SceneConfig struct {
	Gravity [3]float64 `yaml:"gravity"`
	Grid    GridConfig `yaml:"grid"`
	Bodies  []BodyDef  `yaml:"bodies"`
	Joints  []JointDef `yaml:"joints,omitempty"`
}

type GridConfig struct {
	CellSize float64 `yaml:"cell_size"`
	Slots    int     `yaml:"slots,omitempty"`
	MaxCells int     `yaml:"max_cells,omitempty"`
}

// BodyDef describes one rigid body. Mass wins over Density when both are set;
// mass 0 (ou absente, sans densité) donne un corps statique.
type BodyDef struct {
	Position        [3]float64 `yaml:"position"`
	Velocity        [3]float64 `yaml:"velocity,omitempty"`
	AngularVelocity [3]float64 `yaml:"angular_velocity,omitempty"`
	Mass            float64    `yaml:"mass,omitempty"`
	Density         float64    `yaml:"density,omitempty"`
	Restitution     float64    `yaml:"restitution,omitempty"`
	Shape           ShapeDef   `yaml:"shape"`
}

// ShapeDef is the tagged YAML form of an actor.Shape variant.
type ShapeDef struct {
	Type   string  `yaml:"type"` // plane | sphere | box
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Depth  float64 `yaml:"depth,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
}

// JointDef references bodies by index in the bodies list.
type JointDef struct {
	BodyA    int        `yaml:"body_a"`
	BodyB    int        `yaml:"body_b"`
	AnchorA  [3]float64 `yaml:"anchor_a,omitempty"`
	AnchorB  [3]float64 `yaml:"anchor_b,omitempty"`
	Distance float64    `yaml:"distance"`
}

// Load reads a scene config from a YAML file.
func Load(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML scene config.
func Parse(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Grid.CellSize <= 0 {
		return nil, fmt.Errorf("config: grid cell_size must be positive, got %v", cfg.Grid.CellSize)
	}

	return &cfg, nil
}

// BuildScene constructs the scene and its joints from the config.
func (cfg *SceneConfig) BuildScene() (*pebble.Scene, []*constraint.Distance, error) {
	scene := &pebble.Scene{
		Gravity: vec3(cfg.Gravity),
		Grid:    pebble.NewSpatialGrid(cfg.Grid.CellSize, cfg.Grid.Slots, cfg.Grid.MaxCells),
		Events:  pebble.NewEvents(),
	}

	for i, def := range cfg.Bodies {
		body, err := def.build()
		if err != nil {
			return nil, nil, fmt.Errorf("config: body %d: %w", i, err)
		}
		scene.AddBody(body)
	}

	joints := make([]*constraint.Distance, 0, len(cfg.Joints))
	for i, def := range cfg.Joints {
		if def.BodyA < 0 || def.BodyA >= len(scene.Bodies) || def.BodyB < 0 || def.BodyB >= len(scene.Bodies) {
			return nil, nil, fmt.Errorf("config: joint %d references unknown body", i)
		}
		joints = append(joints, &constraint.Distance{
			BodyA:    def.BodyA,
			BodyB:    def.BodyB,
			AnchorA:  vec3(def.AnchorA),
			AnchorB:  vec3(def.AnchorB),
			Distance: def.Distance,
		})
	}

	return scene, joints, nil
}

func (def BodyDef) build() (*actor.RigidBody, error) {
	shape, err := def.Shape.build()
	if err != nil {
		return nil, err
	}

	mass := def.Mass
	if mass == 0 && def.Density > 0 {
		mass = shape.Volume() * def.Density
	}

	body := actor.NewRigidBody(
		actor.Transform{Position: vec3(def.Position), Rotation: mgl64.QuatIdent()},
		shape,
		mass,
	)
	body.Velocity = vec3(def.Velocity)
	body.AngularVelocity = vec3(def.AngularVelocity)
	body.Restitution = def.Restitution

	return body, nil
}

func (def ShapeDef) build() (actor.Shape, error) {
	switch def.Type {
	case "plane":
		return &actor.Plane{Width: def.Width, Height: def.Height}, nil
	case "sphere":
		return &actor.Sphere{Radius: def.Radius}, nil
	case "box":
		return &actor.Box{Width: def.Width, Height: def.Height, Depth: def.Depth}, nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", def.Type)
	}
}

func vec3(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
