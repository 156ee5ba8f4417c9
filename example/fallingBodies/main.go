package main

import (
	"flag"
	"os"
	"time"

	"github.com/akmonengine/pebble"
	"github.com/akmonengine/pebble/actor"
	"github.com/akmonengine/pebble/config"
	"github.com/akmonengine/pebble/constraint"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	dt       = 1.0 / 60.0
	maxSteps = 300
)

func main() {
	scenePath := flag.String("scene", "", "YAML scene file (default: built-in falling bodies)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "pebble",
	})

	scene, joints, err := loadScene(*scenePath)
	if err != nil {
		logger.Fatal("failed to load scene", "path", *scenePath, "err", err)
	}
	logger.Info("scene loaded", "bodies", len(scene.Bodies), "joints", len(joints), "gravity", scene.Gravity)

	scene.Events.Subscribe(pebble.COLLISION_ENTER, func(e pebble.Event) {
		enter := e.(pebble.CollisionEnterEvent)
		logger.Info("collision enter", "bodyA", enter.BodyA, "bodyB", enter.BodyB)
	})
	scene.Events.Subscribe(pebble.COLLISION_EXIT, func(e pebble.Event) {
		exit := e.(pebble.CollisionExitEvent)
		logger.Info("collision exit", "bodyA", exit.BodyA, "bodyB", exit.BodyB)
	})

	for step := 0; step < maxSteps; step++ {
		scene.Step(dt)

		if err := scene.RebuildGrid(); err != nil {
			logger.Fatal("grid rebuild failed, scene state is invalid", "step", step, "err", err)
		}
		scene.DetectCollisions()

		for _, joint := range joints {
			joint.Solve(scene.Bodies)
		}

		scene.Events.Flush()

		if step%60 == 0 {
			body := scene.Bodies[len(scene.Bodies)-1]
			logger.Info("progress",
				"step", step,
				"position", body.Transform.Position,
				"velocity", body.Velocity,
			)
		}
	}

	logger.Info("done", "steps", maxSteps)
}

func loadScene(path string) (*pebble.Scene, []*constraint.Distance, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		return cfg.BuildScene()
	}

	// Scène par défaut: deux sphères qui tombent vers un sol statique,
	// reliées par un joint de distance.
	scene := pebble.NewScene(mgl64.Vec3{0, -9.81, 0}, 2.0)

	ground := actor.NewRigidBody(
		actor.Transform{Position: mgl64.Vec3{0, 0, 0}, Rotation: mgl64.QuatIdent()},
		&actor.Plane{Width: 100, Height: 100},
		0,
	)
	scene.AddBody(ground)

	a := actor.NewRigidBody(
		actor.Transform{Position: mgl64.Vec3{-1, 8, 0}, Rotation: mgl64.QuatIdent()},
		&actor.Sphere{Radius: 0.5},
		1.0,
	)
	a.AngularVelocity = mgl64.Vec3{0, 1, 0}
	idxA := scene.AddBody(a)

	b := actor.NewRigidBody(
		actor.Transform{Position: mgl64.Vec3{1, 8, 0}, Rotation: mgl64.QuatIdent()},
		&actor.Sphere{Radius: 0.5},
		1.0,
	)
	idxB := scene.AddBody(b)

	joints := []*constraint.Distance{
		{BodyA: idxA, BodyB: idxB, Distance: 2.0},
	}

	return scene, joints, nil
}
