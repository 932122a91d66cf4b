// Package projectile moves a point through an environment of gravity and
// wind, stepping with harmonica's projectile integrator.
package projectile

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/noray/pkg/math3d"
)

// Environment holds the constant accelerations acting on a projectile.
type Environment struct {
	Gravity math3d.Vector
	Wind    math3d.Vector
}

// EarthGravity returns standard gravity in a y-up coordinate system.
func EarthGravity() math3d.Vector {
	return fromHarmonicaVector(harmonica.Gravity)
}

// Acceleration returns the combined acceleration of gravity and wind.
func (e Environment) Acceleration() math3d.Vector {
	return e.Gravity.Add(e.Wind)
}

// Projectile is a moving point.
type Projectile struct {
	Position math3d.Point
	Velocity math3d.Vector
}

// Tick advances p by one unit of time.
func Tick(env Environment, p Projectile) Projectile {
	return Step(env, p, 1)
}

// Step advances p by dt: the position moves by the current velocity, then
// the velocity picks up the environment's acceleration.
func Step(env Environment, p Projectile, dt float64) Projectile {
	h := newIntegrator(env, p, dt)
	h.Update()
	return fromIntegrator(h)
}

// Trajectory steps p at the given frame rate and returns every position
// visited, starting with the initial one. It stops once the projectile is
// at or below y = 0 or after maxSteps updates. A non-positive fps or
// maxSteps yields only the initial position.
func Trajectory(env Environment, p Projectile, fps, maxSteps int) []math3d.Point {
	path := []math3d.Point{p.Position}
	if fps <= 0 || maxSteps <= 0 {
		return path
	}

	// One integrator for the whole flight; it owns its state.
	h := newIntegrator(env, p, harmonica.FPS(fps))
	for range maxSteps {
		pos := fromHarmonicaPoint(h.Update())
		path = append(path, pos)
		if pos.Y <= 0 {
			break
		}
	}
	return path
}

func newIntegrator(env Environment, p Projectile, dt float64) *harmonica.Projectile {
	return harmonica.NewProjectile(
		dt,
		toHarmonicaPoint(p.Position),
		toHarmonicaVector(p.Velocity),
		toHarmonicaVector(env.Acceleration()),
	)
}

func fromIntegrator(h *harmonica.Projectile) Projectile {
	return Projectile{
		Position: fromHarmonicaPoint(h.Position()),
		Velocity: fromHarmonicaVector(h.Velocity()),
	}
}

func toHarmonicaPoint(p math3d.Point) harmonica.Point {
	return harmonica.Point{X: p.X, Y: p.Y, Z: p.Z}
}

func fromHarmonicaPoint(p harmonica.Point) math3d.Point {
	return math3d.P(p.X, p.Y, p.Z)
}

func toHarmonicaVector(v math3d.Vector) harmonica.Vector {
	return harmonica.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func fromHarmonicaVector(v harmonica.Vector) math3d.Vector {
	return math3d.V(v.X, v.Y, v.Z)
}
