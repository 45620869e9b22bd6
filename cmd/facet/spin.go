package main

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/facet/pkg/render"
)

// RotationAxis tracks position and velocity for one rotation axis with spring decay
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewRotationAxis creates an axis with harmonica spring for smooth velocity decay
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0 using spring
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// RotationState holds user rotation with harmonica spring physics and an
// optional constant spin.
type RotationState struct {
	Pitch, Yaw, Roll RotationAxis
	Spin             bool
	fps              int
}

func NewRotationState(fps int, spin bool) *RotationState {
	return &RotationState{
		Pitch: NewRotationAxis(fps),
		Yaw:   NewRotationAxis(fps),
		Roll:  NewRotationAxis(fps),
		Spin:  spin,
		fps:   fps,
	}
}

func (r *RotationState) Update() {
	r.Pitch.Update()
	r.Yaw.Update()
	r.Roll.Update()
}

func (r *RotationState) ApplyImpulse(pitch, yaw, roll float64) {
	r.Pitch.Velocity += pitch
	r.Yaw.Velocity += yaw
	r.Roll.Velocity += roll
}

func (r *RotationState) Reset() {
	r.Pitch = NewRotationAxis(r.fps)
	r.Yaw = NewRotationAxis(r.fps)
	r.Roll = NewRotationAxis(r.fps)
}

// Rotation returns the model rotation after elapsed seconds. Spin turns
// the mesh about x at one radian per second and about z at half that.
func (r *RotationState) Rotation(elapsed float64) render.Rotation {
	rot := render.Rotation{
		X: r.Pitch.Position,
		Y: r.Yaw.Position,
		Z: r.Roll.Position,
	}
	if r.Spin {
		rot.X += elapsed
		rot.Z += elapsed / 2
	}
	return rot
}
