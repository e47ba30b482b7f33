package components

import (
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BodyData is a kinematic body. Velocity is capped per axis by
// TerminalVelocity each time gravity is applied.
type BodyData struct {
	Velocity         math.Vec2
	TerminalVelocity math.Vec2
	Friction         math.Vec2 // deceleration per second toward zero
	GravityScale     float64
}

// ApplyGravity accelerates the body downward and clamps both axes.
func (b *BodyData) ApplyGravity(dt, gravity float64) {
	b.Velocity.Y += gravity * b.GravityScale * dt
	b.Velocity.X = gamemath.ClampSpeed(b.Velocity.X, b.TerminalVelocity.X)
	b.Velocity.Y = gamemath.ClampSpeed(b.Velocity.Y, b.TerminalVelocity.Y)
}

// ApplyFriction slows both axes toward zero without crossing it.
func (b *BodyData) ApplyFriction(dt float64) {
	b.Velocity.X = gamemath.ApplyFriction(b.Velocity.X, b.Friction.X, dt)
	b.Velocity.Y = gamemath.ApplyFriction(b.Velocity.Y, b.Friction.Y, dt)
}

// Integrate moves obj by the current velocity.
func (b *BodyData) Integrate(obj *resolv.Object, dt float64) {
	obj.X += b.Velocity.X * dt
	obj.Y += b.Velocity.Y * dt
}

var Body = donburi.NewComponentType[BodyData]()
