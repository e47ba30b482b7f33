package components

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestApplyGravityClampsBothAxes(t *testing.T) {
	steps := []float64{0, 0.001, 1.0 / 60, 0.1, 1, 10, 1000}
	starts := []math.Vec2{
		{X: 0, Y: 0},
		{X: 50, Y: 50},
		{X: -50, Y: -50},
		{X: 2.5, Y: -3.9},
	}

	for _, dt := range steps {
		for _, v := range starts {
			b := BodyData{
				Velocity:         v,
				TerminalVelocity: math.Vec2{X: 3, Y: 4},
				GravityScale:     1,
			}
			b.ApplyGravity(dt, -25)
			assert.LessOrEqual(t, b.Velocity.X, 3.0)
			assert.GreaterOrEqual(t, b.Velocity.X, -3.0)
			assert.LessOrEqual(t, b.Velocity.Y, 4.0)
			assert.GreaterOrEqual(t, b.Velocity.Y, -4.0)
		}
	}
}

func TestApplyGravityScale(t *testing.T) {
	b := BodyData{TerminalVelocity: math.Vec2{X: 3, Y: 100}, GravityScale: 0.5}
	b.ApplyGravity(0.1, -20)
	assert.InDelta(t, -1.0, b.Velocity.Y, 1e-9)
}

func TestApplyFrictionStopsAtZero(t *testing.T) {
	b := BodyData{
		Velocity: math.Vec2{X: 1, Y: -1},
		Friction: math.Vec2{X: 12, Y: 12},
	}
	b.ApplyFriction(1)
	assert.Equal(t, 0.0, b.Velocity.X)
	assert.Equal(t, 0.0, b.Velocity.Y)
}

func TestIntegrate(t *testing.T) {
	obj := resolv.NewObject(1, 2, 1, 1)
	b := BodyData{Velocity: math.Vec2{X: 2, Y: -4}}
	b.Integrate(obj, 0.5)
	assert.InDelta(t, 2.0, obj.X, 1e-9)
	assert.InDelta(t, 0.0, obj.Y, 1e-9)
}
