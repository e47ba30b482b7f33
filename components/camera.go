package components

import (
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Zoom     float64
	Target   *donburi.Entry // not owned; checked with Valid() every frame
	Bounds   gamemath.Rect  // zero size disables clamping
}

// HasTarget reports whether the camera follows a live entry.
func (c *CameraData) HasTarget() bool {
	return c.Target != nil && c.Target.Valid()
}

// HasTargetEntry reports whether e is the current target.
func (c *CameraData) HasTargetEntry(e *donburi.Entry) bool {
	return c.HasTarget() && e != nil && c.Target.Entity() == e.Entity()
}

var Camera = donburi.NewComponentType[CameraData]()
