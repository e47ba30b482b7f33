package components

import (
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is the transform shared by every entity. The embedded resolv
// object holds the bounding box; X, Y is its bottom-left corner.
type ObjectData struct {
	*resolv.Object
	Origin   math.Vec2
	Scale    math.Vec2
	Rotation float64

	proxy      *resolv.Object // grid copy of the box, nil outside a broadphase
	broadphase *Broadphase
}

// Bounds returns the bounding box as a plain rectangle.
func (o *ObjectData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Sync moves the broadphase copy after the box changed. Call it after every
// move that collision queries must see.
func (o *ObjectData) Sync() {
	if o.broadphase != nil {
		o.broadphase.place(o)
	}
}

// Nearby returns the entities whose broadphase cells touch this box and that
// carry tag. ok is false when the object is in no broadphase.
func (o *ObjectData) Nearby(tag string) (near map[donburi.Entity]bool, ok bool) {
	if o.proxy == nil {
		return nil, false
	}
	near = map[donburi.Entity]bool{}
	if check := o.proxy.Check(0, 0, tag); check != nil {
		for _, other := range check.Objects {
			if e, isEntry := other.Data.(*donburi.Entry); isEntry {
				near[e.Entity()] = true
			}
		}
	}
	return near, true
}

var Object = donburi.NewComponentType[ObjectData]()
