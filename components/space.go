package components

import (
	"math"

	"github.com/automoto/canyon/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Broadphase mirrors entity boxes into a resolv space so collision queries
// only visit nearby objects. resolv cells start at zero and assume whole
// pixel boxes, so each box is shifted by the origin, scaled and padded
// outward before it is registered. Hits still need the exact box test.
type Broadphase struct {
	space            *resolv.Space
	originX, originY float64
	scale            float64
	padding          float64
}

// NewBroadphase covers area with cells of cellSize grid units, at scale grid
// units per world unit. Boxes are grown by padding world units on every side.
func NewBroadphase(area gamemath.Rect, scale float64, cellSize int, padding float64) *Broadphase {
	w := int(math.Ceil(area.W*scale)) + cellSize
	h := int(math.Ceil(area.H*scale)) + cellSize
	return &Broadphase{
		space:   resolv.NewSpace(w, h, cellSize, cellSize),
		originX: area.X,
		originY: area.Y,
		scale:   scale,
		padding: padding,
	}
}

// Add registers obj for entry e and places it.
func (b *Broadphase) Add(obj *ObjectData, e *donburi.Entry) {
	proxy := resolv.NewObject(0, 0, 1, 1, obj.Tags()...)
	proxy.Data = e
	obj.proxy = proxy
	obj.broadphase = b
	b.space.Add(proxy)
	obj.Sync()
}

// Remove unregisters obj.
func (b *Broadphase) Remove(obj *ObjectData) {
	if obj.proxy == nil || obj.broadphase != b {
		return
	}
	b.space.Remove(obj.proxy)
	obj.proxy = nil
	obj.broadphase = nil
}

// place covers every grid unit the padded box touches, edges included.
func (b *Broadphase) place(obj *ObjectData) {
	x0 := math.Floor((obj.X - b.padding - b.originX) * b.scale)
	y0 := math.Floor((obj.Y - b.padding - b.originY) * b.scale)
	x1 := math.Ceil((obj.X + obj.W + b.padding - b.originX) * b.scale)
	y1 := math.Ceil((obj.Y + obj.H + b.padding - b.originY) * b.scale)

	p := obj.proxy
	p.X, p.Y = x0, y0
	p.W, p.H = x1-x0+1, y1-y0+1
	p.Update()
}

type SpaceData struct {
	*Broadphase
}

var Space = donburi.NewComponentType[SpaceData]()
