package factory

import (
	"github.com/automoto/canyon/archetypes"
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/automoto/canyon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlatform spawns a rock platform. Its float center is the spawn
// height and floatTimer is the first cycle's countdown.
func CreatePlatform(w donburi.World, p leveldata.Placement, floatTimer float64, cfg *config.PlatformConfig) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	x := p.X * cfg.SegmentWidth
	y := p.Y*cfg.Height*cfg.HeightStep + cfg.OffsetY
	obj := resolv.NewObject(x, y, cfg.SegmentWidth*float64(p.Length), cfg.Height, tags.ResolvSolid)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{
		Object: obj,
		Scale:  math.Vec2{X: 1, Y: 1},
	})

	components.Platform.SetValue(platform, components.PlatformData{
		Length:       p.Length,
		FloatTimer:   floatTimer,
		FloatCenterY: y,
		FloatTargetY: y,
	})

	return platform
}
