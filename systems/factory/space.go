package factory

import (
	"github.com/automoto/canyon/archetypes"
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateSpace spawns the broadphase for a level. The grid covers bounds plus
// the configured margin so floating platforms stay inside it.
func CreateSpace(w donburi.World, bounds gamemath.Rect, cfg *config.Config) *donburi.Entry {
	margin := cfg.Physics.SpaceMargin + cfg.Platform.FloatAmplitude
	area := gamemath.Rect{
		X: bounds.X - margin,
		Y: bounds.Y - margin,
		W: bounds.W + 2*margin,
		H: bounds.H + 2*margin,
	}

	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Broadphase: components.NewBroadphase(area, cfg.Physics.SpaceScale, cfg.Physics.SpaceCellSize, cfg.Physics.EdgeTolerance),
	})
	return space
}
