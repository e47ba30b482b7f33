package factory

import (
	"github.com/automoto/canyon/archetypes"
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World, bounds gamemath.Rect, cfg *config.CameraConfig) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Zoom:   gamemath.ClampFloat(cfg.DefaultZoom, cfg.MinZoom, cfg.MaxZoom),
		Bounds: bounds,
	})
	return camera
}
