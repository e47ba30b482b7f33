package systems

import (
	"math"

	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases the camera toward the center of its target. The step is
// a fraction of the remaining gap capped at 1, so it never overshoots, and it
// snaps once the gap is below SnapDistance.
func UpdateCamera(w donburi.World, dt float64, cfg *config.CameraConfig) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.HasTarget() {
		target := components.Object.Get(camera.Target).Bounds()
		targetX, targetY := clampToBounds(camera, target.CenterX(), target.CenterY(), cfg)

		t := math.Min(1, cfg.FollowSpeed*dt)
		camera.Position.X = gamemath.Lerp(camera.Position.X, targetX, t)
		camera.Position.Y = gamemath.Lerp(camera.Position.Y, targetY, t)

		if math.Abs(targetX-camera.Position.X) <= cfg.SnapDistance && math.Abs(targetY-camera.Position.Y) <= cfg.SnapDistance {
			camera.Position.X = targetX
			camera.Position.Y = targetY
		}
		return
	}

	camera.Position.X, camera.Position.Y = clampToBounds(camera, camera.Position.X, camera.Position.Y, cfg)
}

// clampToBounds keeps the visible area inside the level when clamping is on.
// A level narrower than the view is centered instead.
func clampToBounds(camera *components.CameraData, x, y float64, cfg *config.CameraConfig) (float64, float64) {
	b := camera.Bounds
	if !cfg.ClampToLevel || b.W <= 0 || b.H <= 0 {
		return x, y
	}
	return clampAxis(x, b.X, b.W, cfg.ViewportWidth*camera.Zoom/2),
		clampAxis(y, b.Y, b.H, cfg.ViewportHeight*camera.Zoom/2)
}

func clampAxis(v, lo, size, half float64) float64 {
	if size <= half*2 {
		return lo + size/2
	}
	return gamemath.ClampFloat(v, lo+half, lo+size-half)
}

// SetCameraTarget makes the camera follow e. Passing nil stops following.
func SetCameraTarget(camera *components.CameraData, e *donburi.Entry) {
	camera.Target = e
}

// SetCameraPosition moves the camera. It leaves the target alone.
func SetCameraPosition(camera *components.CameraData, x, y float64) {
	camera.Position.X = x
	camera.Position.Y = y
}

// SetCameraZoom sets the zoom, clamped to the configured range.
func SetCameraZoom(camera *components.CameraData, zoom float64, cfg *config.CameraConfig) {
	camera.Zoom = gamemath.ClampFloat(zoom, cfg.MinZoom, cfg.MaxZoom)
}

// AddCameraZoom changes the zoom by delta, clamped to the configured range.
func AddCameraZoom(camera *components.CameraData, delta float64, cfg *config.CameraConfig) {
	SetCameraZoom(camera, camera.Zoom+delta, cfg)
}
