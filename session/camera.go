package session

import (
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/systems"
)

// FollowingPlayer reports whether the camera is locked onto the player.
// Player input is ignored otherwise.
func (s *Session) FollowingPlayer() bool {
	return s.Camera().HasTargetEntry(s.Player())
}

// ToggleCameraFollow switches between following the player and free roam.
func (s *Session) ToggleCameraFollow() {
	camera := s.Camera()
	if s.FollowingPlayer() {
		s.freeRoam = true
		systems.SetCameraTarget(camera, nil)
		return
	}
	s.freeRoam = false
	systems.SetCameraTarget(camera, s.Player())
}

// MoveCamera pans the camera by dx, dy world units.
func (s *Session) MoveCamera(dx, dy float64) {
	camera := s.Camera()
	systems.SetCameraPosition(camera, camera.Position.X+dx, camera.Position.Y+dy)
}

func (s *Session) SetCameraPosition(x, y float64) {
	systems.SetCameraPosition(s.Camera(), x, y)
}

func (s *Session) AddZoom(delta float64) {
	systems.AddCameraZoom(s.Camera(), delta, &s.cfg.Camera)
}

func (s *Session) SetZoom(zoom float64) {
	systems.SetCameraZoom(s.Camera(), zoom, &s.cfg.Camera)
}

// Camera returns the live camera state. Callers must not keep it across a
// reset.
func (s *Session) Camera() *components.CameraData {
	return components.Camera.Get(s.cameraEntry)
}
