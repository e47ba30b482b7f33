package scenes

import (
	"github.com/automoto/canyon/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slices for touch IDs to avoid allocations
var (
	touchIDs    []ebiten.TouchID
	newTouchIDs []ebiten.TouchID
)

// keySource reads key state. The live one is ebitenKeys.
type keySource interface {
	IsKeyPressed(ebiten.Key) bool
	IsKeyJustPressed(ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// pollPlayerInput reads the keyboard and touch screen into player intents.
func pollPlayerInput() components.InputData {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	newTouchIDs = inpututil.AppendJustPressedTouchIDs(newTouchIDs[:0])
	return playerInput(ebitenKeys{}, len(touchIDs) > 0, len(newTouchIDs) > 0)
}

// playerInput maps keys and touches to intents. Any touch counts as a jump.
// Up only jumps on the frame it is pressed.
func playerInput(keys keySource, touching, touched bool) components.InputData {
	return components.InputData{
		MoveLeft:        keys.IsKeyPressed(ebiten.KeyA) || keys.IsKeyPressed(ebiten.KeyLeft),
		MoveRight:       keys.IsKeyPressed(ebiten.KeyD) || keys.IsKeyPressed(ebiten.KeyRight),
		JumpHeld:        keys.IsKeyPressed(ebiten.KeySpace) || touching,
		JumpJustPressed: keys.IsKeyJustPressed(ebiten.KeySpace) || keys.IsKeyJustPressed(ebiten.KeyUp) || touched,
	}
}

// cameraInput is the free-roam and zoom control state for one frame.
type cameraInput struct {
	dx, dy    float64
	zoomDelta float64
	zoomReset bool
	home      bool
}

// pollCameraInput reads camera controls. Panning uses the arrow keys, so it
// is only applied while the camera is in free roam.
func pollCameraInput(dt, moveSpeed float64) cameraInput {
	var in cameraInput

	move := moveSpeed * dt
	zoom := dt
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) {
		move *= 5
		zoom *= 5
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.dx -= move
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.dx += move
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.dy += move
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.dy -= move
	}
	in.home = ebiten.IsKeyPressed(ebiten.KeyBackspace)

	if ebiten.IsKeyPressed(ebiten.KeyComma) {
		in.zoomDelta += zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyPeriod) {
		in.zoomDelta -= zoom
	}
	in.zoomReset = ebiten.IsKeyPressed(ebiten.KeySlash)

	return in
}
