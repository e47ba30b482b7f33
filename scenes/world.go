package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/session"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/automoto/canyon/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WorldScene drives a session from the ebiten loop and draws it with plain
// shapes.
type WorldScene struct {
	session *session.Session
	cfg     config.Config
	debug   bool
}

// NewWorldScene starts a session on desc. Pickups and deaths are logged.
func NewWorldScene(cfg *config.Config, desc *leveldata.Description) (*WorldScene, error) {
	s, err := session.New(cfg, desc, session.WithListeners(session.Listeners{
		PickupCollected: func(e systems.PickupCollectedEvent) {
			log.Printf("%s collected (+%d)", e.Kind, e.Score)
		},
		GameOver: func(e session.GameOverEvent) {
			log.Printf("restarting in %.1fs", e.Delay)
		},
	}))
	if err != nil {
		return nil, err
	}
	return &WorldScene{session: s, cfg: *cfg}, nil
}

func (ws *WorldScene) Update() {
	dt := 1 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ws.session.ToggleCameraFollow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ws.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		ws.debug = !ws.debug
	}

	cam := pollCameraInput(dt, ws.cfg.Camera.FreeMoveSpeed)
	if !ws.session.FollowingPlayer() {
		ws.session.MoveCamera(cam.dx, cam.dy)
		if cam.home {
			ws.session.SetCameraPosition(0, 0)
		}
	}
	if cam.zoomDelta != 0 {
		ws.session.AddZoom(cam.zoomDelta)
	}
	if cam.zoomReset {
		ws.session.SetZoom(ws.cfg.Camera.DefaultZoom)
	}

	ws.session.SetInput(pollPlayerInput())
	ws.session.Tick(dt)
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{100, 149, 237, 255})

	view := newViewport(screen, ws.session.Camera(), ws.cfg.Camera.ViewportHeight)
	drawWater(screen, view, ws.cfg.Physics.WaterLevel)
	drawLevel(screen, view, ws.session.Level())
	drawHUD(screen, ws.session)

	if ws.debug {
		drawDebug(screen, view, ws.session)
	}
}

// Title is the window title for the current level.
func (ws *WorldScene) Title() string {
	return fmt.Sprintf("canyon - %s", ws.session.Level().Description.Name)
}
