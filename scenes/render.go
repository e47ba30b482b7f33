package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/fonts"
	"github.com/automoto/canyon/session"
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/automoto/canyon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	rockColor    = color.RGBA{139, 115, 85, 255}
	playerColor  = color.RGBA{255, 255, 255, 255}
	flyingColor  = color.RGBA{255, 170, 255, 255}
	coinColor    = color.RGBA{255, 215, 0, 255}
	featherColor = color.RGBA{255, 0, 255, 255}
	waterColor   = color.RGBA{30, 60, 160, 200}
	hudColor     = color.White
)

const hudMargin = 10

// viewport maps y-up world units to screen pixels around the camera.
type viewport struct {
	camX, camY    float64
	pixelsPerUnit float64
	halfW, halfH  float64
}

func newViewport(screen *ebiten.Image, camera *components.CameraData, viewportHeight float64) viewport {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	return viewport{
		camX:          camera.Position.X,
		camY:          camera.Position.Y,
		pixelsPerUnit: float64(h) / (viewportHeight * camera.Zoom),
		halfW:         float64(w) / 2,
		halfH:         float64(h) / 2,
	}
}

// toScreen returns the top-left pixel and pixel size of a world rectangle.
func (v viewport) toScreen(r gamemath.Rect) (x, y, w, h float32) {
	sx := v.halfW + (r.X-v.camX)*v.pixelsPerUnit
	sy := v.halfH - (r.Top()-v.camY)*v.pixelsPerUnit
	return float32(sx), float32(sy), float32(r.W * v.pixelsPerUnit), float32(r.H * v.pixelsPerUnit)
}

func fillRect(screen *ebiten.Image, v viewport, r gamemath.Rect, c color.Color) {
	x, y, w, h := v.toScreen(r)
	vector.FillRect(screen, x, y, w, h, c, false)
}

func drawWater(screen *ebiten.Image, v viewport, waterLevel float64) {
	top := float32(v.halfH - (waterLevel-v.camY)*v.pixelsPerUnit)
	if top < 0 {
		top = 0
	}
	height := float32(screen.Bounds().Dy()) - top
	if height <= 0 {
		return
	}
	vector.FillRect(screen, 0, top, float32(screen.Bounds().Dx()), height, waterColor, false)
}

func drawLevel(screen *ebiten.Image, v viewport, level *components.LevelData) {
	if level == nil {
		return
	}
	for _, e := range level.Platforms {
		fillRect(screen, v, components.Object.Get(e).Bounds(), rockColor)
	}
	drawPickups(screen, v, level.Coins, coinColor)
	drawPickups(screen, v, level.PowerUps, featherColor)

	if level.Player != nil && level.Player.Valid() {
		c := playerColor
		if components.Player.Get(level.Player).FeatherActive {
			c = flyingColor
		}
		fillRect(screen, v, components.Object.Get(level.Player).Bounds(), c)
	}
}

func drawPickups(screen *ebiten.Image, v viewport, pickups []*donburi.Entry, base color.RGBA) {
	for _, e := range pickups {
		pickup := components.Pickup.Get(e)
		if pickup.Alpha <= 0 {
			continue
		}
		c := base
		c.A = uint8(float64(base.A) * pickup.Alpha)
		// Premultiplied alpha
		c.R = uint8(float64(c.R) * pickup.Alpha)
		c.G = uint8(float64(c.G) * pickup.Alpha)
		c.B = uint8(float64(c.B) * pickup.Alpha)
		fillRect(screen, v, components.Object.Get(e).Bounds(), c)
	}
}

func drawHUD(screen *ebiten.Image, s *session.Session) {
	face := fonts.HUD.Get()
	text.Draw(screen, fmt.Sprintf("SCORE %d", s.Score()), face, hudMargin, hudMargin+13, hudColor)

	lives := fmt.Sprintf("LIVES %d", max(s.Lives(), 0))
	text.Draw(screen, lives, face, screen.Bounds().Dx()-hudMargin-7*len(lives), hudMargin+13, hudColor)

	if player := s.Player(); player != nil && player.Valid() {
		if p := components.Player.Get(player); p.FeatherActive {
			text.Draw(screen, fmt.Sprintf("FEATHER %.1f", p.FeatherTime), face, hudMargin, hudMargin+30, featherColor)
		}
	}

	if s.IsGameOver() {
		title := "GAME OVER"
		titleFace := fonts.Title.Get()
		b := text.BoundString(titleFace, title)
		x := (screen.Bounds().Dx() - b.Dx()) / 2
		y := screen.Bounds().Dy() / 2
		text.Draw(screen, title, titleFace, x, y, hudColor)
	}
}

func drawDebug(screen *ebiten.Image, v viewport, s *session.Session) {
	face := fonts.HUD.Get()
	camera := s.Camera()
	line := hudMargin + 50

	if player := s.Player(); player != nil && player.Valid() {
		p := components.Player.Get(player)
		obj := components.Object.Get(player)
		body := components.Body.Get(player)
		text.Draw(screen, fmt.Sprintf("%s pos %.2f,%.2f vel %.2f,%.2f", p.State, obj.X, obj.Y, body.Velocity.X, body.Velocity.Y),
			face, hudMargin, line, hudColor)
		line += 16

		solids, _ := obj.Nearby(tags.ResolvSolid)
		coins, _ := obj.Nearby(tags.ResolvCoin)
		feathers, _ := obj.Nearby(tags.ResolvFeather)
		text.Draw(screen, fmt.Sprintf("near %d solid %d coin %d feather", len(solids), len(coins), len(feathers)),
			face, hudMargin, line, hudColor)
		line += 16
	}
	text.Draw(screen, fmt.Sprintf("camera %.2f,%.2f zoom %.2f follow %t", camera.Position.X, camera.Position.Y, camera.Zoom, s.FollowingPlayer()),
		face, hudMargin, line, hudColor)

	// Level bounds outline
	if level := s.Level(); level != nil {
		x, y, w, h := v.toScreen(level.Bounds)
		c := color.RGBA{0, 255, 255, 255}
		vector.FillRect(screen, x, y, w, 1, c, false)
		vector.FillRect(screen, x, y+h-1, w, 1, c, false)
		vector.FillRect(screen, x, y, 1, h, c, false)
		vector.FillRect(screen, x+w-1, y, 1, h, c, false)
	}
}
