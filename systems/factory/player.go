package factory

import (
	"github.com/automoto/canyon/archetypes"
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player at a spawn placement. The player starts
// falling until the first ground contact.
func CreatePlayer(w donburi.World, p leveldata.Placement, cfg *config.PlayerConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	x := p.X
	y := p.Y*cfg.Height + cfg.OffsetY
	obj := resolv.NewObject(x, y, cfg.Width, cfg.Height)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{
		Object: obj,
		Origin: math.Vec2{X: cfg.Width / 2, Y: cfg.Height / 2},
		Scale:  math.Vec2{X: 1, Y: 1},
	})

	components.Player.SetValue(player, components.PlayerData{
		State:     components.StateFalling,
		Direction: config.DirectionRight,
	})
	components.Body.SetValue(player, components.BodyData{
		TerminalVelocity: math.Vec2{X: cfg.TerminalVelocityX, Y: cfg.TerminalVelocityY},
		Friction:         math.Vec2{X: cfg.FrictionX, Y: 0},
		GravityScale:     1,
	})

	return player
}
