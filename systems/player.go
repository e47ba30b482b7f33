package systems

import (
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ApplyPlayerInput turns the frame's intents into horizontal speed and jump
// state. Without a direction the speed is left to friction.
func ApplyPlayerInput(playerEntry *donburi.Entry, input *components.InputData, cfg *config.PlayerConfig) {
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	switch {
	case input.MoveLeft && !input.MoveRight:
		body.Velocity.X = -body.TerminalVelocity.X
		player.Direction = config.DirectionLeft
	case input.MoveRight && !input.MoveLeft:
		body.Velocity.X = body.TerminalVelocity.X
		player.Direction = config.DirectionRight
	case cfg.AutoRun:
		body.Velocity.X = body.TerminalVelocity.X
		player.Direction = config.DirectionRight
	}

	SetJumping(player, body, input.JumpHeld || input.JumpJustPressed, cfg)
}

// UpdatePlayer advances the player body by dt. Grounded players skip gravity
// and ride their supporting platform.
func UpdatePlayer(playerEntry *donburi.Entry, dt float64, cfg *config.Config) {
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	updateFeather(player, body, dt, &cfg.Player)
	updateMotionY(player, body, dt, &cfg.Player)

	body.ApplyFriction(dt)
	if player.State == components.StateGrounded {
		body.Velocity.X = gamemath.ClampSpeed(body.Velocity.X, body.TerminalVelocity.X)
	} else {
		body.ApplyGravity(dt, cfg.Physics.Gravity)
	}
	body.Integrate(obj.Object, dt)

	carryOnSupport(player, obj)
	obj.Sync()
	player.Supported = false
}

func carryOnSupport(player *components.PlayerData, obj *components.ObjectData) {
	if player.State != components.StateGrounded || player.Support == nil || !player.Support.Valid() {
		return
	}
	support := components.Object.Get(player.Support).Bounds()
	if obj.Bounds().OverlapsX(support) {
		obj.Y = support.Top()
	}
}
