package systems

import (
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
)

// Contact is what a platform resolution reports to the motion state machine.
type Contact int

const (
	ContactNone Contact = iota
	ContactSupported
	ContactLanded
	ContactBlocked
)

func (c Contact) String() string {
	switch c {
	case ContactSupported:
		return "supported"
	case ContactLanded:
		return "landed"
	case ContactBlocked:
		return "blocked"
	}
	return "none"
}

// jumpImpulse is the upward speed applied while a jump is powered.
func jumpImpulse(player *components.PlayerData, cfg *config.PlayerConfig) float64 {
	if player.FeatherActive {
		return cfg.JumpImpulse * cfg.FeatherJumpMultiplier
	}
	return cfg.JumpImpulse
}

// SetJumping feeds the jump intent into the state machine. It is called once
// per frame with the current jump key state.
func SetJumping(player *components.PlayerData, body *components.BodyData, jumping bool, cfg *config.PlayerConfig) {
	player.JumpHeld = jumping

	switch player.State {
	case components.StateGrounded:
		if jumping {
			player.State = components.StateJumpRising
			player.JumpTime = 0
			player.Support = nil
			body.Velocity.Y = jumpImpulse(player, cfg)
		}
	case components.StateJumpRising:
		if !jumping {
			player.State = components.StateJumpFalling
		}
	case components.StateFalling, components.StateJumpFalling:
		if jumping && player.FeatherActive {
			player.State = components.StateJumpRising
			player.JumpTime = cfg.JumpTimeMax - cfg.FlyingTimeOffset
		}
	}
}

// SetFeatherPowerup turns the feather on for its full duration, or off.
func SetFeatherPowerup(player *components.PlayerData, body *components.BodyData, on bool, cfg *config.PlayerConfig) {
	player.FeatherActive = on
	if on {
		player.FeatherTime = cfg.FeatherDuration
	} else {
		player.FeatherTime = 0
	}
	applyFeatherProfile(player, body, cfg)
}

// applyFeatherProfile sets the gravity and fall speed profile for the
// current feather state.
func applyFeatherProfile(player *components.PlayerData, body *components.BodyData, cfg *config.PlayerConfig) {
	if player.FeatherActive {
		body.GravityScale = cfg.FeatherGravityScale
		body.TerminalVelocity.Y = cfg.TerminalVelocityY * cfg.FeatherJumpMultiplier
		return
	}
	body.GravityScale = 1
	body.TerminalVelocity.Y = cfg.TerminalVelocityY
}

// ConsumeContact applies one platform resolution result. Landing only
// grounds a player that is coming down.
func ConsumeContact(player *components.PlayerData, body *components.BodyData, contact Contact) {
	switch contact {
	case ContactSupported:
		player.Supported = true
	case ContactLanded:
		player.Supported = true
		if player.State == components.StateFalling || player.State == components.StateJumpFalling {
			if body.Velocity.Y <= 0 {
				player.State = components.StateGrounded
				body.Velocity.Y = 0
			}
		}
	case ContactBlocked:
		body.Velocity.X = 0
	}
}

// SettleGround drops a grounded player that lost its footing this frame.
func SettleGround(player *components.PlayerData, body *components.BodyData) {
	if player.State == components.StateGrounded && !player.Supported && body.Velocity.Y <= 0 {
		player.State = components.StateFalling
		player.Support = nil
	}
}

// updateFeather counts the power-up down and restores normal physics when
// it runs out.
func updateFeather(player *components.PlayerData, body *components.BodyData, dt float64, cfg *config.PlayerConfig) {
	if !player.FeatherActive {
		return
	}
	player.FeatherTime -= dt
	if player.FeatherTime <= 0 {
		player.FeatherTime = 0
		player.FeatherActive = false
		applyFeatherProfile(player, body, cfg)
	}
}

// updateMotionY advances jump timing and keeps a powered jump rising.
func updateMotionY(player *components.PlayerData, body *components.BodyData, dt float64, cfg *config.PlayerConfig) {
	switch player.State {
	case components.StateGrounded:
		body.Velocity.Y = 0
	case components.StateJumpRising:
		player.JumpTime += dt
		if player.JumpTime > cfg.JumpTimeMax {
			player.State = components.StateJumpFalling
			return
		}
		body.Velocity.Y = jumpImpulse(player, cfg)
	case components.StateJumpFalling:
		player.JumpTime += dt
		// Minimum hop after an early release
		if player.JumpTime > 0 && player.JumpTime <= cfg.JumpTimeMin {
			body.Velocity.Y = jumpImpulse(player, cfg)
		}
	}
}
