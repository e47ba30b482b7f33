package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports every out-of-range value in the bundle. A session refuses
// to start with an invalid bundle.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	positive := func(name string, v float64) {
		check(v > 0 && !math.IsInf(v, 0), "%s must be positive, got %v", name, v)
	}
	nonNegative := func(name string, v float64) {
		check(v >= 0 && !math.IsInf(v, 0), "%s must not be negative, got %v", name, v)
	}

	check(c.Physics.Gravity <= 0 && !math.IsInf(c.Physics.Gravity, 0), "physics.gravity must point down (<= 0), got %v", c.Physics.Gravity)
	nonNegative("physics.edge_tolerance", c.Physics.EdgeTolerance)
	check(!math.IsNaN(c.Physics.WaterLevel), "physics.water_level must be a number")
	positive("physics.space_scale", c.Physics.SpaceScale)
	check(c.Physics.SpaceCellSize > 0, "physics.space_cell_size must be positive, got %d", c.Physics.SpaceCellSize)
	nonNegative("physics.space_margin", c.Physics.SpaceMargin)

	p := c.Player
	positive("player.terminal_velocity_x", p.TerminalVelocityX)
	positive("player.terminal_velocity_y", p.TerminalVelocityY)
	nonNegative("player.friction_x", p.FrictionX)
	positive("player.jump_impulse", p.JumpImpulse)
	positive("player.jump_time_max", p.JumpTimeMax)
	nonNegative("player.jump_time_min", p.JumpTimeMin)
	check(p.JumpTimeMin <= p.JumpTimeMax, "player.jump_time_min (%v) exceeds jump_time_max (%v)", p.JumpTimeMin, p.JumpTimeMax)
	nonNegative("player.flying_time_offset", p.FlyingTimeOffset)
	check(p.FlyingTimeOffset <= p.JumpTimeMax, "player.flying_time_offset (%v) exceeds jump_time_max (%v)", p.FlyingTimeOffset, p.JumpTimeMax)
	positive("player.feather_duration", p.FeatherDuration)
	positive("player.feather_jump_multiplier", p.FeatherJumpMultiplier)
	positive("player.feather_gravity_scale", p.FeatherGravityScale)
	positive("player.width", p.Width)
	positive("player.height", p.Height)

	pl := c.Platform
	positive("platform.segment_width", pl.SegmentWidth)
	positive("platform.height", pl.Height)
	nonNegative("platform.height_step", pl.HeightStep)
	positive("platform.float_cycle_time", pl.FloatCycleTime)
	nonNegative("platform.float_amplitude", pl.FloatAmplitude)
	nonNegative("platform.float_lerp_speed", pl.FloatLerpSpeed)
	nonNegative("platform.float_initial_span", pl.FloatInitialSpan)

	positive("pickup.size", c.Pickup.Size)
	check(c.Pickup.CoinScore >= 0, "pickup.coin_score must not be negative, got %d", c.Pickup.CoinScore)
	check(c.Pickup.FeatherScore >= 0, "pickup.feather_score must not be negative, got %d", c.Pickup.FeatherScore)
	nonNegative("pickup.fade_duration", c.Pickup.FadeDuration)

	check(c.Session.StartingLives >= 0, "session.starting_lives must not be negative, got %d", c.Session.StartingLives)
	nonNegative("session.game_over_delay", c.Session.GameOverDelay)

	cam := c.Camera
	nonNegative("camera.follow_speed", cam.FollowSpeed)
	nonNegative("camera.snap_distance", cam.SnapDistance)
	positive("camera.min_zoom", cam.MinZoom)
	check(cam.MaxZoom >= cam.MinZoom, "camera.max_zoom (%v) is below min_zoom (%v)", cam.MaxZoom, cam.MinZoom)
	check(cam.DefaultZoom >= cam.MinZoom && cam.DefaultZoom <= cam.MaxZoom,
		"camera.default_zoom (%v) outside [%v, %v]", cam.DefaultZoom, cam.MinZoom, cam.MaxZoom)
	positive("camera.viewport_width", cam.ViewportWidth)
	positive("camera.viewport_height", cam.ViewportHeight)
	nonNegative("camera.free_move_speed", cam.FreeMoveSpeed)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
