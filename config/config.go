package config

// PhysicsConfig contains global physics values shared by every body
type PhysicsConfig struct {
	Gravity float64 `toml:"gravity"` // world units/s^2, negative points down

	// Collision
	EdgeTolerance float64 `toml:"edge_tolerance"` // max feet-to-top distance treated as a landing
	WaterLevel    float64 `toml:"water_level"`    // player Y below this drowns

	// Broadphase
	SpaceScale    float64 `toml:"space_scale"`     // grid units per world unit
	SpaceCellSize int     `toml:"space_cell_size"` // grid units per cell
	SpaceMargin   float64 `toml:"space_margin"`    // world units of grid around the level bounds
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	TerminalVelocityX float64 `toml:"terminal_velocity_x"`
	TerminalVelocityY float64 `toml:"terminal_velocity_y"`
	FrictionX         float64 `toml:"friction_x"`
	AutoRun           bool    `toml:"auto_run"` // run right without input (touch devices)

	// Jumping
	JumpImpulse      float64 `toml:"jump_impulse"`
	JumpTimeMax      float64 `toml:"jump_time_max"`      // seconds the impulse keeps applying while held
	JumpTimeMin      float64 `toml:"jump_time_min"`      // minimum hop after an early release
	FlyingTimeOffset float64 `toml:"flying_time_offset"` // rise time granted by a feather flap

	// Feather power-up
	FeatherDuration       float64 `toml:"feather_duration"`
	FeatherJumpMultiplier float64 `toml:"feather_jump_multiplier"`
	FeatherGravityScale   float64 `toml:"feather_gravity_scale"`

	// Dimensions
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	OffsetY float64 `toml:"offset_y"` // grid-to-world vertical offset for the spawn point
}

// PlatformConfig contains rock platform values
type PlatformConfig struct {
	SegmentWidth     float64 `toml:"segment_width"`
	Height           float64 `toml:"height"`
	HeightStep       float64 `toml:"height_step"` // fraction of Height per grid row
	OffsetY          float64 `toml:"offset_y"`
	FloatCycleTime   float64 `toml:"float_cycle_time"`
	FloatAmplitude   float64 `toml:"float_amplitude"`
	FloatLerpSpeed   float64 `toml:"float_lerp_speed"`
	FloatRandomSeed  int64   `toml:"float_random_seed"`
	FloatInitialSpan float64 `toml:"float_initial_span"` // initial timer drawn from [0, span)
}

// PickupConfig contains coin and feather values
type PickupConfig struct {
	Size         float64 `toml:"size"`
	OffsetY      float64 `toml:"offset_y"`
	CoinScore    int     `toml:"coin_score"`
	FeatherScore int     `toml:"feather_score"`
	FadeDuration float64 `toml:"fade_duration"`
}

// SessionConfig contains lives and game over timing
type SessionConfig struct {
	StartingLives int     `toml:"starting_lives"`
	GameOverDelay float64 `toml:"game_over_delay"` // seconds before the automatic restart
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSpeed  float64 `toml:"follow_speed"`  // fraction of the gap closed per second
	SnapDistance float64 `toml:"snap_distance"` // gap below which the camera snaps onto the target
	MinZoom      float64 `toml:"min_zoom"`      // most zoomed in
	MaxZoom      float64 `toml:"max_zoom"`      // most zoomed out
	DefaultZoom  float64 `toml:"default_zoom"`

	// World units visible at zoom 1
	ViewportWidth  float64 `toml:"viewport_width"`
	ViewportHeight float64 `toml:"viewport_height"`
	ClampToLevel   bool    `toml:"clamp_to_level"`
	FreeMoveSpeed  float64 `toml:"free_move_speed"` // world units/s for free-roam panning
}

// WindowConfig contains frame driver values
type WindowConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Config is the bundle handed to a session at construction time
type Config struct {
	Physics  PhysicsConfig  `toml:"physics"`
	Player   PlayerConfig   `toml:"player"`
	Platform PlatformConfig `toml:"platform"`
	Pickup   PickupConfig   `toml:"pickup"`
	Session  SessionConfig  `toml:"session"`
	Camera   CameraConfig   `toml:"camera"`
	Window   WindowConfig   `toml:"window"`
}

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// C is the process default configuration used by the binary.
var C *Config

func init() {
	c := Default()
	C = &c
}

// Default returns the stock tuning values.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:       -25.0,
			EdgeTolerance: 0.25,
			WaterLevel:    -5.0,
			SpaceScale:    16,
			SpaceCellSize: 16,
			SpaceMargin:   4.0,
		},

		Player: PlayerConfig{
			// Movement
			TerminalVelocityX: 3.0,
			TerminalVelocityY: 4.0,
			FrictionX:         12.0,

			// Jumping
			JumpImpulse:      4.0,
			JumpTimeMax:      0.3,
			JumpTimeMin:      0.1,
			FlyingTimeOffset: 0.018,

			// Feather
			FeatherDuration:       9.0,
			FeatherJumpMultiplier: 1.25,
			FeatherGravityScale:   0.5,

			// Dimensions
			Width:   1.0,
			Height:  1.0,
			OffsetY: -3.0,
		},

		Platform: PlatformConfig{
			SegmentWidth:     1.0,
			Height:           1.5,
			HeightStep:       0.25,
			OffsetY:          -2.5,
			FloatCycleTime:   2.0,
			FloatAmplitude:   0.25,
			FloatLerpSpeed:   1.0,
			FloatRandomSeed:  1,
			FloatInitialSpan: 1.0,
		},

		Pickup: PickupConfig{
			Size:         0.5,
			OffsetY:      -1.5,
			CoinScore:    100,
			FeatherScore: 250,
			FadeDuration: 0.5,
		},

		Session: SessionConfig{
			StartingLives: 3,
			GameOverDelay: 3.0,
		},

		Camera: CameraConfig{
			FollowSpeed:    4.0,
			SnapDistance:   0.001,
			MinZoom:        0.25,
			MaxZoom:        10.0,
			DefaultZoom:    1.0,
			ViewportWidth:  5.0,
			ViewportHeight: 5.0,
			ClampToLevel:   false,
			FreeMoveSpeed:  5.0,
		},

		Window: WindowConfig{
			Width:  800,
			Height: 480,
		},
	}
}
