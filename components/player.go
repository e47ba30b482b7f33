package components

import (
	"github.com/yohamta/donburi"
)

// MotionState is the player's vertical movement state.
type MotionState int

const (
	StateFalling MotionState = iota
	StateGrounded
	StateJumpRising
	StateJumpFalling
)

func (s MotionState) String() string {
	switch s {
	case StateGrounded:
		return "GROUNDED"
	case StateFalling:
		return "FALLING"
	case StateJumpRising:
		return "JUMP_RISING"
	case StateJumpFalling:
		return "JUMP_FALLING"
	}
	return "UNKNOWN"
}

// Airborne reports whether a platform top within tolerance counts as a landing.
func (s MotionState) Airborne() bool {
	return s != StateGrounded
}

type PlayerData struct {
	State         MotionState
	JumpHeld      bool
	JumpTime      float64 // seconds since the current jump started
	FeatherActive bool
	FeatherTime   float64 // seconds of feather power remaining
	Direction     float64 // config.DirectionLeft or config.DirectionRight
	Supported     bool    // set when a platform holds the player up this frame

	// Platform the player stands on; carried along while it floats
	Support *donburi.Entry
}

var Player = donburi.NewComponentType[PlayerData]()
