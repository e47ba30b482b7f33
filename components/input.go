package components

import "github.com/yohamta/donburi"

// InputData holds the player intents for the next tick. The frame driver
// fills it; the session applies it.
type InputData struct {
	MoveLeft        bool
	MoveRight       bool
	JumpHeld        bool
	JumpJustPressed bool
}

var Input = donburi.NewComponentType[InputData]()
