package components

import "github.com/yohamta/donburi"

// PlatformData drives the gentle up/down float of a rock platform.
type PlatformData struct {
	Length       int
	FloatTimer   float64
	FloatingDown bool
	FloatCenterY float64
	FloatTargetY float64
}

var Platform = donburi.NewComponentType[PlatformData]()
