package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Coin     = donburi.NewTag().SetName("Coin")
	PowerUp  = donburi.NewTag().SetName("PowerUp")
	Camera   = donburi.NewTag().SetName("Camera")
	Session  = donburi.NewTag().SetName("Session")
)

// Resolv tags for bounding boxes, matched in the broadphase
const (
	ResolvSolid   = "solid"
	ResolvPickup  = "pickup"
	ResolvCoin    = "coin"
	ResolvFeather = "feather"
)
