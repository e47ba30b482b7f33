package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PickupKind distinguishes coins from power-ups.
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupFeather
)

func (k PickupKind) String() string {
	if k == PickupFeather {
		return "feather"
	}
	return "coin"
}

// PickupData is shared by coins and power-ups. Collected never reverts.
type PickupData struct {
	Kind      PickupKind
	Score     int
	Collected bool
	Fade      *gween.Tween // nil until collected
	Alpha     float64
}

var Pickup = donburi.NewComponentType[PickupData]()
