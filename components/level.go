package components

import (
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData keeps the level's entries in placement order. Resolution walks
// these slices so the outcome never depends on ECS query order.
type LevelData struct {
	Description *leveldata.Description
	Player      *donburi.Entry
	Platforms   []*donburi.Entry
	Coins       []*donburi.Entry
	PowerUps    []*donburi.Entry
	Space       *donburi.Entry
	Bounds      gamemath.Rect
}

var Level = donburi.NewComponentType[LevelData]()
