package systems

import (
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/yohamta/donburi"
)

// UpdateLevel runs the independent per-entity updates for one frame. No
// entity looks at another here except the player reading its support, so
// platforms go first.
func UpdateLevel(w donburi.World, dt float64, cfg *config.Config) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for _, e := range level.Platforms {
		UpdatePlatform(e, dt, &cfg.Platform)
	}
	for _, e := range level.Coins {
		UpdatePickup(e, dt)
	}
	for _, e := range level.PowerUps {
		UpdatePickup(e, dt)
	}
	if level.Player != nil && level.Player.Valid() {
		UpdatePlayer(level.Player, dt, cfg)
	}
}
