package factory

import (
	"github.com/automoto/canyon/archetypes"
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/automoto/canyon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePickup spawns a coin or a feather power-up.
func CreatePickup(w donburi.World, p leveldata.Placement, kind components.PickupKind, cfg *config.PickupConfig) *donburi.Entry {
	var pickup *donburi.Entry
	score := cfg.CoinScore
	resolvTag := tags.ResolvCoin
	if kind == components.PickupFeather {
		pickup = archetypes.PowerUp.Spawn(w)
		score = cfg.FeatherScore
		resolvTag = tags.ResolvFeather
	} else {
		pickup = archetypes.Coin.Spawn(w)
	}

	x := p.X
	y := p.Y*cfg.Size + cfg.OffsetY
	obj := resolv.NewObject(x, y, cfg.Size, cfg.Size, tags.ResolvPickup, resolvTag)
	obj.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{
		Object: obj,
		Origin: math.Vec2{X: cfg.Size / 2, Y: cfg.Size / 2},
		Scale:  math.Vec2{X: 1, Y: 1},
	})

	components.Pickup.SetValue(pickup, components.PickupData{
		Kind:  kind,
		Score: score,
		Alpha: 1,
	})

	return pickup
}
