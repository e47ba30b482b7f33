package archetypes

import (
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Pickup,
		components.Object,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.Pickup,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Session = newArchetype(
		tags.Session,
		components.Session,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
