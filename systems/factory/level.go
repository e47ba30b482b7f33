package factory

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/automoto/canyon/archetypes"
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ErrInvalidLevel is returned when a description cannot produce a playable
// level.
var ErrInvalidLevel = errors.New("invalid level")

// ValidateLevel checks a description before any entity is spawned.
func ValidateLevel(desc *leveldata.Description) error {
	if desc == nil {
		return fmt.Errorf("%w: no description", ErrInvalidLevel)
	}
	if desc.Width <= 0 || desc.Height <= 0 {
		return fmt.Errorf("%w: %s: size %dx%d", ErrInvalidLevel, desc.Name, desc.Width, desc.Height)
	}
	if n := desc.Count(leveldata.KindSpawn); n != 1 {
		return fmt.Errorf("%w: %s: want exactly one spawn point, got %d", ErrInvalidLevel, desc.Name, n)
	}
	for i, p := range desc.Placements {
		switch p.Kind {
		case leveldata.KindPlatform:
			if p.Length < 1 {
				return fmt.Errorf("%w: %s: placement %d: platform length %d", ErrInvalidLevel, desc.Name, i, p.Length)
			}
		case leveldata.KindSpawn, leveldata.KindCoin, leveldata.KindFeather:
		default:
			return fmt.Errorf("%w: %s: placement %d: %w", ErrInvalidLevel, desc.Name, i, leveldata.ErrUnknownKind)
		}
	}
	return nil
}

// CreateLevel validates desc and spawns its entities in placement order.
// The seeded source makes platform float phases repeat across reloads.
func CreateLevel(w donburi.World, desc *leveldata.Description, cfg *config.Config) (*donburi.Entry, error) {
	if err := ValidateLevel(desc); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Platform.FloatRandomSeed))
	levelEntry := archetypes.Level.Spawn(w)
	level := &components.LevelData{Description: desc}

	for _, p := range desc.Placements {
		var e *donburi.Entry
		switch p.Kind {
		case leveldata.KindPlatform:
			e = CreatePlatform(w, p, rng.Float64()*cfg.Platform.FloatInitialSpan, &cfg.Platform)
			level.Platforms = append(level.Platforms, e)
		case leveldata.KindSpawn:
			e = CreatePlayer(w, p, &cfg.Player)
			level.Player = e
		case leveldata.KindCoin:
			e = CreatePickup(w, p, components.PickupCoin, &cfg.Pickup)
			level.Coins = append(level.Coins, e)
		case leveldata.KindFeather:
			e = CreatePickup(w, p, components.PickupFeather, &cfg.Pickup)
			level.PowerUps = append(level.PowerUps, e)
		}
		level.Bounds = level.Bounds.Union(components.Object.Get(e).Bounds())
	}

	components.Level.Set(levelEntry, level)
	level = components.Level.Get(levelEntry)
	if err := validateGeometry(level); err != nil {
		DestroyLevel(w)
		return nil, err
	}

	spaceEntry := CreateSpace(w, level.Bounds, cfg)
	level = components.Level.Get(levelEntry)
	level.Space = spaceEntry
	space := components.Space.Get(spaceEntry)
	for _, e := range levelEntries(level) {
		space.Add(components.Object.Get(e), e)
	}

	log.Printf("level %s: %d platforms, %d coins, %d power-ups",
		desc.Name, len(level.Platforms), len(level.Coins), len(level.PowerUps))
	return levelEntry, nil
}

// validateGeometry rejects degenerate bounding boxes so the resolver never
// sees them.
func validateGeometry(level *components.LevelData) error {
	check := func(e *donburi.Entry) error {
		b := components.Object.Get(e).Bounds()
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("%w: entity %v has size %gx%g", ErrInvalidLevel, e.Entity(), b.W, b.H)
		}
		return nil
	}
	for _, e := range levelEntries(level) {
		if err := check(e); err != nil {
			return err
		}
	}
	return nil
}

// levelEntries lists the player, then platforms, coins and power-ups in level
// order.
func levelEntries(level *components.LevelData) []*donburi.Entry {
	all := make([]*donburi.Entry, 0, 1+len(level.Platforms)+len(level.Coins)+len(level.PowerUps))
	if level.Player != nil {
		all = append(all, level.Player)
	}
	all = append(all, level.Platforms...)
	all = append(all, level.Coins...)
	return append(all, level.PowerUps...)
}

// DestroyLevel removes every level entity from the world.
func DestroyLevel(w donburi.World) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	remove := func(e *donburi.Entry) {
		if e != nil && e.Valid() {
			w.Remove(e.Entity())
		}
	}

	level := components.Level.Get(levelEntry)
	for _, e := range levelEntries(level) {
		remove(e)
	}
	remove(level.Space)
	remove(levelEntry)
}

// LevelBounds returns the union of every entity box, or a zero rect when no
// level is loaded.
func LevelBounds(w donburi.World) gamemath.Rect {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return gamemath.Rect{}
	}
	return components.Level.Get(levelEntry).Bounds
}
