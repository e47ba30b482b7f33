package systems

import (
	"math"

	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/automoto/canyon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PickupCollectedEvent is published once per collected coin or power-up.
type PickupCollectedEvent struct {
	Pickup *donburi.Entry
	Kind   components.PickupKind
	Score  int
	X, Y   float64
}

var PickupCollected = events.NewEventType[PickupCollectedEvent]()

// touchesPlatform is a strict overlap, except that feet resting exactly on
// the top surface also count.
func touchesPlatform(snapshot, plat gamemath.Rect) bool {
	return snapshot.OverlapsX(plat) && snapshot.Y <= plat.Top() && snapshot.Top() > plat.Y
}

// ResolvePlatform applies the platform rule for one player/platform pair.
// The contact test uses snapshot, the player rectangle taken at the start of
// the pass; corrections go to the live object.
func ResolvePlatform(playerEntry, platformEntry *donburi.Entry, snapshot gamemath.Rect, tolerance float64) Contact {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	plat := components.Object.Get(platformEntry).Bounds()

	heightDifference := math.Abs(snapshot.Y - plat.Top())

	if !touchesPlatform(snapshot, plat) {
		if player.State == components.StateGrounded && snapshot.OverlapsX(plat) && heightDifference <= tolerance {
			player.Support = platformEntry
			return ContactSupported
		}
		return ContactNone
	}

	if heightDifference > tolerance {
		if snapshot.CenterX() > plat.CenterX() {
			obj.X = plat.Right()
		} else {
			obj.X = plat.X - obj.W
		}
		obj.Sync()
		return ContactBlocked
	}

	player.Support = platformEntry
	if player.State == components.StateGrounded {
		return ContactSupported
	}
	// Rising players snap too
	obj.Y = plat.Top()
	obj.Sync()
	return ContactLanded
}

// ResolveCollisions is the second sweep of a frame: platforms in level
// order, then the first touched coin, then the first touched power-up.
func ResolveCollisions(w donburi.World, cfg *config.Config) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Player == nil || !level.Player.Valid() {
		return
	}

	playerEntry := level.Player
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	obj.Sync()
	snapshot := obj.Bounds()

	solids := nearby(obj, tags.ResolvSolid)
	for _, platformEntry := range level.Platforms {
		if !solids.has(platformEntry) {
			continue
		}
		contact := ResolvePlatform(playerEntry, platformEntry, snapshot, cfg.Physics.EdgeTolerance)
		ConsumeContact(player, body, contact)
		if contact == ContactBlocked {
			// Later platforms test the pushed box, so repeated passes settle
			snapshot.X = obj.X
			solids = nearby(obj, tags.ResolvSolid)
		}
	}
	SettleGround(player, body)

	pickups := nearby(obj, tags.ResolvPickup)
	if coin := firstTouched(level.Coins, pickups, snapshot); coin != nil {
		collect(w, playerEntry, coin, cfg)
	}
	if powerUp := firstTouched(level.PowerUps, pickups, snapshot); powerUp != nil {
		collect(w, playerEntry, powerUp, cfg)
	}
}

// candidates is a broadphase result. Without a broadphase every entry is a
// candidate.
type candidates struct {
	near map[donburi.Entity]bool
	all  bool
}

func nearby(obj *components.ObjectData, tag string) candidates {
	near, ok := obj.Nearby(tag)
	return candidates{near: near, all: !ok}
}

func (c candidates) has(e *donburi.Entry) bool {
	return c.all || c.near[e.Entity()]
}

func firstTouched(pickups []*donburi.Entry, near candidates, snapshot gamemath.Rect) *donburi.Entry {
	for _, e := range pickups {
		if !near.has(e) || components.Pickup.Get(e).Collected {
			continue
		}
		if snapshot.Overlaps(components.Object.Get(e).Bounds()) {
			return e
		}
	}
	return nil
}

func collect(w donburi.World, playerEntry, pickupEntry *donburi.Entry, cfg *config.Config) {
	if !CollectPickup(pickupEntry, &cfg.Pickup) {
		return
	}
	pickup := components.Pickup.Get(pickupEntry)

	if sessionEntry, ok := components.Session.First(w); ok {
		components.Session.Get(sessionEntry).Score += pickup.Score
	}
	if pickup.Kind == components.PickupFeather {
		SetFeatherPowerup(components.Player.Get(playerEntry), components.Body.Get(playerEntry), true, &cfg.Player)
	}

	obj := components.Object.Get(pickupEntry)
	PickupCollected.Publish(w, PickupCollectedEvent{
		Pickup: pickupEntry,
		Kind:   pickup.Kind,
		Score:  pickup.Score,
		X:      obj.X,
		Y:      obj.Y,
	})
}
