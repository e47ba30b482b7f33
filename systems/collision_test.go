package systems

import (
	"testing"

	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/automoto/canyon/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestFallingPlayerLandsOnSurface(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg, leveldata.Placement{Kind: leveldata.KindPlatform, X: 0, Y: 0, Length: 2})
	place(level.Platforms[0], -1, -components.Object.Get(level.Platforms[0]).H)

	place(level.Player, 0, 0)
	body := components.Body.Get(level.Player)
	body.Velocity.Y = -5

	ResolveCollisions(w, cfg)

	player := components.Player.Get(level.Player)
	assert.Equal(t, components.StateGrounded, player.State)
	assert.Equal(t, 0.0, components.Object.Get(level.Player).Y)
	assert.Zero(t, body.Velocity.Y)
}

func TestLandingWithinTolerance(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg, leveldata.Placement{Kind: leveldata.KindPlatform, X: 0, Y: 0, Length: 3})
	plat := components.Object.Get(level.Platforms[0]).Bounds()

	place(level.Player, 1, plat.Top()-0.2)
	components.Body.Get(level.Player).Velocity.Y = -3

	ResolveCollisions(w, cfg)

	assert.Equal(t, components.StateGrounded, components.Player.Get(level.Player).State)
	assert.Equal(t, plat.Top(), components.Object.Get(level.Player).Y)
}

func TestSideHitPushesOutRight(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg, leveldata.Placement{Kind: leveldata.KindPlatform, X: 0, Y: 0, Length: 1})
	plat := components.Object.Get(level.Platforms[0]).Bounds()
	require.Equal(t, 0.0, plat.X)
	require.Equal(t, 1.0, plat.W)

	// Center right of the platform center, feet well below the top
	place(level.Player, 0.8, plat.Y)

	ResolveCollisions(w, cfg)

	obj := components.Object.Get(level.Player)
	assert.Equal(t, plat.X+plat.W, obj.X)
	assert.Equal(t, plat.Y, obj.Y)
	assert.Equal(t, components.StateFalling, components.Player.Get(level.Player).State)
}

func TestSideHitPushesOutLeft(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg, leveldata.Placement{Kind: leveldata.KindPlatform, X: 4, Y: 0, Length: 2})
	plat := components.Object.Get(level.Platforms[0]).Bounds()

	place(level.Player, plat.X-0.5, plat.Y)
	components.Body.Get(level.Player).Velocity.X = 3

	ResolveCollisions(w, cfg)

	obj := components.Object.Get(level.Player)
	assert.Equal(t, plat.X-obj.W, obj.X)
	assert.Zero(t, components.Body.Get(level.Player).Velocity.X)
}

func TestTouchingSideDoesNotCollide(t *testing.T) {
	cfg := testConfig()
	_, level := newLevel(t, cfg, leveldata.Placement{Kind: leveldata.KindPlatform, X: 0, Y: 0, Length: 1})
	plat := components.Object.Get(level.Platforms[0]).Bounds()

	place(level.Player, plat.Right(), plat.Y)

	assert.Equal(t, ContactNone, ResolvePlatform(level.Player, level.Platforms[0], components.Object.Get(level.Player).Bounds(), cfg.Physics.EdgeTolerance))
}

func TestRisingPlayerSnapsWithoutGrounding(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg, leveldata.Placement{Kind: leveldata.KindPlatform, X: 0, Y: 0, Length: 3})
	plat := components.Object.Get(level.Platforms[0]).Bounds()

	player := components.Player.Get(level.Player)
	player.State = components.StateJumpRising
	components.Body.Get(level.Player).Velocity.Y = 4
	place(level.Player, 1, plat.Top()-0.1)

	ResolveCollisions(w, cfg)

	assert.Equal(t, plat.Top(), components.Object.Get(level.Player).Y)
	assert.Equal(t, components.StateJumpRising, player.State)
}

func TestRepeatedResolutionAtRestIsStable(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg,
		leveldata.Placement{Kind: leveldata.KindPlatform, X: 0, Y: 0, Length: 2},
		leveldata.Placement{Kind: leveldata.KindPlatform, X: 2, Y: 0, Length: 2},
	)
	plat := components.Object.Get(level.Platforms[0]).Bounds()
	place(level.Player, 1.5, plat.Top()-0.1)
	components.Body.Get(level.Player).Velocity.Y = -1

	ResolveCollisions(w, cfg)
	obj := components.Object.Get(level.Player)
	want := obj.Bounds()
	wantState := components.Player.Get(level.Player).State
	require.Equal(t, components.StateGrounded, wantState)

	for i := 0; i < 10; i++ {
		ResolveCollisions(w, cfg)
		assert.Equal(t, want, obj.Bounds())
		assert.Equal(t, wantState, components.Player.Get(level.Player).State)
	}
}

func TestSideHitsBetweenCloseWallsSettle(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg,
		leveldata.Placement{Kind: leveldata.KindPlatform, X: 0, Y: 0, Length: 1},
		leveldata.Placement{Kind: leveldata.KindPlatform, X: 1.5, Y: 0, Length: 1},
	)
	left := components.Object.Get(level.Platforms[0]).Bounds()
	right := components.Object.Get(level.Platforms[1]).Bounds()
	obj := components.Object.Get(level.Player)
	require.Less(t, right.X-left.Right(), obj.W)

	// Feet well below both tops, wedged at the gap
	place(level.Player, left.Right(), left.Y)

	var xs []float64
	for i := 0; i < 6; i++ {
		ResolveCollisions(w, cfg)
		xs = append(xs, obj.X)
	}

	for i := 1; i < len(xs); i++ {
		assert.Equal(t, xs[0], xs[i], "pass %d moved the player: %v", i, xs)
	}
	assert.Equal(t, right.X-obj.W, xs[0])
}

func TestBroadphaseSkipsFarPlatforms(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg,
		leveldata.Placement{Kind: leveldata.KindPlatform, X: 0, Y: 0, Length: 2},
		leveldata.Placement{Kind: leveldata.KindPlatform, X: 12, Y: 0, Length: 2},
	)
	near := components.Object.Get(level.Platforms[0]).Bounds()
	place(level.Player, 0.5, near.Top()-0.1)
	components.Body.Get(level.Player).Velocity.Y = -1

	solids, ok := components.Object.Get(level.Player).Nearby(tags.ResolvSolid)
	require.True(t, ok)
	assert.True(t, solids[level.Platforms[0].Entity()])
	assert.False(t, solids[level.Platforms[1].Entity()])

	ResolveCollisions(w, cfg)

	player := components.Player.Get(level.Player)
	assert.Equal(t, components.StateGrounded, player.State)
	assert.Equal(t, level.Platforms[0].Entity(), player.Support.Entity())
}

func TestBroadphaseFollowsFloatingPlatform(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg, leveldata.Placement{Kind: leveldata.KindPlatform, X: 4, Y: 0, Length: 2})
	plat := components.Object.Get(level.Platforms[0])

	// Moved out of reach, then back under the player
	place(level.Platforms[0], 4, plat.Y+6)
	place(level.Player, 4.5, plat.Y-3)
	solids, _ := components.Object.Get(level.Player).Nearby(tags.ResolvSolid)
	assert.Empty(t, solids)

	place(level.Platforms[0], 4, -plat.H)
	place(level.Player, 4.5, -0.1)
	components.Body.Get(level.Player).Velocity.Y = -1

	ResolveCollisions(w, cfg)

	assert.Equal(t, components.StateGrounded, components.Player.Get(level.Player).State)
	assert.Equal(t, 0.0, components.Object.Get(level.Player).Y)
}

func TestGroundedPlayerWalksOffEdge(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg, leveldata.Placement{Kind: leveldata.KindPlatform, X: 0, Y: 0, Length: 1})
	plat := components.Object.Get(level.Platforms[0]).Bounds()

	player := components.Player.Get(level.Player)
	player.State = components.StateGrounded
	place(level.Player, plat.Right()+0.5, plat.Top())

	ResolveCollisions(w, cfg)

	assert.Equal(t, components.StateFalling, player.State)
	assert.Nil(t, player.Support)
}

func TestCollectFirstCoinOnly(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg,
		leveldata.Placement{Kind: leveldata.KindCoin, X: 10, Y: 10},
		leveldata.Placement{Kind: leveldata.KindCoin, X: 10, Y: 10},
	)
	sessionEntry := w.Entry(w.Create(components.Session))
	coin := components.Object.Get(level.Coins[0])
	place(level.Player, coin.X, coin.Y)

	var got []PickupCollectedEvent
	PickupCollected.Subscribe(w, func(_ donburi.World, e PickupCollectedEvent) {
		got = append(got, e)
	})

	ResolveCollisions(w, cfg)
	PickupCollected.ProcessEvents(w)

	assert.True(t, components.Pickup.Get(level.Coins[0]).Collected)
	assert.False(t, components.Pickup.Get(level.Coins[1]).Collected)
	assert.Equal(t, cfg.Pickup.CoinScore, components.Session.Get(sessionEntry).Score)
	require.Len(t, got, 1)
	assert.Equal(t, components.PickupCoin, got[0].Kind)

	// Second pass takes the other coin, never the first one again
	ResolveCollisions(w, cfg)
	assert.True(t, components.Pickup.Get(level.Coins[1]).Collected)
	assert.Equal(t, 2*cfg.Pickup.CoinScore, components.Session.Get(sessionEntry).Score)

	ResolveCollisions(w, cfg)
	assert.Equal(t, 2*cfg.Pickup.CoinScore, components.Session.Get(sessionEntry).Score)
}

func TestFeatherPickupEnablesPowerup(t *testing.T) {
	cfg := testConfig()
	w, level := newLevel(t, cfg, leveldata.Placement{Kind: leveldata.KindFeather, X: 6, Y: 6})
	sessionEntry := w.Entry(w.Create(components.Session))
	feather := components.Object.Get(level.PowerUps[0])
	place(level.Player, feather.X-0.25, feather.Y-0.25)

	ResolveCollisions(w, cfg)

	player := components.Player.Get(level.Player)
	assert.True(t, player.FeatherActive)
	assert.Equal(t, cfg.Player.FeatherDuration, player.FeatherTime)
	assert.Equal(t, cfg.Pickup.FeatherScore, components.Session.Get(sessionEntry).Score)
	assert.True(t, components.Pickup.Get(level.PowerUps[0]).Collected)
}
