package factory

import (
	"testing"

	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/automoto/canyon/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func sampleLevel() *leveldata.Description {
	return &leveldata.Description{
		Name:   "sample",
		Width:  10,
		Height: 6,
		Placements: []leveldata.Placement{
			{Kind: leveldata.KindPlatform, X: 0, Y: 2, Length: 3},
			{Kind: leveldata.KindSpawn, X: 1, Y: 5},
			{Kind: leveldata.KindCoin, X: 2, Y: 6},
			{Kind: leveldata.KindPlatform, X: 5, Y: 4, Length: 1},
			{Kind: leveldata.KindFeather, X: 5, Y: 8},
			{Kind: leveldata.KindCoin, X: 6, Y: 6},
		},
	}
}

func TestCreateLevel(t *testing.T) {
	cfg := config.Default()
	w := donburi.NewWorld()

	levelEntry, err := CreateLevel(w, sampleLevel(), &cfg)
	require.NoError(t, err)
	level := components.Level.Get(levelEntry)

	require.Len(t, level.Platforms, 2)
	require.Len(t, level.Coins, 2)
	require.Len(t, level.PowerUps, 1)
	require.NotNil(t, level.Player)

	first := components.Object.Get(level.Platforms[0])
	assert.Equal(t, 0.0, first.X)
	assert.InDelta(t, 2*cfg.Platform.Height*cfg.Platform.HeightStep+cfg.Platform.OffsetY, first.Y, 1e-9)
	assert.Equal(t, 3*cfg.Platform.SegmentWidth, first.W)
	assert.Equal(t, 3, components.Platform.Get(level.Platforms[0]).Length)
	assert.True(t, first.HasTags(tags.ResolvSolid))
	assert.Equal(t, first.Y, components.Platform.Get(level.Platforms[0]).FloatCenterY)

	player := components.Object.Get(level.Player)
	assert.Equal(t, 1.0, player.X)
	assert.InDelta(t, 5*cfg.Player.Height+cfg.Player.OffsetY, player.Y, 1e-9)
	assert.Equal(t, components.StateFalling, components.Player.Get(level.Player).State)
	assert.True(t, level.Player.HasComponent(tags.Player))

	feather := components.Pickup.Get(level.PowerUps[0])
	assert.Equal(t, components.PickupFeather, feather.Kind)
	assert.Equal(t, cfg.Pickup.FeatherScore, feather.Score)
	assert.Equal(t, cfg.Pickup.CoinScore, components.Pickup.Get(level.Coins[1]).Score)

	// Level, space and six placements
	assert.Equal(t, 8, w.Len())
	require.NotNil(t, level.Space)
	assert.Greater(t, level.Bounds.W, 0.0)
	assert.Equal(t, level.Bounds, LevelBounds(w))
}

func TestCreateLevelFillsBroadphase(t *testing.T) {
	cfg := config.Default()
	w := donburi.NewWorld()
	levelEntry, err := CreateLevel(w, sampleLevel(), &cfg)
	require.NoError(t, err)
	level := components.Level.Get(levelEntry)

	player := components.Object.Get(level.Player)
	coin := components.Object.Get(level.Coins[0])
	player.X, player.Y = coin.X, coin.Y
	player.Sync()

	coins, ok := player.Nearby(tags.ResolvCoin)
	require.True(t, ok)
	assert.True(t, coins[level.Coins[0].Entity()])
	assert.False(t, coins[level.Coins[1].Entity()])

	pickups, _ := player.Nearby(tags.ResolvPickup)
	assert.False(t, pickups[level.PowerUps[0].Entity()])

	feathers, _ := components.Object.Get(level.PowerUps[0]).Nearby(tags.ResolvFeather)
	assert.Empty(t, feathers)
}

func TestCreateLevelRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *leveldata.Description)
	}{
		{"no spawn", func(d *leveldata.Description) { d.Placements = d.Placements[2:] }},
		{"two spawns", func(d *leveldata.Description) {
			d.Placements = append(d.Placements, leveldata.Placement{Kind: leveldata.KindSpawn})
		}},
		{"zero length platform", func(d *leveldata.Description) { d.Placements[0].Length = 0 }},
		{"unknown kind", func(d *leveldata.Description) { d.Placements[2].Kind = "lava" }},
		{"empty size", func(d *leveldata.Description) { d.Width = 0 }},
	}

	cfg := config.Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := sampleLevel()
			tt.mutate(desc)
			w := donburi.NewWorld()

			_, err := CreateLevel(w, desc, &cfg)
			assert.ErrorIs(t, err, ErrInvalidLevel)
			assert.Zero(t, w.Len())
		})
	}

	_, err := CreateLevel(donburi.NewWorld(), nil, &cfg)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestCreateLevelRejectsDegenerateBoxes(t *testing.T) {
	cfg := config.Default()
	cfg.Pickup.Size = 0
	w := donburi.NewWorld()

	_, err := CreateLevel(w, sampleLevel(), &cfg)

	assert.ErrorIs(t, err, ErrInvalidLevel)
	assert.Zero(t, w.Len())
}

func TestDestroyLevel(t *testing.T) {
	cfg := config.Default()
	w := donburi.NewWorld()
	camera := CreateCamera(w, LevelBounds(w), &cfg.Camera)
	_, err := CreateLevel(w, sampleLevel(), &cfg)
	require.NoError(t, err)

	DestroyLevel(w)

	assert.Equal(t, 1, w.Len())
	assert.True(t, camera.Valid())
	_, ok := components.Level.First(w)
	assert.False(t, ok)
}
