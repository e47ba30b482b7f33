package systems

import (
	"testing"

	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/automoto/canyon/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// testConfig returns the defaults with platform float disabled so positions
// only change when a test moves them.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Platform.FloatAmplitude = 0
	cfg.Platform.FloatInitialSpan = 0
	return &cfg
}

// newLevel builds a world with a single spawn and the given extra placements.
func newLevel(t *testing.T, cfg *config.Config, placements ...leveldata.Placement) (donburi.World, *components.LevelData) {
	t.Helper()
	desc := &leveldata.Description{
		Name:       "test",
		Width:      16,
		Height:     8,
		Placements: append([]leveldata.Placement{{Kind: leveldata.KindSpawn, X: 0, Y: 8}}, placements...),
	}
	w := donburi.NewWorld()
	levelEntry, err := factory.CreateLevel(w, desc, cfg)
	require.NoError(t, err)
	return w, components.Level.Get(levelEntry)
}

// place moves an entity's box to x, y and updates its broadphase cells.
func place(e *donburi.Entry, x, y float64) {
	obj := components.Object.Get(e)
	obj.X = x
	obj.Y = y
	obj.Sync()
}
