package systems

import (
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CollectPickup marks a pickup as taken and starts its fade. It reports
// false when the pickup was already collected.
func CollectPickup(pickupEntry *donburi.Entry, cfg *config.PickupConfig) bool {
	pickup := components.Pickup.Get(pickupEntry)
	if pickup.Collected {
		return false
	}
	pickup.Collected = true
	pickup.Fade = gween.New(1, 0, float32(cfg.FadeDuration), ease.Linear)
	return true
}

// UpdatePickup advances the fade of a collected pickup.
func UpdatePickup(pickupEntry *donburi.Entry, dt float64) {
	pickup := components.Pickup.Get(pickupEntry)
	if pickup.Fade == nil {
		return
	}
	alpha, done := pickup.Fade.Update(float32(dt))
	pickup.Alpha = float64(alpha)
	if done {
		pickup.Alpha = 0
		pickup.Fade = nil
	}
}
