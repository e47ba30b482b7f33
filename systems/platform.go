package systems

import (
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePlatform runs the float cycle. Each time the cycle timer runs out
// the platform flips direction and eases toward the opposite side of its
// center.
func UpdatePlatform(platformEntry *donburi.Entry, dt float64, cfg *config.PlatformConfig) {
	platform := components.Platform.Get(platformEntry)
	obj := components.Object.Get(platformEntry)

	platform.FloatTimer -= dt
	if platform.FloatTimer < 0 {
		platform.FloatTimer = cfg.FloatCycleTime
		platform.FloatingDown = !platform.FloatingDown
		if platform.FloatingDown {
			platform.FloatTargetY = platform.FloatCenterY - cfg.FloatAmplitude
		} else {
			platform.FloatTargetY = platform.FloatCenterY + cfg.FloatAmplitude
		}
	}

	obj.Y = gamemath.Lerp(obj.Y, platform.FloatTargetY, dt*cfg.FloatLerpSpeed)
	obj.Sync()
}
