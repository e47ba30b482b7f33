package session

import (
	"github.com/automoto/canyon/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type LifeLostEvent struct {
	LivesLeft int
	X, Y      float64
}

type GameOverEvent struct {
	Score int
	Delay float64
}

type SessionResetEvent struct {
	Lives int
}

var (
	LifeLost     = events.NewEventType[LifeLostEvent]()
	GameOver     = events.NewEventType[GameOverEvent]()
	SessionReset = events.NewEventType[SessionResetEvent]()
)

// Listeners are notified after the tick that produced the event. They are
// re-subscribed every time the session builds a fresh world.
type Listeners struct {
	PickupCollected func(systems.PickupCollectedEvent)
	LifeLost        func(LifeLostEvent)
	GameOver        func(GameOverEvent)
	SessionReset    func(SessionResetEvent)
}

func (l *Listeners) subscribe(w donburi.World) {
	if l.PickupCollected != nil {
		fn := l.PickupCollected
		systems.PickupCollected.Subscribe(w, func(_ donburi.World, e systems.PickupCollectedEvent) { fn(e) })
	}
	if l.LifeLost != nil {
		fn := l.LifeLost
		LifeLost.Subscribe(w, func(_ donburi.World, e LifeLostEvent) { fn(e) })
	}
	if l.GameOver != nil {
		fn := l.GameOver
		GameOver.Subscribe(w, func(_ donburi.World, e GameOverEvent) { fn(e) })
	}
	if l.SessionReset != nil {
		fn := l.SessionReset
		SessionReset.Subscribe(w, func(_ donburi.World, e SessionResetEvent) { fn(e) })
	}
}
