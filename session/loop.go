package session

import (
	"context"
	"log"
	"time"
)

// Loop drives a session at a fixed tick rate without a window. It is used
// for headless runs of the binary.
type Loop struct {
	session  *Session
	tickRate int
}

func NewLoop(session *Session, tickRate int) *Loop {
	if tickRate < 1 {
		tickRate = 1
	}
	return &Loop{
		session:  session,
		tickRate: tickRate,
	}
}

// Run ticks until ctx is done. It returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	dt := 1 / float64(l.tickRate)
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Game loop stopped: score %d, lives %d", l.session.Score(), l.session.Lives())
			return ctx.Err()
		case <-ticker.C:
			l.session.Tick(dt)
		}
	}
}

// Step runs n ticks back to back without waiting on the clock.
func (l *Loop) Step(n int) {
	dt := 1 / float64(l.tickRate)
	for i := 0; i < n; i++ {
		l.session.Tick(dt)
	}
}
