package components

import "github.com/yohamta/donburi"

type SessionData struct {
	Lives         int
	Score         int
	GameOverTimer float64
	Elapsed       float64
	Deaths        int
	Reloads       int
}

// IsGameOver is derived from lives so it cannot drift out of sync.
func (s *SessionData) IsGameOver() bool {
	return s.Lives < 0
}

var Session = donburi.NewComponentType[SessionData]()
