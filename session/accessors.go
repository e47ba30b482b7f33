package session

import (
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/yohamta/donburi"
)

func (s *Session) Score() int           { return s.state().Score }
func (s *Session) Lives() int           { return s.state().Lives }
func (s *Session) IsGameOver() bool     { return s.state().IsGameOver() }
func (s *Session) Elapsed() float64     { return s.state().Elapsed }
func (s *Session) Deaths() int          { return s.state().Deaths }
func (s *Session) Reloads() int         { return s.state().Reloads }
func (s *Session) World() donburi.World { return s.world }

// Config returns a copy of the session's configuration.
func (s *Session) Config() config.Config { return s.cfg }

// GameOverTimeLeft is the remaining delay before the automatic reset.
func (s *Session) GameOverTimeLeft() float64 {
	if !s.IsGameOver() {
		return 0
	}
	return s.state().GameOverTimer
}

// Player returns the current player entry. It changes on every reload.
func (s *Session) Player() *donburi.Entry {
	if level := s.level(); level != nil {
		return level.Player
	}
	return nil
}

// Level returns the current level entries in placement order.
func (s *Session) Level() *components.LevelData {
	return s.level()
}
