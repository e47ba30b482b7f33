// Package session owns one play-through: the world, the level, lives and
// score. Tick is the only entry point that advances the simulation; nothing
// here is safe for concurrent use.
package session

import (
	"fmt"
	"log"

	"github.com/automoto/canyon/archetypes"
	"github.com/automoto/canyon/components"
	"github.com/automoto/canyon/config"
	"github.com/automoto/canyon/shared/leveldata"
	"github.com/automoto/canyon/systems"
	"github.com/automoto/canyon/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// timerEpsilon absorbs float residue from summing frame steps, so a delay
// of n frames ends on frame n.
const timerEpsilon = 1e-9

// Session manages the game state for a single player
type Session struct {
	cfg  config.Config
	desc *leveldata.Description

	world        donburi.World
	sessionEntry *donburi.Entry
	cameraEntry  *donburi.Entry

	listeners Listeners
	freeRoam  bool
}

// New validates the configuration and the level and builds a fresh world.
func New(cfg *config.Config, desc *leveldata.Description, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new session: %w: nil config", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if err := factory.ValidateLevel(desc); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		cfg:  *cfg,
		desc: desc,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.build(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	return s, nil
}

// build replaces the world with a new one holding the session state, the
// camera and the level.
func (s *Session) build() error {
	w := donburi.NewWorld()

	sessionEntry := archetypes.Session.Spawn(w)
	components.Session.SetValue(sessionEntry, components.SessionData{
		Lives: s.cfg.Session.StartingLives,
	})

	levelEntry, err := factory.CreateLevel(w, s.desc, &s.cfg)
	if err != nil {
		return err
	}
	level := components.Level.Get(levelEntry)

	cameraEntry := factory.CreateCamera(w, level.Bounds, &s.cfg.Camera)
	camera := components.Camera.Get(cameraEntry)
	if !s.freeRoam {
		systems.SetCameraTarget(camera, level.Player)
	}

	s.world = w
	s.sessionEntry = sessionEntry
	s.cameraEntry = cameraEntry
	s.listeners.subscribe(w)
	return nil
}

// Tick advances the session by dt seconds.
func (s *Session) Tick(dt float64) {
	state := s.state()
	state.Elapsed += dt

	if state.IsGameOver() {
		state.GameOverTimer -= dt
		if state.GameOverTimer <= timerEpsilon {
			s.reset()
			state = s.state()
		}
	} else if s.FollowingPlayer() {
		input := components.Input.Get(s.sessionEntry)
		systems.ApplyPlayerInput(s.Player(), input, &s.cfg.Player)
		input.JumpJustPressed = false
	}

	systems.UpdateLevel(s.world, dt, &s.cfg)
	systems.ResolveCollisions(s.world, &s.cfg)
	systems.UpdateCamera(s.world, dt, &s.cfg.Camera)
	events.ProcessAllEvents(s.world)

	if !state.IsGameOver() && s.playerInWater() {
		s.loseLife()
	}
	events.ProcessAllEvents(s.world)
}

func (s *Session) playerInWater() bool {
	player := s.Player()
	if player == nil || !player.Valid() {
		return false
	}
	return components.Object.Get(player).Y < s.cfg.Physics.WaterLevel
}

func (s *Session) loseLife() {
	state := s.state()
	obj := components.Object.Get(s.Player())

	state.Lives--
	state.Deaths++
	LifeLost.Publish(s.world, LifeLostEvent{LivesLeft: state.Lives, X: obj.X, Y: obj.Y})

	if state.IsGameOver() {
		state.GameOverTimer = s.cfg.Session.GameOverDelay
		log.Printf("game over: score %d", state.Score)
		GameOver.Publish(s.world, GameOverEvent{Score: state.Score, Delay: state.GameOverTimer})
		return
	}

	log.Printf("life lost: %d left", state.Lives)
	s.reloadLevel()
}

// reloadLevel rebuilds the level in place and resets the score.
func (s *Session) reloadLevel() {
	factory.DestroyLevel(s.world)
	levelEntry, err := factory.CreateLevel(s.world, s.desc, &s.cfg)
	if err != nil {
		// The description was validated in New
		log.Printf("reload level %s: %v", s.desc.Name, err)
		return
	}

	state := s.state()
	state.Score = 0
	state.Reloads++

	camera := components.Camera.Get(s.cameraEntry)
	camera.Bounds = components.Level.Get(levelEntry).Bounds
	if !s.freeRoam {
		systems.SetCameraTarget(camera, components.Level.Get(levelEntry).Player)
	}
}

// reset starts the play-through over in a new world.
func (s *Session) reset() {
	if err := s.build(); err != nil {
		log.Printf("reset session: %v", err)
		return
	}
	log.Printf("session reset: %d lives", s.cfg.Session.StartingLives)
	SessionReset.Publish(s.world, SessionResetEvent{Lives: s.cfg.Session.StartingLives})
}

// Reset restarts the play-through immediately.
func (s *Session) Reset() {
	s.reset()
	events.ProcessAllEvents(s.world)
}

// SetInput stores the intents applied on the next tick.
func (s *Session) SetInput(in components.InputData) {
	components.Input.SetValue(s.sessionEntry, in)
}

func (s *Session) state() *components.SessionData {
	return components.Session.Get(s.sessionEntry)
}

func (s *Session) level() *components.LevelData {
	levelEntry, ok := components.Level.First(s.world)
	if !ok {
		return nil
	}
	return components.Level.Get(levelEntry)
}
