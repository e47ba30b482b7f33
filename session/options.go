package session

import "github.com/automoto/canyon/systems"

type Option func(*Session)

// WithListeners installs event callbacks.
func WithListeners(l Listeners) Option {
	return func(s *Session) {
		s.listeners = l
	}
}

// OnPickup installs only the pickup callback.
func OnPickup(fn func(systems.PickupCollectedEvent)) Option {
	return func(s *Session) {
		s.listeners.PickupCollected = fn
	}
}

// WithoutCameraFollow starts the camera in free roam.
func WithoutCameraFollow() Option {
	return func(s *Session) {
		s.freeRoam = true
	}
}
