// Package leveldata holds the parsed level description consumed by the
// simulation core, plus decoders that produce it. It stays free of engine and
// ECS imports.
package leveldata

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned for a placement whose kind no decoder knows.
var ErrUnknownKind = errors.New("unknown placement kind")

// Kind identifies what a placement spawns.
type Kind string

const (
	KindPlatform Kind = "rock"
	KindSpawn    Kind = "spawn"
	KindCoin     Kind = "coin"
	KindFeather  Kind = "feather"
)

// ParseKind maps a decoder label onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindPlatform, KindSpawn, KindCoin, KindFeather:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Placement is one entity in grid units. Y grows upward from the bottom row
// of the source map. Length only applies to platforms.
type Placement struct {
	Kind   Kind
	X, Y   float64
	Length int
}

// Description is an ordered list of placements.
type Description struct {
	Name       string
	Width      int
	Height     int
	Placements []Placement
}

// Count returns how many placements have the given kind.
func (d *Description) Count(kind Kind) int {
	n := 0
	for _, p := range d.Placements {
		if p.Kind == kind {
			n++
		}
	}
	return n
}
