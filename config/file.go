package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadFile overlays the TOML file at path on the default values. Keys absent
// from the file keep their defaults.
func LoadFile(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("decode config %s: %w: unknown keys %v", path, ErrInvalidConfig, undecoded)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Decode overlays TOML text on the default values. Like LoadFile it rejects
// keys that match no field.
func Decode(data string) (Config, error) {
	c := Default()
	md, err := toml.Decode(data, &c)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("decode config: %w: unknown keys %v", ErrInvalidConfig, undecoded)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
