package buckets

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultInitialCapacity is the number of buckets a table starts
	// with, and returns to on Clear, when no capacity is configured.
	DefaultInitialCapacity = 16

	// DefaultLoadFactor is the ratio of entries to buckets that a table
	// may reach before it grows, when no load factor is configured.
	DefaultLoadFactor = 0.8

	// MaxInitialCapacity bounds the configurable initial capacity.
	MaxInitialCapacity = 1 << 30
)

var (
	ErrInvalidCapacity   = errors.New("initial capacity must be a positive power of two")
	ErrInvalidLoadFactor = errors.New("load factor must be a finite number greater than zero")
)

// Config holds the tunable parameters of a table.
// The zero value of each field selects its default.
type Config struct {
	// InitialCapacity holds the number of buckets allocated
	// when the table is created or cleared. It must be a power of two.
	InitialCapacity int `toml:"initial_capacity"`

	// LoadFactor holds the growth threshold: the table doubles
	// its bucket count when an insert would take the number of
	// entries above InitialCapacity*LoadFactor (or the equivalent
	// for the current capacity).
	LoadFactor float64 `toml:"load_factor"`
}

// Validate reports whether c can be used to build a table.
// The returned error wraps ErrInvalidCapacity or ErrInvalidLoadFactor.
func (c Config) Validate() error {
	if n := c.InitialCapacity; n != 0 {
		if n < 0 || n > MaxInitialCapacity || n&(n-1) != 0 {
			return fmt.Errorf("invalid initial capacity %d: %w", n, ErrInvalidCapacity)
		}
	}
	if f := c.LoadFactor; f != 0 {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("invalid load factor %v: %w", f, ErrInvalidLoadFactor)
		}
	}
	return nil
}

// withDefaults returns c with zero fields replaced by their defaults.
func (c Config) withDefaults() Config {
	if c.InitialCapacity == 0 {
		c.InitialCapacity = DefaultInitialCapacity
	}
	if c.LoadFactor == 0 {
		c.LoadFactor = DefaultLoadFactor
	}
	return c
}

// ParseConfig parses a table configuration in TOML format,
// for example:
//
//	initial_capacity = 64
//	load_factor = 0.75
//
// Keys that are absent take their default values; unknown keys
// are an error. The result is validated.
func ParseConfig(text string) (Config, error) {
	var c Config
	md, err := toml.Decode(text, &c)
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse table config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown table config key %q", undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c.withDefaults(), nil
}
