// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-mpc.
//
// go-mpc is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package rand provides the randomness sources used to draw polynomial
// coefficients and Beaver triples.
//
// # RNG Sources
//
//   - Software: crypto/rand from the standard library
//   - Seeded: a deterministic ChaCha20 keystream keyed by SHA-256(seed),
//     for reproducible test vectors and demos
//   - Auto: currently resolves to Software
//
// # Configuration
//
//	// Production: operating system entropy
//	rng, _ := rand.NewResolver(rand.ModeSoftware)
//
//	// Tests: every run draws the same coefficients
//	rng, _ := rand.NewResolver(&rand.Config{Mode: rand.ModeSeeded, Seed: "vector-1"})
//	x, _ := rand.Uint64n(rng, 7919)
//
// A seeded resolver must never be used for real secrets: anyone who knows
// the seed can rebuild every polynomial it produced.
//
// # Thread Safety
//
// All Resolver implementations are safe for concurrent use. Concurrent
// reads from a seeded resolver are serialized, so the byte stream stays
// deterministic but its split across goroutines does not.
package rand

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Mode names a randomness source.
type Mode string

const (
	// ModeAuto picks the strongest source available. Today that is
	// always ModeSoftware.
	ModeAuto Mode = "auto"

	// ModeSoftware reads operating system entropy through crypto/rand
	ModeSoftware Mode = "software"

	// ModeSeeded replays the ChaCha20 keystream derived from Config.Seed
	ModeSeeded Mode = "seeded"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeAuto, ModeSoftware, ModeSeeded}

// Config selects a randomness source.
type Config struct {
	// Mode defaults to ModeAuto.
	Mode Mode

	// Seed keys the keystream in ModeSeeded and is ignored otherwise.
	Seed string
}

// Source is a raw byte generator.
type Source interface {
	// Rand returns n fresh random bytes.
	Rand(n int) ([]byte, error)

	// Available reports whether the source can still produce bytes.
	Available() bool

	// Close releases the source. Reads after Close fail.
	Close() error
}

// Resolver is a Source that also satisfies io.Reader, so it can be passed
// directly as shamir.Config.Random or to mpc.GenerateTriple.
type Resolver interface {
	Rand(n int) ([]byte, error)
	Read(p []byte) (n int, err error)
	Available() bool
	Close() error

	// Source returns the generator backing this resolver.
	Source() Source
}

// NewResolver builds the resolver for config, which may be nil, a Mode or
// a *Config. nil and the zero Config select ModeAuto.
func NewResolver(config interface{}) (Resolver, error) {
	cfg := normalizeConfig(config)
	switch cfg.Mode {
	case ModeAuto, ModeSoftware:
		return &SoftwareResolver{}, nil
	case ModeSeeded:
		return newSeededResolver(cfg.Seed)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, cfg.Mode)
	}
}

func normalizeConfig(config interface{}) Config {
	var cfg Config
	switch v := config.(type) {
	case Mode:
		cfg.Mode = v
	case *Config:
		if v != nil {
			cfg = *v
		}
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeAuto
	}
	return cfg
}

// SoftwareResolver reads from crypto/rand. The zero value is ready to use
// and never needs closing.
type SoftwareResolver struct{}

var _ Resolver = (*SoftwareResolver)(nil)

// Read fills p from crypto/rand.
func (s *SoftwareResolver) Read(p []byte) (int, error) {
	return rand.Read(p)
}

func (s *SoftwareResolver) Rand(n int) ([]byte, error) {
	return readN(s, n)
}

func (s *SoftwareResolver) Source() Source { return s }

func (s *SoftwareResolver) Available() bool { return true }

func (s *SoftwareResolver) Close() error { return nil }

// readN returns n bytes read in full from r.
func readN(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
