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

// Package shamir implements Shamir's Secret Sharing over a prime field
// GF(p) with 64-bit moduli.
//
// A Sharer hides a secret as the constant term of a random polynomial of
// degree k-1 and hands out its evaluations at x = 1..n. Any k of those
// shares recover the secret by Lagrange interpolation at x = 0.
//
// Shares are plain (x, y) field elements, so they can be combined with the
// share algebra in package mpc before reconstruction.
//
// # Insufficient shares
//
// Reconstruct cannot tell how many shares the polynomial needs. Given
// fewer than k shares it interpolates the lower-degree polynomial through
// them and returns a value that is unrelated to the secret. This is the
// information-theoretic guarantee of the scheme, not an error.
package shamir

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/jeremyhahn/go-mpc/pkg/adapters/logger"
	mpcrand "github.com/jeremyhahn/go-mpc/pkg/crypto/rand"
	"github.com/jeremyhahn/go-mpc/pkg/field"
)

// Config configures a sharing instance.
type Config struct {
	Secret    uint64 // value to share, must be < Prime
	Threshold int    // k - minimum shares needed to reconstruct
	Shares    int    // n - total shares to create
	Prime     uint64 // field modulus, must be prime and > max(Secret, Shares)

	// Random supplies polynomial coefficients. Defaults to the software
	// resolver of pkg/crypto/rand.
	Random io.Reader

	// Logger receives debug events. Secrets, coefficients and share
	// values are never logged. Defaults to logger.NoOp.
	Logger logger.Logger
}

// Sharer holds one secret and the polynomial generated for it.
type Sharer struct {
	id        string
	threshold int
	total     int
	prime     uint64
	coeffs    []uint64
	logger    logger.Logger
}

// New validates config and generates the sharing polynomial.
// Returns ErrInvalidParameters if the prime is not larger than both the
// secret and the share count, the prime is composite, or the threshold
// is outside [1, Shares].
func New(config *Config) (*Sharer, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config cannot be nil", ErrInvalidParameters)
	}
	if err := validate(config); err != nil {
		return nil, err
	}

	random := config.Random
	if random == nil {
		random = &mpcrand.SoftwareResolver{}
	}
	log := config.Logger
	if log == nil {
		log = logger.NoOp{}
	}

	coeffs := make([]uint64, config.Threshold)
	coeffs[0] = config.Secret
	for i := 1; i < config.Threshold; i++ {
		c, err := mpcrand.Uint64n(random, config.Prime)
		if err != nil {
			return nil, fmt.Errorf("shamir: failed to generate random coefficients: %w", err)
		}
		coeffs[i] = c
	}

	s := &Sharer{
		id:        uuid.NewString(),
		threshold: config.Threshold,
		total:     config.Shares,
		prime:     config.Prime,
		coeffs:    coeffs,
	}
	s.logger = log.With(logger.String("sharing_id", s.id))
	s.logger.Debug("sharing polynomial generated",
		logger.Int("threshold", s.threshold),
		logger.Int("shares", s.total),
		logger.Uint64("prime", s.prime))

	return s, nil
}

func validate(config *Config) error {
	if config.Shares < 1 {
		return fmt.Errorf("%w: shares must be at least 1, got %d", ErrInvalidParameters, config.Shares)
	}
	if config.Threshold < 1 || config.Threshold > config.Shares {
		return fmt.Errorf("%w: threshold must be in [1, %d], got %d",
			ErrInvalidParameters, config.Shares, config.Threshold)
	}
	bound := max(config.Secret, uint64(config.Shares))
	if config.Prime <= bound {
		return fmt.Errorf("%w: prime %d must be greater than max(secret, shares) = %d",
			ErrInvalidParameters, config.Prime, bound)
	}
	if !field.IsPrime(config.Prime) {
		return fmt.Errorf("%w: modulus %d is not prime", ErrInvalidParameters, config.Prime)
	}
	return nil
}

// ID returns the random identifier of this sharing, used in log records.
func (s *Sharer) ID() string {
	return s.id
}

// Threshold returns k.
func (s *Sharer) Threshold() int {
	return s.threshold
}

// Total returns n.
func (s *Sharer) Total() int {
	return s.total
}

// Prime returns the field modulus.
func (s *Sharer) Prime() uint64 {
	return s.prime
}

// Split evaluates the polynomial at x = 1, 2, ..., n. Every call returns
// the same shares in a freshly allocated slice.
func (s *Sharer) Split() []Share {
	shares := make([]Share, s.total)
	for i := range shares {
		x := uint64(i + 1)
		shares[i] = Share{X: x, Y: field.EvalPolynomial(s.coeffs, x, s.prime)}
	}
	s.logger.Debug("secret split", logger.Int("shares", len(shares)))
	return shares
}

// Reconstruct recovers the constant term of the polynomial through shares
// by Lagrange interpolation at x = 0:
//
//	secret = Σ_j y_j · Π_{m≠j} (-x_m) · (x_j - x_m)^-1  (mod p)
//
// Every product is reduced mod p before the next multiplication.
// x-coordinates that collide mod p return ErrSingularInterpolation.
// Exactly k or more shares from one sharing yield the secret; fewer yield
// an unrelated value without error (see the package documentation).
func Reconstruct(shares []Share, prime uint64) (uint64, error) {
	if len(shares) == 0 {
		return 0, ErrNoShares
	}
	if prime < 2 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidParameters, field.ErrInvalidModulus)
	}

	var secret uint64
	for j, sj := range shares {
		numerator := uint64(1)
		denominator := uint64(1)
		for m, sm := range shares {
			if m == j {
				continue
			}
			diff := field.Sub(sj.X, sm.X, prime)
			if diff == 0 {
				return 0, fmt.Errorf("%w: shares %d and %d have the same x-coordinate %d mod %d",
					ErrSingularInterpolation, min(j, m), max(j, m), sj.X, prime)
			}
			numerator = field.Mul(numerator, field.Neg(sm.X, prime), prime)
			denominator = field.Mul(denominator, diff, prime)
		}

		inv, err := field.ModInverse(denominator, prime)
		if err != nil {
			// only reachable for a composite modulus
			return 0, fmt.Errorf("shamir: lagrange basis %d: %w", j, err)
		}
		basis := field.Mul(numerator, inv, prime)
		secret = field.Add(secret, field.Mul(sj.Y, basis, prime), prime)
	}

	return secret, nil
}
