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

package shamir

import (
	"fmt"
	"strconv"
	"strings"
)

// Share is one evaluation (X, Y) of a sharing polynomial. X is the
// evaluation point and never zero for shares produced by Split.
//
// Shares with equal X belong to the same party and may be combined with
// the operations in package mpc.
type Share struct {
	X uint64 `json:"x"`
	Y uint64 `json:"y"`
}

// String returns the share in the "x:y" form accepted by ParseShare
func (s Share) String() string {
	return fmt.Sprintf("%d:%d", s.X, s.Y)
}

// ParseShare parses a share in "x:y" form. Both parts are decimal
// unsigned integers.
func ParseShare(s string) (Share, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Share{}, fmt.Errorf("%w: %q is not in x:y form", ErrInvalidShare, s)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(xs), 10, 64)
	if err != nil {
		return Share{}, fmt.Errorf("%w: bad x-coordinate in %q: %v", ErrInvalidShare, s, err)
	}
	y, err := strconv.ParseUint(strings.TrimSpace(ys), 10, 64)
	if err != nil {
		return Share{}, fmt.Errorf("%w: bad y-coordinate in %q: %v", ErrInvalidShare, s, err)
	}
	return Share{X: x, Y: y}, nil
}

// Validate checks that the share is a usable point for modulus p
func (s Share) Validate(p uint64) error {
	if s.X%p == 0 {
		return fmt.Errorf("%w: x-coordinate %d is zero mod %d", ErrInvalidShare, s.X, p)
	}
	if s.Y >= p {
		return fmt.Errorf("%w: y-coordinate %d is not reduced mod %d", ErrInvalidShare, s.Y, p)
	}
	return nil
}
