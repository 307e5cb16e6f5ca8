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

package mpc

import (
	"fmt"

	"github.com/jeremyhahn/go-mpc/pkg/field"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

// requireSameParty returns ErrMismatchedShare unless both shares were
// evaluated at the same x-coordinate.
func requireSameParty(op string, s1, s2 shamir.Share) error {
	if s1.X != s2.X {
		return fmt.Errorf("%w: cannot %s shares at x=%d and x=%d", ErrMismatchedShare, op, s1.X, s2.X)
	}
	return nil
}

// AddShares returns (x, y1 + y2 mod p), a share of the sum of the two
// underlying secrets.
func AddShares(s1, s2 shamir.Share, p uint64) (shamir.Share, error) {
	if err := requireSameParty("add", s1, s2); err != nil {
		return shamir.Share{}, err
	}
	return shamir.Share{X: s1.X, Y: field.Add(s1.Y, s2.Y, p)}, nil
}

// SubShares returns (x, y1 - y2 mod p), a share of the difference of the
// two underlying secrets.
func SubShares(s1, s2 shamir.Share, p uint64) (shamir.Share, error) {
	if err := requireSameParty("subtract", s1, s2); err != nil {
		return shamir.Share{}, err
	}
	return shamir.Share{X: s1.X, Y: field.Sub(s1.Y, s2.Y, p)}, nil
}

// AddPublicConstant returns (x, y + c mod p).
//
// The constant is added unscaled to the share. Applied to every share of
// a sharing this shifts the polynomial by c, because the Lagrange
// coefficients at zero sum to one, so the result reconstructs to
// secret + c. It is not a per-party correction of the constant term.
func AddPublicConstant(s shamir.Share, c, p uint64) shamir.Share {
	return shamir.Share{X: s.X, Y: field.Add(s.Y, c, p)}
}

// ScaleShare returns (x, y · c mod p), a share of c · secret.
func ScaleShare(s shamir.Share, c, p uint64) shamir.Share {
	return shamir.Share{X: s.X, Y: field.Mul(s.Y, c, p)}
}

// MultiplyRaw returns (x, y1 · y2 mod p).
//
// The result lies on the product polynomial, which has degree 2k-2 for
// two k-of-n sharings. It reconstructs to the product only from 2k-1
// shares and is not a k-of-n sharing of it. Use MultiplyWithTriple to
// multiply secret-shared values.
func MultiplyRaw(s1, s2 shamir.Share, p uint64) (shamir.Share, error) {
	if err := requireSameParty("multiply", s1, s2); err != nil {
		return shamir.Share{}, err
	}
	return shamir.Share{X: s1.X, Y: field.Mul(s1.Y, s2.Y, p)}, nil
}
