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
	"io"

	"github.com/jeremyhahn/go-mpc/pkg/crypto/rand"
	"github.com/jeremyhahn/go-mpc/pkg/field"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

// tripleX is the evaluation point of single-party triples
const tripleX = 1

// Triple is a Beaver multiplication triple with C.Y ≡ A.Y · B.Y (mod p).
type Triple struct {
	A shamir.Share `json:"a"`
	B shamir.Share `json:"b"`
	C shamir.Share `json:"c"`
}

// GenerateTriple draws a and b uniformly from [0, p-1] using r and returns
// the triple (a, b, a·b mod p) as x = 1 shares.
func GenerateTriple(r io.Reader, p uint64) (Triple, error) {
	if p < 2 {
		return Triple{}, fmt.Errorf("mpc: %w", field.ErrInvalidModulus)
	}
	a, err := rand.Uint64n(r, p)
	if err != nil {
		return Triple{}, fmt.Errorf("mpc: failed to generate triple: %w", err)
	}
	b, err := rand.Uint64n(r, p)
	if err != nil {
		return Triple{}, fmt.Errorf("mpc: failed to generate triple: %w", err)
	}
	return Triple{
		A: shamir.Share{X: tripleX, Y: a},
		B: shamir.Share{X: tripleX, Y: b},
		C: shamir.Share{X: tripleX, Y: field.Mul(a, b, p)},
	}, nil
}

// Valid reports whether c ≡ a · b (mod p).
func (t Triple) Valid(p uint64) bool {
	return field.Mul(t.A.Y, t.B.Y, p) == field.Reduce(t.C.Y, p)
}

// MultiplyWithTriple multiplies the values carried by s1 and s2 using the
// triple t:
//
//	d = y1 - a, e = y2 - b
//	product = c + d·b + e·a + d·e  (mod p)
//
// The result is placed at s1.X. Only d and e depend on the operands, and
// both are masked by the triple. t must not be used again.
func MultiplyWithTriple(s1, s2 shamir.Share, t Triple, p uint64) (shamir.Share, error) {
	if err := requireSameParty("multiply", s1, s2); err != nil {
		return shamir.Share{}, err
	}
	a, b, c := t.A.Y, t.B.Y, t.C.Y

	d := field.Sub(s1.Y, a, p)
	e := field.Sub(s2.Y, b, p)

	product := field.Add(c, field.Mul(d, b, p), p)
	product = field.Add(product, field.Mul(e, a, p), p)
	product = field.Add(product, field.Mul(d, e, p), p)

	return shamir.Share{X: s1.X, Y: product}, nil
}
