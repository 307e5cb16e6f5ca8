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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-mpc/pkg/field"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

func TestMultiplyWithTriple_KnownVector(t *testing.T) {
	triple := Triple{
		A: shamir.Share{X: 1, Y: 10},
		B: shamir.Share{X: 1, Y: 20},
		C: shamir.Share{X: 1, Y: 200},
	}
	require.True(t, triple.Valid(7919))

	got, err := MultiplyWithTriple(shamir.Share{X: 1, Y: 4}, shamir.Share{X: 1, Y: 6}, triple, 7919)
	require.NoError(t, err)
	assert.Equal(t, shamir.Share{X: 1, Y: 24}, got)
}

func TestMultiplyWithTriple_MatchesFieldProduct(t *testing.T) {
	random := seeded(t, "beaver")

	for _, p := range []uint64{2, 7919, 2147483647, 18446744073709551557} {
		for i := 0; i < 200; i++ {
			triple, err := GenerateTriple(random, p)
			require.NoError(t, err)
			require.True(t, triple.Valid(p))

			x, err := GenerateTriple(random, p) // reuse as a source of operands
			require.NoError(t, err)
			s1 := shamir.Share{X: 4, Y: x.A.Y}
			s2 := shamir.Share{X: 4, Y: x.B.Y}

			got, err := MultiplyWithTriple(s1, s2, triple, p)
			require.NoError(t, err)
			assert.Equal(t, uint64(4), got.X)
			assert.Equal(t, field.Mul(s1.Y, s2.Y, p), got.Y, "p=%d", p)
		}
	}
}

func TestMultiplyWithTriple_OnSharings(t *testing.T) {
	random := seeded(t, "beaver-sharing")
	a := split(t, random, 56, 2, 5)
	b := split(t, random, 78, 2, 5)

	prod := make([]shamir.Share, len(a))
	for i := range a {
		triple, err := GenerateTriple(random, testPrime)
		require.NoError(t, err)
		prod[i], err = MultiplyWithTriple(a[i], b[i], triple, testPrime)
		require.NoError(t, err)

		raw, err := MultiplyRaw(a[i], b[i], testPrime)
		require.NoError(t, err)
		assert.Equal(t, raw, prod[i])
	}
	assert.Equal(t, uint64(56*78)%testPrime, reconstruct(t, prod[:3]))
}

func TestGenerateTriple(t *testing.T) {
	triple, err := GenerateTriple(seeded(t, "triple"), testPrime)
	require.NoError(t, err)

	for _, s := range []shamir.Share{triple.A, triple.B, triple.C} {
		assert.Equal(t, uint64(1), s.X)
		assert.Less(t, s.Y, testPrime)
	}
	assert.Equal(t, (triple.A.Y*triple.B.Y)%testPrime, triple.C.Y)

	again, err := GenerateTriple(seeded(t, "triple"), testPrime)
	require.NoError(t, err)
	assert.Equal(t, triple, again)
}

func TestGenerateTriple_Errors(t *testing.T) {
	_, err := GenerateTriple(seeded(t, "x"), 1)
	assert.ErrorIs(t, err, field.ErrInvalidModulus)

	_, err = GenerateTriple(bytes.NewReader(make([]byte, 4)), testPrime)
	assert.Error(t, err)
}

func TestTriple_Valid(t *testing.T) {
	assert.True(t, Triple{A: shamir.Share{Y: 3}, B: shamir.Share{Y: 5}, C: shamir.Share{Y: 15}}.Valid(7919))
	assert.False(t, Triple{A: shamir.Share{Y: 3}, B: shamir.Share{Y: 5}, C: shamir.Share{Y: 16}}.Valid(7919))
	assert.True(t, Triple{A: shamir.Share{Y: 3}, B: shamir.Share{Y: 5}, C: shamir.Share{Y: 1}}.Valid(7))
}
