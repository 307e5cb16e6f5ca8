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

package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2^64 - 59, the largest prime that fits in a uint64
const maxPrime uint64 = 18446744073709551557

func TestAddSub(t *testing.T) {
	tests := []struct {
		name    string
		a, b, p uint64
		sum     uint64
		diff    uint64
	}{
		{name: "small", a: 3, b: 5, p: 7, sum: 1, diff: 5},
		{name: "unreduced inputs", a: 10, b: 15, p: 7, sum: 4, diff: 2},
		{name: "zero", a: 0, b: 0, p: 7919, sum: 0, diff: 0},
		{name: "carry out of 64 bits", a: maxPrime - 1, b: maxPrime - 1, p: maxPrime, sum: maxPrime - 2, diff: 0},
		{name: "wrap below zero", a: 1, b: maxPrime - 1, p: maxPrime, sum: 0, diff: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Add(tt.a, tt.b, tt.p))
			assert.Equal(t, tt.diff, Sub(tt.a, tt.b, tt.p))
		})
	}
}

func TestNeg(t *testing.T) {
	assert.Equal(t, uint64(0), Neg(0, 7919))
	assert.Equal(t, uint64(7918), Neg(1, 7919))
	assert.Equal(t, uint64(0), Add(Neg(1234, 7919), 1234, 7919))
}

func TestMul(t *testing.T) {
	assert.Equal(t, uint64(200), Mul(10, 20, 7919))
	assert.Equal(t, uint64(1), Mul(7918, 7918, 7919))
	// (p-1)^2 overflows 64 bits before reduction
	assert.Equal(t, uint64(1), Mul(maxPrime-1, maxPrime-1, maxPrime))
	assert.Equal(t, uint64(0), Mul(0, maxPrime-1, maxPrime))
}

func TestExp(t *testing.T) {
	assert.Equal(t, uint64(1), Exp(5, 0, 7919))
	assert.Equal(t, uint64(125), Exp(5, 3, 7919))
	assert.Equal(t, uint64(0), Exp(5, 3, 1))
	// Fermat: a^(p-1) ≡ 1 for a not divisible by p
	assert.Equal(t, uint64(1), Exp(123456789, maxPrime-1, maxPrime))
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(2, 7919)
	require.NoError(t, err)
	assert.Equal(t, uint64(3960), inv)

	for _, p := range []uint64{2, 3, 7, 257, 7919, maxPrime} {
		for _, a := range []uint64{1, 2, 3, 100, p - 1, p + 5} {
			if a%p == 0 {
				continue
			}
			inv, err := ModInverse(a, p)
			require.NoError(t, err)
			assert.Equal(t, uint64(1), Mul(a, inv, p), "a=%d p=%d", a, p)
		}
	}
}

func TestModInverse_Errors(t *testing.T) {
	_, err := ModInverse(0, 7919)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = ModInverse(7919*3, 7919)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = ModInverse(5, 1)
	assert.ErrorIs(t, err, ErrInvalidModulus)

	_, err = ModInverse(5, 0)
	assert.ErrorIs(t, err, ErrInvalidModulus)
}

func TestEvalPolynomial(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []uint64
		x      uint64
		p      uint64
		want   uint64
	}{
		{name: "empty", coeffs: nil, x: 5, p: 7919, want: 0},
		{name: "constant", coeffs: []uint64{1234}, x: 5, p: 7919, want: 1234},
		{name: "constant at zero", coeffs: []uint64{1234}, x: 0, p: 7919, want: 1234},
		{name: "linear", coeffs: []uint64{1, 2}, x: 3, p: 7919, want: 7},
		{name: "quadratic", coeffs: []uint64{1234, 166, 94}, x: 2, p: 7919, want: 1234 + 332 + 376},
		{name: "quadratic at zero", coeffs: []uint64{1234, 166, 94}, x: 0, p: 7919, want: 1234},
		{name: "wraps", coeffs: []uint64{6, 6, 6}, x: 3, p: 7, want: (6 + 18 + 54) % 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := EvalPolynomial(tt.coeffs, tt.x, tt.p)
			second := EvalPolynomial(tt.coeffs, tt.x, tt.p)
			assert.Equal(t, tt.want, first)
			assert.Equal(t, first, second)
		})
	}
}

func TestEvalPolynomial_DoesNotModifyCoefficients(t *testing.T) {
	coeffs := []uint64{9000, 8000, 7000}
	_ = EvalPolynomial(coeffs, 4, 7919)
	assert.Equal(t, []uint64{9000, 8000, 7000}, coeffs)
}

func TestIsPrime(t *testing.T) {
	for _, p := range []uint64{2, 3, 5, 7919, 2147483647, maxPrime} {
		assert.True(t, IsPrime(p), "%d", p)
	}
	for _, p := range []uint64{0, 1, 4, 100, 7917, 561, maxPrime - 1} {
		assert.False(t, IsPrime(p), "%d", p)
	}
}
