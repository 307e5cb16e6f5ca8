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

// Package field implements arithmetic in the prime field GF(p) for
// 64-bit moduli.
//
// All values are uint64 field elements in [0, p-1]. Inputs outside that
// range are reduced before use. Products are formed as 128-bit values with
// math/bits and reduced immediately, so no intermediate ever exceeds the
// width of (p-1)^2 and every 64-bit prime is a valid modulus.
//
// Functions taking a modulus panic on p == 0 like any integer division
// by zero. ModInverse reports ErrInvalidModulus instead.
package field

import (
	"math/big"
	"math/bits"
)

// Reduce returns a mod p.
func Reduce(a, p uint64) uint64 {
	return a % p
}

// Add returns (a + b) mod p.
func Add(a, b, p uint64) uint64 {
	a, b = a%p, b%p
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum >= p {
		sum -= p
	}
	return sum
}

// Sub returns (a - b) mod p.
func Sub(a, b, p uint64) uint64 {
	a, b = a%p, b%p
	if a >= b {
		return a - b
	}
	return p - (b - a)
}

// Neg returns -a mod p.
func Neg(a, p uint64) uint64 {
	return Sub(0, a, p)
}

// Mul returns (a * b) mod p using a 128-bit intermediate product.
func Mul(a, b, p uint64) uint64 {
	hi, lo := bits.Mul64(a%p, b%p)
	return bits.Rem64(hi, lo, p)
}

// Exp returns base^exp mod p by square-and-multiply.
func Exp(base, exp, p uint64) uint64 {
	result := uint64(1) % p
	base %= p
	for exp > 0 {
		if exp&1 == 1 {
			result = Mul(result, base, p)
		}
		base = Mul(base, base, p)
		exp >>= 1
	}
	return result
}

// ModInverse returns x such that a*x ≡ 1 (mod p).
//
// The inverse is computed as a^(p-2) mod p (Fermat's little theorem), so p
// must be prime. A composite modulus yields an undefined result rather than
// an error. ErrDomain is returned when a ≡ 0 (mod p).
func ModInverse(a, p uint64) (uint64, error) {
	if p < 2 {
		return 0, ErrInvalidModulus
	}
	if a%p == 0 {
		return 0, ErrDomain
	}
	return Exp(a, p-2, p), nil
}

// EvalPolynomial evaluates sum(coeffs[i] * x^i) mod p using Horner's
// method. An empty coefficient list is the zero polynomial.
func EvalPolynomial(coeffs []uint64, x, p uint64) uint64 {
	var result uint64
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = Add(Mul(result, x, p), coeffs[i], p)
	}
	return result
}

// IsPrime reports whether p is prime. The test is deterministic for every
// uint64 value.
func IsPrime(p uint64) bool {
	if p < 2 {
		return false
	}
	return new(big.Int).SetUint64(p).ProbablyPrime(0)
}
