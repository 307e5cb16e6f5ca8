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

// Package mpc implements computation on Shamir shares without
// reconstructing the values they hide.
//
// Linear operations act on each share independently: adding two shares of
// the same party yields that party's share of the sum, and a public
// constant can be added to or multiplied into a share. Multiplying two
// secret-shared values locally does not work (the product of two degree
// k-1 polynomials has degree 2k-2), so MultiplyRaw is exposed only as a
// primitive and secure multiplication goes through a Beaver triple with
// MultiplyWithTriple.
//
// # Beaver triples
//
// A triple (a, b, c = a·b) is correlated randomness prepared before the
// inputs are known. To multiply x and y the parties open only the masked
// differences d = x - a and e = y - b, then compute
//
//	x·y = (a+d)(b+e) = c + d·b + e·a + d·e
//
// This package models the single-party form of that identity: the triple
// is held as x = 1 shares by one party. Distributing genuine sharings of
// a, b and c and opening d and e between parties is out of scope.
//
// A triple must be used for exactly one multiplication. Reusing it lets an
// observer of two openings subtract the masks away. Nothing here tracks
// consumption; callers discard a triple after MultiplyWithTriple.
package mpc
