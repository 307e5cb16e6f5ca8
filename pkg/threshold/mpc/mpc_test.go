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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-mpc/pkg/crypto/rand"
	"github.com/jeremyhahn/go-mpc/pkg/threshold/shamir"
)

const testPrime uint64 = 7919

func seeded(t *testing.T, seed string) rand.Resolver {
	t.Helper()
	r, err := rand.NewResolver(&rand.Config{Mode: rand.ModeSeeded, Seed: seed})
	require.NoError(t, err)
	return r
}

func split(t *testing.T, random rand.Resolver, secret uint64, k, n int) []shamir.Share {
	t.Helper()
	s, err := shamir.New(&shamir.Config{Secret: secret, Threshold: k, Shares: n, Prime: testPrime, Random: random})
	require.NoError(t, err)
	return s.Split()
}

func reconstruct(t *testing.T, shares []shamir.Share) uint64 {
	t.Helper()
	v, err := shamir.Reconstruct(shares, testPrime)
	require.NoError(t, err)
	return v
}
