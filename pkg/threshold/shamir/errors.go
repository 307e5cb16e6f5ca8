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

import "errors"

var (
	// ErrInvalidParameters indicates a sharing was configured with an
	// unusable prime, threshold or share count
	ErrInvalidParameters = errors.New("shamir: invalid parameters")

	// ErrSingularInterpolation indicates two shares with the same
	// x-coordinate were passed to Reconstruct
	ErrSingularInterpolation = errors.New("shamir: singular interpolation")

	// ErrNoShares indicates Reconstruct was called without shares
	ErrNoShares = errors.New("shamir: no shares provided")

	// ErrInvalidShare indicates a share could not be parsed
	ErrInvalidShare = errors.New("shamir: invalid share")
)
