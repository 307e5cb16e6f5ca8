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

package rand

import "errors"

var (
	// ErrUnknownMode indicates an unsupported RNG mode
	ErrUnknownMode = errors.New("rand: unknown RNG mode")

	// ErrSeedRequired indicates ModeSeeded was requested without a seed
	ErrSeedRequired = errors.New("rand: seeded mode requires a seed")

	// ErrClosed indicates the resolver has been closed
	ErrClosed = errors.New("rand: resolver is closed")

	// ErrInvalidRange indicates an empty sampling range
	ErrInvalidRange = errors.New("rand: range must be non-empty")
)
