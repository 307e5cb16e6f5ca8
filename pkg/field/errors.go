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

import "errors"

var (
	// ErrDomain indicates an inverse was requested for an element ≡ 0 mod p
	ErrDomain = errors.New("field: element has no inverse")

	// ErrInvalidModulus indicates a modulus smaller than 2
	ErrInvalidModulus = errors.New("field: modulus must be at least 2")
)
