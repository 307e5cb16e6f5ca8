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

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Uint64n returns a uniformly distributed value in [0, n) read from r.
//
// Samples are drawn 8 bytes at a time. Values below 2^64 mod n are
// rejected so the result carries no modulo bias.
func Uint64n(r io.Reader, n uint64) (uint64, error) {
	if n == 0 {
		return 0, ErrInvalidRange
	}
	var buf [8]byte
	reject := -n % n
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, fmt.Errorf("rand: failed to read randomness: %w", err)
		}
		v := binary.LittleEndian.Uint64(buf[:])
		if v >= reject {
			return v % n, nil
		}
	}
}
