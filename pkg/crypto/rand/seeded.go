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
	"crypto/sha256"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// seededResolver produces the ChaCha20 keystream for key SHA-256(seed)
// and an all-zero nonce.
type seededResolver struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
	closed bool
}

var _ Resolver = (*seededResolver)(nil)

func newSeededResolver(seed string) (Resolver, error) {
	if seed == "" {
		return nil, ErrSeedRequired
	}
	key := sha256.Sum256([]byte(seed))
	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		return nil, err
	}
	return &seededResolver{stream: stream}, nil
}

func (s *seededResolver) Rand(n int) ([]byte, error) {
	return readN(s, n)
}

func (s *seededResolver) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	clear(p)
	s.stream.XORKeyStream(p, p)
	return len(p), nil
}

func (s *seededResolver) Source() Source {
	return s
}

func (s *seededResolver) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

func (s *seededResolver) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
