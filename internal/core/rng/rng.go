// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package rng builds the random sources shared by matching and token
// generation. A zero seed means "unpredictable": the ChaCha8 stream is keyed
// from crypto/rand so page tokens cannot be guessed from earlier runs.
package rng

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// New returns a random source. Non-zero seeds are reproducible.
func New(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	var key [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(key[:])
	return rand.New(rand.NewChaCha8(key))
}
