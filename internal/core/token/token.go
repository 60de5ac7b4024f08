// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package token issues the short random strings that make page URLs hard
// to guess.
package token

import (
	"math/rand/v2"
	"strings"
)

const (
	// Alphabet is the set of characters tokens are drawn from.
	Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// DefaultLength is the token length used when none is configured.
	DefaultLength = 8
)

// Generator hands out tokens that are unique within its lifetime.
type Generator struct {
	r      *rand.Rand
	length int
	issued map[string]struct{}
}

// New returns a Generator drawing from r. A non-positive length selects
// DefaultLength.
func New(r *rand.Rand, length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{r: r, length: length, issued: make(map[string]struct{})}
}

// Length returns the token length.
func (g *Generator) Length() int { return g.length }

// Next returns a token not issued before by this generator.
func (g *Generator) Next() string {
	for {
		tok := g.draw()
		if _, dup := g.issued[tok]; dup {
			continue
		}
		g.issued[tok] = struct{}{}
		return tok
	}
}

func (g *Generator) draw() string {
	var b strings.Builder
	b.Grow(g.length)
	for i := 0; i < g.length; i++ {
		b.WriteByte(Alphabet[g.r.IntN(len(Alphabet))])
	}
	return b.String()
}
