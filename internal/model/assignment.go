// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import "fmt"

// Participant is the unique, human-readable name of someone taking part in
// the exchange.
type Participant string

// String returns the participant's name.
func (p Participant) String() string { return string(p) }

// Pair links a giver to the participant they buy a gift for.
type Pair struct {
	Giver    Participant
	Receiver Participant
}

// String returns the "giver -> receiver" representation.
func (p Pair) String() string {
	return fmt.Sprintf("%s -> %s", p.Giver, p.Receiver)
}

// Assignment is a derangement over the participant list. Pairs keep the
// giver order of the input. An Assignment is never mutated after creation.
type Assignment struct {
	pairs []Pair
	index map[Participant]Participant
}

// NewAssignment builds an Assignment from positionally aligned givers and
// receivers. It does not validate the derangement property; that is the
// matcher's job.
func NewAssignment(givers, receivers []Participant) (Assignment, error) {
	if len(givers) != len(receivers) {
		return Assignment{}, fmt.Errorf("assignment: %d givers but %d receivers", len(givers), len(receivers))
	}
	a := Assignment{
		pairs: make([]Pair, len(givers)),
		index: make(map[Participant]Participant, len(givers)),
	}
	for i, g := range givers {
		a.pairs[i] = Pair{Giver: g, Receiver: receivers[i]}
		a.index[g] = receivers[i]
	}
	return a, nil
}

// Len returns the number of pairs.
func (a Assignment) Len() int { return len(a.pairs) }

// Pairs returns a copy of the pairs in giver order.
func (a Assignment) Pairs() []Pair {
	out := make([]Pair, len(a.pairs))
	copy(out, a.pairs)
	return out
}

// Receiver returns who p gives to.
func (a Assignment) Receiver(p Participant) (Participant, bool) {
	r, ok := a.index[p]
	return r, ok
}

// Map returns a fresh giver -> receiver map.
func (a Assignment) Map() map[Participant]Participant {
	out := make(map[Participant]Participant, len(a.index))
	for k, v := range a.index {
		out[k] = v
	}
	return out
}

// IsDerangement reports whether nobody gives to themselves and every
// participant receives exactly once.
func (a Assignment) IsDerangement() bool {
	seen := make(map[Participant]bool, len(a.pairs))
	for _, p := range a.pairs {
		if p.Giver == p.Receiver {
			return false
		}
		if _, ok := a.index[p.Receiver]; !ok {
			return false
		}
		if seen[p.Receiver] {
			return false
		}
		seen[p.Receiver] = true
	}
	return len(seen) == len(a.index)
}
