// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package match draws gift assignments. Givers keep their input order; each
// attempt shuffles a fresh copy of the participants into the receiver column
// and the first candidate without a fixed point wins. For any N >= 2 the
// expected number of attempts is about e, so the ceiling only guards against
// a broken random source.
package match

import (
	"math/rand/v2"

	"github.com/toeirei/secretsanta/internal/logging"
	"github.com/toeirei/secretsanta/internal/model"
)

// DefaultMaxAttempts is the ceiling used when none is configured.
const DefaultMaxAttempts = 1000

// Shuffler permutes candidate receivers in place. The receivers slice holds
// the participants in input order when Shuffle is called.
type Shuffler interface {
	Shuffle(receivers []model.Participant)
}

// ShufflerFunc adapts a function to Shuffler.
type ShufflerFunc func(receivers []model.Participant)

// Shuffle calls f.
func (f ShufflerFunc) Shuffle(receivers []model.Participant) { f(receivers) }

type randShuffler struct {
	r *rand.Rand
}

func (s randShuffler) Shuffle(receivers []model.Participant) {
	s.r.Shuffle(len(receivers), func(i, j int) {
		receivers[i], receivers[j] = receivers[j], receivers[i]
	})
}

// Matcher produces derangements.
type Matcher struct {
	shuffler    Shuffler
	maxAttempts int
}

// Option customizes a Matcher during construction.
type Option func(*Matcher)

// WithRand draws candidates from r using a Fisher-Yates shuffle.
func WithRand(r *rand.Rand) Option {
	return func(m *Matcher) {
		if r != nil {
			m.shuffler = randShuffler{r: r}
		}
	}
}

// WithShuffler replaces the candidate source entirely.
func WithShuffler(s Shuffler) Option {
	return func(m *Matcher) {
		if s != nil {
			m.shuffler = s
		}
	}
}

// WithMaxAttempts sets the retry ceiling. Values below one keep the default.
func WithMaxAttempts(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

// New builds a Matcher. Without options it uses an unseeded source and
// DefaultMaxAttempts.
func New(opts ...Option) *Matcher {
	m := &Matcher{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(m)
	}
	if m.shuffler == nil {
		m.shuffler = randShuffler{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return m
}

// MaxAttempts returns the configured ceiling.
func (m *Matcher) MaxAttempts() int { return m.maxAttempts }

// Match returns a derangement of participants or an error wrapping
// ErrInvalidInput or ErrGenerationExhausted.
func (m *Matcher) Match(participants []model.Participant) (model.Assignment, error) {
	if err := Validate(participants); err != nil {
		return model.Assignment{}, err
	}

	givers := make([]model.Participant, len(participants))
	copy(givers, participants)
	receivers := make([]model.Participant, len(participants))

	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		copy(receivers, givers)
		m.shuffler.Shuffle(receivers)

		if i := fixedPoint(givers, receivers); i >= 0 {
			logging.Debugf("attempt %d rejected: %s drew themselves", attempt, givers[i])
			continue
		}

		a, err := model.NewAssignment(givers, receivers)
		if err != nil {
			return model.Assignment{}, err
		}
		if !a.IsDerangement() {
			logging.Warnf("attempt %d rejected: candidate is not a permutation of the participants", attempt)
			continue
		}

		logging.Infof("matching found after %d attempt(s)", attempt)
		return a, nil
	}

	return model.Assignment{}, &ExhaustedError{Attempts: m.maxAttempts}
}

// fixedPoint returns the first index where giver and receiver coincide, or -1.
func fixedPoint(givers, receivers []model.Participant) int {
	for i := range givers {
		if givers[i] == receivers[i] {
			return i
		}
	}
	return -1
}
