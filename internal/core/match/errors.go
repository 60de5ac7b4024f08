// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package match

import (
	"errors"
	"fmt"

	"github.com/toeirei/secretsanta/internal/model"
)

var (
	// ErrInvalidInput is the parent of every precondition failure.
	ErrInvalidInput = errors.New("invalid participant list")
	// ErrTooFewParticipants is returned for lists shorter than two.
	ErrTooFewParticipants = fmt.Errorf("%w: at least two participants are required", ErrInvalidInput)
	// ErrEmptyParticipant is returned when a name is blank.
	ErrEmptyParticipant = fmt.Errorf("%w: participant name is empty", ErrInvalidInput)
	// ErrDuplicateParticipant is returned when a name appears twice.
	ErrDuplicateParticipant = fmt.Errorf("%w: duplicate participant", ErrInvalidInput)

	// ErrGenerationExhausted matches any *ExhaustedError.
	ErrGenerationExhausted = errors.New("could not generate a valid matching")
)

// ExhaustedError reports that no derangement was found within the ceiling.
type ExhaustedError struct {
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%v after %d attempts", ErrGenerationExhausted, e.Attempts)
}

// Is lets errors.Is(err, ErrGenerationExhausted) match.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrGenerationExhausted
}

// Validate checks the matcher's preconditions.
func Validate(participants []model.Participant) error {
	if len(participants) < 2 {
		return fmt.Errorf("%w (got %d)", ErrTooFewParticipants, len(participants))
	}
	seen := make(map[model.Participant]int, len(participants))
	for i, p := range participants {
		if p == "" {
			return fmt.Errorf("%w (position %d)", ErrEmptyParticipant, i+1)
		}
		if first, ok := seen[p]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateParticipant, p, first+1, i+1)
		}
		seen[p] = i
	}
	return nil
}
