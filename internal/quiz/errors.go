package quiz

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match with errors.Is; messages carry detail
// through %w wrapping.
var (
	// ErrInvalidTransition is returned when an action is not legal in the
	// session's current state. The session is left unchanged.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNoAnswer is returned by Next when the current question has no answer.
	ErrNoAnswer = fmt.Errorf("%w: current question has no answer", ErrInvalidTransition)

	// ErrAtFirstQuestion is returned by Prev at index 0.
	ErrAtFirstQuestion = fmt.Errorf("%w: already at the first question", ErrInvalidTransition)

	// ErrScoreOutOfRange is returned when an answer falls outside the scale.
	ErrScoreOutOfRange = errors.New("score out of range")

	// ErrUnknownAxis is returned for axis values outside the closed set.
	ErrUnknownAxis = errors.New("unknown axis")

	// ErrUnknownQuestion is returned for question ids not in the bank.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrIncomplete is returned when a diagnosis is requested before every
	// question has an answer.
	ErrIncomplete = errors.New("not all questions answered")

	// ErrContentGap signals a static-data authoring defect: tendencies
	// resolved but the matching type, axis content or hint is missing.
	ErrContentGap = errors.New("content gap")
)
