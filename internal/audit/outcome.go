package audit

import (
	"errors"

	"github.com/nerrad567/gray-logic-homegraph/internal/enumerate"
)

// OutcomeOf classifies the error an enumeration call returned.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, enumerate.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, enumerate.ErrNotImplemented):
		return OutcomeNotImplemented
	case errors.Is(err, enumerate.ErrInvalidArgument):
		return OutcomeInvalidArgument
	default:
		return OutcomeInternal
	}
}
