package countsquares

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestErrorMessages(t *testing.T) {
	qt.Assert(t, qt.Equals(NewError(ErrInvalidArgument).Error(), "countsquares: invalid argument"))
	qt.Assert(t, qt.Equals(NewError(ErrorCode(7)).Error(), "countsquares: unknown error code 7"))

	inner := errors.New("boom")
	e := WrapError(ErrProblem, inner)
	qt.Assert(t, qt.Equals(e.Error(), "countsquares: unexpected internal error: boom"))
	qt.Assert(t, qt.ErrorIs(e, inner))
}

func TestCode(t *testing.T) {
	qt.Assert(t, qt.Equals(Code(nil), Success))
	qt.Assert(t, qt.Equals(Code(errors.New("other")), ErrProblem))

	wrapped := fmt.Errorf("loading: %w", newPointError(ErrDuplicatePoint, 2, Pt(1, 1)))
	qt.Assert(t, qt.Equals(Code(wrapped), ErrDuplicatePoint))
	qt.Assert(t, qt.IsTrue(IsDuplicatePoint(wrapped)))
	qt.Assert(t, qt.IsFalse(IsCoordinateRange(wrapped)))
}
