package builder

import "errors"

// Sentinel errors. Constructors wrap them with the method name and the
// offending values; branch with errors.Is.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrOptionViolation indicates a meaningless option value, such as a nil
	// ID scheme or an inverted weight range.
	ErrOptionViolation = errors.New("builder: invalid option value")

	// ErrConstructFailed indicates that a constructor could not be applied,
	// for example a nil Constructor or a rejected edge.
	ErrConstructFailed = errors.New("builder: construction failed")
)
