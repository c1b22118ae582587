package foamgraph

import "errors"

// The error values reported by this package. All failures are synchronous
// and local: a rejected call leaves the previous state intact and nothing is
// retried behind the caller's back.
var (
	// ErrLengthMismatch is reported by SetData when the coordinate arrays
	// of one call disagree in length.
	ErrLengthMismatch = errors.New("foamgraph: data arrays have different lengths")

	// ErrAlreadyAttached is reported when an item that belongs to a canvas
	// is attached again, to the same or to another canvas.
	ErrAlreadyAttached = errors.New("foamgraph: item already attached to a canvas")

	// ErrNotAttached is reported when an item is removed from a canvas it
	// does not belong to.
	ErrNotAttached = errors.New("foamgraph: item not attached to this canvas")

	// ErrInvalidOrientation is reported for an unrecognized orientation
	// argument.
	ErrInvalidOrientation = errors.New("foamgraph: invalid orientation")

	// ErrTooManyRegions is reported when more than MaxRegions regions of
	// interest are created in one group.
	ErrTooManyRegions = errors.New("foamgraph: too many regions of interest")

	// ErrInvalidQuantile is reported for a quantile outside [0, 1].
	ErrInvalidQuantile = errors.New("foamgraph: quantile must be in [0, 1]")
)
