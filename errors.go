package aspen

import "errors"

// All failures in this package are programmer errors surfaced at the
// call site; none are transient or retried. Callers can match them with
// errors.Is.
var (
	// ErrInvalidBox reports a BoundingBox construction that violates
	// x1 < x2 && y1 < y2.
	ErrInvalidBox = errors.New("aspen: invalid bounding box")

	// ErrInvalidArgument reports a setter value outside its allowed
	// range or enum.
	ErrInvalidArgument = errors.New("aspen: invalid argument")

	// ErrNotRoot reports a root-only operation invoked on a non-root
	// node.
	ErrNotRoot = errors.New("aspen: not a root node")

	// ErrIndexUnavailable reports a spatial query issued before any
	// rebuild has ever populated the index.
	ErrIndexUnavailable = errors.New("aspen: spatial index unavailable")
)
