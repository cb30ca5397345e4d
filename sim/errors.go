package sim

import "errors"

// Sentinel errors for the three failure classes the simulator can report.
// All load-time and structural failures wrap one of these, so callers can
// classify with errors.Is without string matching.
var (
	// ErrConfig covers malformed or inconsistent configuration input.
	ErrConfig = errors.New("invalid configuration")
	// ErrMetaData covers malformed meta-data framing or operation triples.
	ErrMetaData = errors.New("invalid meta-data")
	// ErrBadOperation reports an operation the execution engine cannot
	// dispatch. It indicates an upstream parsing defect; the engine aborts
	// the run rather than skip the operation and corrupt the timeline.
	ErrBadOperation = errors.New("unrecognized operation")
)
