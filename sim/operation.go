// Defines the Operation value type: one unit of simulated work (a CPU burst,
// an I/O burst, or a structural marker) with its timing parameters.

package sim

import (
	"fmt"
	"time"
)

// OpKind identifies what an Operation does. The meta-data format encodes it
// as a single-character tag.
type OpKind byte

const (
	// KindOS is the 'S' tag: the simulator start/end sentinel framing the
	// whole meta-data stream. Sentinels never enter a Program's queue.
	KindOS OpKind = 'S'
	// KindBoundary is the 'A' tag: the start/end marker bracketing one
	// program's operations. Boundary markers carry no timed work.
	KindBoundary OpKind = 'A'
	// KindProcessing is the 'P' tag: a CPU burst.
	KindProcessing OpKind = 'P'
	// KindInput is the 'I' tag: an input I/O burst.
	KindInput OpKind = 'I'
	// KindOutput is the 'O' tag: an output I/O burst.
	KindOutput OpKind = 'O'
)

// ParseOpKind maps a meta-data tag character to its OpKind.
func ParseOpKind(tag byte) (OpKind, error) {
	switch k := OpKind(tag); k {
	case KindOS, KindBoundary, KindProcessing, KindInput, KindOutput:
		return k, nil
	default:
		return 0, fmt.Errorf("%w: tag %q", ErrBadOperation, string(tag))
	}
}

func (k OpKind) String() string {
	switch k {
	case KindOS:
		return "OS"
	case KindBoundary:
		return "program boundary"
	case KindProcessing:
		return "processing"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	default:
		return fmt.Sprintf("OpKind(%q)", string(byte(k)))
	}
}

// Operation describes one unit of work. Constructed once during meta-data
// parsing, immutable thereafter, consumed exactly once by the engine.
type Operation struct {
	Kind      OpKind // what this operation does
	Resource  string // "start", "end", "run", "hard drive", "keyboard", "monitor", "printer"
	Cycles    int    // raw cost from the meta-data file
	CycleTime int    // milliseconds per cycle, looked up from configuration
}

// Duration returns the wall-clock cost of the operation.
func (op Operation) Duration() time.Duration {
	return time.Duration(op.Cycles*op.CycleTime) * time.Millisecond
}

// This method returns a human-readable string representation of an Operation.
func (op Operation) String() string {
	return fmt.Sprintf("%c(%s)%d@%dms", byte(op.Kind), op.Resource, op.Cycles, op.CycleTime)
}
