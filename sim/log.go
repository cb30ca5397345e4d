// The event log sink. Every scheduler decision and operation start/end is a
// single line of the form "<elapsed seconds> - <message>", written to the
// screen, a log file, or both.

package sim

import (
	"fmt"
	"io"
	"sync"
)

// LogLocation selects where event log lines are rendered.
type LogLocation string

const (
	LogToScreen LogLocation = "screen"
	LogToFile   LogLocation = "file"
	LogToBoth   LogLocation = "both"
)

// DefaultPrecision is the number of fractional digits in the elapsed-seconds
// prefix, matching the original tool's output.
const DefaultPrecision = 6

// EventLog timestamps messages against a Clock and writes them to its
// destination writers. Precision is an explicit field rather than
// process-wide formatting state.
//
// Writes are mutex-guarded: I/O operation brackets are emitted from the
// engine's I/O goroutine.
type EventLog struct {
	mu        sync.Mutex
	clock     *Clock
	dests     []io.Writer
	precision int
}

// NewEventLog creates an EventLog writing to the given destinations with the
// given fractional-seconds precision.
func NewEventLog(clock *Clock, precision int, dests ...io.Writer) *EventLog {
	return &EventLog{clock: clock, dests: dests, precision: precision}
}

// Printf records one event line with the current elapsed time.
func (l *EventLog) Printf(format string, args ...any) {
	elapsed := l.clock.Elapsed().Seconds()
	line := fmt.Sprintf("%.*f - %s\n", l.precision, elapsed, fmt.Sprintf(format, args...))
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.dests {
		io.WriteString(w, line)
	}
}
