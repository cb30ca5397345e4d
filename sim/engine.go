// The execution engine: consumes a selected Program's operations one at a
// time, emulating CPU bursts with a blocking wait and I/O bursts with a
// joined goroutine, and bracketing every action with event log lines.

package sim

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Engine runs one Program to completion per call.
//
// The sleep function is the wait primitive for burst emulation; it defaults
// to time.Sleep and is injectable so tests can run without real delays.
type Engine struct {
	log     *EventLog
	metrics *Metrics
	sleep   func(time.Duration)
}

// NewEngine creates an Engine emitting to log and waiting with time.Sleep.
func NewEngine(log *EventLog, metrics *Metrics) *Engine {
	return &Engine{log: log, metrics: metrics, sleep: time.Sleep}
}

// Run consumes every remaining operation of p in FIFO order. It is the
// non-preemptive per-turn unit: the run loop calls it once per selection.
//
// Returns a wrapped ErrBadOperation if an operation cannot be dispatched;
// the program's remaining operations are left unconsumed and the caller
// aborts the run.
func (e *Engine) Run(p *Program) error {
	for {
		op, ok := p.Dequeue()
		if !ok {
			return nil
		}
		logrus.Debugf("process %d: dispatching %s", p.ID, op)

		switch op.Kind {
		case KindBoundary:
			if err := e.runBoundary(op, p.ID); err != nil {
				return err
			}
		case KindProcessing:
			e.metrics.recordOperation(op)
			e.log.Printf("Process %d: start processing action", p.ID)
			e.sleep(op.Duration())
			e.log.Printf("Process %d: end processing action", p.ID)
		case KindInput, KindOutput:
			if err := e.runIO(op, p.ID); err != nil {
				return err
			}
		default:
			// Includes the 'S' sentinel, which the parser never puts in a
			// program queue. Abort rather than skip: a skipped operation
			// would corrupt the timing and ordering of everything after it.
			return fmt.Errorf("%w: kind %s in process %d", ErrBadOperation, op.Kind, p.ID)
		}
	}
}

// runBoundary handles the A(start)/A(end) markers bracketing a program.
func (e *Engine) runBoundary(op Operation, id int) error {
	switch op.Resource {
	case "start":
		e.log.Printf("OS: starting process %d", id)
	case "end":
		e.log.Printf("OS: removing process %d", id)
	default:
		return fmt.Errorf("%w: boundary marker %q in process %d", ErrBadOperation, op.Resource, id)
	}
	return nil
}

// runIO emulates one I/O burst. The wait runs on its own goroutine to mirror
// I/O being asynchronous relative to the CPU, but the engine joins it before
// returning: only the waiting happens off the calling goroutine, and the
// visible behavior is synchronous.
func (e *Engine) runIO(op Operation, id int) error {
	action, err := ioAction(op)
	if err != nil {
		return fmt.Errorf("%w: process %d", err, id)
	}
	e.metrics.recordOperation(op)
	done := make(chan struct{})
	go func() {
		defer close(done)
		e.log.Printf("Process %d: start %s", id, action)
		e.sleep(op.Duration())
		e.log.Printf("Process %d: end %s", id, action)
	}()
	<-done
	return nil
}

// ioAction maps an I/O operation to its log wording, e.g. "hard drive input"
// or "printer output".
func ioAction(op Operation) (string, error) {
	switch op.Resource {
	case "hard drive":
		if op.Kind == KindInput {
			return "hard drive input", nil
		}
		return "hard drive output", nil
	case "keyboard":
		return "keyboard input", nil
	case "monitor":
		return "monitor output", nil
	case "printer":
		return "printer output", nil
	default:
		return "", fmt.Errorf("%w: %s resource %q", ErrBadOperation, op.Kind, op.Resource)
	}
}
