// Defines the Program struct that models one simulated process: a FIFO queue
// of operations plus the scheduling metadata (state, id, burst total) the
// scheduler and run loop maintain for it.

package sim

import (
	"fmt"
	"strings"
	"time"
)

// ProgramState represents the lifecycle state of a Program.
// Progression is monotonic: Start -> Ready -> Running -> Exit. The two
// non-preemptive policies never move a Running program back to Ready.
type ProgramState string

const (
	StateStart   ProgramState = "start"
	StateReady   ProgramState = "ready"
	StateRunning ProgramState = "running"
	StateExit    ProgramState = "exit"
)

// Program models one simulated process. It is a passive data holder: state
// and id transitions are applied by the Scheduler and the run loop, never by
// Program itself.
type Program struct {
	// State is the lifecycle state, owned by the Scheduler and run loop.
	State ProgramState
	// ID is 0 until the program is first selected, then stable for life.
	ID int
	// TotalBurst is the sum of all operation durations, accumulated as
	// operations are enqueued at load time. It is the shortest-burst
	// ranking key and is never recomputed as operations are consumed.
	TotalBurst time.Duration

	queue []Operation
}

// NewProgram creates an empty Program in the Start state.
func NewProgram() *Program {
	return &Program{State: StateStart}
}

// Enqueue appends an operation and folds its duration into TotalBurst.
func (p *Program) Enqueue(op Operation) {
	p.queue = append(p.queue, op)
	p.TotalBurst += op.Duration()
}

// Dequeue removes and returns the next operation in FIFO order.
// The second return is false when the queue is empty.
func (p *Program) Dequeue() (Operation, bool) {
	if len(p.queue) == 0 {
		return Operation{}, false
	}
	op := p.queue[0]
	p.queue = p.queue[1:]
	return op, true
}

// Remaining returns the number of operations not yet consumed.
func (p *Program) Remaining() int {
	return len(p.queue)
}

// This method returns a human-readable string representation of a Program.
func (p *Program) String() string {
	ops := make([]string, len(p.queue))
	for i, op := range p.queue {
		ops[i] = op.String()
	}
	return fmt.Sprintf("Program: (ID: %d, State: %s, TotalBurst: %s, Ops: [%s])",
		p.ID, p.State, p.TotalBurst, strings.Join(ops, " "))
}
