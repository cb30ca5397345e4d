// Tracks run-wide statistics for the end-of-run report.

package sim

import (
	"fmt"
	"time"
)

// Metrics aggregates statistics about the simulated run for final reporting.
// Useful for comparing scheduler behavior across policies.
type Metrics struct {
	ProgramsCompleted  int           // programs driven to Exit
	OperationsExecuted int           // timed operations dispatched (boundaries excluded)
	CPUBusy            time.Duration // total processing-burst time
	IOWait             time.Duration // total input/output-burst time

	// Turnarounds maps process id -> selection-to-Exit elapsed time.
	Turnarounds map[int]time.Duration
}

// NewMetrics creates an empty Metrics record.
func NewMetrics() *Metrics {
	return &Metrics{Turnarounds: make(map[int]time.Duration)}
}

// recordOperation folds one dispatched operation into the totals.
func (m *Metrics) recordOperation(op Operation) {
	switch op.Kind {
	case KindProcessing:
		m.OperationsExecuted++
		m.CPUBusy += op.Duration()
	case KindInput, KindOutput:
		m.OperationsExecuted++
		m.IOWait += op.Duration()
	}
}

// recordCompletion folds one completed program into the totals.
func (m *Metrics) recordCompletion(id int, turnaround time.Duration) {
	m.ProgramsCompleted++
	m.Turnarounds[id] = turnaround
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Completed Programs   : %d\n", m.ProgramsCompleted)
	fmt.Printf("Operations Executed  : %d\n", m.OperationsExecuted)
	fmt.Printf("CPU Busy Time        : %s\n", m.CPUBusy)
	fmt.Printf("I/O Wait Time        : %s\n", m.IOWait)
	if m.ProgramsCompleted > 0 {
		var total time.Duration
		for _, t := range m.Turnarounds {
			total += t
		}
		fmt.Printf("Average Turnaround   : %s\n", total/time.Duration(m.ProgramsCompleted))
	}
}
