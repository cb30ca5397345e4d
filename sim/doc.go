// Package sim provides the core discrete-event engine of the OS process
// scheduler simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - program.go: Program lifecycle (start → ready → running → exit) and its operation queue
//   - scheduler.go: the FIFO and shortest-total-burst selection policies
//   - simulator.go: the run loop driving prepare → select → execute to completion
//
// # Architecture
//
// One Simulator owns one Clock, one EventLog, one Scheduler, and one Engine.
// Configuration (config.go) and meta-data (metadata.go) loading produce the
// Config record and the ordered program list the Simulator consumes; both are
// collaborators of the core, not part of the scheduling semantics.
//
// The engine emulates CPU bursts with a blocking wait on the calling
// goroutine and I/O bursts with a wait on a spawned goroutine that is joined
// before the next operation, so visible behavior is strictly sequential: at
// most one program is running, and its operation start/end log lines never
// interleave with another program's.
package sim
