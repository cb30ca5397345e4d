// Implements the two scheduling policies. A Scheduler owns the ready set and
// decides which Program the run loop hands to the execution engine next.

package sim

import (
	"container/heap"
	"fmt"
)

// Scheduler orders the loaded programs under one policy.
// Both implemented policies are non-preemptive: a selected program is driven
// to completion before SelectNext is called again, and is never re-enqueued.
type Scheduler interface {
	// Prepare moves every program from Start to Ready and builds the
	// ready set. Called exactly once, before the first selection.
	Prepare(programs []*Program)
	// SelectNext returns the next program to run, marking it Running and
	// assigning its id on first selection. ok is false when the ready set
	// is exhausted.
	SelectNext() (p *Program, ok bool)
}

// validSchedulingCodes maps accepted configuration scheduling codes.
// "SJF" and "SRTF-N" are aliases: the original tool labels the policy SRTF
// but its ranking key is the fixed load-time burst total, which is
// shortest-job-first ordering. The code names are kept for config
// compatibility; the type name says what the policy actually does.
var validSchedulingCodes = map[string]bool{
	"FIFO":   true,
	"SJF":    true,
	"SRTF-N": true,
}

// IsValidSchedulingCode returns true if code is a recognized scheduling code.
func IsValidSchedulingCode(code string) bool {
	return validSchedulingCodes[code]
}

// NewScheduler creates a Scheduler by configuration code.
// Valid codes: "FIFO", "SJF", "SRTF-N" (the latter two select the same
// non-preemptive shortest-total-burst policy).
// Panics on unrecognized codes; Config.Validate rejects them upstream.
func NewScheduler(code string) Scheduler {
	switch code {
	case "FIFO":
		return &FIFOScheduler{}
	case "SJF", "SRTF-N":
		return &ShortestBurstScheduler{}
	default:
		panic(fmt.Sprintf("unknown scheduling code %q", code))
	}
}

// assignID gives p its stable id at first selection. Idempotent: a program
// that already has an id keeps it.
func assignID(p *Program, counter *int) {
	if p.ID == 0 {
		*counter++
		p.ID = *counter
	}
}

// FIFOScheduler selects programs in strict arrival order.
type FIFOScheduler struct {
	ready   []*Program
	next    int
	counter int
}

func (s *FIFOScheduler) Prepare(programs []*Program) {
	s.ready = programs
	for _, p := range programs {
		p.State = StateReady
	}
}

func (s *FIFOScheduler) SelectNext() (*Program, bool) {
	if s.next >= len(s.ready) {
		return nil, false
	}
	p := s.ready[s.next]
	s.next++
	assignID(p, &s.counter)
	p.State = StateRunning
	return p, true
}

// ShortestBurstScheduler selects the ready program with the smallest
// TotalBurst. Ties resolve by enqueue order (stable priority queue), so two
// equal-burst programs start in their arrival order.
type ShortestBurstScheduler struct {
	ready   burstHeap
	counter int
}

func (s *ShortestBurstScheduler) Prepare(programs []*Program) {
	for _, p := range programs {
		p.State = StateReady
		heap.Push(&s.ready, p)
	}
}

func (s *ShortestBurstScheduler) SelectNext() (*Program, bool) {
	if s.ready.Len() == 0 {
		return nil, false
	}
	p := heap.Pop(&s.ready).(*Program)
	assignID(p, &s.counter)
	p.State = StateRunning
	return p, true
}

// burstHeap implements heap.Interface ordering programs by TotalBurst
// ascending, with an insertion sequence number as the tie-break.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type burstHeap struct {
	items []burstItem
	seq   int
}

type burstItem struct {
	program *Program
	seq     int
}

func (h burstHeap) Len() int { return len(h.items) }

func (h burstHeap) Less(i, j int) bool {
	if h.items[i].program.TotalBurst != h.items[j].program.TotalBurst {
		return h.items[i].program.TotalBurst < h.items[j].program.TotalBurst
	}
	return h.items[i].seq < h.items[j].seq
}

func (h burstHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *burstHeap) Push(x any) {
	h.items = append(h.items, burstItem{program: x.(*Program), seq: h.seq})
	h.seq++
}

func (h *burstHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[0 : n-1]
	return item.program
}
