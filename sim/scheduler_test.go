package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// burstProgram builds a program whose TotalBurst is exactly d.
func burstProgram(d time.Duration) *Program {
	p := NewProgram()
	p.Enqueue(Operation{Kind: KindProcessing, Resource: "run", Cycles: int(d.Milliseconds()), CycleTime: 1})
	return p
}

func selectionOrder(t *testing.T, s Scheduler, programs []*Program) []*Program {
	t.Helper()
	s.Prepare(programs)
	var order []*Program
	for {
		p, ok := s.SelectNext()
		if !ok {
			return order
		}
		order = append(order, p)
	}
}

func TestFIFOScheduler_ArrivalOrderAndIDs(t *testing.T) {
	a, b, c := burstProgram(200*time.Millisecond), burstProgram(50*time.Millisecond), burstProgram(100*time.Millisecond)
	order := selectionOrder(t, &FIFOScheduler{}, []*Program{a, b, c})

	require.Len(t, order, 3)
	assert.Equal(t, []*Program{a, b, c}, order)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 3, c.ID)
}

func TestShortestBurstScheduler_OrdersByTotalBurst(t *testing.T) {
	a, b, c := burstProgram(200*time.Millisecond), burstProgram(50*time.Millisecond), burstProgram(100*time.Millisecond)
	order := selectionOrder(t, &ShortestBurstScheduler{}, []*Program{a, b, c})

	require.Len(t, order, 3)
	assert.Equal(t, []*Program{b, c, a}, order)
	// IDs follow selection order, not arrival order
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, 2, c.ID)
	assert.Equal(t, 3, a.ID)
}

func TestShortestBurstScheduler_EqualBurstsAreStable(t *testing.T) {
	// Equal keys resolve by enqueue order
	first := burstProgram(80 * time.Millisecond)
	second := burstProgram(80 * time.Millisecond)
	third := burstProgram(80 * time.Millisecond)
	order := selectionOrder(t, &ShortestBurstScheduler{}, []*Program{first, second, third})

	assert.Equal(t, []*Program{first, second, third}, order)
}

func TestScheduler_StateTransitions(t *testing.T) {
	p := burstProgram(10 * time.Millisecond)
	require.Equal(t, StateStart, p.State)

	sched := &FIFOScheduler{}
	sched.Prepare([]*Program{p})
	assert.Equal(t, StateReady, p.State)

	got, ok := sched.SelectNext()
	require.True(t, ok)
	assert.Same(t, p, got)
	assert.Equal(t, StateRunning, p.State)

	_, ok = sched.SelectNext()
	assert.False(t, ok)
}

func TestScheduler_IDAssignmentIsIdempotent(t *testing.T) {
	p := burstProgram(10 * time.Millisecond)
	p.ID = 7 // already selected elsewhere
	counter := 3
	assignID(p, &counter)
	assert.Equal(t, 7, p.ID)
	assert.Equal(t, 3, counter)
}

func TestScheduler_EmptyProgramSet(t *testing.T) {
	for _, code := range []string{"FIFO", "SJF"} {
		sched := NewScheduler(code)
		sched.Prepare(nil)
		_, ok := sched.SelectNext()
		assert.False(t, ok, "scheduler %s should be empty", code)
	}
}

func TestNewScheduler_CodeMapping(t *testing.T) {
	assert.IsType(t, &FIFOScheduler{}, NewScheduler("FIFO"))
	assert.IsType(t, &ShortestBurstScheduler{}, NewScheduler("SJF"))
	assert.IsType(t, &ShortestBurstScheduler{}, NewScheduler("SRTF-N"))
	assert.Panics(t, func() { NewScheduler("RR") })
}

func TestIsValidSchedulingCode(t *testing.T) {
	for _, code := range []string{"FIFO", "SJF", "SRTF-N"} {
		assert.True(t, IsValidSchedulingCode(code))
	}
	assert.False(t, IsValidSchedulingCode("fifo"))
	assert.False(t, IsValidSchedulingCode(""))
}
