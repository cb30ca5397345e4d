package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationDuration(t *testing.T) {
	op := Operation{Kind: KindProcessing, Resource: "run", Cycles: 14, CycleTime: 10}
	assert.Equal(t, 140*time.Millisecond, op.Duration())

	zero := Operation{Kind: KindBoundary, Resource: "start"}
	assert.Equal(t, time.Duration(0), zero.Duration())
}

func TestParseOpKind(t *testing.T) {
	for tag, want := range map[byte]OpKind{
		'S': KindOS, 'A': KindBoundary, 'P': KindProcessing, 'I': KindInput, 'O': KindOutput,
	} {
		got, err := ParseOpKind(tag)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseOpKind('X')
	assert.ErrorIs(t, err, ErrBadOperation)
}

func TestProgram_FIFOConsumption(t *testing.T) {
	p := NewProgram()
	first := Operation{Kind: KindProcessing, Resource: "run", Cycles: 1, CycleTime: 10}
	second := Operation{Kind: KindInput, Resource: "keyboard", Cycles: 2, CycleTime: 50}
	p.Enqueue(first)
	p.Enqueue(second)

	require.Equal(t, 2, p.Remaining())
	got, ok := p.Dequeue()
	require.True(t, ok)
	assert.Equal(t, first, got)
	got, ok = p.Dequeue()
	require.True(t, ok)
	assert.Equal(t, second, got)

	_, ok = p.Dequeue()
	assert.False(t, ok)
}

func TestProgram_TotalBurstAccumulates(t *testing.T) {
	p := NewProgram()
	p.Enqueue(boundaryOp("start"))
	p.Enqueue(Operation{Kind: KindProcessing, Resource: "run", Cycles: 14, CycleTime: 10})   // 140ms
	p.Enqueue(Operation{Kind: KindInput, Resource: "hard drive", Cycles: 10, CycleTime: 15}) // 150ms
	p.Enqueue(boundaryOp("end"))

	assert.Equal(t, 290*time.Millisecond, p.TotalBurst)

	// consuming operations does not change the ranking key
	p.Dequeue()
	p.Dequeue()
	assert.Equal(t, 290*time.Millisecond, p.TotalBurst)
}
