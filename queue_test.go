package desim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueOrdersByTime(t *testing.T) {
	q := newEventQueue[*EffectState]()
	q.Push(Event[*EffectState]{Time: 5})
	q.Push(Event[*EffectState]{Time: 1})
	q.Push(Event[*EffectState]{Time: 3})

	var times []Time
	for q.Len() > 0 {
		e, ok := q.Pop()
		require.True(t, ok)
		times = append(times, e.Time)
	}
	assert.Equal(t, []Time{1, 3, 5}, times)
}

func TestEventQueueBreaksTiesByInsertionOrder(t *testing.T) {
	q := newEventQueue[*EffectState]()
	q.Push(Event[*EffectState]{Time: 2, Process: ProcessID(1)})
	q.Push(Event[*EffectState]{Time: 2, Process: ProcessID(2)})
	q.Push(Event[*EffectState]{Time: 2, Process: ProcessID(3)})

	var procs []ProcessID
	for q.Len() > 0 {
		e, _ := q.Pop()
		procs = append(procs, e.Process)
	}
	assert.Equal(t, []ProcessID{1, 2, 3}, procs)
}

func TestEventQueuePopEmpty(t *testing.T) {
	q := newEventQueue[*EffectState]()
	_, ok := q.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestEventQueuePushNaNPanics(t *testing.T) {
	q := newEventQueue[*EffectState]()
	assert.Panics(t, func() {
		q.Push(Event[*EffectState]{Time: math.NaN()})
	})
}

func TestEventQueueCompareNaNPanics(t *testing.T) {
	h := eventHeap[*EffectState]{
		{Time: math.NaN()},
		{Time: 1},
	}
	assert.Panics(t, func() {
		_ = h.Less(0, 1)
	})
}
