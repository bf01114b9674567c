package desim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePopOnEmptyEnqueuesConsumer(t *testing.T) {
	st := NewStore[*StoreState[int], int](1)
	req := Event[*StoreState[int]]{Process: 1, State: NewStoreState[int](Pop(0))}

	_, ok := st.AcquireOrEnqueue(req)
	assert.False(t, ok)
	assert.Nil(t, st.DrainPending())
}

func TestStorePushFillsBufferWhenNoConsumerWaiting(t *testing.T) {
	st := NewStore[*StoreState[int], int](2)
	rel := Event[*StoreState[int]]{Process: 1, State: NewStoreState[int](Push(0, 7))}

	_, ok := st.ReleaseAndScheduleNext(rel)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Buffered())
	assert.False(t, st.ProducerBlocked(), "room in the buffer: the pusher must not block")
}

func TestStorePopDrainsBufferAndSetsValue(t *testing.T) {
	st := NewStore[*StoreState[int], int](2)
	_, _ = st.ReleaseAndScheduleNext(Event[*StoreState[int]]{Process: 1, State: NewStoreState[int](Push(0, 7))})

	req := Event[*StoreState[int]]{Process: 2, State: NewStoreState[int](Pop(0))}
	granted, ok := st.AcquireOrEnqueue(req)
	require.True(t, ok)
	assert.Equal(t, 7, granted.State.Value())
	assert.Equal(t, 0, st.Buffered())
}

func TestStorePushWakesWaitingConsumerDirectly(t *testing.T) {
	st := NewStore[*StoreState[int], int](1)
	consumerReq := Event[*StoreState[int]]{Process: 1, State: NewStoreState[int](Pop(0))}
	_, ok := st.AcquireOrEnqueue(consumerReq)
	require.False(t, ok)

	woke, ok := st.ReleaseAndScheduleNext(Event[*StoreState[int]]{Process: 2, Time: 3, State: NewStoreState[int](Push(0, 9))})
	require.True(t, ok)
	assert.Equal(t, ProcessID(1), woke.Process)
	assert.Equal(t, Time(3), woke.Time)
	assert.Equal(t, 9, woke.State.Value())
	assert.Equal(t, 0, st.Buffered())
	assert.False(t, st.ProducerBlocked(), "handed straight to a waiting consumer: the pusher must not block")
}

func TestStorePushBeyondCapacityQueuesProducer(t *testing.T) {
	st := NewStore[*StoreState[int], int](1)
	_, _ = st.ReleaseAndScheduleNext(Event[*StoreState[int]]{Process: 1, State: NewStoreState[int](Push(0, 1))})

	_, ok := st.ReleaseAndScheduleNext(Event[*StoreState[int]]{Process: 2, State: NewStoreState[int](Push(0, 2))})
	assert.False(t, ok)
	assert.Equal(t, 1, st.Buffered())
	assert.True(t, st.ProducerBlocked(), "buffer full with no consumer waiting: the pusher must block")
}

func TestStorePopDrainsWaitingProducerIntoPending(t *testing.T) {
	st := NewStore[*StoreState[int], int](1)
	_, _ = st.ReleaseAndScheduleNext(Event[*StoreState[int]]{Process: 1, State: NewStoreState[int](Push(0, 1))})
	_, ok := st.ReleaseAndScheduleNext(Event[*StoreState[int]]{Process: 2, Time: 2, State: NewStoreState[int](Push(0, 2))})
	require.False(t, ok)
	require.Equal(t, 1, st.Buffered())

	req := Event[*StoreState[int]]{Process: 3, Time: 5, State: NewStoreState[int](Pop(0))}
	granted, ok := st.AcquireOrEnqueue(req)
	require.True(t, ok)
	assert.Equal(t, 1, granted.State.Value())
	assert.Equal(t, 1, st.Buffered())

	pending := st.DrainPending()
	require.Len(t, pending, 1)
	assert.Equal(t, ProcessID(2), pending[0].Process)
	assert.Equal(t, Time(5), pending[0].Time)
	assert.Nil(t, st.DrainPending())
}
