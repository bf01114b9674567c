package desim

import (
	"container/heap"
	"math"
)

// eventHeap is a min-heap of events keyed by (Time, seq) ascending,
// directly grounded on eventloop.timerHeap's container/heap.Interface
// implementation, generalized with a tie-break sequence field so two
// events sharing a Time are popped in enqueue order (spec §4.7).
type eventHeap[T SimState] []Event[T]

func (h eventHeap[T]) Len() int { return len(h) }

func (h eventHeap[T]) Less(i, j int) bool {
	if math.IsNaN(h[i].Time) || math.IsNaN(h[j].Time) {
		panic(&NaNTimeError{Context: "event queue comparison"})
	}
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap[T]) Push(x any) {
	*h = append(*h, x.(Event[T]))
}

func (h *eventHeap[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = Event[T]{}
	*h = old[:n-1]
	return x
}

// eventQueue wraps eventHeap with the monotonic insertion-sequence
// counter, so callers never have to manage seq themselves.
type eventQueue[T SimState] struct {
	heap    eventHeap[T]
	nextSeq uint64
}

func newEventQueue[T SimState]() *eventQueue[T] {
	return &eventQueue[T]{heap: make(eventHeap[T], 0, 16)}
}

// Push enqueues an event, assigning it the next insertion sequence
// number for FIFO tie-breaking.
func (q *eventQueue[T]) Push(e Event[T]) {
	if math.IsNaN(e.Time) {
		panic(&NaNTimeError{Context: "schedule"})
	}
	e.seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.heap, e)
}

// Pop removes and returns the earliest event. ok is false if the queue
// is empty.
func (q *eventQueue[T]) Pop() (Event[T], bool) {
	if q.heap.Len() == 0 {
		return Event[T]{}, false
	}
	e := heap.Pop(&q.heap).(Event[T])
	return e, true
}

// Len returns the number of queued events.
func (q *eventQueue[T]) Len() int { return q.heap.Len() }
