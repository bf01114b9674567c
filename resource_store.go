package desim

// valueCarrier lets a [Store] attach a popped value to a process's state
// carrier without reflection; a pushed value travels in the Effect's
// Value field instead. Spec §4.6
// calls for "a single deliver(state, outcome) function on the carrier";
// this is that function's Go shape, split into a getter/setter pair.
type valueCarrier[V any] interface {
	SetValue(v V)
	Value() V
}

// StoreCarrier is the state-carrier constraint required by [Store]: a
// SimState that can also round-trip a V payload.
type StoreCarrier[V any] interface {
	SimState
	valueCarrier[V]
}

// StoreState is a ready-made StoreCarrier for applications with no other
// domain data to piggyback, mirroring [EffectState] but for store
// payloads of type V.
type StoreState[V any] struct {
	EffectState
	Val V
}

// NewStoreState builds a *StoreState[V] carrying effect e, not logged.
func NewStoreState[V any](e Effect) *StoreState[V] {
	return &StoreState[V]{EffectState: EffectState{Eff: e}}
}

// Value implements valueCarrier.
func (s *StoreState[V]) Value() V { return s.Val }

// SetValue implements valueCarrier.
func (s *StoreState[V]) SetValue(v V) { s.Val = v }

// storeWaiter pairs a blocked producer's event with the value it tried
// to push, so it can be replayed once buffer space frees up.
type storeWaiter[T SimState, V any] struct {
	event Event[T]
	value V
}

// Store is the bounded-queue-of-values built-in (spec §4.6): a FIFO
// buffer of values with a capacity, plus FIFO wait queues for blocked
// consumers (Pop when empty) and blocked producers (Push when full).
// No direct original_source/src/resources.rs counterpart exists (that
// revision only has SimpleResource); Store follows spec §4.6's
// acquire/release framing directly, using the same FIFO-queue shape as
// [Semaphore].
type Store[T StoreCarrier[V], V any] struct {
	capacity  int
	buffer    []V
	consumers []Event[T]
	producers []storeWaiter[T, V]

	// pending holds a second resumption a single Pop may produce
	// (spec §4.6: a Pop that drains a waiting producer's value into the
	// buffer must also resume that producer). Drained by the engine via
	// DrainPending after the primary return value is enqueued; this
	// keeps the two-method Resource contract unchanged for every other
	// resource kind while letting Store emit its second wakeup.
	pending []Event[T]

	// lastPushBlocked records whether the most recent ReleaseAndScheduleNext
	// (Push) call parked the producer rather than resuming it (spec §4.6's
	// third branch: "enqueue the producer as waiting; return None"). Read
	// by the engine via ProducerBlocked immediately after the call.
	lastPushBlocked bool
}

// NewStore constructs an empty Store of the given buffer capacity.
func NewStore[T StoreCarrier[V], V any](capacity int) *Store[T, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Store[T, V]{capacity: capacity}
}

// Capacity returns the store's buffer capacity.
func (st *Store[T, V]) Capacity() int { return st.capacity }

// Buffered returns the number of values currently held in the buffer.
func (st *Store[T, V]) Buffered() int { return len(st.buffer) }

// AcquireOrEnqueue implements Resource, handling Pop.
func (st *Store[T, V]) AcquireOrEnqueue(req Event[T]) (Event[T], bool) {
	if len(st.buffer) == 0 {
		st.consumers = append(st.consumers, req)
		return Event[T]{}, false
	}

	v := st.buffer[0]
	st.buffer = st.buffer[1:]
	req.State.SetValue(v)

	if len(st.producers) > 0 {
		p := st.producers[0]
		st.producers = st.producers[1:]
		st.buffer = append(st.buffer, p.value)
		p.event.Time = req.Time
		st.pending = append(st.pending, p.event)
	}

	return req, true
}

// ReleaseAndScheduleNext implements Resource, handling Push. Unlike a
// Semaphore release, a Push can genuinely block (spec §4.6's third
// branch: buffer full, no consumer waiting), so the caller must consult
// ProducerBlocked after this call before deciding whether the pusher
// itself resumes.
func (st *Store[T, V]) ReleaseAndScheduleNext(rel Event[T]) (Event[T], bool) {
	st.lastPushBlocked = false
	v, _ := rel.State.Effect().Value.(V)

	if len(st.consumers) > 0 {
		consumer := st.consumers[0]
		st.consumers = st.consumers[1:]
		consumer.Time = rel.Time
		consumer.State.SetValue(v)
		return consumer, true
	}

	if len(st.buffer) < st.capacity {
		st.buffer = append(st.buffer, v)
		return Event[T]{}, false
	}

	st.producers = append(st.producers, storeWaiter[T, V]{event: rel, value: v})
	st.lastPushBlocked = true
	return Event[T]{}, false
}

// ProducerBlocked implements desim.ProducerBlocker: true if the most
// recent Push call parked the producer in the wait queue instead of
// resuming it immediately.
func (st *Store[T, V]) ProducerBlocked() bool { return st.lastPushBlocked }

// DrainPending implements desim.PendingDrainer: it returns and clears any
// producer resumption queued by a Pop, consumed by the engine's dispatch.
func (st *Store[T, V]) DrainPending() []Event[T] {
	if len(st.pending) == 0 {
		return nil
	}
	out := st.pending
	st.pending = nil
	return out
}
