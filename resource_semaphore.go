package desim

// Semaphore is the counting resource built-in (spec §4.5, "SimpleResource"):
// a fixed capacity, a count of currently available units, and a strict
// FIFO queue of pending requesters. Grounded on
// original_source/src/resources.rs's SimpleResource<T>.
type Semaphore[T SimState] struct {
	capacity  int
	available int
	waiters   []Event[T]
}

// NewSemaphore constructs a Semaphore with the given capacity, starting
// fully available.
func NewSemaphore[T SimState](capacity int) *Semaphore[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Semaphore[T]{capacity: capacity, available: capacity}
}

// Capacity returns the resource's total capacity.
func (s *Semaphore[T]) Capacity() int { return s.capacity }

// Available returns the number of units currently free.
func (s *Semaphore[T]) Available() int { return s.available }

// Waiting returns the number of requesters currently queued.
func (s *Semaphore[T]) Waiting() int { return len(s.waiters) }

// AcquireOrEnqueue implements Resource.
func (s *Semaphore[T]) AcquireOrEnqueue(req Event[T]) (Event[T], bool) {
	if s.available > 0 {
		s.available--
		return req, true
	}
	s.waiters = append(s.waiters, req)
	return Event[T]{}, false
}

// ReleaseAndScheduleNext implements Resource.
func (s *Semaphore[T]) ReleaseAndScheduleNext(rel Event[T]) (Event[T], bool) {
	if len(s.waiters) > 0 {
		waiter := s.waiters[0]
		s.waiters = s.waiters[1:]
		waiter.Time = rel.Time
		return waiter, true
	}
	if s.available >= s.capacity {
		panic(&OverReleaseError{Capacity: s.capacity})
	}
	s.available++
	return Event[T]{}, false
}
