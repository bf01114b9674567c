package desim

// ProcessID opaquely identifies a process activation. Assigned
// sequentially starting at 0; never reused within a Simulation's
// lifetime.
type ProcessID uint64

// ResourceID opaquely identifies a resource. Assigned sequentially
// starting at 0; never reused.
type ResourceID uint64

// Time is simulated time: a real scalar supporting total ordering.
// NaN is a programming error and is fatal wherever it is compared.
type Time = float64

// Event is an atom on the timeline: a process resumption scheduled for
// a given simulation instant, carrying the state the process will see
// in its next [Context]. Events are immutable once queued, except for
// Time, which a resource handoff may rewrite to now (see
// [Resource.ReleaseAndScheduleNext]).
type Event[T SimState] struct {
	Time    Time
	Process ProcessID
	State   T

	// seq breaks ties between events with equal Time: the event pushed
	// earlier into the queue is popped first. Unexported: only the
	// queue assigns it, at push time.
	seq uint64
}

// TraceEntry pairs the event that triggered a resume (carrying the
// state the process was resumed with) with the state it subsequently
// yielded. Logged when the yielded state's ShouldLog() was true at the
// moment of yield (see spec step "log first, then act").
type TraceEntry[T SimState] struct {
	Event   Event[T]
	Yielded T
}
