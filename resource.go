package desim

// Resource mediates shared, capacity-limited access among processes.
// Every resource kind — counting semaphore, bounded store, or a
// domain-specific variant such as desim/ratelimit's limiter-backed
// resource — implements exactly these two operations; the engine holds
// them by interface value, no downcasting required (spec §4.4, §9
// "Resource polymorphism").
//
// Both methods run to completion synchronously inside [Simulation.Step];
// implementations must not block. The returned event wakes at most one
// waiter; a resource that wakes further processes from the same call
// (such as [Store] or desim/ratelimit's resource) hands them over
// through the optional [PendingDrainer] extension.
type Resource[T SimState] interface {
	// AcquireOrEnqueue handles a Request or Pop. It returns the request
	// event unchanged with ok=true if granted immediately, or ok=false
	// if the requester was buffered to resume later.
	AcquireOrEnqueue(req Event[T]) (Event[T], bool)

	// ReleaseAndScheduleNext handles a Release or Push. It returns the
	// woken waiter's event (with Time rewritten to rel.Time) and ok=true
	// if a waiter existed, or ok=false if the resource only updated its
	// own free-count/buffer state.
	ReleaseAndScheduleNext(rel Event[T]) (Event[T], bool)
}
