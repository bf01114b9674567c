package desim

import (
	"fmt"
	"math"
)

// Simulation is the top-level discrete-event engine: simulated time, the
// step counter, the event queue, the process registry, the resource
// table, and the trace (spec §2 item 7). The zero value is not usable;
// construct with [NewSimulation].
type Simulation[T SimState] struct {
	now   Time
	steps uint64

	queue    *eventQueue[T]
	registry *registry[T]
	resources []Resource[T]
	trace    *trace[T]

	logger Logger
	onStep func(Event[T], T)

	halted  bool
	haltErr error
}

// NewSimulation constructs an empty simulation at time 0, applying opts.
func NewSimulation[T SimState](opts ...Option[T]) *Simulation[T] {
	cfg := resolveOptions(opts)
	return &Simulation[T]{
		queue:    newEventQueue[T](),
		registry: newRegistry[T](),
		trace:    newTrace[T](cfg.traceCapacity),
		logger:   cfg.logger,
		onStep:   cfg.onStep,
	}
}

// Time returns the current simulation time.
func (s *Simulation[T]) Time() Time { return s.now }

// CreateProcess registers body as a new process and returns its
// ProcessID. The first process created is ProcessID(0).
func (s *Simulation[T]) CreateProcess(body ProcessBody[T]) ProcessID {
	return s.registry.add(startProcess[T](body))
}

// CreateResource registers r and returns its ResourceID. The first
// resource created is ResourceID(0).
func (s *Simulation[T]) CreateResource(r Resource[T]) ResourceID {
	id := ResourceID(len(s.resources))
	s.resources = append(s.resources, r)
	return id
}

// ScheduleEvent inserts an event at absolute time t targeting process p,
// carrying state st. Unlike Effect.Timeout/ScheduleEvent's dt fields,
// t is an absolute simulation instant (spec §6, §9).
func (s *Simulation[T]) ScheduleEvent(t Time, p ProcessID, st T) error {
	if s.halted {
		return ErrLoopTerminated
	}
	if math.IsNaN(t) {
		return &NaNTimeError{Context: "schedule_event"}
	}
	if !s.registry.exists(p) {
		return &UnknownProcessError{Process: p}
	}
	s.queue.Push(Event[T]{Time: t, Process: p, State: st})
	return nil
}

// Step advances the simulation by exactly one event, or does nothing if
// the queue is empty. A non-nil error means a fatal programming error
// was detected; the simulation is halted and every subsequent call
// returns the same error (ProcessedEvents remains valid, per spec §7).
func (s *Simulation[T]) Step() error {
	if s.halted {
		return s.haltErr
	}
	if err := s.step(); err != nil {
		s.halted = true
		s.haltErr = err
		s.logger.Log(LogEntry{Level: LevelError, Op: "step", Time: s.now, Message: "simulation halted", Err: err})
		return err
	}
	return nil
}

func (s *Simulation[T]) step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fatalFromPanic("step", r)
		}
	}()

	e, ok := s.queue.Pop()
	if !ok {
		return nil
	}
	if e.Time < s.now {
		panic(fmt.Errorf("event time %g precedes current time %g", e.Time, s.now))
	}
	s.now = e.Time

	h, live := s.registry.get(e.Process)
	if !live {
		if s.registry.isCompleted(e.Process) {
			panic(&TombstoneResumeError{Process: e.Process})
		}
		panic(&UnknownProcessError{Process: e.Process})
	}

	yielded, completed, panicVal := h.resume(s.now, e.State)
	if panicVal != nil {
		s.registry.tombstone(e.Process)
		panic(&PanicError{Process: e.Process, Value: panicVal})
	}
	if completed {
		s.registry.tombstone(e.Process)
		s.steps++
		if s.onStep != nil {
			var zero T
			s.onStep(e, zero)
		}
		return nil
	}

	sOut := yielded
	eff := sOut.Effect()

	// Log first, then act: a Request must be recorded before the
	// resulting "acquired" resumption it may synthesize (spec §4.3 step 7).
	if sOut.ShouldLog() {
		s.trace.record(e, sOut)
	}

	s.dispatch(e, sOut, eff)

	s.steps++
	if s.onStep != nil {
		s.onStep(e, sOut)
	}
	return nil
}

// dispatch acts on the effect a process yielded (spec §4.4-4.6). Fatal
// conditions panic; the caller's recover converts them into a *FatalError.
func (s *Simulation[T]) dispatch(e Event[T], sOut T, eff Effect) {
	switch eff.Kind {
	case EffectTimeout:
		if eff.Dt < 0 {
			panic(&NegativeTimeoutError{Process: e.Process, Dt: eff.Dt})
		}
		s.queue.Push(Event[T]{Time: s.now + eff.Dt, Process: e.Process, State: sOut})

	case EffectScheduleEvent:
		s.queue.Push(Event[T]{Time: s.now + eff.Dt, Process: eff.Target, State: sOut})

	case EffectRequest:
		res := s.mustResource(eff.Resource)
		req := Event[T]{Time: s.now, Process: e.Process, State: sOut}
		if granted, ok := res.AcquireOrEnqueue(req); ok {
			s.queue.Push(granted)
		}
		s.drainResource(res)

	case EffectRelease:
		res := s.mustResource(eff.Resource)
		rel := Event[T]{Time: s.now, Process: e.Process, State: sOut}
		if woke, ok := s.releaseAndScheduleNext(eff.Resource, res, rel); ok {
			s.queue.Push(woke)
		}
		// The releaser itself resumes immediately at now, after handoff.
		s.queue.Push(rel)
		s.drainResource(res)

	case EffectWait:
		// Dormant until some other event is scheduled against this process.

	case EffectTrace:
		s.queue.Push(Event[T]{Time: s.now, Process: e.Process, State: sOut})

	case EffectPush:
		res := s.mustResource(eff.Resource)
		rel := Event[T]{Time: s.now, Process: e.Process, State: sOut}
		woke, ok := s.releaseAndScheduleNext(eff.Resource, res, rel)
		if ok {
			s.queue.Push(woke)
		}
		// Push is routed release-style (spec §4.4, §4.6) in two of its
		// three branches: handed off to a waiting consumer, or buffered
		// with room to spare, either way the producer resumes immediately
		// at now. The third branch (buffer full, no consumer) blocks the
		// producer instead, per §4.6's "enqueue the producer as waiting" —
		// so only re-enqueue rel when the resource didn't just park it.
		if !s.producerBlocked(res) {
			s.queue.Push(rel)
		}
		s.drainResource(res)

	case EffectPop:
		res := s.mustResource(eff.Resource)
		req := Event[T]{Time: s.now, Process: e.Process, State: sOut}
		if granted, ok := res.AcquireOrEnqueue(req); ok {
			s.queue.Push(granted)
		}
		s.drainResource(res)

	default:
		panic(fmt.Errorf("unhandled effect kind %v", eff.Kind))
	}
}

// releaseAndScheduleNext calls res.ReleaseAndScheduleNext, enriching any
// *OverReleaseError panic with the resource id (the resource itself has
// no notion of its own ResourceID).
func (s *Simulation[T]) releaseAndScheduleNext(id ResourceID, res Resource[T], rel Event[T]) (woke Event[T], ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if ore, isOverRelease := r.(*OverReleaseError); isOverRelease {
				ore.Resource = id
			}
			panic(r)
		}
	}()
	return res.ReleaseAndScheduleNext(rel)
}

// PendingDrainer is an optional extension a Resource may implement to
// emit further resumptions from a single Push/Pop/Request/Release call
// (see [Store], and ratelimit.Resource in the ratelimit subpackage).
// Exported so resources defined outside this package can implement it.
type PendingDrainer[T SimState] interface {
	DrainPending() []Event[T]
}

func (s *Simulation[T]) drainResource(res Resource[T]) {
	pd, ok := res.(PendingDrainer[T])
	if !ok {
		return
	}
	for _, e := range pd.DrainPending() {
		s.queue.Push(e)
	}
}

// ProducerBlocker is an optional extension a Resource may implement to
// tell the engine that its most recent ReleaseAndScheduleNext (Push)
// call parked the caller instead of resuming it immediately (see
// [Store]'s full-buffer, no-consumer branch in spec §4.6). A resource
// that never blocks a Push — or is never used for Push at all — need
// not implement this; absence is treated as "not blocked".
type ProducerBlocker[T SimState] interface {
	ProducerBlocked() bool
}

func (s *Simulation[T]) producerBlocked(res Resource[T]) bool {
	pb, ok := res.(ProducerBlocker[T])
	return ok && pb.ProducerBlocked()
}

func (s *Simulation[T]) mustResource(id ResourceID) Resource[T] {
	if int(id) < 0 || int(id) >= len(s.resources) {
		panic(&UnknownResourceError{Resource: id})
	}
	return s.resources[id]
}

// Run steps the simulation until end is satisfied, or the queue runs dry
// (no further progress is possible regardless of end's kind), or a
// fatal error occurs.
func (s *Simulation[T]) Run(end EndCondition[T]) error {
	for {
		if end.satisfied(s.now, s.steps, s.queue.Len()) {
			return nil
		}
		if s.queue.Len() == 0 {
			return nil
		}
		if err := s.Step(); err != nil {
			return err
		}
	}
}

// QueueLen returns the number of events currently queued.
func (s *Simulation[T]) QueueLen() int { return s.queue.Len() }

// TraceLen returns the number of entries currently recorded in the trace.
func (s *Simulation[T]) TraceLen() int { return len(s.trace.entries) }

// ProcessedEvents returns the trace accumulated so far: every (event,
// yielded state) pair for which the yielded state's ShouldLog() was
// true at the moment of yield, in yield order. Valid even after a
// fatal error halts the simulation.
func (s *Simulation[T]) ProcessedEvents() []TraceEntry[T] {
	return s.trace.snapshot()
}

func fatalFromPanic(op string, r any) error {
	if err, ok := r.(error); ok {
		return &FatalError{Op: op, Cause: err}
	}
	return &FatalError{Op: op, Cause: fmt.Errorf("%v", r)}
}
