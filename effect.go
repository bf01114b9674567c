package desim

import "fmt"

// EffectKind identifies which instruction an Effect carries.
//
// Effect is a closed sum: exactly one EffectKind is active per value,
// and the engine's dispatch switch in [Simulation.Step] is exhaustive
// over this type.
type EffectKind int32

const (
	// EffectTimeout resumes the yielding process at now+Dt.
	EffectTimeout EffectKind = iota
	// EffectScheduleEvent schedules Target to resume at now+Dt.
	EffectScheduleEvent
	// EffectRequest attempts to acquire Resource.
	EffectRequest
	// EffectRelease releases Resource.
	EffectRelease
	// EffectWait suspends the process with no scheduled wake-up.
	EffectWait
	// EffectTrace logs the yield and resumes immediately at the same instant.
	EffectTrace
	// EffectPush deposits Value into the store Resource.
	EffectPush
	// EffectPop retrieves a value from the store Resource.
	EffectPop
)

// String implements fmt.Stringer.
func (k EffectKind) String() string {
	switch k {
	case EffectTimeout:
		return "Timeout"
	case EffectScheduleEvent:
		return "ScheduleEvent"
	case EffectRequest:
		return "Request"
	case EffectRelease:
		return "Release"
	case EffectWait:
		return "Wait"
	case EffectTrace:
		return "Trace"
	case EffectPush:
		return "Push"
	case EffectPop:
		return "Pop"
	default:
		return fmt.Sprintf("EffectKind(%d)", int32(k))
	}
}

// Effect is the instruction a process yields to the engine, embedded in
// the process's state carrier. Only the fields relevant to Kind are
// read by the engine; the others are ignored.
type Effect struct {
	Kind EffectKind

	// Dt is the relative delay for EffectTimeout and EffectScheduleEvent.
	// Must be >= 0.
	Dt float64

	// Target is the process resumed by EffectScheduleEvent. Zero value
	// (ProcessID(0)) is a valid process id, so EffectScheduleEvent must
	// always be constructed explicitly rather than relying on a zero Effect.
	Target ProcessID

	// Resource is the resource addressed by EffectRequest, EffectRelease,
	// EffectPush and EffectPop.
	Resource ResourceID

	// Value is the payload for EffectPush; ignored otherwise. It is
	// stored as any so application Store value types need not be known
	// to the Effect type itself.
	Value any
}

// Timeout returns an Effect that resumes the yielding process at now+dt.
func Timeout(dt float64) Effect {
	return Effect{Kind: EffectTimeout, Dt: dt}
}

// ScheduleEvent returns an Effect that schedules target to resume at now+dt.
func ScheduleEvent(dt float64, target ProcessID) Effect {
	return Effect{Kind: EffectScheduleEvent, Dt: dt, Target: target}
}

// Request returns an Effect that attempts to acquire resource r.
func Request(r ResourceID) Effect {
	return Effect{Kind: EffectRequest, Resource: r}
}

// Release returns an Effect that releases resource r.
func Release(r ResourceID) Effect {
	return Effect{Kind: EffectRelease, Resource: r}
}

// Wait returns an Effect that suspends the process until some other
// event is scheduled against it.
func Wait() Effect {
	return Effect{Kind: EffectWait}
}

// TraceEffect returns an Effect that logs the yield and resumes the
// process immediately at the same simulation instant.
func TraceEffect() Effect {
	return Effect{Kind: EffectTrace}
}

// Push returns an Effect that deposits v into the store resource s.
func Push(s ResourceID, v any) Effect {
	return Effect{Kind: EffectPush, Resource: s, Value: v}
}

// Pop returns an Effect that retrieves a value from the store resource s.
func Pop(s ResourceID) Effect {
	return Effect{Kind: EffectPop, Resource: s}
}
