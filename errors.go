// Package desim error types follow the eventloop package's pattern:
// sentinel errors for simple cases, small exported structs implementing
// error+Unwrap for errors that carry context a caller may want to
// inspect or match on with errors.As.
package desim

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQueue describes an empty event queue. Neither Step nor Run
	// returns it: Step treats an empty queue as a no-op, and Run returns
	// nil once the queue is empty.
	ErrEmptyQueue = errors.New("desim: event queue is empty")

	// ErrLoopTerminated is returned by operations attempted on a
	// Simulation that already halted on a fatal error.
	ErrLoopTerminated = errors.New("desim: simulation has halted on a fatal error")
)

// FatalError wraps a programming error detected while stepping the
// simulation (spec §7: "Programming error (fatal)"). The simulation
// halts at the step that produced it; ProcessedEvents() remains valid
// and reflects everything recorded before the failure.
type FatalError struct {
	// Op names the operation that failed; the engine sets it to "step".
	Op string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	return fmt.Sprintf("desim: fatal error during %s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/errors.As matching.
func (e *FatalError) Unwrap() error { return e.Cause }

// TombstoneResumeError is returned when the engine attempts to resume a
// process that has already completed (spec I3).
type TombstoneResumeError struct {
	Process ProcessID
}

func (e *TombstoneResumeError) Error() string {
	return fmt.Sprintf("desim: process %d has already completed and cannot be resumed", e.Process)
}

// NaNTimeError is returned when a NaN is encountered in a time
// comparison or as an event's scheduled time.
type NaNTimeError struct {
	Context string
}

func (e *NaNTimeError) Error() string {
	return fmt.Sprintf("desim: NaN simulation time encountered (%s)", e.Context)
}

// NegativeTimeoutError is returned when an EffectTimeout's Dt is negative.
type NegativeTimeoutError struct {
	Process ProcessID
	Dt      float64
}

func (e *NegativeTimeoutError) Error() string {
	return fmt.Sprintf("desim: process %d yielded Timeout(%g): dt must be >= 0", e.Process, e.Dt)
}

// OverReleaseError is returned when a counting resource's available
// count would exceed its capacity, i.e. more releases than acquisitions.
type OverReleaseError struct {
	Resource ResourceID
	Capacity int
}

func (e *OverReleaseError) Error() string {
	return fmt.Sprintf("desim: resource %d released beyond its capacity (%d)", e.Resource, e.Capacity)
}

// UnknownProcessError is returned when an operation references a
// ProcessID that was never created.
type UnknownProcessError struct {
	Process ProcessID
}

func (e *UnknownProcessError) Error() string {
	return fmt.Sprintf("desim: unknown process id %d", e.Process)
}

// UnknownResourceError is returned when an operation references a
// ResourceID that was never created.
type UnknownResourceError struct {
	Resource ResourceID
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("desim: unknown resource id %d", e.Resource)
}

// PanicError wraps a panic value recovered from a process body,
// grounded on eventloop.PanicError's recovered-panic wrapping.
type PanicError struct {
	Process ProcessID
	Value   any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("desim: process %d panicked: %v", e.Process, e.Value)
}

// Unwrap supports errors.Is/errors.As against the recovered value when
// it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
