// Package ratelimit provides a [desim.Resource] backed by
// github.com/joeycumines/go-catrate's sliding-window Limiter: a third
// built-in resource kind beyond the spec's counting semaphore and
// store, gating admission by real wall-clock rate budget rather than
// simulated capacity. Useful when a simulated process fronts a
// real-world rate-limited collaborator (an external API, a shared
// downstream service) and the simulation must not out-pace what that
// collaborator actually allows.
package ratelimit

import (
	"github.com/joeycumines/go-catrate"

	"github.com/joeycumines/desim"
)

// Resource gates Request/Release through limiter for a single category.
// A Request is granted immediately if the category's rate budget allows
// it this instant (by real time, not simulated time); otherwise the
// requester is queued and released the next time any call to this
// resource finds the budget available again.
type Resource[T desim.SimState] struct {
	limiter  *catrate.Limiter
	category any

	waiters []desim.Event[T]
	pending []desim.Event[T]
}

// New wraps limiter as a desim.Resource, gating all requests under category.
func New[T desim.SimState](limiter *catrate.Limiter, category any) *Resource[T] {
	return &Resource[T]{limiter: limiter, category: category}
}

// Waiting returns the number of requesters currently queued on the rate limit.
func (r *Resource[T]) Waiting() int { return len(r.waiters) }

// AcquireOrEnqueue implements desim.Resource, handling Request.
func (r *Resource[T]) AcquireOrEnqueue(req desim.Event[T]) (desim.Event[T], bool) {
	r.drainWaiters(req.Time)
	if _, ok := r.limiter.Allow(r.category); ok {
		return req, true
	}
	r.waiters = append(r.waiters, req)
	return desim.Event[T]{}, false
}

// ReleaseAndScheduleNext implements desim.Resource, handling Release. A
// rate limiter has no capacity to give back, so Release only serves as
// a manual nudge: it attempts to admit the earliest waiter if the rate
// budget currently allows it.
func (r *Resource[T]) ReleaseAndScheduleNext(rel desim.Event[T]) (desim.Event[T], bool) {
	r.drainWaiters(rel.Time)
	if len(r.waiters) == 0 {
		return desim.Event[T]{}, false
	}
	if _, ok := r.limiter.Allow(r.category); !ok {
		return desim.Event[T]{}, false
	}
	w := r.waiters[0]
	r.waiters = r.waiters[1:]
	w.Time = rel.Time
	return w, true
}

// drainWaiters admits as many queued waiters as the rate budget allows
// right now, stamping each with now and moving it to pending.
func (r *Resource[T]) drainWaiters(now desim.Time) {
	for len(r.waiters) > 0 {
		if _, ok := r.limiter.Allow(r.category); !ok {
			break
		}
		w := r.waiters[0]
		r.waiters = r.waiters[1:]
		w.Time = now
		r.pending = append(r.pending, w)
	}
}

// DrainPending implements desim.PendingDrainer.
func (r *Resource[T]) DrainPending() []desim.Event[T] {
	if len(r.pending) == 0 {
		return nil
	}
	out := r.pending
	r.pending = nil
	return out
}
