package desim

// ProcessBody is a user-authored cooperative routine. It receives a
// [Context] and drives the simulation forward by calling ctx.Yield one
// or more times, then returning normally to complete. Grounded on the
// goroutine-per-unit-of-work + channel handoff pattern used by
// eventloop.Promisify (see eventloop/promisify.go): each process gets
// its own goroutine, the engine never touches it except by sending
// exactly one resume for every yield, preserving the spec's
// single-resume contract without a stackful-coroutine runtime feature.
type ProcessBody[T SimState] func(ctx *Context[T])

// Context is handed to a process body on every resume. It carries the
// current simulation time and the state attached to the event that
// woke the process (spec §4.1: "ctx = (now, s_in)").
type Context[T SimState] struct {
	now   Time
	state T

	resumeCh chan resumeMsg[T]
	yieldCh  chan yieldMsg[T]
}

// Time returns the simulation time at which this resume occurred.
func (c *Context[T]) Time() Time { return c.now }

// State returns the state carried by the event that triggered this
// resume (e.g. what a Request's resolution or a Pop's popped value
// looks like, depending on what woke the process).
func (c *Context[T]) State() T { return c.state }

// Yield suspends the process, handing out to the engine, and blocks
// until the engine resumes it. It returns the state the engine resumed
// it with (also available afterwards via State()).
func (c *Context[T]) Yield(out T) T {
	c.yieldCh <- yieldMsg[T]{state: out}
	msg := <-c.resumeCh
	c.now = msg.now
	c.state = msg.state
	return msg.state
}

type resumeMsg[T SimState] struct {
	now   Time
	state T
}

type yieldMsg[T SimState] struct {
	state    T
	done     bool
	panicVal any
}

// procHandle is the engine-side handle to a running process goroutine.
type procHandle[T SimState] struct {
	resumeCh chan resumeMsg[T]
	yieldCh  chan yieldMsg[T]
}

// startProcess launches body on its own goroutine, blocked immediately
// on its first resume, and returns the handle the registry will track.
func startProcess[T SimState](body ProcessBody[T]) *procHandle[T] {
	h := &procHandle[T]{
		resumeCh: make(chan resumeMsg[T]),
		yieldCh:  make(chan yieldMsg[T]),
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				h.yieldCh <- yieldMsg[T]{done: true, panicVal: r}
			}
		}()

		first := <-h.resumeCh
		ctx := &Context[T]{
			now:      first.now,
			state:    first.state,
			resumeCh: h.resumeCh,
			yieldCh:  h.yieldCh,
		}
		body(ctx)
		h.yieldCh <- yieldMsg[T]{done: true}
	}()

	return h
}

// resume delivers ctx to h and blocks for its next yield or completion.
func (h *procHandle[T]) resume(now Time, state T) (yielded T, completed bool, panicVal any) {
	h.resumeCh <- resumeMsg[T]{now: now, state: state}
	msg := <-h.yieldCh
	if msg.panicVal != nil {
		return yielded, true, msg.panicVal
	}
	if msg.done {
		return yielded, true, nil
	}
	return msg.state, false, nil
}
