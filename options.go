package desim

// simOptions holds configuration gathered from Option[T] values at
// construction time, grounded on eventloop.loopOptions / LoopOption.
type simOptions[T SimState] struct {
	logger        Logger
	traceCapacity int
	onStep        func(Event[T], T)
}

// Option configures a Simulation at construction time.
type Option[T SimState] interface {
	apply(*simOptions[T])
}

type optionFunc[T SimState] func(*simOptions[T])

func (f optionFunc[T]) apply(o *simOptions[T]) { f(o) }

// WithLogger sets the ambient diagnostic logger. Defaults to a no-op
// logger; does not affect the functional Trace.
func WithLogger[T SimState](logger Logger) Option[T] {
	return optionFunc[T](func(o *simOptions[T]) {
		if logger != nil {
			o.logger = logger
		}
	})
}

// WithTraceCapacity pre-allocates the trace slice's backing array,
// useful when the expected number of logged events is known up front.
func WithTraceCapacity[T SimState](n int) Option[T] {
	return optionFunc[T](func(o *simOptions[T]) {
		if n > 0 {
			o.traceCapacity = n
		}
	})
}

// WithStepObserver registers a callback invoked after every successful
// step with the triggering event and the state it yielded (or its
// zero value, if the process completed). Intended for wiring external
// metrics collectors (see the metrics subpackage) without the core
// engine importing them.
func WithStepObserver[T SimState](fn func(Event[T], T)) Option[T] {
	return optionFunc[T](func(o *simOptions[T]) {
		o.onStep = fn
	})
}

func resolveOptions[T SimState](opts []Option[T]) *simOptions[T] {
	cfg := &simOptions[T]{
		logger: NewNoOpLogger(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(cfg)
	}
	return cfg
}
