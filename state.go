package desim

// SimState is the polymorphic state carrier a process yields on every
// suspension. Applications piggyback arbitrary domain data on it; the
// engine only ever touches it through this interface.
type SimState interface {
	// Effect returns the instruction the engine should act on.
	Effect() Effect

	// SetEffect overwrites the instruction. The engine itself never calls
	// it (a store Pop's value is delivered through [valueCarrier]);
	// application code calls this to build up the state it yields.
	SetEffect(Effect)

	// ShouldLog reports whether this yield belongs in the trace.
	ShouldLog() bool
}

// EffectState is the minimal SimState implementation, for applications
// that have no domain data to piggyback and just want to yield Effect
// values directly. Use *EffectState as the type parameter T: the
// mutation methods have pointer receivers so SetEffect's write is
// visible on the next resume, matching the spec's single deliver(state,
// outcome) mutation point.
type EffectState struct {
	Eff    Effect
	Logged bool
}

// NewEffectState builds an *EffectState with the given effect, not logged.
func NewEffectState(e Effect) *EffectState {
	return &EffectState{Eff: e}
}

// Effect implements SimState.
func (s *EffectState) Effect() Effect { return s.Eff }

// SetEffect implements SimState.
func (s *EffectState) SetEffect(e Effect) { s.Eff = e }

// ShouldLog implements SimState.
func (s *EffectState) ShouldLog() bool { return s.Logged }

// Log marks s to be recorded in the trace and returns it, for fluent
// construction at yield sites, e.g. desim.NewEffectState(eff).Log().
func (s *EffectState) Log() *EffectState {
	s.Logged = true
	return s
}
