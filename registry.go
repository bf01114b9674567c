package desim

// processSlot is one entry in the process registry: a dense table
// indexed by ProcessID, grounded on the registry pattern in
// eventloop/registry.go (there: weak-pointer-backed promise table;
// here: a live goroutine handle or a tombstone, never GC'd away so
// ProcessID stays stable per spec I3).
type processSlot[T SimState] struct {
	handle    *procHandle[T]
	completed bool
}

// registry is the engine's dense table of process activations.
type registry[T SimState] struct {
	slots []processSlot[T]
}

func newRegistry[T SimState]() *registry[T] {
	return &registry[T]{}
}

// add registers a new live process and returns its stable ProcessID.
func (r *registry[T]) add(h *procHandle[T]) ProcessID {
	id := ProcessID(len(r.slots))
	r.slots = append(r.slots, processSlot[T]{handle: h})
	return id
}

// get returns the handle for p and whether p is a known, live process.
func (r *registry[T]) get(p ProcessID) (*procHandle[T], bool) {
	if int(p) < 0 || int(p) >= len(r.slots) {
		return nil, false
	}
	slot := r.slots[p]
	if slot.completed {
		return nil, false
	}
	return slot.handle, true
}

// exists reports whether p was ever created (live or tombstoned).
func (r *registry[T]) exists(p ProcessID) bool {
	return int(p) >= 0 && int(p) < len(r.slots)
}

// isCompleted reports whether p is a tombstone.
func (r *registry[T]) isCompleted(p ProcessID) bool {
	return r.exists(p) && r.slots[p].completed
}

// tombstone marks p completed. Its slot remains so the ProcessID stays
// valid (but unusable) per spec I3.
func (r *registry[T]) tombstone(p ProcessID) {
	r.slots[p].completed = true
	r.slots[p].handle = nil
}
