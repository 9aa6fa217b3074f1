package redux

// listenerRegistry is a copy-on-write ordered collection of listener
// callbacks. The zero value is ready to use.
//
// Two sequences are tracked: active is the snapshot an in-progress
// notification pass iterates, staging reflects subscribe and unsubscribe
// calls made since the last snapshot. While the two alias each other the
// first mutation clones staging, so changes made during a pass never
// affect the pass already underway. Staged changes take effect at the
// start of the next dispatch's notification phase.
type listenerRegistry struct {
	active  []listenerEntry
	staging []listenerEntry
	shared  bool // staging aliases active; clone before mutating
	nextID  uint64
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// add registers fn at the end of the staged order and returns its
// registration id.
func (r *listenerRegistry) add(fn Listener) uint64 {
	r.ensureMutableStaging()
	r.nextID++
	r.staging = append(r.staging, listenerEntry{id: r.nextID, fn: fn})
	return r.nextID
}

// remove deletes the registration with the given id from the staged order.
// Unknown ids are ignored, which makes unsubscribe handles idempotent.
func (r *listenerRegistry) remove(id uint64) {
	r.ensureMutableStaging()
	for i, e := range r.staging {
		if e.id == id {
			r.staging = append(r.staging[:i], r.staging[i+1:]...)
			return
		}
	}
}

func (r *listenerRegistry) ensureMutableStaging() {
	if !r.shared {
		return
	}
	next := make([]listenerEntry, len(r.active))
	copy(next, r.active)
	r.staging = next
	r.shared = false
}

// snapshot promotes staged changes and returns the list to iterate for the
// notification pass that is about to start. Callers must not mutate the
// returned slice.
func (r *listenerRegistry) snapshot() []listenerEntry {
	r.active = r.staging
	r.shared = true
	return r.active
}
