package mobj

// ThinkerRing is the intrusive, insertion-ordered ring of live actors.
// Remove flags an actor removed and unlinks it at once; an iteration in
// progress over a snapshot slice (Actors) is unaffected mid-tick.
type ThinkerRing struct {
	head *Actor // first actor in the ring, or nil when empty
	tail *Actor
	n    int
}

// NewThinkerRing creates an empty ring.
func NewThinkerRing() *ThinkerRing { return &ThinkerRing{} }

// Add appends an actor to the ring, preserving insertion order.
func (r *ThinkerRing) Add(a *Actor) {
	a.next, a.prev = nil, r.tail
	if r.tail != nil {
		r.tail.next = a
	} else {
		r.head = a
	}
	r.tail = a
	r.n++
}

// Remove unlinks an actor from the ring. It is a no-op if already removed.
func (r *ThinkerRing) Remove(a *Actor) {
	if a.removed {
		return
	}
	a.removed = true
	if a.prev != nil {
		a.prev.next = a.next
	} else {
		r.head = a.next
	}
	if a.next != nil {
		a.next.prev = a.prev
	} else {
		r.tail = a.prev
	}
	a.next, a.prev = nil, nil
	r.n--
}

// Len reports the number of live actors.
func (r *ThinkerRing) Len() int { return r.n }

// Actors returns a snapshot slice of all live actors in insertion order,
// for behaviors that scan the whole ring (KeenDie/BossDeath survivor
// checks, PainShootSkull's skull census, SpawnBrainTargets).
func (r *ThinkerRing) Actors() []*Actor {
	out := make([]*Actor, 0, r.n)
	for a := r.head; a != nil; a = a.next {
		out = append(out, a)
	}
	return out
}

// CountKind returns how many live actors of kind k exist, excluding
// except if non-nil.
func (r *ThinkerRing) CountKind(k Kind, except *Actor) int {
	n := 0
	for a := r.head; a != nil; a = a.next {
		if a != except && a.Kind == k {
			n++
		}
	}
	return n
}

// AnyAliveOfKind reports whether any live actor of kind k other than
// except is still alive (HP > 0) — the survivor check KeenDie and
// BossDeath share.
func (r *ThinkerRing) AnyAliveOfKind(k Kind, except *Actor) bool {
	for a := r.head; a != nil; a = a.next {
		if a != except && a.Kind == k && a.HP > 0 {
			return true
		}
	}
	return false
}
