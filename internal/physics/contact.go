package physics

// Overlapper decides whether two bodies touch. The scene backs it with per-pixel sprite masks.
type Overlapper interface {
	Overlap(a, b *Body) bool
}

// OverlapFunc adapts a plain function to Overlapper.
type OverlapFunc func(a, b *Body) bool

// Overlap calls f(a, b).
func (f OverlapFunc) Overlap(a, b *Body) bool {
	return f(a, b)
}

// PairKey is an unordered pair of body IDs; Lo < Hi.
type PairKey struct {
	Lo, Hi ID
}

// MakePair returns the key for {a, b} regardless of argument order.
func MakePair(a, b ID) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}

// ContactTracker remembers which pairs are currently touching so a pair bounces once when
// contact starts and not again until the bodies have separated.
type ContactTracker struct {
	contacts map[PairKey]struct{}
}

// NewContactTracker returns a tracker with no pairs in contact.
func NewContactTracker() *ContactTracker {
	return &ContactTracker{contacts: make(map[PairKey]struct{})}
}

// Step tests every unordered pair of bodies once. A pair that starts overlapping swaps
// velocities and is marked in contact; a marked pair that no longer overlaps is unmarked.
// Returns the number of swaps done.
func (t *ContactTracker) Step(bodies []*Body, overlap Overlapper) int {
	bounces := 0
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			key := MakePair(a.ID, b.ID)
			_, touching := t.contacts[key]
			hit := overlap.Overlap(a, b)
			switch {
			case hit && !touching:
				a.Velocity, b.Velocity = b.Velocity, a.Velocity
				t.contacts[key] = struct{}{}
				bounces++
			case !hit && touching:
				delete(t.contacts, key)
			}
		}
	}
	return bounces
}

// InContact reports whether the pair {a, b} is currently marked as touching.
func (t *ContactTracker) InContact(a, b ID) bool {
	_, ok := t.contacts[MakePair(a, b)]
	return ok
}

// Len returns the number of pairs in contact.
func (t *ContactTracker) Len() int {
	return len(t.contacts)
}

// Reset forgets all contacts.
func (t *ContactTracker) Reset() {
	clear(t.contacts)
}
