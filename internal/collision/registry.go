// Package collision provides the type-pair dispatch mechanism of the
// engine: a registry mapping unordered pairs of entity kinds to a
// detection function (pure geometry) and a handling function (stateful
// consequences), plus the per-frame pairwise sweep.
package collision

import "fmt"

// Kind tags the category of a world object (ship, bullet, meteor
// tier). Collision rules are keyed by unordered pairs of kinds, so the
// set of kinds is closed and compiler-checked rather than derived from
// runtime type names.
type Kind uint8

// Object is what the registry needs to know about an entity: its kind
// tag and whether it is already flagged for removal this frame.
type Object interface {
	Kind() Kind
	Removed() bool
}

// Detector reports whether its two objects collided. Detectors are
// pure: they read geometry and never mutate state. Arguments arrive in
// the order the kinds were registered, regardless of lookup order.
type Detector func(a, b Object) bool

// Handler applies the consequences of a collision. Handlers may mutate
// either object's removal flag and external score/level state.
type Handler func(a, b Object)

type rule struct {
	detect Detector
	handle Handler
}

type pair struct {
	a, b Kind
}

// Registry maps unordered kind pairs to their collision rule. It is
// populated once during game construction and read-only afterwards.
type Registry struct {
	rules map[pair]rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[pair]rule)}
}

// Register installs the rule for the unordered pair {a, b}. The
// detector and handler receive their arguments in (a, b) order. It is
// an error to register a second rule for the same pair in either
// order; a duplicate must abort setup, never silently overwrite.
func (r *Registry) Register(a, b Kind, detect Detector, handle Handler) error {
	if _, ok := r.rules[pair{a, b}]; ok {
		return fmt.Errorf("collision: rule for kinds (%d, %d) already registered", a, b)
	}
	if _, ok := r.rules[pair{b, a}]; ok {
		return fmt.Errorf("collision: rule for kinds (%d, %d) already registered as (%d, %d)", a, b, b, a)
	}
	r.rules[pair{a, b}] = rule{detect: detect, handle: handle}
	return nil
}

// lookup finds the rule for the two objects and returns them in
// registration order.
func (r *Registry) lookup(o1, o2 Object) (rule, Object, Object, bool) {
	if found, ok := r.rules[pair{o1.Kind(), o2.Kind()}]; ok {
		return found, o1, o2, true
	}
	if found, ok := r.rules[pair{o2.Kind(), o1.Kind()}]; ok {
		return found, o2, o1, true
	}
	return rule{}, nil, nil, false
}

// Collide reports whether the two objects collided. Objects already
// flagged for removal never collide; a pair with no registered rule
// never collides. The detector always receives its arguments in the
// order the kinds were registered.
func (r *Registry) Collide(o1, o2 Object) bool {
	if o1.Removed() || o2.Removed() {
		return false
	}
	found, a, b, ok := r.lookup(o1, o2)
	if !ok {
		return false
	}
	return found.detect(a, b)
}

// Handle invokes the handler for the two objects with the same lookup
// and ordering rules as Collide. Objects flagged for removal are
// skipped; an unregistered pair is a no-op.
func (r *Registry) Handle(o1, o2 Object) {
	if o1.Removed() || o2.Removed() {
		return
	}
	found, a, b, ok := r.lookup(o1, o2)
	if !ok {
		return
	}
	found.handle(a, b)
}

// Sweep runs the frame's exhaustive pairwise pass: every unordered
// pair of objects in list order, detection then immediate handling on
// a hit. Handlers run inline, so a removal is visible to every later
// pair in the same sweep.
func (r *Registry) Sweep(objects []Object) {
	for i := 0; i < len(objects); i++ {
		for j := i + 1; j < len(objects); j++ {
			if r.Collide(objects[i], objects[j]) {
				r.Handle(objects[i], objects[j])
			}
		}
	}
}
