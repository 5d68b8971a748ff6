package collision

import (
	"math"
	"testing"

	"github.com/arcadelab/tui-meteors/internal/geom"
)

const (
	kindA Kind = iota
	kindB
	kindC
)

type fakeObject struct {
	kind    Kind
	removed bool
}

func (o *fakeObject) Kind() Kind    { return o.kind }
func (o *fakeObject) Removed() bool { return o.removed }

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	detect := func(a, b Object) bool { return true }
	handle := func(a, b Object) {}

	if err := r.Register(kindA, kindB, detect, handle); err != nil {
		t.Fatalf("first Register() failed: %v", err)
	}
	if err := r.Register(kindA, kindB, detect, handle); err == nil {
		t.Error("duplicate Register() in same order should fail")
	}
	if err := r.Register(kindB, kindA, detect, handle); err == nil {
		t.Error("duplicate Register() in reversed order should fail")
	}
	// A different pair is still fine.
	if err := r.Register(kindA, kindC, detect, handle); err != nil {
		t.Errorf("Register() for distinct pair failed: %v", err)
	}
}

func TestCollideArgumentOrder(t *testing.T) {
	r := NewRegistry()
	objA := &fakeObject{kind: kindA}
	objB := &fakeObject{kind: kindB}

	var gotFirst, gotSecond Object
	err := r.Register(kindA, kindB, func(a, b Object) bool {
		gotFirst, gotSecond = a, b
		return true
	}, func(a, b Object) {})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	// Forward lookup
	if !r.Collide(objA, objB) {
		t.Fatal("Collide(A, B) = false, expected true")
	}
	if gotFirst != objA || gotSecond != objB {
		t.Error("detector called with wrong argument order for forward lookup")
	}

	// Reversed lookup still delivers arguments in registration order.
	gotFirst, gotSecond = nil, nil
	if !r.Collide(objB, objA) {
		t.Fatal("Collide(B, A) = false, expected true")
	}
	if gotFirst != objA || gotSecond != objB {
		t.Error("detector called with wrong argument order for reversed lookup")
	}
}

func TestHandleArgumentOrder(t *testing.T) {
	r := NewRegistry()
	objA := &fakeObject{kind: kindA}
	objB := &fakeObject{kind: kindB}

	var gotFirst, gotSecond Object
	err := r.Register(kindA, kindB,
		func(a, b Object) bool { return true },
		func(a, b Object) { gotFirst, gotSecond = a, b })
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	r.Handle(objB, objA)
	if gotFirst != objA || gotSecond != objB {
		t.Error("handler called with wrong argument order for reversed lookup")
	}
}

func TestCollideRemovedShortCircuit(t *testing.T) {
	r := NewRegistry()
	objA := &fakeObject{kind: kindA}
	objB := &fakeObject{kind: kindB, removed: true}

	called := false
	err := r.Register(kindA, kindB, func(a, b Object) bool {
		called = true
		return true
	}, func(a, b Object) {})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if r.Collide(objA, objB) {
		t.Error("Collide() with removed object should be false")
	}
	if called {
		t.Error("detector must not run when an object is removed")
	}
}

func TestCollideUnregisteredPair(t *testing.T) {
	r := NewRegistry()
	objA := &fakeObject{kind: kindA}
	objC := &fakeObject{kind: kindC}

	if r.Collide(objA, objC) {
		t.Error("Collide() with no registered rule should be false")
	}
	// Handle on an unregistered pair is a no-op, not a panic.
	r.Handle(objA, objC)
}

func TestSweepImmediateHandling(t *testing.T) {
	// A handler marking an object removed must suppress collisions for
	// that object in later pairs of the same sweep.
	r := NewRegistry()
	objA := &fakeObject{kind: kindA}
	objB := &fakeObject{kind: kindB}
	objC := &fakeObject{kind: kindC}

	detections := 0
	err := r.Register(kindA, kindB,
		func(a, b Object) bool { detections++; return true },
		func(a, b Object) { a.(*fakeObject).removed = true })
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	err = r.Register(kindA, kindC,
		func(a, b Object) bool { detections++; return true },
		func(a, b Object) {})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	// Pair order: (A,B) first removes A; (A,C) must then short-circuit.
	r.Sweep([]Object{objA, objB, objC})

	if detections != 1 {
		t.Errorf("detections = %d, expected 1 (A removed before A-C pair)", detections)
	}
	if !objA.removed {
		t.Error("handler side effect lost")
	}
}

func TestSweptHit(t *testing.T) {
	// Circular obstacle of radius 100 at (500, 500), outline as segments.
	center := geom.V(500, 500)
	outline := circleOutline(center, 100, 32)

	tests := []struct {
		name     string
		from, to geom.Vec
		expected bool
	}{
		{"crossing into the circle", geom.V(500, 600), geom.V(500, 450), true},
		{"far away", geom.V(0, 0), geom.V(10, 10), false},
		{"passing straight through", geom.V(350, 500), geom.V(650, 500), true},
		{"stopping short", geom.V(500, 700), geom.V(500, 650), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := geom.NewLine(tc.from, tc.to)
			if got := SweptHit(path, outline); got != tc.expected {
				t.Errorf("SweptHit() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

// circleOutline builds a polygonal approximation of a circle as
// chained world-space segments.
func circleOutline(center geom.Vec, radius float64, n int) []geom.Line {
	lines := make([]geom.Line, 0, n)
	for i := 0; i < n; i++ {
		a1 := float64(i) / float64(n) * 2 * math.Pi
		a2 := float64(i+1) / float64(n) * 2 * math.Pi
		p1 := center.Add(geom.V(radius*math.Cos(a1), radius*math.Sin(a1)))
		p2 := center.Add(geom.V(radius*math.Cos(a2), radius*math.Sin(a2)))
		lines = append(lines, geom.NewLine(p1, p2))
	}
	return lines
}
