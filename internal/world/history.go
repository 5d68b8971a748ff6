package world

// Lag is a fixed-capacity ring buffer of an entity's prior states,
// indexed by "updates ago". It is always fully populated: construction
// replicates the initial value into every slot, so a lookup never hits
// an empty slot. A rotating head index replaces the original's
// insert/pop shifting.
type Lag[T any] struct {
	buf  []T
	head int
}

// NewLag creates a buffer of the given depth with every slot holding
// the initial value.
func NewLag[T any](depth int, initial T) *Lag[T] {
	if depth < 1 {
		depth = 1
	}
	l := &Lag[T]{buf: make([]T, depth)}
	l.Fill(initial)
	return l
}

// Fill overwrites every slot with v and resets the head.
func (l *Lag[T]) Fill(v T) {
	for i := range l.buf {
		l.buf[i] = v
	}
	l.head = 0
}

// Push records v as the most recent prior state, dropping the oldest.
func (l *Lag[T]) Push(v T) {
	l.head = (l.head - 1 + len(l.buf)) % len(l.buf)
	l.buf[l.head] = v
}

// At returns the state i pushes ago, i in [0, Depth).
func (l *Lag[T]) At(i int) T {
	return l.buf[(l.head+i)%len(l.buf)]
}

// Depth returns the buffer capacity.
func (l *Lag[T]) Depth() int {
	return len(l.buf)
}
