package stats

// Window is a bounded ring buffer. Appending to a full window overwrites
// the oldest element and hands it back to the caller, which lets running
// aggregates subtract exactly what fell out.
type Window[T any] struct {
	buf  []T
	next int // overwrite cursor, meaningful only once full
}

// NewWindow returns an empty window holding at most capacity elements.
//
// Complexity: O(1).
func NewWindow[T any](capacity int) (*Window[T], error) {
	if capacity < 1 {
		return nil, ErrZeroPeriod
	}

	return &Window[T]{buf: make([]T, 0, capacity)}, nil
}

// Append stores v. When the window was already full it reports true and
// returns the element that was evicted to make room.
//
// Complexity: O(1).
func (w *Window[T]) Append(v T) (dropped T, wasFull bool) {
	if len(w.buf) < cap(w.buf) {
		w.buf = append(w.buf, v)

		return dropped, false
	}

	dropped = w.buf[w.next]
	w.buf[w.next] = v
	w.next = (w.next + 1) % cap(w.buf)

	return dropped, true
}

// Len returns the number of stored elements.
func (w *Window[T]) Len() int { return len(w.buf) }

// Cap returns the window capacity.
func (w *Window[T]) Cap() int { return cap(w.buf) }

// Data returns a copy of the contents in storage order. Cheaper than
// Linearized when the caller does not care about age.
func (w *Window[T]) Data() []T {
	out := make([]T, len(w.buf))
	copy(out, w.buf)

	return out
}

// Linearized returns a copy of the contents ordered oldest to newest.
//
// Complexity: O(n).
func (w *Window[T]) Linearized() []T {
	out := make([]T, 0, len(w.buf))
	if len(w.buf) == cap(w.buf) {
		out = append(out, w.buf[w.next:]...)
		out = append(out, w.buf[:w.next]...)
	} else {
		out = append(out, w.buf...)
	}

	return out
}
