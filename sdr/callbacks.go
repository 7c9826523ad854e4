package sdr

// subscriberList is the broadcast fan-out every node carries. Handles are
// slice indices; a detached slot stays nil and is reused by the next Attach,
// so peers keep their handles stable (no shifting).
type subscriberList struct {
	subs []Subscriber
}

// attach stores s and returns its handle, reusing the first nil hole.
// Complexity: O(n) worst case, O(1) amortized.
func (l *subscriberList) attach(s Subscriber) int {
	for i, cur := range l.subs {
		if cur == nil {
			l.subs[i] = s

			return i
		}
	}
	l.subs = append(l.subs, s)

	return len(l.subs) - 1
}

// detach clears a handle's slot. Unknown or already-cleared handles are a
// no-op.
func (l *subscriberList) detach(handle int) {
	if handle < 0 || handle >= len(l.subs) {
		return
	}
	l.subs[handle] = nil
}

// broadcastChange notifies direct children only; each child forwards the
// event to its own children, so propagation depth equals subtree depth.
func (l *subscriberList) broadcastChange() {
	for _, s := range l.subs {
		if s != nil {
			s.OnChange()
		}
	}
}

// broadcastDestroy notifies every registration exactly once and purges the
// list. The snapshot guards against children mutating the list while they
// tear themselves down.
func (l *subscriberList) broadcastDestroy() {
	snapshot := l.subs
	l.subs = nil
	for _, s := range snapshot {
		if s != nil {
			s.OnDestroy()
		}
	}
}
