package attrail

import (
	"cmp"
	"slices"
)

// History is the read and management side of an instance's change ledger.
// All read methods return copies; mutating a returned slice or map never
// affects the ledger. Reads are idempotent: repeated calls without an
// intervening write or clear return equal results.
type History struct {
	l *ledger
}

// Get returns the ordered change sequence for attr. Unknown and
// never-written attributes yield an empty, non-nil sequence, not an error:
// attribute names are not pre-declared to the tracking mechanism, so
// "unknown" is indistinguishable from "never written".
func (h *History) Get(attr string) []Change {
	seq := h.l.changes[attr]
	out := make([]Change, len(seq))
	copy(out, seq)
	return out
}

// GetAll returns every tracked attribute mapped to its full change
// sequence. Attributes cleared individually with ClearAttr appear with an
// empty sequence; after Clear the map is empty.
func (h *History) GetAll() map[string][]Change {
	out := make(map[string][]Change, len(h.l.changes))
	for attr, seq := range h.l.changes {
		cp := make([]Change, len(seq))
		copy(cp, seq)
		out[attr] = cp
	}
	return out
}

// Len returns the number of recorded changes for attr.
func (h *History) Len(attr string) int {
	return len(h.l.changes[attr])
}

// Timeline returns all recorded changes across every attribute, merged
// into global write order (ascending seq). Entries removed by ClearAttr or
// Clear do not appear.
func (h *History) Timeline() []Event {
	var out []Event
	for attr, seq := range h.l.changes {
		for _, c := range seq {
			out = append(out, Event{
				Token: h.l.token,
				Attr:  attr,
				Seq:   c.Seq,
				Old:   c.Old,
				New:   c.New,
			})
		}
	}
	slices.SortFunc(out, func(a, b Event) int {
		return cmp.Compare(a.Seq, b.Seq)
	})
	return out
}

// Writes returns the total number of writes recorded over the instance's
// lifetime, including entries later removed by ClearAttr or Clear.
func (h *History) Writes() int64 {
	return h.l.clock.current()
}

// ClearAttr truncates attr's sequence to empty. The attribute's current
// value is untouched; only its recorded history is dropped. No-op for
// unknown names.
func (h *History) ClearAttr(attr string) {
	h.l.clearAttr(attr)
}

// Clear truncates every attribute's history, leaving GetAll empty. Current
// attribute values are untouched.
func (h *History) Clear() {
	h.l.clearAll()
}
