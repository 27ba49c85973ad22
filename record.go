package attrail

import "slices"

// Record is the open-layout instance: a map-backed attribute bag that
// accepts writes to arbitrary attribute names. Unlike Tracked, absence is
// exact here — an attribute either is in the bag or is not — so the Unset
// sentinel carries its precise meaning.
type Record struct {
	*recorder

	attrs map[string]any
}

// NewRecord creates an empty open-layout instance with its own ledger.
func NewRecord(opts ...Option) *Record {
	return &Record{
		recorder: newRecorder(buildOptions(opts)),
		attrs:    make(map[string]any),
	}
}

// Set assigns value to attr, creating the attribute on first write. Any
// name is accepted. Assigning an equal value still records a change.
func (r *Record) Set(attr string, value any) {
	old := r.prior(attr)
	r.attrs[attr] = value
	r.record(attr, old, value)
}

func (r *Record) prior(attr string) any {
	if v, ok := r.ledger.lastNew(attr); ok {
		return v
	}
	// History may have been cleared; the bag still holds the current value.
	if v, ok := r.attrs[attr]; ok {
		return v
	}
	return Unset
}

// Get returns the current value of attr and whether it exists.
func (r *Record) Get(attr string) (any, bool) {
	v, ok := r.attrs[attr]
	return v, ok
}

// Attrs returns the names of all attributes currently in the bag, sorted.
func (r *Record) Attrs() []string {
	out := make([]string, 0, len(r.attrs))
	for name := range r.attrs {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
