package attrail

// Unset is the absence sentinel: the old side of the first recorded change
// for an attribute that had no prior tracked value. It is a distinguished
// value, not nil, which keeps the three states explicit: unset, set to nil,
// and set to a value.
var Unset = unset{}

type unset struct{}

func (unset) String() string { return "<unset>" }

// IsUnset reports whether v is the absence sentinel.
func IsUnset(v any) bool {
	_, ok := v.(unset)
	return ok
}

// Change records one attribute write.
type Change struct {
	// Seq is the write's position in the instance's global write order.
	// Strictly increasing across all attributes of one instance.
	Seq int64

	// Old is the value the attribute held before this write, or Unset.
	Old any

	// New is the value assigned by this write.
	New any
}

// Event is a Change tagged with its attribute name and the owning
// instance's token. Events are delivered to observers and returned by
// Timeline.
type Event struct {
	Token string
	Attr  string
	Seq   int64
	Old   any
	New   any
}
