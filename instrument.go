package attrail

import (
	"fmt"
	"reflect"
	"slices"
)

var journalType = reflect.TypeOf(Journal{})

// Tracked wraps a fixed-layout instance so that every attribute write
// performed through Set is recorded in the instance's ledger. The attribute
// set is the target struct's exported fields, including fields promoted
// from embedded structs; it is closed, mirroring a declared-slot layout.
//
// Reads are untouched: callers read the underlying struct's fields
// directly, with no interception and no overhead.
type Tracked struct {
	*recorder

	ptr      any
	target   reflect.Value
	fields   map[string]fieldInfo
	baseline map[string]any
	written  map[string]bool
}

type fieldInfo struct {
	index []int
	typ   reflect.Type
}

// Instrument wraps target, a non-nil pointer to struct, for attribute
// change tracking. Layout problems fail here, at wrap time, never at a
// later Set:
//
//   - target is not a non-nil pointer to struct: INCOMPATIBLE_LAYOUT
//   - the struct has no exported, instrumentable fields: INCOMPATIBLE_LAYOUT
//   - a field is unreachable behind a nil embedded pointer: INCOMPATIBLE_LAYOUT
//   - Journal declared as a named field or embedded by pointer: RESERVED_NAME
//
// If the struct embeds Journal (by value), Instrument binds the instance's
// ledger to it, making History reachable from the instance itself.
//
// Fields holding their type's zero value at wrap time are treated as unset:
// their first tracked write records Unset as the old value. A non-zero
// field contributes its current value as the old side of its first write.
// Go cannot distinguish an explicitly assigned zero value from an untouched
// field, so instrument zeroed structs when exact absence semantics matter,
// or use Record, where absence is map membership and therefore exact.
func Instrument(target any, opts ...Option) (*Tracked, error) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, &InstrumentError{
			Code:    ErrCodeIncompatibleLayout,
			Message: "target must be a non-nil pointer to struct",
			Type:    fmt.Sprintf("%T", target),
		}
	}
	elem := rv.Elem()
	t := elem.Type()

	var journal *Journal
	fields := make(map[string]fieldInfo)
	for _, f := range reflect.VisibleFields(t) {
		switch {
		case f.Type == journalType:
			if !f.Anonymous {
				return nil, &InstrumentError{
					Code:    ErrCodeReservedName,
					Message: "Journal must be embedded, not declared as a named field",
					Type:    t.String(),
					Field:   f.Name,
				}
			}
			journal = elem.FieldByIndex(f.Index).Addr().Interface().(*Journal)
		case f.Type == reflect.PointerTo(journalType):
			return nil, &InstrumentError{
				Code:    ErrCodeReservedName,
				Message: "Journal must be embedded by value, not by pointer",
				Type:    t.String(),
				Field:   f.Name,
			}
		case f.Anonymous:
			// Container for promoted fields, not an attribute itself.
		case f.PkgPath != "":
			// Unexported, not instrumentable.
		default:
			fields[f.Name] = fieldInfo{index: f.Index, typ: f.Type}
		}
	}
	if len(fields) == 0 {
		return nil, &InstrumentError{
			Code:    ErrCodeIncompatibleLayout,
			Message: "struct has no exported fields to instrument",
			Type:    t.String(),
		}
	}

	tr := &Tracked{
		recorder: newRecorder(buildOptions(opts)),
		ptr:      target,
		target:   elem,
		fields:   fields,
		baseline: make(map[string]any),
		written:  make(map[string]bool),
	}
	for name, fi := range fields {
		fv, err := elem.FieldByIndexErr(fi.index)
		if err != nil {
			return nil, &InstrumentError{
				Code:    ErrCodeIncompatibleLayout,
				Message: "field is unreachable through a nil embedded pointer",
				Type:    t.String(),
				Field:   name,
			}
		}
		if !fv.IsZero() {
			tr.baseline[name] = fv.Interface()
		}
	}
	if journal != nil {
		journal.bind(tr.recorder)
	}
	return tr, nil
}

// Set assigns value to the named attribute and records the change. The
// prior value is read first, then the real field assignment happens, then
// (prior, value) is appended to the ledger and observers are notified.
//
// Assigning an attribute the value it already holds still records a change:
// there is no value-equality suppression. Writes performed during an
// instance's own setup are recorded identically to any later write.
func (t *Tracked) Set(attr string, value any) error {
	fi, ok := t.fields[attr]
	if !ok {
		return &InstrumentError{
			Code:    ErrCodeUnknownAttribute,
			Message: "attribute is not declared in the fixed layout",
			Type:    t.target.Type().String(),
			Field:   attr,
		}
	}

	var rv reflect.Value
	if value == nil {
		switch fi.typ.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			rv = reflect.Zero(fi.typ)
		default:
			return &InstrumentError{
				Code:    ErrCodeTypeMismatch,
				Message: fmt.Sprintf("nil is not assignable to %s", fi.typ),
				Type:    t.target.Type().String(),
				Field:   attr,
			}
		}
	} else {
		rv = reflect.ValueOf(value)
		if !rv.Type().AssignableTo(fi.typ) {
			return &InstrumentError{
				Code:    ErrCodeTypeMismatch,
				Message: fmt.Sprintf("%s is not assignable to %s", rv.Type(), fi.typ),
				Type:    t.target.Type().String(),
				Field:   attr,
			}
		}
	}

	fv := t.target.FieldByIndex(fi.index)
	old := t.prior(attr, fv)
	fv.Set(rv)
	t.written[attr] = true
	t.record(attr, old, value)
	return nil
}

// prior resolves the old side of a write. The last recorded new value wins,
// which is what keeps the chain invariant exact. With no recorded entry the
// field's actual value is used if it was ever written (history cleared) or
// non-zero at wrap time; otherwise the attribute is unset.
func (t *Tracked) prior(attr string, fv reflect.Value) any {
	if v, ok := t.ledger.lastNew(attr); ok {
		return v
	}
	if t.written[attr] {
		return fv.Interface()
	}
	if v, ok := t.baseline[attr]; ok {
		return v
	}
	return Unset
}

// Target returns the wrapped instance as passed to Instrument. Reading its
// fields is the supported, uninstrumented read path.
func (t *Tracked) Target() any {
	return t.ptr
}

// Attrs returns the declared attribute names of the fixed layout, sorted.
func (t *Tracked) Attrs() []string {
	out := make([]string, 0, len(t.fields))
	for name := range t.fields {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
