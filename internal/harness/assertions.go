package harness

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hollis86/attrail"
)

// AssertionError is returned when an assertion fails. It carries the full
// timeline so the failure message shows what actually happened.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Timeline []attrail.Event
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nTimeline:\n")
	for _, ev := range e.Timeline {
		fmt.Fprintf(&buf, "  [%d] %s: %v -> %v\n", ev.Seq, ev.Attr, ev.Old, ev.New)
	}

	return buf.String()
}

// EvaluateAssertions checks every assertion against the result, returning
// one error per failure.
func EvaluateAssertions(result *Result, assertions []Assertion) []error {
	var errs []error
	for _, a := range assertions {
		var err error
		switch a.Type {
		case AssertHistoryEquals:
			err = assertHistoryEquals(result, a)
		case AssertHistoryCount:
			err = assertHistoryCount(result, a)
		case AssertWriteOrder:
			err = assertWriteOrder(result, a)
		case AssertFinalValue:
			err = assertFinalValue(result, a)
		case AssertChainIntact:
			err = assertChainIntact(result, a)
		default:
			err = fmt.Errorf("unknown assertion type %q", a.Type)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func assertHistoryEquals(result *Result, a Assertion) error {
	got := result.History.Get(a.Attr)
	if len(got) != len(a.Changes) {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%d changes for %q", len(a.Changes), a.Attr),
			Actual:   fmt.Sprintf("%d changes", len(got)),
			Timeline: result.History.Timeline(),
		}
	}
	for i, expect := range a.Changes {
		if !matchChange(expect, got[i]) {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%q change %d = %s", a.Attr, i, describeExpect(expect)),
				Actual:   fmt.Sprintf("%v -> %v", got[i].Old, got[i].New),
				Timeline: result.History.Timeline(),
			}
		}
	}
	return nil
}

func assertHistoryCount(result *Result, a Assertion) error {
	got := result.History.Len(a.Attr)
	if got != a.Count {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%d changes for %q", a.Count, a.Attr),
			Actual:   fmt.Sprintf("%d changes", got),
			Timeline: result.History.Timeline(),
		}
	}
	return nil
}

// assertWriteOrder checks that the named attributes first appear in the
// timeline in the given relative order. Intervening writes are allowed.
func assertWriteOrder(result *Result, a Assertion) error {
	timeline := result.History.Timeline()

	first := make(map[string]int64)
	for _, ev := range timeline {
		if _, seen := first[ev.Attr]; !seen {
			first[ev.Attr] = ev.Seq
		}
	}

	var prev int64 = -1
	for _, attr := range a.Attrs {
		seq, ok := first[attr]
		if !ok {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("attribute %q written", attr),
				Actual:   "no writes recorded",
				Timeline: timeline,
			}
		}
		if seq <= prev {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("attributes first written in order %v", a.Attrs),
				Actual:   fmt.Sprintf("%q written out of order", attr),
				Timeline: timeline,
			}
		}
		prev = seq
	}
	return nil
}

func assertFinalValue(result *Result, a Assertion) error {
	got, ok := result.Record.Get(a.Attr)
	if !ok {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%q = %v", a.Attr, a.Value),
			Actual:   "attribute does not exist",
			Timeline: result.History.Timeline(),
		}
	}
	if !reflect.DeepEqual(got, a.Value) {
		return &AssertionError{
			Type:     a.Type,
			Expected: fmt.Sprintf("%q = %v", a.Attr, a.Value),
			Actual:   fmt.Sprintf("%v", got),
			Timeline: result.History.Timeline(),
		}
	}
	return nil
}

// assertChainIntact verifies the chain invariant: each entry's old value
// equals the previous entry's new value.
func assertChainIntact(result *Result, a Assertion) error {
	got := result.History.Get(a.Attr)
	for i := 1; i < len(got); i++ {
		if !reflect.DeepEqual(got[i].Old, got[i-1].New) {
			return &AssertionError{
				Type:     a.Type,
				Expected: fmt.Sprintf("%q entry %d old = entry %d new (%v)", a.Attr, i, i-1, got[i-1].New),
				Actual:   fmt.Sprintf("%v", got[i].Old),
				Timeline: result.History.Timeline(),
			}
		}
	}
	return nil
}

func matchChange(expect ChangeExpect, got attrail.Change) bool {
	if expect.OldUnset {
		if !attrail.IsUnset(got.Old) {
			return false
		}
	} else if !reflect.DeepEqual(expect.Old, got.Old) {
		return false
	}
	return reflect.DeepEqual(expect.New, got.New)
}

func describeExpect(expect ChangeExpect) string {
	if expect.OldUnset {
		return fmt.Sprintf("<unset> -> %v", expect.New)
	}
	return fmt.Sprintf("%v -> %v", expect.Old, expect.New)
}
