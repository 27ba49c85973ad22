package attrail

// ledger is the per-instance history store: attribute name mapped to an
// ordered, append-only change sequence. One ledger per instance, created at
// instrumentation time, never shared.
type ledger struct {
	token   string
	clock   clock
	changes map[string][]Change
}

func newLedger(token string) *ledger {
	return &ledger{
		token:   token,
		changes: make(map[string][]Change),
	}
}

// append records one write and returns the event delivered to observers.
func (l *ledger) append(attr string, old, new any) Event {
	c := Change{Seq: l.clock.next(), Old: old, New: new}
	l.changes[attr] = append(l.changes[attr], c)
	return Event{Token: l.token, Attr: attr, Seq: c.Seq, Old: old, New: new}
}

// lastNew returns the most recent recorded new value for attr. The chain
// invariant holds because the next write's old value is taken from here
// whenever an entry exists.
func (l *ledger) lastNew(attr string) (any, bool) {
	seq := l.changes[attr]
	if len(seq) == 0 {
		return nil, false
	}
	return seq[len(seq)-1].New, true
}

// clearAttr truncates one attribute's sequence. The attribute key stays in
// the ledger with an empty sequence. Unknown names are a no-op.
func (l *ledger) clearAttr(attr string) {
	if _, ok := l.changes[attr]; ok {
		l.changes[attr] = nil
	}
}

// clearAll drops every attribute key. The clock is not reset: seq stays
// strictly increasing for the instance's lifetime.
func (l *ledger) clearAll() {
	l.changes = make(map[string][]Change)
}

// recorder binds a ledger to its instance token and observer list. Tracked
// and Record both embed it, which is what promotes History and Token onto
// every instrumented instance.
type recorder struct {
	ledger    *ledger
	observers []Observer
}

func newRecorder(o options) *recorder {
	token := o.token
	if token == "" {
		token = o.gen.Generate()
	}
	return &recorder{
		ledger:    newLedger(token),
		observers: o.observers,
	}
}

// record appends one change and notifies observers synchronously, in
// registration order.
func (r *recorder) record(attr string, old, new any) {
	ev := r.ledger.append(attr, old, new)
	for _, obs := range r.observers {
		obs(ev)
	}
}

// History returns the instance's change history accessor.
func (r *recorder) History() *History {
	return &History{l: r.ledger}
}

// Token returns the instance's identity token.
func (r *recorder) Token() string {
	return r.ledger.token
}
