package attrail

// Journal makes an instance's history reachable from the instance itself.
// Embed it by value in a struct passed to Instrument:
//
//	type Account struct {
//		attrail.Journal
//		Balance int64
//	}
//
//	acct := &Account{}
//	tr, err := attrail.Instrument(acct)
//	...
//	acct.History().Get("Balance")
//
// Instrument binds the instance's ledger to the embedded Journal, which
// promotes History and Token onto the instance. The embedded Journal is not
// itself a tracked attribute.
//
// Embedding is the only supported declaration: a named Journal field or an
// embedded *Journal is rejected at wrap time with RESERVED_NAME.
type Journal struct {
	r *recorder
}

func (j *Journal) bind(r *recorder) {
	j.r = r
}

// History returns the instance's change history accessor. It panics if the
// enclosing struct was never passed through Instrument; by then the
// instance holds no ledger and every earlier write went unrecorded, so
// failing loudly beats returning an empty history.
func (j *Journal) History() *History {
	return j.must().History()
}

// Token returns the instance's identity token, panicking like History if
// the enclosing struct was never instrumented.
func (j *Journal) Token() string {
	return j.must().Token()
}

func (j *Journal) must() *recorder {
	if j.r == nil {
		panic("attrail: Journal is unbound; pass the enclosing instance through Instrument first")
	}
	return j.r
}
