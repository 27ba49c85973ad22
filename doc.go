// Package attrail records the history of every value assigned to every
// attribute of an instrumented object.
//
// Each instrumented instance owns one ledger: a mapping from attribute name
// to an ordered, append-only sequence of (old, new) change pairs. Every
// write goes through Set, which reads the prior value, performs the real
// assignment, then appends the change. Reads are never intercepted.
//
// ARCHITECTURE:
//
// Two object layouts are supported:
//
//   - Fixed layout: Instrument wraps a pointer to struct. The attribute set
//     is the struct's exported fields, including fields promoted from
//     embedded structs. Writing an undeclared attribute is an error.
//   - Open layout: NewRecord creates a map-backed attribute bag that
//     accepts writes to arbitrary attribute names.
//
// Both layouts share the same ledger machinery and the same History
// accessor (Get, GetAll, ClearAttr, Clear, Timeline). Embedding Journal in
// a struct promotes History onto the instance itself; Instrument binds the
// ledger to the embedded Journal at wrap time.
//
// CRITICAL PATTERNS:
//
// Logical clock: every change is stamped with a strictly increasing
// per-instance sequence number. Write order is defined by seq, never by
// wall-clock time, so Timeline output is deterministic and replayable.
//
// Chain invariant: within one attribute's sequence, each entry's old value
// equals the previous entry's new value. The first entry's old value is
// Unset when the attribute had no prior tracked value; Unset is distinct
// from nil, so "never written" and "written as nil" remain distinguishable.
//
// Fail fast: layout problems (not a struct pointer, no instrumentable
// fields, misdeclared Journal) surface from Instrument, never from a later
// Set.
//
// The ledger is not synchronized. Concurrent Set calls on one instance can
// interleave the read-prior/assign/append sequence and record a chain that
// does not match the actual value sequence; callers that need concurrent
// writes must serialize them externally.
package attrail
