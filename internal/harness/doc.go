// Package harness provides a conformance testing framework for attrail.
//
// The harness loads YAML scenarios, applies their attribute writes to an
// open-layout Record, evaluates assertions on the resulting history, and
// optionally compares a canonical snapshot against a golden file.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	token: fixed-instance-token
//	steps:
//	  - attr: x
//	    value: 10
//	  - attr: x
//	    value: 20
//	  - clear: x
//	  - clear_all: true
//	assertions:
//	  - type: history_equals
//	    attr: x
//	    changes:
//	      - old_unset: true
//	        new: 10
//	      - old: 10
//	        new: 20
//	  - type: final_value
//	    attr: x
//	    value: 20
//
// # Assertion Types
//
//   - history_equals: the attribute's full change sequence matches exactly
//   - history_count: the attribute has exactly N recorded changes
//   - write_order: the named attributes first appear in the timeline in
//     the given relative order (intervening writes are allowed)
//   - final_value: the attribute currently holds the given value
//   - chain_intact: every entry's old value equals the previous entry's
//     new value
//
// # Deterministic Testing
//
// Scenarios run with a fixed instance token (scenario.token, defaulting to
// "scenario-default") and attrail's own logical sequencing, so repeated
// runs produce identical histories and identical canonical snapshots for
// golden file comparison.
package harness
