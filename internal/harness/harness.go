package harness

import (
	"fmt"

	"github.com/hollis86/attrail"
)

// defaultToken is used when a scenario does not fix its own instance
// token. A stable default keeps golden snapshots reproducible.
const defaultToken = "scenario-default"

// Result holds the outcome of one scenario execution.
type Result struct {
	// Record is the instance the steps ran against.
	Record *attrail.Record

	// History is the instance's ledger accessor after all steps.
	History *attrail.History

	// Pass reports whether every assertion held.
	Pass bool

	// Errors holds one entry per failed assertion.
	Errors []error
}

// Run executes a scenario against a fresh open-layout Record and evaluates
// its assertions. Run itself only fails on malformed scenarios; assertion
// failures land in Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	token := scenario.Token
	if token == "" {
		token = defaultToken
	}
	rec := attrail.NewRecord(attrail.WithToken(token))

	for _, step := range scenario.Steps {
		switch {
		case step.Attr != "":
			rec.Set(step.Attr, step.Value)
		case step.Clear != "":
			rec.History().ClearAttr(step.Clear)
		case step.ClearAll:
			rec.History().Clear()
		}
	}

	result := &Result{
		Record:  rec,
		History: rec.History(),
	}
	result.Errors = EvaluateAssertions(result, scenario.Assertions)
	result.Pass = len(result.Errors) == 0
	return result, nil
}
