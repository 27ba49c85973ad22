package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_Testdata(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		scenario, err := LoadScenario(path)
		require.NoError(t, err, path)
		assert.NotEmpty(t, scenario.Name)
		assert.NotEmpty(t, scenario.Steps)
	}
}

func TestLoadScenario_RejectsUnknownFields(t *testing.T) {
	path := writeScenarioFile(t, `
name: typo
steps:
  - attr: x
    value: 1
assertion:
  - type: chain_intact
    attr: x
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_RequiresName(t *testing.T) {
	path := writeScenarioFile(t, `
steps:
  - attr: x
    value: 1
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenario_RequiresSteps(t *testing.T) {
	path := writeScenarioFile(t, `
name: empty
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one step")
}

func TestLoadScenario_RejectsAmbiguousStep(t *testing.T) {
	path := writeScenarioFile(t, `
name: ambiguous
steps:
  - attr: x
    value: 1
    clear: y
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of")
}

func TestLoadScenario_RejectsUnknownAssertionType(t *testing.T) {
	path := writeScenarioFile(t, `
name: bad_assertion
steps:
  - attr: x
    value: 1
assertions:
  - type: trace_contains
    attr: x
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown assertion type")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
