package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExampleScenario(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-scenario", "ex.scenario.toml", "-log-level", "debug", "-stats"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "shift_left")
	assert.Contains(t, out, "1100")
	assert.Contains(t, out, "error: unset: index 4 out of bounds for length 4")
	assert.Contains(t, out, "final 1100")
	assert.Contains(t, out, "stats mutations=1 reads=1 shifts=1 errors=0")
	assert.Contains(t, stderr.String(), "scenario completed")
}

func TestRunExpectationFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	doc := "length = 3\n[[step]]\nop = \"count\"\nexpect = \"1\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-scenario", path, "-log-format", "json"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expectation failed")
}

func TestRunRequiresScenario(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Error(t, run(nil, &stdout, &stderr))
	assert.Error(t, run([]string{"-log-format", "xml", "-scenario", "ex.scenario.toml"}, &stdout, &stderr))
}
