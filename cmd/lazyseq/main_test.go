package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lazyseq version "+version+"\n", out)
}

func TestDemoSingle(t *testing.T) {
	cases := map[string]string{
		"names":      "[joy joyce]\n",
		"laziness":   "callbacks run before a terminal operation: 0\n",
		"find":       "Some(4) (square of Some(2)) after squaring 2 elements\n",
		"naturals":   "5050\n",
		"interleave": "lazy:  map(1) filter(1) map(2) filter(4) map(3) filter(9) map(4) filter(16) -> [4 16]\neager: map(1) map(2) map(3) map(4) filter(1) filter(4) filter(9) filter(16) -> [4 16]\n",
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			out, _, err := execute(t, "demo", name)
			require.NoError(t, err)
			assert.Equal(t, want, out)
		})
	}
}

func TestDemoAllAndUnknown(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "== names\n[joy joyce]\n")
	assert.Contains(t, out, "== naturals\n5050\n")

	_, _, err = execute(t, "demo", "sorting")
	assert.EqualError(t, err, `unknown demo "sorting", expected one of: names, laziness, interleave, find, naturals`)
}

func TestRunPrintsResultAndCounters(t *testing.T) {
	path := writeDoc(t, "source:\n  values: [1, 2, 3, 4]\nstages:\n  - map: square\n  - filter: even\n")
	out, _, err := execute(t, "run", path, "--metrics")
	require.NoError(t, err)
	assert.Equal(t, `list: [4 16]
lazyseq_elements_pulled_total{stage="1:map(square)"} 4
lazyseq_elements_pulled_total{stage="2:filter(even)"} 2
lazyseq_elements_pulled_total{stage="source"} 4
lazyseq_runs_total{stage="1:map(square)"} 1
lazyseq_runs_total{stage="2:filter(even)"} 1
lazyseq_runs_total{stage="source"} 1
`, out)
}

func TestRunTraceLogsToStderr(t *testing.T) {
	path := writeDoc(t, "source:\n  range: {from: 0, to: 3}\nterminal: count\n")
	out, errOut, err := execute(t, "run", path, "--trace")
	require.NoError(t, err)
	assert.Equal(t, "count: 3\n", out)
	assert.Contains(t, errOut, "element pulled")
	assert.Contains(t, errOut, "stage=source")
}

func TestRunRejectsInvalidDocument(t *testing.T) {
	path := writeDoc(t, "source:\n  generate: {seed: 0, step: 1}\nterminal: sum\n")
	_, errOut, err := execute(t, "run", path)
	assert.ErrorContains(t, err, "generate source is never bounded")
	assert.Empty(t, errOut, "the error is reported once, by main")

	_, _, err = execute(t, "run", path, "--log-level", "chatty")
	assert.ErrorContains(t, err, "unknown level")
}

func TestRunTimeoutCancelsEndlessFind(t *testing.T) {
	path := writeDoc(t, "source:\n  generate: {seed: 0, step: 1}\nterminal: find:lt:0\n")
	out, errOut, err := execute(t, "run", path, "--timeout", "20ms")
	assert.ErrorContains(t, err, "pipeline failed: context deadline exceeded")
	assert.Empty(t, out)
	assert.Empty(t, errOut)
}
