package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/splinterp/io"
)

func execute(args ...string) (string, error) {
	cmd := newRootCommand()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(positionalNumbers(cmd, args))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	return fname
}

func TestRun(t *testing.T) {
	fname := writeFile(t, "results.txt", "0\t0\t0\n1\t0\t1\n2\t0\t4\n3\t0\t9\n")
	cfg := writeFile(t, "linear.cfg", "[Interpolate]\nDegree = 1\n")

	tests := []struct {
		name string
		args []string
		out  string
	}{
		{"default", []string{fname, "1.5"}, "2.2500\n"},
		{"short k", []string{"-k", "1", fname, "1.5"}, "2.5000\n"},
		{"long k", []string{"--k=1", fname, "1.5"}, "2.5000\n"},
		{"k after args", []string{fname, "1.5", "-k", "2"}, "2.2500\n"},
		{"negative x", []string{fname, "-1"}, "1.0000\n"},
		{"negative fraction", []string{fname, "-1.5", "-k", "1"}, "-1.5000\n"},
		{"negative x after flags", []string{"-k", "2", "--der", "1", fname, "-0.5"}, "-1.0000\n"},
		{"explicit separator", []string{fname, "--", "-1"}, "1.0000\n"},
		{"sample point", []string{fname, "3"}, "9.0000\n"},
		{"derivative", []string{"--der", "1", fname, "1.5"}, "3.0000\n"},
		{"config", []string{"--config", cfg, fname, "1.5"}, "2.5000\n"},
		{"flag beats config", []string{"--config", cfg, "-k", "3", fname, "1.5"}, "2.2500\n"},
	}

	for _, test := range tests {
		out, err := execute(test.args...)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.out, out, test.name)
	}
}

func TestRunDeterministic(t *testing.T) {
	fname := writeFile(t, "results.txt", "0 1 2\n0.5 1 1\n1 1 3\n2 1 0\n2.5 1 1\n")
	out1, err := execute(fname, "1.7", "-k", "4")
	require.NoError(t, err)
	out2, err := execute(fname, "1.7", "-k", "4")
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}

func TestRunErrors(t *testing.T) {
	fname := writeFile(t, "results.txt", "0\t0\t0\n1\t0\t1\n2\t0\t4\n3\t0\t9\n")
	bad := writeFile(t, "bad.txt", "0\t0\t0\n1\t0\tone\n2\t0\t4\n3\t0\t9\n")
	badCfg := writeFile(t, "bad.cfg", "[Interpolate]\nXColumn = 2\n")

	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"one arg", []string{fname}},
		{"three args", []string{fname, "1", "2"}},
		{"bad x", []string{fname, "abc"}},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.txt"), "1"}},
		{"malformed file", []string{bad, "1"}},
		{"degree 0", []string{"-k", "0", fname, "1"}},
		{"degree 6", []string{"-k", "6", fname, "1"}},
		{"too few points", []string{"-k", "4", fname, "1"}},
		{"negative derivative", []string{"--der", "-1", fname, "1"}},
		{"negative degree", []string{fname, "-2", "-k", "-1"}},
		{"derivative above degree", []string{"--der", "4", fname, "1"}},
		{"short row", []string{writeFile(t, "short.txt", "0\t0\t0\n1\t1\n2\t0\t4\n3\t0\t9\n"), "1"}},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "missing.cfg"), fname, "1"}},
		{"bad config", []string{"--config", badCfg, fname, "1"}},
	}

	for _, test := range tests {
		out, err := execute(test.args...)
		assert.Error(t, err, test.name)
		assert.Empty(t, out, test.name)
	}
}

func TestPositionalNumbers(t *testing.T) {
	tests := []struct {
		args, want []string
	}{
		{[]string{"f.txt", "-1.5"}, []string{"--", "f.txt", "-1.5"}},
		{[]string{"f.txt", "-1.5", "-k", "2"}, []string{"-k", "2", "--", "f.txt", "-1.5"}},
		{[]string{"-k", "-1", "f.txt", "3"}, []string{"-k", "-1", "--", "f.txt", "3"}},
		{[]string{"--k=2", "-v", "f.txt", "-3e2"}, []string{"--k=2", "-v", "--", "f.txt", "-3e2"}},
		{[]string{"-vk", "4", "f.txt", "1"}, []string{"-vk", "4", "--", "f.txt", "1"}},
		{[]string{"--der", "1", "f.txt", "--", "-x"}, []string{"--der", "1", "--", "f.txt", "-x"}},
		{[]string{"--example-config"}, []string{"--example-config"}},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, positionalNumbers(newRootCommand(), test.args))
	}
}

func TestExampleConfig(t *testing.T) {
	out, err := execute("--example-config")
	require.NoError(t, err)
	assert.Equal(t, io.ExampleInterpolateFile+"\n", out)

	_, err = execute("--example-config", "file.txt")
	assert.Error(t, err)
}
