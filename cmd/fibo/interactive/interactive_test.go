// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package interactive

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(strings.NewReader("10\n15\n"), &buf, 45))
	out := buf.String()

	seq := "Fibonacci sequence (0 through 10): 0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55\n"
	require.Equal(t, 2, strings.Count(out, seq))
	require.Contains(t, out, "Naive - F(15): 610\n")
	require.Contains(t, out, "Memoized - F(15): 610\n")
	require.Regexp(t, `Elapsed: \d+ms\n`, out)
	require.True(t, strings.HasSuffix(out, "Done.\n"))
}

func TestRunAboveLimit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(strings.NewReader("5 46"), &buf, 45))
	out := buf.String()

	require.Contains(t, out, "Memoized - F(46): 1836311903\n")
	require.NotContains(t, out, "Naive - F(46)")
	require.Contains(t, out, "Note: naive recursion skipped for index 46")
	require.True(t, strings.HasSuffix(out, "Done.\n"))
}

func TestRunNegativeBound(t *testing.T) {
	var buf bytes.Buffer
	err := run(strings.NewReader("-1\n3\n"), &buf, 45)
	require.ErrorIs(t, err, errNegativeBound)

	out := buf.String()
	require.Contains(t, out, "Invalid bound -1")
	require.NotContains(t, out, "Fibonacci sequence")
	require.NotContains(t, out, "Enter an index")
}

func TestRunNegativeIndex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(strings.NewReader("3\n-2\n"), &buf, 45))
	out := buf.String()

	require.Contains(t, out, "Fibonacci sequence (0 through 3): 0, 1, 1, 2\n")
	require.Contains(t, out, "Invalid index -2")
	require.NotContains(t, out, "Elapsed")
	require.True(t, strings.HasSuffix(out, "Done.\n"))
}

func TestRunBoundAboveLimit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(strings.NewReader("12 3"), &buf, 10))
	out := buf.String()

	require.Contains(t, out, "Naive recursion skipped: bound 12 is above 10.")
	require.Equal(t, 1, strings.Count(out, "Fibonacci sequence (0 through 12)"))
}

func TestRunBadInput(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, run(strings.NewReader("ten\n"), &buf, 45))

	buf.Reset()
	require.Error(t, run(strings.NewReader("4\n"), &buf, 45))
}

type closer struct {
	io.Reader
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return nil
}

func TestRunClosesInput(t *testing.T) {
	in := &closer{Reader: strings.NewReader("2\n2\n")}
	require.NoError(t, run(in, io.Discard, 45))
	require.True(t, in.closed)
}
