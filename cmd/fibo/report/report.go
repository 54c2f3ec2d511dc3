// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

// Package report prints the console sections shared by the demo and
// interactive tools.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gudals2040/250911-first-repo/fib"
)

func Sequence(w io.Writer, title string, n int, f fib.Func) error {
	seq, err := fib.Sequence(n, f)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, title+":")
	fmt.Fprintf(w, "Fibonacci sequence (0 through %d): %s\n\n", n, fib.Format(seq))
	return nil
}

// Lookup prints F(index) from both functions. Naive is left out when index
// is above limit.
func Lookup(w io.Writer, index, limit int) error {
	runNaive, ok := check(w, index, limit)
	if !ok {
		return nil
	}
	if runNaive {
		v, err := fib.Naive(index)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "F(%d) naive: %d\n", index, v)
	}
	v, err := fib.Memo(index)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "F(%d) memoized: %d\n", index, v)
	if !runNaive {
		skipped(w, index, limit)
	}
	return nil
}

// Compare times both functions at n, with the same rules as Lookup.
func Compare(w io.Writer, n, limit int) error {
	runNaive, ok := check(w, n, limit)
	if !ok {
		return nil
	}
	if runNaive {
		v, d, err := Timed(fib.Naive, n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Naive - F(%d): %d\n", n, v)
		fmt.Fprintf(w, "Elapsed: %s\n\n", Millis(d))
	}
	v, d, err := Timed(fib.Memo, n)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Memoized - F(%d): %d\n", n, v)
	fmt.Fprintf(w, "Elapsed: %s\n", Millis(d))
	if !runNaive {
		skipped(w, n, limit)
	}
	return nil
}

func Timed(f fib.Func, n int) (int32, time.Duration, error) {
	t := time.Now()
	v, err := f(n)
	d := time.Since(t)
	logrus.WithFields(logrus.Fields{"n": n, "elapsed": d}).Debug("computed")
	return v, d, err
}

func Millis(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func check(w io.Writer, index, limit int) (runNaive, ok bool) {
	if index < 0 {
		fmt.Fprintf(w, "Invalid index %d: the index must be 0 or greater.\n", index)
		return false, false
	}
	return index <= limit, true
}

func skipped(w io.Writer, index, limit int) {
	fmt.Fprintf(w, "Note: naive recursion skipped for index %d (above %d), it would take too long.\n", index, limit)
}
