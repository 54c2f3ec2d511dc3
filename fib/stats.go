// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package fib

import "fmt"

// Stats counts the work done by one top-level computation.
type Stats struct {
	Calls     uint64
	Additions uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("%d calls, %d additions", s.Calls, s.Additions)
}

// NaiveStats is Naive with call and addition counting. It is slower than
// Naive and should not be used for timing.
func NaiveStats(n int) (int32, Stats, error) {
	var s Stats
	if n < 0 {
		return 0, s, fmt.Errorf("fib %d: %w", n, ErrNegativeIndex)
	}
	v := naiveCounted(n, &s)
	return v, s, nil
}

func naiveCounted(n int, s *Stats) int32 {
	s.Calls++
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	v := naiveCounted(n-1, s) + naiveCounted(n-2, s)
	s.Additions++
	return v
}

// MemoStats is Memo with call and addition counting.
func MemoStats(n int) (int32, Stats, error) {
	var s Stats
	if n < 0 {
		return 0, s, fmt.Errorf("fib %d: %w", n, ErrNegativeIndex)
	}
	v := newTable(n).memo(n, &s)
	return v, s, nil
}
