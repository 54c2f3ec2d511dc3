// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

// Package fib computes Fibonacci numbers by naive and by memoized recursion.
//
// Values are int32. F(46) is the last term that fits; larger indices wrap
// around silently, the same way any int32 addition does in Go.
package fib

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxIndex is the largest n for which F(n) is representable as an int32.
const MaxIndex = 46

var ErrNegativeIndex = errors.New("negative index")

// Func is the signature shared by Naive and Memo.
type Func func(n int) (int32, error)

// Naive returns F(n) using plain double recursion.
func Naive(n int) (int32, error) {
	if n < 0 {
		return 0, fmt.Errorf("fib %d: %w", n, ErrNegativeIndex)
	}
	return naive(n), nil
}

func naive(n int) int32 {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return naive(n-1) + naive(n-2)
}

// Memo returns F(n) using recursion over a table private to this call.
func Memo(n int) (int32, error) {
	if n < 0 {
		return 0, fmt.Errorf("fib %d: %w", n, ErrNegativeIndex)
	}
	var s Stats
	return newTable(n).memo(n, &s), nil
}

// Sequence returns F(0) through F(n) computed with f, one call per term.
func Sequence(n int, f Func) ([]int32, error) {
	if n < 0 {
		return nil, fmt.Errorf("sequence %d: %w", n, ErrNegativeIndex)
	}
	seq := make([]int32, 0, n+1)
	for i := 0; i <= n; i++ {
		v, err := f(i)
		if err != nil {
			return nil, err
		}
		seq = append(seq, v)
	}
	return seq, nil
}

// Format joins seq with ", ".
func Format(seq []int32) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(parts, ", ")
}
