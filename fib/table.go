// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package fib

// table holds F(i) for 0 <= i <= n. A slot is valid only when set[i] is true,
// so F(0) = 0 is never confused with an empty slot.
type table struct {
	val []int32
	set []bool
}

func newTable(n int) *table {
	return &table{
		val: make([]int32, n+1),
		set: make([]bool, n+1),
	}
}

func (t *table) get(i int) (int32, bool) {
	return t.val[i], t.set[i]
}

// put stores v at i unless the slot is already filled.
func (t *table) put(i int, v int32) {
	if t.set[i] {
		return
	}
	t.val[i] = v
	t.set[i] = true
}

func (t *table) memo(n int, s *Stats) int32 {
	s.Calls++
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	if v, ok := t.get(n); ok {
		return v
	}
	v := t.memo(n-1, s) + t.memo(n-2, s)
	s.Additions++
	t.put(n, v)
	return v
}
