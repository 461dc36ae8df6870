package aoc

import (
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// CostTable records the best known cost for each state a search has seen.
//
// Set always overwrites; keeping costs monotone is the caller's job.
type CostTable[S comparable, C Number] struct {
	m map[S]C
}

func NewCostTable[S comparable, C Number]() *CostTable[S, C] {
	return &CostTable[S, C]{m: make(map[S]C)}
}

func (t *CostTable[S, C]) Get(s S) (C, bool) {
	c, ok := t.m[s]
	return c, ok
}

func (t *CostTable[S, C]) Set(s S, c C) {
	InitMap(&t.m)
	t.m[s] = c
}

func (t *CostTable[S, C]) Len() int {
	return len(t.m)
}

// Range calls f for each state and its cost, in no particular order, until f
// returns false.
func (t *CostTable[S, C]) Range(f func(s S, c C) (keepGoing bool)) {
	for s, c := range t.m {
		if !f(s, c) {
			return
		}
	}
}

// States returns the recorded states in no particular order.
func (t *CostTable[S, C]) States() []S {
	return maps.Keys(t.m)
}

// Hash returns a fingerprint of the whole table. Two tables with the same
// entries hash the same regardless of insertion order.
func (t *CostTable[S, C]) Hash() deephash.Sum {
	return deephash.Hash(&t.m)
}
