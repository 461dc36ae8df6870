package aoc

import (
	"container/heap"
	"fmt"
)

// FrontierItem is a live entry in a Frontier.
type FrontierItem[S comparable, C Number] struct {
	State    S
	Priority C

	seq uint64 // insertion order, breaks priority ties
	ix  int
}

func (i *FrontierItem[S, C]) String() string {
	return fmt.Sprintf("%v:%v", i.State, i.Priority)
}

// Frontier is a min-priority queue of search states holding at most one
// live entry per state. Entries with equal priority come out in the order
// they were pushed.
//
// The zero value is ready to use.
type Frontier[S comparable, C Number] struct {
	pq   frontierHeap[S, C]
	live map[S]*FrontierItem[S, C]
	seq  uint64
}

// Push adds s with priority p. If s already has a live entry, that entry is
// removed first.
func (f *Frontier[S, C]) Push(s S, p C) {
	InitMap(&f.live)
	if old, ok := f.live[s]; ok {
		heap.Remove(&f.pq, old.ix)
	}
	f.seq++
	it := &FrontierItem[S, C]{State: s, Priority: p, seq: f.seq}
	f.live[s] = it
	heap.Push(&f.pq, it)
}

// Pop removes and returns the entry with the lowest priority. It reports
// false if the frontier is empty.
func (f *Frontier[S, C]) Pop() (S, C, bool) {
	if len(f.pq) == 0 {
		var zs S
		var zc C
		return zs, zc, false
	}
	it := heap.Pop(&f.pq).(*FrontierItem[S, C])
	delete(f.live, it.State)
	return it.State, it.Priority, true
}

// Peek returns the entry Pop would return, without removing it.
func (f *Frontier[S, C]) Peek() (*FrontierItem[S, C], bool) {
	if len(f.pq) == 0 {
		return nil, false
	}
	return f.pq[0], true
}

// Remove drops the live entry for s. It reports whether there was one.
func (f *Frontier[S, C]) Remove(s S) bool {
	it, ok := f.live[s]
	if !ok {
		return false
	}
	heap.Remove(&f.pq, it.ix)
	delete(f.live, s)
	return true
}

// Contains reports whether s has a live entry.
func (f *Frontier[S, C]) Contains(s S) bool {
	_, ok := f.live[s]
	return ok
}

func (f *Frontier[S, C]) Len() int {
	return len(f.pq)
}

type frontierHeap[S comparable, C Number] []*FrontierItem[S, C]

func (pq frontierHeap[S, C]) Len() int { return len(pq) }

func (pq frontierHeap[S, C]) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontierHeap[S, C]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].ix = i
	pq[j].ix = j
}

func (pq *frontierHeap[S, C]) Push(x any) {
	it := x.(*FrontierItem[S, C])
	it.ix = len(*pq)
	*pq = append(*pq, it)
}

func (pq *frontierHeap[S, C]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // avoid memory leak
	it.ix = -1     // for safety
	*pq = old[:n-1]
	return it
}
