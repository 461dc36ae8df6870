package main

import (
	"slices"
	"strings"

	"github.com/elfpath/aoc"
)

// done marks the state where nothing more will be opened.
const done = -1

type valves struct {
	flow  []int   // nonzero valves, in name order
	dist  [][]int // travel time between valves; the last row is AA
	start int
	total int
}

type tunnelState struct {
	At      int
	Elapsed int
	Open    uint32
}

func (s solver) valves() valves {
	var g aoc.Graph[string]
	rates := map[string]int{}
	s.ForLines(func(line string) {
		f := strings.Fields(line)
		name := f[1]
		rates[name] = aoc.Int(strings.TrimSuffix(aoc.TrimPrefix(f[4], "rate="), ";"))
		g.AddNode(name)
		for _, to := range f[9:] {
			g.AddEdge(name, strings.TrimSuffix(to, ","), 1)
		}
	})
	before := len(g.Nodes)
	g.Collapse(func(n string) bool { return n == "AA" || rates[n] > 0 })
	s.Debugf("collapsed tunnels from %d to %d valves", before, len(g.Nodes))

	var names []string
	for n, r := range rates {
		if r > 0 {
			names = append(names, n)
		}
	}
	slices.Sort(names)
	names = append(names, "AA")

	v := valves{start: len(names) - 1}
	for _, n := range names[:v.start] {
		v.flow = append(v.flow, rates[n])
	}
	v.total = aoc.Sum(v.flow...)
	for _, a := range names {
		d := g.Distances(a)
		row := make([]int, len(names))
		for j, b := range names {
			if c, ok := d[b]; ok {
				row[j] = c
			} else {
				row[j] = -1
			}
		}
		v.dist = append(v.dist, row)
	}
	return v
}

// next returns the transitions of a single explorer with limit minutes.
// The cost of a move is the pressure not released while making it, so
// minimizing cost maximizes the pressure released.
func (v valves) next(limit int) func(tunnelState, func(tunnelState, int)) {
	return func(st tunnelState, emit func(tunnelState, int)) {
		if st.At == done {
			return
		}
		loss := v.total
		for j, f := range v.flow {
			if st.Open&(1<<j) != 0 {
				loss -= f
			}
		}
		for j := range v.flow {
			if st.Open&(1<<j) != 0 || v.dist[st.At][j] < 0 {
				continue
			}
			d := v.dist[st.At][j] + 1
			if st.Elapsed+d >= limit {
				continue
			}
			emit(tunnelState{At: j, Elapsed: st.Elapsed + d, Open: st.Open | 1<<j}, d*loss)
		}
		emit(tunnelState{At: done, Elapsed: limit, Open: st.Open}, (limit-st.Elapsed)*loss)
	}
}

/*
want=1651

Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
*/
func (s solver) D16p1() any {
	const limit = 30
	v := s.valves()
	res, err := aoc.Search[tunnelState, int](aoc.Funcs[tunnelState, int]{
		Start:      []tunnelState{{At: v.start}},
		Transition: v.next(limit),
		Goal:       func(st tunnelState) bool { return st.Elapsed == limit },
	})
	aoc.MustDo(err)
	s.Debugf("settled %d states", res.Settled)
	return limit*v.total - res.Cost
}

// want=1707
func (s solver) D16p2() any {
	const limit = 26
	v := s.valves()
	costs := aoc.MustGet(aoc.Reach([]tunnelState{{At: v.start}}, v.next(limit)))

	full := uint32(1)<<len(v.flow) - 1
	best := make([]int, full+1)
	costs.Range(func(st tunnelState, c int) bool {
		if st.At == done {
			best[st.Open] = max(best[st.Open], limit*v.total-c)
		}
		return true
	})
	// bestSub[m] is the best release using only valves in m.
	bestSub := slices.Clone(best)
	for m := uint32(1); m <= full; m++ {
		for j := range v.flow {
			if m&(1<<j) != 0 {
				bestSub[m] = max(bestSub[m], bestSub[m&^(1<<j)])
			}
		}
	}
	var out int
	for m := uint32(0); m <= full; m++ {
		out = max(out, best[m]+bestSub[full&^m])
	}
	return out
}
