package main

import "github.com/elfpath/aoc"

type hill struct {
	topo   *aoc.Topology
	height []byte
	start  int
	end    int
}

func (s solver) hill() hill {
	g := s.ByteGrid()
	h := hill{
		topo:   aoc.GridTopology(g, aoc.Bounded, nil),
		height: make([]byte, 0, len(g)*len(g[0])),
	}
	for y, row := range g {
		for x, c := range row {
			i := h.topo.Index(aoc.Pt{X: x, Y: y})
			switch c {
			case 'S':
				h.start = i
				c = 'a'
			case 'E':
				h.end = i
				c = 'z'
			}
			h.height = append(h.height, c)
		}
	}
	return h
}

// climb returns the fewest steps from any of starts to the summit.
func (h hill) climb(starts []int) int {
	end := h.topo.Pt(h.end)
	res, err := aoc.Search[int, int](aoc.Funcs[int, int]{
		Start: starts,
		Transition: func(i int, emit func(int, int)) {
			h.topo.ForNeighbors(i, func(j int) bool {
				if h.height[j] <= h.height[i]+1 {
					emit(j, 1)
				}
				return true
			})
		},
		Goal: func(i int) bool { return i == h.end },
		Heuristic: func(i int) int {
			return h.topo.Pt(i).MDist(end)
		},
	})
	aoc.MustDo(err)
	return res.Cost
}

/*
want=31

Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
*/
func (s solver) D12p1() any {
	h := s.hill()
	return h.climb([]int{h.start})
}

// want=29
func (s solver) D12p2() any {
	h := s.hill()
	var lows []int
	for i, c := range h.height {
		if c == 'a' {
			lows = append(lows, i)
		}
	}
	s.Debugf("%d trailheads", len(lows))
	return h.climb(lows)
}
