package main

import "github.com/elfpath/aoc"

type basin struct {
	topo   *aoc.Topology
	storms [][]bool // phase -> cell -> blizzard present
	start  int
	end    int
}

type expedition struct {
	Cell  int
	Phase int
}

func (s solver) basin() basin {
	g := s.ByteGrid()
	size := g.Size()
	b := basin{
		topo: aoc.GridTopology(g, aoc.Bounded, func(c byte) bool { return c == '#' }),
	}
	b.start = b.topo.Index(aoc.Pt{X: 1, Y: 0})
	b.end = b.topo.Index(aoc.Pt{X: size.X - 2, Y: size.Y - 1})

	// Blizzards move inside the walls and wrap around.
	inner := aoc.NewTopology(aoc.Pt{X: size.X - 2, Y: size.Y - 2}, aoc.Torus)
	type blizzard struct {
		cell int
		dir  aoc.Direction
	}
	var bs []blizzard
	for y, row := range g {
		for x, c := range row {
			if d, ok := aoc.ParseDirection(rune(c)); ok {
				bs = append(bs, blizzard{inner.Index(aoc.Pt{X: x - 1, Y: y - 1}), d})
			}
		}
	}
	period := aoc.LCM(inner.Size().X, inner.Size().Y)
	b.storms = make([][]bool, period)
	for t := range b.storms {
		stormy := make([]bool, b.topo.Len())
		for i, bz := range bs {
			p := inner.Pt(bz.cell)
			stormy[b.topo.Index(aoc.Pt{X: p.X + 1, Y: p.Y + 1})] = true
			bs[i].cell, _ = inner.Step(bz.cell, bz.dir)
		}
		b.storms[t] = stormy
	}
	s.Debugf("%d blizzards repeat every %d minutes", len(bs), period)
	return b
}

// cross returns how long it takes to get from one cell to another leaving
// at phase, and the phase on arrival.
func (b basin) cross(from, to, phase int) (int, int) {
	target := b.topo.Pt(to)
	res, err := aoc.Search[expedition, int](aoc.Funcs[expedition, int]{
		Start: []expedition{{Cell: from, Phase: phase}},
		Transition: func(e expedition, emit func(expedition, int)) {
			next := (e.Phase + 1) % len(b.storms)
			try := func(c int) bool {
				if !b.storms[next][c] {
					emit(expedition{Cell: c, Phase: next}, 1)
				}
				return true
			}
			try(e.Cell)
			b.topo.ForNeighbors(e.Cell, try)
		},
		Goal: func(e expedition) bool { return e.Cell == to },
		Heuristic: func(e expedition) int {
			return b.topo.Pt(e.Cell).MDist(target)
		},
	})
	aoc.MustDo(err)
	return res.Cost, res.Goal.Phase
}

/*
want=18

#.######
#>>.<^<#
#.<..<<#
#>v.><>#
#<^v^^>#
######.#
*/
func (s solver) D24p1() any {
	b := s.basin()
	n, _ := b.cross(b.start, b.end, 0)
	return n
}

// want=54
func (s solver) D24p2() any {
	b := s.basin()
	var total, phase int
	for _, leg := range [][2]int{{b.start, b.end}, {b.end, b.start}, {b.start, b.end}} {
		n, p := b.cross(leg[0], leg[1], phase)
		s.Debugf("leg %v took %d minutes", leg, n)
		total += n
		phase = p
	}
	return total
}
