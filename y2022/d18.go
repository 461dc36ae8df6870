package main

import (
	"strings"

	"github.com/elfpath/aoc"
)

type cube = aoc.Pt3[int]

func (s solver) droplet() map[cube]bool {
	lava := map[cube]bool{}
	s.ForLines(func(line string) {
		v := aoc.Ints(strings.Split(line, ",")...)
		lava[cube{X: v[0], Y: v[1], Z: v[2]}] = true
	})
	return lava
}

/*
want=64

2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5
*/
func (s solver) D18p1() any {
	lava := s.droplet()
	var area int
	for c := range lava {
		c.ForFaces(func(n cube) bool {
			if !lava[n] {
				area++
			}
			return true
		})
	}
	return area
}

// want=58
func (s solver) D18p2() any {
	lava := s.droplet()
	var lo, hi cube
	first := true
	for c := range lava {
		if first {
			lo, hi, first = c, c, false
			continue
		}
		lo = cube{X: min(lo.X, c.X), Y: min(lo.Y, c.Y), Z: min(lo.Z, c.Z)}
		hi = cube{X: max(hi.X, c.X), Y: max(hi.Y, c.Y), Z: max(hi.Z, c.Z)}
	}
	lo = cube{X: lo.X - 1, Y: lo.Y - 1, Z: lo.Z - 1}
	hi = cube{X: hi.X + 1, Y: hi.Y + 1, Z: hi.Z + 1}

	// Flood the air around the droplet from a corner of the padded box.
	air := aoc.MustGet(aoc.Reach([]cube{lo}, func(c cube, emit func(cube, int)) {
		c.ForFaces(func(n cube) bool {
			if n.Within(lo, hi) && !lava[n] {
				emit(n, 1)
			}
			return true
		})
	}))
	s.Debugf("%d cells of outside air", air.Len())

	var area int
	air.Range(func(c cube, _ int) bool {
		c.ForFaces(func(n cube) bool {
			if lava[n] {
				area++
			}
			return true
		})
		return true
	})
	return area
}
