package main

import (
	"math"
	"regexp"

	"github.com/elfpath/aoc"
)

var numRx = regexp.MustCompile(`\d+`)

const (
	ore = iota
	clay
	obsidian
	geode
)

type blueprint struct {
	id   int
	cost [4][3]int // ore, clay and obsidian needed per robot kind
	cap  [4]int    // robots of a kind beyond this are never useful
}

type mine struct {
	Elapsed int
	Robots  [4]int
	Stock   [3]int
}

func (s solver) blueprints() []blueprint {
	var out []blueprint
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		v := aoc.Ints(numRx.FindAllString(line, -1)...)
		b := blueprint{id: v[0]}
		b.cost[ore][ore] = v[1]
		b.cost[clay][ore] = v[2]
		b.cost[obsidian][ore], b.cost[obsidian][clay] = v[3], v[4]
		b.cost[geode][ore], b.cost[geode][obsidian] = v[5], v[6]
		for _, c := range b.cost {
			for r, n := range c {
				b.cap[r] = max(b.cap[r], n)
			}
		}
		b.cap[geode] = math.MaxInt
		out = append(out, b)
	})
	return out
}

// tri is the most geodes that could be cracked in n minutes if a new geode
// robot came online every minute.
func tri(n int) int { return n * (n - 1) / 2 }

// geodes returns the most geodes b can crack in limit minutes.
//
// The search minimizes the geodes missed relative to tri. Each transition
// waits until a robot is affordable and builds it, so there are no
// single-minute states.
func (b blueprint) geodes(limit int) (int, int) {
	res, err := aoc.Search[mine, int](aoc.Funcs[mine, int]{
		Start: []mine{{Robots: [4]int{ore: 1}}},
		Transition: func(m mine, emit func(mine, int)) {
			if m.Elapsed == limit {
				return
			}
			missed := func(to int) int {
				return tri(to) - tri(m.Elapsed) - (to-m.Elapsed)*m.Robots[geode]
			}
			for k := geode; k >= ore; k-- {
				if m.Robots[k] >= b.cap[k] {
					continue
				}
				wait, ok := 0, true
				for r, c := range b.cost[k] {
					short := c - m.Stock[r]
					if short <= 0 {
						continue
					}
					if m.Robots[r] == 0 {
						ok = false
						break
					}
					wait = max(wait, (short+m.Robots[r]-1)/m.Robots[r])
				}
				at := m.Elapsed + wait + 1
				if !ok || at >= limit {
					continue
				}
				n := mine{Elapsed: at, Robots: m.Robots}
				for r := range n.Stock {
					n.Stock[r] = m.Stock[r] + m.Robots[r]*(wait+1) - b.cost[k][r]
					n.Stock[r] = min(n.Stock[r], (limit-at)*b.cap[r])
				}
				n.Robots[k]++
				emit(n, missed(at))
			}
			emit(mine{Elapsed: limit}, missed(limit))
		},
		Goal: func(m mine) bool { return m.Elapsed == limit },
		Heuristic: func(m mine) int {
			return (limit - m.Elapsed) * (m.Elapsed - m.Robots[geode])
		},
	})
	aoc.MustDo(err)
	return tri(limit) - res.Cost, res.Settled
}

/*
want=33

Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.
Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.
*/
func (s solver) D19p1() any {
	var quality int
	for _, b := range s.blueprints() {
		n, settled := b.geodes(24)
		s.Debugf("blueprint %d: %d geodes, %d states", b.id, n, settled)
		quality += b.id * n
	}
	return quality
}

// want=3472
func (s solver) D19p2() any {
	bps := s.blueprints()
	out := 1
	for _, b := range bps[:min(3, len(bps))] {
		n, settled := b.geodes(32)
		s.Debugf("blueprint %d: %d geodes, %d states", b.id, n, settled)
		out *= n
	}
	return out
}
