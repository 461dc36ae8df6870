package main

import (
	"regexp"
	"strings"

	"github.com/elfpath/aoc"
)

var moveRx = regexp.MustCompile(`\d+|[LR]`)

type board struct {
	topo  *aoc.Topology
	start int
	moves []string
}

func (s solver) board(wrap aoc.Wrap) board {
	maze, path, ok := strings.Cut(string(s.Input()), "\n\n")
	if !ok {
		aoc.Log.Fatal("no path below the board")
	}
	var g aoc.Grid[byte]
	for _, line := range strings.Split(maze, "\n") {
		if line != "" {
			g = append(g, []byte(line))
		}
	}
	topo, err := aoc.MapTopology(g, wrap,
		func(c byte) bool { return c == ' ' },
		func(c byte) bool { return c == '#' })
	aoc.MustDo(err)
	b := board{topo: topo, start: -1, moves: moveRx.FindAllString(path, -1)}
	for i := 0; i < topo.Len() && b.start < 0; i++ {
		if !topo.Void(i) && !topo.Blocked(i) {
			b.start = i
		}
	}
	return b
}

// walk follows the path and returns the password for where it ends.
func (b board) walk() int {
	at, dir := b.start, aoc.Right
	for _, m := range b.moves {
		switch m {
		case "L":
			dir = dir.Turn(false)
		case "R":
			dir = dir.Turn(true)
		default:
			for n := aoc.Int(m); n > 0; n-- {
				next, nd, ok := b.topo.Move(at, dir)
				if !ok {
					break
				}
				at, dir = next, nd
			}
		}
	}
	p := b.topo.Pt(at)
	// Facing is scored Right=0, Down=1, Left=2, Up=3.
	return 1000*(p.Y+1) + 4*(p.X+1) + int(dir+3)%4
}

/*
want=6032

        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.

10R5L5R10L4R5L5
*/
func (s solver) D22p1() any {
	return s.board(aoc.Torus).walk()
}

// want=5031
func (s solver) D22p2() any {
	return s.board(aoc.Cube).walk()
}
