package aoc

import (
	"golang.org/x/exp/constraints"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ToGraph converts the cells reachable from start into a graph. If
// allowDiagonals is true, then diagonal neighbors are included. disallowed
// is called on each cell, and if it returns true, that cell is not included
// in the graph. Corridors are collapsed into weighted edges; start is always
// kept.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}
	open := func(p Pt) bool {
		v, ok := grid.AtOk(p)
		return ok && !disallowed(v)
	}

	cells := MustGet(Reach([]Pt{start}, func(p1 Pt, emit func(Pt, int)) {
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if open(p2) {
				emit(p2, 1)
			}
			return true
		})
	}))

	var g Graph[Pt]
	cells.Range(func(p1 Pt, _ int) bool {
		g.AddNode(p1)
		fn(p1, func(p2 Pt) (keepGoing bool) {
			if _, ok := cells.Get(p2); ok {
				g.AddEdge(p1, p2, 1)
			}
			return true
		})
		return true
	})
	g.Collapse(func(p Pt) bool { return p == start })
	return g
}

// FloodFill fills all empty cells reachable from start with fill, moving
// horizontally and vertically. It returns the number of cells filled.
func FloodFill[T comparable](grid Grid[T], start Pt, empty, fill T) int {
	if v, ok := grid.AtOk(start); !ok || v != empty {
		return 0
	}
	filled := MustGet(Reach([]Pt{start}, func(p Pt, emit func(Pt, int)) {
		p.ForImmediateNeighbors(func(n Pt) (keepGoing bool) {
			if v, ok := grid.AtOk(n); ok && v == empty {
				emit(n, 1)
			}
			return true
		})
	}))
	filled.Range(func(p Pt, _ int) bool {
		grid.Set(p, fill)
		return true
	})
	return filled.Len()
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Delta returns the unit step taken when moving in direction d.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Turn returns the direction after a quarter turn, clockwise if right is
// true.
func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// ParseDirection returns the direction drawn as r (one of ^>v<).
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(b Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + b.X, p.Y + b.Y}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// StandardizePt wraps p into the rectangle [0, size).
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

// ForFaces calls f with the six points sharing a face with p.
func (p Pt3[T]) ForFaces(f func(Pt3[T]) (keepGoing bool)) {
	for _, d := range [...]Pt3[T]{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	} {
		if !f(Pt3[T]{p.X + d.X, p.Y + d.Y, p.Z + d.Z}) {
			return
		}
	}
}

func (p Pt3[T]) Neg() Pt3[T] {
	return Pt3[T]{-p.X, -p.Y, -p.Z}
}

// Within reports whether p lies in the box spanned by lo and hi, inclusive.
func (p Pt3[T]) Within(lo, hi Pt3[T]) bool {
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}
