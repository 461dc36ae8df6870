package aoc

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotCubeNet is returned by MapTopology when a Cube map does not fold
// into a cube.
var ErrNotCubeNet = errors.New("aoc: map is not a cube net")

// Wrap is the policy applied when a move leaves the map.
type Wrap int

const (
	// Bounded rejects moves off the edge or into the void.
	Bounded Wrap = iota
	// Torus re-enters on the opposite edge, skipping over void cells.
	Torus
	// Cube folds the map into a cube and walks onto the adjacent face.
	// The direction of travel changes with the face.
	Cube
)

func (w Wrap) String() string {
	switch w {
	case Bounded:
		return "bounded"
	case Torus:
		return "torus"
	case Cube:
		return "cube"
	}
	return fmt.Sprintf("Wrap(%d)", int(w))
}

// Topology is an immutable rectangular cell layout. Cells are addressed by
// flat index (y*width + x) so that search states can carry an int rather
// than a point.
//
// A cell may be blocked (part of the map, never entered) or void (not part
// of the map at all).
type Topology struct {
	size    Pt
	wrap    Wrap
	blocked []bool
	void    []bool
	net     *cubeNet
}

// NewTopology returns a topology of the given size with no blocked cells.
func NewTopology(size Pt, wrap Wrap) *Topology {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("bad topology size %v", size))
	}
	if wrap == Cube {
		panic("cube topology needs a map; use MapTopology")
	}
	return newTopology(size, wrap)
}

func newTopology(size Pt, wrap Wrap) *Topology {
	return &Topology{
		size:    size,
		wrap:    wrap,
		blocked: make([]bool, size.X*size.Y),
		void:    make([]bool, size.X*size.Y),
	}
}

// GridTopology returns a topology shaped like g. Cells for which blocked
// returns true can never be stepped on. blocked may be nil.
func GridTopology[T any](g Grid[T], wrap Wrap, blocked func(T) bool) *Topology {
	return MustGet(MapTopology(g, wrap, nil, blocked))
}

// MapTopology returns a topology as wide as the longest row of g. Cells
// past the end of a row, and cells for which void returns true, are not
// part of the map. void and blocked may be nil.
func MapTopology[T any](g Grid[T], wrap Wrap, void, blocked func(T) bool) (*Topology, error) {
	var size Pt
	for _, row := range g {
		size.X = max(size.X, len(row))
	}
	size.Y = len(g)
	if size.X == 0 || size.Y == 0 {
		return nil, fmt.Errorf("bad topology size %v", size)
	}
	t := newTopology(size, wrap)
	for y := range g {
		for x := 0; x < size.X; x++ {
			i := y*size.X + x
			if x >= len(g[y]) {
				t.void[i] = true
				continue
			}
			v := g[y][x]
			t.void[i] = void != nil && void(v)
			t.blocked[i] = blocked != nil && blocked(v)
		}
	}
	if wrap == Cube {
		net, err := foldCube(t)
		if err != nil {
			return nil, err
		}
		t.net = net
	}
	return t, nil
}

func (t *Topology) Size() Pt   { return t.size }
func (t *Topology) Len() int   { return len(t.blocked) }
func (t *Topology) Wrap() Wrap { return t.wrap }

// Contains reports whether p lies inside the rectangle.
func (t *Topology) Contains(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < t.size.X && p.Y < t.size.Y
}

// Index returns the flat index of p, which must be inside the rectangle.
func (t *Topology) Index(p Pt) int {
	if !t.Contains(p) {
		panic(fmt.Sprintf("point %v outside %v", p, t.size))
	}
	return p.Y*t.size.X + p.X
}

// Pt returns the point for flat index i.
func (t *Topology) Pt(i int) Pt {
	return Pt{i % t.size.X, i / t.size.X}
}

func (t *Topology) Blocked(i int) bool {
	return t.blocked[i]
}

func (t *Topology) Void(i int) bool {
	return t.void[i]
}

// Step returns the cell reached by moving one step from i in direction d.
// It reports false if the move leaves a Bounded topology or lands on a
// blocked cell.
func (t *Topology) Step(i int, d Direction) (int, bool) {
	j, _, ok := t.Move(i, d)
	return j, ok
}

// Move is like Step but also returns the direction of travel after the
// step, which differs from d only when a Cube topology crosses onto another
// face.
func (t *Topology) Move(i int, d Direction) (int, Direction, bool) {
	p := t.Pt(i).Add(d.Delta())
	nd := d
	switch t.wrap {
	case Bounded:
		if !t.Contains(p) {
			return -1, d, false
		}
	case Torus:
		p = StandardizePt(p, t.size)
		for t.void[p.Y*t.size.X+p.X] {
			p = StandardizePt(p.Add(d.Delta()), t.size)
		}
	case Cube:
		if !t.Contains(p) || t.void[p.Y*t.size.X+p.X] {
			p, nd = t.net.cross(t.Pt(i), d)
		}
	}
	j := p.Y*t.size.X + p.X
	if t.void[j] || t.blocked[j] {
		return -1, d, false
	}
	return j, nd, true
}

// ForNeighbors calls f with each cell one step away from i, in the order
// Up, Right, Down, Left, until f returns false.
func (t *Topology) ForNeighbors(i int, f func(j int) (keepGoing bool)) {
	for d := Up; d <= Left; d++ {
		if j, ok := t.Step(i, d); ok {
			if !f(j) {
				return
			}
		}
	}
}

// face is the placement of one face of the net on the cube: its outward
// normal and the directions its +x and +y axes point in.
type face struct {
	n, u, v Pt3[int]
}

type cubeNet struct {
	side     int
	faces    map[Pt]face // by tile, in units of side
	byNormal map[Pt3[int]]Pt
}

// foldCube places every face of t's map on a cube by rolling the cube
// across the net from the first face.
func foldCube(t *Topology) (*cubeNet, error) {
	var cells int
	for _, v := range t.void {
		if !v {
			cells++
		}
	}
	side := int(math.Sqrt(float64(cells / 6)))
	if side == 0 || side*side*6 != cells {
		return nil, fmt.Errorf("%w: %d cells", ErrNotCubeNet, cells)
	}
	isFace := func(tile Pt) bool {
		p := Pt{tile.X * side, tile.Y * side}
		return t.Contains(p) && !t.void[t.Index(p)]
	}

	c := &cubeNet{
		side:     side,
		faces:    map[Pt]face{},
		byNormal: map[Pt3[int]]Pt{},
	}
	var first Pt
	found := false
	for y := 0; y*side < t.size.Y && !found; y++ {
		for x := 0; x*side < t.size.X; x++ {
			if isFace(Pt{x, y}) {
				first, found = Pt{x, y}, true
				break
			}
		}
	}
	c.faces[first] = face{n: Pt3[int]{0, 0, 1}, u: Pt3[int]{1, 0, 0}, v: Pt3[int]{0, 1, 0}}
	q := []Pt{first}
	for len(q) > 0 {
		tile := q[0]
		q = q[1:]
		f := c.faces[tile]
		for d := Up; d <= Left; d++ {
			next := tile.Add(d.Delta())
			if _, ok := c.faces[next]; ok || !isFace(next) {
				continue
			}
			var g face
			switch d {
			case Right:
				g = face{n: f.u, u: f.n.Neg(), v: f.v}
			case Left:
				g = face{n: f.u.Neg(), u: f.n, v: f.v}
			case Down:
				g = face{n: f.v, u: f.u, v: f.n.Neg()}
			case Up:
				g = face{n: f.v.Neg(), u: f.u, v: f.n}
			}
			c.faces[next] = g
			q = append(q, next)
		}
	}
	if len(c.faces) != 6 {
		return nil, fmt.Errorf("%w: %d connected faces", ErrNotCubeNet, len(c.faces))
	}
	for tile, f := range c.faces {
		if _, ok := c.byNormal[f.n]; ok {
			return nil, fmt.Errorf("%w: faces overlap when folded", ErrNotCubeNet)
		}
		c.byNormal[f.n] = tile
	}
	return c, nil
}

// cross returns where walking off the edge of p's face in direction d
// lands, and the direction of travel on the new face.
func (c *cubeNet) cross(p Pt, d Direction) (Pt, Direction) {
	n := c.side
	tile := Pt{p.X / n, p.Y / n}
	f := c.faces[tile]
	local := Pt{p.X % n, p.Y % n}

	// The edge is crossed in direction out; the position along the edge is
	// at measured along tangent.
	var out, tangent Pt3[int]
	var at int
	switch d {
	case Right:
		out, tangent, at = f.u, f.v, local.Y
	case Left:
		out, tangent, at = f.u.Neg(), f.v, local.Y
	case Down:
		out, tangent, at = f.v, f.u, local.X
	case Up:
		out, tangent, at = f.v.Neg(), f.u, local.X
	}

	nextTile := c.byNormal[out]
	g := c.faces[nextTile]
	var nd Direction
	var gTangent Pt3[int]
	switch f.n.Neg() {
	case g.u:
		nd, gTangent = Right, g.v
	case g.u.Neg():
		nd, gTangent = Left, g.v
	case g.v:
		nd, gTangent = Down, g.u
	default:
		nd, gTangent = Up, g.u
	}
	if gTangent != tangent {
		at = n - 1 - at
	}

	var q Pt
	switch nd {
	case Right:
		q = Pt{0, at}
	case Left:
		q = Pt{n - 1, at}
	case Down:
		q = Pt{at, 0}
	case Up:
		q = Pt{at, n - 1}
	}
	return Pt{nextTile.X*n + q.X, nextTile.Y*n + q.Y}, nd
}
