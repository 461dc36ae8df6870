package aoc

import (
	"errors"
	"math/rand"
	"testing"
)

// openGrid is a transition over a grid of bytes where '#' is a wall.
func openGrid(g Grid[byte]) func(Pt, func(Pt, int)) {
	return func(p Pt, emit func(Pt, int)) {
		p.ForImmediateNeighbors(func(n Pt) bool {
			if v, ok := g.AtOk(n); ok && v != '#' {
				emit(n, 1)
			}
			return true
		})
	}
}

func gridProblem(g Grid[byte], start, goal Pt, astar bool) Funcs[Pt, int] {
	f := Funcs[Pt, int]{
		Start:      []Pt{start},
		Transition: openGrid(g),
		Goal:       func(p Pt) bool { return p == goal },
	}
	if astar {
		f.Heuristic = func(p Pt) int { return p.MDist(goal) }
	}
	return f
}

func randomGrid(r *rand.Rand, w, h int) Grid[byte] {
	g := MakeGrid[byte](w, h)
	for y := range g {
		for x := range g[y] {
			g[y][x] = '.'
			if r.Intn(10) < 3 {
				g[y][x] = '#'
			}
		}
	}
	g[0][0] = '.'
	g[h-1][w-1] = '.'
	return g
}

// bfs is a plain breadth-first search used as an oracle.
func bfs(g Grid[byte], start, goal Pt) (int, bool) {
	dist := map[Pt]int{start: 0}
	q := []Pt{start}
	for len(q) > 0 {
		p := q[0]
		q = q[1:]
		if p == goal {
			return dist[p], true
		}
		openGrid(g)(p, func(n Pt, _ int) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[p] + 1
				q = append(q, n)
			}
		})
	}
	return 0, false
}

func TestSearchGrid3x3(t *testing.T) {
	g := MakeGrid[byte](3, 3)
	res, err := Search[Pt, int](gridProblem(g, Pt{0, 0}, Pt{2, 2}, false))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || res.Cost != 4 {
		t.Errorf("Search = (%v, found=%v), want 4", res.Cost, res.Found)
	}
	if res.Goal != (Pt{2, 2}) {
		t.Errorf("Goal = %v, want {2 2}", res.Goal)
	}
}

func TestSearchMatchesBFS(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		g := randomGrid(r, 12, 9)
		start, goal := Pt{0, 0}, Pt{11, 8}
		want, reachable := bfs(g, start, goal)
		for _, astar := range []bool{false, true} {
			res, err := Search[Pt, int](gridProblem(g, start, goal, astar))
			if !reachable {
				if !errors.Is(err, ErrUnreachable) {
					t.Errorf("grid %d astar=%v: err = %v, want ErrUnreachable", i, astar, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("grid %d astar=%v: %v", i, astar, err)
			}
			if res.Cost != want {
				t.Errorf("grid %d astar=%v: cost = %d, want %d", i, astar, res.Cost, want)
			}
		}
	}
}

func TestSearchTraceNonDecreasing(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	g := randomGrid(r, 20, 20)
	for _, astar := range []bool{false, true} {
		res, _ := Search[Pt, int](gridProblem(g, Pt{0, 0}, Pt{19, 19}, astar), WithTrace())
		if len(res.Trace) != res.Settled {
			t.Fatalf("len(Trace) = %d, Settled = %d", len(res.Trace), res.Settled)
		}
		for i := 1; i < len(res.Trace); i++ {
			if res.Trace[i] < res.Trace[i-1] {
				t.Fatalf("astar=%v: priority %d at %d after %d", astar, res.Trace[i], i, res.Trace[i-1])
			}
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := randomGrid(r, 15, 15)
	p := gridProblem(g, Pt{0, 0}, Pt{14, 14}, true)
	a, errA := Search[Pt, int](p, WithPaths())
	b, errB := Search[Pt, int](p, WithPaths())
	if errA != errB {
		t.Fatalf("errors differ: %v vs %v", errA, errB)
	}
	if a.Cost != b.Cost || a.Settled != b.Settled {
		t.Errorf("runs differ: (%d, %d) vs (%d, %d)", a.Cost, a.Settled, b.Cost, b.Settled)
	}
	if a.Costs.Hash() != b.Costs.Hash() {
		t.Error("cost tables differ between runs")
	}
	pa, pb := a.Path(), b.Path()
	if len(pa) != len(pb) {
		t.Fatalf("paths differ: %v vs %v", pa, pb)
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("paths differ at %d: %v vs %v", i, pa, pb)
		}
	}
}

func TestSearchPath(t *testing.T) {
	g := Grid[byte]{
		[]byte("..#.."),
		[]byte(".##.."),
		[]byte("....."),
	}
	res, err := Search[Pt, int](gridProblem(g, Pt{0, 0}, Pt{4, 0}, true), WithPaths())
	if err != nil {
		t.Fatal(err)
	}
	path := res.Path()
	if len(path) != res.Cost+1 {
		t.Fatalf("len(Path) = %d, want %d", len(path), res.Cost+1)
	}
	if path[0] != (Pt{0, 0}) || path[len(path)-1] != (Pt{4, 0}) {
		t.Errorf("Path = %v, want from {0 0} to {4 0}", path)
	}
	for i := 1; i < len(path); i++ {
		if path[i].MDist(path[i-1]) != 1 {
			t.Errorf("Path step %v -> %v is not adjacent", path[i-1], path[i])
		}
	}
	if res.Cost != 8 {
		t.Errorf("Cost = %d, want 8", res.Cost)
	}

	noPaths, _ := Search[Pt, int](gridProblem(g, Pt{0, 0}, Pt{4, 0}, true))
	if got := noPaths.Path(); got != nil {
		t.Errorf("Path without WithPaths = %v, want nil", got)
	}
}

func TestSearchMultiSource(t *testing.T) {
	// A line 0 - 1 - ... - 9 with the goal at 9.
	line := func(n int, emit func(int, int)) {
		if n > 0 {
			emit(n-1, 1)
		}
		if n < 9 {
			emit(n+1, 1)
		}
	}
	res, err := Search[int, int](Funcs[int, int]{
		Start:      []int{0, 8},
		Transition: line,
		Goal:       func(n int) bool { return n == 9 },
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 1 {
		t.Errorf("Cost = %d, want 1", res.Cost)
	}
	if c, _ := res.Costs.Get(0); c != 0 {
		t.Errorf("start 0 cost = %d, want 0", c)
	}
}

func TestSearchDecreaseKey(t *testing.T) {
	edges := map[string]map[string]int{
		"s": {"a": 5, "b": 1},
		"b": {"a": 1},
		"a": {"t": 1},
	}
	res, err := Search[string, int](Funcs[string, int]{
		Start: []string{"s"},
		Transition: func(n string, emit func(string, int)) {
			for m, c := range edges[n] {
				emit(m, c)
			}
		},
		Goal: func(n string) bool { return n == "t" },
	}, WithPaths())
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 3 {
		t.Errorf("Cost = %d, want 3", res.Cost)
	}
	if c, _ := res.Costs.Get("a"); c != 2 {
		t.Errorf("cost of a = %d, want 2", c)
	}
	want := []string{"s", "b", "a", "t"}
	got := res.Path()
	if len(got) != len(want) {
		t.Fatalf("Path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Path = %v, want %v", got, want)
		}
	}
}

func TestSearchInconsistentHeuristic(t *testing.T) {
	// h(A) overestimates the step A -> B but never the cost to G, so B is
	// first settled through S and then reopened through A.
	edges := map[string]map[string]int{
		"S": {"A": 1, "B": 3},
		"A": {"B": 1},
		"B": {"G": 5},
	}
	h := map[string]int{"A": 6}
	res, err := Search[string, int](Funcs[string, int]{
		Start: []string{"S"},
		Transition: func(n string, emit func(string, int)) {
			for m, c := range edges[n] {
				emit(m, c)
			}
		},
		Goal:      func(n string) bool { return n == "G" },
		Heuristic: func(n string) int { return h[n] },
	}, WithPaths())
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 7 {
		t.Errorf("Cost = %d, want 7", res.Cost)
	}
	want := []string{"S", "A", "B", "G"}
	got := res.Path()
	if len(got) != len(want) {
		t.Fatalf("Path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Path = %v, want %v", got, want)
		}
	}
}

func TestSearchFloatCosts(t *testing.T) {
	res, err := Search[int, float64](Funcs[int, float64]{
		Start: []int{0},
		Transition: func(n int, emit func(int, float64)) {
			if n < 4 {
				emit(n+1, 0.5)
			}
		},
		Goal: func(n int) bool { return n == 4 },
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 2 {
		t.Errorf("Cost = %v, want 2", res.Cost)
	}
}

func TestReachFloodFill(t *testing.T) {
	// A - B, A - C, B - D, C - D, D - E
	adj := map[string][]string{
		"A": {"B", "C"},
		"B": {"A", "D"},
		"C": {"A", "D"},
		"D": {"B", "C", "E"},
		"E": {"D"},
	}
	costs, err := Reach([]string{"A"}, func(n string, emit func(string, int)) {
		for _, m := range adj[n] {
			emit(m, 1)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"A": 0, "B": 1, "C": 1, "D": 2, "E": 3}
	if costs.Len() != len(want) {
		t.Fatalf("Reach found %d nodes, want %d", costs.Len(), len(want))
	}
	for n, d := range want {
		if got, ok := costs.Get(n); !ok || got != d {
			t.Errorf("dist(%s) = %d, %v; want %d", n, got, ok, d)
		}
	}
}

func TestSearchUnreachable(t *testing.T) {
	// Two components: {0, 1} and {2, 3}.
	res, err := Search[int, int](Funcs[int, int]{
		Start: []int{0},
		Transition: func(n int, emit func(int, int)) {
			emit(n^1, 1)
		},
		Goal: func(n int) bool { return n == 3 },
	})
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("err = %v, want ErrUnreachable", err)
	}
	if res.Found {
		t.Errorf("Found = true, want false")
	}
	if res.Costs.Len() != 2 {
		t.Errorf("Costs.Len() = %d, want 2", res.Costs.Len())
	}
}

func TestSearchErrors(t *testing.T) {
	_, err := Search[int, int](Funcs[int, int]{
		Start: []int{0},
		Transition: func(n int, emit func(int, int)) {
			emit(n+1, -1)
		},
	})
	if !errors.Is(err, ErrMalformedTransition) {
		t.Errorf("negative cost: err = %v, want ErrMalformedTransition", err)
	}
	var te *TransitionError[int, int]
	if !errors.As(err, &te) || te.From != 0 || te.To != 1 || te.Cost != -1 {
		t.Errorf("negative cost: err = %#v, want TransitionError 0 -> 1", err)
	}

	_, err = Search[int, int](Funcs[int, int]{
		Start:      []int{0},
		Transition: func(int, func(int, int)) {},
		Heuristic:  func(int) int { return -3 },
	})
	if !errors.Is(err, ErrInvalidHeuristic) {
		t.Errorf("negative heuristic: err = %v, want ErrInvalidHeuristic", err)
	}

	_, err = Search[int, int](Funcs[int, int]{
		Transition: func(int, func(int, int)) {},
	})
	if !errors.Is(err, ErrNoStarts) {
		t.Errorf("no starts: err = %v, want ErrNoStarts", err)
	}
}
