package aoc

import (
	"math"

	"golang.org/x/exp/maps"
)

// Graph is a weighted undirected graph.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.AddNode(a)
	g.AddNode(b)
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// Next emits every edge leaving a. It has the shape Search and Reach expect
// of a transition.
func (g *Graph[K]) Next(a K, emit func(K, int)) {
	for b, d := range g.Edges[a] {
		emit(b, d)
	}
}

// Distances returns the shortest distance from a to every node reachable
// from it.
func (g *Graph[K]) Distances(a K) map[K]int {
	costs := MustGet(Reach([]K{a}, g.Next))
	out := make(map[K]int, costs.Len())
	costs.Range(func(k K, d int) bool {
		out[k] = d
		return true
	})
	return out
}

// ShortestPath returns the nodes on a shortest path from a to b, inclusive,
// and its length. It reports false if b can't be reached.
func (g *Graph[K]) ShortestPath(a, b K) ([]K, int, bool) {
	res, err := Search[K, int](Funcs[K, int]{
		Start:      []K{a},
		Transition: g.Next,
		Goal:       func(k K) bool { return k == b },
	}, WithPaths())
	if err != nil {
		return nil, 0, false
	}
	return res.Path(), res.Cost, true
}

// ReachableNodes returns the set of nodes reachable from a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	costs := MustGet(Reach([]K{a}, g.Next))
	visited := make(map[K]bool, costs.Len())
	for _, k := range costs.States() {
		visited[k] = true
	}
	return visited
}

// AllShortestPaths returns the distance between every ordered pair of
// nodes using Floyd–Warshall. Unconnected pairs are math.MaxInt.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	dist := map[key]int{}
	for k1 := range g.Nodes {
		for k2 := range g.Nodes {
			if k1 == k2 {
				dist[key{k1, k1}] = 0
			} else if v, ok := g.Edges[k1][k2]; ok {
				dist[key{k1, k2}] = v
			} else {
				dist[key{k1, k2}] = math.MaxInt
			}
		}
	}
	for via := range g.Nodes {
		for k1 := range g.Nodes {
			d1 := dist[key{k1, via}]
			if d1 == math.MaxInt {
				continue
			}
			for k2 := range g.Nodes {
				d2 := dist[key{via, k2}]
				if d2 == math.MaxInt {
					continue
				}
				if d := d1 + d2; d < dist[key{k1, k2}] {
					dist[key{k1, k2}] = d
				}
			}
		}
	}
	return dist
}

// Collapse removes every node with exactly two edges, joining its two
// neighbors with a single edge carrying the summed weight. Nodes for which
// keep returns true are never removed; keep may be nil. If the neighbors
// were already joined, the shorter edge wins.
func (g *Graph[K]) Collapse(keep func(K) bool) {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 || (keep != nil && keep(k1)) {
				continue
			}
			ends := make([]K, 0, 2)
			for k := range e {
				ends = append(ends, k)
			}
			a, b := ends[0], ends[1]
			d := e[a] + e[b]
			if old, ok := g.Edges[a][b]; ok && old < d {
				d = old
			}
			g.RemoveNode(k1)
			g.AddEdge(a, b, d)
			trimmed = true
		}
		if !trimmed {
			return
		}
	}
}

type Edge[T comparable] struct {
	A, B T
}
