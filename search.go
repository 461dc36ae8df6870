package aoc

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnreachable is returned by Search when the frontier empties before
	// any goal state is settled.
	ErrUnreachable = errors.New("aoc: goal unreachable")

	// ErrMalformedTransition is wrapped by *TransitionError.
	ErrMalformedTransition = errors.New("aoc: negative transition cost")

	// ErrInvalidHeuristic is returned when a heuristic estimate is negative.
	ErrInvalidHeuristic = errors.New("aoc: negative heuristic estimate")

	// ErrNoStarts is returned when a problem has no start states.
	ErrNoStarts = errors.New("aoc: no start states")
)

// TransitionError reports a transition with a negative cost.
type TransitionError[S comparable, C Number] struct {
	From, To S
	Cost     C
}

func (e *TransitionError[S, C]) Error() string {
	return fmt.Sprintf("%v: %v -> %v costs %v", ErrMalformedTransition, e.From, e.To, e.Cost)
}

func (e *TransitionError[S, C]) Unwrap() error {
	return ErrMalformedTransition
}

// Problem describes a state space for Search.
//
// Next must be a pure function of its state and must only emit non-negative
// costs. Estimate must never overestimate the remaining cost to a goal; a
// constant zero is always valid and makes Search behave like Dijkstra.
type Problem[S comparable, C Number] interface {
	Starts() []S
	Next(s S, emit func(next S, cost C))
	IsGoal(s S) bool
	Estimate(s S) C
}

// Funcs is a Problem built from closures. A nil Goal never matches and a
// nil Heuristic is zero.
type Funcs[S comparable, C Number] struct {
	Start      []S
	Transition func(s S, emit func(next S, cost C))
	Goal       func(s S) bool
	Heuristic  func(s S) C
}

func (f Funcs[S, C]) Starts() []S { return f.Start }

func (f Funcs[S, C]) Next(s S, emit func(S, C)) {
	f.Transition(s, emit)
}

func (f Funcs[S, C]) IsGoal(s S) bool {
	return f.Goal != nil && f.Goal(s)
}

func (f Funcs[S, C]) Estimate(s S) C {
	if f.Heuristic == nil {
		var zero C
		return zero
	}
	return f.Heuristic(s)
}

// Never is a goal predicate that matches nothing, for exhaustive searches.
func Never[S any](S) bool { return false }

// Options controls the optional bookkeeping done by Search.
type Options struct {
	Trace bool
	Paths bool
}

type Option func(*Options)

// WithTrace records the priority of every extracted state in Result.Trace.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}

// WithPaths records predecessor links so that Result.Path works.
func WithPaths() Option {
	return func(o *Options) { o.Paths = true }
}

// Result is the outcome of a Search.
type Result[S comparable, C Number] struct {
	// Goal is the goal state that was settled, if Found.
	Goal S
	// Cost is the cost of reaching Goal.
	Cost  C
	Found bool

	// Costs holds the best cost found for every state seen. States that
	// were settled hold their true distance.
	Costs *CostTable[S, C]
	// Settled is the number of states taken off the frontier.
	Settled int
	// Trace is the priority of each settled state, in order. Only set
	// WithTrace.
	Trace []C

	parents map[S]S
}

// Path returns the states from a start to Goal, inclusive. It returns nil
// unless the search was run WithPaths and found a goal.
func (r Result[S, C]) Path() []S {
	if !r.Found || r.parents == nil {
		return nil
	}
	path := []S{r.Goal}
	for cur := r.Goal; ; {
		prev, ok := r.parents[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)
	return path
}

// Search runs a best-first (A*) search over p and returns the cheapest cost
// to any goal state. Goals are only recognized when taken off the frontier,
// so the answer is optimal as long as p's heuristic is admissible.
//
// If no goal can be reached, Search returns ErrUnreachable along with a
// Result whose Costs hold every reachable state.
func Search[S comparable, C Number](p Problem[S, C], opts ...Option) (Result[S, C], error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	res := Result[S, C]{Costs: NewCostTable[S, C]()}
	if o.Paths {
		res.parents = make(map[S]S)
	}

	starts := p.Starts()
	if len(starts) == 0 {
		return res, ErrNoStarts
	}
	var zero C
	var frontier Frontier[S, C]
	for _, s := range starts {
		if _, ok := res.Costs.Get(s); ok {
			continue
		}
		h := p.Estimate(s)
		if h < zero {
			return res, fmt.Errorf("%w: %v for %v", ErrInvalidHeuristic, h, s)
		}
		res.Costs.Set(s, zero)
		frontier.Push(s, h)
	}

	var err error
	for {
		cur, pri, ok := frontier.Pop()
		if !ok {
			return res, ErrUnreachable
		}
		res.Settled++
		if o.Trace {
			res.Trace = append(res.Trace, pri)
		}
		g, _ := res.Costs.Get(cur)
		if p.IsGoal(cur) {
			res.Goal = cur
			res.Cost = g
			res.Found = true
			return res, nil
		}

		p.Next(cur, func(next S, cost C) {
			if err != nil {
				return
			}
			if cost < zero {
				err = &TransitionError[S, C]{From: cur, To: next, Cost: cost}
				return
			}
			cand := g + cost
			if old, ok := res.Costs.Get(next); ok && cand >= old {
				return
			}
			h := p.Estimate(next)
			if h < zero {
				err = fmt.Errorf("%w: %v for %v", ErrInvalidHeuristic, h, next)
				return
			}
			res.Costs.Set(next, cand)
			if res.parents != nil {
				res.parents[next] = cur
			}
			frontier.Push(next, cand+h)
		})
		if err != nil {
			return res, err
		}
	}
}

// Reach returns the distance from the nearest start to every state
// reachable through next.
func Reach[S comparable, C Number](starts []S, next func(s S, emit func(S, C))) (*CostTable[S, C], error) {
	res, err := Search[S, C](Funcs[S, C]{
		Start:      starts,
		Transition: next,
		Goal:       Never[S],
	})
	if errors.Is(err, ErrUnreachable) {
		err = nil
	}
	return res.Costs, err
}
