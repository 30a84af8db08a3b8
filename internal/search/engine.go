package search

import (
	"math"

	"bfsynth/internal/program"
)

// Config carries the external, caller-supplied knobs the core depends on:
// the score coefficients and the per-node step cap. Parsing and defaults
// for these live outside the core.
type Config struct {
	Beta     float64
	Gamma    float64
	MaxSteps uint64
}

// Score computes correct - beta*min_len - gamma*log2(steps+1), the
// heuristic that rewards matched prefix, penalizes program growth, and
// penalizes runtime.
func Score(n Node, cfg Config) float64 {
	return float64(n.Correct) - cfg.Beta*float64(n.Root.MinLen) - cfg.Gamma*math.Log2(float64(n.Steps+1))
}

// Solution is a reported witness: a concrete (hole-free) program whose
// output prefix matches the target.
type Solution struct {
	Root *program.Node // concretized (no holes)
	Text string
}

// Snapshot is a read-only summary of search progress, published after
// each main-loop iteration for passive observers (such as the live
// progress server). It is never consulted by the search itself.
type Snapshot struct {
	FrontierSize int
	BestScore    float64
	Steps        uint64
	Solutions    int
}

// Observer receives snapshots. Publication is synchronous and best-effort:
// an Observer must not block or alter search ordering.
type Observer interface {
	Publish(Snapshot)
}

// Outcome is what Next reports each time it pauses: either a Solution (the
// caller decides whether to resume) or exhaustion.
type Outcome struct {
	Solution  *Solution
	Exhausted bool
}

// Engine drives the best-first frontier search. It is resumable: Next
// pops and expands nodes until it can report a solution or exhaustion,
// then returns control to the caller.
type Engine struct {
	target    Target
	cfg       Config
	frontier  *frontier
	seq       uint64
	seen      map[string]struct{}
	observers []Observer
	steps     uint64
}

// New constructs an Engine over target with the given configuration,
// seeded with the single start node (root = Hole(0)).
func New(target Target, cfg Config) *Engine {
	e := &Engine{
		target:   target,
		cfg:      cfg,
		frontier: newFrontier(),
		seen:     make(map[string]struct{}),
	}
	start := Initial()
	e.push(start)
	return e
}

// AddObserver registers a passive progress observer.
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

func (e *Engine) push(n Node) {
	s := Score(n, e.cfg)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return // non-finite score: dropped
	}
	e.frontier.push(item{node: n, score: s, seq: e.seq})
	e.seq++
}

func (e *Engine) publish() {
	if len(e.observers) == 0 {
		return
	}
	snap := Snapshot{
		FrontierSize: e.frontier.Len(),
		Steps:        e.steps,
		Solutions:    len(e.seen),
	}
	if e.frontier.Len() > 0 {
		snap.BestScore = (*e.frontier)[0].score
	}
	for _, o := range e.observers {
		o.Publish(snap)
	}
}

// Next pops and expands nodes until either a fresh (not previously
// reported) solution is found or the frontier is exhausted, then returns.
// Calling Next again resumes the search from where it left off.
func (e *Engine) Next() Outcome {
	for {
		it, ok := e.frontier.pop()
		if !ok {
			return Outcome{Exhausted: true}
		}
		n := it.node
		e.steps = n.Steps

		if n.Correct >= len(e.target) {
			concrete := program.ConcretizeMin(n.Root)
			text := program.ToText(concrete)
			if _, reported := e.seen[text]; reported {
				e.publish()
				continue // same concrete program reached via another partial state: skip silently
			}
			e.seen[text] = struct{}{}
			e.publish()
			return Outcome{Solution: &Solution{Root: concrete, Text: text}}
		}

		if n.Steps > e.cfg.MaxSteps {
			e.publish()
			continue
		}

		for _, child := range StepOnce(n, e.target) {
			if Halted(child) && child.Correct < len(e.target) {
				continue // premature halt: prune
			}
			if child.Steps > e.cfg.MaxSteps {
				continue
			}
			e.push(child)
		}
		e.publish()
	}
}
