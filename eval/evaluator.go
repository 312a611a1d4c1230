package eval

// Result is the outcome of evaluating one entry.
type Result struct {
	Value int
	// Infinite marks the entry as a dead end according to the evaluator.
	Infinite bool
}

// HeuristicSet collects heuristics reachable from a set of evaluators.
type HeuristicSet map[Heuristic]struct{}

// Evaluator computes a scalar score for an entry.
type Evaluator interface {
	// Evaluate computes the result for the entry described by ctx. Callers
	// should go through Context.Result so the value is cached.
	Evaluate(ctx Context) Result

	// DeadEndsAreReliable reports whether an infinite result proves that the
	// entry is unsolvable.
	DeadEndsAreReliable() bool

	// InvolvedHeuristics adds every heuristic used by this evaluator to set.
	InvolvedHeuristics(set HeuristicSet)
}

// Heuristic is a named evaluator estimating the distance to a goal.
type Heuristic interface {
	Evaluator
	Name() string
}

// Context describes one entry under evaluation. It is owned by the caller and
// caches evaluator results for the lifetime of the entry's evaluation.
type Context interface {
	// Result returns the (cached) result of e for this entry.
	Result(e Evaluator) Result

	// IsPreferred reports whether the entry was reached by a preferred operator.
	IsPreferred() bool

	// State returns the state being evaluated.
	State() StateID

	// Parent returns the state the entry was generated from, if any.
	Parent() (StateID, bool)

	// G returns the path cost of the entry.
	G() int
}
