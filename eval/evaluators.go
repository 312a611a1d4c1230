package eval

// G evaluates an entry to its path cost.
type G struct{}

// NewG returns the path-cost evaluator.
func NewG() *G { return &G{} }

// Evaluate implements Evaluator.
func (*G) Evaluate(ctx Context) Result { return Result{Value: ctx.G()} }

// DeadEndsAreReliable implements Evaluator.
func (*G) DeadEndsAreReliable() bool { return true }

// InvolvedHeuristics implements Evaluator.
func (*G) InvolvedHeuristics(HeuristicSet) {}

// Const evaluates every entry to the same value.
type Const struct {
	value int
}

// NewConst returns an evaluator that always yields value.
func NewConst(value int) *Const { return &Const{value: value} }

// Evaluate implements Evaluator.
func (c *Const) Evaluate(Context) Result { return Result{Value: c.value} }

// DeadEndsAreReliable implements Evaluator.
func (*Const) DeadEndsAreReliable() bool { return true }

// InvolvedHeuristics implements Evaluator.
func (*Const) InvolvedHeuristics(HeuristicSet) {}

// Sum adds up its sub-evaluators. The sum is infinite as soon as one
// component is.
type Sum struct {
	subs []Evaluator
}

// NewSum returns the sum of subs.
func NewSum(subs ...Evaluator) *Sum { return &Sum{subs: subs} }

// Evaluate implements Evaluator.
func (s *Sum) Evaluate(ctx Context) Result {
	var total int
	for _, e := range s.subs {
		r := ctx.Result(e)
		if r.Infinite {
			return Result{Infinite: true}
		}
		total += r.Value
	}
	return Result{Value: total}
}

// DeadEndsAreReliable implements Evaluator.
func (s *Sum) DeadEndsAreReliable() bool {
	for _, e := range s.subs {
		if !e.DeadEndsAreReliable() {
			return false
		}
	}
	return true
}

// InvolvedHeuristics implements Evaluator.
func (s *Sum) InvolvedHeuristics(set HeuristicSet) {
	for _, e := range s.subs {
		e.InvolvedHeuristics(set)
	}
}

// Weighted multiplies a sub-evaluator by a constant weight.
type Weighted struct {
	sub    Evaluator
	weight int
}

// NewWeighted returns sub scaled by weight.
func NewWeighted(sub Evaluator, weight int) *Weighted {
	return &Weighted{sub: sub, weight: weight}
}

// Evaluate implements Evaluator.
func (w *Weighted) Evaluate(ctx Context) Result {
	r := ctx.Result(w.sub)
	if r.Infinite {
		return r
	}
	return Result{Value: r.Value * w.weight}
}

// DeadEndsAreReliable implements Evaluator.
func (w *Weighted) DeadEndsAreReliable() bool { return w.sub.DeadEndsAreReliable() }

// InvolvedHeuristics implements Evaluator.
func (w *Weighted) InvolvedHeuristics(set HeuristicSet) { w.sub.InvolvedHeuristics(set) }

// Func adapts a plain function into a Heuristic.
type Func struct {
	name     string
	fn       func(Context) Result
	reliable bool
}

// NewFunc returns a heuristic named name computed by fn. reliable states
// whether infinite results of fn prove unsolvability.
func NewFunc(name string, reliable bool, fn func(Context) Result) *Func {
	return &Func{name: name, fn: fn, reliable: reliable}
}

// Name implements Heuristic.
func (f *Func) Name() string { return f.name }

// Evaluate implements Evaluator.
func (f *Func) Evaluate(ctx Context) Result { return f.fn(ctx) }

// DeadEndsAreReliable implements Evaluator.
func (f *Func) DeadEndsAreReliable() bool { return f.reliable }

// InvolvedHeuristics implements Evaluator.
func (f *Func) InvolvedHeuristics(set HeuristicSet) { set[f] = struct{}{} }
