package search

import (
	"context"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/openlist"
	"github.com/hupe1980/openlist/eval"
)

// Successor is one transition generated by a Task.
type Successor struct {
	Operator  openlist.OperatorID
	State     eval.StateID
	Cost      int
	Preferred bool
}

// Task is the state space explored by a search.
type Task interface {
	// Initial returns the initial state.
	Initial() eval.StateID
	// IsGoal reports whether s satisfies the goal.
	IsGoal(s eval.StateID) bool
	// Successors appends the transitions leaving s to buf and returns it.
	Successors(s eval.StateID, buf []Successor) []Successor
}

// Result summarizes a finished search.
type Result struct {
	Status    Status
	Plan      []openlist.OperatorID
	Path      []eval.StateID
	Cost      int
	Expanded  int
	Generated int
	Evaluated int
}

type node struct {
	parent eval.StateID
	op     openlist.OperatorID
	g      int
	root   bool
}

// Eager is an eager best-first search: successors are evaluated when
// generated, and states are closed when expanded. Closed states are never
// reopened.
//
// Eager is NOT thread-safe and runs once.
type Eager struct {
	task          Task
	open          openlist.OpenList[openlist.StateEntry]
	progress      eval.Evaluator
	maxExpansions int
	logger        *openlist.Logger

	closed *roaring.Bitmap
	nodes  map[eval.StateID]node
	pruned bool
}

// EagerOption configures an Eager search.
type EagerOption func(*Eager)

// WithProgressEvaluator reports progress whenever e reaches a new minimum
// over the generated states. Every new minimum also boosts the open list.
func WithProgressEvaluator(e eval.Evaluator) EagerOption {
	return func(s *Eager) {
		s.progress = e
	}
}

// WithMaxExpansions stops the search after n expansions. n <= 0 means no
// limit.
func WithMaxExpansions(n int) EagerOption {
	return func(s *Eager) {
		s.maxExpansions = n
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(l *openlist.Logger) EagerOption {
	return func(s *Eager) {
		s.logger = l
	}
}

// NewEager creates a search of task over open. open should be empty and is
// owned by the search from now on.
func NewEager(task Task, open openlist.OpenList[openlist.StateEntry], optFns ...EagerOption) *Eager {
	s := &Eager{
		task:   task,
		open:   open,
		closed: roaring.New(),
		nodes:  make(map[eval.StateID]node),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(s)
		}
	}
	if s.logger == nil {
		s.logger = openlist.NoopLogger()
	}
	return s
}

// Run executes the search. If ctx ends first, Run returns the partial
// statistics with StatusTimeout together with ctx.Err().
func (s *Eager) Run(ctx context.Context) (Result, error) {
	res, err := s.run(ctx)
	s.logger.LogSearch(ctx, res.Status.String(), res.Expanded, res.Generated, err)
	return res, err
}

func (s *Eager) run(ctx context.Context) (Result, error) {
	var res Result

	initial := s.task.Initial()
	ictx := eval.NewContext(initial, eval.WithPreferred(true))
	res.Evaluated++
	if s.open.IsDeadEnd(ictx) {
		if s.open.IsReliableDeadEnd(ictx) {
			res.Status = StatusUnsolvable
		} else {
			res.Status = StatusUnsolvedIncomplete
		}
		return res, nil
	}
	s.nodes[initial] = node{root: true}
	s.open.Insert(ictx, initial)

	best := eval.Infinity
	s.reportProgress(ctx, ictx, &best, res.Expanded)

	var succs []Successor
	for {
		if err := ctx.Err(); err != nil {
			res.Status = StatusTimeout
			return res, err
		}
		if s.open.Empty() {
			res.Status = StatusUnsolvable
			if s.pruned {
				res.Status = StatusUnsolvedIncomplete
			}
			return res, nil
		}

		state := s.open.RemoveMin(nil)
		if !s.closed.CheckedAdd(uint32(state)) {
			continue
		}
		res.Expanded++

		if s.task.IsGoal(state) {
			s.extractPlan(state, &res)
			res.Status = StatusSolved
			return res, nil
		}
		if s.maxExpansions > 0 && res.Expanded >= s.maxExpansions {
			res.Status = StatusExpansionLimit
			return res, nil
		}

		g := s.nodes[state].g
		succs = s.task.Successors(state, succs[:0])
		for _, succ := range succs {
			res.Generated++
			if s.closed.Contains(uint32(succ.State)) {
				continue
			}
			sg := g + succ.Cost
			if n, ok := s.nodes[succ.State]; ok && n.g <= sg {
				continue
			}
			s.nodes[succ.State] = node{parent: state, op: succ.Operator, g: sg}

			sctx := eval.NewContext(succ.State,
				eval.WithParent(state),
				eval.WithG(sg),
				eval.WithPreferred(succ.Preferred),
			)
			res.Evaluated++
			s.notePruning(sctx)
			s.open.Insert(sctx, succ.State)
			s.reportProgress(ctx, sctx, &best, res.Expanded)
		}
	}
}

// notePruning remembers whether the open list is about to drop an entry for
// a reason that does not prove it unsolvable.
func (s *Eager) notePruning(ctx eval.Context) {
	if s.pruned {
		return
	}
	if s.open.OnlyContainsPreferredEntries() && !ctx.IsPreferred() {
		s.pruned = true
		return
	}
	if s.open.IsDeadEnd(ctx) && !s.open.IsReliableDeadEnd(ctx) {
		s.pruned = true
	}
}

func (s *Eager) reportProgress(ctx context.Context, ectx eval.Context, best *int, expanded int) {
	if s.progress == nil {
		return
	}
	r := ectx.Result(s.progress)
	if r.Infinite || r.Value >= *best {
		return
	}
	*best = r.Value
	s.logger.LogProgress(ctx, r.Value, expanded)
	s.open.BoostPreferred()
}

func (s *Eager) extractPlan(goal eval.StateID, res *Result) {
	res.Cost = s.nodes[goal].g
	for state := goal; ; {
		n := s.nodes[state]
		res.Path = append(res.Path, state)
		if n.root {
			break
		}
		res.Plan = append(res.Plan, n.op)
		state = n.parent
	}
	slices.Reverse(res.Plan)
	slices.Reverse(res.Path)
}

// Closed returns the number of expanded states.
func (s *Eager) Closed() uint64 { return s.closed.GetCardinality() }
