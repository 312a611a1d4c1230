package openlist

import (
	"github.com/hupe1980/openlist/eval"
)

// scoreTable backs the test evaluators: a missing h value is a dead end.
type scoreTable struct {
	h   map[eval.StateID]int
	g   map[eval.StateID]int
	typ map[eval.StateID]int
}

func newScoreTable() *scoreTable {
	return &scoreTable{
		h:   map[eval.StateID]int{},
		g:   map[eval.StateID]int{},
		typ: map[eval.StateID]int{},
	}
}

func (s *scoreTable) set(state eval.StateID, h, typ int) {
	s.h[state] = h
	s.typ[state] = typ
}

func (s *scoreTable) heuristic(name string, reliable bool) *eval.Func {
	return eval.NewFunc(name, reliable, func(c eval.Context) eval.Result {
		v, ok := s.h[c.State()]
		if !ok {
			return eval.Result{Infinite: true}
		}
		return eval.Result{Value: v}
	})
}

func (s *scoreTable) secondary() *eval.Func {
	return eval.NewFunc("secondary", true, func(c eval.Context) eval.Result {
		return eval.Result{Value: s.g[c.State()]}
	})
}

func (s *scoreTable) typeEvaluator() *eval.Func {
	return eval.NewFunc("type", true, func(c eval.Context) eval.Result {
		return eval.Result{Value: s.typ[c.State()]}
	})
}

// config returns a deterministic configuration over the table.
func (s *scoreTable) config() Config {
	cfg := DefaultConfig(s.heuristic("h", true))
	cfg.TypeEvaluators = []eval.Evaluator{s.typeEvaluator()}
	cfg.Stochastic = false
	return cfg
}

func ctxFor(state eval.StateID) eval.Context {
	return eval.NewContext(state)
}
