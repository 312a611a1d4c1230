package openlist

import (
	"github.com/hupe1980/openlist/eval"
	"github.com/hupe1980/openlist/internal/hierarchy"
)

// TieBreaking is a typed tie-breaking open list without fairness records:
// within the smallest primary key it serves a uniformly drawn type bucket
// (stochastic) or always the first one.
//
// TieBreaking is NOT thread-safe.
type TieBreaking[E any] struct {
	base
	buckets    *hierarchy.Hierarchy[E]
	stochastic bool
}

var (
	_ OpenList[StateEntry] = (*TieBreaking[StateEntry])(nil)
	_ OpenList[EdgeEntry]  = (*TieBreaking[EdgeEntry])(nil)
)

// NewTieBreaking validates cfg and creates a typed tie-breaking open list.
// Without type evaluators every primary key holds a single bucket and the
// list degenerates to plain tie-breaking.
func NewTieBreaking[E any](cfg Config, optFns ...Option) (*TieBreaking[E], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := applyOptions(optFns)
	t := &TieBreaking[E]{
		base:       newBase(cfg, o),
		buckets:    hierarchy.New[E](),
		stochastic: cfg.Stochastic,
	}
	t.logger = t.logger.WithKind("tiebreaking")
	t.logger.LogCreate(cfg)
	return t, nil
}

// Insert implements OpenList.
func (t *TieBreaking[E]) Insert(ctx eval.Context, entry E) {
	if !t.admit(ctx) {
		return
	}
	primary, typ := t.keys(ctx)
	t.buckets.Insert(primary, typ, entry)
	t.metrics.RecordInsert(Inserted)
}

// RemoveMin implements OpenList.
func (t *TieBreaking[E]) RemoveMin(key *eval.Key) E {
	checkRemoveMin(t.buckets.Empty(), key)

	_, n, _ := t.buckets.MinKey()
	pos := 0
	if t.stochastic && n > 1 {
		pos = t.rng.Intn(n)
	}

	entry, rm := t.buckets.PopMin(pos, t.queueType, t.rng)
	if key != nil {
		*key = append(*key, rm.Primary...)
	}
	t.metrics.RecordRemove(pos)
	return entry
}

// Empty implements OpenList.
func (t *TieBreaking[E]) Empty() bool { return t.buckets.Empty() }

// Len implements OpenList.
func (t *TieBreaking[E]) Len() int { return t.buckets.Len() }

// Clear implements OpenList.
func (t *TieBreaking[E]) Clear() {
	t.logger.LogClear(t.buckets.Len())
	t.buckets.Clear()
	t.metrics.RecordClear()
}
