package openlist

import (
	"github.com/hupe1980/openlist/eval"
	"github.com/hupe1980/openlist/internal/fractal"
	"github.com/hupe1980/openlist/internal/hierarchy"
)

// Fractal is a typed tie-breaking open list that balances expansions among
// the type buckets of the best primary key.
//
// Entries are filed by (primary key, type key). RemoveMin always serves the
// lexicographically smallest primary key; within it, each type-bucket
// position p (1-based, in type-key order) may be served while its expansion
// count stays below p*dimension. When no position qualifies the key's
// dimension grows by one. Records and dimension of a primary key are dropped
// when its last entry is removed.
//
// Fractal is NOT thread-safe.
type Fractal[E any] struct {
	base
	buckets  *hierarchy.Hierarchy[E]
	selector *fractal.Selector
	maxDepth int
}

var (
	_ OpenList[StateEntry] = (*Fractal[StateEntry])(nil)
	_ OpenList[EdgeEntry]  = (*Fractal[EdgeEntry])(nil)
)

// NewFractal validates cfg and creates a fractal open list. cfg must carry
// its type evaluators; NewFactory fills in the default depth evaluator.
func NewFractal[E any](cfg Config, optFns ...Option) (*Fractal[E], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.TypeEvaluators) == 0 {
		return nil, &ConfigError{Field: "TypeEvaluators", Rule: "min", Value: cfg.TypeEvaluators}
	}

	o := applyOptions(optFns)
	f := &Fractal[E]{
		base:     newBase(cfg, o),
		buckets:  hierarchy.New[E](),
		selector: fractal.New(cfg.Stochastic, o.rng),
		maxDepth: cfg.MaxDepth,
	}
	f.logger = f.logger.WithKind("fractal")
	f.selector.OnDimensionIncrease = func(id string, dim int) {
		f.logger.LogDimensionIncrease(id, dim)
		f.metrics.RecordDimensionIncrease(dim)
	}
	f.logger.LogCreate(cfg)
	return f, nil
}

// Insert implements OpenList.
func (f *Fractal[E]) Insert(ctx eval.Context, entry E) {
	if !f.admit(ctx) {
		return
	}
	primary, typ := f.keys(ctx)
	f.buckets.Insert(primary, typ, entry)
	f.metrics.RecordInsert(Inserted)
}

// RemoveMin implements OpenList.
func (f *Fractal[E]) RemoveMin(key *eval.Key) E {
	checkRemoveMin(f.buckets.Empty(), key)

	_, n, _ := f.buckets.MinKey()
	id := f.buckets.MinID()
	pos := f.selector.Select(id, n)

	entry, rm := f.buckets.PopMin(pos, f.queueType, f.rng)
	if rm.PrimaryErased {
		f.selector.Forget(id)
	}
	if key != nil {
		*key = append(*key, rm.Primary...)
	}
	f.metrics.RecordRemove(pos)
	return entry
}

// Empty implements OpenList.
func (f *Fractal[E]) Empty() bool { return f.buckets.Empty() }

// Len implements OpenList.
func (f *Fractal[E]) Len() int { return f.buckets.Len() }

// Clear implements OpenList.
func (f *Fractal[E]) Clear() {
	f.logger.LogClear(f.buckets.Len())
	f.buckets.Clear()
	f.selector.Reset()
	f.metrics.RecordClear()
}

// Dimension returns the current dimension of primary key. ok is false if no
// entry has been removed under key since it (re)appeared.
func (f *Fractal[E]) Dimension(key eval.Key) (dim int, ok bool) {
	return f.selector.Dimension(key.String())
}

// Records returns the expansion counters of the type-bucket positions
// currently stored under key.
func (f *Fractal[E]) Records(key eval.Key) []uint64 {
	return f.selector.Records(key.String(), len(f.buckets.TypeKeys(key)))
}

// TypeKeys returns the type keys under primary key, in position order.
func (f *Fractal[E]) TypeKeys(key eval.Key) []eval.Key {
	return f.buckets.TypeKeys(key)
}

// MaxDepth returns the configured plateau depth cap. No list enforces it.
func (f *Fractal[E]) MaxDepth() int { return f.maxDepth }
