package openlist

import (
	"github.com/hupe1980/openlist/eval"
)

// OpenList is the frontier of a search: it decides which entry is expanded
// next.
//
// OpenList is NOT thread-safe.
type OpenList[E any] interface {
	// Insert adds entry unless the list rejects it: preferred-only lists drop
	// non-preferred entries, and dead ends are always dropped. Heuristic
	// values computed on the way are cached in ctx.
	Insert(ctx eval.Context, entry E)

	// RemoveMin removes and returns the entry to expand next. If key is not
	// nil it must point to an empty key and receives the primary key of the
	// entry. RemoveMin panics with ErrEmptyOpenList on an empty list and
	// with ErrKeyNotEmpty if *key is not empty.
	RemoveMin(key *eval.Key) E

	// Empty reports whether no entries are stored.
	Empty() bool

	// Len returns the number of stored entries.
	Len() int

	// Clear removes all entries and all derived bookkeeping.
	Clear()

	// BoostPreferred is called by the search on progress. Lists without
	// preferred sub-lists ignore it.
	BoostPreferred()

	// IsDeadEnd reports whether the entry described by ctx is a dead end,
	// possibly trusting unsafe heuristics.
	IsDeadEnd(ctx eval.Context) bool

	// IsReliableDeadEnd reports whether the entry is provably unsolvable.
	IsReliableDeadEnd(ctx eval.Context) bool

	// OnlyContainsPreferredEntries reports whether the list is preferred-only.
	OnlyContainsPreferredEntries() bool

	// InvolvedHeuristics adds every heuristic the list consults to set.
	InvolvedHeuristics(set eval.HeuristicSet)
}

// base carries the behaviour shared by every strategy: filtering on insert,
// dead-end detection and the runtime collaborators.
type base struct {
	evaluators     []eval.Evaluator
	typeEvaluators []eval.Evaluator
	onlyPreferred  bool
	unsafePruning  bool
	queueType      QueueType

	rng     Rand
	logger  *Logger
	metrics MetricsCollector
}

func newBase(cfg Config, o options) base {
	return base{
		evaluators:     cfg.Evaluators,
		typeEvaluators: cfg.TypeEvaluators,
		onlyPreferred:  cfg.PreferredOnly,
		unsafePruning:  cfg.UnsafePruning,
		queueType:      cfg.QueueType,
		rng:            o.rng,
		logger:         o.logger,
		metrics:        o.metricsCollector,
	}
}

// admit runs the preferred and dead-end filters in that order and reports
// whether the strategy should store the entry.
func (b *base) admit(ctx eval.Context) bool {
	if b.onlyPreferred && !ctx.IsPreferred() {
		b.metrics.RecordInsert(FilteredNonPreferred)
		return false
	}
	if b.IsDeadEnd(ctx) {
		b.metrics.RecordInsert(FilteredDeadEnd)
		return false
	}
	return true
}

// keys computes the primary and type key of an admitted entry.
func (b *base) keys(ctx eval.Context) (primary, typ eval.Key) {
	return eval.KeyOf(ctx, b.evaluators), eval.KeyOf(ctx, b.typeEvaluators)
}

// IsDeadEnd implements OpenList. An entry is a dead end if it is a reliable
// dead end, if unsafe pruning is on and the first evaluator is infinite, or
// if every evaluator is infinite.
func (b *base) IsDeadEnd(ctx eval.Context) bool {
	if b.IsReliableDeadEnd(ctx) {
		return true
	}
	if b.unsafePruning && ctx.Result(b.evaluators[0]).Infinite {
		return true
	}
	for _, e := range b.evaluators {
		if !ctx.Result(e).Infinite {
			return false
		}
	}
	return true
}

// IsReliableDeadEnd implements OpenList.
func (b *base) IsReliableDeadEnd(ctx eval.Context) bool {
	for _, e := range b.evaluators {
		if e.DeadEndsAreReliable() && ctx.Result(e).Infinite {
			return true
		}
	}
	return false
}

// BoostPreferred implements OpenList.
func (b *base) BoostPreferred() {}

// OnlyContainsPreferredEntries implements OpenList.
func (b *base) OnlyContainsPreferredEntries() bool { return b.onlyPreferred }

// InvolvedHeuristics implements OpenList.
func (b *base) InvolvedHeuristics(set eval.HeuristicSet) {
	for _, e := range b.evaluators {
		e.InvolvedHeuristics(set)
	}
	for _, e := range b.typeEvaluators {
		e.InvolvedHeuristics(set)
	}
}

func checkRemoveMin(empty bool, key *eval.Key) {
	if empty {
		panic(ErrEmptyOpenList)
	}
	if key != nil && len(*key) != 0 {
		panic(ErrKeyNotEmpty)
	}
}
