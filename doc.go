// Package openlist provides tie-breaking open lists for best-first search.
//
// An open list stores the frontier of a search and serves its most promising
// entry. Entries are ranked by a primary key computed by one or more
// evaluators (compared lexicographically, smaller first). Entries that share
// a primary key form a plateau; a typed open list partitions every plateau
// into type buckets keyed by a second set of evaluators.
//
// # Quick Start
//
//	h := gridworld.New(20, 20).Manhattan()
//	factory, _ := openlist.NewFactory(openlist.DefaultConfig(h))
//	open := factory.NewStateOpenList()
//
//	open.Insert(eval.NewContext(state), state)
//	next := open.RemoveMin(nil)
//
// # Strategies
//
// TieBreaking serves the first type bucket of the best plateau (or a random
// one when Config.Stochastic is set).
//
// Fractal balances expansions among the type buckets of a plateau. Position p
// (1-based, in type-key order) may be served while its expansion count stays
// below p times the plateau's dimension; when no position qualifies, the
// dimension grows by one. Over time every position p receives a share of
// expansions proportional to p, so deep parts of a plateau are explored
// without starving the shallow ones.
//
// By default a Factory types entries by their plateau depth (see eval.Depth).
//
// # Eviction
//
// Within a bucket, Config.QueueType selects FIFO, LIFO or RANDOM eviction.
//
// # Pruning
//
// Insert silently drops entries that are dead ends, and with
// Config.PreferredOnly entries not reached by a preferred operator.
// IsDeadEnd and IsReliableDeadEnd expose the same judgement to callers.
//
// # Errors
//
// Configuration problems are returned as *ConfigError, which matches
// ErrInvalidConfig with errors.Is. Removing from an empty list or passing a
// non-empty key buffer to RemoveMin is a programming error and panics.
//
// # Observability
//
// Lists accept a *Logger (WithLogger) and a MetricsCollector
// (WithMetricsCollector). The prommetrics package exports the metrics to
// Prometheus.
//
// # Thread Safety
//
// Open lists are NOT safe for concurrent use. Lists built by one Factory are
// independent of each other but share the configured evaluators.
package openlist
