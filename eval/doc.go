// Package eval defines the evaluation side of the open lists: score vectors,
// evaluators, heuristics and the per-entry evaluation context that caches
// their results.
//
// The open lists only read a Context. Whoever drives the search creates one
// context per generated entry, typically with NewContext:
//
//	ctx := eval.NewContext(succ, eval.WithParent(parent), eval.WithG(g), eval.WithPreferred(pref))
//	list.Insert(ctx, succ)
//
// Evaluators are used as cache keys, so implementations must be comparable
// (pointer receivers are the usual choice).
package eval
