package eval

import "maps"

// Depth is a type evaluator measuring how far an entry lies inside its
// plateau: a state whose key over the sub-evaluators equals its parent's key
// gets the parent's depth plus one, any other state starts at depth zero.
//
// The depth of a state is fixed the first time it is evaluated. Depth keeps
// per-state bookkeeping for the lifetime of the search and is not safe for
// concurrent use.
type Depth struct {
	subs      []Evaluator
	record    bool
	db        map[StateID]depthInfo
	histogram map[int]int
}

type depthInfo struct {
	key   Key
	depth int
}

// NewDepth creates a depth evaluator over subs. With record set, a histogram
// of assigned depths is kept (see Histogram).
func NewDepth(subs []Evaluator, record bool) *Depth {
	d := &Depth{
		subs:   subs,
		record: record,
		db:     make(map[StateID]depthInfo),
	}
	if record {
		d.histogram = make(map[int]int)
	}
	return d
}

// Evaluate implements Evaluator.
func (d *Depth) Evaluate(ctx Context) Result {
	if info, ok := d.db[ctx.State()]; ok {
		return Result{Value: info.depth}
	}

	key := KeyOf(ctx, d.subs)
	depth := 0
	if parent, ok := ctx.Parent(); ok {
		if pinfo, ok := d.db[parent]; ok && pinfo.key.Equal(key) {
			depth = pinfo.depth + 1
		}
	}

	d.db[ctx.State()] = depthInfo{key: key, depth: depth}
	if d.record {
		d.histogram[depth]++
	}
	return Result{Value: depth}
}

// DeadEndsAreReliable implements Evaluator.
func (*Depth) DeadEndsAreReliable() bool { return true }

// InvolvedHeuristics implements Evaluator.
func (d *Depth) InvolvedHeuristics(set HeuristicSet) {
	for _, e := range d.subs {
		e.InvolvedHeuristics(set)
	}
}

// Histogram returns a copy of the depth histogram, or nil when recording is
// disabled.
func (d *Depth) Histogram() map[int]int {
	if !d.record {
		return nil
	}
	return maps.Clone(d.histogram)
}

// Reset forgets all per-state information.
func (d *Depth) Reset() {
	clear(d.db)
	if d.record {
		clear(d.histogram)
	}
}
