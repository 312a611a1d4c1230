// Package hierarchy stores open-list entries in a two-level keyed structure:
// primary keys in ascending lexicographic order, each holding its type
// buckets in ascending type-key order.
//
// The hierarchy never exposes an empty bucket or an empty primary level:
// both are erased the moment their last entry is popped.
package hierarchy

import (
	"slices"

	"github.com/hupe1980/openlist/eval"
	"github.com/hupe1980/openlist/internal/bucket"
)

// Hierarchy maps PrimaryKey -> TypeKey -> Bucket.
//
// Hierarchy is NOT thread-safe.
type Hierarchy[E any] struct {
	levels []*level[E] // ascending by primary key
	size   int
}

type level[E any] struct {
	key   eval.Key
	id    string      // key.String(), computed once
	types []*typed[E] // ascending by type key
}

type typed[E any] struct {
	key    eval.Key
	bucket bucket.Bucket[E]
}

// Removal describes what a pop did to the hierarchy.
type Removal struct {
	// Primary is the primary key the entry was popped from.
	Primary eval.Key
	// BucketErased is set when the popped type bucket became empty.
	BucketErased bool
	// PrimaryErased is set when the primary key lost its last type bucket.
	PrimaryErased bool
}

// New creates an empty hierarchy.
func New[E any]() *Hierarchy[E] {
	return &Hierarchy[E]{}
}

// Len returns the total number of stored entries.
func (h *Hierarchy[E]) Len() int { return h.size }

// Empty reports whether no entries are stored.
func (h *Hierarchy[E]) Empty() bool { return h.size == 0 }

// Insert files e under (primary, typ), creating the level and bucket as
// needed. Both keys are copied.
func (h *Hierarchy[E]) Insert(primary, typ eval.Key, e E) {
	i, found := slices.BinarySearchFunc(h.levels, primary, func(l *level[E], k eval.Key) int {
		return l.key.Compare(k)
	})
	if !found {
		h.levels = slices.Insert(h.levels, i, &level[E]{key: primary.Clone(), id: primary.String()})
	}
	lvl := h.levels[i]

	j, found := slices.BinarySearchFunc(lvl.types, typ, func(t *typed[E], k eval.Key) int {
		return t.key.Compare(k)
	})
	if !found {
		lvl.types = slices.Insert(lvl.types, j, &typed[E]{key: typ.Clone()})
	}
	lvl.types[j].bucket.Push(e)
	h.size++
}

// MinKey returns the smallest primary key and the number of type buckets it
// holds. ok is false if the hierarchy is empty.
func (h *Hierarchy[E]) MinKey() (key eval.Key, buckets int, ok bool) {
	if len(h.levels) == 0 {
		return nil, 0, false
	}
	lvl := h.levels[0]
	return lvl.key, len(lvl.types), true
}

// MinID returns the textual form of the smallest primary key, as produced by
// eval.Key.String, without formatting it again. It returns "" if the
// hierarchy is empty.
func (h *Hierarchy[E]) MinID() string {
	if len(h.levels) == 0 {
		return ""
	}
	return h.levels[0].id
}

// PopMin pops one entry from the type bucket at position pos (0-based, in
// type-key order) of the smallest primary key, cascading the erasure of an
// emptied bucket and level.
//
// PopMin panics if the hierarchy is empty or pos is out of range.
func (h *Hierarchy[E]) PopMin(pos int, policy bucket.Policy, rng bucket.Rand) (E, Removal) {
	if len(h.levels) == 0 {
		panic("hierarchy: pop from empty hierarchy")
	}
	lvl := h.levels[0]
	if pos < 0 || pos >= len(lvl.types) {
		panic("hierarchy: type bucket position out of range")
	}

	tb := lvl.types[pos]
	e := tb.bucket.Pop(policy, rng)
	h.size--

	rm := Removal{Primary: lvl.key}
	if tb.bucket.Empty() {
		lvl.types = slices.Delete(lvl.types, pos, pos+1)
		rm.BucketErased = true
		if len(lvl.types) == 0 {
			h.levels = slices.Delete(h.levels, 0, 1)
			rm.PrimaryErased = true
		}
	}
	return e, rm
}

// Clear removes all entries.
func (h *Hierarchy[E]) Clear() {
	clear(h.levels)
	h.levels = h.levels[:0]
	h.size = 0
}

// PrimaryKeys returns the stored primary keys in ascending order.
func (h *Hierarchy[E]) PrimaryKeys() []eval.Key {
	keys := make([]eval.Key, len(h.levels))
	for i, l := range h.levels {
		keys[i] = l.key
	}
	return keys
}

// TypeKeys returns the type keys stored under primary, in position order.
func (h *Hierarchy[E]) TypeKeys(primary eval.Key) []eval.Key {
	i, found := slices.BinarySearchFunc(h.levels, primary, func(l *level[E], k eval.Key) int {
		return l.key.Compare(k)
	})
	if !found {
		return nil
	}
	keys := make([]eval.Key, len(h.levels[i].types))
	for j, t := range h.levels[i].types {
		keys[j] = t.key
	}
	return keys
}

// BucketLen returns the number of entries stored under (primary, typ).
func (h *Hierarchy[E]) BucketLen(primary, typ eval.Key) int {
	i, found := slices.BinarySearchFunc(h.levels, primary, func(l *level[E], k eval.Key) int {
		return l.key.Compare(k)
	})
	if !found {
		return 0
	}
	for _, t := range h.levels[i].types {
		if t.key.Equal(typ) {
			return t.bucket.Len()
		}
	}
	return 0
}
