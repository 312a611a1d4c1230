package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCompare(t *testing.T) {
	assert.Equal(t, -1, Key{1}.Compare(Key{1, 5}))
	assert.Equal(t, -1, Key{1, 5}.Compare(Key{2}))
	assert.Equal(t, 1, Key{2}.Compare(Key{1}))
	assert.Equal(t, 0, Key{3, 4}.Compare(Key{3, 4}))
	assert.Equal(t, -1, Key{}.Compare(Key{0}))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "[1 5]", Key{1, 5}.String())
	assert.Equal(t, "[]", Key{}.String())
	assert.Equal(t, "[3 inf]", Key{3, Infinity}.String())
}

func TestKeyClone(t *testing.T) {
	k := Key{1, 2}
	c := k.Clone()
	c[0] = 9

	assert.Equal(t, 1, k[0])
	assert.NotNil(t, Key(nil).Clone())
}

func TestContextCachesResults(t *testing.T) {
	calls := 0
	h := NewFunc("count", true, func(Context) Result {
		calls++
		return Result{Value: 7}
	})

	ctx := NewContext(3, WithG(2), WithParent(1), WithPreferred(true))
	assert.False(t, ctx.IsCached(h))
	assert.Equal(t, 7, ctx.Result(h).Value)
	assert.Equal(t, 7, ctx.Result(h).Value)
	assert.Equal(t, 1, calls)
	assert.True(t, ctx.IsCached(h))

	parent, ok := ctx.Parent()
	assert.True(t, ok)
	assert.Equal(t, StateID(1), parent)
	assert.Equal(t, StateID(3), ctx.State())
	assert.Equal(t, 2, ctx.G())
	assert.True(t, ctx.IsPreferred())

	_, ok = NewContext(0).Parent()
	assert.False(t, ok)
}

func TestStockEvaluators(t *testing.T) {
	h := NewFunc("h", false, func(c Context) Result {
		if c.State() == 0 {
			return Result{Infinite: true}
		}
		return Result{Value: int(c.State())}
	})
	g := NewG()
	f := NewSum(g, NewWeighted(h, 2))

	ctx := NewContext(5, WithG(3))
	assert.Equal(t, 13, ctx.Result(f).Value)
	assert.Equal(t, 4, ctx.Result(NewConst(4)).Value)

	dead := NewContext(0, WithG(3))
	assert.True(t, dead.Result(f).Infinite)
	assert.Equal(t, Key{3, Infinity}, KeyOf(dead, []Evaluator{g, h}))

	assert.False(t, f.DeadEndsAreReliable())
	assert.True(t, NewSum(g, NewConst(1)).DeadEndsAreReliable())

	set := HeuristicSet{}
	f.InvolvedHeuristics(set)
	require.Len(t, set, 1)
	_, ok := set[h]
	assert.True(t, ok)
}

func TestDepthFollowsPlateau(t *testing.T) {
	values := map[StateID]int{1: 5, 2: 5, 3: 5, 4: 4, 5: 4}
	h := NewFunc("table", true, func(c Context) Result {
		return Result{Value: values[c.State()]}
	})
	d := NewDepth([]Evaluator{h}, true)

	depthOf := func(state StateID, optFns ...ContextOption) int {
		return NewContext(state, optFns...).Result(d).Value
	}

	assert.Equal(t, 0, depthOf(1))
	assert.Equal(t, 1, depthOf(2, WithParent(1)))
	assert.Equal(t, 2, depthOf(3, WithParent(2)))
	// Leaving the plateau resets the depth.
	assert.Equal(t, 0, depthOf(4, WithParent(3)))
	assert.Equal(t, 1, depthOf(5, WithParent(4)))
	// The first assignment sticks.
	assert.Equal(t, 2, depthOf(3, WithParent(1)))

	assert.Equal(t, map[int]int{0: 2, 1: 2, 2: 1}, d.Histogram())

	d.Reset()
	assert.Empty(t, d.Histogram())
	assert.Equal(t, 0, depthOf(3, WithParent(2)))
}

func TestDepthWithoutRecording(t *testing.T) {
	d := NewDepth([]Evaluator{NewConst(0)}, false)
	NewContext(1).Result(d)

	assert.Nil(t, d.Histogram())
	assert.True(t, d.DeadEndsAreReliable())
}
