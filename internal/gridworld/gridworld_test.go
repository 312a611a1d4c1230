package gridworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/openlist"
	"github.com/hupe1980/openlist/eval"
	"github.com/hupe1980/openlist/search"
)

func TestParse(t *testing.T) {
	g, err := Parse(
		"S.#",
		"..G",
	)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, g.ID(0, 0), g.Start)
	assert.Equal(t, g.ID(2, 1), g.Goal)
	assert.True(t, g.Blocked(g.ID(2, 0)))
	assert.Equal(t, "S.#\n..G\n", g.String())

	_, err = Parse()
	assert.Error(t, err)
	_, err = Parse("S.", "...")
	assert.ErrorContains(t, err, "width")
	_, err = Parse("S?G")
	assert.ErrorContains(t, err, "unexpected cell")
}

func TestSuccessors(t *testing.T) {
	g, err := Parse(
		"...",
		"S#G",
	)
	require.NoError(t, err)

	succs := g.Successors(g.Start, nil)
	require.Len(t, succs, 1)
	assert.Equal(t, search.Successor{Operator: Up, State: g.ID(0, 0), Cost: 1}, succs[0])

	succs = g.Successors(g.ID(1, 0), succs[:0])
	require.Len(t, succs, 2)
	assert.Equal(t, Left, succs[0].Operator)
	assert.False(t, succs[0].Preferred)
	assert.Equal(t, Right, succs[1].Operator)
	assert.True(t, succs[1].Preferred)
}

func TestApply(t *testing.T) {
	g := New(3, 3)

	end, ok := g.Apply([]openlist.OperatorID{Right, Right, Down, Down})
	assert.True(t, ok)
	assert.True(t, g.IsGoal(end))

	_, ok = g.Apply([]openlist.OperatorID{Up})
	assert.False(t, ok)
	_, ok = g.Apply([]openlist.OperatorID{7})
	assert.False(t, ok)
}

func TestManhattan(t *testing.T) {
	g := New(4, 3)
	h := g.Manhattan()

	assert.Equal(t, eval.Result{Value: 5}, h.Evaluate(eval.NewContext(g.Start)))
	assert.Equal(t, eval.Result{Value: 0}, h.Evaluate(eval.NewContext(g.Goal)))
	assert.True(t, h.DeadEndsAreReliable())

	set := eval.HeuristicSet{}
	h.InvolvedHeuristics(set)
	assert.Contains(t, set, eval.Heuristic(h))
}

func TestRandomKeepsEndpointsFree(t *testing.T) {
	g := Random(8, 8, 1, 42)
	assert.False(t, g.Blocked(g.Start))
	assert.False(t, g.Blocked(g.Goal))
	assert.True(t, g.Blocked(g.ID(3, 3)))

	assert.Equal(t, Random(8, 8, 0.3, 42).String(), Random(8, 8, 0.3, 42).String())
}

func TestRender(t *testing.T) {
	g := New(3, 1)
	assert.Equal(t, "SoG\n", g.Render([]eval.StateID{0, 1, 2}))
}
