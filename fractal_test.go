package openlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/openlist/eval"
)

// plateauTable puts n type buckets of size per under primary key [0].
// State ids encode their bucket: state = 1000*(type+1) + i.
func plateauTable(n, per int) (*scoreTable, []eval.StateID) {
	s := newScoreTable()
	var states []eval.StateID
	for ty := 0; ty < n; ty++ {
		for i := 0; i < per; i++ {
			id := eval.StateID(1000*(ty+1) + i)
			s.set(id, 0, ty)
			states = append(states, id)
		}
	}
	return s, states
}

func typeOf(e StateEntry) int { return int(e)/1000 - 1 }

func newFractal(t *testing.T, cfg Config, optFns ...Option) *Fractal[StateEntry] {
	t.Helper()
	f, err := NewFractal[StateEntry](cfg, optFns...)
	require.NoError(t, err)
	return f
}

func TestFractal(t *testing.T) {
	t.Run("FirstQualifyingPattern", func(t *testing.T) {
		s, states := plateauTable(2, 10)
		f := newFractal(t, s.config())
		for _, id := range states {
			f.Insert(ctxFor(id), id)
		}

		var types []int
		for i := 0; i < 9; i++ {
			types = append(types, typeOf(f.RemoveMin(nil)))
		}
		assert.Equal(t, []int{0, 1, 1, 0, 1, 1, 0, 1, 1}, types)

		dim, ok := f.Dimension(eval.Key{0})
		require.True(t, ok)
		assert.Equal(t, 3, dim)
		assert.Equal(t, []uint64{3, 6}, f.Records(eval.Key{0}))

		s, states = plateauTable(3, 10)
		f = newFractal(t, s.config())
		for _, id := range states {
			f.Insert(ctxFor(id), id)
		}

		types = types[:0]
		for i := 0; i < 12; i++ {
			types = append(types, typeOf(f.RemoveMin(nil)))
		}
		assert.Equal(t, []int{0, 1, 1, 2, 2, 2, 0, 1, 1, 2, 2, 2}, types)

		dim, ok = f.Dimension(eval.Key{0})
		require.True(t, ok)
		assert.Equal(t, 2, dim)
		assert.Equal(t, []uint64{2, 4, 6}, f.Records(eval.Key{0}))
	})

	t.Run("RemoveMinDoesNotAllocate", func(t *testing.T) {
		s, states := plateauTable(3, 400)
		f := newFractal(t, s.config())
		for _, id := range states {
			f.Insert(ctxFor(id), id)
		}
		f.RemoveMin(nil)

		allocs := testing.AllocsPerRun(200, func() {
			f.RemoveMin(nil)
		})
		assert.Zero(t, allocs)
		assert.Equal(t, 1, f.selector.Len())
	})

	t.Run("FairnessWithReplenishedBuckets", func(t *testing.T) {
		for _, stochastic := range []bool{false, true} {
			const n = 5
			s, states := plateauTable(n, 3)
			cfg := s.config()
			cfg.Stochastic = stochastic
			cfg.QueueType = Random
			f := newFractal(t, cfg, WithSeed(4711))
			for _, id := range states {
				f.Insert(ctxFor(id), id)
			}

			served := make([]int, n)
			for i := 0; i < 10000; i++ {
				e := f.RemoveMin(nil)
				served[typeOf(e)]++
				// Put the entry back so every bucket stays populated.
				f.Insert(ctxFor(e), e)
			}

			dim, _ := f.Dimension(eval.Key{0})
			for p, c := range served {
				assert.LessOrEqual(t, c, (p+1)*dim, "position %d", p)
				assert.GreaterOrEqual(t, c, (p+1)*(dim-1), "position %d", p)
			}
			assert.Equal(t, len(states), f.Len())
		}
	})

	t.Run("DimensionMonotoneAndResetOnReintroduction", func(t *testing.T) {
		s, states := plateauTable(3, 4)
		f := newFractal(t, s.config())
		for _, id := range states {
			f.Insert(ctxFor(id), id)
		}

		_, ok := f.Dimension(eval.Key{0})
		assert.False(t, ok)

		last := 1
		for !f.Empty() {
			f.RemoveMin(nil)
			if f.Empty() {
				break
			}
			dim, ok := f.Dimension(eval.Key{0})
			require.True(t, ok)
			require.GreaterOrEqual(t, dim, last)
			last = dim
		}
		assert.Greater(t, last, 1)

		// The key vanished with its last entry, so did its fairness state.
		_, ok = f.Dimension(eval.Key{0})
		assert.False(t, ok)
		assert.Empty(t, f.Records(eval.Key{0}))

		f.Insert(ctxFor(states[0]), states[0])
		f.Insert(ctxFor(states[1]), states[1])
		f.RemoveMin(nil)
		dim, ok := f.Dimension(eval.Key{0})
		require.True(t, ok)
		assert.Equal(t, 1, dim)
		assert.Equal(t, []uint64{1}, f.Records(eval.Key{0}))
	})

	t.Run("CascadeCleanup", func(t *testing.T) {
		s := newScoreTable()
		s.set(1, 0, 0)
		s.set(2, 0, 1)
		s.set(3, 1, 0)
		f := newFractal(t, s.config())
		for _, id := range []eval.StateID{1, 2, 3} {
			f.Insert(ctxFor(id), id)
		}
		assert.Len(t, f.TypeKeys(eval.Key{0}), 2)

		f.RemoveMin(nil)
		assert.Len(t, f.TypeKeys(eval.Key{0}), 1)
		f.RemoveMin(nil)
		assert.Nil(t, f.TypeKeys(eval.Key{0}))
		assert.False(t, f.Empty())

		var key eval.Key
		assert.Equal(t, StateEntry(3), f.RemoveMin(&key))
		assert.Equal(t, eval.Key{1}, key)
		assert.True(t, f.Empty())
		assert.Equal(t, 0, f.selector.Len())
	})

	t.Run("FairnessIsPerPrimaryKey", func(t *testing.T) {
		s := newScoreTable()
		s.set(1, 0, 0)
		s.set(2, 0, 0)
		s.set(3, 1, 0)
		f := newFractal(t, s.config())
		for _, id := range []eval.StateID{1, 2, 3} {
			f.Insert(ctxFor(id), id)
		}

		f.RemoveMin(nil)
		f.RemoveMin(nil)
		_, ok := f.Dimension(eval.Key{1})
		assert.False(t, ok)

		f.RemoveMin(nil)
		dim, ok := f.Dimension(eval.Key{1})
		assert.False(t, ok, "state is dropped with the emptied key")
		assert.Equal(t, 0, dim)
	})

	t.Run("ClearResetsFairnessState", func(t *testing.T) {
		s, states := plateauTable(2, 5)
		f := newFractal(t, s.config())
		for _, id := range states {
			f.Insert(ctxFor(id), id)
		}
		for i := 0; i < 4; i++ {
			f.RemoveMin(nil)
		}
		f.Clear()

		assert.True(t, f.Empty())
		_, ok := f.Dimension(eval.Key{0})
		assert.False(t, ok)
	})

	t.Run("EdgeEntries", func(t *testing.T) {
		s := newScoreTable()
		s.set(1, 0, 0)
		s.set(2, 0, 1)
		f, err := NewFractal[EdgeEntry](s.config())
		require.NoError(t, err)

		f.Insert(ctxFor(1), EdgeEntry{State: 1, Operator: 7})
		f.Insert(ctxFor(2), EdgeEntry{State: 2, Operator: 8})

		assert.Equal(t, EdgeEntry{State: 1, Operator: 7}, f.RemoveMin(nil))
		assert.Equal(t, EdgeEntry{State: 2, Operator: 8}, f.RemoveMin(nil))
	})

	t.Run("MaxDepthIsAcceptedButUnused", func(t *testing.T) {
		s, states := plateauTable(1, 5)
		cfg := s.config()
		cfg.MaxDepth = 1
		f := newFractal(t, cfg)
		for _, id := range states {
			f.Insert(ctxFor(id), id)
		}

		assert.Equal(t, 1, f.MaxDepth())
		assert.Len(t, drain(f), 5)
	})

	t.Run("RequiresTypeEvaluators", func(t *testing.T) {
		s := newScoreTable()
		_, err := NewFractal[StateEntry](DefaultConfig(s.heuristic("h", true)))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Metrics", func(t *testing.T) {
		s, states := plateauTable(2, 3)
		cfg := s.config()
		cfg.PreferredOnly = true
		metrics := &BasicMetricsCollector{}
		f := newFractal(t, cfg, WithMetricsCollector(metrics))

		for _, id := range states {
			f.Insert(eval.NewContext(id, eval.WithPreferred(true)), id)
		}
		f.Insert(ctxFor(states[0]), states[0])
		f.Insert(eval.NewContext(77, eval.WithPreferred(true)), 77)
		drain(f)
		f.Clear()

		stats := metrics.GetStats()
		assert.Equal(t, int64(6), stats.InsertCount)
		assert.Equal(t, int64(1), stats.FilteredNonPreferred)
		assert.Equal(t, int64(1), stats.FilteredDeadEnds)
		assert.Equal(t, int64(6), stats.RemoveCount)
		assert.Equal(t, int64(1), stats.ClearCount)
		assert.Positive(t, stats.DimensionIncreases)
		assert.GreaterOrEqual(t, stats.MaxDimension, int64(2))
	})
}
