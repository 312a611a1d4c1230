// Package fractal implements the fairness rule that spreads expansions of a
// primary key across its type-bucket positions.
//
// For every primary key the selector keeps an expansion record (one counter
// per position) and a dimension, starting at 1. Position p (1-based)
// qualifies while p*dimension exceeds its counter. When no position
// qualifies the dimension grows by one, which raises every threshold, so a
// position is never starved: after the dimension reached d, position p has
// been served between p*(d-1) and p*d times.
package fractal

// InitialRecords is the capacity an expansion record is created with.
const InitialRecords = 32

// Rand is the random source used for stochastic selection.
type Rand interface {
	Intn(n int) int
}

// Selector holds the per-primary-key fairness state.
//
// Selector is NOT thread-safe.
type Selector struct {
	stochastic bool
	rng        Rand
	plateaus   map[string]*plateau
	scratch    []int

	// OnDimensionIncrease, if set, is called after a dimension grew.
	OnDimensionIncrease func(id string, dim int)
}

type plateau struct {
	records []uint64
	dim     int
}

// New creates a selector. With stochastic set, Select draws uniformly among
// the qualifying positions using rng; otherwise it takes the first one.
func New(stochastic bool, rng Rand) *Selector {
	return &Selector{
		stochastic: stochastic,
		rng:        rng,
		plateaus:   make(map[string]*plateau),
	}
}

// Select picks one of n type-bucket positions for the primary key identified
// by id, records the expansion and returns the 0-based position.
//
// Select panics if n is not positive.
func (s *Selector) Select(id string, n int) int {
	if n <= 0 {
		panic("fractal: no type buckets to select from")
	}

	p, ok := s.plateaus[id]
	if !ok {
		p = &plateau{records: make([]uint64, InitialRecords), dim: 1}
		s.plateaus[id] = p
	}

	// The record must cover every position before qualification is tested.
	for len(p.records) < n {
		p.records = append(p.records, make([]uint64, len(p.records))...)
	}

	for {
		if pos := s.qualifying(p, n); pos >= 0 {
			p.records[pos]++
			return pos
		}
		p.dim++
		if s.OnDimensionIncrease != nil {
			s.OnDimensionIncrease(id, p.dim)
		}
	}
}

// qualifying returns the chosen qualifying position, or -1 if none qualifies.
func (s *Selector) qualifying(p *plateau, n int) int {
	if !s.stochastic {
		for i := 0; i < n; i++ {
			if uint64((i+1)*p.dim) > p.records[i] {
				return i
			}
		}
		return -1
	}

	s.scratch = s.scratch[:0]
	for i := 0; i < n; i++ {
		if uint64((i+1)*p.dim) > p.records[i] {
			s.scratch = append(s.scratch, i)
		}
	}
	if len(s.scratch) == 0 {
		return -1
	}
	return s.scratch[s.rng.Intn(len(s.scratch))]
}

// Forget discards the state of a primary key. A key that reappears later
// starts over with dimension 1 and zeroed records.
func (s *Selector) Forget(id string) {
	delete(s.plateaus, id)
}

// Reset discards the state of every primary key.
func (s *Selector) Reset() {
	clear(s.plateaus)
}

// Dimension returns the current dimension of id. ok is false if id has no
// state yet.
func (s *Selector) Dimension(id string) (dim int, ok bool) {
	p, ok := s.plateaus[id]
	if !ok {
		return 0, false
	}
	return p.dim, true
}

// Records returns a copy of the first n expansion counters of id, padded
// with zeros.
func (s *Selector) Records(id string, n int) []uint64 {
	out := make([]uint64, n)
	if p, ok := s.plateaus[id]; ok {
		copy(out, p.records)
	}
	return out
}

// Len returns the number of primary keys with fairness state.
func (s *Selector) Len() int { return len(s.plateaus) }
