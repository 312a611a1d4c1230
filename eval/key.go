package eval

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Infinity is the key component recorded for an infinite evaluator result.
const Infinity = math.MaxInt

// StateID identifies a search state.
type StateID uint32

// Key is a score vector. Keys compare lexicographically, smaller is better,
// and a proper prefix sorts before its extensions: [1] < [1 5] < [2].
type Key []int

// Compare returns -1, 0 or +1 depending on whether k sorts before, equal to
// or after o.
func (k Key) Compare(o Key) int { return slices.Compare(k, o) }

// Equal reports whether both keys hold the same components.
func (k Key) Equal(o Key) bool { return slices.Equal(k, o) }

// Clone returns a copy of k that does not alias its storage.
func (k Key) Clone() Key {
	if k == nil {
		return Key{}
	}
	return slices.Clone(k)
}

// String renders the key as "[a b c]", with "inf" for infinite components.
func (k Key) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range k {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if v == Infinity {
			sb.WriteString("inf")
			continue
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// KeyOf evaluates every evaluator in order through ctx and collects the
// results into a key. Infinite results are recorded as Infinity.
func KeyOf(ctx Context, evaluators []Evaluator) Key {
	key := make(Key, len(evaluators))
	for i, e := range evaluators {
		r := ctx.Result(e)
		if r.Infinite {
			key[i] = Infinity
			continue
		}
		key[i] = r.Value
	}
	return key
}
