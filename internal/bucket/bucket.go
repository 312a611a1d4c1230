// Package bucket implements the entry containers stored at the leaves of the
// open-list hierarchy.
package bucket

// Rand is the random source consumed by Random eviction.
type Rand interface {
	// Intn returns a pseudo-random number in [0,n).
	Intn(n int) int
}

// Bucket is an ordered sequence of entries sharing one key pair.
//
// Elements live in items[head:]; popping from the front only advances head,
// and the dead prefix is reclaimed once it dominates the backing slice.
type Bucket[E any] struct {
	items []E
	head  int
}

// Len returns the number of stored entries.
func (b *Bucket[E]) Len() int { return len(b.items) - b.head }

// Empty reports whether the bucket holds no entries.
func (b *Bucket[E]) Empty() bool { return b.Len() == 0 }

// Push appends an entry as the newest element.
func (b *Bucket[E]) Push(e E) {
	b.items = append(b.items, e)
}

// Pop removes and returns one entry according to policy.
//
// Random swaps the drawn slot with the last one before truncating, so the
// relative order of the remaining entries is not preserved.
// Pop panics if the bucket is empty.
func (b *Bucket[E]) Pop(policy Policy, rng Rand) E {
	n := b.Len()
	if n == 0 {
		panic("bucket: pop from empty bucket")
	}

	switch policy {
	case LIFO:
		return b.popBack()
	case Random:
		i := b.head + rng.Intn(n)
		last := len(b.items) - 1
		b.items[i], b.items[last] = b.items[last], b.items[i]
		return b.popBack()
	default:
		return b.popFront()
	}
}

// Items returns the live entries, oldest first. The slice aliases internal
// storage and is only valid until the next mutation.
func (b *Bucket[E]) Items() []E { return b.items[b.head:] }

// Reset drops all entries.
func (b *Bucket[E]) Reset() {
	clear(b.items)
	b.items = b.items[:0]
	b.head = 0
}

func (b *Bucket[E]) popBack() E {
	last := len(b.items) - 1
	e := b.items[last]
	var zero E
	b.items[last] = zero
	b.items = b.items[:last]
	if b.head == len(b.items) {
		b.items = b.items[:0]
		b.head = 0
	}
	return e
}

func (b *Bucket[E]) popFront() E {
	e := b.items[b.head]
	var zero E
	b.items[b.head] = zero
	b.head++

	switch {
	case b.head == len(b.items):
		b.items = b.items[:0]
		b.head = 0
	case b.head >= 32 && b.head*2 >= len(b.items):
		n := copy(b.items, b.items[b.head:])
		clear(b.items[n:])
		b.items = b.items[:n]
		b.head = 0
	}
	return e
}
