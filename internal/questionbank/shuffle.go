package questionbank

import "math/rand/v2"

// Shuffler produces random orderings of a bank. A Shuffler is not safe for
// concurrent use; each attempt owns its own.
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler returns a Shuffler drawing from a freshly seeded source, so
// every call yields an independent ordering.
func NewShuffler() *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededShuffler returns a Shuffler whose sequence of orderings is fully
// determined by seed. Used for replaying an attempt.
func NewSeededShuffler(seed uint64) *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle returns every question of b exactly once in uniformly random
// order. The bank itself is never modified.
func (s *Shuffler) Shuffle(b *Bank) []Question {
	out := b.Questions()
	// Fisher-Yates: walk down from the last index, swapping each element
	// with a uniformly chosen one at or below it.
	for i := len(out) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Shuffle is a convenience for NewShuffler().Shuffle(b).
func Shuffle(b *Bank) []Question {
	return NewShuffler().Shuffle(b)
}
