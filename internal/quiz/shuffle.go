package quiz

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Shuffler produces a question order for one session. Implementations must
// return a permutation of the input and must not mutate it.
type Shuffler interface {
	Shuffle(qs []Question) []Question
}

// RandomShuffler is an unbiased Fisher-Yates shuffler.
type RandomShuffler struct {
	rng *rand.Rand
}

// NewSeed returns a random int64 read from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRandomShuffler returns a shuffler seeded from crypto/rand.
func NewRandomShuffler() (*RandomShuffler, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeededShuffler(seed), nil
}

// NewSeededShuffler returns a shuffler whose sequence of orders is fully
// determined by seed.
func NewSeededShuffler(seed int64) *RandomShuffler {
	return &RandomShuffler{rng: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a shuffled copy of qs.
func (s *RandomShuffler) Shuffle(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	for i := len(out) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// identityShuffler keeps the input order. Used by tests and by callers
// that want the canonical order.
type identityShuffler struct{}

func (identityShuffler) Shuffle(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// CanonicalOrder is a Shuffler that returns the bank in id order.
var CanonicalOrder Shuffler = identityShuffler{}
