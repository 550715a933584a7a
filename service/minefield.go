package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// minefieldGenerator draws bomb layouts from a math/rand source seeded from
// crypto/rand, so layouts are not replayable by the player. Tests inject a
// fixed seed via NewSeededMinefieldGenerator.
type minefieldGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMinefieldGenerator creates a generator with an unpredictable seed
func NewMinefieldGenerator() MinefieldGenerator {
	var seed int64
	if err := binary.Read(crand.Reader, binary.BigEndian, &seed); err != nil {
		panic(fmt.Sprintf("failed to seed minefield generator: %v", err))
	}
	return &minefieldGenerator{rng: rand.New(rand.NewSource(seed))}
}

// NewSeededMinefieldGenerator creates a deterministic generator for tests
func NewSeededMinefieldGenerator(seed int64) MinefieldGenerator {
	return &minefieldGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns mineCount distinct indices drawn uniformly from [0, size)
func (g *minefieldGenerator) Generate(size, mineCount int) ([]int, error) {
	if mineCount < 1 || mineCount >= size {
		return nil, fmt.Errorf("%w: mine count %d must be in [1, %d)", ErrInvalidMineCount, mineCount, size)
	}

	g.mu.Lock()
	perm := g.rng.Perm(size)
	g.mu.Unlock()

	bombs := make([]int, mineCount)
	copy(bombs, perm[:mineCount])
	return bombs, nil
}
