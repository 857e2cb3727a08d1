package utils

import (
	"testing"

	"go-skyfire/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestChooseWeightedDistribution(t *testing.T) {
	rng := NewPRNGService(42)
	table := []defs.SpawnEntry{{TierID: "scout", Weight: 3}, {TierID: "fighter", Weight: 2}, {TierID: "bomber", Weight: 1}}

	counts := map[string]int{}
	for i := 0; i < 6000; i++ {
		counts[rng.ChooseWeighted(table)]++
	}
	assert.Greater(t, counts["scout"], counts["fighter"])
	assert.Greater(t, counts["fighter"], counts["bomber"])
	assert.InDelta(t, 3000, counts["scout"], 300)
	assert.InDelta(t, 1000, counts["bomber"], 200)
}

func TestChooseWeightedEdgeCases(t *testing.T) {
	rng := NewPRNGService(1)
	assert.Empty(t, rng.ChooseWeighted(nil))
	assert.Equal(t, "a", rng.ChooseWeighted([]defs.SpawnEntry{{TierID: "a"}, {TierID: "b"}}))
}

func TestReseedRepeatsSequence(t *testing.T) {
	rng := NewPRNGService(7)
	first := []int{rng.Intn(100), rng.Intn(100), rng.RangeInt(1, 1000)}
	rng.Reseed()
	second := []int{rng.Intn(100), rng.Intn(100), rng.RangeInt(1, 1000)}
	assert.Equal(t, first, second)
	assert.Equal(t, int64(7), rng.Seed())
}

func TestZeroSeedIsResolved(t *testing.T) {
	assert.NotZero(t, NewPRNGService(0).Seed())
}

func TestRangeIntBounds(t *testing.T) {
	rng := NewPRNGService(3)
	for i := 0; i < 500; i++ {
		v := rng.RangeInt(1, 4)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 4)
	}
	assert.Equal(t, 5, rng.RangeInt(5, 5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
	assert.Equal(t, 4.5, Clamp(4.5, 0, 10))
}
