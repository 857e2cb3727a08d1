package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDamageDecrementsUntilKill(t *testing.T) {
	l := NewLifecycle(5, 4, 7, GameOver)
	for k := 1; k < 5; k++ {
		assert.False(t, l.ApplyDamage(1))
		assert.Equal(t, 5-k, l.HP)
		assert.Equal(t, Active, l.State)
	}

	assert.True(t, l.ApplyDamage(1), "the fifth hit kills")
	assert.Equal(t, Destroying, l.State)
	assert.Equal(t, 0, l.HP)

	// frozen once destroying
	for i := 0; i < 3; i++ {
		assert.False(t, l.ApplyDamage(1))
	}
	assert.Equal(t, 0, l.HP)
}

func TestApplyDamageIgnoredWhileInvincible(t *testing.T) {
	l := NewLifecycle(3, 1, 1, Removed)
	l.GrantInvincibility(2)
	assert.False(t, l.ApplyDamage(1))
	assert.Equal(t, 3, l.HP)

	l.TickInvincibility()
	l.TickInvincibility()
	assert.False(t, l.IsInvincible())
	assert.False(t, l.ApplyDamage(1))
	assert.Equal(t, 2, l.HP)
}

func TestApplyDamageOverkillClampsToZero(t *testing.T) {
	l := NewLifecycle(2, 1, 1, Removed)
	assert.True(t, l.ApplyDamage(10))
	assert.Equal(t, 0, l.HP)
	assert.False(t, l.ApplyDamage(0))
}

func TestAdvanceAnimationCompletesAfterFramesTimesTicks(t *testing.T) {
	l := NewLifecycle(1, 4, 7, GameOver)
	assert.False(t, l.AdvanceAnimation(), "no-op while active")
	require.True(t, l.ApplyDamage(1))

	calls := 0
	for !l.AdvanceAnimation() {
		calls++
		require.Less(t, calls, 100)
		assert.Equal(t, Destroying, l.State)
	}
	calls++
	assert.Equal(t, 28, calls)
	assert.Equal(t, l.AnimationTicks(), calls)
	assert.Equal(t, GameOver, l.State)
	assert.True(t, l.IsTerminal())
	assert.False(t, l.AdvanceAnimation())
}

func TestEnemyLifecycleEndsRemoved(t *testing.T) {
	l := NewLifecycle(1, 2, 1, Removed)
	l.ApplyDamage(1)
	l.AdvanceAnimation()
	assert.True(t, l.AdvanceAnimation())
	assert.Equal(t, Removed, l.State)
}

func TestFrameIndexAdvancesEveryTicksPerFrame(t *testing.T) {
	l := NewLifecycle(1, 4, 7, Removed)
	l.ApplyDamage(1)
	for i := 0; i < 7; i++ {
		l.AdvanceAnimation()
	}
	assert.Equal(t, 1, l.FrameIndex)
	assert.Equal(t, 0, l.FrameTimer)
}
