package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameRecordsAndReplays(t *testing.T) {
	src := NewDispatcher()
	var f Frame
	f.Record(src)
	assert.True(t, f.Empty())

	src.Dispatch(Event{Type: PlayerFired})
	src.Dispatch(Event{Type: EnemyDestroyed, Data: EnemyDestroyedData{Tier: "scout", Score: 10}})
	src.Dispatch(Event{Type: PlayerHit, Data: PlayerHitData{Shielded: true}})
	src.Dispatch(Event{Type: WaveAdvanced, Data: WaveAdvancedData{Wave: 3}})
	src.Dispatch(Event{Type: GameOver, Data: GameOverData{Score: 40, Wave: 3}})
	assert.False(t, f.Empty())

	dst := NewDispatcher()
	var types []EventType
	dst.SubscribeAll(ListenerFunc(func(e Event) { types = append(types, e.Type) }),
		PlayerFired, EnemyDestroyed, PlayerHit, WaveAdvanced, GameOver)
	f.Dispatch(dst)

	assert.Equal(t, []EventType{PlayerFired, EnemyDestroyed, PlayerHit, WaveAdvanced, GameOver}, types)
}

func TestFrameCloneDoesNotAlias(t *testing.T) {
	f := Frame{EnemiesDestroyed: []EnemyDestroyedData{{Tier: "a"}}, GameOver: &GameOverData{Score: 1}}
	c := f.Clone()
	f.EnemiesDestroyed[0].Tier = "b"
	f.GameOver.Score = 2
	assert.Equal(t, "a", c.EnemiesDestroyed[0].Tier)
	assert.Equal(t, 1, c.GameOver.Score)

	f.Clear()
	assert.True(t, f.Empty())
}

func TestFrameRecordsEscapesSeparatelyFromKills(t *testing.T) {
	src := NewDispatcher()
	var f Frame
	f.Record(src)

	src.Dispatch(Event{Type: EnemyEscaped, Data: EnemyEscapedData{Tier: "bomber"}})
	assert.Equal(t, []string{"bomber"}, f.EnemiesEscaped)
	assert.Empty(t, f.EnemiesDestroyed)

	dst := NewDispatcher()
	var got []Event
	dst.Subscribe(EnemyEscaped, ListenerFunc(func(e Event) { got = append(got, e) }))
	f.Dispatch(dst)

	assert.Equal(t, []Event{{Type: EnemyEscaped, Data: EnemyEscapedData{Tier: "bomber"}}}, got)
}
