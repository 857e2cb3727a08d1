package app

import (
	"testing"

	"go-skyfire/internal/component"
	"go-skyfire/internal/config"
	"go-skyfire/internal/defs"
	"go-skyfire/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

// testLibrary holds tiers that neither move nor shoot, so scenarios control every hit.
func testLibrary() *defs.Library {
	dummy := defs.TierDefinition{ID: "dummy", Health: 1, Score: 10, Width: 40, Height: 40, ExplosionFrames: 2}
	bomber := defs.TierDefinition{ID: "bomber", Health: 3, Score: 30, Width: 110, Height: 120, ExplosionFrames: 6}
	return &defs.Library{
		Tiers:      map[string]defs.TierDefinition{"dummy": dummy, "bomber": bomber},
		Order:      []string{"dummy", "bomber"},
		SpawnTable: []defs.SpawnEntry{{TierID: "dummy", Weight: 1}},
	}
}

func bareRules() config.Rules {
	r := config.Default()
	r.ShieldPoints = 0
	r.InvincibilityTicks = 0
	return r
}

func newTestGame(t *testing.T, rules config.Rules, lib *defs.Library) *Game {
	t.Helper()
	g, err := NewGame(rules, lib, 1234)
	require.NoError(t, err)
	return g
}

func placeEnemy(t *testing.T, g *Game, tier string, x, y float64) *component.Enemy {
	t.Helper()
	def, err := g.Library.Tier(tier)
	require.NoError(t, err)
	e := component.NewEnemy(g.World.NewEntity(), def, component.Position{X: x, Y: y}, component.DirRight, g.Rules.TicksPerFrame)
	g.World.AddEnemy(e)
	return e
}

func playerShot(g *Game, x, y float64) *component.Projectile {
	p := g.World.Player
	shot := component.NewProjectile(g.World.NewEntity(), component.SidePlayer, p.ID,
		component.Position{X: x, Y: y}, component.Size{W: 6, H: 18}, g.Rules.PlayerShotSpeed)
	p.Projectiles = append(p.Projectiles, shot)
	return shot
}

func enemyShotAtPlayer(g *Game, owner *component.Enemy) *component.Projectile {
	p := g.World.Player
	shot := component.NewProjectile(g.World.NewEntity(), component.SideEnemy, owner.ID,
		component.Position{X: p.X + p.W/2, Y: p.Y + 10}, component.Size{W: 6, H: 14}, g.Rules.EnemyShotSpeed)
	owner.Projectiles = append(owner.Projectiles, shot)
	return shot
}

func TestNewGameRejectsInvalidConfiguration(t *testing.T) {
	r := config.Default()
	r.CapCeiling = 1
	_, err := NewGame(r, testLibrary(), 1)
	assert.ErrorIs(t, err, config.ErrInvalidRules)

	lib := testLibrary()
	lib.SpawnTable = append(lib.SpawnTable, defs.SpawnEntry{TierID: "ghost", Weight: 1})
	_, err = NewGame(config.Default(), lib, 1)
	assert.ErrorIs(t, err, defs.ErrUnknownTier)

	lib = testLibrary()
	wide := lib.Tiers["bomber"]
	wide.Width = 1000
	lib.Tiers["bomber"] = wide
	_, err = NewGame(config.Default(), lib, 1)
	assert.ErrorIs(t, err, defs.ErrInvalidTier)
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	fs := g.Snapshot()

	assert.Equal(t, component.Playing, fs.Phase)
	assert.Equal(t, WaveState{Number: 1, Cap: 5, IntervalMs: 1500}, fs.Wave)
	assert.Equal(t, 5, fs.Player.HP)
	assert.Equal(t, 2, fs.Player.Shield)
	assert.Equal(t, component.Active, fs.Player.State)
	assert.Equal(t, component.Rect{X: 207, Y: 550, W: 66, H: 80}, fs.Player.Rect)
	assert.Empty(t, fs.Enemies)
	assert.Empty(t, fs.Projectiles)
}

func TestPlayerFiveHitsThenGameOver(t *testing.T) {
	g := newTestGame(t, bareRules(), testLibrary())
	shooter := placeEnemy(t, g, "dummy", 0, 0)

	var fs FrameState
	for i := 1; i <= 5; i++ {
		enemyShotAtPlayer(g, shooter)
		fs = g.Step(tick, Intent{})
		require.Len(t, fs.Events.PlayerHits, 1, "hit %d", i)
		assert.Equal(t, i == 5, fs.Events.PlayerHits[0].Lethal)
	}
	assert.Equal(t, 0, fs.Player.HP)
	assert.Equal(t, component.Destroying, fs.Player.State)

	animation := g.Rules.PlayerExplosionFrames * g.Rules.TicksPerFrame
	for i := 1; i < animation; i++ {
		fs = g.Step(tick, Intent{})
		require.Equal(t, component.Destroying, fs.Player.State, "tick %d", i)
		assert.Nil(t, fs.Events.GameOver)
	}
	fs = g.Step(tick, Intent{})
	assert.Equal(t, component.GameOver, fs.Player.State)
	assert.Equal(t, component.Over, fs.Phase)
	require.NotNil(t, fs.Events.GameOver)
	assert.True(t, g.Over())
}

func TestGameOverFreezesUntilReset(t *testing.T) {
	g := newTestGame(t, bareRules(), testLibrary())
	g.World.Player.ApplyDamage(100)
	var fs FrameState
	for !g.Over() {
		fs = g.Step(tick, Intent{Fire: true, MoveLeft: true})
	}
	frozen := g.Step(tick, Intent{Fire: true, MoveLeft: true})
	assert.Equal(t, fs.Tick, frozen.Tick)
	assert.Equal(t, fs.Player, frozen.Player)
	assert.True(t, frozen.Events.Empty(), "game over is reported once")

	g.Reset()
	fs = g.Step(tick, Intent{})
	assert.Equal(t, uint64(1), fs.Tick)
	assert.Equal(t, component.Playing, fs.Phase)
	assert.Equal(t, 5, fs.Player.HP)
	assert.True(t, fs.Events.Reset)
}

func TestEnemyThreeHitsAwardsScoreOnce(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	enemy := placeEnemy(t, g, "bomber", 100, 100)

	shots := []*component.Projectile{
		playerShot(g, 150, 160),
		playerShot(g, 160, 170),
		playerShot(g, 170, 180),
		playerShot(g, 180, 190),
	}
	fs := g.Step(tick, Intent{})

	assert.Equal(t, component.Destroying, enemy.State)
	assert.Equal(t, 0, enemy.HP)
	assert.Equal(t, 30, fs.Player.Score)
	assert.Equal(t, 1, fs.Player.Kills)
	assert.Equal(t, []event.EnemyDestroyedData{{Tier: "bomber", Score: 30}}, fs.Events.EnemiesDestroyed)

	for _, s := range shots[:3] {
		assert.False(t, s.Alive)
	}
	assert.True(t, shots[3].Alive, "destroying enemies are immune, the fourth shot flies on")

	for i := 0; i < 10; i++ {
		playerShot(g, 150, 160)
		fs = g.Step(tick, Intent{})
	}
	assert.Equal(t, 30, fs.Player.Score)
}

func TestProjectileHitsFirstInsertedEnemyOnly(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	first := placeEnemy(t, g, "dummy", 100, 100)
	second := placeEnemy(t, g, "dummy", 100, 100)
	shot := playerShot(g, 110, 130)

	g.Step(tick, Intent{})
	assert.False(t, shot.Alive)
	assert.Equal(t, component.Destroying, first.State)
	assert.Equal(t, component.Active, second.State)
}

func TestNonOverlappingProjectileChangesNothing(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	enemy := placeEnemy(t, g, "bomber", 0, 100)
	shot := playerShot(g, 400, 300)

	fs := g.Step(tick, Intent{})
	assert.True(t, shot.Alive)
	assert.Equal(t, 3, enemy.HP)
	assert.Len(t, fs.Enemies, 1)
	assert.Len(t, fs.Projectiles, 1)
	assert.Empty(t, fs.Events.EnemiesDestroyed)
	assert.Zero(t, fs.Player.Score)
}

func TestOneHitPerEnemyOwnerPerTick(t *testing.T) {
	g := newTestGame(t, bareRules(), testLibrary())
	shooter := placeEnemy(t, g, "dummy", 0, 0)
	a := enemyShotAtPlayer(g, shooter)
	b := enemyShotAtPlayer(g, shooter)

	fs := g.Step(tick, Intent{})
	assert.Len(t, fs.Events.PlayerHits, 1)
	assert.False(t, a.Alive)
	assert.True(t, b.Alive)
	assert.Equal(t, 4, fs.Player.HP)

	fs = g.Step(tick, Intent{})
	assert.Len(t, fs.Events.PlayerHits, 1)
	assert.Equal(t, 3, fs.Player.HP)
}

func TestShieldAndInvincibility(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	shooter := placeEnemy(t, g, "dummy", 0, 0)

	enemyShotAtPlayer(g, shooter)
	fs := g.Step(tick, Intent{})
	require.Len(t, fs.Events.PlayerHits, 1)
	assert.True(t, fs.Events.PlayerHits[0].Shielded)
	assert.Equal(t, 1, fs.Player.Shield)
	assert.Equal(t, 5, fs.Player.HP)
	assert.True(t, fs.Player.Invincible)

	ignored := enemyShotAtPlayer(g, shooter)
	fs = g.Step(tick, Intent{})
	assert.Empty(t, fs.Events.PlayerHits)
	assert.Equal(t, 1, fs.Player.Shield)
	assert.True(t, ignored.Alive, "invincible player does not consume shots")
}

func TestInvincibilityCoversConfiguredTicks(t *testing.T) {
	rules := bareRules()
	rules.InvincibilityTicks = 30
	g := newTestGame(t, rules, testLibrary())
	shooter := placeEnemy(t, g, "dummy", 0, 0)

	enemyShotAtPlayer(g, shooter)
	fs := g.Step(tick, Intent{})
	require.Len(t, fs.Events.PlayerHits, 1)

	for i := 1; i <= rules.InvincibilityTicks; i++ {
		enemyShotAtPlayer(g, shooter)
		fs = g.Step(tick, Intent{})
		require.Empty(t, fs.Events.PlayerHits, "tick +%d", i)
		require.True(t, fs.Player.Invincible, "tick +%d", i)
	}

	enemyShotAtPlayer(g, shooter)
	fs = g.Step(tick, Intent{})
	assert.Len(t, fs.Events.PlayerHits, 1)
	assert.Equal(t, 3, fs.Player.HP)
}

func TestDestroyingEnemyShotsCannotHit(t *testing.T) {
	g := newTestGame(t, bareRules(), testLibrary())
	shooter := placeEnemy(t, g, "dummy", 0, 0)
	enemyShotAtPlayer(g, shooter)
	shooter.ApplyDamage(1)

	fs := g.Step(tick, Intent{})
	assert.Empty(t, fs.Events.PlayerHits)
	assert.Equal(t, 5, fs.Player.HP)
}

func TestEnemyRemovedAfterAnimation(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	enemy := placeEnemy(t, g, "dummy", 100, 100)
	enemy.ApplyDamage(1)

	ticks := enemy.AnimationTicks()
	for i := 1; i < ticks; i++ {
		fs := g.Step(tick, Intent{})
		require.Len(t, fs.Enemies, 1, "tick %d", i)
		assert.Equal(t, component.Destroying, fs.Enemies[0].State)
	}
	fs := g.Step(tick, Intent{})
	assert.Empty(t, fs.Enemies)
}

func TestPlayerMovementClampedToField(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	var fs FrameState
	for i := 0; i < 100; i++ {
		fs = g.Step(tick, Intent{MoveLeft: true})
	}
	assert.Equal(t, 0.0, fs.Player.Rect.X)

	for i := 0; i < 100; i++ {
		fs = g.Step(tick, Intent{MoveRight: true})
	}
	assert.Equal(t, g.Rules.FieldWidth-g.Rules.PlayerWidth, fs.Player.Rect.X)

	x := fs.Player.Rect.X
	fs = g.Step(tick, Intent{MoveLeft: true, MoveRight: true})
	assert.Equal(t, x, fs.Player.Rect.X)
}

func TestMovementScalesWithDeltaTime(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	x := g.World.Player.X
	g.Step(tick, Intent{MoveLeft: true})
	assert.InDelta(t, x-8, g.World.Player.X, 1e-9)

	x = g.World.Player.X
	g.Step(tick/2, Intent{MoveLeft: true})
	assert.InDelta(t, x-4, g.World.Player.X, 1e-9)

	x = g.World.Player.X
	g.Step(10, Intent{MoveLeft: true})
	assert.InDelta(t, x-8*g.Rules.TickScale(g.Rules.MaxDeltaTime), g.World.Player.X, 1e-9, "delta time is clamped")
}

func TestFireIsRateLimited(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	fired := 0
	for i := 0; i < 30; i++ {
		fs := g.Step(tick, Intent{Fire: true})
		if fs.Events.PlayerFired {
			fired++
		}
	}
	assert.Equal(t, 3, fired)
}

func TestPlayerShotsLeaveFieldAndArePruned(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	fs := g.Step(tick, Intent{Fire: true})
	require.Len(t, fs.Projectiles, 1)
	assert.Equal(t, component.SidePlayer, fs.Projectiles[0].Owner)

	for i := 0; i < 60; i++ {
		fs = g.Step(tick, Intent{})
	}
	assert.Empty(t, fs.Projectiles)
}

func TestEscapedEnemyIsRemovedWithoutScore(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	placeEnemy(t, g, "dummy", 100, g.Rules.FieldHeight+1)

	fs := g.Step(tick, Intent{})
	assert.Empty(t, fs.Enemies)
	assert.Equal(t, []string{"dummy"}, fs.Events.EnemiesEscaped)
	assert.Zero(t, fs.Player.Score)
}

func TestFirstWaveSpawnsAfterInterval(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	steps := 0
	for len(g.World.Enemies) == 0 {
		g.Step(tick, Intent{})
		steps++
		require.Less(t, steps, 200)
	}
	assert.InDelta(t, 90, steps, 1)
	e := g.World.Enemies[0]
	assert.Equal(t, g.Rules.EnemySpawnY, e.Y)
	assert.GreaterOrEqual(t, e.X, 0.0)
	assert.LessOrEqual(t, e.X, g.Rules.FieldWidth-e.W)
}

func spawnFirst(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; len(g.World.Enemies) == 0; i++ {
		require.Less(t, i, 1000)
		g.Step(tick, Intent{})
	}
}

func TestWaveAdvancesWhenCleared(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	spawnFirst(t, g)

	for _, e := range g.World.Enemies {
		e.State = component.Removed
	}
	fs := g.Step(tick, Intent{})

	assert.Equal(t, 2, fs.Events.WaveAdvanced)
	assert.Equal(t, 2, fs.Wave.Number)
	assert.Equal(t, 7, fs.Wave.Cap)
	assert.Equal(t, 1400.0, fs.Wave.IntervalMs)
	assert.Len(t, fs.Enemies, 1, "first enemy of the new wave spawns immediately")
	assert.Equal(t, 1, g.World.Wave.SpawnedThisWave)
}

func TestWaveScalingIsMonotonicAndBounded(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	spawnFirst(t, g)

	prevCap, prevInterval := g.World.Wave.Cap, g.World.Wave.IntervalMs
	for wave := 0; wave < 20; wave++ {
		for _, e := range g.World.Enemies {
			e.State = component.Removed
		}
		fs := g.Step(tick, Intent{})
		require.NotZero(t, fs.Events.WaveAdvanced)

		assert.GreaterOrEqual(t, fs.Wave.Cap, prevCap)
		assert.LessOrEqual(t, fs.Wave.Cap, g.Rules.CapCeiling)
		assert.LessOrEqual(t, fs.Wave.IntervalMs, prevInterval)
		assert.GreaterOrEqual(t, fs.Wave.IntervalMs, g.Rules.IntervalFloorMs)
		prevCap, prevInterval = fs.Wave.Cap, fs.Wave.IntervalMs
	}
	assert.Equal(t, 15, prevCap)
	assert.Equal(t, 500.0, prevInterval)
}

func TestWaveDoesNotAdvanceBeforeFirstSpawn(t *testing.T) {
	g := newTestGame(t, config.Default(), testLibrary())
	for i := 0; i < 60; i++ {
		fs := g.Step(tick, Intent{})
		assert.Zero(t, fs.Events.WaveAdvanced)
	}
	assert.Equal(t, 1, g.World.Wave.Number)
}

func TestPopulationCap(t *testing.T) {
	r := config.Default()
	r.InitialCap = 2
	r.CapCeiling = 2
	r.InitialIntervalMs = 500
	g := newTestGame(t, r, testLibrary())

	for i := 0; i < 600; i++ {
		fs := g.Step(tick, Intent{})
		require.LessOrEqual(t, len(fs.Enemies), 2)
	}
}

func script(i int) Intent {
	return Intent{
		MoveLeft:  (i/40)%2 == 0,
		MoveRight: (i/40)%2 == 1,
		Fire:      i%3 != 0,
	}
}

func run(g *Game, n int) FrameState {
	var fs FrameState
	for i := 0; i < n; i++ {
		fs = g.Step(tick, script(i))
	}
	return fs
}

func TestSameSeedIsDeterministic(t *testing.T) {
	lib, err := defs.Default()
	require.NoError(t, err)

	a, err := NewGame(config.Default(), lib, 99)
	require.NoError(t, err)
	b, err := NewGame(config.Default(), lib, 99)
	require.NoError(t, err)

	fa, fb := run(a, 3000), run(b, 3000)
	assert.Equal(t, fa, fb)
	assert.Positive(t, fa.Wave.TotalSpawned)

	a.Reset()
	assert.Equal(t, fa, run(a, 3000), "reset replays the session")
}

func TestDifferentSeedsDiverge(t *testing.T) {
	lib, err := defs.Default()
	require.NoError(t, err)
	a, err := NewGame(config.Default(), lib, 1)
	require.NoError(t, err)
	b, err := NewGame(config.Default(), lib, 2)
	require.NoError(t, err)

	assert.NotEqual(t, run(a, 1500).Enemies, run(b, 1500).Enemies)
}
