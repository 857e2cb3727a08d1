// internal/component/lifecycle.go
package component

// LifecycleState — состояние жизненного цикла актёра (игрок или враг).
type LifecycleState int

const (
	Active LifecycleState = iota
	Destroying
	Removed
	GameOver
)

func (s LifecycleState) String() string {
	switch s {
	case Active:
		return "active"
	case Destroying:
		return "destroying"
	case Removed:
		return "removed"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// Lifecycle — общий для игрока и врага автомат:
// Active -> Destroying (анимация взрыва) -> Terminal (Removed или GameOver).
// HP меняется только в Active и вне окна неуязвимости.
type Lifecycle struct {
	State         LifecycleState
	HP            int
	MaxHP         int
	FrameIndex    int
	FrameTimer    int
	Frames        int
	TicksPerFrame int
	Terminal      LifecycleState
	Invincible    int // тиков неуязвимости осталось
}

// NewLifecycle создаёт автомат в состоянии Active с полным здоровьем.
func NewLifecycle(hp, frames, ticksPerFrame int, terminal LifecycleState) Lifecycle {
	if frames < 1 {
		frames = 1
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return Lifecycle{
		State:         Active,
		HP:            hp,
		MaxHP:         hp,
		Frames:        frames,
		TicksPerFrame: ticksPerFrame,
		Terminal:      terminal,
	}
}

// ApplyDamage отнимает HP. Возвращает true только для вызова, который убил актёра,
// поэтому очки за убийство начисляются ровно один раз.
func (l *Lifecycle) ApplyDamage(amount int) bool {
	if l.State != Active || l.Invincible > 0 || amount <= 0 {
		return false
	}
	l.HP -= amount
	if l.HP > 0 {
		return false
	}
	l.HP = 0
	l.State = Destroying
	l.FrameIndex = 0
	l.FrameTimer = 0
	l.Invincible = 0
	return true
}

// AdvanceAnimation вызывается раз в тик, пока актёр взрывается.
// Возвращает true на тике, когда анимация закончилась и автомат перешёл в Terminal.
func (l *Lifecycle) AdvanceAnimation() bool {
	if l.State != Destroying {
		return false
	}
	l.FrameTimer++
	if l.FrameTimer >= l.TicksPerFrame {
		l.FrameTimer = 0
		l.FrameIndex++
	}
	if l.FrameIndex >= l.Frames {
		l.FrameIndex = l.Frames - 1
		l.State = l.Terminal
		return true
	}
	return false
}

// TickInvincibility уменьшает ненулевой таймер неуязвимости.
func (l *Lifecycle) TickInvincibility() {
	if l.Invincible > 0 {
		l.Invincible--
	}
}

// GrantInvincibility открывает окно неуязвимости на ticks тиков.
func (l *Lifecycle) GrantInvincibility(ticks int) {
	if l.State == Active && ticks > l.Invincible {
		l.Invincible = ticks
	}
}

func (l *Lifecycle) IsActive() bool     { return l.State == Active }
func (l *Lifecycle) IsInvincible() bool { return l.Invincible > 0 }

// IsTerminal — Removed или GameOver.
func (l *Lifecycle) IsTerminal() bool {
	return l.State == Removed || l.State == GameOver
}

// AnimationTicks — сколько тиков длится Destroying.
func (l *Lifecycle) AnimationTicks() int {
	return l.Frames * l.TicksPerFrame
}
