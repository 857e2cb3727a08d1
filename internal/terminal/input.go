// internal/terminal/input.go
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"go-skyfire/internal/app"
)

// Key — клавиша, понятная игре.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyQuit
	KeyRestart
	KeyMute
	KeyPause
)

// DefaultHoldTicks — столько тиков нажатие считается удерживаемым.
// Терминал не присылает отпускание клавиши, только автоповтор, поэтому каждое
// нажатие «защёлкивается» на время, перекрывающее паузу автоповтора.
const DefaultHoldTicks = 8

// KeyFromEvent переводит событие tcell в Key.
func KeyFromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return KeyLeft
		case 'd', 'D', 'l':
			return KeyRight
		case ' ', 'j', 'k':
			return KeyFire
		case 'q', 'Q':
			return KeyQuit
		case 'r', 'R':
			return KeyRestart
		case 'm', 'M':
			return KeyMute
		case 'p', 'P':
			return KeyPause
		}
	}
	return KeyNone
}

// KeyLatch превращает поток нажатий в удерживаемое намерение.
type KeyLatch struct {
	HoldTicks int
	left      int
	right     int
	fire      int
}

func NewKeyLatch(holdTicks int) *KeyLatch {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyLatch{HoldTicks: holdTicks}
}

// Press продлевает удержание клавиши движения или огня.
// Противоположное направление сбрасывается сразу.
func (l *KeyLatch) Press(k Key) {
	switch k {
	case KeyLeft:
		l.left, l.right = l.HoldTicks, 0
	case KeyRight:
		l.right, l.left = l.HoldTicks, 0
	case KeyFire:
		l.fire = l.HoldTicks
	}
}

// Intent возвращает намерение на этот тик и старит защёлки.
func (l *KeyLatch) Intent() app.Intent {
	in := app.Intent{MoveLeft: l.left > 0, MoveRight: l.right > 0, Fire: l.fire > 0}
	l.left = decay(l.left)
	l.right = decay(l.right)
	l.fire = decay(l.fire)
	return in
}

// Release сбрасывает всё (пауза, рестарт).
func (l *KeyLatch) Release() {
	l.left, l.right, l.fire = 0, 0, 0
}

func decay(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}
