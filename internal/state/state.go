// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит стек состояний. Обновляется и рисуется только верхнее;
// пауза кладётся поверх игры и снимается без повторного Enter у игры.
type StateMachine struct {
	stack []State
	quit  bool
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState заменяет весь стек одним состоянием. Все текущие получают Exit,
// сверху вниз. nil очищает стек.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.pop()
	}
	if newState != nil {
		sm.Push(newState)
	}
}

// Push кладёт состояние поверх текущего; текущее не выходит.
func (sm *StateMachine) Push(s State) {
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхнее состояние и возвращает его. Нижнее продолжает с того же места.
func (sm *StateMachine) Pop() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.pop()
}

func (sm *StateMachine) pop() State {
	top := sm.stack[len(sm.stack)-1]
	sm.stack[len(sm.stack)-1] = nil
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
	return top
}

// Current возвращает верхнее состояние или nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Quit просит приложение завершиться после текущего кадра.
func (sm *StateMachine) Quit() {
	sm.quit = true
}

func (sm *StateMachine) Done() bool {
	return sm.quit
}

func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.Current(); s != nil {
		s.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(screen)
	}
}
