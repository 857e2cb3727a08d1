// internal/component/visual.go
package component

// HitFlash указывает, что сущность должна быть отрисована цветом урона.
type HitFlash struct {
	Ticks int // Сколько тиков эффект ещё активен
}

// HitFlashTicks — длительность вспышки после нелетального попадания.
const HitFlashTicks = 6

func (f *HitFlash) Start() { f.Ticks = HitFlashTicks }

func (f *HitFlash) Tick() {
	if f.Ticks > 0 {
		f.Ticks--
	}
}

func (f HitFlash) Active() bool { return f.Ticks > 0 }
