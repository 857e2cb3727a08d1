package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-skyfire/internal/config"
)

func TestButtonContains(t *testing.T) {
	b := NewButton(image.Rect(10, 20, 110, 60), "START", nil)
	assert.True(t, b.Contains(10, 20))
	assert.True(t, b.Contains(109, 59))
	assert.False(t, b.Contains(110, 40))
	assert.False(t, b.Contains(50, 19))
}

func TestPauseButtonToggle(t *testing.T) {
	b := NewPauseButton(100, 100, 10, color.White, color.White)
	assert.True(t, b.Contains(100, 114))
	assert.False(t, b.Contains(100, 116))

	b.TogglePause()
	assert.True(t, b.IsPaused)
	assert.False(t, b.LastClickTime.IsZero())
	b.SetPaused(false)
	assert.False(t, b.IsPaused)
}

func TestSpeedButtonCycles(t *testing.T) {
	b := NewSpeedButton(0, 0, 10, []int{1, 2, 4}, nil)
	got := []int{b.Multiplier()}
	for i := 0; i < 3; i++ {
		b.ToggleState()
		got = append(got, b.Multiplier())
	}
	assert.Equal(t, []int{1, 2, 4, 1}, got)

	empty := NewSpeedButton(0, 0, 10, nil, nil)
	empty.ToggleState()
	assert.Equal(t, 1, empty.Multiplier())
}

func TestWaveIndicatorLabelAndColor(t *testing.T) {
	w := NewWaveIndicator(240, 10)
	assert.Equal(t, "XIV", w.Label(14))
	assert.Equal(t, config.UIColorBlue, w.TextColor(9))
	assert.Equal(t, config.GameOverColor, w.TextColor(20))
}

func TestHealthIndicatorLayout(t *testing.T) {
	h := NewPlayerHealthIndicator(10, 10)
	x0, y0 := h.CellCenter(0)
	x1, _ := h.CellCenter(1)
	_, y5 := h.CellCenter(HealthCols)
	assert.Equal(t, float32(17), x0)
	assert.Equal(t, float32(17), y0)
	assert.Equal(t, float32(HealthCircleRadius*2+HealthCircleSpacing), x1-x0)
	assert.Greater(t, y5, y0)
	assert.Equal(t, float32(5*18-4), h.Width(5))
	assert.Equal(t, h.Width(5), h.Width(12))
}

func TestShieldProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(0, 5))
	assert.Equal(t, 0.6, Progress(8, 5))
	assert.Equal(t, 0.0, Progress(10, 5))
	assert.Equal(t, 0.0, Progress(3, 0))
}

func TestSoundIndicatorContains(t *testing.T) {
	s := NewSoundIndicator(50, 50, 8, color.White, color.Black)
	assert.True(t, s.Contains(55, 55))
	assert.False(t, s.Contains(60, 60))
	s.HandleClick()
	assert.False(t, s.LastClickTime.IsZero())
}
