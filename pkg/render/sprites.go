// pkg/render/sprites.go
package render

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"go-skyfire/internal/defs"
)

//go:embed assets/*.svg
var spriteFS embed.FS

// PlayerSprite — имя SVG корабля игрока.
const PlayerSprite = "player"

// SpriteSet держит растеризованные спрайты по имени.
type SpriteSet struct {
	images map[string]*ebiten.Image
}

// SVGData returns the raw embedded SVG for name.
func SVGData(name string) ([]byte, error) {
	data, err := spriteFS.ReadFile("assets/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("sprite %q: %w", name, err)
	}
	return data, nil
}

// Rasterize renders SVG data into an RGBA image of the given size.
func Rasterize(svgData []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize: bad size %dx%d", width, height)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, fmt.Errorf("rasterize: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// LoadSprites растеризует спрайт игрока и спрайты всех тиров в их игровых размерах.
// Тир без спрайта рисуется прямоугольником своего цвета.
func LoadSprites(library *defs.Library, playerW, playerH float64) (*SpriteSet, error) {
	s := &SpriteSet{images: make(map[string]*ebiten.Image, len(library.Tiers)+1)}
	if err := s.load(PlayerSprite, playerW, playerH); err != nil {
		return nil, err
	}
	for _, id := range library.Order {
		def := library.Tiers[id]
		if def.Visuals.Sprite == "" {
			continue
		}
		if err := s.load(def.Visuals.Sprite, def.Width, def.Height); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *SpriteSet) load(name string, w, h float64) error {
	data, err := SVGData(name)
	if err != nil {
		return err
	}
	img, err := Rasterize(data, int(w), int(h))
	if err != nil {
		return fmt.Errorf("sprite %q: %w", name, err)
	}
	s.images[name] = ebiten.NewImageFromImage(img)
	return nil
}

// Get возвращает спрайт или nil.
func (s *SpriteSet) Get(name string) *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.images[name]
}
