package game

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wan3s/literacy-art/internal/data"
	"github.com/wan3s/literacy-art/internal/mapping"
)

var backgroundColor = color.RGBA{R: 248, G: 250, B: 252, A: 255}

// Scene adapts a World to ebiten's game loop: it polls input, steps the
// simulation once per tick and turns entity state into draw calls.
type Scene struct {
	world *World
	cache *RenderCache
	stats data.Stats

	prevKey    map[ebiten.Key]bool
	lastUpdate time.Time

	showPanel    bool
	saveSnapshot bool
}

// NewScene wraps a stepped world for display.
func NewScene(w *World, cacheLimit int, stats data.Stats) *Scene {
	return &Scene{
		world:   w,
		cache:   NewRenderCache(cacheLimit),
		stats:   stats,
		prevKey: map[ebiten.Key]bool{},
	}
}

func (s *Scene) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !s.prevKey[k]
		s.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		s.world.Paused = !s.world.Paused
	}
	if justPressed(ebiten.KeyH) {
		s.showPanel = !s.showPanel
	}
	if justPressed(ebiten.KeyS) {
		s.saveSnapshot = true
	}

	// Wall-clock frame time so motion stays consistent across frame rates.
	now := time.Now()
	dt := 1.0 / 60.0
	if !s.lastUpdate.IsZero() {
		dt = now.Sub(s.lastUpdate).Seconds()
		if dt > 0.25 {
			dt = 0.25
		}
	}
	s.lastUpdate = now

	mx, my := ebiten.CursorPosition()
	s.world.Mouse = Pointer{X: float64(mx), Y: float64(my), Set: mx > 0 && my > 0}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if e := s.world.Click(float64(mx), float64(my)); e != nil {
			log.Printf("selected %s (%.1f%%)", e.Name, e.Rate)
		}
	}

	s.world.Step(dt)
	return nil
}

func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, e := range s.world.Entities {
		s.drawEntity(screen, e)
	}

	s.drawMouseIndicator(screen)
	s.drawTooltip(screen)
	if s.showPanel {
		s.drawInfoPanel(screen)
	}

	status := "Space: pause | H: panel | S: snapshot | Esc/Q: quit"
	if s.world.Paused {
		status = "Paused | " + status
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	if s.saveSnapshot {
		s.saveSnapshot = false
		s.writeSnapshot(screen)
	}
}

func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.world.Params.Width, s.world.Params.Height
}

// drawEntity resolves the entity's current visual state (pulse scale,
// mouse boosts, clarity) and blits its cached rasterization. Selected
// entities are always rendered fresh with their highlight ring.
func (s *Scene) drawEntity(screen *ebiten.Image, e *Entity) {
	w := s.world
	cx := e.X * float64(w.Params.Width)
	cy := e.Y * float64(w.Params.Height)

	clickScale := w.Pulses.Scale(e.ID)
	sizePx := w.DynamicSize(e) * clickScale
	clarity := mapping.Clarity(e.Rate)
	opacity := e.Opacity

	if e.MouseInfluenced {
		sizePx *= 1 + e.Influence*0.3
		opacity = math.Min(1, opacity*(1+e.Influence*0.5))
		clarity = math.Min(1, clarity+e.Influence*0.3)
	}

	r, g, b := mapping.MacaronColor(e.Hue, e.Rate)
	clr := color.RGBA{R: r, G: g, B: b, A: 255}
	rotation := e.Rotation + w.GlobalRotation

	if e.Selected {
		clarity = 1
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(sizePx+8), 3,
			color.RGBA{R: 255, G: 255, B: 255, A: 255}, true)
		img := renderShape(shapeSpec{
			Shape: e.Shape, Pattern: e.Pattern, SizePx: sizePx,
			Rotation: rotation, Color: clr, Clarity: clarity,
		})
		defer img.Deallocate()
		s.blit(screen, img, cx, cy, opacity*clarity)
		return
	}

	key := NewCacheKey(e, sizePx, clickScale, rotation)
	img := s.cache.Image(key, func() *ebiten.Image {
		renderClarity := mapping.Clarity(e.Rate)
		if key.Influenced {
			renderClarity = math.Min(1, renderClarity+0.3)
		}
		return renderShape(shapeSpec{
			Shape:    e.Shape,
			Pattern:  e.Pattern,
			SizePx:   float64(key.SizePx),
			Rotation: float64(key.RotBucket) * 10,
			Color:    clr,
			Clarity:  renderClarity,
		})
	})

	alpha := mapping.Clamp01(opacity * clarity)
	if clarity < 0.9 {
		// Low clarity gets a cheap ghost blur: faint offset copies under
		// the main blit.
		blur := mapping.BlurRadius(clarity) * 0.5
		for _, off := range [][2]float64{{-blur, 0}, {blur, 0}, {0, -blur}, {0, blur}} {
			s.blit(screen, img, cx+off[0], cy+off[1], alpha*0.12)
		}
	}
	s.blit(screen, img, cx, cy, alpha)
}

func (s *Scene) blit(screen, img *ebiten.Image, cx, cy, alpha float64) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(bounds.Dx())/2, cy-float64(bounds.Dy())/2)
	op.ColorScale.ScaleAlpha(float32(mapping.Clamp01(alpha)))
	screen.DrawImage(img, op)
}

func (s *Scene) drawMouseIndicator(screen *ebiten.Image) {
	m := s.world.Mouse
	if !m.Set {
		return
	}
	r := float32(s.world.Params.MouseRadius)
	vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), r,
		color.RGBA{R: 100, G: 100, B: 255, A: 30}, true)
	vector.StrokeCircle(screen, float32(m.X), float32(m.Y), r, 2,
		color.RGBA{R: 100, G: 100, B: 255, A: 80}, true)
}

func (s *Scene) drawTooltip(screen *ebiten.Image) {
	tip := s.world.Tooltip
	if tip == nil {
		return
	}
	var entity *Entity
	for _, e := range s.world.Entities {
		if e.ID == tip.EntityID {
			entity = e
			break
		}
	}
	if entity == nil {
		return
	}

	alpha := tip.Fade.Alpha()
	x, y := float32(tip.Placement.X), float32(tip.Placement.Y)
	tw := float32(s.world.Params.TooltipWidth)
	th := float32(s.world.Params.TooltipHeight)

	vector.DrawFilledRect(screen, x, y, tw, th,
		color.RGBA{R: 25, G: 28, B: 35, A: uint8(240 * alpha)}, true)
	vector.StrokeRect(screen, x, y, tw, th, 2,
		color.RGBA{R: 135, G: 206, B: 235, A: uint8(120 * alpha)}, true)

	name := entity.Name
	if len(name) > 22 {
		name = name[:19] + "..."
	}
	pad := 20
	ebitenutil.DebugPrintAt(screen, name, int(x)+pad, int(y)+pad)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f%% Literacy Rate", entity.Rate), int(x)+pad, int(y)+pad+32)
	ebitenutil.DebugPrintAt(screen, "Shape: "+entity.Shape.String(), int(x)+pad, int(y)+pad+56)
}

func (s *Scene) drawInfoPanel(screen *ebiten.Image) {
	const panelW, panelH = 360, 220
	vector.DrawFilledRect(screen, 10, 30, panelW, panelH,
		color.RGBA{R: 255, G: 255, B: 255, A: 245}, true)
	vector.StrokeRect(screen, 10, 30, panelW, panelH, 3,
		color.RGBA{R: 173, G: 216, B: 230, A: 180}, true)

	y := 40
	line := func(text string) {
		ebitenutil.DebugPrintAt(screen, text, 30, y)
		y += 22
	}
	line("Geometric Art")
	line("UNESCO Literacy Data Visualization")
	y += 8
	line(fmt.Sprintf("Entities: %d", s.stats.Count))
	line(fmt.Sprintf("Avg Literacy: %.1f%%", s.stats.Mean))
	line(fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()))
	if sel := s.world.Selected(); sel != nil {
		y += 8
		line("Selected: " + sel.Name)
		line(fmt.Sprintf("%.1f%% | %s | %s", sel.Rate, sel.Shape, sel.Pattern))
	}
}

// writeSnapshot reads back the frame and saves it as a timestamped PNG.
func (s *Scene) writeSnapshot(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 4*w*h)
	screen.ReadPixels(pix)

	img := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	name := fmt.Sprintf("geometric_art_%s.png", time.Now().Format("20060102_150405"))

	f, err := os.Create(name)
	if err != nil {
		log.Printf("snapshot failed: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Printf("snapshot encode failed: %v", err)
		return
	}
	log.Printf("snapshot saved: %s", name)
}
