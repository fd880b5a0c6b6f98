package rain

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sounds is the audio surface the scene triggers on clicks. A nil Sounds
// keeps the scene silent.
type Sounds interface {
	// PlayCloud plays the cloud sound at the given volume in [0,1].
	PlayCloud(volume float64)
	// PlayClick plays the short rain-click sound at the given volume.
	PlayClick(volume float64)
}

var (
	skyColor   = color.RGBA{R: 10, G: 14, B: 20, A: 255}
	cloudColor = color.RGBA{R: 220, G: 230, B: 240, A: 255}
)

// Scene adapts the rain world to ebiten's loop.
type Scene struct {
	world  *World
	sounds Sounds

	prevKey    map[ebiten.Key]bool
	lastUpdate time.Time
}

// NewScene wraps a rain world; sounds may be nil.
func NewScene(w *World, sounds Sounds) *Scene {
	return &Scene{
		world:   w,
		sounds:  sounds,
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
	if justPressed(ebiten.KeyP) && s.sounds != nil {
		// Debug key: full-volume cloud audio.
		s.sounds.PlayCloud(1.0)
	}

	now := time.Now()
	dt := 1.0 / 60.0
	if !s.lastUpdate.IsZero() {
		dt = now.Sub(s.lastUpdate).Seconds()
		if dt > 0.25 {
			dt = 0.25
		}
	}
	s.lastUpdate = now

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		res := s.world.Click(float64(mx), float64(my))
		if s.sounds != nil {
			if res.Cloud != nil {
				s.sounds.PlayCloud(res.Volume)
			} else if res.HitDrop {
				s.sounds.PlayClick(1.0)
			}
		}
	}

	s.world.Step(dt)
	return nil
}

func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	for _, c := range s.world.Clouds {
		drawCloud(screen, c)
	}
	for _, d := range s.world.Drops {
		drawDrop(screen, d)
	}
	for i := range s.world.Splashes {
		sp := &s.world.Splashes[i]
		vector.StrokeCircle(screen, float32(sp.X), float32(sp.Y), float32(sp.Radius()), 1,
			color.RGBA{R: 200, G: 230, B: 255, A: sp.Alpha()}, true)
	}
	for _, r := range s.world.Ripples {
		vector.StrokeCircle(screen, float32(r.X), float32(r.Y), float32(r.Radius), float32(r.Stroke()),
			color.RGBA{R: 180, G: 230, B: 255, A: r.Alpha()}, true)
		vector.DrawFilledCircle(screen, float32(r.X), float32(r.Y), float32(r.Radius*0.6),
			color.RGBA{R: 180, G: 230, B: 255, A: r.InnerAlpha()}, true)
	}

	s.drawHoverLabel(screen)
	s.drawHUD(screen)
}

func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.world.Params.Width, s.world.Params.Height
}

// drawCloud paints a puff of overlapping circles over a flat belly.
func drawCloud(screen *ebiten.Image, c *Cloud) {
	x, y, r := float32(c.X), float32(c.Y), float32(c.Radius)
	vector.DrawFilledRect(screen, x-r, y-r*0.15, r*2, r*0.65, cloudColor, true)
	vector.DrawFilledCircle(screen, x-r*0.4, y, r*0.7, cloudColor, true)
	vector.DrawFilledCircle(screen, x+r*0.2, y-r*0.3, r*0.6, cloudColor, true)
	vector.DrawFilledCircle(screen, x+r*0.6, y, r*0.5, cloudColor, true)
	if c.Selected {
		vector.StrokeCircle(screen, x, y, r, 2, color.RGBA{R: 180, G: 200, B: 230, A: 255}, true)
	}
}

// drawDrop paints the tail back-to-front with decaying alpha/size, then
// the head.
func drawDrop(screen *ebiten.Image, d *Raindrop) {
	n := len(d.Tail)
	for i, pos := range d.Tail {
		frac := 1 - float64(i)/float64(maxInt(1, n))
		alpha := uint8(float64(d.Alpha) * frac)
		size := float32(maxFloat(1, d.Size*frac))
		vector.DrawFilledCircle(screen, float32(pos[0]), float32(pos[1]), size,
			color.RGBA{R: 120, G: 180, B: 255, A: alpha}, true)
	}
	head := float32(maxFloat(1, d.Size))
	vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), head,
		color.RGBA{R: 100, G: 170, B: 255, A: d.Alpha}, true)
}

func (s *Scene) drawHoverLabel(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	c := s.world.HoverCloud(float64(mx), float64(my))
	if c == nil {
		return
	}
	text := fmt.Sprintf("%s: %.1f  size~%.1f", c.Name, c.Value, s.world.SampleDropSize(c.Value))
	w := float32(len(text)*6 + 8)
	x := float32(c.X) - w/2
	y := float32(c.Y + c.Radius + 8)
	vector.DrawFilledRect(screen, x, y, w, 20, color.RGBA{R: 20, G: 20, B: 30, A: 180}, true)
	ebitenutil.DebugPrintAt(screen, text, int(x)+4, int(y)+2)
}

func (s *Scene) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("%s | Drops: %d  Splashes: %d  Data rows: %d",
		s.world.Params.Column, len(s.world.Drops), len(s.world.Splashes), len(s.world.Records))
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	if s.world.InfoVisible() {
		if a := s.world.Active; a != nil {
			ebitenutil.DebugPrintAt(screen, s.world.InfoText,
				int(a.X)-len(s.world.InfoText)*3, int(a.Y+a.Radius)+6)
		} else {
			ebitenutil.DebugPrintAt(screen, s.world.InfoText, 8, 30)
		}
	}
}

func formatCloudInfo(name string, value float64) string {
	return fmt.Sprintf("%s: %.1f", name, value)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
