package game

import (
	"math"
	"math/rand"

	"github.com/wan3s/literacy-art/internal/config"
	"github.com/wan3s/literacy-art/internal/data"
	"github.com/wan3s/literacy-art/internal/effects"
)

// Params are the simulation tunables the world needs every frame.
type Params struct {
	Width  int
	Height int

	MouseRadius   float64
	MouseStrength float64
	MaxVelocity   float64

	ClickScale          float64
	ClickDurationFrames float64

	EntitySizePx float64

	TooltipWidth      float64
	TooltipHeight     float64
	TooltipGap        float64
	TooltipMargin     float64
	TooltipFadeFrames float64
}

// ParamsFromConfig extracts the geometric-art tunables.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Width:               cfg.GeoWidth,
		Height:              cfg.GeoHeight,
		MouseRadius:         cfg.MouseRadius,
		MouseStrength:       cfg.MouseStrength,
		MaxVelocity:         cfg.MaxVelocity,
		ClickScale:          cfg.ClickScale,
		ClickDurationFrames: cfg.ClickDurationFrames,
		EntitySizePx:        cfg.EntitySizePx,
		TooltipWidth:        cfg.TooltipWidth,
		TooltipHeight:       cfg.TooltipHeight,
		TooltipGap:          cfg.TooltipGap,
		TooltipMargin:       cfg.TooltipMargin,
		TooltipFadeFrames:   cfg.TooltipFadeFrames,
	}
}

// Tooltip is the data dialog anchored to the last clicked entity. Its
// placement is chosen once at click time; only the fade timer advances.
type Tooltip struct {
	EntityID  int
	Placement Placement
	Fade      effects.TooltipFade
}

// World owns all mutable simulation state of the geometric-art piece so a
// frame can be stepped and asserted on without a window.
type World struct {
	Params   Params
	Entities []*Entity

	Pulses  effects.PulsePool
	Tooltip *Tooltip

	Mouse  Pointer
	Paused bool

	// Accumulated unpaused time in seconds, drives oscillation.
	Time float64

	PulsePhase     float64
	GlobalScale    float64
	GlobalRotation float64

	SelectedID int
}

// NewWorld builds one entity per record with a stable integer handle.
func NewWorld(records []data.Record, p Params, rng *rand.Rand) *World {
	w := &World{
		Params:      p,
		Pulses:      make(effects.PulsePool),
		GlobalScale: 1.0,
		SelectedID:  -1,
	}
	for i, rec := range records {
		w.Entities = append(w.Entities, NewEntity(i, rec, rng))
	}
	return w
}

// Step advances the world by dt seconds of wall-clock time. When paused,
// entity motion and the pulse animations freeze but the tooltip fade keeps
// running.
func (w *World) Step(dt float64) {
	if !w.Paused {
		w.Time += dt

		w.PulsePhase += 0.01 * dt * 60
		w.GlobalScale = 1.0 + 0.1*math.Sin(w.PulsePhase)
		w.GlobalRotation = math.Mod(w.GlobalRotation+0.2*dt*60, 360)

		for _, e := range w.Entities {
			e.Advance(dt, w.Time, w.Mouse, w.Params)
		}
		w.Pulses.Advance(dt)
	}

	if w.Tooltip != nil && !w.Tooltip.Fade.Advance(dt) {
		w.Tooltip = nil
	}
}

// DynamicSize is the entity's current on-screen radius in pixels,
// excluding the click pulse (hit testing ignores the pulse so a pulsing
// entity doesn't grow its own hit box).
func (w *World) DynamicSize(e *Entity) float64 {
	return e.Size * w.Params.EntitySizePx * w.GlobalScale * e.ScaleFactor
}

// HitTest returns the first entity (population order) whose current radius
// contains the point, or nil. Overlap misselection in insertion order is a
// known, accepted simplification at the target densities.
func (w *World) HitTest(x, y float64) *Entity {
	for _, e := range w.Entities {
		ex := e.X * float64(w.Params.Width)
		ey := e.Y * float64(w.Params.Height)
		r := w.DynamicSize(e)
		dx, dy := x-ex, y-ey
		if math.Sqrt(dx*dx+dy*dy) <= r {
			return e
		}
	}
	return nil
}

// Click resolves a press at (x,y) in pixels. A hit starts a click pulse,
// selects the entity exclusively and places a fresh tooltip (replacing any
// visible one). A miss clears selection and hides the tooltip. Returns the
// hit entity, if any.
func (w *World) Click(x, y float64) *Entity {
	e := w.HitTest(x, y)
	if e == nil {
		w.clearSelection()
		w.Tooltip = nil
		return nil
	}

	w.Pulses.Start(e.ID, w.Params.ClickDurationFrames, w.Params.ClickScale)

	w.clearSelection()
	e.Selected = true
	w.SelectedID = e.ID

	anchorX := e.X * float64(w.Params.Width)
	anchorY := e.Y * float64(w.Params.Height)
	w.Tooltip = &Tooltip{
		EntityID:  e.ID,
		Placement: w.placeTooltip(e, anchorX, anchorY),
		Fade:      effects.TooltipFade{MaxTime: w.Params.TooltipFadeFrames},
	}
	return e
}

func (w *World) clearSelection() {
	for _, e := range w.Entities {
		e.Selected = false
	}
	w.SelectedID = -1
}

// Selected returns the currently selected entity, or nil.
func (w *World) Selected() *Entity {
	if w.SelectedID < 0 {
		return nil
	}
	for _, e := range w.Entities {
		if e.ID == w.SelectedID {
			return e
		}
	}
	return nil
}

// KineticEnergy sums vx^2+vy^2 over the population.
func (w *World) KineticEnergy() float64 {
	total := 0.0
	for _, e := range w.Entities {
		total += e.VX*e.VX + e.VY*e.VY
	}
	return total
}
