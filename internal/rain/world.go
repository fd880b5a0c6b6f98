package rain

import (
	"math"
	"math/rand"

	"github.com/wan3s/literacy-art/internal/config"
	"github.com/wan3s/literacy-art/internal/data"
	"github.com/wan3s/literacy-art/internal/effects"
	"github.com/wan3s/literacy-art/internal/mapping"
)

// Params are the rain-scene tunables.
type Params struct {
	Width  int
	Height int

	Column  string
	Mapping Mapping

	SpawnIntervalMax float64
	SpawnIntervalMin float64
	MaxDrops         int

	VolumeMin float64
	VolumeMax float64
}

// ParamsFromConfig extracts the rain tunables for the given data bounds.
func ParamsFromConfig(cfg *config.Config, bounds mapping.Bounds) Params {
	return Params{
		Width:  cfg.RainWidth,
		Height: cfg.RainHeight,
		Column: cfg.DataColumn,
		Mapping: Mapping{
			Bounds:   bounds,
			Exponent: cfg.MappingExponent,
			SpeedMin: cfg.DropSpeedMin, SpeedMax: cfg.DropSpeedMax,
			SizeMin: cfg.DropSizeMin, SizeMax: cfg.DropSizeMax,
			AlphaMin: cfg.DropAlphaMin, AlphaMax: cfg.DropAlphaMax,
		},
		SpawnIntervalMax: cfg.SpawnIntervalMax,
		SpawnIntervalMin: cfg.SpawnIntervalMin,
		MaxDrops:         cfg.MaxDrops,
		VolumeMin:        cfg.VolumeMin,
		VolumeMax:        cfg.VolumeMax,
	}
}

// World owns all mutable rain-scene state and steps without a window.
type World struct {
	Params  Params
	Records []data.Record

	Clouds   []*Cloud
	Drops    []*Raindrop
	Splashes effects.SplashPool
	Ripples  effects.RipplePool

	Active *Cloud

	// Accumulated wall-clock seconds, used for the info line timeout.
	Time float64

	// InfoText is the last clicked cloud's label, visible until InfoUntil.
	InfoText  string
	InfoUntil float64

	spawnInterval float64
	spawnAccum    float64

	rng *rand.Rand
}

// NewWorld builds the rain world: five quantile-spread clouds and sparse
// minimum-value rain until one is selected.
func NewWorld(records []data.Record, p Params, rng *rand.Rand) *World {
	return &World{
		Params:        p,
		Records:       records,
		Clouds:        placeClouds(pickCloudRecords(records), float64(p.Width)),
		spawnInterval: p.SpawnIntervalMax,
		rng:           rng,
	}
}

// SpawnInterval is the current seconds-per-drop interval.
func (w *World) SpawnInterval() float64 {
	return w.spawnInterval
}

// Step advances the world by dt seconds: spawns new drops from the spawn
// accumulator, falls the live ones (bursting them into splashes on
// landing) and ages the effect pools.
func (w *World) Step(dt float64) {
	w.Time += dt

	w.spawnAccum += dt
	for w.spawnAccum >= w.spawnInterval && len(w.Drops) < w.Params.MaxDrops {
		w.spawnAccum -= w.spawnInterval
		w.spawnDrop()
	}

	live := w.Drops[:0]
	for _, d := range w.Drops {
		d.Advance(dt, float64(w.Params.Height))
		if d.Alive {
			live = append(live, d)
			continue
		}
		w.landingSplash(d)
	}
	w.Drops = live

	w.Splashes.Advance(dt)
	w.Ripples.Advance(dt)
}

// spawnDrop emits one drop. With an active cloud, drops fall from the
// cloud's extent carrying its value; otherwise light minimum-value rain
// falls across the whole width.
func (w *World) spawnDrop() {
	width := float64(w.Params.Width)
	var x, value float64
	if w.Active != nil {
		value = w.Active.Value
		lo := math.Max(10, w.Active.X-w.Active.Radius)
		hi := math.Min(width-10, w.Active.X+w.Active.Radius)
		x = lo + w.rng.Float64()*(hi-lo)
	} else {
		value = w.Params.Mapping.Bounds.Min
		x = 20 + w.rng.Float64()*(width-40)
	}
	y := -60 + w.rng.Float64()*50
	w.Drops = append(w.Drops, NewRaindrop(x, y, value, w.Params.Mapping))
}

// landingSplash bursts a landed drop into upward-flying particles sized by
// the drop.
func (w *World) landingSplash(d *Raindrop) {
	count := 6 + int(d.Size/2)
	ground := float64(w.Params.Height) - 6
	for i := 0; i < count; i++ {
		angle := -math.Pi + w.rng.Float64()*math.Pi
		speed := (60 + w.rng.Float64()*160) * (d.Size / 6)
		life := 0.3 + w.rng.Float64()*0.5
		w.Splashes.Add(effects.NewSplash(d.X, ground, angle, speed, life))
	}
}

// ClickResult describes what a click hit and the audio it should trigger.
type ClickResult struct {
	Cloud   *Cloud
	Volume  float64
	HitDrop bool
}

// Click resolves a press at (x,y). Hitting a cloud selects it exclusively
// and maps its value onto the spawn interval and audio volume; a miss
// deselects everything, restores sparse rain and splashes any drop under
// the cursor. Every click leaves a ripple.
func (w *World) Click(x, y float64) ClickResult {
	var res ClickResult

	var clicked *Cloud
	for _, c := range w.Clouds {
		if c.Contains(x, y) {
			clicked = c
			break
		}
	}

	if clicked != nil {
		for _, c := range w.Clouds {
			c.Selected = c == clicked
		}
		w.Active = clicked

		scaled := mapping.Curve(mapping.Normalize(clicked.Value, w.Params.Mapping.Bounds), w.Params.Mapping.Exponent)
		w.spawnInterval = w.Params.SpawnIntervalMax - scaled*(w.Params.SpawnIntervalMax-w.Params.SpawnIntervalMin)

		res.Cloud = clicked
		res.Volume = mapping.Clamp01(mapping.Lerp(scaled, w.Params.VolumeMin, w.Params.VolumeMax))

		w.InfoText = formatCloudInfo(clicked.Name, clicked.Value)
		w.InfoUntil = w.Time + 2.5
	} else {
		w.Active = nil
		for _, c := range w.Clouds {
			c.Selected = false
		}
		w.InfoText = ""
		w.spawnInterval = w.Params.SpawnIntervalMax

		for _, d := range w.Drops {
			dx, dy := x-d.X, y-d.Y
			if dx*dx+dy*dy <= (d.Size*2)*(d.Size*2) {
				res.HitDrop = true
				for i := 0; i < 8; i++ {
					angle := w.rng.Float64() * 2 * math.Pi
					speed := 80 + w.rng.Float64()*140
					life := 0.2 + w.rng.Float64()*0.4
					w.Splashes.Add(effects.NewSplash(d.X, d.Y, angle, speed, life))
				}
				break
			}
		}
	}

	w.Ripples.Add(effects.NewRipple(x, y, 140, 0.7))
	return res
}

// HoverCloud returns the cloud under the pointer, but only while no cloud
// is active (hover labels are suppressed once one is selected).
func (w *World) HoverCloud(x, y float64) *Cloud {
	if w.Active != nil {
		return nil
	}
	for _, c := range w.Clouds {
		if c.Contains(x, y) {
			return c
		}
	}
	return nil
}

// SampleDropSize is the drop radius a value would map to, shown in hover
// labels.
func (w *World) SampleDropSize(value float64) float64 {
	return w.Params.Mapping.Size(value)
}

// InfoVisible reports whether the clicked-cloud info line is still shown.
func (w *World) InfoVisible() bool {
	return w.InfoText != "" && w.Time < w.InfoUntil
}
