package rain

import (
	"github.com/wan3s/literacy-art/internal/mapping"
)

// Mapping converts a data value into a drop's visual properties through
// the shared normalize/curve/lerp pipeline.
type Mapping struct {
	Bounds   mapping.Bounds
	Exponent float64

	SpeedMin, SpeedMax float64
	SizeMin, SizeMax   float64
	AlphaMin, AlphaMax float64
}

// Speed maps a value to fall speed in px/s.
func (m Mapping) Speed(value float64) float64 {
	scaled := mapping.Curve(mapping.Normalize(value, m.Bounds), m.Exponent)
	return mapping.Lerp(scaled, m.SpeedMin, m.SpeedMax)
}

// Size maps a value to drop radius in px.
func (m Mapping) Size(value float64) float64 {
	scaled := mapping.Curve(mapping.Normalize(value, m.Bounds), m.Exponent)
	return mapping.Lerp(scaled, m.SizeMin, m.SizeMax)
}

// Alpha maps a value to drop opacity.
func (m Mapping) Alpha(value float64) uint8 {
	scaled := mapping.Curve(mapping.Normalize(value, m.Bounds), m.Exponent)
	return uint8(mapping.Lerp(scaled, m.AlphaMin, m.AlphaMax))
}

// Raindrop is one falling particle carrying a data value. Its speed, size
// and opacity encode that value; a short tail of previous positions trails
// behind it.
type Raindrop struct {
	X, Y  float64
	Value float64

	VY    float64
	Size  float64
	Alpha uint8

	Tail    [][2]float64
	maxTail int
	Alive   bool
}

// NewRaindrop spawns a drop at (x,y) with visuals derived from value.
func NewRaindrop(x, y, value float64, m Mapping) *Raindrop {
	size := m.Size(value)
	maxTail := int(size)
	if maxTail < 4 {
		maxTail = 4
	}
	return &Raindrop{
		X:       x,
		Y:       y,
		Value:   value,
		VY:      m.Speed(value),
		Size:    size,
		Alpha:   m.Alpha(value),
		maxTail: maxTail,
		Alive:   true,
	}
}

// Advance falls the drop by dt seconds and records its tail. The drop dies
// just above the bottom edge so the splash reads at ground level.
func (d *Raindrop) Advance(dt, height float64) {
	d.Tail = append([][2]float64{{d.X, d.Y}}, d.Tail...)
	if len(d.Tail) > d.maxTail {
		d.Tail = d.Tail[:d.maxTail]
	}
	d.Y += d.VY * dt
	if d.Y > height-6 {
		d.Alive = false
	}
}
