package game

import (
	"math"
	"math/rand"

	"github.com/wan3s/literacy-art/internal/data"
)

// Shape is the closed set of geometric forms an entity can take.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeTriangle
	ShapeSquare
	ShapePentagon
	ShapeHexagon
)

// Sides is the polygon side count; 0 means a circle.
func (s Shape) Sides() int {
	switch s {
	case ShapeTriangle:
		return 3
	case ShapeSquare:
		return 4
	case ShapePentagon:
		return 5
	case ShapeHexagon:
		return 6
	default:
		return 0
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "Circle"
	case ShapeTriangle:
		return "Triangle"
	case ShapeSquare:
		return "Square"
	case ShapePentagon:
		return "Pentagon"
	case ShapeHexagon:
		return "Hexagon"
	default:
		return "Unknown"
	}
}

// Pattern is the closed set of fill treatments.
type Pattern int

const (
	PatternSolid Pattern = iota
	PatternOutline
	PatternDotted
	PatternGradient
	PatternStriped
)

func (p Pattern) String() string {
	switch p {
	case PatternSolid:
		return "Solid"
	case PatternOutline:
		return "Outline"
	case PatternDotted:
		return "Dotted"
	case PatternGradient:
		return "Gradient"
	case PatternStriped:
		return "Striped"
	default:
		return "Unknown"
	}
}

const (
	// boundaryMargin keeps entities inside [margin, 1-margin] of the canvas.
	boundaryMargin = 0.02
	// bounceDamping scales the reflected velocity component.
	bounceDamping = 0.8
	// velocityDamping is applied once per 60fps-reference frame.
	velocityDamping = 0.999
	// driftFactor converts velocity units into normalized canvas units/sec.
	driftFactor = 0.09
	// oscillationFactor scales the oscillation offsets per reference frame.
	oscillationFactor = 0.001
	// forceFactor scales the mouse attraction per reference frame.
	forceFactor = 0.15
)

// Entity is one animated visual unit bound to a single data record.
// Identity and the derived visual descriptors are immutable after
// creation; position, velocity, rotation and the interaction fields mutate
// every frame.
type Entity struct {
	ID   int
	Name string
	Rate float64

	Shape       Shape
	Pattern     Pattern
	Hue         float64
	Size        float64
	Opacity     float64
	ScaleFactor float64

	X, Y       float64
	VX, VY     float64
	Rotation   float64
	AngularVel float64

	OscAmplitude float64
	OscFrequency float64
	OscPhase     float64

	MouseInfluenced bool
	Influence       float64
	Selected        bool
}

func shapeForRate(rate float64) Shape {
	switch {
	case rate >= 90:
		return ShapeHexagon
	case rate >= 75:
		return ShapePentagon
	case rate >= 60:
		return ShapeSquare
	case rate >= 40:
		return ShapeTriangle
	default:
		return ShapeCircle
	}
}

func patternForRate(rate float64) Pattern {
	switch {
	case rate >= 85:
		return PatternGradient
	case rate >= 70:
		return PatternStriped
	case rate >= 50:
		return PatternDotted
	case rate >= 30:
		return PatternOutline
	default:
		return PatternSolid
	}
}

// hueForRate maps a rate onto the red-to-blue 0-240 degree ramp. Pentagons
// and hexagons get dedicated warm bands instead so the busiest shapes read
// distinctly.
func hueForRate(rate float64, shape Shape, rng *rand.Rand) float64 {
	switch shape {
	case ShapePentagon:
		return rng.Float64() * 60
	case ShapeHexagon:
		return 60 + rng.Float64()*60
	default:
		return rate / 100 * 240
	}
}

// NewEntity derives the immutable visual descriptors and initial motion
// state for one record. Lower literacy rates move faster and wobble more.
func NewEntity(id int, rec data.Record, rng *rand.Rand) *Entity {
	rate := rec.Value
	shape := shapeForRate(rate)

	baseSpeed := (100-rate)/100*2 + 0.5
	angularRange := 3.0
	if rate >= 80 {
		angularRange = 1.0
	}

	return &Entity{
		ID:   id,
		Name: rec.Name,
		Rate: rate,

		Shape:       shape,
		Pattern:     patternForRate(rate),
		Hue:         hueForRate(rate, shape, rng),
		Size:        0.3 + rate/100*0.7,
		Opacity:     0.6 + rate/100*0.4,
		ScaleFactor: 0.8 + rate/100*0.4,

		X:          rng.Float64(),
		Y:          rng.Float64(),
		VX:         (rng.Float64()*2 - 1) * baseSpeed,
		VY:         (rng.Float64()*2 - 1) * baseSpeed,
		Rotation:   rng.Float64() * 360,
		AngularVel: (rng.Float64()*2 - 1) * angularRange,

		OscAmplitude: (100 - rate) / 100 * 0.1,
		OscFrequency: 0.5 + rate/100*1.5,
		OscPhase:     rng.Float64() * 2 * math.Pi,
	}
}

// Pointer is the current mouse state in pixels. Set is false while the
// pointer is at the unset sentinel (origin or negative, before the first
// move).
type Pointer struct {
	X, Y float64
	Set  bool
}

// Advance runs one simulation step for the entity: drift, oscillation,
// mouse attraction, damping, boundary reflection and rotation. globalTime
// is the accumulated unpaused time in seconds. All per-frame amounts are
// expressed per reference 60fps frame and scaled by dt*60 so behavior is
// frame-rate independent.
func (e *Entity) Advance(dt, globalTime float64, mouse Pointer, p Params) {
	e.X += e.VX * driftFactor * dt
	e.Y += e.VY * driftFactor * dt

	oscX := e.OscAmplitude * math.Sin(globalTime*e.OscFrequency+e.OscPhase)
	oscY := e.OscAmplitude * math.Cos(globalTime*e.OscFrequency*1.3+e.OscPhase)
	oscScale := oscillationFactor * dt * 60
	e.X += oscX * oscScale
	e.Y += oscY * oscScale

	e.applyMouseForce(dt, mouse, p)

	damping := math.Pow(velocityDamping, dt*60)
	e.VX *= damping
	e.VY *= damping

	if e.X < boundaryMargin || e.X > 1-boundaryMargin {
		e.VX *= -bounceDamping
		e.X = math.Max(boundaryMargin, math.Min(1-boundaryMargin, e.X))
	}
	if e.Y < boundaryMargin || e.Y > 1-boundaryMargin {
		e.VY *= -bounceDamping
		e.Y = math.Max(boundaryMargin, math.Min(1-boundaryMargin, e.Y))
	}

	e.Rotation = math.Mod(e.Rotation+e.AngularVel*dt*60, 360)
	if e.Rotation < 0 {
		e.Rotation += 360
	}
}

// applyMouseForce attracts the entity toward the pointer with a smooth
// falloff. Entities exactly under the pointer (distance 0) receive no
// force. The resulting influence strength is kept only for this frame's
// rendering boosts.
func (e *Entity) applyMouseForce(dt float64, mouse Pointer, p Params) {
	e.MouseInfluenced = false
	e.Influence = 0
	if !mouse.Set {
		return
	}

	dx := mouse.X - e.X*float64(p.Width)
	dy := mouse.Y - e.Y*float64(p.Height)
	distSq := dx*dx + dy*dy
	if distSq <= 0 || distSq >= p.MouseRadius*p.MouseRadius {
		return
	}
	dist := math.Sqrt(distSq)

	normalized := dist / p.MouseRadius
	influence := math.Pow(1-normalized, 1.5) * p.MouseStrength

	scale := forceFactor * dt * 60
	e.VX += dx / dist * influence * scale
	e.VY += dy / dist * influence * scale

	speed := math.Hypot(e.VX, e.VY)
	if speed > p.MaxVelocity {
		k := p.MaxVelocity / speed
		e.VX *= k
		e.VY *= k
	}

	e.MouseInfluenced = true
	e.Influence = influence
}
