// Package effects holds the time-boxed visual animations: click pulses,
// splash particles, click ripples and the tooltip fade timer. Each effect
// advances by wall-clock delta time and reports whether it is still alive;
// its owning pool removes it the frame it expires.
package effects

import "math"

// Gravity is the constant downward acceleration for splash particles, in
// pixels per second squared.
const Gravity = 400.0

// ClickPulse scales a clicked entity up and back down: smoothstep ease-in
// to MaxScale over the first 40% of the duration, quadratic ease-out back
// to 1.0 over the remaining 60%. Frame counts in 60fps-reference frames.
type ClickPulse struct {
	Frame    float64
	Duration float64
	MaxScale float64
}

// Advance moves the pulse forward and reports whether it is still running.
func (p *ClickPulse) Advance(dt float64) bool {
	p.Frame += dt * 60
	return p.Frame < p.Duration
}

// Scale is the current scale multiplier, exactly 1.0 at the endpoints.
func (p *ClickPulse) Scale() float64 {
	if p.Duration <= 0 {
		return 1.0
	}
	progress := p.Frame / p.Duration
	if progress <= 0 {
		return 1.0
	}
	if progress >= 1 {
		return 1.0
	}
	if progress < 0.4 {
		t := progress / 0.4
		eased := t * t * (3 - 2*t)
		return 1.0 + (p.MaxScale-1.0)*eased
	}
	t := (progress - 0.4) / 0.6
	eased := 1 - (1-t)*(1-t)
	return p.MaxScale - (p.MaxScale-1.0)*eased
}

// PulsePool tracks live click pulses keyed by entity handle.
type PulsePool map[int]*ClickPulse

// Start begins (or restarts) a pulse for the given entity.
func (pp PulsePool) Start(id int, duration, maxScale float64) {
	pp[id] = &ClickPulse{Duration: duration, MaxScale: maxScale}
}

// Advance steps every pulse and drops the finished ones.
func (pp PulsePool) Advance(dt float64) {
	for id, p := range pp {
		if !p.Advance(dt) {
			delete(pp, id)
		}
	}
}

// Scale returns the pulse scale for an entity, 1.0 when no pulse is live.
func (pp PulsePool) Scale(id int) float64 {
	if p, ok := pp[id]; ok {
		return p.Scale()
	}
	return 1.0
}

// SplashParticle is one fleck of a splash burst. It flies from its spawn
// point under gravity and fades as its life runs out.
type SplashParticle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
}

// NewSplash spawns a particle at (x,y) with the given launch angle
// (radians), speed (px/s) and lifetime (seconds). Vertical speed is
// squashed to 0.6 so bursts read wider than tall.
func NewSplash(x, y, angle, speed, life float64) SplashParticle {
	return SplashParticle{
		X:       x,
		Y:       y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed * 0.6,
		Life:    life,
		MaxLife: life,
	}
}

// Advance integrates the particle and reports whether it is still alive.
func (s *SplashParticle) Advance(dt float64) bool {
	s.X += s.VX * dt
	s.Y += s.VY * dt
	s.VY += Gravity * dt
	s.Life -= dt
	return s.Life > 0
}

// LifeFrac is the remaining-life fraction in [0,1].
func (s *SplashParticle) LifeFrac() float64 {
	if s.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, s.Life/s.MaxLife))
}

// Alpha decays linearly with remaining life.
func (s *SplashParticle) Alpha() uint8 {
	return uint8(255 * s.LifeFrac())
}

// Radius grows from 2 to 10 px as the particle dies out.
func (s *SplashParticle) Radius() float64 {
	return 2 + (1-s.LifeFrac())*8
}

// SplashPool owns live splash particles.
type SplashPool []SplashParticle

// Add appends a particle to the pool.
func (sp *SplashPool) Add(p SplashParticle) {
	*sp = append(*sp, p)
}

// Advance steps every particle, compacting out the dead ones in place.
func (sp *SplashPool) Advance(dt float64) {
	live := (*sp)[:0]
	for i := range *sp {
		if (*sp)[i].Advance(dt) {
			live = append(live, (*sp)[i])
		}
	}
	*sp = live
}

// ClickRipple is an expanding ring spawned at a click point. The ring
// grows at constant radial speed and its life decays at 0.8x wall-clock
// for a snappier fade.
type ClickRipple struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Life      float64
	MaxLife   float64
	speed     float64
}

// NewRipple builds a ripple that reaches maxRadius roughly when its life
// ends.
func NewRipple(x, y, maxRadius, life float64) *ClickRipple {
	r := &ClickRipple{
		X:         x,
		Y:         y,
		Radius:    6,
		MaxRadius: maxRadius,
		Life:      life,
		MaxLife:   life,
	}
	r.speed = (maxRadius - r.Radius) / math.Max(0.0001, life)
	return r
}

// Advance expands and decays the ripple, reporting liveness.
func (r *ClickRipple) Advance(dt float64) bool {
	r.Radius += r.speed * dt
	r.Life -= dt * 0.8
	return r.Life > 0
}

// LifeFrac is the remaining-life fraction in [0,1].
func (r *ClickRipple) LifeFrac() float64 {
	if r.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, r.Life/r.MaxLife))
}

// Alpha eases the ring out slightly faster than linear.
func (r *ClickRipple) Alpha() uint8 {
	return uint8(220 * math.Pow(r.LifeFrac(), 1.2))
}

// Stroke is the ring's stroke width, easing from 6 px down to 1.
func (r *ClickRipple) Stroke() float64 {
	return math.Max(1, 6*math.Pow(r.LifeFrac(), 0.6))
}

// InnerAlpha is the alpha of the subtle inner fill, fading as life squared.
func (r *ClickRipple) InnerAlpha() uint8 {
	t := r.LifeFrac()
	return uint8(80 * t * t)
}

// RipplePool owns live click ripples.
type RipplePool []*ClickRipple

// Add appends a ripple to the pool.
func (rp *RipplePool) Add(r *ClickRipple) {
	*rp = append(*rp, r)
}

// Advance steps every ripple, compacting out the dead ones in place.
func (rp *RipplePool) Advance(dt float64) {
	live := (*rp)[:0]
	for _, r := range *rp {
		if r.Advance(dt) {
			live = append(live, r)
		}
	}
	*rp = live
}

// TooltipFade is a monotonic fade timer: full opacity until 70% of the
// lifetime elapses, then a linear fade to zero. Timer counts in
// 60fps-reference frames.
type TooltipFade struct {
	Timer   float64
	MaxTime float64
}

// Advance moves the timer and reports whether the tooltip is still
// visible.
func (t *TooltipFade) Advance(dt float64) bool {
	t.Timer += dt * 60
	return t.Timer < t.MaxTime
}

// Alpha is the current opacity factor in [0,1].
func (t *TooltipFade) Alpha() float64 {
	if t.MaxTime <= 0 {
		return 0
	}
	progress := math.Min(1, t.Timer/t.MaxTime)
	if progress <= 0.7 {
		return 1.0
	}
	return math.Max(0, 1.0-(progress-0.7)/0.3)
}
