package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/wan3s/literacy-art/internal/config"
	"github.com/wan3s/literacy-art/internal/data"
)

func testParams() Params {
	return ParamsFromConfig(config.New())
}

func newTestEntity(t *testing.T, rate float64, seed int64) *Entity {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	return NewEntity(0, data.Record{Name: "Test", Value: rate}, rng)
}

func TestVisualDerivation(t *testing.T) {
	cases := []struct {
		rate    float64
		shape   Shape
		pattern Pattern
	}{
		{rate: 20, shape: ShapeCircle, pattern: PatternSolid},
		{rate: 35, shape: ShapeCircle, pattern: PatternOutline},
		{rate: 45, shape: ShapeTriangle, pattern: PatternOutline},
		{rate: 60, shape: ShapeSquare, pattern: PatternDotted},
		{rate: 72, shape: ShapeSquare, pattern: PatternStriped},
		{rate: 80, shape: ShapePentagon, pattern: PatternStriped},
		{rate: 95, shape: ShapeHexagon, pattern: PatternGradient},
	}

	for _, tc := range cases {
		e := newTestEntity(t, tc.rate, 1)
		if e.Shape != tc.shape {
			t.Errorf("rate %.0f: shape = %v, want %v", tc.rate, e.Shape, tc.shape)
		}
		if e.Pattern != tc.pattern {
			t.Errorf("rate %.0f: pattern = %v, want %v", tc.rate, e.Pattern, tc.pattern)
		}
	}
}

func TestDerivedRangesScaleWithRate(t *testing.T) {
	low := newTestEntity(t, 20, 1)
	mid := newTestEntity(t, 60, 2)
	high := newTestEntity(t, 95, 3)

	for _, e := range []*Entity{low, mid, high} {
		if e.Size < 0.3 || e.Size > 1.0 {
			t.Errorf("rate %.0f: size %v outside [0.3, 1.0]", e.Rate, e.Size)
		}
		if e.Opacity < 0.6 || e.Opacity > 1.0 {
			t.Errorf("rate %.0f: opacity %v outside [0.6, 1.0]", e.Rate, e.Opacity)
		}
		if e.ScaleFactor < 0.8 || e.ScaleFactor > 1.2 {
			t.Errorf("rate %.0f: scale factor %v outside [0.8, 1.2]", e.Rate, e.ScaleFactor)
		}
	}
	if !(low.Size < mid.Size && mid.Size < high.Size) {
		t.Error("size should grow with rate")
	}
	if !(low.OscAmplitude > mid.OscAmplitude && mid.OscAmplitude > high.OscAmplitude) {
		t.Error("oscillation amplitude should shrink with rate")
	}
}

func TestHueRampForRegularShapes(t *testing.T) {
	// Circles, triangles and squares take their hue straight from the
	// rate ramp; pentagons and hexagons use dedicated warm bands.
	prev := -1.0
	for _, rate := range []float64{5, 20, 45, 60, 70} {
		e := newTestEntity(t, rate, 9)
		want := rate / 100 * 240
		if math.Abs(e.Hue-want) > 1e-9 {
			t.Errorf("rate %.0f: hue = %v, want %v", rate, e.Hue, want)
		}
		if e.Hue <= prev {
			t.Errorf("rate %.0f: hue ramp not increasing", rate)
		}
		prev = e.Hue
	}

	pent := newTestEntity(t, 80, 5)
	if pent.Hue < 0 || pent.Hue >= 60 {
		t.Errorf("pentagon hue %v outside [0, 60)", pent.Hue)
	}
	hex := newTestEntity(t, 95, 5)
	if hex.Hue < 60 || hex.Hue >= 120 {
		t.Errorf("hexagon hue %v outside [60, 120)", hex.Hue)
	}
}

func TestAdvanceKeepsEntityInBounds(t *testing.T) {
	p := testParams()
	for seed := int64(1); seed <= 5; seed++ {
		e := newTestEntity(t, 20, seed) // low rate moves fastest
		for frame := 0; frame < 3600; frame++ {
			e.Advance(1.0/60.0, float64(frame)/60.0, Pointer{}, p)
			if e.X < boundaryMargin-1e-9 || e.X > 1-boundaryMargin+1e-9 {
				t.Fatalf("seed %d frame %d: x = %v escaped bounds", seed, frame, e.X)
			}
			if e.Y < boundaryMargin-1e-9 || e.Y > 1-boundaryMargin+1e-9 {
				t.Fatalf("seed %d frame %d: y = %v escaped bounds", seed, frame, e.Y)
			}
		}
	}
}

func TestAdvanceRotationStaysNormalized(t *testing.T) {
	p := testParams()
	e := newTestEntity(t, 20, 3)
	e.AngularVel = -5 // force the negative wrap path
	for frame := 0; frame < 600; frame++ {
		e.Advance(1.0/60.0, float64(frame)/60.0, Pointer{}, p)
		if e.Rotation < 0 || e.Rotation >= 360 {
			t.Fatalf("frame %d: rotation %v outside [0, 360)", frame, e.Rotation)
		}
	}
}

func TestDampingBleedsVelocity(t *testing.T) {
	p := testParams()
	e := newTestEntity(t, 60, 4)
	e.X, e.Y = 0.5, 0.5
	e.VX, e.VY = 2.0, -1.5

	prev := math.Hypot(e.VX, e.VY)
	for frame := 0; frame < 120; frame++ {
		e.Advance(1.0/60.0, float64(frame)/60.0, Pointer{}, p)
		speed := math.Hypot(e.VX, e.VY)
		if speed > prev+1e-9 {
			t.Fatalf("frame %d: speed grew from %v to %v without mouse force", frame, prev, speed)
		}
		prev = speed
	}
}

func TestMouseForce(t *testing.T) {
	p := testParams()

	t.Run("unset pointer applies nothing", func(t *testing.T) {
		e := newTestEntity(t, 60, 5)
		e.X, e.Y = 0.5, 0.5
		e.Advance(1.0/60.0, 0, Pointer{X: 600, Y: 400, Set: false}, p)
		if e.MouseInfluenced || e.Influence != 0 {
			t.Error("unset pointer must not influence entities")
		}
	})

	t.Run("zero distance applies nothing", func(t *testing.T) {
		e := newTestEntity(t, 60, 5)
		e.X, e.Y = 0.5, 0.5
		e.VX, e.VY = 0, 0
		e.OscAmplitude = 0 // hold the entity exactly under the pointer
		mouse := Pointer{X: 0.5 * float64(p.Width), Y: 0.5 * float64(p.Height), Set: true}
		e.Advance(1.0/60.0, 0, mouse, p)
		if e.MouseInfluenced {
			t.Error("an entity exactly under the pointer must receive no force")
		}
	})

	t.Run("outside the radius applies nothing", func(t *testing.T) {
		e := newTestEntity(t, 60, 5)
		e.X, e.Y = 0.5, 0.5
		mouse := Pointer{X: 0.5*float64(p.Width) + p.MouseRadius + 1, Y: 0.5 * float64(p.Height), Set: true}
		e.Advance(1.0/60.0, 0, mouse, p)
		if e.MouseInfluenced {
			t.Error("entities beyond the radius must not be influenced")
		}
	})

	t.Run("inside the radius attracts toward the pointer", func(t *testing.T) {
		e := newTestEntity(t, 60, 5)
		e.X, e.Y = 0.5, 0.5
		e.VX, e.VY = 0, 0
		mouse := Pointer{X: 0.5*float64(p.Width) + 50, Y: 0.5 * float64(p.Height), Set: true}
		e.Advance(1.0/60.0, 0, mouse, p)
		if !e.MouseInfluenced {
			t.Fatal("entity 50px from the pointer should be influenced")
		}
		if e.Influence <= 0 || e.Influence > p.MouseStrength {
			t.Errorf("influence %v outside (0, %v]", e.Influence, p.MouseStrength)
		}
		if e.VX <= 0 {
			t.Errorf("velocity should point toward the pointer, got vx = %v", e.VX)
		}
	})

	t.Run("velocity stays clamped under sustained force", func(t *testing.T) {
		e := newTestEntity(t, 60, 5)
		for frame := 0; frame < 600; frame++ {
			// Keep the pointer just ahead of the entity.
			mouse := Pointer{
				X:   e.X*float64(p.Width) + 40,
				Y:   e.Y * float64(p.Height),
				Set: true,
			}
			e.Advance(1.0/60.0, float64(frame)/60.0, mouse, p)
			if speed := math.Hypot(e.VX, e.VY); speed > p.MaxVelocity+1e-9 {
				t.Fatalf("frame %d: speed %v exceeds clamp %v", frame, speed, p.MaxVelocity)
			}
		}
	})
}

func TestShapeSides(t *testing.T) {
	sides := map[Shape]int{
		ShapeCircle:   0,
		ShapeTriangle: 3,
		ShapeSquare:   4,
		ShapePentagon: 5,
		ShapeHexagon:  6,
	}
	for shape, want := range sides {
		if got := shape.Sides(); got != want {
			t.Errorf("%v.Sides() = %d, want %d", shape, got, want)
		}
	}
}
