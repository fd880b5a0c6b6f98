package mapping

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given a data range", t, func() {
		b := Bounds{Min: 20, Max: 100}

		Convey("values map linearly into [0,1]", func() {
			So(Normalize(20, b), ShouldEqual, 0)
			So(Normalize(100, b), ShouldEqual, 1)
			So(Normalize(60, b), ShouldAlmostEqual, 0.5)
		})

		Convey("out-of-range values clamp", func() {
			So(Normalize(-5, b), ShouldEqual, 0)
			So(Normalize(500, b), ShouldEqual, 1)
		})
	})

	Convey("Given a degenerate range", t, func() {
		b := Bounds{Min: 42, Max: 42}

		Convey("every value normalizes to the midpoint", func() {
			So(Normalize(42, b), ShouldEqual, 0.5)
			So(Normalize(0, b), ShouldEqual, 0.5)
			So(Normalize(1000, b), ShouldEqual, 0.5)
		})
	})
}

func TestCurve(t *testing.T) {
	Convey("Curve preserves the endpoints", t, func() {
		So(Curve(0, 2.2), ShouldEqual, 0)
		So(Curve(1, 2.2), ShouldEqual, 1)
	})

	Convey("Curve with exponent above 1 compresses low values", t, func() {
		So(Curve(0.5, 2.2), ShouldBeLessThan, 0.5)
		So(Curve(0.9, 2.2), ShouldBeLessThan, 0.9)
	})

	Convey("Curve stays monotonic across the unit interval", t, func() {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := Curve(float64(i)/100, 2.2)
			So(v, ShouldBeGreaterThanOrEqualTo, prev)
			prev = v
		}
	})

	Convey("Curve clamps its input", t, func() {
		So(Curve(-1, 2.2), ShouldEqual, 0)
		So(Curve(2, 2.2), ShouldEqual, 1)
	})
}

func TestLerp(t *testing.T) {
	Convey("Lerp maps the unit interval onto an output range", t, func() {
		So(Lerp(0, 150, 900), ShouldEqual, 150)
		So(Lerp(1, 150, 900), ShouldEqual, 900)
		So(Lerp(0.5, 150, 900), ShouldAlmostEqual, 525)
	})

	Convey("Lerp works on reversed ranges", t, func() {
		So(Lerp(0.25, 100, 0), ShouldAlmostEqual, 75)
	})
}

func TestClarity(t *testing.T) {
	Convey("Clarity spans [0.3, 1.0] over rates 0..100", t, func() {
		So(Clarity(0), ShouldAlmostEqual, 0.3)
		So(Clarity(100), ShouldAlmostEqual, 1.0)
		So(Clarity(50), ShouldAlmostEqual, 0.65)
	})

	Convey("Blur radius shrinks to zero at full clarity", t, func() {
		So(BlurRadius(1.0), ShouldAlmostEqual, 0)
		So(BlurRadius(0.3), ShouldAlmostEqual, 0.7*MaxBlurRadius)
	})

	Convey("Clarity ordering follows rate ordering", t, func() {
		So(Clarity(95), ShouldBeGreaterThan, Clarity(60))
		So(Clarity(60), ShouldBeGreaterThan, Clarity(20))
	})
}

func TestMacaronColor(t *testing.T) {
	Convey("MacaronColor always yields a displayable color", t, func() {
		for hue := 0.0; hue < 360; hue += 15 {
			for _, rate := range []float64{0, 20, 49.9, 50, 69.9, 70, 89.9, 90, 100} {
				r, g, b := MacaronColor(hue, rate)
				// Lightness is capped at 0.7 after the 40% cut, so no
				// channel ever saturates to pure white.
				So(int(r)+int(g)+int(b), ShouldBeLessThan, 3*255)
			}
		}
	})

	Convey("the same hue and rate is deterministic", t, func() {
		r1, g1, b1 := MacaronColor(137, 83)
		r2, g2, b2 := MacaronColor(137, 83)
		So(r1, ShouldEqual, r2)
		So(g1, ShouldEqual, g2)
		So(b1, ShouldEqual, b2)
	})

	Convey("negative hues wrap", t, func() {
		r1, g1, b1 := MacaronColor(-60, 75)
		r2, g2, b2 := MacaronColor(300, 75)
		So(r1, ShouldEqual, r2)
		So(g1, ShouldEqual, g2)
		So(b1, ShouldEqual, b2)
	})

	Convey("higher-rate tiers do not darken the color", t, func() {
		// Same hue band, so only the tier values differ.
		_, g20, _ := MacaronColor(120, 20)
		_, g95, _ := MacaronColor(120, 95)
		So(g95, ShouldBeGreaterThanOrEqualTo, g20)
	})
}
