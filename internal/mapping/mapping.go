// Package mapping turns raw data values into the visual parameters shared
// by both art pieces: normalized fractions, non-linear emphasis curves,
// linear range mapping, the clarity factor and the macaron color palette.
package mapping

import "math"

// Bounds is the min/max of the loaded data population, computed once and
// reused for every normalization.
type Bounds struct {
	Min float64
	Max float64
}

// Normalize maps value into [0,1] against b, clamped. A degenerate range
// (Min == Max) yields exactly 0.5.
func Normalize(value float64, b Bounds) float64 {
	if b.Min == b.Max {
		return 0.5
	}
	return Clamp01((value - b.Min) / (b.Max - b.Min))
}

// Curve raises a [0,1] fraction to exponent. Exponents above 1 compress
// low values so that high data values visually dominate.
func Curve(fraction, exponent float64) float64 {
	return Clamp01(math.Pow(Clamp01(fraction), exponent))
}

// Lerp maps a [0,1] fraction onto [outMin, outMax].
func Lerp(fraction, outMin, outMax float64) float64 {
	return outMin + fraction*(outMax-outMin)
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MaxBlurRadius is the blur radius in pixels at zero clarity. Renderers
// scale their fade/ghost treatment from it.
const MaxBlurRadius = 8.0

// Clarity maps a percentage-like rate (0-100) to a [0.3,1.0] sharpness
// factor. Low clarity drives a blur/alpha-reduction treatment at render
// time.
func Clarity(rate float64) float64 {
	return 0.3 + (rate/100)*0.7
}

// BlurRadius is the blur radius a given clarity scales to.
func BlurRadius(clarity float64) float64 {
	return (1 - clarity) * MaxBlurRadius
}

// Per-sextant saturation multipliers, one per 60 degree hue band. The
// yellow-green band additionally lifts lightness by 3%.
var satBoost = [6]float64{1.08, 1.06, 1.05, 1.07, 1.12, 1.10}

// MacaronColor builds the vivid pastel color for an entity from its hue
// and literacy rate. Saturation and lightness start from rate tiers, get a
// per-hue-band saturation boost and are clamped before conversion.
func MacaronColor(hue, rate float64) (uint8, uint8, uint8) {
	var s, l float64
	switch {
	case rate >= 90:
		s, l = 0.95, 0.72
	case rate >= 70:
		s, l = 0.92, 0.68
	case rate >= 50:
		s, l = 0.88, 0.63
	default:
		s, l = 0.85, 0.58
	}

	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	band := int(h/60) % 6
	s *= satBoost[band]
	if band == 1 {
		l *= 1.03
	}

	s = math.Max(0.6, math.Min(1.0, s))
	l = math.Max(0.45, math.Min(0.85, l))

	return hslToRGB(h, s, l)
}

// hslToRGB converts HSL to RGB (hue 0-360, saturation/lightness 0-1).
// Lightness is reduced by 40% and capped at 0.7 so shapes stay visible
// against the light background.
func hslToRGB(hue, saturation, lightness float64) (uint8, uint8, uint8) {
	h := math.Mod(hue, 360) / 360
	s := Clamp01(saturation)
	l := math.Min(Clamp01(lightness)*0.6, 0.7)

	if s == 0 {
		v := uint8(l * 255)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+1.0/3)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-1.0/3)
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
