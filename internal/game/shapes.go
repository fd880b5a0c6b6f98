package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// shapeSpec is everything renderShape needs to rasterize one entity state
// into an offscreen image.
type shapeSpec struct {
	Shape    Shape
	Pattern  Pattern
	SizePx   float64
	Rotation float64 // degrees, already bucketed by the cache key
	Color    color.RGBA
	Clarity  float64
}

// renderShape rasterizes the spec centered in a fresh offscreen image.
// Opacity is not baked in; the caller applies it at blit time so the cache
// key can stay opacity-free.
func renderShape(s shapeSpec) *ebiten.Image {
	side := int(s.SizePx*3) + 20
	img := ebiten.NewImage(side, side)
	c := float32(side) / 2

	if s.Shape.Sides() == 0 {
		drawCirclePattern(img, c, c, float32(s.SizePx), s)
	} else {
		drawPolygonPattern(img, c, c, s)
	}
	return img
}

// lighten blends the color toward white by f in [0,1].
func lighten(clr color.RGBA, f float64) color.RGBA {
	blend := func(c uint8) uint8 {
		return uint8(float64(c) + (255-float64(c))*f)
	}
	return color.RGBA{R: blend(clr.R), G: blend(clr.G), B: blend(clr.B), A: clr.A}
}

func drawCirclePattern(dst *ebiten.Image, cx, cy, r float32, s shapeSpec) {
	switch s.Pattern {
	case PatternOutline:
		width := float32(math.Max(3, 6*s.Clarity))
		vector.StrokeCircle(dst, cx, cy, r, width, s.Color, true)
	case PatternDotted:
		dotCount := int(math.Max(6, 12*s.Clarity))
		dotR := float32(math.Max(1, 3*s.Clarity))
		for i := 0; i < dotCount; i++ {
			a := float64(i) / float64(dotCount) * 2 * math.Pi
			dx := cx + float32(math.Cos(a))*r*0.7
			dy := cy + float32(math.Sin(a))*r*0.7
			vector.DrawFilledCircle(dst, dx, dy, dotR, s.Color, true)
		}
	case PatternStriped:
		vector.DrawFilledCircle(dst, cx, cy, r, s.Color, true)
		stripe := lighten(s.Color, 0.35)
		// Horizontal chords across the disc.
		for dy := -r + 4; dy < r; dy += 7 {
			half := float32(math.Sqrt(math.Max(0, float64(r*r-dy*dy))))
			vector.StrokeLine(dst, cx-half, cy+dy, cx+half, cy+dy, 2, stripe, true)
		}
	case PatternGradient:
		// Concentric fills lightening toward the center.
		const rings = 5
		for i := 0; i < rings; i++ {
			f := float64(i) / float64(rings-1)
			vector.DrawFilledCircle(dst, cx, cy, r*float32(1-f*0.8), lighten(s.Color, f*0.5), true)
		}
	default:
		vector.DrawFilledCircle(dst, cx, cy, r, s.Color, true)
	}
}

// polygonPath traces a regular polygon of the given circumradius.
func polygonPath(cx, cy float32, radius float64, sides int, rotDeg float64) vector.Path {
	rot := rotDeg * math.Pi / 180
	step := 2 * math.Pi / float64(sides)

	var p vector.Path
	for i := 0; i < sides; i++ {
		a := float64(i)*step + rot
		x := cx + float32(math.Cos(a)*radius)
		y := cy + float32(math.Sin(a)*radius)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

func drawPolygonPattern(dst *ebiten.Image, cx, cy float32, s shapeSpec) {
	sides := s.Shape.Sides()

	switch s.Pattern {
	case PatternOutline:
		p := polygonPath(cx, cy, s.SizePx, sides, s.Rotation)
		width := float32(math.Max(3, 6*s.Clarity))
		strokePath(dst, &p, width, s.Color)
	case PatternStriped:
		p := polygonPath(cx, cy, s.SizePx, sides, s.Rotation)
		fillPath(dst, &p, s.Color)
		stripe := lighten(s.Color, 0.35)
		// Inner outlines read as stripes following the shape.
		for _, f := range []float64{0.75, 0.5, 0.25} {
			inner := polygonPath(cx, cy, s.SizePx*f, sides, s.Rotation)
			strokePath(dst, &inner, 2, stripe)
		}
	case PatternGradient:
		const rings = 5
		for i := 0; i < rings; i++ {
			f := float64(i) / float64(rings-1)
			p := polygonPath(cx, cy, s.SizePx*(1-f*0.8), sides, s.Rotation)
			fillPath(dst, &p, lighten(s.Color, f*0.5))
		}
	default:
		p := polygonPath(cx, cy, s.SizePx, sides, s.Rotation)
		fillPath(dst, &p, s.Color)
	}
}

func fillPath(dst *ebiten.Image, p *vector.Path, clr color.RGBA) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, clr)
}

func strokePath(dst *ebiten.Image, p *vector.Path, width float32, clr color.RGBA) {
	op := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(dst, vs, is, clr)
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
