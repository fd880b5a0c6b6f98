package game

import "math"

// Side is where the tooltip sits relative to its anchor entity.
type Side int

const (
	SideRight Side = iota
	SideLeft
	SideBelow
	SideAbove
)

// Placement is a resolved tooltip position (top-left corner of the box).
type Placement struct {
	X, Y float64
	Side Side
}

type rect struct {
	x, y, w, h float64
}

func (r rect) overlaps(o rect) bool {
	return r.x < o.x+o.w && r.x+r.w > o.x && r.y < o.y+o.h && r.y+r.h > o.y
}

// placeTooltip builds the four candidate placements around the anchor and
// picks the least-cluttered one. Other entities act as obstacles through
// their circumscribed squares.
func (w *World) placeTooltip(anchor *Entity, anchorX, anchorY float64) Placement {
	size := w.DynamicSize(anchor)
	tw, th := w.Params.TooltipWidth, w.Params.TooltipHeight
	gap := w.Params.TooltipGap

	candidates := []Placement{
		{X: anchorX + size + gap, Y: anchorY - th/2, Side: SideRight},
		{X: anchorX - tw - size - gap, Y: anchorY - th/2, Side: SideLeft},
		{X: anchorX - tw/2, Y: anchorY + size + gap, Side: SideBelow},
		{X: anchorX - tw/2, Y: anchorY - th - size - gap, Side: SideAbove},
	}

	obstacles := make([]rect, 0, len(w.Entities))
	for _, other := range w.Entities {
		if other == anchor {
			continue
		}
		r := w.DynamicSize(other)
		obstacles = append(obstacles, rect{
			x: other.X*float64(w.Params.Width) - r,
			y: other.Y*float64(w.Params.Height) - r,
			w: r * 2,
			h: r * 2,
		})
	}

	if best, ok := choosePlacement(candidates, tw, th,
		float64(w.Params.Width), float64(w.Params.Height), w.Params.TooltipMargin, obstacles); ok {
		return best
	}

	// Nothing fits on-canvas: clamp a right-side placement into view.
	margin := w.Params.TooltipMargin
	return Placement{
		X:    math.Min(anchorX+size+gap, float64(w.Params.Width)-tw-margin),
		Y:    math.Max(margin, math.Min(anchorY-th/2, float64(w.Params.Height)-th-margin)),
		Side: SideRight,
	}
}

// choosePlacement picks the candidate whose box overlaps the fewest
// obstacle rectangles. Candidates that would leave the canvas (with the
// safety margin) are discarded; ties go to the earliest candidate. ok is
// false when no candidate is on-canvas.
func choosePlacement(candidates []Placement, boxW, boxH, screenW, screenH, margin float64, obstacles []rect) (Placement, bool) {
	var best Placement
	found := false
	minOverlap := math.MaxInt32

	for _, c := range candidates {
		if c.X < margin || c.X+boxW > screenW-margin ||
			c.Y < margin || c.Y+boxH > screenH-margin {
			continue
		}
		box := rect{x: c.X, y: c.Y, w: boxW, h: boxH}
		overlap := 0
		for _, o := range obstacles {
			if box.overlaps(o) {
				overlap++
			}
		}
		if overlap < minOverlap {
			minOverlap = overlap
			best = c
			found = true
		}
	}
	return best, found
}
