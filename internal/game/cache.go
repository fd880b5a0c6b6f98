package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// CacheKey quantizes the visual state of an entity coarsely enough that
// visually identical frames collapse to one rendered image. Rotation is
// bucketed to 10 degrees for polygons (0 for circles) and the click scale
// to tenths.
type CacheKey struct {
	Entity     int
	Pattern    Pattern
	SizePx     int
	ClickScale int
	Influenced bool
	RotBucket  int
}

// NewCacheKey builds the key for an entity's current draw state.
func NewCacheKey(e *Entity, sizePx, clickScale, rotationDeg float64) CacheKey {
	bucket := 0
	if e.Shape.Sides() > 0 {
		bucket = int(rotationDeg/10) % 36
		if bucket < 0 {
			bucket += 36
		}
	}
	return CacheKey{
		Entity:     e.ID,
		Pattern:    e.Pattern,
		SizePx:     int(sizePx + 0.5),
		ClickScale: int(clickScale*10 + 0.5),
		Influenced: e.MouseInfluenced,
		RotBucket:  bucket,
	}
}

// RenderCache memoizes offscreen shape renders keyed by quantized state.
// Keys churn continuously as entities animate, so eviction just drops the
// oldest half on overflow instead of tracking recency.
type RenderCache struct {
	entries map[CacheKey]*ebiten.Image
	order   []CacheKey
	limit   int
}

// NewRenderCache builds a cache bounded to limit entries.
func NewRenderCache(limit int) *RenderCache {
	if limit < 2 {
		limit = 2
	}
	return &RenderCache{
		entries: make(map[CacheKey]*ebiten.Image, limit),
		limit:   limit,
	}
}

// Image returns the cached render for key, calling render once on a miss.
func (c *RenderCache) Image(key CacheKey, render func() *ebiten.Image) *ebiten.Image {
	if img, ok := c.entries[key]; ok {
		return img
	}
	img := render()
	c.entries[key] = img
	c.order = append(c.order, key)
	if len(c.order) > c.limit {
		c.evictOldest(len(c.order) / 2)
	}
	return img
}

func (c *RenderCache) evictOldest(n int) {
	for _, key := range c.order[:n] {
		if img := c.entries[key]; img != nil {
			img.Deallocate()
		}
		delete(c.entries, key)
	}
	c.order = append(c.order[:0], c.order[n:]...)
}

// Len reports the live entry count.
func (c *RenderCache) Len() int {
	return len(c.entries)
}
