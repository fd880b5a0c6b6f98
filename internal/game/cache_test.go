package game

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestCacheKeyQuantization(t *testing.T) {
	square := &Entity{ID: 1, Shape: ShapeSquare, Pattern: PatternDotted}

	t.Run("nearby rotations share a bucket", func(t *testing.T) {
		a := NewCacheKey(square, 31.2, 1.0, 41)
		b := NewCacheKey(square, 31.4, 1.04, 48.9)
		if a != b {
			t.Errorf("visually identical states should share a key: %+v vs %+v", a, b)
		}
	})

	t.Run("a new rotation bucket is a new key", func(t *testing.T) {
		a := NewCacheKey(square, 31, 1.0, 41)
		b := NewCacheKey(square, 31, 1.0, 51)
		if a == b {
			t.Error("rotations a bucket apart should not collide")
		}
	})

	t.Run("circles ignore rotation", func(t *testing.T) {
		circle := &Entity{ID: 2, Shape: ShapeCircle, Pattern: PatternSolid}
		a := NewCacheKey(circle, 25, 1.0, 15)
		b := NewCacheKey(circle, 25, 1.0, 275)
		if a != b {
			t.Error("circle keys should not vary with rotation")
		}
	})

	t.Run("negative rotation wraps into range", func(t *testing.T) {
		k := NewCacheKey(square, 31, 1.0, -5)
		if k.RotBucket < 0 || k.RotBucket >= 36 {
			t.Errorf("rotation bucket %d outside [0, 36)", k.RotBucket)
		}
	})

	t.Run("influence splits the key", func(t *testing.T) {
		a := NewCacheKey(square, 31, 1.0, 0)
		square.MouseInfluenced = true
		b := NewCacheKey(square, 31, 1.0, 0)
		square.MouseInfluenced = false
		if a == b {
			t.Error("influenced and calm states should render separately")
		}
	})
}

func TestRenderCache(t *testing.T) {
	nilRender := func() *ebiten.Image { return nil }

	key := func(i int) CacheKey { return CacheKey{Entity: i} }

	t.Run("renders once per key", func(t *testing.T) {
		c := NewRenderCache(8)
		calls := 0
		counted := func() *ebiten.Image {
			calls++
			return nil
		}
		c.Image(key(1), counted)
		c.Image(key(1), counted)
		if calls != 1 {
			t.Errorf("render ran %d times, want 1", calls)
		}
		if c.Len() != 1 {
			t.Errorf("cache holds %d entries, want 1", c.Len())
		}
	})

	t.Run("overflow evicts the oldest half", func(t *testing.T) {
		c := NewRenderCache(4)
		for i := 0; i < 5; i++ {
			c.Image(key(i), nilRender)
		}
		// 5 inserts over a limit of 4: the first two entries go.
		if c.Len() != 3 {
			t.Fatalf("cache holds %d entries after overflow, want 3", c.Len())
		}
		calls := 0
		counted := func() *ebiten.Image {
			calls++
			return nil
		}
		c.Image(key(0), counted)
		c.Image(key(4), counted)
		if calls != 1 {
			t.Errorf("oldest key should have been evicted and newest kept, got %d re-renders", calls)
		}
	})

	t.Run("minimum limit is enforced", func(t *testing.T) {
		c := NewRenderCache(0)
		for i := 0; i < 10; i++ {
			c.Image(key(i), nilRender)
		}
		if c.Len() > 2 {
			t.Errorf("cache grew to %d entries with the minimum limit", c.Len())
		}
	})
}

func TestCacheKeysAreComparable(t *testing.T) {
	// Keys index a map; a non-comparable field would panic at runtime.
	m := map[CacheKey]bool{}
	for i := 0; i < 3; i++ {
		m[CacheKey{Entity: i, Pattern: PatternStriped, SizePx: i}] = true
	}
	if len(m) != 3 {
		t.Errorf("distinct keys collapsed: %v", fmt.Sprint(m))
	}
}
