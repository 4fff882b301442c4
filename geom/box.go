// Package geom provides the axis-aligned bounding box primitives that every
// other package in this module builds spatial predicates on top of.
package geom

import "math"

// Direction is one of the four cardinal sides of a box, used to bucket a
// box's children (left/top/right/bottom) and to report which side of a box
// another box lies on.
type Direction string

const (
	Left  Direction = "l"
	Top   Direction = "t"
	Right Direction = "r"
	Bottom Direction = "b"
)

// DistanceMode selects how BoundingBox.DistanceTo measures the gap between
// two boxes.
type DistanceMode int

const (
	// CenterToCenter measures the straight-line distance between the two
	// boxes' centers.
	CenterToCenter DistanceMode = iota
	// CenterToCorners measures the minimum distance from other's center to
	// any of self's four corners.
	CenterToCorners
)

// Point is a simple 2D coordinate, used for offsets, scales and centers.
type Point struct {
	X, Y float64
}

// BoundingBox is an axis-aligned rectangle. Left <= Right and Top <= Bottom
// are enforced by New.
type BoundingBox struct {
	Left, Top, Right, Bottom float64
}

// New builds a BoundingBox from two arbitrary corners, normalizing them so
// Left<=Right and Top<=Bottom regardless of the order given.
func New(x1, y1, x2, y2 float64) BoundingBox {
	return BoundingBox{
		Left:   math.Min(x1, x2),
		Top:    math.Min(y1, y2),
		Right:  math.Max(x1, x2),
		Bottom: math.Max(y1, y2),
	}
}

// Width returns Right-Left.
func (b BoundingBox) Width() float64 { return b.Right - b.Left }

// Height returns Bottom-Top.
func (b BoundingBox) Height() float64 { return b.Bottom - b.Top }

// Ratio returns Width/Height.
func (b BoundingBox) Ratio() float64 { return b.Width() / b.Height() }

// Area returns Width*Height.
func (b BoundingBox) Area() float64 { return b.Width() * b.Height() }

// Center returns the box's geometric center.
func (b BoundingBox) Center() Point {
	return Point{X: b.Left + b.Width()/2, Y: b.Top + b.Height()/2}
}

// LTRB returns the four raw corner coordinates.
func (b BoundingBox) LTRB() (l, t, r, bot float64) {
	return b.Left, b.Top, b.Right, b.Bottom
}

// LTWH returns left, top, width, height rounded to two decimals, the form
// the output data shape serializes positions in.
func (b BoundingBox) LTWH() (l, t, w, h float64) {
	round2 := func(v float64) float64 { return math.Round(v*100) / 100 }
	return round2(b.Left), round2(b.Top), round2(b.Width()), round2(b.Height())
}

// FromLTWH reconstructs a box from a left/top/width/height dict, the
// inverse of LTWH.
func FromLTWH(l, t, w, h float64) BoundingBox {
	return BoundingBox{Left: l, Top: t, Right: l + w, Bottom: t + h}
}

// ContainsCenterOf reports whether other's center lies within b (closed
// interval, so a center exactly on the border counts as contained).
func (b BoundingBox) ContainsCenterOf(other BoundingBox) bool {
	c := other.Center()
	return c.X >= b.Left && c.X <= b.Right && c.Y >= b.Top && c.Y <= b.Bottom
}

// IsContainedBy reports whether b's own center lies within outer.
func (b BoundingBox) IsContainedBy(outer BoundingBox) bool {
	return outer.ContainsCenterOf(b)
}

// Wraps reports whether outer fully encloses b on every side (used to
// decide which SVG fragments survive a sub-region crop).
func (b BoundingBox) Wraps(outer BoundingBox) bool {
	return outer.Left <= b.Left && outer.Top <= b.Top &&
		outer.Right >= b.Right && outer.Bottom >= b.Bottom
}

// OffsetThenScale translates by offset and then scales about the origin,
// in that order: ((l+ox)*sx, (t+oy)*sy, (r+ox)*sx, (b+oy)*sy).
func (b BoundingBox) OffsetThenScale(offset, scale Point) BoundingBox {
	return BoundingBox{
		Left:   (b.Left + offset.X) * scale.X,
		Top:    (b.Top + offset.Y) * scale.Y,
		Right:  (b.Right + offset.X) * scale.X,
		Bottom: (b.Bottom + offset.Y) * scale.Y,
	}
}

// Extend grows (or, with negative values, shrinks) each side independently.
func (b BoundingBox) Extend(left, top, right, bottom float64) BoundingBox {
	return BoundingBox{
		Left:   b.Left - left,
		Top:    b.Top - top,
		Right:  b.Right + right,
		Bottom: b.Bottom + bottom,
	}
}

// Direction reports which side of b faces other: the dimension (horizontal
// or vertical) with the larger center-to-center delta wins, and the sign of
// that delta picks which side of b that is.
func (b BoundingBox) Direction(other BoundingBox) Direction {
	c, oc := b.Center(), other.Center()
	hDiff := c.Y - oc.Y
	vDiff := c.X - oc.X
	if math.Abs(hDiff) > math.Abs(vDiff) {
		if hDiff > 0 {
			return Top
		}
		return Bottom
	}
	if vDiff > 0 {
		return Left
	}
	return Right
}

// DistanceTo measures the distance from b to other according to mode.
func (b BoundingBox) DistanceTo(other BoundingBox, mode DistanceMode) float64 {
	oc := other.Center()
	if mode == CenterToCorners {
		corners := [4]Point{
			{b.Left, b.Top}, {b.Left, b.Bottom},
			{b.Right, b.Top}, {b.Right, b.Bottom},
		}
		min := math.Inf(1)
		for _, c := range corners {
			if d := dist(c, oc); d < min {
				min = d
			}
		}
		return min
	}
	return dist(b.Center(), oc)
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
