package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundingBox_DerivedFields(t *testing.T) {
	b := New(0, 0, 10, 20)
	require.Equal(t, 10.0, b.Width())
	require.Equal(t, 20.0, b.Height())
	require.Equal(t, 0.5, b.Ratio())
	require.Equal(t, 200.0, b.Area())
	require.Equal(t, Point{X: 5, Y: 10}, b.Center())
}

func TestBoundingBox_Extend(t *testing.T) {
	b := New(10, 10, 20, 20)
	ext := b.Extend(1, 2, 3, 4)
	require.Equal(t, BoundingBox{Left: 9, Top: 8, Right: 23, Bottom: 24}, ext)
}

func TestBoundingBox_Direction(t *testing.T) {
	self := New(0, 0, 10, 10) // center (5,5)

	// other far to the right -> self faces "r"
	require.Equal(t, Right, self.Direction(New(100, 4, 110, 6)))
	// other far to the left -> self faces "l"
	require.Equal(t, Left, self.Direction(New(-110, 4, -100, 6)))
	// other far below -> self faces "b"
	require.Equal(t, Bottom, self.Direction(New(4, 100, 6, 110)))
	// other far above -> self faces "t"
	require.Equal(t, Top, self.Direction(New(4, -110, 6, -100)))
}

func TestBoundingBox_IsContainedBy(t *testing.T) {
	outer := New(0, 0, 100, 100)
	inner := New(40, 40, 60, 60)
	require.True(t, inner.IsContainedBy(outer))
	require.True(t, outer.ContainsCenterOf(inner))

	farAway := New(1000, 1000, 1010, 1010)
	require.False(t, farAway.IsContainedBy(outer))
}

func TestBoundingBox_DistanceTo(t *testing.T) {
	self := New(0, 0, 10, 10)
	other := New(20, 0, 30, 10)

	c2c := self.DistanceTo(other, CenterToCenter)
	require.InDelta(t, 20.0, c2c, 1e-9)

	c2corner := self.DistanceTo(other, CenterToCorners)
	// other's center is (25, 5); closest corner of self is (10, 0) or (10, 10),
	// both sqrt(15^2 + 5^2) = sqrt(250) away
	require.InDelta(t, 15.811388300841896, c2corner, 1e-9)
}

func TestBoundingBox_OffsetThenScaleRoundTrip(t *testing.T) {
	b := New(3, 4, 13, 24)
	offset := Point{X: 10, Y: -5}
	scale := Point{X: 2, Y: 0.5}

	forward := b.OffsetThenScale(offset, scale)

	// Inverse of f(v) = (v+offset)*scale is v = f(v)/scale - offset, i.e.
	// offset by 0 and scale by 1/s, then offset by -offset and scale by 1.
	unscaled := forward.OffsetThenScale(Point{}, Point{X: 1 / scale.X, Y: 1 / scale.Y})
	back := unscaled.OffsetThenScale(Point{X: -offset.X, Y: -offset.Y}, Point{X: 1, Y: 1})

	require.InDelta(t, b.Left, back.Left, 1e-9)
	require.InDelta(t, b.Top, back.Top, 1e-9)
	require.InDelta(t, b.Right, back.Right, 1e-9)
	require.InDelta(t, b.Bottom, back.Bottom, 1e-9)
}

func TestBoundingBox_LTWHRounding(t *testing.T) {
	b := New(1.005, 2.2222, 11.0059, 12.2222)
	l, tp, w, h := b.LTWH()
	require.Equal(t, 1.0, l)
	require.InDelta(t, 2.22, tp, 1e-9)
	require.InDelta(t, 10.0, w, 1e-2)
	require.InDelta(t, 10.0, h, 1e-2)
}
