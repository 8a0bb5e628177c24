package chart

import "github.com/gogpu/gg"

// splineTension is the horizontal control-point offset, as a fraction of the
// slot width, used for every spline segment.
const splineTension = 0.8

// BuildPath joins points according to mode. It returns an empty path for
// LineNone or fewer than two points.
func BuildPath(points []gg.Point, mode LineMode, slot Size) *gg.Path {
	path := gg.NewPath()
	if mode == LineNone || len(points) < 2 {
		return path
	}
	path.MoveTo(points[0].X, points[0].Y)
	appendSegments(path, points, mode, slot)
	return path
}

// BuildAreaPath returns the closed region between the line and the zero
// line: it drops from the first point to yOrigin, follows the line, rises
// back from the last point to yOrigin and closes. Fewer than two points
// yield an empty path.
func BuildAreaPath(points []gg.Point, mode LineMode, slot Size, yOrigin float64) *gg.Path {
	path := gg.NewPath()
	if len(points) < 2 {
		return path
	}
	first, last := points[0], points[len(points)-1]
	path.MoveTo(first.X, yOrigin)
	path.LineTo(first.X, first.Y)
	appendSegments(path, points, mode, slot)
	path.LineTo(last.X, yOrigin)
	path.Close()
	return path
}

// appendSegments continues path from points[0] through the remaining points.
func appendSegments(path *gg.Path, points []gg.Point, mode LineMode, slot Size) {
	switch mode {
	case LineStraight:
		for _, p := range points[1:] {
			path.LineTo(p.X, p.Y)
		}
	case LineSpline:
		for i := 0; i < len(points)-1; i++ {
			c := cubicAt(points, i, slot)
			path.CubicTo(c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y)
		}
	}
}

// cubicAt returns the segment from points[i] to points[i+1]. Both control
// points are offset horizontally only, so tangents at data points are flat.
func cubicAt(points []gg.Point, i int, slot Size) gg.CubicTo {
	offset := gg.Pt(slot.Width*splineTension, 0)
	next := points[i+1]
	return gg.CubicTo{
		Control1: points[i].Add(offset),
		Control2: next.Sub(offset),
		Point:    next,
	}
}

// AreaBrush returns the horizontal gradient used to fill the area under the
// line: one evenly spaced stop per entry, in the entry's color at the given
// alpha (0-255).
func AreaBrush(points []gg.Point, entries []Entry, alpha int) *gg.LinearGradientBrush {
	if len(points) == 0 {
		return gg.NewLinearGradientBrush(0, 0, 0, 0)
	}
	startX, endX := points[0].X, points[len(points)-1].X
	brush := gg.NewLinearGradientBrush(startX, 0, endX, 0)
	a := float64(alpha) / 255
	n := len(entries)
	for i, e := range entries {
		offset := 0.0
		if n > 1 {
			offset = float64(i) / float64(n-1)
		}
		c := e.Color
		c.A = a
		brush.AddColorStop(offset, c)
	}
	return brush
}
