package chart

import "github.com/gogpu/gg"

// DrawPoints draws one filled marker per point in the entry's color.
func DrawPoints(s Surface, f Frame) {
	if f.Style.PointMode == PointNone || f.Style.PointSize <= 0 {
		return
	}
	kind := ShapeCircle
	if f.Style.PointMode == PointSquare {
		kind = ShapeSquare
	}
	for i, p := range f.Points {
		s.DrawShape(kind, p, f.Style.PointSize, Paint{
			Style: Fill,
			Brush: gg.Solid(f.Entries[i].Color),
		})
	}
}
