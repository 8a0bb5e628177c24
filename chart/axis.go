package chart

import "github.com/gogpu/gg"

// DrawAxis draws the L-shaped value axis: a vertical stroke at the first
// point spanning the point extremes, then a horizontal stroke under the
// lowest point to the right edge. Only the global maximum and minimum are
// labelled, at the rows of the highest and lowest points.
func DrawAxis(s Surface, f Frame) {
	if !f.Style.ShowAxis || len(f.Points) == 0 {
		return
	}
	m := f.Style.Margin
	x := f.Points[0].X
	topY, bottomY := f.Points[0].Y, f.Points[0].Y
	for _, p := range f.Points[1:] {
		topY = min(topY, p.Y)
		bottomY = max(bottomY, p.Y)
	}

	path := gg.NewPath()
	path.MoveTo(x, topY-m/2)
	path.LineTo(x, bottomY+m)
	path.LineTo(f.Width-m, bottomY+m)
	s.DrawPath(path, Paint{
		Style:       Stroke,
		Brush:       gg.Solid(f.Style.AxisColor),
		StrokeWidth: f.Style.LineSize,
	})

	text := TextPaint{
		Size:    f.Style.LabelTextSize,
		Color:   f.Style.AxisColor,
		AnchorX: 1,
		AnchorY: 0.5,
	}
	r := f.Layout.Range
	s.DrawText(FormatValue(r.Max, f.Style.Locale), gg.Pt(x-m, topY), text)
	s.DrawText(FormatValue(r.Min, f.Style.Locale), gg.Pt(x-m, bottomY), text)
}
