package chart

import "github.com/gogpu/gg"

// PlacePoints maps every entry to its position in the plot region. Points
// sit at the horizontal center of their slot; larger values sit higher.
func PlacePoints(entries []Entry, l Layout, style Style) []gg.Point {
	if len(entries) == 0 {
		return nil
	}
	top := l.PlotTop(style)
	left := style.Margin + l.AxisWidth
	points := make([]gg.Point, len(entries))
	for i, e := range entries {
		x := left + l.Slot.Width*(float64(i)+0.5)
		y := l.YOrigin
		if !l.Range.Degenerate() {
			y = top + (1-(e.Value-l.Range.Min)/l.Range.Span())*l.Slot.Height
		}
		points[i] = gg.Pt(x, y)
	}
	return points
}
