package chart

import "github.com/gogpu/gg"

// LineKind renders entries as a connected line with an optional filled area
// and value axis.
type LineKind struct{ pointLayout }

// Line returns the line chart kind.
func Line() Kind { return LineKind{} }

func (LineKind) Name() string { return "line" }

// RenderContent draws, bottom to top: area, line, axis, markers, footer
// labels, value labels.
func (LineKind) RenderContent(s Surface, f Frame) {
	DrawArea(s, f)
	DrawLine(s, f)
	DrawAxis(s, f)
	DrawPoints(s, f)
	DrawFooter(s, f)
	DrawValueLabels(s, f)
}

// DrawArea fills the region between the line and the zero line with a
// horizontal gradient of the entry colors.
func DrawArea(s Surface, f Frame) {
	if f.Style.LineAreaAlpha <= 0 || len(f.Points) < 2 {
		return
	}
	path := BuildAreaPath(f.Points, f.Style.LineMode, f.Layout.Slot, f.Layout.YOrigin)
	s.DrawPath(path, Paint{
		Style: Fill,
		Brush: AreaBrush(f.Points, f.Entries, f.Style.LineAreaAlpha),
	})
}

// DrawLine strokes the line through the points.
func DrawLine(s Surface, f Frame) {
	if f.Style.LineMode == LineNone || len(f.Points) < 2 {
		return
	}
	s.DrawPath(BuildPath(f.Points, f.Style.LineMode, f.Layout.Slot), Paint{
		Style:       Stroke,
		Brush:       gg.Solid(f.Style.LineColor),
		StrokeWidth: f.Style.LineSize,
	})
}
