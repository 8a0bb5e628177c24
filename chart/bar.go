package chart

import "github.com/gogpu/gg"

// BarKind renders one bar per entry, from the zero line to the point.
type BarKind struct{ pointLayout }

// Bars returns the bar chart kind.
func Bars() Kind { return BarKind{} }

func (BarKind) Name() string { return "bar" }

func (BarKind) RenderContent(s Surface, f Frame) {
	DrawBars(s, f)
	DrawAxis(s, f)
	DrawPoints(s, f)
	DrawFooter(s, f)
	DrawValueLabels(s, f)
}

// DrawBars fills a rectangle per entry spanning the zero line and the point.
// Bars leave a margin between neighbouring slots; narrow slots keep at least
// half their width. Zero values draw no bar.
func DrawBars(s Surface, f Frame) {
	w := max(f.Layout.Slot.Width-f.Style.Margin, f.Layout.Slot.Width/2)
	if w <= 0 {
		return
	}
	origin := f.Layout.YOrigin
	for i, p := range f.Points {
		if f.Entries[i].Value == 0 {
			continue
		}
		top := min(origin, p.Y)
		h := max(origin, p.Y) - top
		if h <= 0 {
			continue
		}
		path := gg.NewPath()
		path.Rectangle(p.X-w/2, top, w, h)
		s.DrawPath(path, Paint{
			Style: Fill,
			Brush: gg.Solid(f.Entries[i].Color),
		})
	}
}
