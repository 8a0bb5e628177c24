package chart

import "github.com/gogpu/gg"

// DrawFooter draws each present entry label centered under its slot, in the
// entry's text color.
func DrawFooter(s Surface, f Frame) {
	if f.Layout.FooterHeight <= 0 {
		return
	}
	y := f.Height - f.Layout.FooterHeight
	for i, e := range f.Entries {
		text, ok := e.Label.Value()
		if !ok {
			continue
		}
		s.DrawText(text, gg.Pt(f.Points[i].X, y), TextPaint{
			Size:    f.Style.LabelTextSize,
			Color:   e.TextColor,
			AnchorX: 0.5,
		})
	}
}

// DrawValueLabels draws each present value label centered on its point:
// above it for values >= 0, below it for negative values.
func DrawValueLabels(s Surface, f Frame) {
	gap := f.Style.Margin / 2
	for i, e := range f.Entries {
		text, ok := e.ValueLabel.Value()
		if !ok {
			continue
		}
		p := f.Points[i]
		paint := TextPaint{
			Size:    f.Style.LabelTextSize,
			Color:   e.Color,
			AnchorX: 0.5,
		}
		if e.Value >= 0 {
			paint.AnchorY = 1
			p.Y -= gap
		} else {
			p.Y += gap
		}
		s.DrawText(text, p, paint)
	}
}
