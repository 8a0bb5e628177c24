package chart

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Layout is the geometry computed once per render.
type Layout struct {
	// Slot is the share of the plot region given to one entry. Its height
	// is the full plot height.
	Slot Size

	HeaderHeight float64
	FooterHeight float64
	// AxisWidth is the gutter reserved on the leading edge for axis labels.
	AxisWidth float64
	// YOrigin is the vertical coordinate of value zero.
	YOrigin float64

	Range Range
}

// PlotTop is the y coordinate of the top of the plot region.
func (l Layout) PlotTop(style Style) float64 {
	return l.HeaderHeight + style.Margin
}

// PlotBottom is the y coordinate of the bottom of the plot region.
func (l Layout) PlotBottom(style Style) float64 {
	return l.PlotTop(style) + l.Slot.Height
}

// ComputeLayout reserves space for labels and the axis gutter, sizes the
// per-entry slot and locates value zero.
func ComputeLayout(entries []Entry, width, height float64, style Style, m Metrics) Layout {
	l := Layout{Range: ValueRange(entries)}

	l.FooterHeight = reservedHeight(entries, func(e Entry) Label { return e.Label }, style, m)
	l.HeaderHeight = reservedHeight(entries, func(e Entry) Label { return e.ValueLabel }, style, m)
	if style.ShowAxis && len(entries) > 0 {
		l.AxisWidth = axisWidth(l.Range, style, m)
	}

	n := max(1, len(entries))
	l.Slot = Size{
		Width:  max(0, (width-2*style.Margin-l.AxisWidth)/float64(n)),
		Height: max(0, height-l.HeaderHeight-l.FooterHeight-2*style.Margin),
	}
	l.YOrigin = yOrigin(l, style)

	Logger().Debug("chart: layout",
		"entries", len(entries),
		"slot_width", l.Slot.Width,
		"slot_height", l.Slot.Height,
		"header", l.HeaderHeight,
		"footer", l.FooterHeight,
		"axis", l.AxisWidth,
		"origin", l.YOrigin)
	return l
}

// reservedHeight returns the tallest measured label plus a margin, or 0 when
// no entry carries the label or nothing measurable was found.
func reservedHeight(entries []Entry, pick func(Entry) Label, style Style, m Metrics) float64 {
	tallest := 0.0
	for _, e := range entries {
		text, ok := pick(e).Value()
		if !ok {
			continue
		}
		_, h := m.MeasureText(text, style.LabelTextSize)
		tallest = max(tallest, h)
	}
	if tallest <= 0 {
		return 0
	}
	return tallest + style.Margin
}

func axisWidth(r Range, style Style, m Metrics) float64 {
	wMin, _ := m.MeasureText(FormatValue(r.Min, style.Locale), style.LabelTextSize)
	wMax, _ := m.MeasureText(FormatValue(r.Max, style.Locale), style.LabelTextSize)
	widest := max(wMin, wMax)
	if widest <= 0 {
		return 0
	}
	return widest + style.Margin
}

func yOrigin(l Layout, style Style) float64 {
	top := l.PlotTop(style)
	r := l.Range
	switch {
	case r.Degenerate():
		return top + l.Slot.Height/2
	case r.Min >= 0:
		return top + l.Slot.Height
	case r.Max <= 0:
		return top
	default:
		return top + l.Slot.Height*(r.Max/r.Span())
	}
}
