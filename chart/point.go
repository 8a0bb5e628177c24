package chart

// PointKind renders entries as markers only.
type PointKind struct{ pointLayout }

// Points returns the point chart kind.
func Points() Kind { return PointKind{} }

func (PointKind) Name() string { return "point" }

func (PointKind) RenderContent(s Surface, f Frame) {
	DrawAxis(s, f)
	DrawPoints(s, f)
	DrawFooter(s, f)
	DrawValueLabels(s, f)
}
