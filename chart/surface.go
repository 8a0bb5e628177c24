package chart

import "github.com/gogpu/gg"

// Metrics measures rendered text. Implementations returning zero sizes are
// tolerated: no space is reserved for text they cannot measure.
type Metrics interface {
	MeasureText(text string, size float64) (width, height float64)
}

// MetricsFunc adapts a function to Metrics.
type MetricsFunc func(text string, size float64) (float64, float64)

func (f MetricsFunc) MeasureText(text string, size float64) (float64, float64) {
	return f(text, size)
}

// Surface is the drawing target of a render. The chart decides geometry;
// the surface executes primitives in call order.
type Surface interface {
	Metrics
	DrawPath(path *gg.Path, paint Paint)
	DrawText(text string, at gg.Point, paint TextPaint)
	DrawShape(kind ShapeKind, center gg.Point, size float64, paint Paint)
}

// PaintStyle selects fill or stroke.
type PaintStyle int

const (
	Fill PaintStyle = iota
	Stroke
)

func (s PaintStyle) String() string {
	if s == Stroke {
		return "stroke"
	}
	return "fill"
}

// Paint describes how a path or shape is painted. Brush is either a
// gg.SolidBrush or a *gg.LinearGradientBrush.
type Paint struct {
	Style       PaintStyle
	Brush       gg.Brush
	StrokeWidth float64
}

// TextPaint describes a text draw. The anchor places the text box relative
// to the draw position: (0,0) puts the box's top-left corner there, (0.5,1)
// its bottom-center, (1,0.5) its right-middle.
type TextPaint struct {
	Size    float64
	Color   gg.RGBA
	AnchorX float64
	AnchorY float64
}

// ShapeKind is a marker shape.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeSquare
)

func (k ShapeKind) String() string {
	if k == ShapeSquare {
		return "square"
	}
	return "circle"
}
