package chart

import (
	"slices"

	"github.com/gogpu/gg"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpPath OpKind = iota
	OpText
	OpShape
)

func (k OpKind) String() string {
	switch k {
	case OpText:
		return "text"
	case OpShape:
		return "shape"
	default:
		return "path"
	}
}

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind OpKind

	Elements []gg.PathElement
	Paint    Paint

	Text      string
	At        gg.Point
	TextPaint TextPaint

	Shape ShapeKind
	Size  float64
}

// Recorder is a Surface that keeps every call in order instead of drawing.
// Text is measured by Metrics; a nil Metrics measures everything as zero.
type Recorder struct {
	Metrics Metrics
	Ops     []Op
}

// NewRecorder returns a recorder measuring text with m.
func NewRecorder(m Metrics) *Recorder {
	return &Recorder{Metrics: m}
}

func (r *Recorder) MeasureText(text string, size float64) (float64, float64) {
	if r.Metrics == nil {
		return 0, 0
	}
	return r.Metrics.MeasureText(text, size)
}

func (r *Recorder) DrawPath(path *gg.Path, paint Paint) {
	r.Ops = append(r.Ops, Op{
		Kind:     OpPath,
		Elements: slices.Clone(path.Elements()),
		Paint:    paint,
	})
}

func (r *Recorder) DrawText(text string, at gg.Point, paint TextPaint) {
	r.Ops = append(r.Ops, Op{
		Kind:      OpText,
		Text:      text,
		At:        at,
		TextPaint: paint,
	})
}

func (r *Recorder) DrawShape(kind ShapeKind, center gg.Point, size float64, paint Paint) {
	r.Ops = append(r.Ops, Op{
		Kind:  OpShape,
		Shape: kind,
		At:    center,
		Size:  size,
		Paint: paint,
	})
}

// Texts returns the recorded text operations.
func (r *Recorder) Texts() []Op {
	return r.filter(OpText)
}

// Paths returns the recorded path operations.
func (r *Recorder) Paths() []Op {
	return r.filter(OpPath)
}

// Shapes returns the recorded shape operations.
func (r *Recorder) Shapes() []Op {
	return r.filter(OpShape)
}

func (r *Recorder) filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
