// Package svg renders charts as standalone SVG documents.
//
// Output is deterministic: the same chart and canvas always produce the same
// bytes, gradient ids included.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gogpu/gg"

	"github.com/buffos/go-microcharts/chart"
)

// DefaultFontFamily is the font-family attribute of text elements.
const DefaultFontFamily = "Arial, sans-serif"

// ascender is implemented by metrics that know the baseline offset of a line.
type ascender interface {
	Ascent(size float64) float64
}

// Surface is a chart.Surface that writes SVG elements into a buffer.
type Surface struct {
	width, height float64
	metrics       chart.Metrics
	background    gg.RGBA
	fontFamily    string

	defs      bytes.Buffer
	body      bytes.Buffer
	gradients int
}

// Option configures a Surface.
type Option func(*Surface)

// WithBackground sets the color of the full-canvas background rectangle.
func WithBackground(c gg.RGBA) Option {
	return func(s *Surface) { s.background = c }
}

// WithFontFamily sets the font-family of every text element.
func WithFontFamily(family string) Option {
	return func(s *Surface) { s.fontFamily = family }
}

// New returns an empty surface measuring text with m.
func New(width, height float64, m chart.Metrics, opts ...Option) *Surface {
	s := &Surface{
		width:      width,
		height:     height,
		metrics:    m,
		background: gg.White,
		fontFamily: DefaultFontFamily,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MeasureText delegates to the surface metrics. Without metrics no text is
// measured and the layout reserves no space for it.
func (s *Surface) MeasureText(text string, size float64) (float64, float64) {
	if s.metrics == nil {
		return 0, 0
	}
	return s.metrics.MeasureText(text, size)
}

// DrawPath writes a <path> element.
func (s *Surface) DrawPath(path *gg.Path, paint chart.Paint) {
	d := pathData(path)
	if d == "" {
		return
	}
	fmt.Fprintf(&s.body, `  <path d="%s"%s/>`, d, s.paintAttrs(paint))
	s.body.WriteString("\n")
}

// DrawShape writes a <circle> or <rect> marker centered on center.
func (s *Surface) DrawShape(kind chart.ShapeKind, center gg.Point, size float64, paint chart.Paint) {
	if size <= 0 {
		return
	}
	switch kind {
	case chart.ShapeSquare:
		fmt.Fprintf(&s.body, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"%s/>`,
			center.X-size/2, center.Y-size/2, size, size, s.paintAttrs(paint))
	default:
		fmt.Fprintf(&s.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f"%s/>`,
			center.X, center.Y, size/2, s.paintAttrs(paint))
	}
	s.body.WriteString("\n")
}

// DrawText writes a <text> element whose measured box sits at the paint
// anchor.
func (s *Surface) DrawText(text string, at gg.Point, paint chart.TextPaint) {
	if paint.Size <= 0 {
		return
	}
	w, h := s.MeasureText(text, paint.Size)
	left := at.X - w*paint.AnchorX
	top := at.Y - h*paint.AnchorY

	baseline := top + h*0.8
	if a, ok := s.metrics.(ascender); ok {
		baseline = top + a.Ascent(paint.Size)
	}

	fmt.Fprintf(&s.body, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%s"%s>`,
		left, baseline, escapeXML(s.fontFamily), formatNumber(paint.Size), colorAttrs("fill", paint.Color))
	s.body.WriteString(escapeXML(text))
	s.body.WriteString("</text>\n")
}

// WriteTo writes the complete document to w.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">`,
		formatNumber(s.width), formatNumber(s.height), formatNumber(s.width), formatNumber(s.height))
	doc.WriteString("\n")
	fmt.Fprintf(&doc, `  <rect width="%s" height="%s"%s/>`,
		formatNumber(s.width), formatNumber(s.height), colorAttrs("fill", s.background))
	doc.WriteString("\n")
	if s.defs.Len() > 0 {
		doc.WriteString("  <defs>\n")
		doc.Write(s.defs.Bytes())
		doc.WriteString("  </defs>\n")
	}
	doc.Write(s.body.Bytes())
	doc.WriteString("</svg>\n")
	return doc.WriteTo(w)
}

// String returns the complete document.
func (s *Surface) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}

func (s *Surface) paintAttrs(p chart.Paint) string {
	if p.Style == chart.Stroke {
		return fmt.Sprintf(` fill="none"%s stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round"`,
			s.brushRef("stroke", p.Brush), p.StrokeWidth)
	}
	return s.brushRef("fill", p.Brush)
}

// brushRef returns the fill or stroke attributes of a brush, registering
// gradients in <defs> as needed.
func (s *Surface) brushRef(name string, b gg.Brush) string {
	switch br := b.(type) {
	case gg.SolidBrush:
		return colorAttrs(name, br.Color)
	case *gg.LinearGradientBrush:
		id := fmt.Sprintf("gradient-%d", s.gradients)
		s.gradients++
		fmt.Fprintf(&s.defs, `    <linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f">`,
			id, br.Start.X, br.Start.Y, br.End.X, br.End.Y)
		s.defs.WriteString("\n")
		for _, stop := range br.Stops {
			fmt.Fprintf(&s.defs, `      <stop offset="%.4f"%s/>`, stop.Offset, colorAttrs("stop-color", stop.Color))
			s.defs.WriteString("\n")
		}
		s.defs.WriteString("    </linearGradient>\n")
		return fmt.Sprintf(` %s="url(#%s)"`, name, id)
	default:
		return colorAttrs(name, gg.Black)
	}
}

// pathData converts path elements to the "d" attribute syntax.
func pathData(p *gg.Path) string {
	if p == nil {
		return ""
	}
	var d strings.Builder
	for _, el := range p.Elements() {
		if d.Len() > 0 {
			d.WriteByte(' ')
		}
		switch e := el.(type) {
		case gg.MoveTo:
			fmt.Fprintf(&d, "M%.2f %.2f", e.Point.X, e.Point.Y)
		case gg.LineTo:
			fmt.Fprintf(&d, "L%.2f %.2f", e.Point.X, e.Point.Y)
		case gg.QuadTo:
			fmt.Fprintf(&d, "Q%.2f %.2f %.2f %.2f", e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			fmt.Fprintf(&d, "C%.2f %.2f %.2f %.2f %.2f %.2f",
				e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			d.WriteByte('Z')
		}
	}
	return d.String()
}

// colorAttrs returns ` name="#rrggbb"` plus an opacity attribute for
// translucent colors.
func colorAttrs(name string, c gg.RGBA) string {
	attr := fmt.Sprintf(` %s="%s"`, name, hexColor(c))
	if c.A < 1 {
		opacity := name + "-opacity"
		if name == "stop-color" {
			opacity = "stop-opacity"
		}
		attr += fmt.Sprintf(` %s="%.4f"`, opacity, math.Max(c.A, 0))
	}
	return attr
}

func hexColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
