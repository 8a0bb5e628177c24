// Package raster draws charts into a pixel buffer with the gg software
// renderer and encodes the result as PNG or JPEG.
package raster

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/buffos/go-microcharts/chart"
	"github.com/buffos/go-microcharts/internal/fonts"
)

// DefaultJPEGQuality is used by EncodeJPEG when quality is out of range.
const DefaultJPEGQuality = 90

// Surface is a chart.Surface over a gg.Context. Drawing failures do not
// interrupt a render; the first one is kept and reported by Err.
type Surface struct {
	ctx   *gg.Context
	fonts *fonts.Set
	err   error
}

// New returns a surface of the given pixel size cleared to background.
func New(width, height int, set *fonts.Set, background gg.RGBA) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	if set == nil {
		return nil, errors.New("raster: a font set is required")
	}
	ctx := gg.NewContext(width, height)
	ctx.ClearWithColor(background)
	return &Surface{ctx: ctx, fonts: set}, nil
}

// MeasureText implements chart.Metrics with the surface's font.
func (s *Surface) MeasureText(text string, size float64) (float64, float64) {
	return s.fonts.MeasureText(text, size)
}

// DrawPath fills or strokes path with paint.
func (s *Surface) DrawPath(path *gg.Path, paint chart.Paint) {
	els := path.Elements()
	if len(els) == 0 {
		return
	}
	s.ctx.ClearPath()
	for _, el := range els {
		switch e := el.(type) {
		case gg.MoveTo:
			s.ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			s.ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			s.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			s.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			s.ctx.ClosePath()
		}
	}
	s.paint(paint)
}

// DrawShape draws a marker centered on center.
func (s *Surface) DrawShape(kind chart.ShapeKind, center gg.Point, size float64, paint chart.Paint) {
	if size <= 0 {
		return
	}
	s.ctx.ClearPath()
	switch kind {
	case chart.ShapeSquare:
		s.ctx.DrawRectangle(center.X-size/2, center.Y-size/2, size, size)
	default:
		s.ctx.DrawCircle(center.X, center.Y, size/2)
	}
	s.paint(paint)
}

// DrawText draws text so that its measured box sits at the paint anchor.
func (s *Surface) DrawText(text string, at gg.Point, paint chart.TextPaint) {
	if text == "" || paint.Size <= 0 {
		return
	}
	w, h := s.fonts.MeasureText(text, paint.Size)
	left := at.X - w*paint.AnchorX
	top := at.Y - h*paint.AnchorY

	s.ctx.SetFont(s.fonts.Face(paint.Size))
	s.ctx.SetColor(paint.Color.Color())
	s.ctx.DrawString(text, left, top+s.fonts.Ascent(paint.Size))
}

func (s *Surface) paint(p chart.Paint) {
	brush := p.Brush
	if brush == nil {
		brush = gg.Solid(gg.Black)
	}
	var err error
	switch p.Style {
	case chart.Stroke:
		s.ctx.SetStrokeBrush(brush)
		s.ctx.SetLineWidth(p.StrokeWidth)
		err = s.ctx.Stroke()
	default:
		s.ctx.SetFillBrush(brush)
		err = s.ctx.Fill()
	}
	if err != nil {
		chart.Logger().Warn("raster: paint failed", "style", p.Style, "err", err)
		if s.err == nil {
			s.err = fmt.Errorf("raster: %s: %w", p.Style, err)
		}
	}
}

// Err returns the first drawing failure, if any.
func (s *Surface) Err() error {
	return s.err
}

// EncodePNG writes the buffer as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.ctx.EncodePNG(w)
}

// EncodeJPEG writes the buffer as JPEG. Quality outside 1..100 falls back to
// DefaultJPEGQuality.
func (s *Surface) EncodeJPEG(w io.Writer, quality int) error {
	if s.err != nil {
		return s.err
	}
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return s.ctx.EncodeJPEG(w, quality)
}

// Close releases the underlying context.
func (s *Surface) Close() error {
	return s.ctx.Close()
}
