package chart

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_AxisLabelsOnlyExtremes(t *testing.T) {
	style := DefaultStyle()
	style.ShowAxis = true
	style.PointMode = PointNone
	style.LineAreaAlpha = 0

	c, err := New(Line(), values(-400, 600, 900), style)
	require.NoError(t, err)

	rec := NewRecorder(halfEm)
	require.NoError(t, c.Render(rec, 400, 300))

	texts := rec.Texts()
	require.Len(t, texts, 2)

	// gutter = width("-400") + margin = 52, slot = (400-40-52)/3
	x0 := 20 + 52 + (308.0/3)/2
	assert.Equal(t, "900", texts[0].Text)
	assert.InDelta(t, x0-20, texts[0].At.X, 1e-9)
	assert.InDelta(t, 20, texts[0].At.Y, 1e-9)
	assert.Equal(t, "-400", texts[1].Text)
	assert.InDelta(t, 280, texts[1].At.Y, 1e-9)
	for _, op := range texts {
		assert.Equal(t, 1.0, op.TextPaint.AnchorX, "right-aligned against the gutter")
		assert.Equal(t, 0.5, op.TextPaint.AnchorY)
	}
}

func TestRender_AxisPolyline(t *testing.T) {
	style := DefaultStyle()
	style.ShowAxis = true
	style.LineMode = LineNone
	style.PointMode = PointNone

	c, err := New(Line(), values(-400, 600, 900), style)
	require.NoError(t, err)
	f, err := c.Frame(halfEm, 400, 300)
	require.NoError(t, err)
	rec := NewRecorder(halfEm)
	require.NoError(t, c.Render(rec, 400, 300))

	var axis []Op
	for _, op := range rec.Paths() {
		if op.Paint.Style == Stroke {
			axis = append(axis, op)
		}
	}
	require.Len(t, axis, 1)
	x0 := f.Points[0].X
	assert.Equal(t, []gg.PathElement{
		gg.MoveTo{Point: gg.Pt(x0, 20-10)},
		gg.LineTo{Point: gg.Pt(x0, 280+20)},
		gg.LineTo{Point: gg.Pt(400-20, 280+20)},
	}, axis[0].Elements)
	assert.Equal(t, style.LineSize, axis[0].Paint.StrokeWidth)
}

func TestRender_LineOrder(t *testing.T) {
	style := DefaultStyle()
	style.ShowAxis = true
	entries := []Entry{
		values(200)[0].WithLabel("Jan").WithValueLabel("200"),
		values(400)[0].WithLabel("Feb").WithValueLabel("400"),
		values(-100)[0].WithLabel("Mar").WithValueLabel("-100"),
	}
	c, err := New(Line(), entries, style)
	require.NoError(t, err)

	rec := NewRecorder(halfEm)
	require.NoError(t, c.Render(rec, 600, 400))

	var kinds []string
	for _, op := range rec.Ops {
		switch {
		case op.Kind == OpPath && op.Paint.Style == Fill:
			kinds = append(kinds, "area")
		case op.Kind == OpPath:
			kinds = append(kinds, "stroke")
		default:
			kinds = append(kinds, op.Kind.String())
		}
	}
	assert.Equal(t, []string{
		"area",
		"stroke", // line
		"stroke", // axis
		"text", "text", // axis labels
		"shape", "shape", "shape",
		"text", "text", "text", // footer
		"text", "text", "text", // value labels
	}, kinds)

	_, isGradient := rec.Ops[0].Paint.Brush.(*gg.LinearGradientBrush)
	assert.True(t, isGradient, "area uses a horizontal gradient")
}

func TestRender_LabelsPlacement(t *testing.T) {
	style := DefaultStyle()
	style.LineAreaAlpha = 0
	style.PointMode = PointNone
	entries := []Entry{
		values(10)[0].WithLabel("up").WithValueLabel("10"),
		values(-10)[0].WithLabel("down").WithValueLabel("-10"),
		values(3)[0],
	}
	c, err := New(Line(), entries, style)
	require.NoError(t, err)
	f, err := c.Frame(halfEm, 300, 200)
	require.NoError(t, err)

	rec := NewRecorder(halfEm)
	require.NoError(t, c.Render(rec, 300, 200))
	texts := rec.Texts()
	require.Len(t, texts, 4)

	footerY := 200 - f.Layout.FooterHeight
	assert.Equal(t, "up", texts[0].Text)
	assert.Equal(t, gg.Pt(f.Points[0].X, footerY), texts[0].At)
	assert.Equal(t, 0.5, texts[0].TextPaint.AnchorX)
	assert.Equal(t, entries[0].TextColor, texts[0].TextPaint.Color)

	assert.Equal(t, "10", texts[2].Text)
	assert.Equal(t, gg.Pt(f.Points[0].X, f.Points[0].Y-10), texts[2].At)
	assert.Equal(t, 1.0, texts[2].TextPaint.AnchorY, "above the point")

	assert.Equal(t, "-10", texts[3].Text)
	assert.Equal(t, gg.Pt(f.Points[1].X, f.Points[1].Y+10), texts[3].At)
	assert.Equal(t, 0.0, texts[3].TextPaint.AnchorY, "below the point")
	assert.Equal(t, entries[1].Color, texts[3].TextPaint.Color)
}

func TestRender_Markers(t *testing.T) {
	style := DefaultStyle()
	style.LineMode = LineNone
	style.LineAreaAlpha = 0
	style.PointMode = PointSquare
	style.PointSize = 18

	entries := values(1, 2)
	c, err := New(Line(), entries, style)
	require.NoError(t, err)
	rec := NewRecorder(halfEm)
	require.NoError(t, c.Render(rec, 200, 200))

	shapes := rec.Shapes()
	require.Len(t, shapes, 2)
	for i, op := range shapes {
		assert.Equal(t, ShapeSquare, op.Shape)
		assert.Equal(t, 18.0, op.Size)
		assert.Equal(t, gg.Solid(entries[i].Color), op.Paint.Brush)
	}

	style.PointMode = PointNone
	c, err = New(Line(), entries, style)
	require.NoError(t, err)
	rec = NewRecorder(halfEm)
	require.NoError(t, c.Render(rec, 200, 200))
	assert.Empty(t, rec.Shapes())
}

func TestRender_EdgeSeries(t *testing.T) {
	style := DefaultStyle()
	style.ShowAxis = true

	t.Run("empty", func(t *testing.T) {
		c, err := New(Line(), nil, style)
		require.NoError(t, err)
		rec := NewRecorder(halfEm)
		require.NoError(t, c.Render(rec, 300, 200))
		assert.Empty(t, rec.Ops)
	})

	t.Run("single entry", func(t *testing.T) {
		c, err := New(Line(), values(5), style)
		require.NoError(t, err)
		rec := NewRecorder(halfEm)
		require.NoError(t, c.Render(rec, 300, 200))

		// only the axis is stroked; no line and no area for one point
		assert.Len(t, rec.Paths(), 1)
		assert.Len(t, rec.Shapes(), 1)
		texts := rec.Texts()
		require.Len(t, texts, 2)
		assert.Equal(t, "5", texts[0].Text)
		assert.Equal(t, "5", texts[1].Text)
	})
}

func TestRender_Deterministic(t *testing.T) {
	style := DefaultStyle()
	style.ShowAxis = true
	entries := []Entry{
		values(-400)[0].WithLabel("January"),
		values(600)[0].WithValueLabel("600"),
		values(900)[0],
		values(100)[0].WithLabel("April").WithValueLabel("100"),
	}

	for _, kind := range []Kind{Line(), Points(), Bars()} {
		t.Run(kind.Name(), func(t *testing.T) {
			c, err := New(kind, entries, style)
			require.NoError(t, err)

			first := NewRecorder(halfEm)
			second := NewRecorder(halfEm)
			require.NoError(t, c.Render(first, 640, 480))
			require.NoError(t, c.Render(second, 640, 480))
			assert.Equal(t, first.Ops, second.Ops)
		})
	}
}

func TestRender_Concurrent(t *testing.T) {
	c, err := New(Line(), values(1, 5, 3, 8), DefaultStyle())
	require.NoError(t, err)

	want := NewRecorder(halfEm)
	require.NoError(t, c.Render(want, 320, 240))

	var wg sync.WaitGroup
	results := make([]*Recorder, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := NewRecorder(halfEm)
			_ = c.Render(rec, 320, 240)
			results[i] = rec
		}()
	}
	wg.Wait()
	for _, rec := range results {
		assert.Equal(t, want.Ops, rec.Ops)
	}
}

func TestNew_CopiesEntries(t *testing.T) {
	entries := values(1, 2, 3)
	c, err := New(Line(), entries, DefaultStyle())
	require.NoError(t, err)

	entries[0].Value = 99
	assert.Equal(t, 1.0, c.Entries()[0].Value)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Style)
		field string
	}{
		{"negative line size", func(s *Style) { s.LineSize = -1 }, "line_size"},
		{"negative point size", func(s *Style) { s.PointSize = -0.5 }, "point_size"},
		{"negative margin", func(s *Style) { s.Margin = -2 }, "margin"},
		{"alpha above range", func(s *Style) { s.LineAreaAlpha = 256 }, "line_area_alpha"},
		{"alpha below range", func(s *Style) { s.LineAreaAlpha = -1 }, "line_area_alpha"},
		{"unknown line mode", func(s *Style) { s.LineMode = LineMode(7) }, "line_mode"},
		{"unknown point mode", func(s *Style) { s.PointMode = PointMode(-1) }, "point_mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := DefaultStyle()
			tt.mod(&style)

			c, err := New(Line(), values(1), style)
			assert.Nil(t, c)
			require.ErrorIs(t, err, ErrInvalidConfig)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}

	_, err := New(nil, nil, DefaultStyle())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_NonFiniteValues(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c, err := New(Line(), values(1, v, 3), DefaultStyle())
		assert.Nil(t, c)
		require.ErrorIs(t, err, ErrInvalidConfig)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "entries[1].value", cfgErr.Field)
		assert.ErrorContains(t, err, "must be finite")
	}
}

func TestRender_InvalidCanvasDrawsNothing(t *testing.T) {
	c, err := New(Line(), values(1, 2), DefaultStyle())
	require.NoError(t, err)

	rec := NewRecorder(halfEm)
	assert.ErrorIs(t, c.Render(rec, 0, 100), ErrInvalidConfig)
	assert.ErrorIs(t, c.Render(rec, 100, -1), ErrInvalidConfig)
	assert.Empty(t, rec.Ops)

	assert.Error(t, c.Render(nil, 100, 100))
}

func TestBars(t *testing.T) {
	style := DefaultStyle()
	style.PointMode = PointNone
	entries := values(10, -10, 0)
	c, err := New(Bars(), entries, style)
	require.NoError(t, err)

	f, err := c.Frame(halfEm, 300, 200)
	require.NoError(t, err)
	rec := NewRecorder(halfEm)
	require.NoError(t, c.Render(rec, 300, 200))

	paths := rec.Paths()
	require.Len(t, paths, 2, "zero-height bar is skipped")

	half := (f.Layout.Slot.Width - 20) / 2

	up := paths[0].Elements
	require.Len(t, up, 5)
	start, ok := up[0].(gg.MoveTo)
	require.True(t, ok)
	assert.InDelta(t, f.Points[0].X-half, start.Point.X, 1e-9)
	assert.InDelta(t, f.Points[0].Y, start.Point.Y, 1e-9)
	corner, ok := up[2].(gg.LineTo)
	require.True(t, ok)
	assert.InDelta(t, f.Points[0].X+half, corner.Point.X, 1e-9)
	assert.InDelta(t, f.Layout.YOrigin, corner.Point.Y, 1e-9)

	down := paths[1].Elements
	require.Len(t, down, 5)
	start, ok = down[0].(gg.MoveTo)
	require.True(t, ok)
	assert.InDelta(t, f.Layout.YOrigin, start.Point.Y, 1e-9, "negative bars hang from the zero line")
}

func TestBars_ZeroValueSkipped(t *testing.T) {
	style := DefaultStyle()
	style.PointMode = PointNone
	// 0 sits at a zero line computed from a range that does not divide evenly
	c, err := New(Bars(), values(1200, -350, 0, 2500), style)
	require.NoError(t, err)

	rec := NewRecorder(halfEm)
	require.NoError(t, c.Render(rec, 480, 240))
	paths := rec.Paths()
	require.Len(t, paths, 3)
	for _, p := range paths {
		start := p.Elements[0].(gg.MoveTo)
		corner := p.Elements[2].(gg.LineTo)
		assert.Greater(t, math.Abs(corner.Point.Y-start.Point.Y), 1.0)
	}
}

func TestKindByName(t *testing.T) {
	for _, name := range []string{"line", "point", "bar"} {
		k, err := KindByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.Name())
	}
	_, err := KindByName("donut")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
