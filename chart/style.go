package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

// LineMode selects how consecutive points are joined.
type LineMode int

const (
	LineNone LineMode = iota
	LineStraight
	LineSpline
)

func (m LineMode) String() string {
	switch m {
	case LineNone:
		return "none"
	case LineStraight:
		return "straight"
	case LineSpline:
		return "spline"
	default:
		return fmt.Sprintf("LineMode(%d)", int(m))
	}
}

// ParseLineMode accepts "none", "straight" or "spline", case-insensitively.
func ParseLineMode(s string) (LineMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return LineNone, nil
	case "straight":
		return LineStraight, nil
	case "spline":
		return LineSpline, nil
	}
	return LineNone, newConfigError("line_mode", s, "expected none, straight or spline")
}

// PointMode selects the marker drawn at each point.
type PointMode int

const (
	PointNone PointMode = iota
	PointCircle
	PointSquare
)

func (m PointMode) String() string {
	switch m {
	case PointNone:
		return "none"
	case PointCircle:
		return "circle"
	case PointSquare:
		return "square"
	default:
		return fmt.Sprintf("PointMode(%d)", int(m))
	}
}

// ParsePointMode accepts "none", "circle" or "square", case-insensitively.
func ParsePointMode(s string) (PointMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return PointNone, nil
	case "circle":
		return PointCircle, nil
	case "square":
		return PointSquare, nil
	}
	return PointNone, newConfigError("point_mode", s, "expected none, circle or square")
}

// Style holds every rendering parameter of a chart.
type Style struct {
	Margin        float64
	LabelTextSize float64
	ShowAxis      bool

	LineSize float64
	LineMode LineMode
	// LineAreaAlpha is the opacity of the area under the line, in [0,255].
	// Zero disables the fill.
	LineAreaAlpha int

	PointSize float64
	PointMode PointMode

	AxisColor gg.RGBA
	LineColor gg.RGBA

	// Locale controls axis label formatting. language.Und prints the
	// shortest exact decimal representation without grouping.
	Locale language.Tag
}

// DefaultStyle returns the stock line chart style.
func DefaultStyle() Style {
	return Style{
		Margin:        20,
		LabelTextSize: 16,
		LineSize:      3,
		LineMode:      LineSpline,
		LineAreaAlpha: 32,
		PointSize:     10,
		PointMode:     PointCircle,
		AxisColor:     gg.Hex("#808080"),
		LineColor:     gg.Black,
		Locale:        language.Und,
	}
}

// Validate rejects styles that cannot be rendered. Values are never clamped.
func (s Style) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"margin", s.Margin},
		{"label_text_size", s.LabelTextSize},
		{"line_size", s.LineSize},
		{"point_size", s.PointSize},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return newConfigError(c.field, c.value, "must be finite")
		}
		if c.value < 0 {
			return newConfigError(c.field, c.value, "must not be negative")
		}
	}
	if s.LineAreaAlpha < 0 || s.LineAreaAlpha > 255 {
		return newConfigError("line_area_alpha", s.LineAreaAlpha, "must be within [0,255]")
	}
	if s.LineMode < LineNone || s.LineMode > LineSpline {
		return newConfigError("line_mode", s.LineMode, "unknown line mode")
	}
	if s.PointMode < PointNone || s.PointMode > PointSquare {
		return newConfigError("point_mode", s.PointMode, "unknown point mode")
	}
	return nil
}

func validateCanvas(width, height float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return newConfigError("width", width, "must be a positive number")
	}
	if math.IsNaN(height) || math.IsInf(height, 0) || height <= 0 {
		return newConfigError("height", height, "must be a positive number")
	}
	return nil
}
